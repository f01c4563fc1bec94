package bridge

// Action names the user-triggered operations.
type Action string

const (
	ActionConnect  Action = "connect"
	ActionDeposit  Action = "deposit"
	ActionWithdraw Action = "withdraw"
	ActionTransfer Action = "transfer"
	ActionBalance  Action = "balance"
)

type Status string

const (
	StatusSuccess Status = "success"
	StatusFailure Status = "failure"
)

// ErrorKind classifies why an action failed.
type ErrorKind string

const (
	ErrorKindAccessDenied      ErrorKind = "access_denied"
	ErrorKindWrongNetwork      ErrorKind = "wrong_network"
	ErrorKindInvalidAmount     ErrorKind = "invalid_amount"
	ErrorKindInvalidAddress    ErrorKind = "invalid_address"
	ErrorKindNotConnected      ErrorKind = "not_connected"
	ErrorKindTransactionFailed ErrorKind = "transaction_failed"
)

// ConnectedStatusText is shown in the connect status field after a successful connect.
const ConnectedStatusText = "Connected ✅"

// Result is the outcome of one action. Failures carry a Kind and Message;
// they are never returned as Go errors.
type Result struct {
	Action  Action    `json:"action"`
	Status  Status    `json:"status"`
	Kind    ErrorKind `json:"errorKind,omitempty"`
	Message string    `json:"message,omitempty"`

	Account string `json:"account,omitempty"`
	From    string `json:"from,omitempty"`
	To      string `json:"to,omitempty"`

	// BaseUnits is the submitted amount as an 18-decimal integer string
	BaseUnits string `json:"baseUnits,omitempty"`
	TxHash    string `json:"txHash,omitempty"`

	// Balance is the whole-token balance text after connect or refresh
	Balance string `json:"balance,omitempty"`

	RecordID string `json:"recordId,omitempty"`
}

func (r *Result) Succeeded() bool {
	return r.Status == StatusSuccess
}

// View is what the page displays.
type View struct {
	ConnectStatus string `json:"connectStatus"`
	Balance       string `json:"balance"`
	Account       string `json:"account,omitempty"`
	Connected     bool   `json:"connected"`
}
