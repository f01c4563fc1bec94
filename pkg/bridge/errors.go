package bridge

import (
	"errors"

	"github.com/Layr-Labs/eigenx-wallet-bridge/pkg/units"
	"github.com/Layr-Labs/eigenx-wallet-bridge/pkg/wallet"
)

var (
	ErrAccessDenied      = wallet.ErrAccessDenied
	ErrWrongNetwork      = errors.New("wallet is connected to the wrong network")
	ErrInvalidAmount     = units.ErrInvalidAmount
	ErrInvalidAddress    = errors.New("invalid recipient address")
	ErrNotConnected      = errors.New("wallet is not connected")
	ErrTransactionFailed = errors.New("transaction failed")
)

// Classify maps an error returned inside an action to its ErrorKind.
// Anything unrecognised is a transaction failure.
func Classify(err error) ErrorKind {
	switch {
	case errors.Is(err, ErrAccessDenied):
		return ErrorKindAccessDenied
	case errors.Is(err, ErrWrongNetwork):
		return ErrorKindWrongNetwork
	case errors.Is(err, ErrInvalidAmount):
		return ErrorKindInvalidAmount
	case errors.Is(err, ErrInvalidAddress):
		return ErrorKindInvalidAddress
	case errors.Is(err, ErrNotConnected):
		return ErrorKindNotConnected
	}
	return ErrorKindTransactionFailed
}
