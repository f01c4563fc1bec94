package transactionSigner

import "errors"

// ErrTransactionReverted is returned when a transaction was mined with a failing status.
var ErrTransactionReverted = errors.New("transaction reverted")
