package bridge

import (
	"github.com/Layr-Labs/eigenx-wallet-bridge/pkg/persistence"
	"github.com/Layr-Labs/eigenx-wallet-bridge/pkg/session"
)

func (c *Controller) succeed(record *persistence.ActionRecord) *Result {
	record.Status = string(StatusSuccess)
	c.journal(record)

	c.logger.Sugar().Infow("Action succeeded",
		"action", record.Action,
		"account", record.Account,
		"baseUnits", record.BaseUnits,
		"txHash", record.TxHash,
	)
	return resultFromRecord(record)
}

func (c *Controller) fail(record *persistence.ActionRecord, err error) *Result {
	kind := Classify(err)
	record.Status = string(StatusFailure)
	record.ErrorKind = string(kind)
	record.Message = err.Error()
	c.journal(record)

	c.logger.Sugar().Warnw("Action failed",
		"action", record.Action,
		"account", record.Account,
		"errorKind", kind,
		"error", err,
	)
	return resultFromRecord(record)
}

// journal persists record; a journal failure never changes the action's result.
func (c *Controller) journal(record *persistence.ActionRecord) {
	if c.store == nil {
		return
	}
	if err := c.store.SaveActionRecord(record); err != nil {
		c.logger.Sugar().Errorw("Failed to journal action",
			"action", record.Action,
			"recordId", record.ID,
			"error", err,
		)
	}
}

func (c *Controller) saveSessionState(sess *session.Session) {
	if c.store == nil {
		return
	}
	err := c.store.SaveSessionState(&persistence.SessionState{
		Account:     sess.Account().Hex(),
		ChainId:     uint64(sess.ChainId()),
		ConnectedAt: sess.ConnectedAt().Unix(),
	})
	if err != nil {
		c.logger.Sugar().Errorw("Failed to persist session state", "error", err)
	}
}

// LastSession returns the most recently persisted session, if any.
func (c *Controller) LastSession() (*persistence.SessionState, error) {
	if c.store == nil {
		return nil, nil
	}
	return c.store.LoadSessionState()
}

func resultFromRecord(record *persistence.ActionRecord) *Result {
	return &Result{
		Action:    Action(record.Action),
		Status:    Status(record.Status),
		Kind:      ErrorKind(record.ErrorKind),
		Message:   record.Message,
		Account:   record.Account,
		From:      record.From,
		To:        record.To,
		BaseUnits: record.BaseUnits,
		TxHash:    record.TxHash,
		RecordID:  record.ID,
	}
}

