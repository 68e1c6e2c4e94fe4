package expenses

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"
	"max.ks1230/smart-receipts/internal/logger"
)

const (
	EventSaved   = "expense.saved"
	EventUpdated = "expense.updated"
	EventDeleted = "expense.deleted"
)

// Event announces a change to one expense. It carries keys only;
// consumers read the record back from the table.
type Event struct {
	Type      string `json:"type"`
	UserID    string `json:"userId"`
	ExpenseID string `json:"expenseId"`
	At        string `json:"at"`
}

// publish never fails the request that caused the event.
func (s *Service) publish(ctx context.Context, eventType, userID, expenseID string) {
	if s.events == nil {
		return
	}

	value, err := json.Marshal(Event{
		Type:      eventType,
		UserID:    userID,
		ExpenseID: expenseID,
		At:        s.now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		logger.Error("cannot encode expense event", zap.Error(err))
		return
	}

	if err = s.events.Publish(ctx, userID, value); err != nil {
		logger.Warn("expense event dropped",
			zap.String("type", eventType),
			zap.String("expenseId", expenseID),
			zap.Error(err),
		)
	}
}
