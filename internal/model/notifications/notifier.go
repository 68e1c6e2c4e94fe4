package notifications

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"max.ks1230/smart-receipts/internal/entity/preference"
	"max.ks1230/smart-receipts/internal/logger"
	"max.ks1230/smart-receipts/internal/model/response"
)

const (
	reminderSubject = "Reminder: Add Your Receipts!"
	reminderText    = "This is a friendly reminder to add any new receipts to the Smart Receipts Tracker."
)

type recipientSource interface {
	ListNotifiable(ctx context.Context) ([]preference.Record, error)
}

type mailer interface {
	SendText(ctx context.Context, to, subject, text string) error
}

// Notifier mails the receipt reminder to every user who opted in.
type Notifier struct {
	recipients recipientSource
	mailer     mailer
}

func NewNotifier(recipients recipientSource, mailer mailer) *Notifier {
	return &Notifier{
		recipients: recipients,
		mailer:     mailer,
	}
}

type notifyResponse struct {
	Message string `json:"message"`
}

// Handle takes no input. The first failure stops the run; mails already
// sent stay sent.
func (n *Notifier) Handle(ctx context.Context, _ []byte) response.Response {
	users, err := n.recipients.ListNotifiable(ctx)
	if err != nil {
		logger.Error("error listing users to notify", zap.Error(err))
		return response.InternalError(err)
	}

	for _, user := range users {
		if err = n.mailer.SendText(ctx, user.UserID, reminderSubject, reminderText); err != nil {
			logger.Error("error sending reminder", zap.String("userId", user.UserID), zap.Error(err))
			return response.InternalError(err)
		}
		logger.Info("reminder sent", zap.String("userId", user.UserID))
	}

	return response.OK(notifyResponse{
		Message: fmt.Sprintf("Successfully processed %d users for notification.", len(users)),
	})
}
