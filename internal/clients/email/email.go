package email

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/smart-receipts/internal/logger"
)

type sesAPI interface {
	SendEmail(ctx context.Context, in *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

type senderConfig interface {
	Sender() string
}

type Client struct {
	api    sesAPI
	sender string
}

func New(cfg aws.Config, sender senderConfig) *Client {
	return newClient(ses.NewFromConfig(cfg), sender.Sender())
}

func newClient(api sesAPI, sender string) *Client {
	return &Client{api: api, sender: sender}
}

// SendText sends a plain-text email from the configured sender.
func (c *Client) SendText(ctx context.Context, to, subject, text string) error {
	logger.Info("send email", zap.String("to", to), zap.String("subject", subject))

	_, err := c.api.SendEmail(ctx, &ses.SendEmailInput{
		Source: aws.String(c.sender),
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(subject)},
			Body: &types.Body{
				Text: &types.Content{Data: aws.String(text)},
			},
		},
	})
	return errors.Wrap(err, "send email")
}
