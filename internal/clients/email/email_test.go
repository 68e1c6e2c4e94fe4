package email

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSES struct {
	in  *ses.SendEmailInput
	err error
}

func (f *fakeSES) SendEmail(_ context.Context, in *ses.SendEmailInput, _ ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
	f.in = in
	return &ses.SendEmailOutput{}, f.err
}

func Test_OnSendText_ShouldAddressSingleRecipient(t *testing.T) {
	api := &fakeSES{}
	c := newClient(api, "noreply@example.com")

	require.NoError(t, c.SendText(context.Background(), "user@example.com", "Hi", "Body"))

	assert.Equal(t, "noreply@example.com", aws.ToString(api.in.Source))
	assert.Equal(t, []string{"user@example.com"}, api.in.Destination.ToAddresses)
	assert.Equal(t, "Hi", aws.ToString(api.in.Message.Subject.Data))
	assert.Equal(t, "Body", aws.ToString(api.in.Message.Body.Text.Data))
}

func Test_OnSesFailure_ShouldWrapError(t *testing.T) {
	c := newClient(&fakeSES{err: errors.New("MessageRejected")}, "noreply@example.com")

	err := c.SendText(context.Background(), "user@example.com", "Hi", "Body")

	assert.EqualError(t, err, "send email: MessageRejected")
}
