package bedrock

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRuntime struct {
	in   *bedrockruntime.InvokeModelInput
	body string
	err  error
}

func (f *fakeRuntime) InvokeModel(_ context.Context, in *bedrockruntime.InvokeModelInput, _ ...func(*bedrockruntime.Options)) (*bedrockruntime.InvokeModelOutput, error) {
	f.in = in
	if f.err != nil {
		return nil, f.err
	}
	return &bedrockruntime.InvokeModelOutput{Body: []byte(f.body)}, nil
}

func Test_OnAskAboutImage_ShouldSendAnthropicMessagesBody(t *testing.T) {
	api := &fakeRuntime{body: `{"content":[{"type":"text","text":"  Groceries \n"}]}`}
	c := newClient(api, "anthropic.claude-3-haiku-20240307-v1:0")

	text, err := c.AskAboutImage(context.Background(), Image{MediaType: "image/png", Data: "aGk="}, "what is it?", 100)

	require.NoError(t, err)
	assert.Equal(t, "  Groceries \n", text)
	assert.Equal(t, "anthropic.claude-3-haiku-20240307-v1:0", aws.ToString(api.in.ModelId))
	assert.Equal(t, "application/json", aws.ToString(api.in.ContentType))

	var sent map[string]interface{}
	require.NoError(t, json.Unmarshal(api.in.Body, &sent))
	assert.Equal(t, "bedrock-2023-05-31", sent["anthropic_version"])
	assert.EqualValues(t, 100, sent["max_tokens"])
	assert.JSONEq(t, `[{"role":"user","content":[
		{"type":"image","source":{"type":"base64","media_type":"image/png","data":"aGk="}},
		{"type":"text","text":"what is it?"}
	]}]`, mustJSON(t, sent["messages"]))
}

func Test_OnInvokeFailure_ShouldWrapError(t *testing.T) {
	c := newClient(&fakeRuntime{err: errors.New("ThrottlingException")}, "m")

	_, err := c.AskAboutImage(context.Background(), Image{}, "p", 1)

	assert.EqualError(t, err, "invoke model: ThrottlingException")
}

func Test_OnEmptyContent_ShouldFail(t *testing.T) {
	c := newClient(&fakeRuntime{body: `{"content":[]}`}, "m")

	_, err := c.AskAboutImage(context.Background(), Image{}, "p", 1)

	assert.Error(t, err)
}

func mustJSON(t *testing.T, v interface{}) string {
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	return string(raw)
}
