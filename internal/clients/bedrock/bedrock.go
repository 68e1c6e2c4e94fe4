package bedrock

import (
	"context"
	"encoding/json"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/smart-receipts/internal/logger"
)

const (
	anthropicVersion = "bedrock-2023-05-31"
	jsonContentType  = "application/json"
)

type runtimeAPI interface {
	InvokeModel(ctx context.Context, in *bedrockruntime.InvokeModelInput, optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.InvokeModelOutput, error)
}

type modelConfig interface {
	ModelID() string
}

// Image is a base64-encoded picture sent alongside the prompt.
type Image struct {
	MediaType string
	Data      string
}

type Client struct {
	api     runtimeAPI
	modelID string
}

func New(cfg aws.Config, model modelConfig) *Client {
	return newClient(bedrockruntime.NewFromConfig(cfg), model.ModelID())
}

func newClient(api runtimeAPI, modelID string) *Client {
	return &Client{api: api, modelID: modelID}
}

type messagesRequest struct {
	AnthropicVersion string    `json:"anthropic_version"`
	MaxTokens        int       `json:"max_tokens"`
	Messages         []message `json:"messages"`
}

type message struct {
	Role    string         `json:"role"`
	Content []contentBlock `json:"content"`
}

type contentBlock struct {
	Type   string       `json:"type"`
	Source *imageSource `json:"source,omitempty"`
	Text   string       `json:"text,omitempty"`
}

type imageSource struct {
	Type      string `json:"type"`
	MediaType string `json:"media_type"`
	Data      string `json:"data"`
}

type messagesResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
}

// AskAboutImage sends one user turn made of the image and the prompt and
// returns the text of the first content block of the answer.
func (c *Client) AskAboutImage(ctx context.Context, img Image, prompt string, maxTokens int) (string, error) {
	body, err := json.Marshal(messagesRequest{
		AnthropicVersion: anthropicVersion,
		MaxTokens:        maxTokens,
		Messages: []message{{
			Role: "user",
			Content: []contentBlock{
				{
					Type: "image",
					Source: &imageSource{
						Type:      "base64",
						MediaType: img.MediaType,
						Data:      img.Data,
					},
				},
				{Type: "text", Text: prompt},
			},
		}},
	})
	if err != nil {
		return "", errors.Wrap(err, "marshalling model request")
	}

	logger.Info("invoke model", zap.String("model", c.modelID), zap.Int("maxTokens", maxTokens))
	out, err := c.api.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(c.modelID),
		Body:        body,
		Accept:      aws.String(jsonContentType),
		ContentType: aws.String(jsonContentType),
	})
	if err != nil {
		return "", errors.Wrap(err, "invoke model")
	}

	var resp messagesResponse
	if err = json.Unmarshal(out.Body, &resp); err != nil {
		return "", errors.Wrap(err, "unmarshalling model response")
	}
	if len(resp.Content) == 0 {
		return "", errors.New("model response has no content")
	}
	return resp.Content[0].Text, nil
}
