package receipts

import (
	"context"
	"encoding/base64"
	"os"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/smart-receipts/internal/clients/bedrock"
	"max.ks1230/smart-receipts/internal/logger"
	"max.ks1230/smart-receipts/internal/model/response"
)

type model interface {
	AskAboutImage(ctx context.Context, img bedrock.Image, prompt string, maxTokens int) (string, error)
}

// Categorizer asks the model to pick one label for a receipt image.
type Categorizer struct {
	model model
}

func NewCategorizer(model model) *Categorizer {
	return &Categorizer{model: model}
}

// CategorizeFile reads the image at path and categorizes it. Failures are
// reported in the returned string, never as an error.
func (c *Categorizer) CategorizeFile(ctx context.Context, path string, categories []string) string {
	raw, err := os.ReadFile(path)
	if err != nil {
		return failure(errors.Wrap(err, "read image"))
	}
	return c.Categorize(ctx, raw, categories)
}

// Categorize returns one of categories, OtherCategory, or "Error: ..." text.
func (c *Categorizer) Categorize(ctx context.Context, image []byte, categories []string) string {
	if len(categories) == 0 {
		return failure(errors.New("no categories supplied"))
	}

	answer, err := c.model.AskAboutImage(ctx, encodeImage(image), categoryPrompt(categories), categoryMaxTokens)
	if err != nil {
		return failure(err)
	}
	return matchCategory(answer, categories)
}

func failure(err error) string {
	logger.Error("error categorizing receipt", zap.Error(err))
	return "Error: " + err.Error()
}

// matchCategory maps the model answer onto the supplied labels. The model
// sometimes quotes the label or ends with a period; those are ignored.
func matchCategory(answer string, categories []string) string {
	cleaned := strings.TrimSpace(answer)
	cleaned = strings.TrimSuffix(cleaned, ".")
	cleaned = strings.Trim(cleaned, "\"'` ")

	for _, c := range categories {
		if strings.EqualFold(cleaned, strings.TrimSpace(c)) {
			return c
		}
	}
	if !strings.EqualFold(cleaned, OtherCategory) {
		logger.Warn("model answered outside the category list", zap.String("answer", answer))
	}
	return OtherCategory
}

type categorizeRequest struct {
	ImageData  string   `json:"image_data"`
	Categories []string `json:"categories"`
}

type categorizeResponse struct {
	Category string `json:"category"`
}

// Handle serves categorization over the invocation envelope. Only a missing
// image is a client error; everything else is reported in the category text.
func (c *Categorizer) Handle(ctx context.Context, payload []byte) response.Response {
	var req categorizeRequest
	if resp, ok := response.Decode(payload, &req); !ok {
		return resp
	}
	if req.ImageData == "" {
		return response.BadRequest("image_data is required.")
	}
	categories := req.Categories
	if len(categories) == 0 {
		categories = DefaultCategories
	}

	raw, err := base64.StdEncoding.DecodeString(req.ImageData)
	if err != nil {
		return response.OK(categorizeResponse{Category: failure(errors.Wrap(err, "decode image"))})
	}
	return response.OK(categorizeResponse{Category: c.Categorize(ctx, raw, categories)})
}
