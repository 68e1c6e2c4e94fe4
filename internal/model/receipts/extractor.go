package receipts

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"
	"max.ks1230/smart-receipts/internal/entity/expense"
	"max.ks1230/smart-receipts/internal/logger"
	"max.ks1230/smart-receipts/internal/model/response"
)

const (
	missingKeyMessage    = "Missing key in request body: 's3_key'"
	imageNotFoundMessage = "Could not retrieve image from S3."
	extractedOKMessage   = "Data extracted successfully"
)

type imageStore interface {
	GetObject(ctx context.Context, key string) ([]byte, error)
}

// Extractor reads a stored receipt image and turns the model's answer
// into an expense draft.
type Extractor struct {
	store imageStore
	model model
}

func NewExtractor(store imageStore, model model) *Extractor {
	return &Extractor{
		store: store,
		model: model,
	}
}

type extractRequest struct {
	S3Key string `json:"s3_key"`
}

type extractResponse struct {
	Message       string            `json:"message"`
	ExtractedData expense.Extracted `json:"extracted_data"`
}

func (e *Extractor) Handle(ctx context.Context, payload []byte) response.Response {
	var req extractRequest
	if resp, ok := response.Decode(payload, &req); !ok {
		return resp
	}
	if req.S3Key == "" {
		return response.BadRequest(missingKeyMessage)
	}

	raw, err := e.store.GetObject(ctx, req.S3Key)
	if err != nil {
		logger.Error("error getting image from S3", zap.String("key", req.S3Key), zap.Error(err))
		return response.InternalErrorMessage(imageNotFoundMessage)
	}

	answer, err := e.model.AskAboutImage(ctx, encodeImage(raw), extractionPrompt, extractionMaxTokens)
	if err != nil {
		logger.Error("error invoking model", zap.Error(err))
		return response.InternalError(err)
	}

	return response.OK(extractResponse{
		Message:       extractedOKMessage,
		ExtractedData: parseExtracted(answer),
	})
}

var extractedKeys = []string{"vendor", "amount", "category", "description", "date"}

// parseExtracted never fails: output that is not a JSON object carrying
// all five keys is replaced by the fallback record as a whole.
func parseExtracted(answer string) expense.Extracted {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(answer), &fields); err != nil {
		logger.Warn("model output is not valid JSON", zap.String("output", answer), zap.Error(err))
		return expense.FallbackExtracted()
	}

	values := make(map[string]string, len(extractedKeys))
	for _, key := range extractedKeys {
		raw, ok := fields[key]
		if !ok {
			logger.Warn("model output misses a field", zap.String("field", key), zap.String("output", answer))
			return expense.FallbackExtracted()
		}
		text, err := expense.TextOf(raw)
		if err != nil {
			logger.Warn("model output has a non-scalar field", zap.String("field", key), zap.String("output", answer))
			return expense.FallbackExtracted()
		}
		values[key] = text
	}

	return expense.Extracted{
		Vendor:      values["vendor"],
		Amount:      values["amount"],
		Category:    values["category"],
		Description: values["description"],
		Date:        values["date"],
	}
}
