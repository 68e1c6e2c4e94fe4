package receipts

import (
	"context"
	"net/http"
	"testing"

	"github.com/gojuno/minimock/v3"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"max.ks1230/smart-receipts/internal/clients/bedrock"
	"max.ks1230/smart-receipts/internal/entity/expense"
	"max.ks1230/smart-receipts/internal/model/receipts/mock"
)

const fallbackBody = `{"message":"Data extracted successfully","extracted_data":{
	"vendor":"Not Applicable","amount":"Not Applicable","category":"Not Applicable",
	"description":"Not Applicable","date":"Not Applicable"}}`

func Test_OnMissingKey_ShouldAnswerBadRequestNamingKey(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	e := NewExtractor(mock.NewImageStoreMock(m), mock.NewModelMock(m))

	resp := e.Handle(context.Background(), []byte(`{"userId":"a@x.io"}`))

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.JSONEq(t, `{"error":"Missing key in request body: 's3_key'"}`, resp.Body)
}

func Test_OnStorageFailure_ShouldAnswerFixedError(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	store := mock.NewImageStoreMock(m)
	model := mock.NewModelMock(m)

	store.GetObjectMock.
		Expect("receipts/a.jpg").
		Return(nil, errors.New("NoSuchKey"))

	resp := NewExtractor(store, model).Handle(context.Background(), []byte(`{"s3_key":"receipts/a.jpg"}`))

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.JSONEq(t, `{"error":"Could not retrieve image from S3."}`, resp.Body)
	assert.Equal(t, uint64(0), model.AskAboutImageAfterCounter())
}

func Test_OnModelFailure_ShouldAnswerInternalErrorWithText(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	store := mock.NewImageStoreMock(m)
	model := mock.NewModelMock(m)

	store.GetObjectMock.Return([]byte("img"), nil)
	model.AskAboutImageMock.Return("", errors.New("invoke model: ThrottlingException"))

	resp := NewExtractor(store, model).Handle(context.Background(), []byte(`{"s3_key":"receipts/a.jpg"}`))

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.JSONEq(t, `{"error":"invoke model: ThrottlingException"}`, resp.Body)
}

func Test_OnValidModelJSON_ShouldReturnExtractedRecord(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	store := mock.NewImageStoreMock(m)
	model := mock.NewModelMock(m)

	store.GetObjectMock.Return([]byte("\x89PNG\r\n\x1a\n0000"), nil)
	model.AskAboutImageMock.
		Inspect(func(_ context.Context, img bedrock.Image, prompt string, maxTokens int) {
			assert.Equal(t, "image/png", img.MediaType)
			assert.Contains(t, prompt, "keys: vendor, amount, category, description, date")
			assert.Equal(t, 2000, maxTokens)
		}).
		Return(`{"vendor":"Corner Cafe","amount":12.5,"category":"Food","description":"Lunch","date":"2024-05-01"}`, nil)

	resp := NewExtractor(store, model).Handle(context.Background(), []byte(`{"s3_key":"receipts/a.png"}`))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"message":"Data extracted successfully","extracted_data":{
		"vendor":"Corner Cafe","amount":"12.5","category":"Food","description":"Lunch","date":"2024-05-01"}}`, resp.Body)
}

func Test_OnUnparseableModelOutput_ShouldReturnFallbackWithOK(t *testing.T) {
	outputs := []string{
		"Sorry, I cannot read this receipt.",
		"```json\n{\"vendor\":\"A\"}\n```",
		`["vendor","amount"]`,
		`null`,
		`{"vendor":"A","amount":"1","category":"Food","description":"x"}`,
		`{"vendor":{"name":"A"},"amount":"1","category":"Food","description":"x","date":"d"}`,
	}

	for _, out := range outputs {
		m := minimock.NewController(t)
		store := mock.NewImageStoreMock(m)
		model := mock.NewModelMock(m)
		store.GetObjectMock.Return([]byte("img"), nil)
		model.AskAboutImageMock.Return(out, nil)

		resp := NewExtractor(store, model).Handle(context.Background(), []byte(`{"s3_key":"receipts/a.jpg"}`))

		assert.Equal(t, http.StatusOK, resp.StatusCode, out)
		assert.JSONEq(t, fallbackBody, resp.Body, out)
		m.Finish()
	}
}

func Test_OnParseExtracted_ShouldNeverBePartial(t *testing.T) {
	got := parseExtracted(`{"vendor":"A","amount":null,"category":"Food","description":"x","date":"d","extra":1}`)

	assert.Equal(t, expense.Extracted{
		Vendor:      "A",
		Amount:      expense.NotApplicable,
		Category:    "Food",
		Description: "x",
		Date:        "d",
	}, got)
}

func Test_OnMediaType_ShouldFallBackToJPEG(t *testing.T) {
	assert.Equal(t, "image/png", MediaType([]byte("\x89PNG\r\n\x1a\n0000")))
	assert.Equal(t, "image/jpeg", MediaType([]byte("\xff\xd8\xff\xe0")))
	assert.Equal(t, "image/jpeg", MediaType([]byte("plain text")))
}
