package mock

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/gojuno/minimock/v3"
	"max.ks1230/smart-receipts/internal/clients/bedrock"
)

type ModelMock struct {
	t minimock.Tester

	AskAboutImageMock mModelMockAskAboutImage
}

func NewModelMock(t minimock.Tester) *ModelMock {
	m := &ModelMock{t: t}
	if controller, ok := t.(interface{ RegisterMocker(minimock.Mocker) }); ok {
		controller.RegisterMocker(m)
	}

	m.AskAboutImageMock = mModelMockAskAboutImage{mock: m}

	return m
}

type mModelMockAskAboutImage struct {
	mock        *ModelMock
	expectation *ModelMockAskAboutImageParams
	results     *ModelMockAskAboutImageResults
	inspect     func(ctx context.Context, img bedrock.Image, prompt string, maxTokens int)
	fn          func(ctx context.Context, img bedrock.Image, prompt string, maxTokens int) (string, error)
	calls       uint64
}

// ModelMockAskAboutImageParams contains parameters of ModelMock.AskAboutImage
type ModelMockAskAboutImageParams struct {
	img       bedrock.Image
	prompt    string
	maxTokens int
}

// ModelMockAskAboutImageResults contains results of ModelMock.AskAboutImage
type ModelMockAskAboutImageResults struct {
	answer string
	err    error
}

// Expect sets up the parameters ModelMock.AskAboutImage must be called with
func (mm *mModelMockAskAboutImage) Expect(img bedrock.Image, prompt string, maxTokens int) *mModelMockAskAboutImage {
	mm.expectation = &ModelMockAskAboutImageParams{img, prompt, maxTokens}
	return mm
}

// Inspect accepts an inspector function that is called on every ModelMock.AskAboutImage call
func (mm *mModelMockAskAboutImage) Inspect(f func(ctx context.Context, img bedrock.Image, prompt string, maxTokens int)) *mModelMockAskAboutImage {
	mm.inspect = f
	return mm
}

// Return sets up the results ModelMock.AskAboutImage returns
func (mm *mModelMockAskAboutImage) Return(answer string, err error) *ModelMock {
	mm.results = &ModelMockAskAboutImageResults{answer, err}
	return mm.mock
}

// Set replaces ModelMock.AskAboutImage with f
func (mm *mModelMockAskAboutImage) Set(f func(ctx context.Context, img bedrock.Image, prompt string, maxTokens int) (string, error)) *ModelMock {
	mm.fn = f
	return mm.mock
}

func (mm *mModelMockAskAboutImage) isSet() bool {
	return mm.results != nil || mm.fn != nil
}

// AskAboutImage implements the mocked interface
func (m *ModelMock) AskAboutImage(ctx context.Context, img bedrock.Image, prompt string, maxTokens int) (answer string, err error) {
	mm := &m.AskAboutImageMock
	atomic.AddUint64(&mm.calls, 1)

	if mm.inspect != nil {
		mm.inspect(ctx, img, prompt, maxTokens)
	}
	if mm.expectation != nil {
		got := ModelMockAskAboutImageParams{img, prompt, maxTokens}
		if !minimock.Equal(*mm.expectation, got) {
			m.t.Errorf("ModelMock.AskAboutImage got unexpected parameters, want: %#v, got: %#v", *mm.expectation, got)
		}
	}
	if mm.fn != nil {
		return mm.fn(ctx, img, prompt, maxTokens)
	}
	if mm.results == nil {
		m.t.Fatalf("Unexpected call to ModelMock.AskAboutImage")
		return
	}
	return mm.results.answer, mm.results.err
}

// AskAboutImageAfterCounter returns a count of finished ModelMock.AskAboutImage invocations
func (m *ModelMock) AskAboutImageAfterCounter() uint64 {
	return atomic.LoadUint64(&m.AskAboutImageMock.calls)
}

// MinimockFinish checks that all mocked methods have been called
func (m *ModelMock) MinimockFinish() {
	if m.AskAboutImageMock.isSet() && m.AskAboutImageAfterCounter() == 0 {
		m.t.Error("Expected call to ModelMock.AskAboutImage")
	}
}

// MinimockWait waits for all mocked methods to be called the expected number of times
func (m *ModelMock) MinimockWait(timeout time.Duration) {
	deadline := time.Now().Add(timeout)
	for !m.minimockDone() && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	m.MinimockFinish()
}

func (m *ModelMock) minimockDone() bool {
	return (!m.AskAboutImageMock.isSet() || m.AskAboutImageAfterCounter() > 0)
}
