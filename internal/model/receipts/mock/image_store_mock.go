package mock

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/gojuno/minimock/v3"
)

type ImageStoreMock struct {
	t minimock.Tester

	GetObjectMock mImageStoreMockGetObject
}

func NewImageStoreMock(t minimock.Tester) *ImageStoreMock {
	m := &ImageStoreMock{t: t}
	if controller, ok := t.(interface{ RegisterMocker(minimock.Mocker) }); ok {
		controller.RegisterMocker(m)
	}

	m.GetObjectMock = mImageStoreMockGetObject{mock: m}

	return m
}

type mImageStoreMockGetObject struct {
	mock        *ImageStoreMock
	expectation *ImageStoreMockGetObjectParams
	results     *ImageStoreMockGetObjectResults
	inspect     func(ctx context.Context, key string)
	fn          func(ctx context.Context, key string) ([]byte, error)
	calls       uint64
}

// ImageStoreMockGetObjectParams contains parameters of ImageStoreMock.GetObject
type ImageStoreMockGetObjectParams struct {
	key string
}

// ImageStoreMockGetObjectResults contains results of ImageStoreMock.GetObject
type ImageStoreMockGetObjectResults struct {
	body []byte
	err  error
}

// Expect sets up the parameters ImageStoreMock.GetObject must be called with
func (mm *mImageStoreMockGetObject) Expect(key string) *mImageStoreMockGetObject {
	mm.expectation = &ImageStoreMockGetObjectParams{key}
	return mm
}

// Inspect accepts an inspector function that is called on every ImageStoreMock.GetObject call
func (mm *mImageStoreMockGetObject) Inspect(f func(ctx context.Context, key string)) *mImageStoreMockGetObject {
	mm.inspect = f
	return mm
}

// Return sets up the results ImageStoreMock.GetObject returns
func (mm *mImageStoreMockGetObject) Return(body []byte, err error) *ImageStoreMock {
	mm.results = &ImageStoreMockGetObjectResults{body, err}
	return mm.mock
}

// Set replaces ImageStoreMock.GetObject with f
func (mm *mImageStoreMockGetObject) Set(f func(ctx context.Context, key string) ([]byte, error)) *ImageStoreMock {
	mm.fn = f
	return mm.mock
}

func (mm *mImageStoreMockGetObject) isSet() bool {
	return mm.results != nil || mm.fn != nil
}

// GetObject implements the mocked interface
func (m *ImageStoreMock) GetObject(ctx context.Context, key string) (body []byte, err error) {
	mm := &m.GetObjectMock
	atomic.AddUint64(&mm.calls, 1)

	if mm.inspect != nil {
		mm.inspect(ctx, key)
	}
	if mm.expectation != nil {
		got := ImageStoreMockGetObjectParams{key}
		if !minimock.Equal(*mm.expectation, got) {
			m.t.Errorf("ImageStoreMock.GetObject got unexpected parameters, want: %#v, got: %#v", *mm.expectation, got)
		}
	}
	if mm.fn != nil {
		return mm.fn(ctx, key)
	}
	if mm.results == nil {
		m.t.Fatalf("Unexpected call to ImageStoreMock.GetObject")
		return
	}
	return mm.results.body, mm.results.err
}

// GetObjectAfterCounter returns a count of finished ImageStoreMock.GetObject invocations
func (m *ImageStoreMock) GetObjectAfterCounter() uint64 {
	return atomic.LoadUint64(&m.GetObjectMock.calls)
}

// MinimockFinish checks that all mocked methods have been called
func (m *ImageStoreMock) MinimockFinish() {
	if m.GetObjectMock.isSet() && m.GetObjectAfterCounter() == 0 {
		m.t.Error("Expected call to ImageStoreMock.GetObject")
	}
}

// MinimockWait waits for all mocked methods to be called the expected number of times
func (m *ImageStoreMock) MinimockWait(timeout time.Duration) {
	deadline := time.Now().Add(timeout)
	for !m.minimockDone() && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	m.MinimockFinish()
}

func (m *ImageStoreMock) minimockDone() bool {
	return (!m.GetObjectMock.isSet() || m.GetObjectAfterCounter() > 0)
}
