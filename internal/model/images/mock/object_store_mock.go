package mock

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/gojuno/minimock/v3"
)

type ObjectStoreMock struct {
	t minimock.Tester

	PutObjectMock        mObjectStoreMockPutObject
	PresignGetObjectMock mObjectStoreMockPresignGetObject
	PublicURLMock        mObjectStoreMockPublicURL
}

func NewObjectStoreMock(t minimock.Tester) *ObjectStoreMock {
	m := &ObjectStoreMock{t: t}
	if controller, ok := t.(interface{ RegisterMocker(minimock.Mocker) }); ok {
		controller.RegisterMocker(m)
	}

	m.PutObjectMock = mObjectStoreMockPutObject{mock: m}
	m.PresignGetObjectMock = mObjectStoreMockPresignGetObject{mock: m}
	m.PublicURLMock = mObjectStoreMockPublicURL{mock: m}

	return m
}

type mObjectStoreMockPutObject struct {
	mock        *ObjectStoreMock
	expectation *ObjectStoreMockPutObjectParams
	results     *ObjectStoreMockPutObjectResults
	inspect     func(ctx context.Context, key string, body []byte, contentType string)
	fn          func(ctx context.Context, key string, body []byte, contentType string) error
	calls       uint64
}

// ObjectStoreMockPutObjectParams contains parameters of ObjectStoreMock.PutObject
type ObjectStoreMockPutObjectParams struct {
	key         string
	body        []byte
	contentType string
}

// ObjectStoreMockPutObjectResults contains results of ObjectStoreMock.PutObject
type ObjectStoreMockPutObjectResults struct {
	err error
}

// Expect sets up the parameters ObjectStoreMock.PutObject must be called with
func (mm *mObjectStoreMockPutObject) Expect(key string, body []byte, contentType string) *mObjectStoreMockPutObject {
	mm.expectation = &ObjectStoreMockPutObjectParams{key, body, contentType}
	return mm
}

// Inspect accepts an inspector function that is called on every ObjectStoreMock.PutObject call
func (mm *mObjectStoreMockPutObject) Inspect(f func(ctx context.Context, key string, body []byte, contentType string)) *mObjectStoreMockPutObject {
	mm.inspect = f
	return mm
}

// Return sets up the results ObjectStoreMock.PutObject returns
func (mm *mObjectStoreMockPutObject) Return(err error) *ObjectStoreMock {
	mm.results = &ObjectStoreMockPutObjectResults{err}
	return mm.mock
}

// Set replaces ObjectStoreMock.PutObject with f
func (mm *mObjectStoreMockPutObject) Set(f func(ctx context.Context, key string, body []byte, contentType string) error) *ObjectStoreMock {
	mm.fn = f
	return mm.mock
}

func (mm *mObjectStoreMockPutObject) isSet() bool {
	return mm.results != nil || mm.fn != nil
}

// PutObject implements the mocked interface
func (m *ObjectStoreMock) PutObject(ctx context.Context, key string, body []byte, contentType string) (err error) {
	mm := &m.PutObjectMock
	atomic.AddUint64(&mm.calls, 1)

	if mm.inspect != nil {
		mm.inspect(ctx, key, body, contentType)
	}
	if mm.expectation != nil {
		got := ObjectStoreMockPutObjectParams{key, body, contentType}
		if !minimock.Equal(*mm.expectation, got) {
			m.t.Errorf("ObjectStoreMock.PutObject got unexpected parameters, want: %#v, got: %#v", *mm.expectation, got)
		}
	}
	if mm.fn != nil {
		return mm.fn(ctx, key, body, contentType)
	}
	if mm.results == nil {
		m.t.Fatalf("Unexpected call to ObjectStoreMock.PutObject")
		return
	}
	return mm.results.err
}

// PutObjectAfterCounter returns a count of finished ObjectStoreMock.PutObject invocations
func (m *ObjectStoreMock) PutObjectAfterCounter() uint64 {
	return atomic.LoadUint64(&m.PutObjectMock.calls)
}

type mObjectStoreMockPresignGetObject struct {
	mock        *ObjectStoreMock
	expectation *ObjectStoreMockPresignGetObjectParams
	results     *ObjectStoreMockPresignGetObjectResults
	inspect     func(ctx context.Context, key string, ttl time.Duration)
	fn          func(ctx context.Context, key string, ttl time.Duration) (string, error)
	calls       uint64
}

// ObjectStoreMockPresignGetObjectParams contains parameters of ObjectStoreMock.PresignGetObject
type ObjectStoreMockPresignGetObjectParams struct {
	key string
	ttl time.Duration
}

// ObjectStoreMockPresignGetObjectResults contains results of ObjectStoreMock.PresignGetObject
type ObjectStoreMockPresignGetObjectResults struct {
	url string
	err error
}

// Expect sets up the parameters ObjectStoreMock.PresignGetObject must be called with
func (mm *mObjectStoreMockPresignGetObject) Expect(key string, ttl time.Duration) *mObjectStoreMockPresignGetObject {
	mm.expectation = &ObjectStoreMockPresignGetObjectParams{key, ttl}
	return mm
}

// Inspect accepts an inspector function that is called on every ObjectStoreMock.PresignGetObject call
func (mm *mObjectStoreMockPresignGetObject) Inspect(f func(ctx context.Context, key string, ttl time.Duration)) *mObjectStoreMockPresignGetObject {
	mm.inspect = f
	return mm
}

// Return sets up the results ObjectStoreMock.PresignGetObject returns
func (mm *mObjectStoreMockPresignGetObject) Return(url string, err error) *ObjectStoreMock {
	mm.results = &ObjectStoreMockPresignGetObjectResults{url, err}
	return mm.mock
}

// Set replaces ObjectStoreMock.PresignGetObject with f
func (mm *mObjectStoreMockPresignGetObject) Set(f func(ctx context.Context, key string, ttl time.Duration) (string, error)) *ObjectStoreMock {
	mm.fn = f
	return mm.mock
}

func (mm *mObjectStoreMockPresignGetObject) isSet() bool {
	return mm.results != nil || mm.fn != nil
}

// PresignGetObject implements the mocked interface
func (m *ObjectStoreMock) PresignGetObject(ctx context.Context, key string, ttl time.Duration) (url string, err error) {
	mm := &m.PresignGetObjectMock
	atomic.AddUint64(&mm.calls, 1)

	if mm.inspect != nil {
		mm.inspect(ctx, key, ttl)
	}
	if mm.expectation != nil {
		got := ObjectStoreMockPresignGetObjectParams{key, ttl}
		if !minimock.Equal(*mm.expectation, got) {
			m.t.Errorf("ObjectStoreMock.PresignGetObject got unexpected parameters, want: %#v, got: %#v", *mm.expectation, got)
		}
	}
	if mm.fn != nil {
		return mm.fn(ctx, key, ttl)
	}
	if mm.results == nil {
		m.t.Fatalf("Unexpected call to ObjectStoreMock.PresignGetObject")
		return
	}
	return mm.results.url, mm.results.err
}

// PresignGetObjectAfterCounter returns a count of finished ObjectStoreMock.PresignGetObject invocations
func (m *ObjectStoreMock) PresignGetObjectAfterCounter() uint64 {
	return atomic.LoadUint64(&m.PresignGetObjectMock.calls)
}

type mObjectStoreMockPublicURL struct {
	mock        *ObjectStoreMock
	expectation *ObjectStoreMockPublicURLParams
	results     *ObjectStoreMockPublicURLResults
	inspect     func(key string)
	fn          func(key string) string
	calls       uint64
}

// ObjectStoreMockPublicURLParams contains parameters of ObjectStoreMock.PublicURL
type ObjectStoreMockPublicURLParams struct {
	key string
}

// ObjectStoreMockPublicURLResults contains results of ObjectStoreMock.PublicURL
type ObjectStoreMockPublicURLResults struct {
	url string
}

// Expect sets up the parameters ObjectStoreMock.PublicURL must be called with
func (mm *mObjectStoreMockPublicURL) Expect(key string) *mObjectStoreMockPublicURL {
	mm.expectation = &ObjectStoreMockPublicURLParams{key}
	return mm
}

// Inspect accepts an inspector function that is called on every ObjectStoreMock.PublicURL call
func (mm *mObjectStoreMockPublicURL) Inspect(f func(key string)) *mObjectStoreMockPublicURL {
	mm.inspect = f
	return mm
}

// Return sets up the results ObjectStoreMock.PublicURL returns
func (mm *mObjectStoreMockPublicURL) Return(url string) *ObjectStoreMock {
	mm.results = &ObjectStoreMockPublicURLResults{url}
	return mm.mock
}

// Set replaces ObjectStoreMock.PublicURL with f
func (mm *mObjectStoreMockPublicURL) Set(f func(key string) string) *ObjectStoreMock {
	mm.fn = f
	return mm.mock
}

func (mm *mObjectStoreMockPublicURL) isSet() bool {
	return mm.results != nil || mm.fn != nil
}

// PublicURL implements the mocked interface
func (m *ObjectStoreMock) PublicURL(key string) (url string) {
	mm := &m.PublicURLMock
	atomic.AddUint64(&mm.calls, 1)

	if mm.inspect != nil {
		mm.inspect(key)
	}
	if mm.expectation != nil {
		got := ObjectStoreMockPublicURLParams{key}
		if !minimock.Equal(*mm.expectation, got) {
			m.t.Errorf("ObjectStoreMock.PublicURL got unexpected parameters, want: %#v, got: %#v", *mm.expectation, got)
		}
	}
	if mm.fn != nil {
		return mm.fn(key)
	}
	if mm.results == nil {
		m.t.Fatalf("Unexpected call to ObjectStoreMock.PublicURL")
		return
	}
	return mm.results.url
}

// PublicURLAfterCounter returns a count of finished ObjectStoreMock.PublicURL invocations
func (m *ObjectStoreMock) PublicURLAfterCounter() uint64 {
	return atomic.LoadUint64(&m.PublicURLMock.calls)
}

// MinimockFinish checks that all mocked methods have been called
func (m *ObjectStoreMock) MinimockFinish() {
	if m.PutObjectMock.isSet() && m.PutObjectAfterCounter() == 0 {
		m.t.Error("Expected call to ObjectStoreMock.PutObject")
	}
	if m.PresignGetObjectMock.isSet() && m.PresignGetObjectAfterCounter() == 0 {
		m.t.Error("Expected call to ObjectStoreMock.PresignGetObject")
	}
	if m.PublicURLMock.isSet() && m.PublicURLAfterCounter() == 0 {
		m.t.Error("Expected call to ObjectStoreMock.PublicURL")
	}
}

// MinimockWait waits for all mocked methods to be called the expected number of times
func (m *ObjectStoreMock) MinimockWait(timeout time.Duration) {
	deadline := time.Now().Add(timeout)
	for !m.minimockDone() && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	m.MinimockFinish()
}

func (m *ObjectStoreMock) minimockDone() bool {
	return (!m.PutObjectMock.isSet() || m.PutObjectAfterCounter() > 0) &&
		(!m.PresignGetObjectMock.isSet() || m.PresignGetObjectAfterCounter() > 0) &&
		(!m.PublicURLMock.isSet() || m.PublicURLAfterCounter() > 0)
}
