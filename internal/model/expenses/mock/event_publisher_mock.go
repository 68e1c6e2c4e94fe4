package mock

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/gojuno/minimock/v3"
)

type EventPublisherMock struct {
	t minimock.Tester

	PublishMock mEventPublisherMockPublish
}

func NewEventPublisherMock(t minimock.Tester) *EventPublisherMock {
	m := &EventPublisherMock{t: t}
	if controller, ok := t.(interface{ RegisterMocker(minimock.Mocker) }); ok {
		controller.RegisterMocker(m)
	}

	m.PublishMock = mEventPublisherMockPublish{mock: m}

	return m
}

type mEventPublisherMockPublish struct {
	mock        *EventPublisherMock
	expectation *EventPublisherMockPublishParams
	results     *EventPublisherMockPublishResults
	inspect     func(ctx context.Context, key string, value []byte)
	fn          func(ctx context.Context, key string, value []byte) error
	calls       uint64
}

// EventPublisherMockPublishParams contains parameters of EventPublisherMock.Publish
type EventPublisherMockPublishParams struct {
	key   string
	value []byte
}

// EventPublisherMockPublishResults contains results of EventPublisherMock.Publish
type EventPublisherMockPublishResults struct {
	err error
}

// Expect sets up the parameters EventPublisherMock.Publish must be called with
func (mm *mEventPublisherMockPublish) Expect(key string, value []byte) *mEventPublisherMockPublish {
	mm.expectation = &EventPublisherMockPublishParams{key, value}
	return mm
}

// Inspect accepts an inspector function that is called on every EventPublisherMock.Publish call
func (mm *mEventPublisherMockPublish) Inspect(f func(ctx context.Context, key string, value []byte)) *mEventPublisherMockPublish {
	mm.inspect = f
	return mm
}

// Return sets up the results EventPublisherMock.Publish returns
func (mm *mEventPublisherMockPublish) Return(err error) *EventPublisherMock {
	mm.results = &EventPublisherMockPublishResults{err}
	return mm.mock
}

// Set replaces EventPublisherMock.Publish with f
func (mm *mEventPublisherMockPublish) Set(f func(ctx context.Context, key string, value []byte) error) *EventPublisherMock {
	mm.fn = f
	return mm.mock
}

func (mm *mEventPublisherMockPublish) isSet() bool {
	return mm.results != nil || mm.fn != nil
}

// Publish implements the mocked interface
func (m *EventPublisherMock) Publish(ctx context.Context, key string, value []byte) (err error) {
	mm := &m.PublishMock
	atomic.AddUint64(&mm.calls, 1)

	if mm.inspect != nil {
		mm.inspect(ctx, key, value)
	}
	if mm.expectation != nil {
		got := EventPublisherMockPublishParams{key, value}
		if !minimock.Equal(*mm.expectation, got) {
			m.t.Errorf("EventPublisherMock.Publish got unexpected parameters, want: %#v, got: %#v", *mm.expectation, got)
		}
	}
	if mm.fn != nil {
		return mm.fn(ctx, key, value)
	}
	if mm.results == nil {
		m.t.Fatalf("Unexpected call to EventPublisherMock.Publish")
		return
	}
	return mm.results.err
}

// PublishAfterCounter returns a count of finished EventPublisherMock.Publish invocations
func (m *EventPublisherMock) PublishAfterCounter() uint64 {
	return atomic.LoadUint64(&m.PublishMock.calls)
}

// MinimockFinish checks that all mocked methods have been called
func (m *EventPublisherMock) MinimockFinish() {
	if m.PublishMock.isSet() && m.PublishAfterCounter() == 0 {
		m.t.Error("Expected call to EventPublisherMock.Publish")
	}
}

// MinimockWait waits for all mocked methods to be called the expected number of times
func (m *EventPublisherMock) MinimockWait(timeout time.Duration) {
	deadline := time.Now().Add(timeout)
	for !m.minimockDone() && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	m.MinimockFinish()
}

func (m *EventPublisherMock) minimockDone() bool {
	return (!m.PublishMock.isSet() || m.PublishAfterCounter() > 0)
}
