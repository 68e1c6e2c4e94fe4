package mock

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/gojuno/minimock/v3"
	"max.ks1230/smart-receipts/internal/entity/preference"
)

type RecipientSourceMock struct {
	t minimock.Tester

	ListNotifiableMock mRecipientSourceMockListNotifiable
}

func NewRecipientSourceMock(t minimock.Tester) *RecipientSourceMock {
	m := &RecipientSourceMock{t: t}
	if controller, ok := t.(interface{ RegisterMocker(minimock.Mocker) }); ok {
		controller.RegisterMocker(m)
	}

	m.ListNotifiableMock = mRecipientSourceMockListNotifiable{mock: m}

	return m
}

type mRecipientSourceMockListNotifiable struct {
	mock        *RecipientSourceMock
	expectation *RecipientSourceMockListNotifiableParams
	results     *RecipientSourceMockListNotifiableResults
	inspect     func(ctx context.Context)
	fn          func(ctx context.Context) ([]preference.Record, error)
	calls       uint64
}

// RecipientSourceMockListNotifiableParams contains parameters of RecipientSourceMock.ListNotifiable
type RecipientSourceMockListNotifiableParams struct {
}

// RecipientSourceMockListNotifiableResults contains results of RecipientSourceMock.ListNotifiable
type RecipientSourceMockListNotifiableResults struct {
	recs []preference.Record
	err  error
}

// Inspect accepts an inspector function that is called on every RecipientSourceMock.ListNotifiable call
func (mm *mRecipientSourceMockListNotifiable) Inspect(f func(ctx context.Context)) *mRecipientSourceMockListNotifiable {
	mm.inspect = f
	return mm
}

// Return sets up the results RecipientSourceMock.ListNotifiable returns
func (mm *mRecipientSourceMockListNotifiable) Return(recs []preference.Record, err error) *RecipientSourceMock {
	mm.results = &RecipientSourceMockListNotifiableResults{recs, err}
	return mm.mock
}

// Set replaces RecipientSourceMock.ListNotifiable with f
func (mm *mRecipientSourceMockListNotifiable) Set(f func(ctx context.Context) ([]preference.Record, error)) *RecipientSourceMock {
	mm.fn = f
	return mm.mock
}

func (mm *mRecipientSourceMockListNotifiable) isSet() bool {
	return mm.results != nil || mm.fn != nil
}

// ListNotifiable implements the mocked interface
func (m *RecipientSourceMock) ListNotifiable(ctx context.Context) (recs []preference.Record, err error) {
	mm := &m.ListNotifiableMock
	atomic.AddUint64(&mm.calls, 1)

	if mm.inspect != nil {
		mm.inspect(ctx)
	}
	if mm.fn != nil {
		return mm.fn(ctx)
	}
	if mm.results == nil {
		m.t.Fatalf("Unexpected call to RecipientSourceMock.ListNotifiable")
		return
	}
	return mm.results.recs, mm.results.err
}

// ListNotifiableAfterCounter returns a count of finished RecipientSourceMock.ListNotifiable invocations
func (m *RecipientSourceMock) ListNotifiableAfterCounter() uint64 {
	return atomic.LoadUint64(&m.ListNotifiableMock.calls)
}

// MinimockFinish checks that all mocked methods have been called
func (m *RecipientSourceMock) MinimockFinish() {
	if m.ListNotifiableMock.isSet() && m.ListNotifiableAfterCounter() == 0 {
		m.t.Error("Expected call to RecipientSourceMock.ListNotifiable")
	}
}

// MinimockWait waits for all mocked methods to be called the expected number of times
func (m *RecipientSourceMock) MinimockWait(timeout time.Duration) {
	deadline := time.Now().Add(timeout)
	for !m.minimockDone() && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	m.MinimockFinish()
}

func (m *RecipientSourceMock) minimockDone() bool {
	return (!m.ListNotifiableMock.isSet() || m.ListNotifiableAfterCounter() > 0)
}
