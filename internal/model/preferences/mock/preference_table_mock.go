package mock

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/gojuno/minimock/v3"
	"max.ks1230/smart-receipts/internal/entity/preference"
)

type PreferenceTableMock struct {
	t minimock.Tester

	GetPreferenceMock mPreferenceTableMockGetPreference
	PutPreferenceMock mPreferenceTableMockPutPreference
}

func NewPreferenceTableMock(t minimock.Tester) *PreferenceTableMock {
	m := &PreferenceTableMock{t: t}
	if controller, ok := t.(interface{ RegisterMocker(minimock.Mocker) }); ok {
		controller.RegisterMocker(m)
	}

	m.GetPreferenceMock = mPreferenceTableMockGetPreference{mock: m}
	m.PutPreferenceMock = mPreferenceTableMockPutPreference{mock: m}

	return m
}

type mPreferenceTableMockGetPreference struct {
	mock        *PreferenceTableMock
	expectation *PreferenceTableMockGetPreferenceParams
	results     *PreferenceTableMockGetPreferenceResults
	inspect     func(ctx context.Context, userID string)
	fn          func(ctx context.Context, userID string) (*preference.Record, error)
	calls       uint64
}

// PreferenceTableMockGetPreferenceParams contains parameters of PreferenceTableMock.GetPreference
type PreferenceTableMockGetPreferenceParams struct {
	userID string
}

// PreferenceTableMockGetPreferenceResults contains results of PreferenceTableMock.GetPreference
type PreferenceTableMockGetPreferenceResults struct {
	rec *preference.Record
	err error
}

// Expect sets up the parameters PreferenceTableMock.GetPreference must be called with
func (mm *mPreferenceTableMockGetPreference) Expect(userID string) *mPreferenceTableMockGetPreference {
	mm.expectation = &PreferenceTableMockGetPreferenceParams{userID}
	return mm
}

// Inspect accepts an inspector function that is called on every PreferenceTableMock.GetPreference call
func (mm *mPreferenceTableMockGetPreference) Inspect(f func(ctx context.Context, userID string)) *mPreferenceTableMockGetPreference {
	mm.inspect = f
	return mm
}

// Return sets up the results PreferenceTableMock.GetPreference returns
func (mm *mPreferenceTableMockGetPreference) Return(rec *preference.Record, err error) *PreferenceTableMock {
	mm.results = &PreferenceTableMockGetPreferenceResults{rec, err}
	return mm.mock
}

// Set replaces PreferenceTableMock.GetPreference with f
func (mm *mPreferenceTableMockGetPreference) Set(f func(ctx context.Context, userID string) (*preference.Record, error)) *PreferenceTableMock {
	mm.fn = f
	return mm.mock
}

func (mm *mPreferenceTableMockGetPreference) isSet() bool {
	return mm.results != nil || mm.fn != nil
}

// GetPreference implements the mocked interface
func (m *PreferenceTableMock) GetPreference(ctx context.Context, userID string) (rec *preference.Record, err error) {
	mm := &m.GetPreferenceMock
	atomic.AddUint64(&mm.calls, 1)

	if mm.inspect != nil {
		mm.inspect(ctx, userID)
	}
	if mm.expectation != nil {
		got := PreferenceTableMockGetPreferenceParams{userID}
		if !minimock.Equal(*mm.expectation, got) {
			m.t.Errorf("PreferenceTableMock.GetPreference got unexpected parameters, want: %#v, got: %#v", *mm.expectation, got)
		}
	}
	if mm.fn != nil {
		return mm.fn(ctx, userID)
	}
	if mm.results == nil {
		m.t.Fatalf("Unexpected call to PreferenceTableMock.GetPreference")
		return
	}
	return mm.results.rec, mm.results.err
}

// GetPreferenceAfterCounter returns a count of finished PreferenceTableMock.GetPreference invocations
func (m *PreferenceTableMock) GetPreferenceAfterCounter() uint64 {
	return atomic.LoadUint64(&m.GetPreferenceMock.calls)
}

type mPreferenceTableMockPutPreference struct {
	mock        *PreferenceTableMock
	expectation *PreferenceTableMockPutPreferenceParams
	results     *PreferenceTableMockPutPreferenceResults
	inspect     func(ctx context.Context, rec preference.Record)
	fn          func(ctx context.Context, rec preference.Record) error
	calls       uint64
}

// PreferenceTableMockPutPreferenceParams contains parameters of PreferenceTableMock.PutPreference
type PreferenceTableMockPutPreferenceParams struct {
	rec preference.Record
}

// PreferenceTableMockPutPreferenceResults contains results of PreferenceTableMock.PutPreference
type PreferenceTableMockPutPreferenceResults struct {
	err error
}

// Expect sets up the parameters PreferenceTableMock.PutPreference must be called with
func (mm *mPreferenceTableMockPutPreference) Expect(rec preference.Record) *mPreferenceTableMockPutPreference {
	mm.expectation = &PreferenceTableMockPutPreferenceParams{rec}
	return mm
}

// Inspect accepts an inspector function that is called on every PreferenceTableMock.PutPreference call
func (mm *mPreferenceTableMockPutPreference) Inspect(f func(ctx context.Context, rec preference.Record)) *mPreferenceTableMockPutPreference {
	mm.inspect = f
	return mm
}

// Return sets up the results PreferenceTableMock.PutPreference returns
func (mm *mPreferenceTableMockPutPreference) Return(err error) *PreferenceTableMock {
	mm.results = &PreferenceTableMockPutPreferenceResults{err}
	return mm.mock
}

// Set replaces PreferenceTableMock.PutPreference with f
func (mm *mPreferenceTableMockPutPreference) Set(f func(ctx context.Context, rec preference.Record) error) *PreferenceTableMock {
	mm.fn = f
	return mm.mock
}

func (mm *mPreferenceTableMockPutPreference) isSet() bool {
	return mm.results != nil || mm.fn != nil
}

// PutPreference implements the mocked interface
func (m *PreferenceTableMock) PutPreference(ctx context.Context, rec preference.Record) (err error) {
	mm := &m.PutPreferenceMock
	atomic.AddUint64(&mm.calls, 1)

	if mm.inspect != nil {
		mm.inspect(ctx, rec)
	}
	if mm.expectation != nil {
		got := PreferenceTableMockPutPreferenceParams{rec}
		if !minimock.Equal(*mm.expectation, got) {
			m.t.Errorf("PreferenceTableMock.PutPreference got unexpected parameters, want: %#v, got: %#v", *mm.expectation, got)
		}
	}
	if mm.fn != nil {
		return mm.fn(ctx, rec)
	}
	if mm.results == nil {
		m.t.Fatalf("Unexpected call to PreferenceTableMock.PutPreference")
		return
	}
	return mm.results.err
}

// PutPreferenceAfterCounter returns a count of finished PreferenceTableMock.PutPreference invocations
func (m *PreferenceTableMock) PutPreferenceAfterCounter() uint64 {
	return atomic.LoadUint64(&m.PutPreferenceMock.calls)
}

// MinimockFinish checks that all mocked methods have been called
func (m *PreferenceTableMock) MinimockFinish() {
	if m.GetPreferenceMock.isSet() && m.GetPreferenceAfterCounter() == 0 {
		m.t.Error("Expected call to PreferenceTableMock.GetPreference")
	}
	if m.PutPreferenceMock.isSet() && m.PutPreferenceAfterCounter() == 0 {
		m.t.Error("Expected call to PreferenceTableMock.PutPreference")
	}
}

// MinimockWait waits for all mocked methods to be called the expected number of times
func (m *PreferenceTableMock) MinimockWait(timeout time.Duration) {
	deadline := time.Now().Add(timeout)
	for !m.minimockDone() && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	m.MinimockFinish()
}

func (m *PreferenceTableMock) minimockDone() bool {
	return (!m.GetPreferenceMock.isSet() || m.GetPreferenceAfterCounter() > 0) &&
		(!m.PutPreferenceMock.isSet() || m.PutPreferenceAfterCounter() > 0)
}
