package mock

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/gojuno/minimock/v3"
)

type MailerMock struct {
	t minimock.Tester

	SendTextMock mMailerMockSendText
}

func NewMailerMock(t minimock.Tester) *MailerMock {
	m := &MailerMock{t: t}
	if controller, ok := t.(interface{ RegisterMocker(minimock.Mocker) }); ok {
		controller.RegisterMocker(m)
	}

	m.SendTextMock = mMailerMockSendText{mock: m}

	return m
}

type mMailerMockSendText struct {
	mock        *MailerMock
	expectation *MailerMockSendTextParams
	results     *MailerMockSendTextResults
	inspect     func(ctx context.Context, to string, subject string, text string)
	fn          func(ctx context.Context, to string, subject string, text string) error
	calls       uint64
}

// MailerMockSendTextParams contains parameters of MailerMock.SendText
type MailerMockSendTextParams struct {
	to      string
	subject string
	text    string
}

// MailerMockSendTextResults contains results of MailerMock.SendText
type MailerMockSendTextResults struct {
	err error
}

// Expect sets up the parameters MailerMock.SendText must be called with
func (mm *mMailerMockSendText) Expect(to string, subject string, text string) *mMailerMockSendText {
	mm.expectation = &MailerMockSendTextParams{to, subject, text}
	return mm
}

// Inspect accepts an inspector function that is called on every MailerMock.SendText call
func (mm *mMailerMockSendText) Inspect(f func(ctx context.Context, to string, subject string, text string)) *mMailerMockSendText {
	mm.inspect = f
	return mm
}

// Return sets up the results MailerMock.SendText returns
func (mm *mMailerMockSendText) Return(err error) *MailerMock {
	mm.results = &MailerMockSendTextResults{err}
	return mm.mock
}

// Set replaces MailerMock.SendText with f
func (mm *mMailerMockSendText) Set(f func(ctx context.Context, to string, subject string, text string) error) *MailerMock {
	mm.fn = f
	return mm.mock
}

func (mm *mMailerMockSendText) isSet() bool {
	return mm.results != nil || mm.fn != nil
}

// SendText implements the mocked interface
func (m *MailerMock) SendText(ctx context.Context, to string, subject string, text string) (err error) {
	mm := &m.SendTextMock
	atomic.AddUint64(&mm.calls, 1)

	if mm.inspect != nil {
		mm.inspect(ctx, to, subject, text)
	}
	if mm.expectation != nil {
		got := MailerMockSendTextParams{to, subject, text}
		if !minimock.Equal(*mm.expectation, got) {
			m.t.Errorf("MailerMock.SendText got unexpected parameters, want: %#v, got: %#v", *mm.expectation, got)
		}
	}
	if mm.fn != nil {
		return mm.fn(ctx, to, subject, text)
	}
	if mm.results == nil {
		m.t.Fatalf("Unexpected call to MailerMock.SendText")
		return
	}
	return mm.results.err
}

// SendTextAfterCounter returns a count of finished MailerMock.SendText invocations
func (m *MailerMock) SendTextAfterCounter() uint64 {
	return atomic.LoadUint64(&m.SendTextMock.calls)
}

// MinimockFinish checks that all mocked methods have been called
func (m *MailerMock) MinimockFinish() {
	if m.SendTextMock.isSet() && m.SendTextAfterCounter() == 0 {
		m.t.Error("Expected call to MailerMock.SendText")
	}
}

// MinimockWait waits for all mocked methods to be called the expected number of times
func (m *MailerMock) MinimockWait(timeout time.Duration) {
	deadline := time.Now().Add(timeout)
	for !m.minimockDone() && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	m.MinimockFinish()
}

func (m *MailerMock) minimockDone() bool {
	return (!m.SendTextMock.isSet() || m.SendTextAfterCounter() > 0)
}
