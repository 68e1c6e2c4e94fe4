package mock

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/gojuno/minimock/v3"
	"max.ks1230/smart-receipts/internal/entity/expense"
)

type ExpenseTableMock struct {
	t minimock.Tester

	PutExpenseMock    mExpenseTableMockPutExpense
	ListExpensesMock  mExpenseTableMockListExpenses
	UpdateExpenseMock mExpenseTableMockUpdateExpense
	DeleteExpenseMock mExpenseTableMockDeleteExpense
}

func NewExpenseTableMock(t minimock.Tester) *ExpenseTableMock {
	m := &ExpenseTableMock{t: t}
	if controller, ok := t.(interface{ RegisterMocker(minimock.Mocker) }); ok {
		controller.RegisterMocker(m)
	}

	m.PutExpenseMock = mExpenseTableMockPutExpense{mock: m}
	m.ListExpensesMock = mExpenseTableMockListExpenses{mock: m}
	m.UpdateExpenseMock = mExpenseTableMockUpdateExpense{mock: m}
	m.DeleteExpenseMock = mExpenseTableMockDeleteExpense{mock: m}

	return m
}

type mExpenseTableMockPutExpense struct {
	mock        *ExpenseTableMock
	expectation *ExpenseTableMockPutExpenseParams
	results     *ExpenseTableMockPutExpenseResults
	inspect     func(ctx context.Context, rec expense.Record)
	fn          func(ctx context.Context, rec expense.Record) error
	calls       uint64
}

// ExpenseTableMockPutExpenseParams contains parameters of ExpenseTableMock.PutExpense
type ExpenseTableMockPutExpenseParams struct {
	rec expense.Record
}

// ExpenseTableMockPutExpenseResults contains results of ExpenseTableMock.PutExpense
type ExpenseTableMockPutExpenseResults struct {
	err error
}

// Expect sets up the parameters ExpenseTableMock.PutExpense must be called with
func (mm *mExpenseTableMockPutExpense) Expect(rec expense.Record) *mExpenseTableMockPutExpense {
	mm.expectation = &ExpenseTableMockPutExpenseParams{rec}
	return mm
}

// Inspect accepts an inspector function that is called on every ExpenseTableMock.PutExpense call
func (mm *mExpenseTableMockPutExpense) Inspect(f func(ctx context.Context, rec expense.Record)) *mExpenseTableMockPutExpense {
	mm.inspect = f
	return mm
}

// Return sets up the results ExpenseTableMock.PutExpense returns
func (mm *mExpenseTableMockPutExpense) Return(err error) *ExpenseTableMock {
	mm.results = &ExpenseTableMockPutExpenseResults{err}
	return mm.mock
}

// Set replaces ExpenseTableMock.PutExpense with f
func (mm *mExpenseTableMockPutExpense) Set(f func(ctx context.Context, rec expense.Record) error) *ExpenseTableMock {
	mm.fn = f
	return mm.mock
}

func (mm *mExpenseTableMockPutExpense) isSet() bool {
	return mm.results != nil || mm.fn != nil
}

// PutExpense implements the mocked interface
func (m *ExpenseTableMock) PutExpense(ctx context.Context, rec expense.Record) (err error) {
	mm := &m.PutExpenseMock
	atomic.AddUint64(&mm.calls, 1)

	if mm.inspect != nil {
		mm.inspect(ctx, rec)
	}
	if mm.expectation != nil {
		got := ExpenseTableMockPutExpenseParams{rec}
		if !minimock.Equal(*mm.expectation, got) {
			m.t.Errorf("ExpenseTableMock.PutExpense got unexpected parameters, want: %#v, got: %#v", *mm.expectation, got)
		}
	}
	if mm.fn != nil {
		return mm.fn(ctx, rec)
	}
	if mm.results == nil {
		m.t.Fatalf("Unexpected call to ExpenseTableMock.PutExpense")
		return
	}
	return mm.results.err
}

// PutExpenseAfterCounter returns a count of finished ExpenseTableMock.PutExpense invocations
func (m *ExpenseTableMock) PutExpenseAfterCounter() uint64 {
	return atomic.LoadUint64(&m.PutExpenseMock.calls)
}

type mExpenseTableMockListExpenses struct {
	mock        *ExpenseTableMock
	expectation *ExpenseTableMockListExpensesParams
	results     *ExpenseTableMockListExpensesResults
	inspect     func(ctx context.Context, userID string)
	fn          func(ctx context.Context, userID string) ([]expense.Record, error)
	calls       uint64
}

// ExpenseTableMockListExpensesParams contains parameters of ExpenseTableMock.ListExpenses
type ExpenseTableMockListExpensesParams struct {
	userID string
}

// ExpenseTableMockListExpensesResults contains results of ExpenseTableMock.ListExpenses
type ExpenseTableMockListExpensesResults struct {
	recs []expense.Record
	err  error
}

// Expect sets up the parameters ExpenseTableMock.ListExpenses must be called with
func (mm *mExpenseTableMockListExpenses) Expect(userID string) *mExpenseTableMockListExpenses {
	mm.expectation = &ExpenseTableMockListExpensesParams{userID}
	return mm
}

// Inspect accepts an inspector function that is called on every ExpenseTableMock.ListExpenses call
func (mm *mExpenseTableMockListExpenses) Inspect(f func(ctx context.Context, userID string)) *mExpenseTableMockListExpenses {
	mm.inspect = f
	return mm
}

// Return sets up the results ExpenseTableMock.ListExpenses returns
func (mm *mExpenseTableMockListExpenses) Return(recs []expense.Record, err error) *ExpenseTableMock {
	mm.results = &ExpenseTableMockListExpensesResults{recs, err}
	return mm.mock
}

// Set replaces ExpenseTableMock.ListExpenses with f
func (mm *mExpenseTableMockListExpenses) Set(f func(ctx context.Context, userID string) ([]expense.Record, error)) *ExpenseTableMock {
	mm.fn = f
	return mm.mock
}

func (mm *mExpenseTableMockListExpenses) isSet() bool {
	return mm.results != nil || mm.fn != nil
}

// ListExpenses implements the mocked interface
func (m *ExpenseTableMock) ListExpenses(ctx context.Context, userID string) (recs []expense.Record, err error) {
	mm := &m.ListExpensesMock
	atomic.AddUint64(&mm.calls, 1)

	if mm.inspect != nil {
		mm.inspect(ctx, userID)
	}
	if mm.expectation != nil {
		got := ExpenseTableMockListExpensesParams{userID}
		if !minimock.Equal(*mm.expectation, got) {
			m.t.Errorf("ExpenseTableMock.ListExpenses got unexpected parameters, want: %#v, got: %#v", *mm.expectation, got)
		}
	}
	if mm.fn != nil {
		return mm.fn(ctx, userID)
	}
	if mm.results == nil {
		m.t.Fatalf("Unexpected call to ExpenseTableMock.ListExpenses")
		return
	}
	return mm.results.recs, mm.results.err
}

// ListExpensesAfterCounter returns a count of finished ExpenseTableMock.ListExpenses invocations
func (m *ExpenseTableMock) ListExpensesAfterCounter() uint64 {
	return atomic.LoadUint64(&m.ListExpensesMock.calls)
}

type mExpenseTableMockUpdateExpense struct {
	mock        *ExpenseTableMock
	expectation *ExpenseTableMockUpdateExpenseParams
	results     *ExpenseTableMockUpdateExpenseResults
	inspect     func(ctx context.Context, userID string, expenseID string, upd expense.Update)
	fn          func(ctx context.Context, userID string, expenseID string, upd expense.Update) (expense.Update, error)
	calls       uint64
}

// ExpenseTableMockUpdateExpenseParams contains parameters of ExpenseTableMock.UpdateExpense
type ExpenseTableMockUpdateExpenseParams struct {
	userID    string
	expenseID string
	upd       expense.Update
}

// ExpenseTableMockUpdateExpenseResults contains results of ExpenseTableMock.UpdateExpense
type ExpenseTableMockUpdateExpenseResults struct {
	changed expense.Update
	err     error
}

// Expect sets up the parameters ExpenseTableMock.UpdateExpense must be called with
func (mm *mExpenseTableMockUpdateExpense) Expect(userID string, expenseID string, upd expense.Update) *mExpenseTableMockUpdateExpense {
	mm.expectation = &ExpenseTableMockUpdateExpenseParams{userID, expenseID, upd}
	return mm
}

// Inspect accepts an inspector function that is called on every ExpenseTableMock.UpdateExpense call
func (mm *mExpenseTableMockUpdateExpense) Inspect(f func(ctx context.Context, userID string, expenseID string, upd expense.Update)) *mExpenseTableMockUpdateExpense {
	mm.inspect = f
	return mm
}

// Return sets up the results ExpenseTableMock.UpdateExpense returns
func (mm *mExpenseTableMockUpdateExpense) Return(changed expense.Update, err error) *ExpenseTableMock {
	mm.results = &ExpenseTableMockUpdateExpenseResults{changed, err}
	return mm.mock
}

// Set replaces ExpenseTableMock.UpdateExpense with f
func (mm *mExpenseTableMockUpdateExpense) Set(f func(ctx context.Context, userID string, expenseID string, upd expense.Update) (expense.Update, error)) *ExpenseTableMock {
	mm.fn = f
	return mm.mock
}

func (mm *mExpenseTableMockUpdateExpense) isSet() bool {
	return mm.results != nil || mm.fn != nil
}

// UpdateExpense implements the mocked interface
func (m *ExpenseTableMock) UpdateExpense(ctx context.Context, userID string, expenseID string, upd expense.Update) (changed expense.Update, err error) {
	mm := &m.UpdateExpenseMock
	atomic.AddUint64(&mm.calls, 1)

	if mm.inspect != nil {
		mm.inspect(ctx, userID, expenseID, upd)
	}
	if mm.expectation != nil {
		got := ExpenseTableMockUpdateExpenseParams{userID, expenseID, upd}
		if !minimock.Equal(*mm.expectation, got) {
			m.t.Errorf("ExpenseTableMock.UpdateExpense got unexpected parameters, want: %#v, got: %#v", *mm.expectation, got)
		}
	}
	if mm.fn != nil {
		return mm.fn(ctx, userID, expenseID, upd)
	}
	if mm.results == nil {
		m.t.Fatalf("Unexpected call to ExpenseTableMock.UpdateExpense")
		return
	}
	return mm.results.changed, mm.results.err
}

// UpdateExpenseAfterCounter returns a count of finished ExpenseTableMock.UpdateExpense invocations
func (m *ExpenseTableMock) UpdateExpenseAfterCounter() uint64 {
	return atomic.LoadUint64(&m.UpdateExpenseMock.calls)
}

type mExpenseTableMockDeleteExpense struct {
	mock        *ExpenseTableMock
	expectation *ExpenseTableMockDeleteExpenseParams
	results     *ExpenseTableMockDeleteExpenseResults
	inspect     func(ctx context.Context, userID string, expenseID string)
	fn          func(ctx context.Context, userID string, expenseID string) error
	calls       uint64
}

// ExpenseTableMockDeleteExpenseParams contains parameters of ExpenseTableMock.DeleteExpense
type ExpenseTableMockDeleteExpenseParams struct {
	userID    string
	expenseID string
}

// ExpenseTableMockDeleteExpenseResults contains results of ExpenseTableMock.DeleteExpense
type ExpenseTableMockDeleteExpenseResults struct {
	err error
}

// Expect sets up the parameters ExpenseTableMock.DeleteExpense must be called with
func (mm *mExpenseTableMockDeleteExpense) Expect(userID string, expenseID string) *mExpenseTableMockDeleteExpense {
	mm.expectation = &ExpenseTableMockDeleteExpenseParams{userID, expenseID}
	return mm
}

// Inspect accepts an inspector function that is called on every ExpenseTableMock.DeleteExpense call
func (mm *mExpenseTableMockDeleteExpense) Inspect(f func(ctx context.Context, userID string, expenseID string)) *mExpenseTableMockDeleteExpense {
	mm.inspect = f
	return mm
}

// Return sets up the results ExpenseTableMock.DeleteExpense returns
func (mm *mExpenseTableMockDeleteExpense) Return(err error) *ExpenseTableMock {
	mm.results = &ExpenseTableMockDeleteExpenseResults{err}
	return mm.mock
}

// Set replaces ExpenseTableMock.DeleteExpense with f
func (mm *mExpenseTableMockDeleteExpense) Set(f func(ctx context.Context, userID string, expenseID string) error) *ExpenseTableMock {
	mm.fn = f
	return mm.mock
}

func (mm *mExpenseTableMockDeleteExpense) isSet() bool {
	return mm.results != nil || mm.fn != nil
}

// DeleteExpense implements the mocked interface
func (m *ExpenseTableMock) DeleteExpense(ctx context.Context, userID string, expenseID string) (err error) {
	mm := &m.DeleteExpenseMock
	atomic.AddUint64(&mm.calls, 1)

	if mm.inspect != nil {
		mm.inspect(ctx, userID, expenseID)
	}
	if mm.expectation != nil {
		got := ExpenseTableMockDeleteExpenseParams{userID, expenseID}
		if !minimock.Equal(*mm.expectation, got) {
			m.t.Errorf("ExpenseTableMock.DeleteExpense got unexpected parameters, want: %#v, got: %#v", *mm.expectation, got)
		}
	}
	if mm.fn != nil {
		return mm.fn(ctx, userID, expenseID)
	}
	if mm.results == nil {
		m.t.Fatalf("Unexpected call to ExpenseTableMock.DeleteExpense")
		return
	}
	return mm.results.err
}

// DeleteExpenseAfterCounter returns a count of finished ExpenseTableMock.DeleteExpense invocations
func (m *ExpenseTableMock) DeleteExpenseAfterCounter() uint64 {
	return atomic.LoadUint64(&m.DeleteExpenseMock.calls)
}

// MinimockFinish checks that all mocked methods have been called
func (m *ExpenseTableMock) MinimockFinish() {
	if m.PutExpenseMock.isSet() && m.PutExpenseAfterCounter() == 0 {
		m.t.Error("Expected call to ExpenseTableMock.PutExpense")
	}
	if m.ListExpensesMock.isSet() && m.ListExpensesAfterCounter() == 0 {
		m.t.Error("Expected call to ExpenseTableMock.ListExpenses")
	}
	if m.UpdateExpenseMock.isSet() && m.UpdateExpenseAfterCounter() == 0 {
		m.t.Error("Expected call to ExpenseTableMock.UpdateExpense")
	}
	if m.DeleteExpenseMock.isSet() && m.DeleteExpenseAfterCounter() == 0 {
		m.t.Error("Expected call to ExpenseTableMock.DeleteExpense")
	}
}

// MinimockWait waits for all mocked methods to be called the expected number of times
func (m *ExpenseTableMock) MinimockWait(timeout time.Duration) {
	deadline := time.Now().Add(timeout)
	for !m.minimockDone() && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	m.MinimockFinish()
}

func (m *ExpenseTableMock) minimockDone() bool {
	return (!m.PutExpenseMock.isSet() || m.PutExpenseAfterCounter() > 0) &&
		(!m.ListExpensesMock.isSet() || m.ListExpensesAfterCounter() > 0) &&
		(!m.UpdateExpenseMock.isSet() || m.UpdateExpenseAfterCounter() > 0) &&
		(!m.DeleteExpenseMock.isSet() || m.DeleteExpenseAfterCounter() > 0)
}
