package expenses

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gojuno/minimock/v3"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/smart-receipts/internal/entity/expense"
	"max.ks1230/smart-receipts/internal/model/expenses/mock"
	"max.ks1230/smart-receipts/internal/model/response"
	"max.ks1230/smart-receipts/internal/model/storage"
)

var fixedNow = time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC)

type handlerFunc func(ctx context.Context, payload []byte) response.Response

func newTestService(table expenseTable, events eventPublisher) *Service {
	s := NewService(table, events)
	s.now = func() time.Time { return fixedNow }
	return s
}

func listFor(t *testing.T, s *Service, userID string) []expense.Record {
	resp := s.List(context.Background(), []byte(`{"userId":"`+userID+`"}`))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body listResponse
	require.NoError(t, json.Unmarshal([]byte(resp.Body), &body))
	assert.Equal(t, fetchedMessage, body.Message)
	return body.Expenses
}

func Test_OnSaveThenList_ShouldReturnRecordWithFreshID(t *testing.T) {
	s := newTestService(storage.NewInMemStorage(), nil)
	ctx := context.Background()

	first := s.Save(ctx, []byte(`{"userId":"u@x.io","vendor":"Cafe","amount":"12.50","category":"Food & Dining","date":"2024-05-01","s3_key":"receipts/a.jpg"}`))
	second := s.Save(ctx, []byte(`{"userId":"u@x.io","vendor":"Bus"}`))
	require.Equal(t, http.StatusOK, first.StatusCode)
	require.Equal(t, http.StatusOK, second.StatusCode)

	var saved1, saved2 saveResponse
	require.NoError(t, json.Unmarshal([]byte(first.Body), &saved1))
	require.NoError(t, json.Unmarshal([]byte(second.Body), &saved2))
	assert.Equal(t, savedMessage, saved1.Message)
	assert.Len(t, saved1.ExpenseID, 36)
	assert.NotEqual(t, saved1.ExpenseID, saved2.ExpenseID)

	recs := listFor(t, s, "u@x.io")
	require.Len(t, recs, 2)

	var cafe expense.Record
	for _, rec := range recs {
		if rec.ExpenseID == saved1.ExpenseID {
			cafe = rec
		}
	}
	assert.Equal(t, expense.Record{
		UserID:      "u@x.io",
		ExpenseID:   saved1.ExpenseID,
		Vendor:      "Cafe",
		Amount:      "12.50",
		Category:    "Food & Dining",
		Description: expense.NotApplicable,
		Date:        "2024-05-01",
		S3Key:       "receipts/a.jpg",
		CreatedAt:   "2024-05-01T10:30:00Z",
	}, cafe)

	assert.Empty(t, listFor(t, s, "other@x.io"))
}

func Test_OnNumericAmount_ShouldStoreItAsString(t *testing.T) {
	table := storage.NewInMemStorage()
	s := newTestService(table, nil)

	resp := s.Save(context.Background(), []byte(`{"userId":"u","amount":7.05,"vendor":null}`))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	recs := listFor(t, s, "u")
	require.Len(t, recs, 1)
	assert.Equal(t, "7.05", recs[0].Amount)
	assert.Equal(t, expense.NotApplicable, recs[0].Vendor)
}

func Test_OnUpdate_ShouldResetOmittedFieldsAndKeepImage(t *testing.T) {
	table := storage.NewInMemStorage()
	s := newTestService(table, nil)
	s.newID = func() string { return "e-1" }
	ctx := context.Background()

	require.Equal(t, http.StatusOK, s.Save(ctx, []byte(`{"userId":"u","vendor":"Cafe","amount":"3","category":"Food","description":"tea","date":"d","s3_key":"receipts/a.jpg","isRecurring":true}`)).StatusCode)

	resp := s.Update(ctx, []byte(`{"userId":"u","expenseId":"e-1","vendor":"Cafe Two"}`))

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"message":"Expense updated successfully","updatedAttributes":{
		"vendor":"Cafe Two","amount":"Not Applicable","category":"Not Applicable",
		"description":"Not Applicable","date":"Not Applicable","isRecurring":false}}`, resp.Body)

	recs := listFor(t, s, "u")
	require.Len(t, recs, 1)
	assert.Equal(t, "Cafe Two", recs[0].Vendor)
	assert.Equal(t, expense.NotApplicable, recs[0].Amount)
	assert.Equal(t, expense.NotApplicable, recs[0].Description)
	assert.False(t, recs[0].IsRecurring)
	assert.Equal(t, "receipts/a.jpg", recs[0].S3Key)
	assert.Equal(t, "2024-05-01T10:30:00Z", recs[0].CreatedAt)
}

func Test_OnUpdateWithImage_ShouldReplaceIt(t *testing.T) {
	table := storage.NewInMemStorage()
	s := newTestService(table, nil)
	s.newID = func() string { return "e-1" }
	ctx := context.Background()

	s.Save(ctx, []byte(`{"userId":"u","s3_key":"receipts/a.jpg"}`))
	s.Update(ctx, []byte(`{"userId":"u","expenseId":"e-1","s3_key":"receipts/b.jpg"}`))

	recs := listFor(t, s, "u")
	require.Len(t, recs, 1)
	assert.Equal(t, "receipts/b.jpg", recs[0].S3Key)
}

func Test_OnDeleteOfUnknownExpense_ShouldSucceed(t *testing.T) {
	s := newTestService(storage.NewInMemStorage(), nil)

	resp := s.Delete(context.Background(), []byte(`{"userId":"u","expenseId":"missing"}`))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"message":"Expense deleted successfully"}`, resp.Body)
}

func Test_OnDelete_ShouldRemoveOnlyThatExpense(t *testing.T) {
	s := newTestService(storage.NewInMemStorage(), nil)
	ids := []string{"e-1", "e-2"}
	s.newID = func() string {
		id := ids[0]
		ids = ids[1:]
		return id
	}
	ctx := context.Background()
	s.Save(ctx, []byte(`{"userId":"u"}`))
	s.Save(ctx, []byte(`{"userId":"u"}`))

	s.Delete(ctx, []byte(`{"userId":"u","expenseId":"e-1"}`))

	recs := listFor(t, s, "u")
	require.Len(t, recs, 1)
	assert.Equal(t, "e-2", recs[0].ExpenseID)
}

func Test_OnMissingKeys_ShouldAnswerBadRequestNamingThem(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	s := newTestService(mock.NewExpenseTableMock(m), nil)
	ctx := context.Background()

	cases := []struct {
		name    string
		handler handlerFunc
		payload string
		missing string
	}{
		{"save", s.Save, `{"vendor":"x"}`, "userId"},
		{"list", s.List, `{}`, "userId"},
		{"update without expense", s.Update, `{"userId":"u"}`, "expenseId"},
		{"update without user", s.Update, `{"expenseId":"e"}`, "userId"},
		{"delete", s.Delete, `{"userId":"u"}`, "expenseId"},
	}

	for _, tc := range cases {
		resp := tc.handler(ctx, []byte(tc.payload))
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, tc.name)
		assert.Contains(t, resp.Body, tc.missing, tc.name)
	}
}

func Test_OnStorageFailure_ShouldAnswerInternalError(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	table := mock.NewExpenseTableMock(m)
	events := mock.NewEventPublisherMock(m)
	s := newTestService(table, events)
	ctx := context.Background()
	fail := errors.New("put expense: ProvisionedThroughputExceededException")

	table.PutExpenseMock.Return(fail)
	table.ListExpensesMock.Expect("u").Return(nil, fail)
	table.UpdateExpenseMock.Return(expense.Update{}, fail)
	table.DeleteExpenseMock.Expect("u", "e").Return(fail)

	for _, h := range []handlerFunc{
		s.Save, s.List, s.Update, s.Delete,
	} {
		resp := h(ctx, []byte(`{"userId":"u","expenseId":"e"}`))
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		assert.JSONEq(t, `{"error":"put expense: ProvisionedThroughputExceededException"}`, resp.Body)
	}
	assert.Equal(t, uint64(0), events.PublishAfterCounter())
}

func Test_OnSave_ShouldPublishEventKeyedByOwner(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	events := mock.NewEventPublisherMock(m)
	s := newTestService(storage.NewInMemStorage(), events)
	s.newID = func() string { return "e-1" }

	events.PublishMock.
		Expect("u", []byte(`{"type":"expense.saved","userId":"u","expenseId":"e-1","at":"2024-05-01T10:30:00Z"}`)).
		Return(nil)

	resp := s.Save(context.Background(), []byte(`{"userId":"u"}`))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func Test_OnPublishFailure_ShouldStillSucceed(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	events := mock.NewEventPublisherMock(m)
	s := newTestService(storage.NewInMemStorage(), events)

	events.PublishMock.Return(errors.New("kafka: client has run out of available brokers"))

	resp := s.Delete(context.Background(), []byte(`{"userId":"u","expenseId":"e"}`))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, uint64(1), events.PublishAfterCounter())
}

