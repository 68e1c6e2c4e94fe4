package app

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/smart-receipts/internal/model/router"
	"max.ks1230/smart-receipts/internal/model/storage"
)

func Test_OnRegister_ShouldServeEveryHandler(t *testing.T) {
	r := router.New()
	Register(r, Clients{Tables: storage.NewInMemStorage()})

	assert.ElementsMatch(t, []string{
		Categorize, Extract,
		SaveExpense, GetExpenses, UpdateExpense, DeleteExpense,
		GetPreferences, UpdatePreferences,
		UploadImage, PresignedURL,
		SendNotifications,
	}, r.Names())
}

func Test_OnSaveThenGetThroughRouter_ShouldRoundTrip(t *testing.T) {
	r := router.New()
	Register(r, Clients{Tables: storage.NewInMemStorage()})
	ctx := context.Background()

	resp, err := r.Invoke(ctx, SaveExpense, []byte(`{"userId":"u@x.io","vendor":"Cafe","amount":4.2}`))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var saved struct {
		ExpenseID string `json:"expenseId"`
	}
	require.NoError(t, json.Unmarshal([]byte(resp.Body), &saved))

	resp, err = r.Invoke(ctx, GetExpenses, []byte(`{"userId":"u@x.io"}`))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var listed struct {
		Expenses []struct {
			ExpenseID string `json:"expenseId"`
			Amount    string `json:"amount"`
		} `json:"expenses"`
	}
	require.NoError(t, json.Unmarshal([]byte(resp.Body), &listed))
	require.Len(t, listed.Expenses, 1)
	assert.Equal(t, saved.ExpenseID, listed.Expenses[0].ExpenseID)
	assert.Equal(t, "4.2", listed.Expenses[0].Amount)
}

func Test_OnMissingUserThroughRouter_ShouldAnswerBadRequest(t *testing.T) {
	r := router.New()
	Register(r, Clients{Tables: storage.NewInMemStorage()})

	for _, name := range []string{SaveExpense, GetExpenses, UpdateExpense, DeleteExpense, GetPreferences, UpdatePreferences} {
		resp, err := r.Invoke(context.Background(), name, []byte(`{}`))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, name)
		assert.Contains(t, resp.Body, "userId", name)
	}
}
