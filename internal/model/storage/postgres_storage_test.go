package storage

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/smart-receipts/internal/entity/expense"
	"max.ks1230/smart-receipts/internal/entity/preference"
)

func Test_OnInsertExpenseWithoutImage_ShouldBindNullKey(t *testing.T) {
	query, args, err := insertExpenseQuery(expense.Record{UserID: "a@x.io", ExpenseID: "1"}).ToSql()

	require.NoError(t, err)
	assert.Contains(t, query, "INSERT INTO expenses")
	assert.Contains(t, query, "$10")
	assert.Equal(t, sql.NullString{}, args[7])
}

func Test_OnUpdateExpense_ShouldUpsertAndKeepStoredImage(t *testing.T) {
	query, args, err := updateExpenseQuery("a@x.io", "1", expense.Update{Vendor: "Cafe"}).ToSql()

	require.NoError(t, err)
	assert.Contains(t, query, "ON CONFLICT (user_id, expense_id) DO UPDATE")
	assert.Contains(t, query, "COALESCE(EXCLUDED.s3_key, expenses.s3_key)")
	assert.Equal(t, "Cafe", args[2])
}

func Test_OnListAndDeleteExpenses_ShouldFilterByKey(t *testing.T) {
	query, args, err := listExpensesQuery("a@x.io").ToSql()
	require.NoError(t, err)
	assert.Contains(t, query, "WHERE user_id = $1")
	assert.Equal(t, []interface{}{"a@x.io"}, args)

	query, args, err = deleteExpenseQuery("a@x.io", "1").ToSql()
	require.NoError(t, err)
	assert.Contains(t, query, "DELETE FROM expenses")
	assert.ElementsMatch(t, []interface{}{"a@x.io", "1"}, args)
}

func Test_OnPutPreference_ShouldReplaceWholeRecord(t *testing.T) {
	query, args, err := putPreferenceQuery(preference.Record{UserID: "a@x.io"}).ToSql()

	require.NoError(t, err)
	assert.Contains(t, query, "ON CONFLICT (user_id) DO UPDATE SET notifications_enabled = EXCLUDED.notifications_enabled")
	assert.Equal(t, []interface{}{"a@x.io", false}, args)
}
