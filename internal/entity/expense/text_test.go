package expense

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_OnNumericAmount_ShouldKeepLiteralText(t *testing.T) {
	var req struct {
		Amount *Amount `json:"amount"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"amount": 12.50}`), &req))
	assert.Equal(t, "12.50", AmountOrDefault(req.Amount))

	require.NoError(t, json.Unmarshal([]byte(`{"amount": "7.99"}`), &req))
	assert.Equal(t, "7.99", AmountOrDefault(req.Amount))
}

func Test_OnAbsentOrNullAmount_ShouldDefault(t *testing.T) {
	var req struct {
		Amount *Amount `json:"amount"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{}`), &req))
	assert.Equal(t, NotApplicable, AmountOrDefault(req.Amount))

	require.NoError(t, json.Unmarshal([]byte(`{"amount": null}`), &req))
	assert.Equal(t, NotApplicable, AmountOrDefault(req.Amount))
}

func Test_OnStructuredAmount_ShouldFail(t *testing.T) {
	var req struct {
		Amount *Amount `json:"amount"`
	}
	assert.Error(t, json.Unmarshal([]byte(`{"amount": {"value": 1}}`), &req))
}

func Test_OnUpdateWithoutImage_ShouldKeepStoredImage(t *testing.T) {
	rec := Record{Vendor: "Shop", S3Key: "receipts/a.jpg", IsRecurring: true}

	Update{Vendor: NotApplicable, Amount: "3"}.Apply(&rec)

	assert.Equal(t, NotApplicable, rec.Vendor)
	assert.Equal(t, "3", rec.Amount)
	assert.Equal(t, "receipts/a.jpg", rec.S3Key)
	assert.False(t, rec.IsRecurring)
}
