package response

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func Test_OnBadRequest_ShouldWrapMessageInErrorField(t *testing.T) {
	resp := BadRequest("userId is required.")

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.JSONEq(t, `{"error":"userId is required."}`, resp.Body)
}

func Test_OnInternalError_ShouldExposeErrorText(t *testing.T) {
	resp := InternalError(errors.Wrap(errors.New("access denied"), "put expense"))

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.JSONEq(t, `{"error":"put expense: access denied"}`, resp.Body)
}

func Test_OnDecodeEmptyPayload_ShouldTreatAsEmptyObject(t *testing.T) {
	var req struct {
		UserID string `json:"userId"`
	}
	_, ok := Decode(nil, &req)

	assert.True(t, ok)
	assert.Empty(t, req.UserID)
}

func Test_OnDecodeGarbage_ShouldAnswerBadRequest(t *testing.T) {
	var req struct{}
	resp, ok := Decode([]byte(`[1,2`), &req)

	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, resp.Body, "invalid request payload")
}
