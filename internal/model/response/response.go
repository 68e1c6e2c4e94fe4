package response

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
	"max.ks1230/smart-receipts/internal/logger"
)

// Response is the envelope every handler returns: a status code and a
// JSON-encoded body, the shape a Lambda proxy caller expects.
type Response struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
}

type errorBody struct {
	Error string `json:"error"`
}

func OK(body interface{}) Response {
	return encode(http.StatusOK, body)
}

func BadRequest(msg string) Response {
	return encode(http.StatusBadRequest, errorBody{Error: msg})
}

func InternalError(err error) Response {
	return encode(http.StatusInternalServerError, errorBody{Error: err.Error()})
}

// InternalErrorMessage answers 500 with a fixed message instead of the
// underlying error text.
func InternalErrorMessage(msg string) Response {
	return encode(http.StatusInternalServerError, errorBody{Error: msg})
}

func encode(status int, body interface{}) Response {
	raw, err := json.Marshal(body)
	if err != nil {
		logger.Error("cannot encode response body", zap.Error(err))
		return Response{
			StatusCode: http.StatusInternalServerError,
			Body:       `{"error":"cannot encode response body"}`,
		}
	}
	return Response{StatusCode: status, Body: string(raw)}
}

// Decode unmarshals a request payload. A failure is already shaped as a 400.
func Decode(payload []byte, dst interface{}) (Response, bool) {
	if len(payload) == 0 {
		payload = []byte("{}")
	}
	if err := json.Unmarshal(payload, dst); err != nil {
		return BadRequest("invalid request payload: " + err.Error()), false
	}
	return Response{}, true
}
