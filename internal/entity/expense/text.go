package expense

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/pkg/errors"
)

// Amount is a request field that may arrive as a JSON string or number.
// It is always stored by its text so no precision is lost.
type Amount string

func (a *Amount) UnmarshalJSON(b []byte) error {
	s, err := TextOf(b)
	if err != nil {
		return errors.Wrap(err, "amount")
	}
	*a = Amount(s)
	return nil
}

// TextOf renders a scalar JSON value as text: strings as-is, numbers by
// their literal, booleans as true/false, null as NotApplicable.
func TextOf(raw json.RawMessage) (string, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return "", err
	}

	switch t := v.(type) {
	case nil:
		return NotApplicable, nil
	case string:
		return t, nil
	case json.Number:
		return t.String(), nil
	case bool:
		return strconv.FormatBool(t), nil
	default:
		return "", errors.Errorf("expected a string or a number, got %s", bytes.TrimSpace(raw))
	}
}

// OrDefault returns *s, or NotApplicable when the field was absent.
func OrDefault(s *string) string {
	if s == nil {
		return NotApplicable
	}
	return *s
}

// AmountOrDefault is OrDefault for amounts.
func AmountOrDefault(a *Amount) string {
	if a == nil {
		return NotApplicable
	}
	return string(*a)
}
