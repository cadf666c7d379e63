package external

import (
	"encoding/json"
	"errors"
	"fmt"

	"weather-cli/pkg/util/numberutils"
)

// ApiError is the provider's own error envelope, e.g. {"cod":"404","message":"city not found"}.
// The documented wire contract carries "cod" as a string; a bare JSON number is also
// accepted here, which is looser than that contract.
type ApiError struct {
	Code    int32  `json:"cod"`
	Message string `json:"message"`
}

func (e *ApiError) Error() string {
	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}

// UnmarshalJSON requires both fields. "cod" is normally a string holding an integer;
// a plain JSON number is accepted as well.
func (e *ApiError) UnmarshalJSON(data []byte) error {
	var wire struct {
		Cod     json.RawMessage `json:"cod"`
		Message *string         `json:"message"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	if len(wire.Cod) == 0 || string(wire.Cod) == "null" {
		return errors.New(`missing field "cod"`)
	}
	if wire.Message == nil {
		return errors.New(`missing field "message"`)
	}

	code, err := parseCode(wire.Cod)
	if err != nil {
		return err
	}

	e.Code = code
	e.Message = *wire.Message
	return nil
}

func parseCode(raw json.RawMessage) (int32, error) {
	var text string
	if raw[0] == '"' {
		if err := json.Unmarshal(raw, &text); err != nil {
			return 0, fmt.Errorf(`invalid field "cod": %w`, err)
		}
	} else {
		var number json.Number
		if err := json.Unmarshal(raw, &number); err != nil {
			return 0, fmt.Errorf(`invalid field "cod": expected string or number, got %s`, raw)
		}
		text = number.String()
	}

	code, err := numberutils.ToInt32WithError(text)
	if err != nil {
		return 0, fmt.Errorf(`invalid field "cod": %q is not an integer: %w`, text, errors.Unwrap(err))
	}
	return code, nil
}
