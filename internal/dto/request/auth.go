package request

import (
	"bytes"
	"encoding/json"
	"fmt"
)

type SignUpRequest struct {
	Username string `json:"username" validate:"required,max=150,username"`
	Email    string `json:"email" validate:"required,email,max=254"`
}

type TokenRequest struct {
	Username         string           `json:"username" validate:"required,max=150"`
	ConfirmationCode ConfirmationCode `json:"confirmation_code" validate:"required"`
}

// ConfirmationCode accepts the code either as a JSON number or a string.
type ConfirmationCode string

func (c *ConfirmationCode) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*c = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*c = ConfirmationCode(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("confirmation_code must be a string or a number")
	}
	*c = ConfirmationCode(n.String())
	return nil
}
