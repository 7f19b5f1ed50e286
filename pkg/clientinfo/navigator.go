package clientinfo

import (
	"encoding/json"
	"errors"
	"io"
)

// Navigator carries the host-provided fields of a browser-like environment.
// Missing fields are left empty.
type Navigator struct {
	Platform  string `json:"platform,omitempty"`
	Product   string `json:"product,omitempty"`
	Vendor    string `json:"vendor,omitempty"`
	UserAgent string `json:"userAgent,omitempty"`
	Language  string `json:"language,omitempty"`
}

// maxNavigatorPayload bounds DecodeNavigator input.
const maxNavigatorPayload = 16 << 10

// DecodeNavigator reads a JSON navigator payload.
// A JSON null decodes to a nil navigator, meaning no host context.
func DecodeNavigator(r io.Reader) (*Navigator, error) {
	var nav *Navigator
	dec := json.NewDecoder(io.LimitReader(r, maxNavigatorPayload))
	if err := dec.Decode(&nav); err != nil {
		return nil, errors.Join(ErrInvalidNavigator, err)
	}
	return nav, nil
}
