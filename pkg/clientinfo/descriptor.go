package clientinfo

import (
	"encoding/json"
	"errors"
)

// Descriptor is the normalized description of a client environment.
//
// Every field is a string and "" means unknown. A Descriptor built without a
// navigator context is absent (Present reports false) and encodes as an empty
// JSON object, which is not the same as a present descriptor whose fields are
// all empty.
type Descriptor struct {
	platform string
	maker    string
	model    string
	version  string
	language string
	timezone string
	present  bool
}

// NewDescriptor returns a present descriptor with the given fields.
func NewDescriptor(platform, maker, model, version, language, timezone string) Descriptor {
	return Descriptor{
		platform: platform,
		maker:    maker,
		model:    model,
		version:  version,
		language: language,
		timezone: timezone,
		present:  true,
	}
}

// Present reports whether the descriptor was built from a navigator context.
func (d Descriptor) Present() bool { return d.present }

// Platform returns the host platform identifier.
func (d Descriptor) Platform() string { return d.platform }

// Make returns the vendor or product identifier.
func (d Descriptor) Make() string { return d.maker }

// Model returns the detected browser family.
func (d Descriptor) Model() string { return d.model }

// Version returns the detected browser version.
func (d Descriptor) Version() string { return d.version }

// AppVersion returns Model and Version joined by "/".
// It is "/" when both are unknown.
func (d Descriptor) AppVersion() string { return d.model + "/" + d.version }

// Language returns the locale identifier.
func (d Descriptor) Language() string { return d.language }

// Timezone returns the free-text timezone label.
func (d Descriptor) Timezone() string { return d.timezone }

// Map returns the descriptor fields keyed by their JSON names.
// An absent descriptor yields an empty, non-nil map.
func (d Descriptor) Map() map[string]string {
	if !d.present {
		return map[string]string{}
	}
	return map[string]string{
		"platform":   d.platform,
		"make":       d.maker,
		"model":      d.model,
		"version":    d.version,
		"appVersion": d.AppVersion(),
		"language":   d.language,
		"timezone":   d.timezone,
	}
}

type descriptorJSON struct {
	Platform   string `json:"platform"`
	Make       string `json:"make"`
	Model      string `json:"model"`
	Version    string `json:"version"`
	AppVersion string `json:"appVersion"`
	Language   string `json:"language"`
	Timezone   string `json:"timezone"`
}

var emptyObject = []byte("{}")

// MarshalJSON implements json.Marshaler.
func (d Descriptor) MarshalJSON() ([]byte, error) {
	if !d.present {
		return emptyObject, nil
	}
	return json.Marshal(descriptorJSON{
		Platform:   d.platform,
		Make:       d.maker,
		Model:      d.model,
		Version:    d.version,
		AppVersion: d.AppVersion(),
		Language:   d.language,
		Timezone:   d.timezone,
	})
}

// UnmarshalJSON implements json.Unmarshaler.
// An empty object decodes to an absent descriptor. appVersion is ignored
// because it is always derived from model and version.
func (d *Descriptor) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.Join(ErrInvalidDescriptor, err)
	}
	if len(raw) == 0 {
		*d = Descriptor{}
		return nil
	}

	var v descriptorJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return errors.Join(ErrInvalidDescriptor, err)
	}
	*d = NewDescriptor(v.Platform, v.Make, v.Model, v.Version, v.Language, v.Timezone)
	return nil
}
