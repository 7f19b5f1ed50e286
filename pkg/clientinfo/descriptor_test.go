package clientinfo_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/clientenv/pkg/clientinfo"
)

func TestDescriptor_MarshalJSON(t *testing.T) {
	t.Parallel()

	d := clientinfo.NewDescriptor("Win32", "Google Inc.", "Chrome", "114.0", "en-US", "Pacific Standard Time")
	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"platform": "Win32",
		"make": "Google Inc.",
		"model": "Chrome",
		"version": "114.0",
		"appVersion": "Chrome/114.0",
		"language": "en-US",
		"timezone": "Pacific Standard Time"
	}`, string(data))

	data, err = json.Marshal(clientinfo.NewDescriptor("", "", "", "", "", ""))
	require.NoError(t, err)
	assert.JSONEq(t, `{"platform":"","make":"","model":"","version":"","appVersion":"/","language":"","timezone":""}`, string(data))
}

func TestDescriptor_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	t.Run("present", func(t *testing.T) {
		t.Parallel()

		var d clientinfo.Descriptor
		err := json.Unmarshal([]byte(`{"model":"Safari","version":"605.1.15","appVersion":"ignored"}`), &d)
		require.NoError(t, err)
		assert.True(t, d.Present())
		assert.Equal(t, "Safari/605.1.15", d.AppVersion())
	})

	t.Run("empty object is absent", func(t *testing.T) {
		t.Parallel()

		d := clientinfo.NewDescriptor("a", "b", "c", "d", "e", "f")
		require.NoError(t, json.Unmarshal([]byte(`{}`), &d))
		assert.False(t, d.Present())
	})

	t.Run("invalid", func(t *testing.T) {
		t.Parallel()

		var d clientinfo.Descriptor
		err := json.Unmarshal([]byte(`{"model":1}`), &d)
		require.Error(t, err)
		assert.ErrorIs(t, err, clientinfo.ErrInvalidDescriptor)
	})
}

func TestDecodeNavigator(t *testing.T) {
	t.Parallel()

	nav, err := clientinfo.DecodeNavigator(strings.NewReader(`{"platform":"MacIntel","vendor":"Apple Computer, Inc.","userAgent":"Safari/605.1.15"}`))
	require.NoError(t, err)
	require.NotNil(t, nav)
	assert.Equal(t, "MacIntel", nav.Platform)
	assert.Equal(t, "Apple Computer, Inc.", nav.Vendor)

	nav, err = clientinfo.DecodeNavigator(strings.NewReader(`null`))
	require.NoError(t, err)
	assert.Nil(t, nav)

	_, err = clientinfo.DecodeNavigator(strings.NewReader(`{"platform":`))
	assert.ErrorIs(t, err, clientinfo.ErrInvalidNavigator)
}
