package clientinfo_test

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/clientenv/pkg/clientinfo"
)

func TestFromRequest(t *testing.T) {
	t.Parallel()

	t.Run("bare request has no navigator", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Del("User-Agent")
		assert.Nil(t, clientinfo.FromRequest(req))
		assert.Nil(t, clientinfo.FromRequest(nil))
	})

	t.Run("headers", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("User-Agent", chromeUA)
		req.Header.Set(clientinfo.HeaderPlatform, `"macOS"`)
		req.Header.Set(clientinfo.HeaderAcceptLanguage, "fr;q=0.5, en-US, en;q=0.8")

		nav := clientinfo.FromRequest(req)
		require.NotNil(t, nav)
		assert.Equal(t, clientinfo.Navigator{
			Platform:  "macOS",
			UserAgent: chromeUA,
			Language:  "en-US",
		}, *nav)
	})

	t.Run("malformed language is dropped", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("User-Agent", "SomeBot/3.2")
		req.Header.Set(clientinfo.HeaderAcceptLanguage, "!!!")

		nav := clientinfo.FromRequest(req)
		require.NotNil(t, nav)
		assert.Equal(t, "", nav.Language)
		assert.Equal(t, "SomeBot/3.2", nav.UserAgent)
	})
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	newHandler := func(got *clientinfo.Descriptor, found *bool) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			*got, *found = clientinfo.FromContext(r.Context())
			w.WriteHeader(http.StatusOK)
		})
	}
	b := clientinfo.NewBuilder(clientinfo.WithClock(func() time.Time {
		return time.Date(2024, time.January, 15, 12, 0, 0, 0, time.UTC)
	}))

	t.Run("stores descriptor", func(t *testing.T) {
		t.Parallel()

		var got clientinfo.Descriptor
		var found bool
		h := clientinfo.Middleware(b)(newHandler(&got, &found))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("User-Agent", chromeUA)
		h.ServeHTTP(httptest.NewRecorder(), req)

		require.True(t, found)
		assert.True(t, got.Present())
		assert.Equal(t, "Chrome/114.0.0.0", got.AppVersion())
		assert.Equal(t, "Coordinated Universal Time", got.Timezone())
	})

	t.Run("absent without navigator headers", func(t *testing.T) {
		t.Parallel()

		var got clientinfo.Descriptor
		var found bool
		h := clientinfo.Middleware(b)(newHandler(&got, &found))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Del("User-Agent")
		h.ServeHTTP(httptest.NewRecorder(), req)

		require.True(t, found)
		assert.False(t, got.Present())
	})

	t.Run("timezone header", func(t *testing.T) {
		t.Parallel()

		var got clientinfo.Descriptor
		var found bool
		h := clientinfo.Middleware(b, clientinfo.WithTimezoneHeader("X-Timezone"))(newHandler(&got, &found))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("User-Agent", chromeUA)
		req.Header.Set("X-Timezone", "America/Los_Angeles")
		h.ServeHTTP(httptest.NewRecorder(), req)
		assert.Equal(t, "Pacific Standard Time", got.Timezone())

		req.Header.Set("X-Timezone", "Not/AZone")
		h.ServeHTTP(httptest.NewRecorder(), req)
		assert.Equal(t, "Coordinated Universal Time", got.Timezone())
	})

	t.Run("custom extractor", func(t *testing.T) {
		t.Parallel()

		var got clientinfo.Descriptor
		var found bool
		extract := func(*http.Request) *clientinfo.Navigator {
			return &clientinfo.Navigator{Vendor: "Acme", UserAgent: "Opera/9.80"}
		}
		h := clientinfo.Middleware(b, clientinfo.WithNavigatorExtractor(extract))(newHandler(&got, &found))
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, "Acme", got.Make())
		assert.Equal(t, "Opera", got.Model())
	})
}

func TestFromContext_Missing(t *testing.T) {
	t.Parallel()

	_, ok := clientinfo.FromContext(context.Background())
	assert.False(t, ok)
}

func TestLoggerExtractor(t *testing.T) {
	t.Parallel()

	extract := clientinfo.LoggerExtractor()

	_, ok := extract(context.Background())
	assert.False(t, ok)

	_, ok = extract(clientinfo.WithContext(context.Background(), clientinfo.Descriptor{}))
	assert.False(t, ok, "absent descriptor is not logged")

	d := clientinfo.NewDescriptor("", "", "Chrome", "114.0", "", "")
	attr, ok := extract(clientinfo.WithContext(context.Background(), d))
	require.True(t, ok)
	assert.Equal(t, "client", attr.Key)
	assert.Equal(t, "Chrome/114.0", attr.Value.String())

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	logger.Info("hello", attr)
	assert.Contains(t, buf.String(), "client=Chrome/114.0")
}
