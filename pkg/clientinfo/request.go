package clientinfo

import (
	"net/http"
	"strconv"
	"strings"

	"golang.org/x/text/language"
)

// Client hint and negotiation headers read by FromRequest.
const (
	HeaderPlatform       = "Sec-CH-UA-Platform"
	HeaderAcceptLanguage = "Accept-Language"
)

// maxAcceptLanguageLength keeps oversized headers out of the tag parser.
const maxAcceptLanguageLength = 4096

// FromRequest derives navigator fields from request headers.
// It returns nil when the request carries none of them, e.g. for a bare
// health probe, so that Build reports no navigator context.
// Product and Vendor are not sent by browsers and stay empty.
func FromRequest(r *http.Request) *Navigator {
	if r == nil {
		return nil
	}

	nav := Navigator{
		Platform:  clientHint(r.Header.Get(HeaderPlatform)),
		UserAgent: r.UserAgent(),
		Language:  preferredLanguage(r.Header.Get(HeaderAcceptLanguage)),
	}
	if nav == (Navigator{}) {
		return nil
	}
	return &nav
}

// clientHint unwraps a structured-header string such as `"macOS"`.
func clientHint(v string) string {
	v = strings.TrimSpace(v)
	if s, err := strconv.Unquote(v); err == nil {
		return s
	}
	return v
}

// preferredLanguage returns the highest weighted language tag, or "".
func preferredLanguage(header string) string {
	if header == "" {
		return ""
	}
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil {
		return ""
	}
	for _, tag := range tags {
		if tag != language.Und {
			return tag.String()
		}
	}
	return ""
}
