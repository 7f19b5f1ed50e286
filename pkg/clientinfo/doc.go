// Package clientinfo builds a normalized descriptor of a web client's runtime
// environment: platform, make, browser family and version, language and
// timezone.
//
// The input is a Navigator, the browser-like record a host environment can
// offer. Passing nil means there is no such environment (a server-side render,
// a CLI, a bot without headers) and produces an absent Descriptor that encodes
// as "{}". A non-nil Navigator always produces a present Descriptor in which
// unknown fields are "".
//
// # Usage
//
//	d := clientinfo.Build(&clientinfo.Navigator{
//		Platform:  "MacIntel",
//		Vendor:    "Google Inc.",
//		UserAgent: ua,
//		Language:  "en-US",
//	})
//	d.AppVersion() // "Chrome/114.0.0.0"
//
// Browser detection is delegated to the useragent package and the timezone
// label to the timezone package. AppVersion is always Model + "/" + Version.
//
// # HTTP
//
// FromRequest derives a Navigator from request headers and Middleware stores
// the resulting descriptor in the request context:
//
//	r := chi.NewRouter()
//	r.Use(clientinfo.Middleware(nil, clientinfo.WithTimezoneHeader("X-Timezone")))
//
//	d, _ := clientinfo.FromContext(req.Context())
//
// # Error Handling
//
// Building never fails. Only decoding helpers (DecodeNavigator and
// Descriptor.UnmarshalJSON) return errors, wrapping ErrInvalidNavigator and
// ErrInvalidDescriptor respectively.
package clientinfo
