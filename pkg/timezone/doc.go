// Package timezone derives a human-readable timezone label from a timestamp.
//
// A timestamp is first rendered in the long host form used by browsers,
//
//	Tue Jan 02 2024 15:04:05 GMT+0100 (Central European Standard Time)
//
// and the label is then read back from the last parenthesised group that
// starts with a letter or whitespace. The label is free text: it is not an
// IANA identifier and may differ between hosts. Callers that need a stable
// identifier should use time.Location.String instead.
//
//	label := timezone.Extract(time.Now()) // "Coordinated Universal Time"
//
// Label works on any rendered string, so it can also be applied to a
// Date.toString() value reported by a browser.
package timezone
