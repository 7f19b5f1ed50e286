// Package useragent classifies HTTP User-Agent strings into a browser family
// and version.
//
// Classification is a fixed, ordered table of pre-compiled regular expressions.
// Real user agents routinely satisfy several patterns at once (a Chrome user
// agent also carries "Safari" and "AppleWebKit" tokens), so the order of the
// table decides the result:
//
//  1. Opera – "Opera" or "OPR", optionally followed by whitespace and letters
//  2. Legacy Microsoft – "Trident" or "Edge"
//  3. Chrome lineage – "Chrome", "Firefox" or "FxiOS"
//  4. Safari
//  5. AppleWebKit
//  6. Generic – the last "name/version" token in the string
//
// The first rule that matches wins and later rules are never consulted. Family
// tokens are matched case-insensitively and returned exactly as they appear in
// the input.
//
// # Usage
//
//	b := useragent.Classify(r.UserAgent())
//	log.Printf("browser=%s", b) // e.g. "Chrome/114.0.0.0"
//
// # Version tokens
//
// A version is one or more characters from the class [0-9\\.]: digits,
// backslashes and dots. Matching the backslash is a long-standing quirk of the
// heuristic this package reproduces; it is kept on purpose so extracted
// versions stay byte-compatible with existing consumers.
//
// # Error Handling
//
// There is none. Classify is a total function: empty, malformed or hostile
// input yields an empty Browser rather than an error.
package useragent
