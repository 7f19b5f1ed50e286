package useragent

import "regexp"

// Browser is the detected browser family and version.
// Both fields are empty when nothing in the user agent could be recognised.
type Browser struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// String returns the browser in "Name/Version" form.
// An unrecognised browser renders as "/".
func (b Browser) String() string { return b.Name + "/" + b.Version }

// IsUnknown reports whether no rule matched.
func (b Browser) IsUnknown() bool { return b.Name == "" && b.Version == "" }

// Rule is a single entry of the classification table.
// Regex must expose the family token as the first capture group
// and the version as the second.
type Rule struct {
	Name      string
	Regex     *regexp.Regexp
	OrderHint int
}

// versionPattern matches digits, backslashes and dots.
// The backslash is a legacy quirk kept for output compatibility: the pattern
// was meant to be an escaped dot, and consumers rely on the resulting shape.
const versionPattern = `([0-9\\.]+)`

// Rules are evaluated in OrderHint order and the first match wins.
// Each leading `^.*` is greedy, so a rule binds to the last occurrence of its
// token in the string.
var browserRules = []Rule{
	{
		Name:      RuleOpera,
		Regex:     regexp.MustCompile(`(?i)^.*(Opera[\sa-z]*|OPR[\sa-z]*)/` + versionPattern),
		OrderHint: 10,
	},
	{
		Name:      RuleLegacyMicrosoft,
		Regex:     regexp.MustCompile(`(?i)^.*(Trident|Edge)/` + versionPattern),
		OrderHint: 20,
	},
	{
		Name:      RuleChromeLineage,
		Regex:     regexp.MustCompile(`(?i)^.*(Chrome|Firefox|FxiOS)/` + versionPattern),
		OrderHint: 30,
	},
	{
		Name:      RuleSafari,
		Regex:     regexp.MustCompile(`(?i)^.*(Safari)/` + versionPattern),
		OrderHint: 40,
	},
	{
		Name:      RuleWebKit,
		Regex:     regexp.MustCompile(`(?i)^.*(AppleWebKit)/` + versionPattern),
		OrderHint: 50,
	},
	{
		// Whole letter run of the last "name/version" token.
		Name:      RuleGeneric,
		Regex:     regexp.MustCompile(`^.*(?:^|[^a-zA-Z])([a-zA-Z]+)/` + versionPattern),
		OrderHint: 60,
	},
}

// Rule names in evaluation order.
const (
	RuleOpera           = "opera"
	RuleLegacyMicrosoft = "legacy-microsoft"
	RuleChromeLineage   = "chrome-lineage"
	RuleSafari          = "safari"
	RuleWebKit          = "webkit"
	RuleGeneric         = "generic"
)

// Classify resolves a user agent string into a browser family and version.
// It never fails: an empty or unrecognised string yields an empty Browser.
func Classify(userAgent string) Browser {
	b, _ := match(userAgent)
	return b
}

// ClassifyRule is like Classify but also returns the name of the rule that
// matched, or "" when none did.
func ClassifyRule(userAgent string) (Browser, string) {
	return match(userAgent)
}

func match(userAgent string) (Browser, string) {
	if userAgent == "" {
		return Browser{}, ""
	}

	for _, rule := range browserRules {
		m := rule.Regex.FindStringSubmatch(userAgent)
		if len(m) < 3 {
			continue
		}
		return Browser{Name: m[1], Version: m[2]}, rule.Name
	}

	return Browser{}, ""
}

// Rules returns a copy of the classification table in evaluation order.
func Rules() []Rule {
	out := make([]Rule, len(browserRules))
	copy(out, browserRules)
	return out
}
