package useragent

import "sort"

func init() {
	// Precedence is part of the contract: keep rules in OrderHint order even if
	// the table literal is reshuffled.
	sort.SliceStable(browserRules, func(i, j int) bool {
		return browserRules[i].OrderHint < browserRules[j].OrderHint
	})
}
