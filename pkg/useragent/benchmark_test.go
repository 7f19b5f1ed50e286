package useragent_test

import (
	"strings"
	"testing"

	"github.com/dmitrymomot/clientenv/pkg/useragent"
)

var (
	chromeDesktopUA = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/114.0.0.0 Safari/537.36"
	safariMobileUA  = "Mozilla/5.0 (iPhone; CPU iPhone OS 14_4 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/14.0 Mobile/15E148 Safari/604.1"
	operaUA         = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/114.0.0.0 Safari/537.36 OPR/100.0.0.0"
	botUA           = "Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)"
	// Worst case: no rule matches, every pattern scans the whole input.
	noiseUA = strings.Repeat("x(y;z) ", 256)
)

// Prevents the compiler from eliding calls.
var result useragent.Browser

func BenchmarkClassify_ChromeDesktop(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		result = useragent.Classify(chromeDesktopUA)
	}
}

func BenchmarkClassify_SafariMobile(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		result = useragent.Classify(safariMobileUA)
	}
}

func BenchmarkClassify_Opera(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		result = useragent.Classify(operaUA)
	}
}

func BenchmarkClassify_Bot(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		result = useragent.Classify(botUA)
	}
}

func BenchmarkClassify_NoMatch(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		result = useragent.Classify(noiseUA)
	}
}
