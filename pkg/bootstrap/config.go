package bootstrap

// Config holds the identifiers handed to the client application.
type Config struct {
	AppID          string `env:"APP_ID"`
	IdentityPoolID string `env:"IDENTITY_POOL_ID"`
	Region         string `env:"AWS_REGION"`
	ProjectID      string `env:"PROJECT_ID"`

	// SeedSize is the number of 32-bit words of seed material per payload.
	SeedSize int `env:"SEED_SIZE" envDefault:"5"`
	// EntryScript is the client application bundle loaded by the bootstrap page.
	EntryScript string `env:"ENTRY_SCRIPT" envDefault:"/static/main.js"`
	// Title is the bootstrap page title.
	Title string `env:"PAGE_TITLE" envDefault:"App"`
	// TimezoneHeader names the request header that may carry the client's IANA zone.
	TimezoneHeader string `env:"TIMEZONE_HEADER" envDefault:"X-Timezone"`
}
