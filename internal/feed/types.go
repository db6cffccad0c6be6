package feed

import "time"

// Config is the feed configuration passed to the use case and the gate.
type Config struct {
	Enabled       bool
	CalendarName  string
	Timezone      *time.Location
	TimezoneName  string
	SiteURL       string
	QueryParam    string
	TokenParam    string
	Filename      string
	HorizonMonths int
	EventLimit    int
	ResolverLimit int
	TypeColors    map[string]string
}

// TokenSettingKey is the settings-store key holding the feed token.
const TokenSettingKey = "calendar_feed_token"

// FeedURLInput is the input of FeedURL.
type FeedURLInput struct {
	Create bool
}

// SetTokenInput is the input of SetToken.
type SetTokenInput struct {
	Token string
}

// FeedURLOutput describes the current subscription URL.
type FeedURLOutput struct {
	URL     string
	Token   string
	Created bool
}
