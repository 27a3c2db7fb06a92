package dal

import (
	"time"
)

type Account struct {
	Id                string // twitter:12345 or mastodon:mastodon.social:678
	CreatedAt         time.Time
	UpdatedAt         time.Time
	DisplayName       string
	ScreenName        string // e.g. codl@mastodon.social
	AvatarUrl         string
	ReportedPostCount int // post count the provider claims; local count can lag behind
	PolicyEnabled     bool
	PolicyKeepLatest  int
	PolicyKeepFavs    bool
	PolicyDeleteEvery time.Duration
	PolicyKeepYounger time.Duration
	LastFetch         time.Time
	LastDelete        time.Time
}

type Post struct {
	Id             string // same scheme as Account.Id
	AuthorId       string
	CreatedAt      time.Time
	UpdatedAt      time.Time
	Body           string // provider HTML stripped down to plain text
	Favourite      bool
	HasMedia       bool
	Direct         bool
	IsReblog       bool
	FavouriteCount int
	ReblogCount    int
}

type OAuthToken struct {
	Token       string
	TokenSecret string // empty for Mastodon; Twitter needs the OAuth1 pair
	AccountId   string
	CreatedAt   time.Time
}
