package dto

import (
	"time"
)

// Shapes of the admin API under /api.

type ApiPolicy struct {
	Enabled        bool  `json:"enabled"`
	KeepLatest     int   `json:"keep_latest"`
	KeepFavourites bool  `json:"keep_favourites"`
	DeleteEverySec int64 `json:"delete_every_sec"`
	KeepYoungerSec int64 `json:"keep_younger_sec"`
}

type ApiAccount struct {
	Id          string    `json:"id"`
	DisplayName string    `json:"display_name"`
	ScreenName  string    `json:"screen_name"`
	AvatarUrl   string    `json:"avatar_url"`
	PostCount   int       `json:"post_count"`
	Policy      ApiPolicy `json:"policy"`
	LastFetch   time.Time `json:"last_fetch"`
	LastDelete  time.Time `json:"last_delete"`
}

type ApiAccountList struct {
	Total    int           `json:"total"`
	Accounts []*ApiAccount `json:"accounts"`
}

// ApiToken is what the external login flow submits once it has finished the
// authorization handshake for an account.
type ApiToken struct {
	AccountId   string `json:"account_id"`
	Token       string `json:"token"`
	TokenSecret string `json:"token_secret,omitempty"`
}

type ApiSyncResult struct {
	Status    string `json:"status"`
	Merged    int    `json:"merged"`
	Retryable bool   `json:"retryable"`
	Error     string `json:"error,omitempty"`
}

type ApiDeleteResult struct {
	Deleted   int    `json:"deleted"`
	StoppedAt string `json:"stopped_at,omitempty"`
	Retryable bool   `json:"retryable"`
	Error     string `json:"error,omitempty"`
}
