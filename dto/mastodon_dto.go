package dto

import (
	"time"
)

// Wire shapes of the Mastodon REST API; only the fields the engine reads.

type MastoAccount struct {
	Id            string `json:"id"`
	Username      string `json:"username"`
	Acct          string `json:"acct"`
	DisplayName   string `json:"display_name"`
	Avatar        string `json:"avatar"`
	StatusesCount int    `json:"statuses_count"`
}

type MastoStatus struct {
	Id               string            `json:"id"`
	CreatedAt        time.Time         `json:"created_at"`
	Content          string            `json:"content"`
	Visibility       string            `json:"visibility"`
	Favourited       bool              `json:"favourited"`
	FavouritesCount  int               `json:"favourites_count"`
	ReblogsCount     int               `json:"reblogs_count"`
	Reblog           *MastoStatus      `json:"reblog"`
	MediaAttachments []MastoAttachment `json:"media_attachments"`
	Account          MastoAccount      `json:"account"`
}

type MastoAttachment struct {
	Id   string `json:"id"`
	Type string `json:"type"`
	Url  string `json:"url"`
}

type MastoError struct {
	Error string `json:"error"`
}
