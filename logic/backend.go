package logic

import (
	"forget/dal"
	"forget/shared"
	"time"
)

// Both providers serve at most this many posts per page.
const fetchPageSize = 40

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_backend.go -package mocks forget/logic IBackend,IBackendFactory,IBackendPool

// Cursor bounds one incremental fetch. Zero means unset. MaxId narrows
// monotonically as pages are walked newest to oldest; SinceId is set from the
// most recent locally stored post and never changes within a call.
type Cursor struct {
	MaxId   uint64
	SinceId uint64
}

// CanonicalAccount is the provider-agnostic identity a probe returns.
type CanonicalAccount struct {
	Id                string // full service-tagged id
	ScreenName        string
	DisplayName       string
	AvatarUrl         string
	ReportedPostCount int
}

// CanonicalPost is the provider-agnostic post shape backends produce.
type CanonicalPost struct {
	Id             string // full service-tagged id
	AuthorId       string
	CreatedAt      time.Time
	Body           string
	Favourite      bool
	HasMedia       bool
	Direct         bool
	IsReblog       bool
	FavouriteCount int
	ReblogCount    int
}

func (cp *CanonicalPost) ToPost() *dal.Post {
	return &dal.Post{
		Id:             cp.Id,
		AuthorId:       cp.AuthorId,
		CreatedAt:      cp.CreatedAt,
		Body:           cp.Body,
		Favourite:      cp.Favourite,
		HasMedia:       cp.HasMedia,
		Direct:         cp.Direct,
		IsReblog:       cp.IsReblog,
		FavouriteCount: cp.FavouriteCount,
		ReblogCount:    cp.ReblogCount,
	}
}

// IBackend is the per-provider adapter contract. Probe makes a real API call,
// because a dedicated verification endpoint may report success for a revoked
// token. FetchPage returns a nil next cursor when history is exhausted.
// DeletePost returning an ErrNotFound-kinded error means the post was already
// gone, which callers treat as success.
type IBackend interface {
	Service() string
	Token() string
	Probe() (*CanonicalAccount, error)
	FetchPage(cursor Cursor) ([]*CanonicalPost, *Cursor, error)
	FetchPost(remoteId string) (*CanonicalPost, error)
	DeletePost(remoteId string) error
}

// IBackendFactory builds the concrete adapter for an account's service tag.
type IBackendFactory interface {
	ForToken(acct *dal.Account, token *dal.OAuthToken) (IBackend, error)
}

type backendFactory struct {
	cfg       *shared.Config
	logger    shared.ILogger
	userAgent shared.IUserAgent
}

func NewBackendFactory(cfg *shared.Config, logger shared.ILogger, userAgent shared.IUserAgent) IBackendFactory {
	return &backendFactory{cfg, logger, userAgent}
}

func (bf *backendFactory) ForToken(acct *dal.Account, token *dal.OAuthToken) (IBackend, error) {
	switch shared.ServiceOf(acct.Id) {
	case shared.ServiceMastodon:
		return newMastodonBackend(bf.cfg, bf.logger, bf.userAgent, acct, token), nil
	case shared.ServiceTwitter:
		return newTwitterBackend(bf.cfg, bf.logger, bf.userAgent, acct, token), nil
	}
	return nil, ErrUnknownService
}
