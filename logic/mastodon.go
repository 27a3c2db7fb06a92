package logic

import (
	"encoding/json"
	"fmt"
	"forget/dal"
	"forget/dto"
	"forget/shared"
	"github.com/microcosm-cc/bluemonday"
	"html"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const mastodonDefaultTimeoutSec = 10

// mastodonBackend talks to the account's home instance with a bearer token.
type mastodonBackend struct {
	logger    shared.ILogger
	userAgent shared.IUserAgent
	client    http.Client
	baseUrl   string
	instance  string
	userId    string // provider-native numeric id
	token     string
}

func newMastodonBackend(
	cfg *shared.Config,
	logger shared.ILogger,
	userAgent shared.IUserAgent,
	acct *dal.Account,
	token *dal.OAuthToken,
) IBackend {

	proto := cfg.Mastodon.Protocol
	if proto == "" {
		proto = "https"
	}
	timeoutSec := cfg.Mastodon.TimeoutSec
	if timeoutSec == 0 {
		timeoutSec = mastodonDefaultTimeoutSec
	}
	instance := shared.MastodonInstanceOf(acct.Id)
	baseUrl := cfg.Mastodon.ApiBase
	if baseUrl == "" {
		baseUrl = fmt.Sprintf("%s://%s", proto, instance)
	}

	return &mastodonBackend{
		logger:    logger,
		userAgent: userAgent,
		client:    http.Client{Timeout: time.Duration(timeoutSec) * time.Second},
		baseUrl:   baseUrl,
		instance:  instance,
		userId:    lastIdSegment(acct.Id),
		token:     token.Token,
	}
}

func lastIdSegment(id string) string {
	ix := strings.LastIndexByte(id, ':')
	return id[ix+1:]
}

func (mb *mastodonBackend) Service() string {
	return shared.ServiceMastodon
}

func (mb *mastodonBackend) Token() string {
	return mb.token
}

func (mb *mastodonBackend) classifyStatus(status int) ErrKind {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return ErrAuthRevoked
	case status == http.StatusNotFound || status == http.StatusGone:
		return ErrNotFound
	case status == http.StatusTooManyRequests:
		return ErrRateLimited
	case status >= 500:
		return ErrNetwork
	}
	return ErrPermanent
}

func (mb *mastodonBackend) apiRequest(method, path string, query url.Values) ([]byte, error) {

	urlStr := mb.baseUrl + path
	if len(query) != 0 {
		urlStr += "?" + query.Encode()
	}
	req, err := http.NewRequest(method, urlStr, nil)
	if err != nil {
		return nil, &BackendError{Kind: ErrPermanent, Service: shared.ServiceMastodon, Inner: err}
	}
	mb.userAgent.AddUserAgent(req)
	req.Header.Set("Authorization", "Bearer "+mb.token)

	resp, err := mb.client.Do(req)
	if err != nil {
		return nil, &BackendError{Kind: ErrNetwork, Service: shared.ServiceMastodon, Inner: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &BackendError{Kind: ErrNetwork, Service: shared.ServiceMastodon, Inner: err}
	}
	if resp.StatusCode != http.StatusOK {
		var me dto.MastoError
		_ = json.Unmarshal(body, &me)
		var inner error
		if me.Error != "" {
			inner = fmt.Errorf("%s", me.Error)
		}
		return nil, &BackendError{
			Kind:    mb.classifyStatus(resp.StatusCode),
			Service: shared.ServiceMastodon,
			Status:  resp.StatusCode,
			Inner:   inner,
		}
	}
	return body, nil
}

// Probe fetches one home timeline entry before asking for the identity.
// verify_credentials alone is no probe: Mastodon reports success on it even
// for revoked tokens (tootsuite/mastodon#4637).
func (mb *mastodonBackend) Probe() (*CanonicalAccount, error) {

	q := url.Values{}
	q.Set("limit", "1")
	if _, err := mb.apiRequest("GET", "/api/v1/timelines/home", q); err != nil {
		return nil, err
	}

	body, err := mb.apiRequest("GET", "/api/v1/accounts/verify_credentials", nil)
	if err != nil {
		return nil, err
	}
	var ma dto.MastoAccount
	if err = json.Unmarshal(body, &ma); err != nil {
		return nil, &BackendError{Kind: ErrPermanent, Service: shared.ServiceMastodon, Inner: err}
	}
	return mb.canonicalAccount(&ma), nil
}

func (mb *mastodonBackend) FetchPage(cursor Cursor) ([]*CanonicalPost, *Cursor, error) {

	q := url.Values{}
	q.Set("limit", fmt.Sprintf("%d", fetchPageSize))
	if cursor.MaxId != 0 {
		q.Set("max_id", fmt.Sprintf("%d", cursor.MaxId))
	}
	if cursor.SinceId != 0 {
		q.Set("since_id", fmt.Sprintf("%d", cursor.SinceId))
	}

	body, err := mb.apiRequest("GET", "/api/v1/accounts/"+mb.userId+"/statuses", q)
	if err != nil {
		return nil, nil, err
	}
	var statuses []dto.MastoStatus
	if err = json.Unmarshal(body, &statuses); err != nil {
		return nil, nil, &BackendError{Kind: ErrPermanent, Service: shared.ServiceMastodon, Inner: err}
	}
	if len(statuses) == 0 {
		return nil, nil, nil
	}

	var posts []*CanonicalPost
	next := Cursor{MaxId: cursor.MaxId, SinceId: cursor.SinceId}
	for i := range statuses {
		st := &statuses[i]
		posts = append(posts, mb.canonicalPost(st))
		// Monotonic narrowing; Mastodon's max_id bound is exclusive, so the
		// oldest id seen is itself the next upper bound.
		if num, numErr := shared.NumericIdOf(shared.MakeMastodonId(mb.instance, st.Id)); numErr == nil {
			if next.MaxId == 0 || num < next.MaxId {
				next.MaxId = num
			}
		}
	}
	return posts, &next, nil
}

func (mb *mastodonBackend) FetchPost(remoteId string) (*CanonicalPost, error) {

	body, err := mb.apiRequest("GET", "/api/v1/statuses/"+remoteId, nil)
	if err != nil {
		return nil, err
	}
	var st dto.MastoStatus
	if err = json.Unmarshal(body, &st); err != nil {
		return nil, &BackendError{Kind: ErrPermanent, Service: shared.ServiceMastodon, Inner: err}
	}
	return mb.canonicalPost(&st), nil
}

func (mb *mastodonBackend) DeletePost(remoteId string) error {
	_, err := mb.apiRequest("DELETE", "/api/v1/statuses/"+remoteId, nil)
	return err
}

func (mb *mastodonBackend) canonicalAccount(ma *dto.MastoAccount) *CanonicalAccount {
	return &CanonicalAccount{
		Id:                shared.MakeMastodonId(mb.instance, ma.Id),
		ScreenName:        ma.Username + "@" + mb.instance,
		DisplayName:       ma.DisplayName,
		AvatarUrl:         ma.Avatar,
		ReportedPostCount: ma.StatusesCount,
	}
}

func (mb *mastodonBackend) canonicalPost(st *dto.MastoStatus) *CanonicalPost {
	return &CanonicalPost{
		Id:             shared.MakeMastodonId(mb.instance, st.Id),
		AuthorId:       shared.MakeMastodonId(mb.instance, st.Account.Id),
		CreatedAt:      st.CreatedAt,
		Body:           stripHtml(st.Content),
		Favourite:      st.Favourited,
		HasMedia:       len(st.MediaAttachments) != 0,
		Direct:         st.Visibility == "direct",
		IsReblog:       st.Reblog != nil,
		FavouriteCount: st.FavouritesCount,
		ReblogCount:    st.ReblogsCount,
	}
}

func stripHtml(htm string) string {
	p := bluemonday.StrictPolicy()
	plain := p.Sanitize(htm)
	plain = html.UnescapeString(plain)
	plain = strings.TrimSpace(plain)
	return plain
}
