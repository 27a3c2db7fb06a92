package logic

import (
	"encoding/json"
	"fmt"
	"forget/dal"
	"forget/dto"
	"forget/shared"
	"github.com/dghubble/oauth1"
	"html"
	"io"
	"net/http"
	"net/url"
	"time"
)

const (
	twitterDefaultApiBase    = "https://api.twitter.com/1.1"
	twitterDefaultTimeoutSec = 10
)

// twitterBackend signs every request with the app's consumer keypair and the
// account's OAuth1 token pair.
type twitterBackend struct {
	logger    shared.ILogger
	userAgent shared.IUserAgent
	client    *http.Client
	apiBase   string
	userId    string
	token     string
}

func newTwitterBackend(
	cfg *shared.Config,
	logger shared.ILogger,
	userAgent shared.IUserAgent,
	acct *dal.Account,
	token *dal.OAuthToken,
) IBackend {

	apiBase := cfg.Twitter.ApiBase
	if apiBase == "" {
		apiBase = twitterDefaultApiBase
	}
	timeoutSec := cfg.Twitter.TimeoutSec
	if timeoutSec == 0 {
		timeoutSec = twitterDefaultTimeoutSec
	}

	oauthCfg := oauth1.NewConfig(cfg.Secrets.TwitterConsumerKey, cfg.Secrets.TwitterConsumerSecret)
	client := oauthCfg.Client(oauth1.NoContext, oauth1.NewToken(token.Token, token.TokenSecret))
	client.Timeout = time.Duration(timeoutSec) * time.Second

	return &twitterBackend{
		logger:    logger,
		userAgent: userAgent,
		client:    client,
		apiBase:   apiBase,
		userId:    lastIdSegment(acct.Id),
		token:     token.Token,
	}
}

func (tb *twitterBackend) Service() string {
	return shared.ServiceTwitter
}

func (tb *twitterBackend) Token() string {
	return tb.token
}

// Twitter reports the real failure in a JSON envelope; the HTTP status alone
// is too coarse (e.g. 403 covers both revocation and duplicate statuses).
func (tb *twitterBackend) classify(status int, errCode int) ErrKind {
	switch errCode {
	case 32, 64, 89, 215: // bad credentials / suspended / token expired or revoked
		return ErrAuthRevoked
	case 88: // rate limit exceeded
		return ErrRateLimited
	case 34, 144: // no such resource / no such status
		return ErrNotFound
	case 130: // over capacity
		return ErrNetwork
	}
	switch {
	case status == http.StatusUnauthorized:
		return ErrAuthRevoked
	case status == http.StatusNotFound || status == http.StatusGone:
		return ErrNotFound
	case status == http.StatusTooManyRequests || status == 420:
		return ErrRateLimited
	case status >= 500:
		return ErrNetwork
	}
	return ErrPermanent
}

func (tb *twitterBackend) apiRequest(method, path string, query url.Values) ([]byte, error) {

	urlStr := tb.apiBase + path
	if len(query) != 0 {
		urlStr += "?" + query.Encode()
	}
	req, err := http.NewRequest(method, urlStr, nil)
	if err != nil {
		return nil, &BackendError{Kind: ErrPermanent, Service: shared.ServiceTwitter, Inner: err}
	}
	tb.userAgent.AddUserAgent(req)

	resp, err := tb.client.Do(req)
	if err != nil {
		return nil, &BackendError{Kind: ErrNetwork, Service: shared.ServiceTwitter, Inner: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &BackendError{Kind: ErrNetwork, Service: shared.ServiceTwitter, Inner: err}
	}
	if resp.StatusCode != http.StatusOK {
		var envelope dto.TwitterErrors
		_ = json.Unmarshal(body, &envelope)
		errCode := 0
		var inner error
		if len(envelope.Errors) != 0 {
			errCode = envelope.Errors[0].Code
			inner = fmt.Errorf("twitter error %d: %s", errCode, envelope.Errors[0].Message)
		}
		return nil, &BackendError{
			Kind:    tb.classify(resp.StatusCode, errCode),
			Service: shared.ServiceTwitter,
			Status:  resp.StatusCode,
			Inner:   inner,
		}
	}
	return body, nil
}

// Probe uses verify_credentials, which on Twitter genuinely fails with 401
// for a revoked token, so one call both validates and identifies.
func (tb *twitterBackend) Probe() (*CanonicalAccount, error) {

	body, err := tb.apiRequest("GET", "/account/verify_credentials.json", nil)
	if err != nil {
		return nil, err
	}
	var user dto.TwitterUser
	if err = json.Unmarshal(body, &user); err != nil {
		return nil, &BackendError{Kind: ErrPermanent, Service: shared.ServiceTwitter, Inner: err}
	}
	return canonicalTwitterAccount(&user), nil
}

func (tb *twitterBackend) FetchPage(cursor Cursor) ([]*CanonicalPost, *Cursor, error) {

	q := url.Values{}
	q.Set("user_id", tb.userId)
	q.Set("count", fmt.Sprintf("%d", fetchPageSize))
	q.Set("include_rts", "true")
	q.Set("tweet_mode", "extended")
	if cursor.MaxId != 0 {
		q.Set("max_id", fmt.Sprintf("%d", cursor.MaxId))
	}
	if cursor.SinceId != 0 {
		q.Set("since_id", fmt.Sprintf("%d", cursor.SinceId))
	}

	body, err := tb.apiRequest("GET", "/statuses/user_timeline.json", q)
	if err != nil {
		return nil, nil, err
	}
	var tweets []dto.Tweet
	if err = json.Unmarshal(body, &tweets); err != nil {
		return nil, nil, &BackendError{Kind: ErrPermanent, Service: shared.ServiceTwitter, Inner: err}
	}
	if len(tweets) == 0 {
		return nil, nil, nil
	}

	var posts []*CanonicalPost
	next := Cursor{MaxId: cursor.MaxId, SinceId: cursor.SinceId}
	for i := range tweets {
		tw := &tweets[i]
		posts = append(posts, canonicalTweet(tw))
		// Monotonic narrowing; Twitter's max_id bound is inclusive, so step
		// one below the oldest id seen.
		if num, numErr := shared.NumericIdOf(shared.MakeTwitterId(tw.IdStr)); numErr == nil {
			if next.MaxId == 0 || num-1 < next.MaxId {
				next.MaxId = num - 1
			}
		}
	}
	return posts, &next, nil
}

func (tb *twitterBackend) FetchPost(remoteId string) (*CanonicalPost, error) {

	q := url.Values{}
	q.Set("tweet_mode", "extended")
	body, err := tb.apiRequest("GET", "/statuses/show/"+remoteId+".json", q)
	if err != nil {
		return nil, err
	}
	var tw dto.Tweet
	if err = json.Unmarshal(body, &tw); err != nil {
		return nil, &BackendError{Kind: ErrPermanent, Service: shared.ServiceTwitter, Inner: err}
	}
	return canonicalTweet(&tw), nil
}

func (tb *twitterBackend) DeletePost(remoteId string) error {
	_, err := tb.apiRequest("POST", "/statuses/destroy/"+remoteId+".json", nil)
	return err
}

func canonicalTwitterAccount(user *dto.TwitterUser) *CanonicalAccount {
	return &CanonicalAccount{
		Id:                shared.MakeTwitterId(user.IdStr),
		ScreenName:        user.ScreenName,
		DisplayName:       user.Name,
		AvatarUrl:         user.ProfileImageUrl,
		ReportedPostCount: user.StatusesCount,
	}
}

func canonicalTweet(tw *dto.Tweet) *CanonicalPost {
	createdAt, _ := time.Parse(dto.TwitterTimeLayout, tw.CreatedAt)
	return &CanonicalPost{
		Id:             shared.MakeTwitterId(tw.IdStr),
		AuthorId:       shared.MakeTwitterId(tw.User.IdStr),
		CreatedAt:      createdAt,
		Body:           html.UnescapeString(tw.FullText),
		Favourite:      tw.Favorited,
		HasMedia:       len(tw.Entities.Media) != 0,
		Direct:         false, // user_timeline never contains direct messages
		IsReblog:       tw.RetweetedStatus != nil,
		FavouriteCount: tw.FavoriteCount,
		ReblogCount:    tw.RetweetCount,
	}
}
