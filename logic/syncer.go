package logic

import (
	"forget/dal"
	"forget/shared"
	"os"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_syncer.go -package mocks forget/logic ISyncer

type SyncStatus int

const (
	SyncProgressed SyncStatus = iota
	SyncUnauthorized
	SyncAborted
)

func (s SyncStatus) String() string {
	switch s {
	case SyncProgressed:
		return "progressed"
	case SyncUnauthorized:
		return "unauthorized"
	case SyncAborted:
		return "aborted"
	}
	return "unknown"
}

// SyncOutcome is what one sync call reports upward: a status, the number of
// records merged, and at most one error with a single retryable-or-not
// signal. Raw provider causes never travel further than this.
type SyncOutcome struct {
	Status    SyncStatus
	Merged    int
	Retryable bool
	Err       error
}

type RefreshOutcome struct {
	Refreshed int
	Removed   int
	Retryable bool
	Err       error
}

type ISyncer interface {
	Sync(accountId string) SyncOutcome
	Refresh(accountId string, postIds []string) RefreshOutcome
}

type syncer struct {
	cfg     *shared.Config
	logger  shared.ILogger
	repo    dal.IRepo
	pool    IBackendPool
	metrics IMetrics
}

func NewSyncer(
	cfg *shared.Config,
	logger shared.ILogger,
	repo dal.IRepo,
	pool IBackendPool,
	metrics IMetrics,
) ISyncer {
	return &syncer{
		cfg:     cfg,
		logger:  logger,
		repo:    repo,
		pool:    pool,
		metrics: metrics,
	}
}

func aborted(err error) SyncOutcome {
	return SyncOutcome{Status: SyncAborted, Retryable: IsRetryable(err), Err: err}
}

// Sync drives one incremental fetch cycle for an account: pick a working
// credential, re-probe identity, page newest to oldest until history (or the
// since bound) is exhausted, then commit every merge in one transaction.
// Nothing is committed when a fetch fails mid-call; a retried sync re-fetches
// overlapping pages, which is safe because merging is idempotent.
func (s *syncer) Sync(accountId string) SyncOutcome {

	acct, err := s.repo.GetAccount(accountId)
	if err != nil {
		return aborted(err)
	}
	if acct == nil {
		s.logger.Warnf("Sync requested for unknown account %s", accountId)
		return aborted(ErrNoTokens)
	}

	obs := s.metrics.StartSync(shared.ServiceOf(acct.Id))
	defer obs.Finish()

	backend, ca, fail := s.acquireProbed(acct, false)
	if fail != nil {
		return *fail
	}
	applyIdentity(acct, ca)

	cursor := Cursor{}
	mostRecent, err := s.repo.GetMostRecentPost(acct.Id)
	if err != nil {
		return aborted(err)
	}
	if mostRecent != nil {
		// A lower bound only ever comes from the most recent stored post;
		// a first-ever sync has none.
		if num, numErr := shared.NumericIdOf(mostRecent.Id); numErr == nil {
			cursor.SinceId = num
		}
	}

	merged := make(map[string]*dal.Post)
	for {
		page, next, err := backend.FetchPage(cursor)
		if err != nil {
			if KindOf(err) == ErrAuthRevoked {
				if purgeErr := s.pool.PurgeToken(acct, backend); purgeErr != nil {
					return aborted(purgeErr)
				}
				// Another credential may still work; retry the same page on it.
				backend, ca, fail = s.acquireProbed(acct, true)
				if fail != nil {
					return *fail
				}
				applyIdentity(acct, ca)
				continue
			}
			s.countProviderError(acct, err)
			return aborted(err)
		}
		for _, cp := range page {
			merged[cp.Id] = cp.ToPost()
		}
		if next == nil {
			break
		}
		// The upper bound must narrow with every page; a provider serving
		// pages out of order must not send us in circles.
		if cursor.MaxId != 0 && next.MaxId >= cursor.MaxId {
			s.logger.Warnf("Pagination bound for %s failed to narrow (%d -> %d); stopping",
				acct.Id, cursor.MaxId, next.MaxId)
			break
		}
		cursor = *next
	}

	posts := make([]*dal.Post, 0, len(merged))
	for _, p := range merged {
		posts = append(posts, p)
	}
	if err = s.repo.CommitSync(acct, posts); err != nil {
		return aborted(err)
	}

	s.metrics.PostsMerged(len(posts))
	if n, cntErr := s.repo.AccountCount(); cntErr == nil {
		s.metrics.AccountCount(n)
	}
	s.updateDbSizeMetric()
	s.logger.Infof("Synced %s: %d posts merged", acct.Id, len(posts))
	return SyncOutcome{Status: SyncProgressed, Merged: len(posts)}
}

// acquireProbed cycles the account's credentials until one passes the
// identity probe, purging any the probe exposes as revoked. purged says
// whether a token was already dropped earlier in this call, so running out
// of tokens then reads as revocation rather than a bare account.
func (s *syncer) acquireProbed(acct *dal.Account, purged bool) (IBackend, *CanonicalAccount, *SyncOutcome) {
	for {
		backend, err := s.pool.BackendFor(acct)
		if err == ErrNoTokens {
			if purged {
				return nil, nil, &SyncOutcome{Status: SyncUnauthorized}
			}
			s.logger.Infof("No credentials left for %s; nothing to do", acct.Id)
			out := aborted(err)
			return nil, nil, &out
		}
		if err == ErrAllTokensRevoked {
			return nil, nil, &SyncOutcome{Status: SyncUnauthorized}
		}
		if err != nil {
			s.countProviderError(acct, err)
			out := aborted(err)
			return nil, nil, &out
		}

		ca, err := backend.Probe()
		if err == nil {
			return backend, ca, nil
		}
		if KindOf(err) != ErrAuthRevoked {
			s.countProviderError(acct, err)
			out := aborted(err)
			return nil, nil, &out
		}
		// The cached handle outlived its token; drop both and give the
		// remaining credentials their turn.
		if purgeErr := s.pool.PurgeToken(acct, backend); purgeErr != nil {
			out := aborted(purgeErr)
			return nil, nil, &out
		}
		purged = true
	}
}

// Refresh re-fetches individual posts. A post the provider no longer knows
// about is dropped locally; it can never become a deletion candidate again.
func (s *syncer) Refresh(accountId string, postIds []string) RefreshOutcome {

	acct, err := s.repo.GetAccount(accountId)
	if err != nil || acct == nil {
		return RefreshOutcome{Err: err}
	}
	backend, err := s.pool.BackendFor(acct)
	if err != nil {
		return RefreshOutcome{Retryable: IsRetryable(err), Err: err}
	}

	var refreshed []*dal.Post
	var removed []string
	for _, id := range postIds {
		cp, err := backend.FetchPost(lastIdSegment(id))
		if err != nil {
			if KindOf(err) == ErrNotFound {
				removed = append(removed, id)
				continue
			}
			s.countProviderError(acct, err)
			return RefreshOutcome{Retryable: IsRetryable(err), Err: err}
		}
		refreshed = append(refreshed, cp.ToPost())
	}

	if len(refreshed) != 0 {
		if err = s.repo.UpsertPosts(refreshed); err != nil {
			return RefreshOutcome{Err: err}
		}
	}
	if len(removed) != 0 {
		if err = s.repo.RemovePosts(acct.Id, removed); err != nil {
			return RefreshOutcome{Err: err}
		}
	}
	return RefreshOutcome{Refreshed: len(refreshed), Removed: len(removed)}
}

func applyIdentity(acct *dal.Account, ca *CanonicalAccount) {
	acct.DisplayName = ca.DisplayName
	acct.ScreenName = ca.ScreenName
	acct.AvatarUrl = ca.AvatarUrl
	acct.ReportedPostCount = ca.ReportedPostCount
}

func (s *syncer) countProviderError(acct *dal.Account, err error) {
	s.metrics.ProviderError(shared.ServiceOf(acct.Id), KindOf(err).String())
}

func (s *syncer) updateDbSizeMetric() {

	// In case the syncer is running on a mock config in a unit test: don't bother
	if s.cfg.DbFile == "" {
		return
	}

	fi, err := os.Stat(s.cfg.DbFile)
	if err != nil {
		s.logger.Errorf("Error getting DB file size: %v", err)
		return
	}
	s.metrics.DbFileSize(fi.Size())
}
