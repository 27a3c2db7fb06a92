package logic

import (
	"fmt"
	"forget/dal"
	"forget/shared"
	"github.com/spaolacci/murmur3"
	"sync"
)

// IBackendPool hands out a live, probed backend per account. Handles are
// cached because building one costs a network round trip; a cache entry is
// invalidated the moment its token is purged so a revoked client is never
// reused.
type IBackendPool interface {
	BackendFor(acct *dal.Account) (IBackend, error)
	Invalidate(accountId string)
	PurgeToken(acct *dal.Account, backend IBackend) error
}

type backendPool struct {
	logger  shared.ILogger
	repo    dal.IRepo
	factory IBackendFactory
	metrics IMetrics
	mu      sync.Mutex
	cache   map[string]IBackend
}

func NewBackendPool(
	logger shared.ILogger,
	repo dal.IRepo,
	factory IBackendFactory,
	metrics IMetrics,
) IBackendPool {
	return &backendPool{
		logger:  logger,
		repo:    repo,
		factory: factory,
		metrics: metrics,
		cache:   make(map[string]IBackend),
	}
}

// tokenFingerprint keeps raw credentials out of log lines.
func tokenFingerprint(token string) string {
	return fmt.Sprintf("%08x", murmur3.Sum32([]byte(token)))
}

func (bp *backendPool) BackendFor(acct *dal.Account) (IBackend, error) {

	bp.mu.Lock()
	if cached, ok := bp.cache[acct.Id]; ok {
		bp.mu.Unlock()
		return cached, nil
	}
	bp.mu.Unlock()

	tokens, err := bp.repo.GetTokens(acct.Id)
	if err != nil {
		return nil, err
	}
	if len(tokens) == 0 {
		return nil, ErrNoTokens
	}

	for _, token := range tokens {
		backend, err := bp.factory.ForToken(acct, token)
		if err != nil {
			return nil, err
		}
		_, err = backend.Probe()
		if err == nil {
			bp.mu.Lock()
			bp.cache[acct.Id] = backend
			bp.mu.Unlock()
			return backend, nil
		}
		if KindOf(err) == ErrAuthRevoked {
			bp.logger.Infof("Token %s for %s is revoked; purging it",
				tokenFingerprint(token.Token), acct.Id)
			bp.metrics.TokenPurged(backend.Service())
			if purgeErr := bp.repo.DeleteToken(token.Token); purgeErr != nil {
				return nil, purgeErr
			}
			continue
		}
		return nil, err
	}
	return nil, ErrAllTokensRevoked
}

func (bp *backendPool) Invalidate(accountId string) {
	bp.mu.Lock()
	delete(bp.cache, accountId)
	bp.mu.Unlock()
}

// PurgeToken drops a credential that turned out to be revoked mid-call,
// together with the cached handle built on it.
func (bp *backendPool) PurgeToken(acct *dal.Account, backend IBackend) error {
	bp.logger.Infof("Token %s for %s rejected mid-call; purging it",
		tokenFingerprint(backend.Token()), acct.Id)
	bp.metrics.TokenPurged(backend.Service())
	bp.Invalidate(acct.Id)
	return bp.repo.DeleteToken(backend.Token())
}
