package test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"forget/dal"
	"forget/logic"
	"forget/test/mocks"
)

type poolHarness struct {
	mockLogger  *mocks.MockILogger
	mockRepo    *mocks.MockIRepo
	mockFactory *mocks.MockIBackendFactory
	mockMetrics *mocks.MockIMetrics
}

func setupPoolTest(t *testing.T) (*gomock.Controller, *poolHarness, logic.IBackendPool) {

	ctrl := gomock.NewController(t)

	h := &poolHarness{
		mockLogger:  mocks.NewMockILogger(ctrl),
		mockRepo:    mocks.NewMockIRepo(ctrl),
		mockFactory: mocks.NewMockIBackendFactory(ctrl),
		mockMetrics: mocks.NewMockIMetrics(ctrl),
	}
	setupDummyLogger(h.mockLogger)

	pool := logic.NewBackendPool(h.mockLogger, h.mockRepo, h.mockFactory, h.mockMetrics)
	return ctrl, h, pool
}

func makeToken(token string, age time.Duration) *dal.OAuthToken {
	return &dal.OAuthToken{
		Token:     token,
		AccountId: "mastodon:example.social:42",
		CreatedAt: time.Now().UTC().Add(-age),
	}
}

func TestPoolNoTokens(t *testing.T) {

	ctrl, h, pool := setupPoolTest(t)
	defer ctrl.Finish()

	acct := &dal.Account{Id: "mastodon:example.social:42"}
	h.mockRepo.EXPECT().GetTokens(acct.Id).Return(nil, nil)

	backend, err := pool.BackendFor(acct)

	assert.Nil(t, backend)
	assert.Equal(t, logic.ErrNoTokens, err)
}

func TestPoolPurgesRevokedTriesNext(t *testing.T) {

	ctrl, h, pool := setupPoolTest(t)
	defer ctrl.Finish()

	acct := &dal.Account{Id: "mastodon:example.social:42"}
	newest := makeToken("token-new", time.Hour)
	older := makeToken("token-old", 48*time.Hour)
	h.mockRepo.EXPECT().GetTokens(acct.Id).Return([]*dal.OAuthToken{newest, older}, nil)

	revoked := mocks.NewMockIBackend(ctrl)
	revoked.EXPECT().Probe().Return(nil, &logic.BackendError{
		Kind: logic.ErrAuthRevoked, Service: "mastodon", Status: 401})
	revoked.EXPECT().Service().Return("mastodon")

	healthy := mocks.NewMockIBackend(ctrl)
	healthy.EXPECT().Probe().Return(&logic.CanonicalAccount{Id: acct.Id}, nil)

	h.mockFactory.EXPECT().ForToken(acct, newest).Return(revoked, nil)
	h.mockFactory.EXPECT().ForToken(acct, older).Return(healthy, nil)
	h.mockMetrics.EXPECT().TokenPurged("mastodon")
	h.mockRepo.EXPECT().DeleteToken("token-new").Return(nil)

	backend, err := pool.BackendFor(acct)

	assert.NoError(t, err)
	assert.Same(t, healthy, backend)
}

func TestPoolAllTokensRevoked(t *testing.T) {

	ctrl, h, pool := setupPoolTest(t)
	defer ctrl.Finish()

	acct := &dal.Account{Id: "mastodon:example.social:42"}
	t1 := makeToken("token-1", time.Hour)
	t2 := makeToken("token-2", 48*time.Hour)
	h.mockRepo.EXPECT().GetTokens(acct.Id).Return([]*dal.OAuthToken{t1, t2}, nil)

	for _, tok := range []*dal.OAuthToken{t1, t2} {
		revoked := mocks.NewMockIBackend(ctrl)
		revoked.EXPECT().Probe().Return(nil, &logic.BackendError{
			Kind: logic.ErrAuthRevoked, Service: "mastodon", Status: 401})
		revoked.EXPECT().Service().Return("mastodon")
		h.mockFactory.EXPECT().ForToken(acct, tok).Return(revoked, nil)
		h.mockRepo.EXPECT().DeleteToken(tok.Token).Return(nil)
	}
	h.mockMetrics.EXPECT().TokenPurged("mastodon").Times(2)

	backend, err := pool.BackendFor(acct)

	assert.Nil(t, backend)
	assert.Equal(t, logic.ErrAllTokensRevoked, err)
}

func TestPoolTransientProbeFailureSurfaces(t *testing.T) {

	ctrl, h, pool := setupPoolTest(t)
	defer ctrl.Finish()

	acct := &dal.Account{Id: "mastodon:example.social:42"}
	tok := makeToken("token-1", time.Hour)
	h.mockRepo.EXPECT().GetTokens(acct.Id).Return([]*dal.OAuthToken{tok}, nil)

	flaky := mocks.NewMockIBackend(ctrl)
	flaky.EXPECT().Probe().Return(nil, &logic.BackendError{
		Kind: logic.ErrNetwork, Service: "mastodon", Status: 502})
	h.mockFactory.EXPECT().ForToken(acct, tok).Return(flaky, nil)

	// Transient failure: the token survives, no DeleteToken expected
	backend, err := pool.BackendFor(acct)

	assert.Nil(t, backend)
	assert.Equal(t, logic.ErrNetwork, logic.KindOf(err))
	assert.True(t, logic.IsRetryable(err))
}

func TestPoolCachesBackend(t *testing.T) {

	ctrl, h, pool := setupPoolTest(t)
	defer ctrl.Finish()

	acct := &dal.Account{Id: "mastodon:example.social:42"}
	tok := makeToken("token-1", time.Hour)
	h.mockRepo.EXPECT().GetTokens(acct.Id).Return([]*dal.OAuthToken{tok}, nil).Times(1)

	healthy := mocks.NewMockIBackend(ctrl)
	healthy.EXPECT().Probe().Return(&logic.CanonicalAccount{Id: acct.Id}, nil).Times(1)
	h.mockFactory.EXPECT().ForToken(acct, tok).Return(healthy, nil).Times(1)

	b1, err := pool.BackendFor(acct)
	assert.NoError(t, err)
	b2, err := pool.BackendFor(acct)
	assert.NoError(t, err)
	assert.Same(t, b1, b2)
}

func TestPoolPurgeTokenInvalidatesCache(t *testing.T) {

	ctrl, h, pool := setupPoolTest(t)
	defer ctrl.Finish()

	acct := &dal.Account{Id: "mastodon:example.social:42"}
	tok := makeToken("token-1", time.Hour)
	h.mockRepo.EXPECT().GetTokens(acct.Id).Return([]*dal.OAuthToken{tok}, nil).Times(2)

	healthy := mocks.NewMockIBackend(ctrl)
	healthy.EXPECT().Probe().Return(&logic.CanonicalAccount{Id: acct.Id}, nil).Times(2)
	healthy.EXPECT().Token().Return("token-1").AnyTimes()
	healthy.EXPECT().Service().Return("mastodon").AnyTimes()
	h.mockFactory.EXPECT().ForToken(acct, tok).Return(healthy, nil).Times(2)

	backend, err := pool.BackendFor(acct)
	assert.NoError(t, err)

	h.mockMetrics.EXPECT().TokenPurged("mastodon")
	h.mockRepo.EXPECT().DeleteToken("token-1").Return(nil)
	assert.NoError(t, pool.PurgeToken(acct, backend))

	// Cache entry is gone: the next call builds and probes afresh
	_, err = pool.BackendFor(acct)
	assert.NoError(t, err)
}
