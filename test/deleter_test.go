package test

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"forget/dal"
	"forget/logic"
	"forget/shared"
	"forget/test/mocks"
)

const delAcctId = "twitter:7001"

type deleterHarness struct {
	mockLogger  *mocks.MockILogger
	mockRepo    *mocks.MockIRepo
	mockPool    *mocks.MockIBackendPool
	mockMetrics *mocks.MockIMetrics
	mockBackend *mocks.MockIBackend
}

func setupDeleterTest(t *testing.T) (*gomock.Controller, *deleterHarness, logic.IDeleter) {

	ctrl := gomock.NewController(t)

	h := &deleterHarness{
		mockLogger:  mocks.NewMockILogger(ctrl),
		mockRepo:    mocks.NewMockIRepo(ctrl),
		mockPool:    mocks.NewMockIBackendPool(ctrl),
		mockMetrics: mocks.NewMockIMetrics(ctrl),
		mockBackend: mocks.NewMockIBackend(ctrl),
	}
	setupDummyLogger(h.mockLogger)

	deleter := logic.NewDeleter(h.mockLogger, h.mockRepo, h.mockPool, h.mockMetrics)
	return ctrl, h, deleter
}

func (h *deleterHarness) expectBatchObserver(ctrl *gomock.Controller) {
	obs := mocks.NewMockIRequestObserver(ctrl)
	obs.EXPECT().Finish()
	h.mockMetrics.EXPECT().StartDeleteBatch(shared.ServiceTwitter).Return(obs)
}

// makeTweetBatch returns count posts oldest first: post i is (count-i) days old.
func makeTweetBatch(now time.Time, count int) []*dal.Post {
	var res []*dal.Post
	for i := 0; i < count; i++ {
		id := shared.MakeTwitterId(strconv.Itoa(i + 1))
		age := time.Duration(count-i) * 24 * time.Hour
		res = append(res, makePost(id, now.Add(-age), false))
	}
	return res
}

func TestEvaluateDisabledPolicyDoesNothing(t *testing.T) {

	ctrl, h, deleter := setupDeleterTest(t)
	defer ctrl.Finish()

	acct := &dal.Account{Id: delAcctId, PolicyEnabled: false}
	h.mockRepo.EXPECT().GetAccount(delAcctId).Return(acct, nil)

	// No GetPosts, no SetLastDelete: a disabled policy must not touch the throttle
	outcome := deleter.EvaluateAndDelete(delAcctId)

	assert.NoError(t, outcome.Err)
	assert.Equal(t, 0, outcome.Deleted)
}

func TestEvaluateCooldownDoesNothing(t *testing.T) {

	ctrl, h, deleter := setupDeleterTest(t)
	defer ctrl.Finish()

	acct := &dal.Account{
		Id:                delAcctId,
		PolicyEnabled:     true,
		PolicyDeleteEvery: time.Hour,
		LastDelete:        time.Now().UTC().Add(-10 * time.Minute),
	}
	h.mockRepo.EXPECT().GetAccount(delAcctId).Return(acct, nil)

	outcome := deleter.EvaluateAndDelete(delAcctId)

	assert.NoError(t, outcome.Err)
	assert.Equal(t, 0, outcome.Deleted)
}

func TestEvaluateNoCandidatesRearmsThrottle(t *testing.T) {

	ctrl, h, deleter := setupDeleterTest(t)
	defer ctrl.Finish()

	now := time.Now().UTC()
	acct := &dal.Account{
		Id:               delAcctId,
		PolicyEnabled:    true,
		PolicyKeepLatest: 10,
	}
	h.mockRepo.EXPECT().GetAccount(delAcctId).Return(acct, nil)
	h.mockRepo.EXPECT().GetPosts(delAcctId).Return(makeTweetBatch(now, 3), nil)
	h.mockRepo.EXPECT().SetLastDelete(delAcctId, gomock.Any()).Return(nil)

	outcome := deleter.EvaluateAndDelete(delAcctId)

	assert.NoError(t, outcome.Err)
	assert.Equal(t, 0, outcome.Deleted)
}

func TestEvaluateDeletesCandidates(t *testing.T) {

	ctrl, h, deleter := setupDeleterTest(t)
	defer ctrl.Finish()

	now := time.Now().UTC()
	acct := &dal.Account{
		Id:               delAcctId,
		PolicyEnabled:    true,
		PolicyKeepLatest: 2,
	}
	posts := makeTweetBatch(now, 4)

	h.mockRepo.EXPECT().GetAccount(delAcctId).Return(acct, nil)
	h.mockRepo.EXPECT().GetPosts(delAcctId).Return(posts, nil)

	h.expectBatchObserver(ctrl)
	h.mockPool.EXPECT().BackendFor(acct).Return(h.mockBackend, nil)
	gomock.InOrder(
		h.mockBackend.EXPECT().DeletePost("1").Return(nil),
		h.mockBackend.EXPECT().DeletePost("2").Return(nil),
	)
	h.mockRepo.EXPECT().FinishDeleteBatch(delAcctId,
		[]string{posts[0].Id, posts[1].Id}, gomock.Any()).Return(nil)
	h.mockMetrics.EXPECT().PostsDeleted(2)

	outcome := deleter.EvaluateAndDelete(delAcctId)

	assert.NoError(t, outcome.Err)
	assert.Equal(t, 2, outcome.Deleted)
	assert.Nil(t, outcome.StoppedAt)
}

func TestBatchStopsAtFirstHardFailure(t *testing.T) {

	ctrl, h, deleter := setupDeleterTest(t)
	defer ctrl.Finish()

	now := time.Now().UTC()
	acct := &dal.Account{Id: delAcctId, PolicyEnabled: true}
	posts := makeTweetBatch(now, 5)
	// Hand the batch over shuffled; deletion still runs oldest first
	candidates := []*dal.Post{posts[2], posts[0], posts[4], posts[1], posts[3]}

	h.expectBatchObserver(ctrl)
	h.mockPool.EXPECT().BackendFor(acct).Return(h.mockBackend, nil)
	gomock.InOrder(
		h.mockBackend.EXPECT().DeletePost("1").Return(nil),
		h.mockBackend.EXPECT().DeletePost("2").Return(nil),
		h.mockBackend.EXPECT().DeletePost("3").Return(&logic.BackendError{
			Kind: logic.ErrPermanent, Service: "twitter", Status: 403}),
	)
	// Items 4 and 5 are never attempted
	h.mockMetrics.EXPECT().ProviderError(shared.ServiceTwitter, "permanent")
	h.mockRepo.EXPECT().FinishDeleteBatch(delAcctId,
		[]string{posts[0].Id, posts[1].Id}, gomock.Any()).Return(nil)
	h.mockMetrics.EXPECT().PostsDeleted(2)

	outcome := deleter.DeleteBatch(acct, candidates)

	assert.Equal(t, 2, outcome.Deleted)
	assert.Equal(t, posts[2].Id, outcome.StoppedAt.Id)
	assert.False(t, outcome.Retryable)
	assert.Error(t, outcome.Err)
}

func TestBatchAlreadyGoneCountsAsDeleted(t *testing.T) {

	ctrl, h, deleter := setupDeleterTest(t)
	defer ctrl.Finish()

	now := time.Now().UTC()
	acct := &dal.Account{Id: delAcctId, PolicyEnabled: true}
	posts := makeTweetBatch(now, 2)

	h.expectBatchObserver(ctrl)
	h.mockPool.EXPECT().BackendFor(acct).Return(h.mockBackend, nil)
	h.mockBackend.EXPECT().DeletePost("1").Return(&logic.BackendError{
		Kind: logic.ErrNotFound, Service: "twitter", Status: 404})
	h.mockBackend.EXPECT().DeletePost("2").Return(nil)
	h.mockRepo.EXPECT().FinishDeleteBatch(delAcctId,
		[]string{posts[0].Id, posts[1].Id}, gomock.Any()).Return(nil)
	h.mockMetrics.EXPECT().PostsDeleted(2)

	outcome := deleter.DeleteBatch(acct, posts)

	assert.NoError(t, outcome.Err)
	assert.Equal(t, 2, outcome.Deleted)
}

func TestBatchZeroDeletionsLeavesThrottleAlone(t *testing.T) {

	ctrl, h, deleter := setupDeleterTest(t)
	defer ctrl.Finish()

	now := time.Now().UTC()
	acct := &dal.Account{Id: delAcctId, PolicyEnabled: true}
	posts := makeTweetBatch(now, 1)

	h.expectBatchObserver(ctrl)
	h.mockPool.EXPECT().BackendFor(acct).Return(h.mockBackend, nil)
	h.mockBackend.EXPECT().DeletePost("1").Return(&logic.BackendError{
		Kind: logic.ErrRateLimited, Service: "twitter", Status: 429})
	h.mockMetrics.EXPECT().ProviderError(shared.ServiceTwitter, "rate_limited")

	// No FinishDeleteBatch: nothing was deleted, last_delete must not move
	outcome := deleter.DeleteBatch(acct, posts)

	assert.Equal(t, 0, outcome.Deleted)
	assert.True(t, outcome.Retryable)
	assert.Error(t, outcome.Err)
}
