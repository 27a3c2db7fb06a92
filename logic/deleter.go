package logic

import (
	"forget/dal"
	"forget/shared"
	"sort"
	"time"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_deleter.go -package mocks forget/logic IDeleter

// DeleteOutcome reports one delete-batch call: how many posts went away, the
// candidate the batch stopped at (nil when it ran to completion), and at most
// one error with a single retryable-or-not signal.
type DeleteOutcome struct {
	Deleted   int
	StoppedAt *dal.Post
	Retryable bool
	Err       error
}

type IDeleter interface {
	EvaluateAndDelete(accountId string) DeleteOutcome
	DeleteBatch(acct *dal.Account, candidates []*dal.Post) DeleteOutcome
}

type deleter struct {
	logger  shared.ILogger
	repo    dal.IRepo
	pool    IBackendPool
	metrics IMetrics
}

func NewDeleter(
	logger shared.ILogger,
	repo dal.IRepo,
	pool IBackendPool,
	metrics IMetrics,
) IDeleter {
	return &deleter{
		logger:  logger,
		repo:    repo,
		pool:    pool,
		metrics: metrics,
	}
}

// EvaluateAndDelete runs the retention policy over an account's posts and
// deletes the candidates. A disabled policy or a cooldown still in effect
// yields an empty outcome without touching the throttle; an evaluation that
// found nothing to delete re-arms it.
func (d *deleter) EvaluateAndDelete(accountId string) DeleteOutcome {

	acct, err := d.repo.GetAccount(accountId)
	if err != nil {
		return DeleteOutcome{Err: err}
	}
	if acct == nil {
		d.logger.Warnf("Delete requested for unknown account %s", accountId)
		return DeleteOutcome{}
	}

	now := time.Now().UTC()
	if !acct.PolicyEnabled {
		return DeleteOutcome{}
	}
	deleteEvery := ClampInterval(acct.PolicyDeleteEvery)
	if deleteEvery > 0 && now.Sub(acct.LastDelete) < deleteEvery {
		d.logger.Debugf("Account %s is still cooling down; not deleting", acct.Id)
		return DeleteOutcome{}
	}

	posts, err := d.repo.GetPosts(acct.Id)
	if err != nil {
		return DeleteOutcome{Err: err}
	}
	candidates := DeletionCandidates(acct, posts, now)
	if len(candidates) == 0 {
		// Explicit decision that none applied; the throttle re-arms anyway.
		if err = d.repo.SetLastDelete(acct.Id, now); err != nil {
			return DeleteOutcome{Err: err}
		}
		return DeleteOutcome{}
	}

	return d.DeleteBatch(acct, candidates)
}

// DeleteBatch walks candidates oldest first and fails fast: the first error
// other than not-found stops the remaining batch, so a systematic failure is
// not repeated across many items. Posts the provider already lost count as
// deleted. Whatever succeeded before a failure is still committed, together
// with the last_delete update.
func (d *deleter) DeleteBatch(acct *dal.Account, candidates []*dal.Post) DeleteOutcome {

	obs := d.metrics.StartDeleteBatch(shared.ServiceOf(acct.Id))
	defer obs.Finish()

	backend, err := d.pool.BackendFor(acct)
	if err != nil {
		return DeleteOutcome{Retryable: IsRetryable(err), Err: err}
	}

	sorted := make([]*dal.Post, len(candidates))
	copy(sorted, candidates)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
	})

	outcome := DeleteOutcome{}
	var deletedIds []string
	for _, post := range sorted {
		err = backend.DeletePost(lastIdSegment(post.Id))
		if err != nil && KindOf(err) != ErrNotFound {
			d.metrics.ProviderError(shared.ServiceOf(acct.Id), KindOf(err).String())
			outcome.StoppedAt = post
			outcome.Retryable = IsRetryable(err)
			outcome.Err = err
			break
		}
		deletedIds = append(deletedIds, post.Id)
	}
	outcome.Deleted = len(deletedIds)

	if len(deletedIds) != 0 {
		if err = d.repo.FinishDeleteBatch(acct.Id, deletedIds, time.Now().UTC()); err != nil {
			return DeleteOutcome{Deleted: outcome.Deleted, Err: err}
		}
		d.metrics.PostsDeleted(len(deletedIds))
	}

	if outcome.Err != nil {
		d.logger.Warnf("Delete batch for %s stopped after %d deletions: %v",
			acct.Id, outcome.Deleted, outcome.Err)
	} else {
		d.logger.Infof("Deleted %d posts for %s", outcome.Deleted, acct.Id)
	}
	return outcome
}
