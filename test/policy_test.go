package test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"forget/dal"
	"forget/logic"
)

func TestClampInterval(t *testing.T) {
	assert.Equal(t, time.Minute, logic.ClampInterval(59*time.Second))
	assert.Equal(t, time.Minute, logic.ClampInterval(time.Second))
	assert.Equal(t, time.Minute, logic.ClampInterval(time.Minute))
	assert.Equal(t, 5*time.Minute, logic.ClampInterval(5*time.Minute))
	// Zero is the no-constraint sentinel and must survive untouched
	assert.Equal(t, time.Duration(0), logic.ClampInterval(0))
}

func makePolicyAccount() *dal.Account {
	return &dal.Account{
		Id:            "mastodon:example.social:42",
		PolicyEnabled: true,
	}
}

// makeAgedPosts returns count posts, newest first: post i is i hours old.
func makeAgedPosts(now time.Time, count int) []*dal.Post {
	var res []*dal.Post
	for i := 0; i < count; i++ {
		id := fmt.Sprintf("mastodon:example.social:%d", 1000-i)
		res = append(res, makePost(id, now.Add(-time.Duration(i)*time.Hour), false))
	}
	return res
}

func TestCandidatesDisabledPolicy(t *testing.T) {
	now := time.Now().UTC()
	acct := makePolicyAccount()
	acct.PolicyEnabled = false
	posts := makeAgedPosts(now, 5)

	assert.Empty(t, logic.DeletionCandidates(acct, posts, now))
}

func TestCandidatesCooldown(t *testing.T) {
	now := time.Now().UTC()
	acct := makePolicyAccount()
	acct.PolicyDeleteEvery = time.Hour
	acct.LastDelete = now.Add(-10 * time.Minute)
	posts := makeAgedPosts(now, 5)

	assert.Empty(t, logic.DeletionCandidates(acct, posts, now))

	// Once the interval has elapsed, everything is fair game again
	acct.LastDelete = now.Add(-2 * time.Hour)
	assert.Len(t, logic.DeletionCandidates(acct, posts, now), 5)
}

func TestCandidatesKeepLatest(t *testing.T) {
	now := time.Now().UTC()
	acct := makePolicyAccount()
	acct.PolicyKeepLatest = 3
	posts := makeAgedPosts(now, 7)

	res := logic.DeletionCandidates(acct, posts, now)

	// The three newest are exempt; the four oldest are candidates
	assert.Len(t, res, 4)
	for _, cand := range res {
		for _, kept := range posts[:3] {
			assert.NotEqual(t, kept.Id, cand.Id)
		}
	}
}

func TestCandidatesKeepLatestExceedsPosts(t *testing.T) {
	now := time.Now().UTC()
	acct := makePolicyAccount()
	acct.PolicyKeepLatest = 10
	posts := makeAgedPosts(now, 4)

	assert.Empty(t, logic.DeletionCandidates(acct, posts, now))
}

func TestCandidatesKeepYounger(t *testing.T) {
	now := time.Now().UTC()
	acct := makePolicyAccount()
	acct.PolicyKeepYounger = 3*time.Hour + 30*time.Minute
	posts := makeAgedPosts(now, 6) // ages 0h..5h

	res := logic.DeletionCandidates(acct, posts, now)

	// Only the 4h and 5h old posts are old enough to delete
	assert.Len(t, res, 2)
	assert.Equal(t, posts[4].Id, res[0].Id)
	assert.Equal(t, posts[5].Id, res[1].Id)
}

func TestCandidatesKeepFavourites(t *testing.T) {
	now := time.Now().UTC()
	acct := makePolicyAccount()
	acct.PolicyKeepFavs = true
	posts := makeAgedPosts(now, 4)
	posts[1].Favourite = true
	posts[3].Favourite = true

	res := logic.DeletionCandidates(acct, posts, now)

	assert.Len(t, res, 2)
	for _, cand := range res {
		assert.False(t, cand.Favourite)
	}

	// Same posts without the exemption: all four go
	acct.PolicyKeepFavs = false
	assert.Len(t, logic.DeletionCandidates(acct, posts, now), 4)
}

func TestCandidatesCombinedExemptions(t *testing.T) {
	now := time.Now().UTC()
	acct := makePolicyAccount()
	acct.PolicyKeepLatest = 2
	acct.PolicyKeepFavs = true
	acct.PolicyKeepYounger = 90 * time.Minute
	posts := makeAgedPosts(now, 6) // ages 0h..5h
	posts[4].Favourite = true

	res := logic.DeletionCandidates(acct, posts, now)

	// 0h and 1h: keep_latest. 1h would also be keep_younger. 4h: favourite.
	// Remaining candidates: 2h, 3h, 5h.
	assert.Len(t, res, 3)
	assert.Equal(t, posts[2].Id, res[0].Id)
	assert.Equal(t, posts[3].Id, res[1].Id)
	assert.Equal(t, posts[5].Id, res[2].Id)
}

func TestCandidatesInputOrderIrrelevant(t *testing.T) {
	now := time.Now().UTC()
	acct := makePolicyAccount()
	acct.PolicyKeepLatest = 2
	posts := makeAgedPosts(now, 5)
	shuffled := []*dal.Post{posts[3], posts[0], posts[4], posts[2], posts[1]}

	res := logic.DeletionCandidates(acct, shuffled, now)

	assert.Len(t, res, 3)
	assert.Equal(t, posts[2].Id, res[0].Id)
	assert.Equal(t, posts[3].Id, res[1].Id)
	assert.Equal(t, posts[4].Id, res[2].Id)
}
