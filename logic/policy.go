package logic

import (
	"forget/dal"
	"sort"
	"time"
)

// ClampInterval raises any positive sub-minute interval to one minute, so a
// misconfigured policy cannot fire rapid deletions. An exact zero is the "no
// constraint" sentinel and passes through untouched.
func ClampInterval(d time.Duration) time.Duration {
	if d > 0 && d < time.Minute {
		return time.Minute
	}
	return d
}

// DeletionCandidates is a pure function from an account's retention policy
// and its known posts to the set eligible for deletion. It returns nothing
// while the policy is disabled or the delete_every cooldown has not elapsed.
// The newest keep_latest posts are exempt unconditionally; so are posts
// younger than keep_younger, and favourites when keep_favourites is set.
func DeletionCandidates(acct *dal.Account, posts []*dal.Post, now time.Time) []*dal.Post {

	if !acct.PolicyEnabled {
		return nil
	}
	deleteEvery := ClampInterval(acct.PolicyDeleteEvery)
	if deleteEvery > 0 && now.Sub(acct.LastDelete) < deleteEvery {
		return nil
	}

	sorted := make([]*dal.Post, len(posts))
	copy(sorted, posts)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})

	keepYounger := ClampInterval(acct.PolicyKeepYounger)
	var res []*dal.Post
	for i, post := range sorted {
		if i < acct.PolicyKeepLatest {
			continue
		}
		if keepYounger > 0 && now.Sub(post.CreatedAt) <= keepYounger {
			continue
		}
		if acct.PolicyKeepFavs && post.Favourite {
			continue
		}
		res = append(res, post)
	}
	return res
}
