package shared

import (
	"fmt"
	"strconv"
	"strings"
)

// Service tags embedded in account and post ids. An account on Twitter is
// "twitter:12345"; on Mastodon the instance is part of the identity:
// "mastodon:mastodon.social:109348...". Posts use the same scheme.
const (
	ServiceMastodon = "mastodon"
	ServiceTwitter  = "twitter"
)

func MakeTwitterId(remoteId string) string {
	return ServiceTwitter + ":" + remoteId
}

func MakeMastodonId(instance, remoteId string) string {
	return ServiceMastodon + ":" + instance + ":" + remoteId
}

func ServiceOf(id string) string {
	ix := strings.IndexByte(id, ':')
	if ix == -1 {
		return ""
	}
	return id[:ix]
}

// MastodonInstanceOf returns the instance host baked into a Mastodon id, or
// an empty string for anything else.
func MastodonInstanceOf(id string) string {
	parts := strings.SplitN(id, ":", 3)
	if len(parts) != 3 || parts[0] != ServiceMastodon {
		return ""
	}
	return parts[1]
}

// NumericIdOf returns the provider-native numeric id, i.e. the last segment.
// Both providers hand out numeric ids that order chronologically, which is
// what pagination cursors rely on.
func NumericIdOf(id string) (uint64, error) {
	ix := strings.LastIndexByte(id, ':')
	if ix == -1 || ix == len(id)-1 {
		return 0, fmt.Errorf("id '%s' has no numeric segment", id)
	}
	res, err := strconv.ParseUint(id[ix+1:], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("id '%s' has a non-numeric remote id: %v", id, err)
	}
	return res, nil
}
