package shared

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestServiceOf(t *testing.T) {
	assert.Equal(t, "twitter", ServiceOf(MakeTwitterId("12345")))
	assert.Equal(t, "mastodon", ServiceOf(MakeMastodonId("mastodon.social", "678")))
	assert.Equal(t, "", ServiceOf("no-colons-here"))
}

func TestMastodonInstanceOf(t *testing.T) {
	assert.Equal(t, "mastodon.social", MastodonInstanceOf("mastodon:mastodon.social:678"))
	assert.Equal(t, "", MastodonInstanceOf("twitter:12345"))
	assert.Equal(t, "", MastodonInstanceOf("mastodon:borked"))
}

func TestNumericIdOf(t *testing.T) {
	num, err := NumericIdOf("twitter:12345")
	assert.Nil(t, err)
	assert.Equal(t, uint64(12345), num)

	num, err = NumericIdOf("mastodon:mastodon.social:109348284930")
	assert.Nil(t, err)
	assert.Equal(t, uint64(109348284930), num)

	_, err = NumericIdOf("mastodon:mastodon.social:oops")
	assert.NotNil(t, err)
	_, err = NumericIdOf("naked")
	assert.NotNil(t, err)
}
