package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGravatarURLNormalizesEmail(t *testing.T) {
	assert.Equal(t, GravatarURL("foo@example.com"), GravatarURL("  Foo@Example.COM "))
}

func TestGravatarURLShape(t *testing.T) {
	url := GravatarURL("foo@example.com")
	assert.True(t, strings.HasPrefix(url, "https://www.gravatar.com/avatar/"))
	assert.Contains(t, url, "d=retro")

	hash := strings.TrimPrefix(url, "https://www.gravatar.com/avatar/")
	hash = hash[:strings.Index(hash, "?")]
	assert.Len(t, hash, 32)
}
