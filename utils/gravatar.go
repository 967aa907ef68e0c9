package utils

import (
	"crypto/md5"
	"fmt"
	"strings"
)

// GravatarURL builds the avatar URL for an email address, matching the
// blog's comment avatars (100px, "retro" fallback, G rated).
func GravatarURL(email string) string {
	normalized := strings.ToLower(strings.TrimSpace(email))
	hash := md5.Sum([]byte(normalized))
	return fmt.Sprintf("https://www.gravatar.com/avatar/%x?s=100&d=retro&r=g", hash)
}
