package auth

import (
	"errors"

	"github.com/Kenji007321/MyBlog/models"
)

// ErrForbidden is returned by the admin gate when the caller may not manage
// posts.
var ErrForbidden = errors.New("forbidden")

// Identity is the resolved caller of a request. The zero value is Anonymous;
// handlers and templates branch on Authenticated rather than a nil user.
type Identity struct {
	Authenticated bool
	User          models.User
}

// Anonymous is the identity of an unauthenticated caller.
func Anonymous() Identity {
	return Identity{}
}

// AuthenticatedAs wraps a loaded user as the request identity.
func AuthenticatedAs(user models.User) Identity {
	return Identity{Authenticated: true, User: user}
}

// RequireAdmin denies unless the caller is authenticated and is the
// bootstrap admin. An unauthenticated caller never passes, regardless of
// adminID; adminID 0 means no account exists yet and nobody passes.
func RequireAdmin(id Identity, adminID uint) error {
	if !id.Authenticated {
		return ErrForbidden
	}
	if adminID == 0 || id.User.ID != adminID {
		return ErrForbidden
	}
	return nil
}
