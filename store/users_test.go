package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kenji007321/MyBlog/models"
)

func TestRegisterUserHashesPassword(t *testing.T) {
	db := newTestDB(t)

	user, err := RegisterUser(db, "a@x.com", "hunter22", "Alice")
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.NotEqual(t, "hunter22", user.Password)
	assert.True(t, strings.HasPrefix(user.Password, "$2a$"), "expected a bcrypt hash, got %q", user.Password)

	verified, err := VerifyUser(db, "a@x.com", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, user.ID, verified.ID)
}

func TestRegisterUserDuplicateEmail(t *testing.T) {
	db := newTestDB(t)

	_, err := RegisterUser(db, "a@x.com", "hunter22", "Alice")
	require.NoError(t, err)

	_, err = RegisterUser(db, "a@x.com", "different", "Alice Again")
	assert.ErrorIs(t, err, ErrDuplicateEmail)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Where("email = ?", "a@x.com").Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestVerifyUserWrongPassword(t *testing.T) {
	db := newTestDB(t)

	_, err := RegisterUser(db, "a@x.com", "hunter22", "Alice")
	require.NoError(t, err)

	_, err = VerifyUser(db, "a@x.com", "not-the-password")
	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestVerifyUserUnknownEmail(t *testing.T) {
	db := newTestDB(t)

	_, err := VerifyUser(db, "nobody@x.com", "whatever")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBootstrapAdminID(t *testing.T) {
	db := newTestDB(t)

	id, err := BootstrapAdminID(db)
	require.NoError(t, err)
	assert.Zero(t, id, "no users yet, nobody is admin")

	first, err := RegisterUser(db, "a@x.com", "hunter22", "Alice")
	require.NoError(t, err)
	_, err = RegisterUser(db, "b@x.com", "hunter22", "Bob")
	require.NoError(t, err)

	id, err = BootstrapAdminID(db)
	require.NoError(t, err)
	assert.Equal(t, first.ID, id)
}

func TestAllUsersCreationOrder(t *testing.T) {
	db := newTestDB(t)

	_, err := RegisterUser(db, "a@x.com", "pw", "Alice")
	require.NoError(t, err)
	_, err = RegisterUser(db, "b@x.com", "pw", "Bob")
	require.NoError(t, err)

	users, err := AllUsers(db)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "Alice", users[0].Name)
	assert.Equal(t, "Bob", users[1].Name)
}
