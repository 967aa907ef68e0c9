package store

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Kenji007321/MyBlog/models"
)

// RegisterUser hashes the password and inserts a new user. The email is
// pre-checked by lookup so callers can redirect to the login page instead of
// surfacing a constraint failure; the unique index remains the final
// authority under concurrent registrations.
func RegisterUser(db *gorm.DB, email, password, name string) (models.User, error) {
	if _, err := FindUserByEmail(db, email); err == nil {
		return models.User{}, ErrDuplicateEmail
	} else if !errors.Is(err, ErrNotFound) {
		return models.User{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{Email: email, Password: string(hashed), Name: name}
	if err := db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.User{}, ErrDuplicateEmail
		}
		return models.User{}, err
	}
	return user, nil
}

// VerifyUser checks an email/password pair against the stored bcrypt hash.
func VerifyUser(db *gorm.DB, email, password string) (models.User, error) {
	user, err := FindUserByEmail(db, email)
	if err != nil {
		return models.User{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return models.User{}, ErrWrongPassword
	}
	return user, nil
}

// FindUserByEmail looks a user up by their unique email.
func FindUserByEmail(db *gorm.DB, email string) (models.User, error) {
	var user models.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrNotFound
		}
		return models.User{}, err
	}
	return user, nil
}

// GetUser looks a user up by id.
func GetUser(db *gorm.DB, id uint) (models.User, error) {
	var user models.User
	if err := db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrNotFound
		}
		return models.User{}, err
	}
	return user, nil
}

// AllUsers returns every registered user in creation order.
func AllUsers(db *gorm.DB) ([]models.User, error) {
	var users []models.User
	if err := db.Order("id").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// BootstrapAdminID returns the id of the first user ever created. Users are
// never deleted, so the lowest id is the bootstrap admin. Returns 0 while no
// account exists yet.
func BootstrapAdminID(db *gorm.DB) (uint, error) {
	var user models.User
	if err := db.Order("id").First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return user.ID, nil
}
