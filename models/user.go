package models

// User is a registered account. The first user ever created acts as the
// bootstrap admin and is the only identity allowed to manage posts.
type User struct {
	ID       uint       `json:"id" gorm:"primaryKey"`
	Email    string     `json:"email" gorm:"uniqueIndex;size:100;not null"`
	Password string     `json:"-" gorm:"size:100;not null"` // bcrypt hash, never plaintext
	Name     string     `json:"name" gorm:"size:100;not null"`
	Posts    []BlogPost `json:"-" gorm:"foreignKey:AuthorID"`
	Comments []Comment  `json:"-" gorm:"foreignKey:AuthorID"`
}
