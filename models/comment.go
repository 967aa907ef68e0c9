package models

// Comment is a reply on a blog post. There is no edit or delete path for
// comments; they live and die with their parent post.
type Comment struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Text     string `json:"text" gorm:"type:text;not null"`
	AuthorID uint   `json:"author_id" gorm:"index;not null"`
	Author   User   `json:"author" gorm:"foreignKey:AuthorID"`
	PostID   uint   `json:"post_id" gorm:"index;not null"`
}
