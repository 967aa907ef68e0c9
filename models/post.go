package models

// BlogPost is a published article. Date is a human-readable string stamped
// once at creation and never touched on edit.
type BlogPost struct {
	ID       uint      `json:"id" gorm:"primaryKey"`
	AuthorID uint      `json:"author_id" gorm:"not null"`
	Author   User      `json:"author" gorm:"foreignKey:AuthorID"`
	Title    string    `json:"title" gorm:"uniqueIndex;size:250;not null"`
	Subtitle string    `json:"subtitle" gorm:"size:250;not null"`
	Date     string    `json:"date" gorm:"size:250;not null"`
	Body     string    `json:"body" gorm:"type:text;not null"`
	ImgURL   string    `json:"img_url" gorm:"size:250;not null"`
	Comments []Comment `json:"comments" gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
}
