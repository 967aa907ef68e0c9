package store

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Kenji007321/MyBlog/models"
)

// dateLayout renders publish dates like "March 03, 2024".
const dateLayout = "January 02, 2006"

// PostFields carries the editable fields of a blog post.
type PostFields struct {
	Title    string
	Subtitle string
	Body     string
	ImgURL   string
}

// CreatePost inserts a new post owned by authorID, stamping today's date in
// the blog's human-readable format.
func CreatePost(db *gorm.DB, authorID uint, fields PostFields) (models.BlogPost, error) {
	post := models.BlogPost{
		AuthorID: authorID,
		Title:    fields.Title,
		Subtitle: fields.Subtitle,
		Date:     time.Now().Format(dateLayout),
		Body:     fields.Body,
		ImgURL:   fields.ImgURL,
	}
	if err := db.Create(&post).Error; err != nil {
		return models.BlogPost{}, err
	}
	return post, nil
}

// UpdatePost rewrites the editable fields and reassigns authorship to the
// editing user. The original publish date is kept.
func UpdatePost(db *gorm.DB, postID, editorID uint, fields PostFields) (models.BlogPost, error) {
	var post models.BlogPost
	if err := db.First(&post, postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.BlogPost{}, ErrNotFound
		}
		return models.BlogPost{}, err
	}

	updates := map[string]interface{}{
		"title":     fields.Title,
		"subtitle":  fields.Subtitle,
		"body":      fields.Body,
		"img_url":   fields.ImgURL,
		"author_id": editorID,
	}
	if err := db.Model(&post).Updates(updates).Error; err != nil {
		return models.BlogPost{}, err
	}
	return GetPost(db, postID)
}

// DeletePost removes a post together with its comments. The comment delete
// is explicit rather than leaning on the driver honoring the schema-level
// cascade.
func DeletePost(db *gorm.DB, postID uint) error {
	var post models.BlogPost
	if err := db.First(&post, postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", postID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.BlogPost{}, postID).Error
	})
}

// ListPosts returns every post in insertion order with its author loaded.
func ListPosts(db *gorm.DB) ([]models.BlogPost, error) {
	var posts []models.BlogPost
	if err := db.Preload("Author").Order("id").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// GetPost returns a post with its author, comments and comment authors.
func GetPost(db *gorm.DB, id uint) (models.BlogPost, error) {
	var post models.BlogPost
	err := db.
		Preload("Author").
		Preload("Comments").
		Preload("Comments.Author").
		First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.BlogPost{}, ErrNotFound
		}
		return models.BlogPost{}, err
	}
	return post, nil
}

// AddComment attaches a comment by authorID to an existing post.
func AddComment(db *gorm.DB, postID, authorID uint, text string) (models.Comment, error) {
	var post models.BlogPost
	if err := db.First(&post, postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Comment{}, ErrNotFound
		}
		return models.Comment{}, err
	}

	comment := models.Comment{Text: text, AuthorID: authorID, PostID: postID}
	if err := db.Create(&comment).Error; err != nil {
		return models.Comment{}, err
	}
	return comment, nil
}
