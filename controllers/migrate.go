package controllers

import (
	"github.com/Kenji007321/MyBlog/config"
	"github.com/Kenji007321/MyBlog/models"

	"gorm.io/gorm"
)

// MigrateModels runs the database migrations
func MigrateModels(db *gorm.DB) error {
	config.DB = db
	return db.AutoMigrate(&models.User{}, &models.BlogPost{}, &models.Comment{})
}
