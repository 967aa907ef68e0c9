package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Kenji007321/MyBlog/config"
	"github.com/Kenji007321/MyBlog/store"
)

// AllUsers returns every registered user keyed by name. Admin only: the
// payload includes email addresses.
func AllUsers(c *gin.Context) {
	users, err := store.AllUsers(config.DB)
	if err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	byName := gin.H{}
	for _, u := range users {
		byName[u.Name] = gin.H{"id": u.ID, "name": u.Name, "email": u.Email}
	}
	c.JSON(http.StatusOK, gin.H{"users": byName})
}
