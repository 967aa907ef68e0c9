package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// About renders the static about page.
func About(c *gin.Context) {
	render(c, http.StatusOK, "about.html", gin.H{})
}

// Contact renders the static contact page.
func Contact(c *gin.Context) {
	render(c, http.StatusOK, "contact.html", gin.H{})
}
