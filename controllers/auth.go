package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Kenji007321/MyBlog/config"
	"github.com/Kenji007321/MyBlog/middlewares"
	"github.com/Kenji007321/MyBlog/store"
	"github.com/Kenji007321/MyBlog/utils"
)

// ShowRegister renders the registration form.
func ShowRegister(c *gin.Context) {
	render(c, http.StatusOK, "register.html", gin.H{})
}

// Register creates a new account and logs it in. A duplicate email redirects
// to the login page with a notice instead of failing on the unique index.
func Register(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")
	name := c.PostForm("name")
	if email == "" || password == "" || name == "" {
		render(c, http.StatusBadRequest, "register.html", gin.H{"Error": "Name, email and password are required"})
		return
	}

	user, err := store.RegisterUser(config.DB, email, password, name)
	if errors.Is(err, store.ErrDuplicateEmail) {
		utils.SetFlash(c, "You already have an account with this email, please login.")
		c.Redirect(http.StatusFound, "/login")
		return
	}
	if err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	if err := startSession(c, user.ID); err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	config.Logger.Info("user registered",
		zap.Uint("user_id", user.ID),
		zap.String("name", user.Name))
	c.Redirect(http.StatusFound, "/")
}

// ShowLogin renders the login form.
func ShowLogin(c *gin.Context) {
	render(c, http.StatusOK, "login.html", gin.H{})
}

// Login verifies credentials and establishes a session. Logging in while
// already authenticated is a benign no-op with a notice.
func Login(c *gin.Context) {
	if middlewares.Identity(c).Authenticated {
		utils.SetFlash(c, "You are already logged in!")
		c.Redirect(http.StatusFound, "/")
		return
	}

	email := c.PostForm("email")
	password := c.PostForm("password")

	user, err := store.VerifyUser(config.DB, email, password)
	switch {
	case errors.Is(err, store.ErrNotFound):
		utils.SetFlash(c, "That email does not exist, please try again.")
		c.Redirect(http.StatusFound, "/login")
		return
	case errors.Is(err, store.ErrWrongPassword):
		config.Logger.Info("login failed", zap.String("email", email))
		utils.SetFlash(c, "Password incorrect, please try again.")
		c.Redirect(http.StatusFound, "/login")
		return
	case err != nil:
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	if err := startSession(c, user.ID); err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	config.Logger.Info("login successful",
		zap.Uint("user_id", user.ID),
		zap.String("name", user.Name))
	c.Redirect(http.StatusFound, "/")
}

// Logout clears the session cookie. A silent no-op when nobody is logged in.
func Logout(c *gin.Context) {
	if middlewares.Identity(c).Authenticated {
		endSession(c)
	}
	c.Redirect(http.StatusFound, "/")
}
