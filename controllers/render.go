package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Kenji007321/MyBlog/auth"
	"github.com/Kenji007321/MyBlog/config"
	"github.com/Kenji007321/MyBlog/middlewares"
	"github.com/Kenji007321/MyBlog/utils"
)

// render injects the data every page needs: the caller identity and any
// pending flash notice.
func render(c *gin.Context, code int, name string, data gin.H) {
	identity := middlewares.Identity(c)
	data["LoggedIn"] = identity.Authenticated
	data["CurrentUser"] = identity.User
	if flash := utils.TakeFlash(c); flash != "" {
		data["Flash"] = flash
	}
	c.HTML(code, name, data)
}

// startSession issues a signed session token and sets it as an HttpOnly
// cookie.
func startSession(c *gin.Context, userID uint) error {
	token, err := auth.IssueSession(config.SecretKey, userID)
	if err != nil {
		return err
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(auth.SessionCookieName, token, int(auth.SessionTTL.Seconds()), "/", "", false, true)
	return nil
}

// endSession expires the session cookie.
func endSession(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(auth.SessionCookieName, "", -1, "/", "", false, true)
}
