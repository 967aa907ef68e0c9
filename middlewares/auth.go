package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Kenji007321/MyBlog/auth"
	"github.com/Kenji007321/MyBlog/config"
	"github.com/Kenji007321/MyBlog/store"
)

// identityKey is where CurrentUser stores the resolved identity in the gin
// context.
const identityKey = "identity"

// CurrentUser resolves the caller's identity once per request from the
// session cookie. Invalid or expired tokens, and tokens whose user no longer
// resolves, fall back to Anonymous.
func CurrentUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := auth.Anonymous()

		if token, err := c.Cookie(auth.SessionCookieName); err == nil && token != "" {
			if userID, err := auth.ParseSession(config.SecretKey, token); err == nil {
				if user, err := store.GetUser(config.DB, userID); err == nil {
					identity = auth.AuthenticatedAs(user)
				}
			}
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}

// Identity returns the identity resolved by CurrentUser. Anonymous when the
// middleware did not run.
func Identity(c *gin.Context) auth.Identity {
	if v, ok := c.Get(identityKey); ok {
		if id, ok := v.(auth.Identity); ok {
			return id
		}
	}
	return auth.Anonymous()
}

// AdminOnly aborts with 403 unless the caller is the bootstrap admin. Must
// run after CurrentUser.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := Identity(c)

		adminID, err := store.BootstrapAdminID(config.DB)
		if err != nil {
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		if err := auth.RequireAdmin(identity, adminID); err != nil {
			config.Logger.Warn("forbidden",
				zap.String("path", c.Request.URL.Path),
				zap.Bool("authenticated", identity.Authenticated),
				zap.Uint("user_id", identity.User.ID))
			c.AbortWithStatus(http.StatusForbidden)
			return
		}
		c.Next()
	}
}

// IdentityLogger logs who is performing each request. Registered after
// authentication and any authorization gate.
func IdentityLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := Identity(c)
		user := "anonymous"
		if identity.Authenticated {
			user = identity.User.Name
		}
		config.Logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("user", user))
		c.Next()
	}
}
