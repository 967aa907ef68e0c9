package utils

import "github.com/gin-gonic/gin"

// flashCookieName holds the one-shot notice shown on the next rendered page.
const flashCookieName = "flash"

// SetFlash queues a notice to show on the next rendered page.
func SetFlash(c *gin.Context, message string) {
	c.SetCookie(flashCookieName, message, 60, "/", "", false, true)
}

// TakeFlash returns the pending notice, if any, and clears it.
func TakeFlash(c *gin.Context) string {
	message, err := c.Cookie(flashCookieName)
	if err != nil || message == "" {
		return ""
	}
	c.SetCookie(flashCookieName, "", -1, "/", "", false, true)
	return message
}
