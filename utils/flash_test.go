package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func flashTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/set", func(c *gin.Context) {
		SetFlash(c, "You are already logged in!")
		c.Status(http.StatusOK)
	})
	r.GET("/get", func(c *gin.Context) {
		c.String(http.StatusOK, TakeFlash(c))
	})
	return r
}

func TestFlashRoundTrip(t *testing.T) {
	r := flashTestRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/set", nil))
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)

	req := httptest.NewRequest(http.MethodGet, "/get", nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, req)

	assert.Equal(t, "You are already logged in!", w2.Body.String())

	// Reading the flash clears it for the next page.
	var cleared bool
	for _, ck := range w2.Result().Cookies() {
		if ck.Name == "flash" && ck.MaxAge < 0 {
			cleared = true
		}
	}
	assert.True(t, cleared, "flash cookie should be expired after being read")
}

func TestTakeFlashEmpty(t *testing.T) {
	r := flashTestRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/get", nil))
	assert.Empty(t, w.Body.String())
}
