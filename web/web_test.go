package web

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"gotest.tools/assert"
)

func TestIndex(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest("GET", "/", nil)
	c.Request = req
	Index(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))

	body := w.Body.String()
	assert.Equal(t, true, strings.Contains(body, `"/api/products"`))

	// catalog values land inside double-quoted attributes, so the page
	// escaper must neutralize quotes along with angle brackets
	assert.Equal(t, true, strings.Contains(body, `.replace(/"/g, "&quot;")`))
	assert.Equal(t, true, strings.Contains(body, `.replace(/</g, "&lt;")`))
}
