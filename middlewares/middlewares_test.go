package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid"
	"gotest.tools/assert"
)

func TestRequestID(t *testing.T) {
	// generated when absent
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest("GET", "", nil)
	c.Request = req
	RequestID()(c)

	_, err := uuid.FromString(w.Header().Get("X-Request-Id"))
	assert.Equal(t, nil, err)

	// valid incoming id kept
	mockID := "63eb226a-d612-412b-b8d4-a3e17b7d2226"
	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	req, _ = http.NewRequest("GET", "", nil)
	req.Header.Set("X-Request-Id", mockID)
	c.Request = req
	RequestID()(c)

	assert.Equal(t, mockID, w.Header().Get("X-Request-Id"))

	// junk replaced
	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	req, _ = http.NewRequest("GET", "", nil)
	req.Header.Set("X-Request-Id", "junk")
	c.Request = req
	RequestID()(c)

	id := w.Header().Get("X-Request-Id")
	assert.Equal(t, false, id == "junk")
	_, err = uuid.FromString(id)
	assert.Equal(t, nil, err)
}
