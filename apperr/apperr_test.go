package apperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestStatus(t *testing.T) {
	assert.Equal(t, http.StatusUnauthorized, Status(Unauthorized("no")))
	assert.Equal(t, http.StatusNotFound, Status(NotFound("gone")))
	assert.Equal(t, http.StatusBadRequest, Status(Validation("bad")))
	assert.Equal(t, http.StatusBadRequest, Status(Conflict("taken")))
	assert.Equal(t, http.StatusBadRequest, Status(BadRequest("bad")))
	assert.Equal(t, http.StatusInternalServerError, Status(Internal(errors.New("boom"))))
	assert.Equal(t, http.StatusInternalServerError, Status(errors.New("plain")))
	assert.Equal(t, http.StatusNotFound, Status(fmt.Errorf("wrapped: %w", NotFound("gone"))))
}

func respond(t *testing.T, err error) (int, map[string]string) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	Respond(c, zap.NewNop(), err)
	assert.True(t, c.IsAborted())

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w.Code, body
}

func TestRespondClientError(t *testing.T) {
	code, body := respond(t, NotFound("Address not found"))
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, map[string]string{"error": "Address not found"}, body)
}

func TestRespondInternalHidesCause(t *testing.T) {
	gin.SetMode(gin.ReleaseMode)
	defer gin.SetMode(gin.TestMode)

	code, body := respond(t, errors.New("pq: connection refused"))
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, "Internal server error", body["error"])
	assert.NotContains(t, body, "details")
}

func TestRespondInternalDetailsInDebug(t *testing.T) {
	gin.SetMode(gin.DebugMode)
	defer gin.SetMode(gin.TestMode)

	_, body := respond(t, Internal(errors.New("pq: connection refused")))
	assert.Equal(t, "pq: connection refused", body["details"])
}
