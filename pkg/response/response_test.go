package response

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/noah-isme/tutor-api/pkg/errors"
)

func TestErrorHidesStoreDetail(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Error(c, appErrors.Store(sql.ErrConnDone))

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error_message":"database error"}`, w.Body.String())
	assert.NotContains(t, w.Body.String(), sql.ErrConnDone.Error())
	require.Len(t, c.Errors, 1)
	assert.ErrorIs(t, c.Errors.Last().Err, sql.ErrConnDone)
}

func TestErrorEchoesNotFoundReason(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Error(c, appErrors.NotFound("course not found"))

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error_message":"course not found"}`, w.Body.String())
}

func TestOKWritesRawPayload(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	OK(c, "deleted 1 course record(s)")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `"deleted 1 course record(s)"`, w.Body.String())
	assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
}
