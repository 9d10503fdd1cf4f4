// internal/utils/response_test.go
package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestStatusForCode(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, StatusForCode(CodeNotFound))
	assert.Equal(t, http.StatusConflict, StatusForCode(CodeConflict))
	assert.Equal(t, http.StatusUnauthorized, StatusForCode(CodeInvalidCredentials))
	assert.Equal(t, http.StatusBadRequest, StatusForCode(CodeValidation))
	assert.Equal(t, http.StatusTooManyRequests, StatusForCode(CodeRateLimited))
	assert.Equal(t, http.StatusInternalServerError, StatusForCode(CodeIntegrityFault))
	assert.Equal(t, http.StatusInternalServerError, StatusForCode("SOMETHING_ELSE"))
}

func TestCodedErrorResponse(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	CodedErrorResponse(c, CodeConflict, "username already taken")

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.JSONEq(t, `{"success":false,"error":{"code":"CONFLICT","message":"username already taken"}}`, w.Body.String())
}
