package helper_util

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func paginationContext(t *testing.T, target string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	return c
}

func TestGetPaginationParamsDefaults(t *testing.T) {
	limit, offset, err := GetPaginationParams(paginationContext(t, "/products"))
	require.NoError(t, err)
	assert.Equal(t, 100, limit)
	assert.Equal(t, 0, offset)
}

func TestGetPaginationParamsClampsOutOfRange(t *testing.T) {
	limit, offset, err := GetPaginationParams(paginationContext(t, "/products?limit=9999&offset=-5"))
	require.NoError(t, err)
	assert.Equal(t, 500, limit)
	assert.Equal(t, 0, offset)

	limit, _, err = GetPaginationParams(paginationContext(t, "/products?limit=-1"))
	require.NoError(t, err)
	assert.Equal(t, 100, limit)
}

func TestGetPaginationParamsRejectsNonNumeric(t *testing.T) {
	_, _, err := GetPaginationParams(paginationContext(t, "/products?limit=lots"))
	assert.Error(t, err)
}
