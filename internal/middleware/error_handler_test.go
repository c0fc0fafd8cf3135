package middleware_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cms_back_end/internal/apperror"
	"cms_back_end/internal/middleware"
)

func newRouter(handler gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	r.GET("/boom", handler)
	return r
}

func doGet(r *gin.Engine) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))
	return rec
}

func TestErrorHandler_TaggedStatuses(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"validation", apperror.BadRequest("champ manquant"), http.StatusBadRequest},
		{"resource limit", apperror.TooLarge("fichier trop gros"), http.StatusRequestEntityTooLarge},
		{"upstream", apperror.Upstream("stockage indisponible", errors.New("dial tcp")), http.StatusBadGateway},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newRouter(func(c *gin.Context) {
				c.Error(tc.err)
			})

			rec := doGet(r)
			assert.Equal(t, tc.status, rec.Code)

			var body struct {
				Success bool   `json:"success"`
				Error   string `json:"error"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.False(t, body.Success)
			assert.NotEmpty(t, body.Error)
		})
	}
}

func TestErrorHandler_UntaggedErrorIs500(t *testing.T) {
	r := newRouter(func(c *gin.Context) {
		c.Error(errors.New("panique interne"))
	})

	rec := doGet(r)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	// Le message brut n'est pas exposé au client
	assert.NotContains(t, rec.Body.String(), "panique interne")
}

func TestErrorHandler_NoErrorPassesThrough(t *testing.T) {
	r := newRouter(func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	rec := doGet(r)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)
}
