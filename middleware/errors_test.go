package middleware

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ChethanSPY1817/Survey-Management-Assignment/model"
	"github.com/ChethanSPY1817/Survey-Management-Assignment/utils"
)

func newErrorRouter(err error) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorHandler(log.New(io.Discard, "", 0)))
	r.GET("/boom", func(c *gin.Context) {
		utils.Fail(c, err)
	})
	r.GET("/ok", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func doGet(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestErrorHandlerMapsKinds(t *testing.T) {
	tests := []struct {
		name       string
		err        *model.AppError
		wantStatus int
	}{
		{"bad request", model.NewBadRequest("Invalid Survey Id"), http.StatusBadRequest},
		{"unauthorized", model.NewUnauthorized("Invalid email or password."), http.StatusUnauthorized},
		{"not found", model.NewNotFound("Survey", "s1"), http.StatusNotFound},
		{"conflict", model.NewConflict("A product with name 'X' already exists."), http.StatusConflict},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doGet(newErrorRouter(tt.err), "/boom")
			assert.Equal(t, tt.wantStatus, w.Code)

			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, float64(tt.wantStatus), body["statusCode"])
			assert.Equal(t, tt.err.Message, body["message"])
			assert.Equal(t, string(tt.err.Kind), body["exception"])
			assert.NotEmpty(t, body["timestamp"])
		})
	}
}

func TestErrorHandlerUnknownErrorIs500(t *testing.T) {
	w := doGet(newErrorRouter(assert.AnError), "/boom")
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "InternalServerError", body["exception"])
}

func TestErrorHandlerLeavesSuccessAlone(t *testing.T) {
	w := doGet(newErrorRouter(nil), "/ok")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok": true}`, w.Body.String())
}
