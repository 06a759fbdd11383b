package utils

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-01-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC), d)

	d, err = ParseDate("2024-01-15T10:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, 10, d.Hour())

	_, err = ParseDate("15/01/2024")
	assert.Error(t, err)

	none, err := ParseOptionalDate(" ")
	require.NoError(t, err)
	assert.Nil(t, none)
}

func TestTokenRoundTrip(t *testing.T) {
	ConfigureTokens("", 0)
	_, err := GenerateToken(1, "admin")
	assert.ErrorIs(t, err, ErrTokenSecretMissing)

	ConfigureTokens("unit-secret", 2*time.Hour)
	token, err := GenerateToken(7, "admin")
	require.NoError(t, err)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, float64(7), claims["user_id"])
	assert.Equal(t, "admin", claims["role"])
	assert.InDelta(t, (2 * time.Hour).Seconds(), TokenRemaining(claims).Seconds(), 5)

	ConfigureTokens("other-secret", 2*time.Hour)
	_, err = ValidateToken(token)
	assert.Error(t, err)
}

type bindTarget struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"omitempty,email"`
	Age   int    `json:"age" binding:"min=1"`
}

func TestBindAndValidate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	RegisterJSONFieldNames()

	tests := []struct {
		name       string
		body       string
		wantOK     bool
		wantFields []string
	}{
		{"valid", `{"name":"Asha","age":3}`, true, nil},
		{"missing and invalid", `{"email":"nope","age":0}`, false, []string{"name", "email", "age"}},
		{"wrong type", `{"name":"Asha","age":"three"}`, false, []string{"age"}},
		{"malformed", `{"name":`, false, []string{"body"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			c.Request.Header.Set("Content-Type", "application/json")

			var target bindTarget
			ok := BindAndValidate(c, &target)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				return
			}
			assert.Equal(t, http.StatusBadRequest, w.Code)
			for _, f := range tt.wantFields {
				assert.Contains(t, w.Body.String(), `"field":"`+f+`"`)
			}
		})
	}
}

func TestResponseWriters(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/fail", func(c *gin.Context) { Fail(c, http.StatusNotFound, "Member not found") })
	r.GET("/abort", func(c *gin.Context) { Abort(c, http.StatusForbidden, "nope") }, func(c *gin.Context) { c.String(http.StatusOK, "next handler ran") })
	r.GET("/file", func(c *gin.Context) { SendFile(c, "invoice-7.pdf", "application/pdf", []byte("%PDF-1.3")) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/fail", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"status":404,"message":"Member not found","data":null}`, w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/abort", nil))
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.NotContains(t, w.Body.String(), "next handler ran")

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/file", nil))
	assert.Equal(t, `attachment; filename="invoice-7.pdf"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(w.Body.String(), "%PDF"))
}
