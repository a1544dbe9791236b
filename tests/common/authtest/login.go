//go:build unit || e2e

package authtest

import (
	"context"
	"net/http"
	"testing"

	"phantom-mask/internal/handler/dto/request"
	"phantom-mask/internal/handler/dto/response"
	"phantom-mask/tests/common/dbtest"
	"phantom-mask/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// IssueCaptcha requests a challenge and reads its answer back from the
// database, standing in for a human reading the image.
func IssueCaptcha(t *testing.T, router *gin.Engine, db dbtest.DBLike) (hashKey, answer string) {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodGet, "/captcha/", nil, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var issued response.CaptchaResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &issued))
	require.NotEmpty(t, issued.HashKey)

	err := db.QueryRow(context.Background(),
		"SELECT response FROM captcha_challenges WHERE hash_key = $1", issued.HashKey).Scan(&answer)
	require.NoError(t, err)
	return issued.HashKey, answer
}

func Login(t *testing.T, router *gin.Engine, db dbtest.DBLike, email, password string) response.TokenResponse {
	t.Helper()

	hashKey, answer := IssueCaptcha(t, router, db)
	w := httptest.PerformRequest(t, router, http.MethodPost, "/login/", request.LoginRequest{
		Email:          email,
		Password:       password,
		Captcha:        answer,
		CaptchaHashKey: hashKey,
	}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var tokens response.TokenResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &tokens))
	require.NotEmpty(t, tokens.Access, "access token missing")
	return tokens
}

func LoginUser(t *testing.T, router *gin.Engine, db dbtest.DBLike, email, password string) string {
	t.Helper()
	return Login(t, router, db, email, password).Access
}

func CreateAndLogin(t *testing.T, db dbtest.DBLike, router *gin.Engine, email string) string {
	t.Helper()
	dbtest.CreateTestUser(t, db, email)
	return LoginUser(t, router, db, email, dbtest.TestPassword)
}
