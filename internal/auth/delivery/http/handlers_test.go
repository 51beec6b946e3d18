package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"users-srv/internal/auth"
	"users-srv/internal/auth/mocks"
	"users-srv/internal/middleware"
	"users-srv/internal/model"
	pkgErrors "users-srv/pkg/errors"
	"users-srv/pkg/log"
	"users-srv/pkg/offload"
	"users-srv/pkg/scope"
	"users-srv/pkg/token"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testClaims = model.IdentityClaims{UserID: "u1", Name: "Ada", Surname: "Lovelace"}

type testEnv struct {
	r     *gin.Engine
	uc    *mocks.UseCase
	token string
}

func newTestEnv(t *testing.T) testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(pkgErrors.JSONFieldName)
	}

	codec, err := token.New[model.IdentityClaims](token.Config{Secret: "auth-secret", TTL: time.Hour, Pool: offload.New(2)})
	require.NoError(t, err)
	tok, err := codec.Issue(context.Background(), testClaims)
	require.NoError(t, err)

	uc := mocks.NewUseCase(t)
	mw := middleware.New(log.NewNop(), scope.NewExtractor[model.IdentityClaims](codec), nil)
	r := gin.New()
	New(log.NewNop(), uc, nil).RegisterRoutes(r.Group("/auth"), mw)

	return testEnv{r: r, uc: uc, token: tok}
}

func (e testEnv) do(t *testing.T, method, path, body string, authed bool) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if authed {
		req.Header.Set("Authorization", "Bearer "+e.token)
	}
	w := httptest.NewRecorder()
	e.r.ServeHTTP(w, req)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w.Code, resp
}

func TestRegister(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		ucErr      error
		callsUC    bool
		wantCode   int
		wantErr    string
		wantFields []any
	}{
		{
			name:     "created",
			body:     `{"email":"a@b.c","name":"Ada","surname":"Lovelace","password":"password1"}`,
			callsUC:  true,
			wantCode: http.StatusOK,
		},
		{
			name:       "invalid fields",
			body:       `{"email":"nope","name":"Ada","surname":"Lovelace","password":"short"}`,
			wantCode:   http.StatusBadRequest,
			wantErr:    "invalid_fields",
			wantFields: []any{"email", "password"},
		},
		{
			name:     "malformed body",
			body:     `{"email":`,
			wantCode: http.StatusBadRequest,
			wantErr:  "invalid_body",
		},
		{
			name:     "duplicate email",
			body:     `{"email":"a@b.c","name":"Ada","surname":"Lovelace","password":"password1"}`,
			ucErr:    &pq.Error{Code: "23505"},
			callsUC:  true,
			wantCode: http.StatusConflict,
			wantErr:  "duplicate_row",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			if tt.callsUC {
				env.uc.On("Register", mock.Anything, auth.RegisterInput{
					Email: "a@b.c", Name: "Ada", Surname: "Lovelace", Password: "password1",
				}).Return(auth.TokenOutput{Token: "tok"}, tt.ucErr)
			}

			code, body := env.do(t, http.MethodPost, "/auth/register", tt.body, false)
			assert.Equal(t, tt.wantCode, code)
			if tt.wantErr != "" {
				assert.Equal(t, false, body["success"])
				assert.Equal(t, tt.wantErr, body["error"])
				if tt.wantFields == nil {
					assert.Nil(t, body["fields"])
				} else {
					assert.Equal(t, tt.wantFields, body["fields"])
				}
				return
			}
			assert.Equal(t, true, body["success"])
			assert.Equal(t, "tok", body["token"])
		})
	}
}

func TestLogin(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		env := newTestEnv(t)
		env.uc.On("Login", mock.Anything, auth.LoginInput{Email: "a@b.c", Password: "pw"}).
			Return(auth.TokenOutput{Token: "tok"}, nil)

		code, body := env.do(t, http.MethodPost, "/auth/login", `{"email":"a@b.c","password":"pw"}`, false)
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, "tok", body["token"])
	})

	t.Run("bad credentials", func(t *testing.T) {
		env := newTestEnv(t)
		env.uc.On("Login", mock.Anything, mock.Anything).Return(auth.TokenOutput{}, auth.ErrInvalidCredentials)

		code, body := env.do(t, http.MethodPost, "/auth/login", `{"email":"a@b.c","password":"pw"}`, false)
		assert.Equal(t, http.StatusUnauthorized, code)
		assert.Equal(t, "invalid_credentials", body["error"])
	})
}

func TestDetail(t *testing.T) {
	env := newTestEnv(t)

	code, body := env.do(t, http.MethodGet, "/auth", "", true)
	require.Equal(t, http.StatusOK, code)
	usr := body["user"].(map[string]any)
	assert.Equal(t, "u1", usr["user_id"])
	assert.Equal(t, "Ada", usr["name"])
	assert.NotContains(t, usr, "propic_url")

	code, body = env.do(t, http.MethodGet, "/auth", "", false)
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, scope.CodeNoAuthHeader, body["error"])
}

func TestRegisterFCMToken(t *testing.T) {
	t.Run("registered", func(t *testing.T) {
		env := newTestEnv(t)
		env.uc.On("RegisterFCMToken", mock.Anything, testClaims, auth.RegisterFCMTokenInput{Token: "device-1"}).Return(nil)

		code, body := env.do(t, http.MethodPut, "/auth/fcm-token", `{"token":"device-1"}`, true)
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, true, body["success"])
	})

	t.Run("missing token field", func(t *testing.T) {
		env := newTestEnv(t)

		code, body := env.do(t, http.MethodPut, "/auth/fcm-token", `{}`, true)
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, []any{"token"}, body["fields"])
	})
}
