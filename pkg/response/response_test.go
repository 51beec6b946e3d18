package response

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"users-srv/pkg/errors"
	"users-srv/pkg/scope"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDiscord struct {
	reports chan string
}

func (f *fakeDiscord) ReportBug(_ context.Context, message string) error {
	f.reports <- message
	return nil
}

func (f *fakeDiscord) Close() error { return nil }

func newTestContext(body string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	c.Request.Header.Set("Authorization", "Bearer secret-token")
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestOK(t *testing.T) {
	c, w := newTestContext("")
	OK(c, gin.H{"token": "abc"})

	assert.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "abc", body["token"])
}

func TestError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantFields []any
	}{
		{"auth", scope.ErrNoHeader, http.StatusUnauthorized, scope.CodeNoAuthHeader, nil},
		{"validation", errors.NewValidationFailed("email"), http.StatusBadRequest, errors.CodeInvalidFields, []any{"email"}},
		{"conflict", &pq.Error{Code: "23505"}, http.StatusConflict, errors.CodeDuplicateRow, nil},
		{"internal", stderrors.New("disk on fire"), http.StatusInternalServerError, errors.CodeInternalServerError, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newTestContext("")
			Error(c, tt.err, nil)

			assert.Equal(t, tt.wantStatus, w.Code)
			body := decode(t, w)
			assert.Equal(t, false, body["success"])
			assert.Equal(t, tt.wantCode, body["error"])
			if tt.wantFields != nil {
				assert.Equal(t, tt.wantFields, body["fields"])
			} else {
				assert.NotContains(t, body, "fields")
			}
			assert.NotContains(t, w.Body.String(), "disk on fire")
		})
	}
}

func TestErrorReportsInternalFailures(t *testing.T) {
	d := &fakeDiscord{reports: make(chan string, 4)}
	c, _ := newTestContext(`{"email":"a@b.c","password":"hunter22"}`)

	Error(c, stderrors.New("db exploded"), d)

	select {
	case msg := <-d.reports:
		assert.Contains(t, msg, "db exploded")
		assert.Contains(t, msg, "/auth/login")
		assert.NotContains(t, msg, "secret-token")
		assert.NotContains(t, msg, "hunter22")
	case <-time.After(time.Second):
		t.Fatal("no report sent")
	}
}

func TestErrorDoesNotReportClientFailures(t *testing.T) {
	d := &fakeDiscord{reports: make(chan string, 1)}
	c, _ := newTestContext("")

	Error(c, scope.ErrNoBearerToken, d)

	select {
	case <-d.reports:
		t.Fatal("client failure was reported")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestErrorWithMap(t *testing.T) {
	errWrongPassword := stderrors.New("wrong password")
	eMap := ErrorMapping{errWrongPassword: errors.NewUnauthorized(errors.CodeInvalidCredentials)}

	c, w := newTestContext("")
	ErrorWithMap(c, errWrongPassword, eMap, nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, errors.CodeInvalidCredentials, decode(t, w)["error"])
}

func TestPanicError(t *testing.T) {
	c, w := newTestContext("")
	PanicError(c, "nil map write", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.True(t, c.IsAborted())
	assert.Equal(t, errors.CodeInternalServerError, decode(t, w)["error"])
}

func TestSplitMessageForDiscord(t *testing.T) {
	msg := strings.Repeat("a", DiscordMaxMessageLen+10) + "\nshort"
	chunks := splitMessageForDiscord(msg)
	require.Len(t, chunks, 2)
	assert.Len(t, chunks[0], DiscordMaxMessageLen)
	assert.True(t, strings.HasSuffix(chunks[1], "short"))
}
