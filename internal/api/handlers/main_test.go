package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/mogith007/skillswap/internal/api/middleware"
	"github.com/mogith007/skillswap/internal/api/types"
	"github.com/mogith007/skillswap/internal/models"
	"github.com/mogith007/skillswap/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.InitNop()
	os.Exit(m.Run())
}

// call routes one request through a chi router so URL params resolve.
// A non-nil user is placed in the context the way middleware.Auth does.
func call(t *testing.T, user *models.User, method, pattern, target, body string, h http.HandlerFunc) (*httptest.ResponseRecorder, types.APIResponse) {
	t.Helper()
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if user != nil {
				req = req.WithContext(middleware.WithUser(req.Context(), user, "test-token"))
			}
			next.ServeHTTP(w, req)
		})
	})
	r.MethodFunc(method, pattern, h)

	var rb io.Reader
	if body != "" {
		rb = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rb)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	var resp types.APIResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp), rr.Body.String())
	return rr, resp
}

func member(name string) *models.User {
	return &models.User{ID: uuid.New(), Name: name, Email: name + "@example.com", ProfileType: models.ProfilePublic}
}

func dataMap(t *testing.T, resp types.APIResponse) map[string]any {
	t.Helper()
	m, ok := resp.Data.(map[string]any)
	require.True(t, ok, "data is %T", resp.Data)
	return m
}
