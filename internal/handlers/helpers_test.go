package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/warblerhq/warbler/internal/jwt"
	"github.com/warblerhq/warbler/internal/middlewares"
	"github.com/warblerhq/warbler/internal/models"
	"github.com/warblerhq/warbler/internal/sessions"
	"github.com/warblerhq/warbler/internal/templates"
)

func newTestRenderer(t *testing.T) *templates.Renderer {
	t.Helper()
	renderer, err := templates.New()
	require.NoError(t, err)
	return renderer
}

func newTestSessionManager() (*sessions.Manager, *sessions.MemoryStore) {
	store := sessions.NewMemoryStore()
	codec := jwt.New(jwt.WithSecretKey("test-secret"), jwt.WithExpiration(time.Minute))
	return sessions.NewManager(store, codec), store
}

// withSession attaches a session to the request the way SessionMiddleware
// would.
func withSession(r *http.Request, session *sessions.Session) *http.Request {
	return r.WithContext(middlewares.SetSessionToContext(r.Context(), session))
}

func loggedInSession(userID int64) *sessions.Session {
	s := sessions.NewSession()
	s.SetUser(userID)
	return s
}

// withURLParam attaches a chi route parameter to the request context.
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func fixtureUser(id int64, username string) *models.User {
	return &models.User{
		ID:             id,
		Username:       username,
		Email:          username + "@example.com",
		ImageURL:       models.DefaultImageURL,
		HeaderImageURL: models.DefaultHeaderImageURL,
	}
}
