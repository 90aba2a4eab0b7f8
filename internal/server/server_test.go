package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harshdhankhar10/Event-finder/internal/db/jsondb"
	"github.com/harshdhankhar10/Event-finder/internal/geo"
	"github.com/harshdhankhar10/Event-finder/internal/query"
)

type cannedGenerator struct{}

func (cannedGenerator) GenerateText(context.Context, string) (string, error) {
	return "[]", nil
}

func newTestServer(t *testing.T) *Server {
	t.Helper()

	dir := t.TempDir()
	favorites, err := jsondb.NewFavoriteStore(filepath.Join(dir, "favorites.json"))
	require.NoError(t, err)
	locations, err := jsondb.NewLocationStore(filepath.Join(dir, "location.json"))
	require.NoError(t, err)

	return NewServer(
		"event-finder-test",
		"",
		query.NewService(cannedGenerator{}),
		favorites,
		locations,
		geo.NewResolver(locations),
	)
}

func TestServer_routes(t *testing.T) {
	srv := newTestServer(t)

	testCases := []struct {
		name   string
		method string
		path   string
		status int
	}{
		{name: "index page", method: http.MethodGet, path: "/", status: http.StatusOK},
		{name: "static asset", method: http.MethodGet, path: "/static/style.css", status: http.StatusOK},
		{name: "favorites api", method: http.MethodGet, path: "/api/favorites", status: http.StatusOK},
		{name: "location absent", method: http.MethodGet, path: "/api/location", status: http.StatusNoContent},
		{name: "unknown route", method: http.MethodGet, path: "/no/such/page", status: http.StatusNotFound},
		{name: "admin without credentials", method: http.MethodGet, path: "/admin/", status: http.StatusUnauthorized},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			srv.ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, nil))
			assert.Equal(t, tc.status, rec.Code)
		})
	}
}

func TestServer_adminWithCredentials(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/admin/", nil)
	req.SetBasicAuth("admin", "admin")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Stored records")
}
