package handlers

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gitchest/gitchest/internal/assets"
	"github.com/gitchest/gitchest/internal/models"
	"github.com/gitchest/gitchest/internal/repositories"
	"github.com/gitchest/gitchest/internal/services"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGitHubFetcher struct {
	profile *models.GitHubUser
	err     error
}

func (s *stubGitHubFetcher) FetchUser(ctx context.Context, login string) (*models.GitHubUser, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.profile, nil
}

func newTestRouter(t *testing.T, github *stubGitHubFetcher) (*gin.Engine, *sql.DB) {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	// An in-memory database exists per connection; keep the pool at one.
	db.SetMaxOpenConns(1)

	schema := `
		CREATE TABLE user (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			platform TEXT NOT NULL,
			user TEXT NOT NULL,
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		);
		CREATE TABLE user_avatar (
			user_id INTEGER PRIMARY KEY REFERENCES user(id),
			ext TEXT
		);
	`
	_, err = db.Exec(schema)
	require.NoError(t, err)

	userRepo := repositories.NewUserRepository(db)
	avatarRepo := repositories.NewUserAvatarRepository(db)
	userService := services.NewUserService(userRepo, avatarRepo, assets.NewResolver(t.TempDir()), github)
	exportService := services.NewExportService(userRepo)
	userHandler := NewUserHandler(userService, exportService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/users/:id", userHandler.GetFullUser)
	router.POST("/users", userHandler.AddUser)
	router.GET("/users/exists", userHandler.Exists)
	router.DELETE("/users/:id", userHandler.RemoveUser)
	router.GET("/users/export", userHandler.ExportUsers)

	return router, db
}

func TestUserLifecycleOverHTTP(t *testing.T) {
	github := &stubGitHubFetcher{profile: &models.GitHubUser{Login: "octocat", ID: 583231}}
	router, _ := newTestRouter(t, github)

	// Register
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/users", strings.NewReader(`{"user": "octocat", "platform": "github"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		ID int64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotZero(t, created.ID)

	// Duplicate registration conflicts
	w = httptest.NewRecorder()
	req, _ = http.NewRequest("POST", "/users", strings.NewReader(`{"user": "octocat", "platform": "github"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusConflict, w.Code)

	// Exists probe
	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/users/exists?user=octocat", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"exists":true`)

	// Full view
	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/users/1", nil)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var view map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	assert.Equal(t, "octocat", view["user"])
	platformUser, ok := view["platform_user"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "GitHub", platformUser["type"])

	// Remove, then the view is gone
	w = httptest.NewRecorder()
	req, _ = http.NewRequest("DELETE", "/users/1", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/users/1", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetFullUserErrorStatuses(t *testing.T) {
	t.Run("Unknown id is 404", func(t *testing.T) {
		router, _ := newTestRouter(t, &stubGitHubFetcher{})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/users/999", nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Non-numeric id is 400", func(t *testing.T) {
		router, _ := newTestRouter(t, &stubGitHubFetcher{})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/users/abc", nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Corrupted platform tag is 500", func(t *testing.T) {
		router, db := newTestRouter(t, &stubGitHubFetcher{})
		_, err := db.Exec(
			`INSERT INTO user (id, platform, user, created_at, updated_at) VALUES (9, 'bogus', 'x', '', '')`)
		require.NoError(t, err)
		_, err = db.Exec(`INSERT INTO user_avatar (user_id, ext) VALUES (9, NULL)`)
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/users/9", nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("Unsupported platform on create is 500", func(t *testing.T) {
		router, _ := newTestRouter(t, &stubGitHubFetcher{})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/users", strings.NewReader(`{"user": "x", "platform": "svn"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestExportUsersEndpoint(t *testing.T) {
	router, db := newTestRouter(t, &stubGitHubFetcher{})
	_, err := db.Exec(
		`INSERT INTO user (platform, user, created_at, updated_at) VALUES ('github', 'octocat', '', '')`)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/users/export", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "spreadsheetml")
	assert.NotZero(t, w.Body.Len())
}
