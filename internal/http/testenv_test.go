package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/paperread/internal/database"
	"github.com/mrlokans/paperread/internal/database/annotations"
	"github.com/mrlokans/paperread/internal/database/articles"
	"github.com/mrlokans/paperread/internal/database/favourites"
	"github.com/mrlokans/paperread/internal/database/history"
	"github.com/mrlokans/paperread/internal/entities"
	"github.com/mrlokans/paperread/internal/pagination"
	"github.com/mrlokans/paperread/internal/services"
)

// testEnv bundles a throwaway database with every repository and service the
// controllers need.
type testEnv struct {
	db          *database.Database
	articles    *articles.Repository
	history     *history.Repository
	annotations *annotations.Repository
	favourites  *favourites.Repository
	reader      *services.ReaderService
	rebuilder   *services.ParagraphService
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dbPath := "./test_http_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
	db, err := database.NewQuietDatabase(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() {
		db.Close()
		os.Remove(dbPath)
	})

	cache, err := pagination.NewCache(16)
	require.NoError(t, err)

	articleRepo := articles.NewRepository(db.DB)
	return &testEnv{
		db:          db,
		articles:    articleRepo,
		history:     history.NewRepository(db.DB),
		annotations: annotations.NewRepository(db.DB),
		favourites:  favourites.NewRepository(db.DB),
		reader:      services.NewReaderService(articleRepo, cache, pagination.DefaultPolicy),
		rebuilder:   services.NewParagraphService(articleRepo, cache),
	}
}

func (e *testEnv) routerConfig() RouterConfig {
	return RouterConfig{
		Database:    e.db,
		Articles:    e.articles,
		Reader:      e.reader,
		History:     e.history,
		Annotations: e.annotations,
		Favourites:  e.favourites,
		Rebuilder:   e.rebuilder,
		Version:     "test",
	}
}

func (e *testEnv) router() *gin.Engine {
	return NewRouter(e.routerConfig())
}

// createArticle stores an article whose content has the given paragraphs.
func (e *testEnv) createArticle(t *testing.T, title string, paragraphs ...string) *entities.Article {
	t.Helper()
	article := &entities.Article{
		Title:   title,
		Content: strings.Join(paragraphs, "\n\n"),
	}
	require.NoError(t, e.articles.CreateArticle(article))
	return article
}

// doRequest sends a request as the given reader and returns the recorder.
func doRequest(router http.Handler, method, path string, body any, username string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if username != "" {
		req.Header.Set(UsernameHeader, username)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v), w.Body.String())
}
