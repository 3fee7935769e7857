package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/pageza/recipefinder/backend/config"
	"github.com/pageza/recipefinder/backend/internal/database"
	"github.com/pageza/recipefinder/backend/internal/mealdb"
)

const brownStewChicken = `{"idMeal":"52940","strMeal":"Brown Stew Chicken","strArea":"Jamaican",` +
	`"strMealThumb":"https://img/52940.jpg","strInstructions":"Squeeze lime over chicken and rub well.",` +
	`"strIngredient1":"Chicken","strMeasure1":"1 whole","strIngredient2":"Tomato","strMeasure2":"1 chopped",` +
	`"strIngredient3":"","strMeasure3":""}`

func fakeMealDB(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.URL.Path == "/search.php" && (r.URL.Query().Get("s") == "chicken" || r.URL.Query().Get("s") == "rice"):
			_, _ = w.Write([]byte(`{"meals":[` + brownStewChicken + `]}`))
		case r.URL.Path == "/lookup.php" && r.URL.Query().Get("i") == "52940":
			_, _ = w.Write([]byte(`{"meals":[` + brownStewChicken + `]}`))
		default:
			_, _ = w.Write([]byte(`{"meals":null}`))
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	log := zaptest.NewLogger(t)
	mealDB := fakeMealDB(t)

	cfg := &config.Config{
		Environment:        config.Test,
		ServerHost:         "127.0.0.1",
		ServerPort:         "0",
		CORSAllowedOrigins: []string{"http://localhost:5173"},
		StoragePath:        filepath.Join(t.TempDir(), "data", "recipefinder.db"),
		MealDBBaseURL:      mealDB.URL,
		MealDBTimeout:      time.Second,
		SearchRateLimit:    60,
	}

	db, err := database.New(cfg, log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	require.NoError(t, database.RunMigrations(db, log))

	return New(cfg, Dependencies{
		DB:     db,
		Lookup: mealdb.NewClient(cfg.MealDBBaseURL, cfg.MealDBTimeout, log),
	}, log)
}

func call(t *testing.T, s *Server, method, path, body string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	var out map[string]any
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	}
	return w.Code, out
}

func TestServerEndToEnd(t *testing.T) {
	s := newTestServer(t)

	status, body := call(t, s, http.MethodGet, "/api/v1/health", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "healthy", body["status"])

	status, body = call(t, s, http.MethodGet, "/api/v1/search/ingredients?i=chicken&i=rice&i=+", "")
	require.Equal(t, http.StatusOK, status)
	recipes := body["recipes"].([]any)
	require.Len(t, recipes, 1)
	first := recipes[0].(map[string]any)
	assert.Equal(t, "52940", first["id"])
	assert.Equal(t, []any{"chicken", "rice"}, first["matchedIngredients"])
	assert.Equal(t, float64(2), first["usedIngredientCount"])

	status, _ = call(t, s, http.MethodGet, "/api/v1/search/ingredients?i=xyzzynotfood", "")
	assert.Equal(t, http.StatusNotFound, status)

	status, body = call(t, s, http.MethodGet, "/api/v1/recipes/52940", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, false, body["saved"])

	status, body = call(t, s, http.MethodPost, "/api/v1/my-recipes/52940", "")
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, []any{"Jamaican"}, body["recipe"].(map[string]any)["cuisines"])

	status, body = call(t, s, http.MethodGet, "/api/v1/recipes/52940", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["saved"])

	status, body = call(t, s, http.MethodPost, "/api/v1/shopping-list/recipes/52940", "")
	require.Equal(t, http.StatusCreated, status)
	assert.Len(t, body["items"], 2)

	status, body = call(t, s, http.MethodGet, "/api/v1/shopping-list", "")
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, body["unchecked"], 2)

	status, _ = call(t, s, http.MethodGet, "/api/v1/nothing-here", "")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestServerStartAndShutdown(t *testing.T) {
	s := newTestServer(t)

	errCh := make(chan error, 1)
	go func() { errCh <- s.Start() }()

	// Give ListenAndServe a moment to bind before shutting down
	time.Sleep(50 * time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, s.Shutdown(ctx))
	require.NoError(t, <-errCh)
}
