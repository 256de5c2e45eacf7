package integration

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"little-lemon/internal/handler"
	"little-lemon/internal/model"
	"little-lemon/internal/repository"
	"little-lemon/internal/router"
	"little-lemon/internal/seed"
	"little-lemon/internal/service"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAPIKey = "integration-test-key"

const menuPayload = `{
	"menu": [
		{"name": "Greek Salad", "price": 12.99, "description": "Crispy lettuce, peppers, olives", "image": "greekSalad.jpg", "category": "starters"},
		{"name": "Bruschetta", "price": 7.99, "description": "Grilled bread with tomatoes", "image": "bruschetta.jpg", "category": "starters"},
		{"name": "Grilled Fish", "price": 20, "description": "Barbequed catch of the day", "image": "grilledFish.jpg", "category": "mains"},
		{"name": "Pasta", "price": 6.99, "description": "Penne with fried aubergines", "image": "pasta.jpg", "category": "mains"},
		{"name": "Lemon Dessert", "price": 4.99, "description": "Traditional homemade Italian Lemon dessert", "image": "lemonDessert.jpg", "category": "desserts"}
	]
}`

// menuSourceServer serves the seed payload and counts how often it is hit.
func menuSourceServer(t *testing.T) (*httptest.Server, *int) {
	t.Helper()

	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(menuPayload))
	}))
	t.Cleanup(server.Close)

	return server, &calls
}

// setupTestServer wires the full stack against the test database and a stub
// remote menu source, seeding the cache once.
func setupTestServer(t *testing.T, testDB *TestDB, sourceURL string) http.Handler {
	t.Helper()

	logger := zerolog.Nop()
	ctx := context.Background()

	menuRepo := repository.NewMenuRepository(testDB.Pool, logger)
	profileRepo := repository.NewProfileRepository(testDB.Pool, logger)
	require.NoError(t, profileRepo.EnsureSchema(ctx))

	source := seed.NewHTTPSource(sourceURL, 5*time.Second, logger)
	require.NoError(t, seed.NewSeeder(menuRepo, source, logger).Run(ctx))

	menuService := service.NewMenuService(menuRepo, logger)
	profileService := service.NewProfileService(profileRepo, logger)

	menuHandler := handler.NewMenuHandler(menuService, "https://images.example.com/", logger)
	profileHandler := handler.NewProfileHandler(profileService, logger)

	return router.New(menuHandler, profileHandler, testAPIKey, logger)
}

func doRequest(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("X-API-Key", testAPIKey)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestAPI_MenuLifecycle(t *testing.T) {
	testDB := SetupTestDB(t)
	defer testDB.Teardown(t)

	source, calls := menuSourceServer(t)
	h := setupTestServer(t, testDB, source.URL)

	t.Run("Seeding happened exactly once", func(t *testing.T) {
		assert.Equal(t, 1, *calls)

		// A second seeder run against the same store must not refetch.
		menuRepo := repository.NewMenuRepository(testDB.Pool, zerolog.Nop())
		src := seed.NewHTTPSource(source.URL, 5*time.Second, zerolog.Nop())
		require.NoError(t, seed.NewSeeder(menuRepo, src, zerolog.Nop()).Run(context.Background()))
		assert.Equal(t, 1, *calls)
	})

	t.Run("Unfiltered menu returns all sections", func(t *testing.T) {
		rec := doRequest(t, h, http.MethodGet, "/api/menu", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var sections []model.MenuSection
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sections))

		require.Len(t, sections, 3)
		assert.Equal(t, "starters", sections[0].Name)
		assert.Equal(t, "mains", sections[1].Name)
		assert.Equal(t, "desserts", sections[2].Name)
		assert.Len(t, sections[0].Data, 2)
		assert.Equal(t, "12.99", sections[0].Data[0].Price)
	})

	t.Run("Search is a case-insensitive substring match", func(t *testing.T) {
		rec := doRequest(t, h, http.MethodGet, "/api/menu?q=LEMON", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var sections []model.MenuSection
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sections))

		require.Len(t, sections, 1)
		assert.Equal(t, "desserts", sections[0].Name)
		require.Len(t, sections[0].Data, 1)
		assert.Equal(t, "Lemon Dessert", sections[0].Data[0].Name)
	})

	t.Run("Category filter narrows the result", func(t *testing.T) {
		rec := doRequest(t, h, http.MethodGet, "/api/menu?categories=mains", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var sections []model.MenuSection
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sections))

		require.Len(t, sections, 1)
		assert.Equal(t, "mains", sections[0].Name)
		assert.Len(t, sections[0].Data, 2)
	})

	t.Run("Query and category combine", func(t *testing.T) {
		rec := doRequest(t, h, http.MethodGet, "/api/menu?q=fish&categories=starters", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var sections []model.MenuSection
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sections))
		assert.Empty(t, sections)
	})

	t.Run("Categories endpoint exposes vocabulary and image base", func(t *testing.T) {
		rec := doRequest(t, h, http.MethodGet, "/api/categories", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp handler.CategoriesResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, []string{"starters", "mains", "desserts", "drinks"}, resp.Categories)
		assert.Equal(t, "https://images.example.com/", resp.ImageBaseURL)
	})

	t.Run("Requests without API key are rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/menu", nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		require.Equal(t, http.StatusUnauthorized, rec.Code)

		var errResp model.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
		assert.Equal(t, model.ErrCodeUnauthorised, errResp.Error)
	})

	t.Run("Responses carry a request id", func(t *testing.T) {
		rec := doRequest(t, h, http.MethodGet, "/api/menu", "")
		assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	})
}

func TestAPI_ProfileLifecycle(t *testing.T) {
	testDB := SetupTestDB(t)
	defer testDB.Teardown(t)

	source, _ := menuSourceServer(t)
	h := setupTestServer(t, testDB, source.URL)

	t.Run("Get before save returns 404 with coded body", func(t *testing.T) {
		rec := doRequest(t, h, http.MethodGet, "/api/profile", "")
		require.Equal(t, http.StatusNotFound, rec.Code)

		var errResp model.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
		assert.Equal(t, model.ErrCodeProfileNotFound, errResp.Error)
		assert.Equal(t, rec.Header().Get("X-Request-ID"), errResp.CorrelationID)
	})

	t.Run("Save and read back", func(t *testing.T) {
		body := `{"firstName": "Tilly", "lastName": "Doe", "email": "tilly@example.com", "newsletter": true}`
		rec := doRequest(t, h, http.MethodPut, "/api/profile", body)
		require.Equal(t, http.StatusOK, rec.Code)

		rec = doRequest(t, h, http.MethodGet, "/api/profile", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var profile model.Profile
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &profile))
		assert.Equal(t, "Tilly", profile.FirstName)
		assert.True(t, profile.Newsletter)
	})

	t.Run("Invalid profile is rejected", func(t *testing.T) {
		rec := doRequest(t, h, http.MethodPut, "/api/profile", `{"email": "tilly@example.com"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
