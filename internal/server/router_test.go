package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mt2web/mt2web/internal/auth"
	"github.com/mt2web/mt2web/internal/character"
	"github.com/mt2web/mt2web/internal/domain"
	"github.com/mt2web/mt2web/internal/feed"
	"github.com/mt2web/mt2web/mocks"
)

const testAPIKey = "router-test-key"

type routerFixture struct {
	handler    http.Handler
	characters *mocks.MockCharacterService
	works      *mocks.MockWorkService
	reports    *mocks.MockReportService
	mobs       *mocks.MockMobCatalog
	tokens     *auth.Verifier
}

func newRouterFixture(t *testing.T) *routerFixture {
	t.Helper()

	verifier, err := auth.NewVerifier(auth.Config{Secret: []byte("router-test-secret")})
	require.NoError(t, err)

	hub := feed.NewHub()
	hub.Start()
	t.Cleanup(hub.Stop)

	f := &routerFixture{
		characters: mocks.NewMockCharacterService(t),
		works:      mocks.NewMockWorkService(t),
		reports:    mocks.NewMockReportService(t),
		mobs:       mocks.NewMockMobCatalog(t),
		tokens:     verifier,
	}
	f.handler = NewRouter(Config{APIKey: testAPIKey, MaxBodyBytes: DefaultMaxBodyBytes}, Dependencies{
		Characters:     f.characters,
		Works:          f.works,
		Reports:        f.reports,
		Mobs:           f.mobs,
		CatalogVersion: "test",
		FeedHub:        hub,
		FeedWebSocket:  feed.NewWebSocket(hub, nil),
		Tokens:         verifier,
	})
	return f
}

func (f *routerFixture) token(t *testing.T, characterID uuid.UUID) string {
	t.Helper()
	tok, err := f.tokens.Issue(characterID, time.Hour)
	require.NoError(t, err)
	return tok
}

func (f *routerFixture) do(method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	return rec
}

func bearer(token string) map[string]string {
	return map[string]string{HeaderAuthorization: BearerPrefix + token}
}

func TestRouter_Unversioned(t *testing.T) {
	f := newRouterFixture(t)

	assert.Equal(t, http.StatusOK, f.do(http.MethodGet, "/healthz", "", nil).Code)
	assert.Equal(t, http.StatusOK, f.do(http.MethodGet, "/version", "", nil).Code)
	// No pool configured
	assert.Equal(t, http.StatusNotFound, f.do(http.MethodGet, "/readyz", "", nil).Code)
}

func TestRouter_SecurityHeaders(t *testing.T) {
	f := newRouterFixture(t)

	rec := f.do(http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, HeaderValueNoSniff, rec.Header().Get(HeaderContentType))
	assert.Equal(t, HeaderValueSameOrigin, rec.Header().Get(HeaderFrameOptions))
}

func TestRouter_PublicCharacterRead(t *testing.T) {
	f := newRouterFixture(t)
	id := uuid.New()
	f.characters.On("Get", mock.Anything, id).Return(&domain.Character{ID: id, Name: "Hero"}, nil)

	rec := f.do(http.MethodGet, "/api/v1/characters/"+id.String(), "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Hero")
}

func TestRouter_WorksOwnership(t *testing.T) {
	f := newRouterFixture(t)
	hero := uuid.New()
	villain := uuid.New()
	path := "/api/v1/characters/" + hero.String() + "/works"

	t.Run("No Token", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, f.do(http.MethodGet, path, "", nil).Code)
	})

	t.Run("Garbage Token", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, f.do(http.MethodGet, path, "", bearer("not-a-jwt")).Code)
	})

	t.Run("Other Character's Token", func(t *testing.T) {
		rec := f.do(http.MethodGet, path, "", bearer(f.token(t, villain)))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("Own Token", func(t *testing.T) {
		f.works.On("ListWorks", mock.Anything, hero).Return([]domain.Work{}, nil).Once()

		rec := f.do(http.MethodGet, path, "", bearer(f.token(t, hero)))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"count":0`)
	})

	t.Run("API Key", func(t *testing.T) {
		f.works.On("ListWorks", mock.Anything, hero).Return([]domain.Work{}, nil).Once()

		rec := f.do(http.MethodGet, path, "", map[string]string{HeaderAPIKey: testAPIKey})

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestRouter_BankRequiresOwner(t *testing.T) {
	f := newRouterFixture(t)
	hero := uuid.New()
	path := "/api/v1/characters/" + hero.String() + "/bank/deposit"

	rec := f.do(http.MethodPost, path, `{"amount":10}`, bearer(f.token(t, uuid.New())))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	f.characters.On("Deposit", mock.Anything, hero, int64(10)).
		Return(&domain.Character{ID: hero, Money: domain.Money{Bank: 10}}, nil).Once()

	rec = f.do(http.MethodPost, path, `{"amount":10}`, bearer(f.token(t, hero)))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_CreateCharacterNeedsAPIKey(t *testing.T) {
	f := newRouterFixture(t)
	body := `{"name":"Hero"}`

	rec := f.do(http.MethodPost, "/api/v1/characters", body, bearer(f.token(t, uuid.New())))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	f.characters.On("Create", mock.Anything, "Hero").Return(&domain.Character{ID: uuid.New(), Name: "Hero"}, nil).Once()

	rec = f.do(http.MethodPost, "/api/v1/characters", body, map[string]string{HeaderAPIKey: testAPIKey})
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestRouter_AdminRoutes(t *testing.T) {
	f := newRouterFixture(t)
	hero := uuid.New()

	tests := []struct {
		name   string
		method string
		path   string
	}{
		{"Get Work", http.MethodGet, "/api/v1/admin/works/" + uuid.NewString()},
		{"Patch Work", http.MethodPatch, "/api/v1/admin/works/" + uuid.NewString()},
		{"Delete Character", http.MethodDelete, "/api/v1/admin/characters/" + hero.String()},
		{"Cache Stats", http.MethodGet, "/api/v1/admin/cache/stats"},
		{"Feed Stats", http.MethodGet, "/api/v1/admin/feed/stats"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// A player token is never enough, even for the player's own character
			rec := f.do(tt.method, tt.path, "", bearer(f.token(t, hero)))
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}

	t.Run("Stats With Key", func(t *testing.T) {
		f.characters.On("GetCacheStats").Return(character.CacheStats{Hits: 1}).Once()

		rec := f.do(http.MethodGet, "/api/v1/admin/cache/stats", "", map[string]string{HeaderAPIKey: testAPIKey})
		assert.Equal(t, http.StatusOK, rec.Code)

		rec = f.do(http.MethodGet, "/api/v1/admin/feed/stats", "", map[string]string{HeaderAPIKey: testAPIKey})
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestRouter_FeedQueryToken(t *testing.T) {
	f := newRouterFixture(t)
	hero := uuid.New()
	path := "/api/v1/characters/" + hero.String() + "/feed"

	rec := f.do(http.MethodGet, path, "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = f.do(http.MethodGet, path+"?access_token="+f.token(t, uuid.New()), "", nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRouter_QueryTokenNotAcceptedOutsideFeed(t *testing.T) {
	f := newRouterFixture(t)
	hero := uuid.New()

	rec := f.do(http.MethodGet, "/api/v1/characters/"+hero.String()+"/works?access_token="+f.token(t, hero), "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
