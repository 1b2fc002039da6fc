package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mt2web/mt2web/internal/domain"
	"github.com/mt2web/mt2web/internal/event"
)

func TestEventMetricsCollector_RecordsGameEvents(t *testing.T) {
	bus := event.NewMemoryBus()
	NewEventMetricsCollector().Register(bus)
	ctx := context.Background()

	w := &domain.Work{ID: uuid.New(), CharacterID: uuid.New(), Kind: domain.WorkKindAttack, Type: domain.WorkType10m}

	created := testutil.ToFloat64(WorksCreated.WithLabelValues("attack", "10m"))
	completed := testutil.ToFloat64(WorksCompleted.WithLabelValues("attack", "victory"))
	levelUps := testutil.ToFloat64(LevelUps)
	deaths := testutil.ToFloat64(Deaths)

	require.NoError(t, bus.Publish(ctx, event.NewWorkCreatedEvent(w)))
	require.NoError(t, bus.Publish(ctx, event.NewWorkCompletedEvent(w, domain.CombatVictory)))
	require.NoError(t, bus.Publish(ctx, event.NewLevelUpEvent(w.CharacterID.String(), 3, 5)))
	require.NoError(t, bus.Publish(ctx, event.NewCharacterDiedEvent(w.CharacterID.String(), 2, 100)))

	assert.Equal(t, created+1, testutil.ToFloat64(WorksCreated.WithLabelValues("attack", "10m")))
	assert.Equal(t, completed+1, testutil.ToFloat64(WorksCompleted.WithLabelValues("attack", "victory")))
	assert.Equal(t, levelUps+2, testutil.ToFloat64(LevelUps))
	assert.Equal(t, deaths+1, testutil.ToFloat64(Deaths))
}

func TestEventMetricsCollector_IgnoresBadPayload(t *testing.T) {
	err := NewEventMetricsCollector().HandleEvent(context.Background(), event.Event{
		Type:    event.WorkCreated,
		Payload: "not a payload",
	})
	assert.NoError(t, err)
}

func TestMiddleware_UsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/characters/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/characters/{id}", "418"))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/characters/abc", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/characters/{id}", "418")))
}
