package intelligence

import (
	"context"
	"sync"
	"testing"

	"voyago/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type memContextStore struct {
	mu      sync.Mutex
	intents map[string]*models.TripIntent
}

func newMemContextStore() *memContextStore {
	return &memContextStore{intents: make(map[string]*models.TripIntent)}
}

func (s *memContextStore) Get(ctx context.Context, travelerID string) (*models.TripIntent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.intents[travelerID], nil
}

func (s *memContextStore) Set(ctx context.Context, travelerID string, intent *models.TripIntent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.intents[travelerID] = intent
	return nil
}

func (s *memContextStore) Clear(ctx context.Context, travelerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.intents, travelerID)
	return nil
}

func TestKeywordIntentFlight(t *testing.T) {
	intent := keywordIntent("Book a flight to Paris on 2026-10-01")
	require.NotNil(t, intent)
	assert.Equal(t, models.VerticalFlight, intent.Vertical)
	assert.Equal(t, "Paris", intent.Params["destination"])
	assert.Equal(t, "2026-10-01", intent.Params["date"])
}

func TestKeywordIntentHotelDateRange(t *testing.T) {
	intent := keywordIntent("I need a hotel stay in Rome from 2026-10-01 until 2026-10-04")
	require.NotNil(t, intent)
	assert.Equal(t, models.VerticalHotel, intent.Vertical)
	assert.Equal(t, "2026-10-01", intent.Params["date"])
	assert.Equal(t, "2026-10-04", intent.Params["dateTo"])
}

func TestKeywordIntentCarRental(t *testing.T) {
	intent := keywordIntent("rental car please")
	require.NotNil(t, intent)
	assert.Equal(t, models.VerticalCar, intent.Vertical)
}

func TestKeywordIntentUnrecognized(t *testing.T) {
	assert.Nil(t, keywordIntent("what is the meaning of life"))
}

func TestParseIntentReply(t *testing.T) {
	reply := "Sure, here you go:\n```json\n{\"service\": \"tour\", \"parameters\": {\"destination\": \"Rome\", \"guests\": \"4\"}}\n```"
	intent := parseIntentReply(reply)
	require.NotNil(t, intent)
	assert.Equal(t, models.VerticalTour, intent.Vertical)
	assert.Equal(t, "Rome", intent.Params["destination"])
	assert.Equal(t, "4", intent.Params["guests"])
}

func TestParseIntentReplyRejectsUnknownService(t *testing.T) {
	assert.Nil(t, parseIntentReply(`{"service": "spaceship", "parameters": {}}`))
	assert.Nil(t, parseIntentReply("no json here"))
}

// Without a model client, resolution falls back to keywords. Every
// resolution mints a fresh context identity.
func TestResolveIntentFallbackMintsDistinctContexts(t *testing.T) {
	store := newMemContextStore()
	svc := NewDefaultIntentService(nil, store, zap.NewNop())
	ctx := context.Background()

	first, err := svc.ResolveIntent(ctx, "trav-1", "book a flight to Oslo")
	require.NoError(t, err)
	require.NotEmpty(t, first.ContextID)

	second, err := svc.ResolveIntent(ctx, "trav-1", "book a flight to Oslo")
	require.NoError(t, err)
	assert.NotEqual(t, first.ContextID, second.ContextID)

	stored, err := store.Get(ctx, "trav-1")
	require.NoError(t, err)
	assert.Equal(t, second.ContextID, stored.ContextID)
}

func TestResolveIntentUnresolvable(t *testing.T) {
	svc := NewDefaultIntentService(nil, newMemContextStore(), zap.NewNop())
	_, err := svc.ResolveIntent(context.Background(), "trav-1", "gibberish")
	assert.Error(t, err)
}
