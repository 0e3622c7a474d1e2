package intelligence

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"voyago/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ContextStore persists the last resolved intent per traveler.
type ContextStore interface {
	Get(ctx context.Context, travelerID string) (*models.TripIntent, error)
	Set(ctx context.Context, travelerID string, intent *models.TripIntent) error
	Clear(ctx context.Context, travelerID string) error
}

// IntentService turns free-form text into a structured TripIntent that
// can seed a booking session. Each resolution is one navigation event and
// mints a fresh context identity.
type IntentService interface {
	ResolveIntent(ctx context.Context, travelerID, text string) (*models.TripIntent, error)
}

// DefaultIntentService resolves intents with Gemini when a client is
// configured and falls back to keyword matching otherwise.
type DefaultIntentService struct {
	Client *GeminiClient
	Store  ContextStore
	Logger *zap.Logger
}

func NewDefaultIntentService(client *GeminiClient, store ContextStore, logger *zap.Logger) *DefaultIntentService {
	return &DefaultIntentService{Client: client, Store: store, Logger: logger}
}

const intentPrompt = `Extract the travel booking request from the message below.
Reply with only a JSON object of the form
{"service": "flight|tour|hotel|car", "parameters": {"origin": "...", "destination": "...", "date": "YYYY-MM-DD", "dateTo": "YYYY-MM-DD", "guests": "N"}}.
Omit parameters the message does not mention.

Message: %s`

func (s *DefaultIntentService) ResolveIntent(ctx context.Context, travelerID, text string) (*models.TripIntent, error) {
	var intent *models.TripIntent

	if s.Client != nil {
		reply, err := s.Client.GenerateContent(ctx, fmt.Sprintf(intentPrompt, text))
		if err == nil {
			intent = parseIntentReply(reply)
		} else {
			s.Logger.Warn("intent model call failed, falling back to keywords", zap.Error(err))
		}
	}
	if intent == nil {
		intent = keywordIntent(text)
	}
	if intent == nil {
		return nil, fmt.Errorf("could not resolve a booking intent from %q", text)
	}

	intent.ContextID = uuid.New().String()
	if err := s.Store.Set(ctx, travelerID, intent); err != nil {
		return nil, fmt.Errorf("failed to save intent context: %w", err)
	}

	s.Logger.Info("intent resolved",
		zap.String("traveler", travelerID),
		zap.String("vertical", string(intent.Vertical)),
		zap.String("context", intent.ContextID),
	)
	return intent, nil
}

// parseIntentReply extracts the JSON object from a model reply.
func parseIntentReply(reply string) *models.TripIntent {
	start := strings.Index(reply, "{")
	end := strings.LastIndex(reply, "}")
	if start < 0 || end <= start {
		return nil
	}

	var parsed struct {
		Service    string            `json:"service"`
		Parameters map[string]string `json:"parameters"`
	}
	if err := json.Unmarshal([]byte(reply[start:end+1]), &parsed); err != nil {
		return nil
	}
	vertical := models.Vertical(parsed.Service)
	if !vertical.Valid() {
		return nil
	}
	return &models.TripIntent{Vertical: vertical, Params: parsed.Parameters}
}

var dateRe = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)

// keywordIntent is the no-model fallback: vertical by keyword, plus any
// date and "to <place>" destination it can spot.
func keywordIntent(text string) *models.TripIntent {
	lower := strings.ToLower(text)

	var vertical models.Vertical
	switch {
	case strings.Contains(lower, "flight") || strings.Contains(lower, "fly"):
		vertical = models.VerticalFlight
	case strings.Contains(lower, "tour"):
		vertical = models.VerticalTour
	case strings.Contains(lower, "hotel") || strings.Contains(lower, "stay"):
		vertical = models.VerticalHotel
	case strings.Contains(lower, "car") || strings.Contains(lower, "rental"):
		vertical = models.VerticalCar
	default:
		return nil
	}

	params := map[string]string{}
	if dates := dateRe.FindAllString(text, 2); len(dates) > 0 {
		params["date"] = dates[0]
		if len(dates) > 1 {
			params["dateTo"] = dates[1]
		}
	}
	if _, after, found := strings.Cut(lower, " to "); found {
		dest := strings.TrimSpace(strings.SplitN(after, " on ", 2)[0])
		if dest != "" {
			params["destination"] = strings.Title(dest)
		}
	}

	return &models.TripIntent{Vertical: vertical, Params: params}
}
