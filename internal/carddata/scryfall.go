package carddata

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/magefree/goldfish/internal/card"
	"go.uber.org/zap"
)

// DefaultScryfallBaseURL is the public Scryfall API endpoint.
const DefaultScryfallBaseURL = "https://api.scryfall.com"

// ScryfallResolver resolves card names against the Scryfall named-card
// endpoint and classifies the returned type line.
type ScryfallResolver struct {
	httpClient *http.Client
	baseURL    string
	logger     *zap.Logger
}

// NewScryfallResolver creates a Scryfall-backed resolver. An empty baseURL
// falls back to the public API; timeout bounds each lookup.
func NewScryfallResolver(baseURL string, timeout time.Duration, logger *zap.Logger) *ScryfallResolver {
	if baseURL == "" {
		baseURL = DefaultScryfallBaseURL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScryfallResolver{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		logger:     logger,
	}
}

// namedCardResponse is the subset of the Scryfall card object we read.
type namedCardResponse struct {
	Name     string `json:"name"`
	TypeLine string `json:"type_line"`
}

// Resolve looks the card up by exact name.
func (r *ScryfallResolver) Resolve(ctx context.Context, name string) (card.Card, error) {
	u := fmt.Sprintf("%s/cards/named?exact=%s", r.baseURL, url.QueryEscape(name))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return card.Card{}, fmt.Errorf("build scryfall request: %w", err)
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return card.Card{}, fmt.Errorf("scryfall lookup for `%s`: %w", name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return card.Card{}, fmt.Errorf("%w: scryfall has no card named `%s`", ErrCardNotFound, name)
	}
	if resp.StatusCode != http.StatusOK {
		return card.Card{}, fmt.Errorf("scryfall lookup for `%s`: unexpected status %d", name, resp.StatusCode)
	}

	var body namedCardResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return card.Card{}, fmt.Errorf("decode scryfall response for `%s`: %w", name, err)
	}

	c := card.New(body.Name, TypesFromTypeLine(body.TypeLine)...)

	r.logger.Debug("card resolved via scryfall",
		zap.String("name", c.Name),
		zap.String("type_line", body.TypeLine),
	)

	return c, nil
}
