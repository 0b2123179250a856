package cardstore

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"
)

const defaultTimeout = 15 * time.Second

// Store caches a user's cards locally and reconciles the cache after
// every remote operation. All mutation of the collection goes through
// List, Create, Update and Delete; Cards hands out copies only.
type Store struct {
	baseURL string
	token   string
	httpc   *http.Client

	mu     sync.Mutex
	cards  []Card
	status Status
}

// Option configures a Store.
type Option func(*Store)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(s *Store) { s.httpc = c }
}

// WithTimeout sets the per-request timeout of the default client.
func WithTimeout(d time.Duration) Option {
	return func(s *Store) { s.httpc.Timeout = d }
}

// New creates a store for the given API base URL and bearer token.
func New(baseURL, token string, opts ...Option) *Store {
	s := &Store{
		baseURL: baseURL,
		token:   token,
		httpc:   &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Cards returns a copy of the cached collection in its current order.
func (s *Store) Cards() []Card {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Card, len(s.cards))
	copy(out, s.cards)
	return out
}

// Status returns the current request status flags.
func (s *Store) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Reset clears the status flags to neutral. The collection is untouched.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = Status{}
}

// List replaces the entire local collection with the server's.
func (s *Store) List(ctx context.Context) ([]Card, error) {
	s.begin()

	var cards []Card
	if err := s.do(ctx, http.MethodGet, "/api/cards", nil, &cards); err != nil {
		return nil, s.reject(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.cards = cards
	s.fulfillLocked()

	out := make([]Card, len(cards))
	copy(out, cards)
	return out, nil
}

// Create submits a draft and appends the server-returned card, now
// carrying its assigned id, to the local collection.
func (s *Store) Create(ctx context.Context, draft Draft) (Card, error) {
	s.begin()

	var created Card
	if err := s.do(ctx, http.MethodPost, "/api/cards", draft, &created); err != nil {
		return Card{}, s.reject(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.cards = append(s.cards, created)
	s.fulfillLocked()
	return created, nil
}

// Update sends a full replacement of a card's editable fields and, on
// success, swaps the matching local card for the server's version.
func (s *Store) Update(ctx context.Context, id string, draft Draft) (Card, error) {
	s.begin()

	var updated Card
	if err := s.do(ctx, http.MethodPut, "/api/cards/"+id, draft, &updated); err != nil {
		return Card{}, s.reject(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.cards {
		if s.cards[i].ID == updated.ID {
			s.cards[i] = updated
			break
		}
	}
	s.fulfillLocked()
	return updated, nil
}

// Delete removes the card whose id the server echoes back. Other cards
// are untouched.
func (s *Store) Delete(ctx context.Context, id string) (string, error) {
	s.begin()

	var ack struct {
		ID string `json:"id"`
	}
	if err := s.do(ctx, http.MethodDelete, "/api/cards/"+id, nil, &ack); err != nil {
		return "", s.reject(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.cards[:0]
	for _, c := range s.cards {
		if c.ID != ack.ID {
			kept = append(kept, c)
		}
	}
	s.cards = kept
	s.fulfillLocked()
	return ack.ID, nil
}

// VCard fetches the downloadable vCard text for a card. It does not
// touch the collection or the status flags.
func (s *Store) VCard(ctx context.Context, id string) (string, error) {
	return s.fetchText(ctx, "/api/cards/"+id+"/vcard")
}

// QRPayload fetches the QR-embeddable text for a card. It does not
// touch the collection or the status flags.
func (s *Store) QRPayload(ctx context.Context, id string) (string, error) {
	return s.fetchText(ctx, "/api/cards/"+id+"/qr")
}

func (s *Store) begin() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status.IsLoading = true
	s.status.IsError = false
	s.status.IsSuccess = false
}

// reject captures the failure message for the UI and returns the
// original error to the caller.
func (s *Store) reject(err error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status.IsLoading = false
	s.status.IsError = true
	s.status.Message = messageOf(err)
	return err
}

func (s *Store) fulfillLocked() {
	s.status.IsLoading = false
	s.status.IsError = false
	s.status.IsSuccess = true
}

// messageOf prefers the server-provided message over the transport
// error text.
func messageOf(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return err.Error()
}
