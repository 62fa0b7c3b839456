package deck

import (
	"context"
	"sync"

	"github.com/DedS3t/drinkopoly-backend/app/models"
)

// Store persists the card library between sessions.
type Store interface {
	LoadChanceCards(ctx context.Context) ([]models.Card, error)
	LoadMiniGameCards(ctx context.Context) ([]models.Card, error)
	SaveChanceCards(ctx context.Context, cards []models.Card) error
	SaveMiniGameCards(ctx context.Context, cards []models.Card) error
	ResetToDefaults(ctx context.Context) error
}

type memory struct {
	mu       sync.RWMutex
	chance   []models.Card // nil until saved, defaults are served instead
	miniGame []models.Card
}

// NewMemoryStore keeps the library in process; it is lost on restart.
func NewMemoryStore() Store {
	return &memory{}
}

func (m *memory) LoadChanceCards(ctx context.Context) ([]models.Card, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.chance == nil {
		return DefaultChanceCards(), nil
	}
	return append([]models.Card(nil), m.chance...), nil
}

func (m *memory) LoadMiniGameCards(ctx context.Context) ([]models.Card, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.miniGame == nil {
		return DefaultMiniGameCards(), nil
	}
	return append([]models.Card(nil), m.miniGame...), nil
}

func (m *memory) SaveChanceCards(ctx context.Context, cards []models.Card) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.chance = append(make([]models.Card, 0, len(cards)), cards...)
	return nil
}

func (m *memory) SaveMiniGameCards(ctx context.Context, cards []models.Card) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.miniGame = append(make([]models.Card, 0, len(cards)), cards...)
	return nil
}

func (m *memory) ResetToDefaults(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.chance = nil
	m.miniGame = nil
	return nil
}

// LoadLibrary reads both collections.
func LoadLibrary(ctx context.Context, store Store) ([]models.Card, []models.Card, error) {
	chance, err := store.LoadChanceCards(ctx)
	if err != nil {
		return nil, nil, err
	}
	miniGame, err := store.LoadMiniGameCards(ctx)
	if err != nil {
		return nil, nil, err
	}
	return chance, miniGame, nil
}

// SaveLibrary writes the collection matching cardType.
func SaveLibrary(ctx context.Context, store Store, cardType models.CardType, cards []models.Card) error {
	if cardType == models.CardMiniGame {
		return store.SaveMiniGameCards(ctx, cards)
	}
	return store.SaveChanceCards(ctx, cards)
}
