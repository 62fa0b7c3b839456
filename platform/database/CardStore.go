package database

import (
	"context"

	"github.com/DedS3t/drinkopoly-backend/app/models"
	"github.com/DedS3t/drinkopoly-backend/platform/deck"
	"github.com/go-pg/pg/v10"
)

// CardStore keeps the card library in Postgres. A type with no rows is
// served from the defaults.
type CardStore struct {
	db *pg.DB
}

func NewCardStore(db *pg.DB) *CardStore {
	return &CardStore{db: db}
}

func (s *CardStore) load(ctx context.Context, cardType models.CardType) ([]models.Card, error) {
	var rows []cardRow
	err := s.db.ModelContext(ctx, &rows).Where("type = ?", string(cardType)).Order("id ASC").Select()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		if cardType == models.CardMiniGame {
			return deck.DefaultMiniGameCards(), nil
		}
		return deck.DefaultChanceCards(), nil
	}
	return toCards(rows), nil
}

func (s *CardStore) save(ctx context.Context, cardType models.CardType, cards []models.Card) error {
	return s.db.RunInTransaction(ctx, func(tx *pg.Tx) error {
		if _, err := tx.ModelContext(ctx, (*cardRow)(nil)).Where("type = ?", string(cardType)).Delete(); err != nil {
			return err
		}
		if len(cards) == 0 {
			return nil
		}
		rows := make([]cardRow, len(cards))
		for i, card := range cards {
			card.Type = cardType
			rows[i] = toRow(card)
		}
		_, err := tx.ModelContext(ctx, &rows).Insert()
		return err
	})
}

func (s *CardStore) LoadChanceCards(ctx context.Context) ([]models.Card, error) {
	return s.load(ctx, models.CardChance)
}

func (s *CardStore) LoadMiniGameCards(ctx context.Context) ([]models.Card, error) {
	return s.load(ctx, models.CardMiniGame)
}

func (s *CardStore) SaveChanceCards(ctx context.Context, cards []models.Card) error {
	return s.save(ctx, models.CardChance, cards)
}

func (s *CardStore) SaveMiniGameCards(ctx context.Context, cards []models.Card) error {
	return s.save(ctx, models.CardMiniGame, cards)
}

func (s *CardStore) ResetToDefaults(ctx context.Context) error {
	_, err := s.db.ModelContext(ctx, (*cardRow)(nil)).Where("TRUE").Delete()
	return err
}

var _ deck.Store = (*CardStore)(nil)
