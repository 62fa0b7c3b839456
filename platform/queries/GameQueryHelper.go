package queries

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/DedS3t/drinkopoly-backend/app/models"
	"github.com/DedS3t/drinkopoly-backend/platform/cache"
	"github.com/DedS3t/drinkopoly-backend/platform/deck"
	"github.com/DedS3t/drinkopoly-backend/platform/logging"
	"github.com/gomodule/redigo/redis"
	"github.com/sirupsen/logrus"
)

func (s *Sessions) load(id string, conn *redis.Conn) (models.GameState, error) {
	data, err := cache.Get(id, conn)
	if err == redis.ErrNil {
		return models.GameState{}, ErrNotFound
	}
	if err != nil {
		return models.GameState{}, err
	}
	var state models.GameState
	if err := json.Unmarshal([]byte(data), &state); err != nil {
		return models.GameState{}, fmt.Errorf("decode game %s: %w", id, err)
	}
	return state, nil
}

func (s *Sessions) save(id string, state models.GameState, conn *redis.Conn) error {
	state.Settling = false
	data, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return cache.SetTTL(id, data, s.TTL, conn)
}

// EditLibrary applies one library operation, persists it, and when gameId
// is set mirrors it into that game's draw stacks.
func (s *Sessions) EditLibrary(ctx context.Context, gameId string, op deck.Op, id int, dto models.CardDto) (models.Card, error) {
	chance, miniGame, err := deck.LoadLibrary(ctx, s.Cards)
	if err != nil {
		return models.Card{}, err
	}

	cardType := dto.Type
	if op != deck.OpAdd {
		found, err := deck.FindCard(chance, miniGame, id)
		if err != nil {
			return models.Card{}, err
		}
		cardType = found.Type
	}
	if cardType != models.CardMiniGame {
		cardType = models.CardChance
	}
	library, other := chance, miniGame
	if cardType == models.CardMiniGame {
		library, other = miniGame, chance
	}

	var card models.Card
	switch op {
	case deck.OpAdd:
		dto.Type = cardType
		library, card = deck.AddCard(library, other, dto)
	case deck.OpUpdate:
		library, card, err = deck.UpdateCard(library, id, dto.Title, dto.Text)
	case deck.OpDelete:
		library, card, err = deck.SetActive(library, id, false)
	case deck.OpRestore:
		library, card, err = deck.SetActive(library, id, true)
	default:
		return models.Card{}, fmt.Errorf("unknown card operation %q", op)
	}
	if err != nil {
		return models.Card{}, err
	}
	if err := deck.SaveLibrary(ctx, s.Cards, cardType, library); err != nil {
		return models.Card{}, err
	}
	logrus.WithFields(logrus.Fields{"card_id": card.Id, "op": op}).Info("card library updated")

	if gameId == "" {
		return card, nil
	}
	_, err = s.update(ctx, gameId, "sync-card", func(state models.GameState) (models.GameState, error) {
		next := state.Clone()
		deck.Sync(&next, op, card)
		return next, nil
	})
	if err != nil {
		logging.Game(gameId).WithError(err).Warn("card saved but not synced into the game")
		return card, err
	}
	return card, nil
}

// Library returns both stored collections.
func (s *Sessions) Library(ctx context.Context) ([]models.Card, []models.Card, error) {
	return deck.LoadLibrary(ctx, s.Cards)
}

func (s *Sessions) ResetLibrary(ctx context.Context) error {
	if err := s.Cards.ResetToDefaults(ctx); err != nil {
		return err
	}
	logrus.Info("card library reset to defaults")
	return nil
}
