package queries

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/DedS3t/drinkopoly-backend/app/models"
	"github.com/DedS3t/drinkopoly-backend/platform/cache"
	"github.com/DedS3t/drinkopoly-backend/platform/deck"
	"github.com/DedS3t/drinkopoly-backend/platform/engine"
	"github.com/DedS3t/drinkopoly-backend/platform/logging"
	"github.com/gomodule/redigo/redis"
	uuid "github.com/satori/go.uuid"
)

var (
	ErrNotFound = errors.New("game not found")
	ErrBusy     = errors.New("game is busy")
)

const defaultLockTTL = 5 * time.Second

// Sessions stores one engine snapshot per game in redis and funnels every
// command through engine.Apply.
type Sessions struct {
	Pool    *redis.Pool
	Cards   deck.Store
	Dice    engine.Roller
	Rules   engine.Rules
	TTL     time.Duration // snapshot expiry, 0 keeps games forever
	LockTTL time.Duration
}

func (s *Sessions) env(chance, miniGame []models.Card) engine.Env {
	return engine.Env{
		Dice:          s.Dice,
		Rules:         s.Rules,
		ChanceCards:   chance,
		MiniGameCards: miniGame,
	}
}

// StartGame deals a new game from the stored card library.
func (s *Sessions) StartGame(ctx context.Context, players []models.PlayerDto) (string, models.GameState, error) {
	chance, miniGame, err := deck.LoadLibrary(ctx, s.Cards)
	if err != nil {
		return "", models.GameState{}, fmt.Errorf("load cards: %w", err)
	}
	state, err := engine.Apply(models.GameState{}, engine.Command{
		Kind:    engine.StartGame,
		Players: players,
	}, s.env(chance, miniGame))
	if err != nil {
		return "", models.GameState{}, err
	}

	id := uuid.NewV4().String()
	conn := s.Pool.Get()
	defer conn.Close()
	if err := s.save(id, state, &conn); err != nil {
		return "", models.GameState{}, err
	}
	logging.Game(id).WithField("players", len(players)).Info("game started")
	return id, state, nil
}

// Get returns the stored snapshot, flagged as settling while another
// command holds the game.
func (s *Sessions) Get(ctx context.Context, id string) (models.GameState, error) {
	conn := s.Pool.Get()
	defer conn.Close()
	state, err := s.load(id, &conn)
	if err != nil {
		return state, err
	}
	state.Settling, err = cache.Exists(busyKey(id), &conn)
	return state, err
}

// Apply runs cmd against the stored snapshot. Only one command per game is
// processed at a time; a concurrent one gets ErrBusy.
func (s *Sessions) Apply(ctx context.Context, id string, cmd engine.Command) (models.GameState, error) {
	return s.update(ctx, id, cmd.Kind, func(state models.GameState) (models.GameState, error) {
		return engine.Apply(state, cmd, s.env(nil, nil))
	})
}

// Restart reloads the card library from the store before reshuffling, so
// edits made since the game started are picked up.
func (s *Sessions) Restart(ctx context.Context, id string) (models.GameState, error) {
	chance, miniGame, err := deck.LoadLibrary(ctx, s.Cards)
	if err != nil {
		return models.GameState{}, fmt.Errorf("load cards: %w", err)
	}
	return s.update(ctx, id, engine.RestartGame, func(state models.GameState) (models.GameState, error) {
		return engine.Apply(state, engine.Command{Kind: engine.RestartGame}, s.env(chance, miniGame))
	})
}

func (s *Sessions) Delete(ctx context.Context, id string) error {
	conn := s.Pool.Get()
	defer conn.Close()
	if ok, err := cache.Exists(id, &conn); err != nil {
		return err
	} else if !ok {
		return ErrNotFound
	}
	logging.Game(id).Info("game deleted")
	return cache.Del(id, &conn)
}

func (s *Sessions) update(ctx context.Context, id string, kind engine.CommandKind, fn func(models.GameState) (models.GameState, error)) (models.GameState, error) {
	conn := s.Pool.Get()
	defer conn.Close()
	log := logging.Game(id).WithField("command", kind)

	release, err := s.lock(id, &conn)
	if err != nil {
		return models.GameState{}, err
	}
	defer release()

	state, err := s.load(id, &conn)
	if err != nil {
		return models.GameState{}, err
	}
	next, err := fn(state)
	if err != nil {
		log.WithError(err).WithField("state", state.TurnState).Debug("command rejected")
		return state, err
	}
	if err := ctx.Err(); err != nil {
		return state, err
	}
	if err := s.save(id, next, &conn); err != nil {
		return state, err
	}
	log.WithField("state", next.TurnState).Debug("command applied")
	return next, nil
}

func busyKey(id string) string {
	return fmt.Sprintf("%s.busy", id)
}

// lock is the settling guard: while it is held further commands for the
// game are refused rather than queued.
func (s *Sessions) lock(id string, conn *redis.Conn) (func(), error) {
	ttl := s.LockTTL
	if ttl <= 0 {
		ttl = defaultLockTTL
	}
	ok, err := cache.SetNX(busyKey(id), 1, ttl, conn)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrBusy
	}
	return func() {
		if err := cache.Del(busyKey(id), conn); err != nil {
			logging.Game(id).WithError(err).Warn("failed to release game lock")
		}
	}, nil
}
