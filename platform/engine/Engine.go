package engine

import (
	"errors"
	"fmt"

	"github.com/DedS3t/drinkopoly-backend/app/models"
)

type CommandKind string

const (
	StartGame    CommandKind = "start-game"
	RollDice     CommandKind = "roll-dice"
	RollPrison   CommandKind = "roll-prison"
	RollPurchase CommandKind = "roll-purchase"
	SkipBuy      CommandKind = "skip-buy"
	ConfirmRent  CommandKind = "confirm-rent"
	DismissCard  CommandKind = "dismiss-card"
	DismissEvent CommandKind = "dismiss-event"
	EndTurn      CommandKind = "end-turn"
	QuitPlayer   CommandKind = "quit-player"
	RestartGame  CommandKind = "restart-game"
)

type Command struct {
	Kind     CommandKind
	PlayerId int                // quit-player
	Players  []models.PlayerDto // start-game
}

var (
	ErrInvalidCommand = errors.New("command not accepted in current state")
	ErrUnknownCommand = errors.New("unknown command")
	ErrNoPlayers      = errors.New("no players in game")
	ErrGameOver       = errors.New("game is over")
)

type Rules struct {
	JailIndex           int
	PassStartBonus      int
	LandStartBonus      int
	PrisonEscapeSum     int
	MaxPurchaseAttempts int
	BarRentPerBar       int
	ChasePenalty        int
	ChaseMaxAttempts    int
	RetreatSteps        int
	ThreeDoublesToJail  bool
}

func DefaultRules() Rules {
	return Rules{
		JailIndex:           10,
		PassStartBonus:      5,
		LandStartBonus:      10,
		PrisonEscapeSum:     8,
		MaxPurchaseAttempts: 2,
		BarRentPerBar:       4,
		ChasePenalty:        2,
		ChaseMaxAttempts:    15,
		RetreatSteps:        3,
		ThreeDoublesToJail:  true,
	}
}

// Env carries everything a command may need besides the state itself.
// ChanceCards and MiniGameCards are the library to deal from on start and
// restart; nil falls back to the defaults.
type Env struct {
	Dice          Roller
	Rules         Rules
	ChanceCards   []models.Card
	MiniGameCards []models.Card
}

// turn states waiting on each command
var accepts = map[CommandKind]models.TurnState{
	RollDice:     models.RollDice,
	RollPrison:   models.PrisonTurn,
	RollPurchase: models.PropertyBuyAction,
	SkipBuy:      models.PropertyBuyAction,
	ConfirmRent:  models.RentPaymentAction,
	DismissCard:  models.CardDrawAction,
	DismissEvent: models.SpecialEventAction,
	EndTurn:      models.PostCaseActions,
}

type game struct {
	state *models.GameState
	env   Env
}

// Apply computes the state that follows cmd. The input is never mutated;
// on error the original state is returned untouched.
func Apply(state models.GameState, cmd Command, env Env) (models.GameState, error) {
	if env.Rules == (Rules{}) {
		env.Rules = DefaultRules()
	}
	if env.Dice == nil {
		return state, errors.New("engine: no dice")
	}
	next := state.Clone()
	g := &game{state: &next, env: env}
	if err := g.handle(cmd); err != nil {
		return state, err
	}
	return next, nil
}

func (g *game) handle(cmd Command) error {
	switch cmd.Kind {
	case StartGame:
		if len(g.state.Players) > 0 {
			return fmt.Errorf("%w: game already started", ErrInvalidCommand)
		}
		g.start(cmd.Players)
		return nil
	case RestartGame:
		g.restart()
		return nil
	case QuitPlayer:
		g.quit(cmd.PlayerId)
		return nil
	}

	want, ok := accepts[cmd.Kind]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCommand, cmd.Kind)
	}
	if len(g.state.Players) == 0 {
		return ErrNoPlayers
	}
	if g.state.GameOver {
		return ErrGameOver
	}
	if g.state.Settling {
		return fmt.Errorf("%w: %s while the last command settles", ErrInvalidCommand, cmd.Kind)
	}
	if g.state.TurnState != want {
		return fmt.Errorf("%w: %s during %s", ErrInvalidCommand, cmd.Kind, g.state.TurnState)
	}

	switch cmd.Kind {
	case RollDice:
		g.rollDice()
	case RollPrison:
		g.rollPrison()
	case RollPurchase:
		return g.rollForPurchase()
	case SkipBuy:
		g.state.TurnState = models.PostCaseActions
	case ConfirmRent:
		g.confirmRent()
	case DismissCard:
		g.dismissCard()
	case DismissEvent:
		g.dismissEvent()
	case EndTurn:
		g.endTurn()
	}
	return nil
}

func (g *game) current() *models.Player {
	return &g.state.Players[g.state.CurrentPlayerIndex]
}

func (g *game) event(title, message string, next models.Continuation, steps int) {
	g.state.Turn.Event = &models.SpecialEvent{
		Title:        title,
		Message:      message,
		Continuation: next,
		Steps:        steps,
	}
	g.state.TurnState = models.SpecialEventAction
}

func (g *game) dismissEvent() {
	ev := g.state.Turn.Event
	g.state.Turn.Event = nil
	if ev == nil {
		g.state.TurnState = models.PostCaseActions
		return
	}
	switch ev.Continuation {
	case models.ContinueMovement:
		g.move(ev.Steps)
	case models.ResumeCaseResolution:
		g.resolve()
	case models.Replay:
		g.replay()
	default:
		g.state.TurnState = models.PostCaseActions
	}
}
