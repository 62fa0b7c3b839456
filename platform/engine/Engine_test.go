package engine

import (
	"errors"
	"reflect"
	"testing"

	"github.com/DedS3t/drinkopoly-backend/app/models"
	"github.com/DedS3t/drinkopoly-backend/platform/deck"
)

func TestStartGameAutoAdvancesToRollDice(t *testing.T) {
	state := start(t, NewScriptedRoller(), 3)
	expectState(t, state, models.RollDice)
	if len(state.Players) != 3 || state.CurrentPlayerIndex != 0 || state.TurnNumber != 1 {
		t.Fatalf("unexpected start state: %+v", state)
	}
	for i, p := range state.Players {
		if p.Id != i+1 || p.Position != 0 || p.InPrison || p.Color == "" || p.Avatar == "" {
			t.Fatalf("bad player %+v", p)
		}
	}
	if len(state.ChanceStack) != len(deck.DefaultChanceCards()) {
		t.Fatalf("chance stack has %d cards", len(state.ChanceStack))
	}
	if len(state.MiniGameStack) != len(deck.DefaultMiniGameCards()) {
		t.Fatalf("mini-game stack has %d cards", len(state.MiniGameStack))
	}
}

func TestStartGameSkipsInactiveCards(t *testing.T) {
	chance := deck.DefaultChanceCards()
	chance[0].IsActive = false
	state, err := Apply(models.GameState{}, Command{Kind: StartGame, Players: []models.PlayerDto{{}, {}}},
		Env{Dice: NewScriptedRoller(), ChanceCards: chance})
	if err != nil {
		t.Fatal(err)
	}
	if len(state.ChanceStack) != len(chance)-1 || len(state.AllChanceCards) != len(chance) {
		t.Fatalf("stack %d library %d", len(state.ChanceStack), len(state.AllChanceCards))
	}
	if state.Players[0].Name != "Player 1" {
		t.Fatalf("expected default name, got %q", state.Players[0].Name)
	}
}

func TestStartGameTwiceRejected(t *testing.T) {
	state := start(t, NewScriptedRoller(), 2)
	_, err := Apply(state, Command{Kind: StartGame}, Env{Dice: NewScriptedRoller()})
	if !errors.Is(err, ErrInvalidCommand) {
		t.Fatalf("expected ErrInvalidCommand, got %v", err)
	}
}

func TestRejectedCommandsLeaveStateUntouched(t *testing.T) {
	state := start(t, NewScriptedRoller(), 2)
	before := state.Clone()
	cases := []CommandKind{EndTurn, RollPrison, RollPurchase, SkipBuy, ConfirmRent, DismissCard, DismissEvent}
	for _, kind := range cases {
		next, err := Apply(state, Command{Kind: kind}, Env{Dice: NewScriptedRoller()})
		if !errors.Is(err, ErrInvalidCommand) {
			t.Errorf("%s: expected ErrInvalidCommand, got %v", kind, err)
		}
		if !reflect.DeepEqual(next, before) {
			t.Errorf("%s: state changed on rejection", kind)
		}
	}
	if _, err := Apply(state, Command{Kind: "fly"}, Env{Dice: NewScriptedRoller()}); !errors.Is(err, ErrUnknownCommand) {
		t.Fatalf("expected ErrUnknownCommand, got %v", err)
	}
}

func TestCommandsOnEmptyRoster(t *testing.T) {
	state, err := Apply(models.GameState{}, Command{Kind: StartGame}, Env{Dice: NewScriptedRoller()})
	if err != nil {
		t.Fatal(err)
	}
	if state.CurrentPlayer().Name != "?" {
		t.Fatalf("expected placeholder player")
	}
	if _, err := Apply(state, Command{Kind: RollDice}, Env{Dice: NewScriptedRoller()}); !errors.Is(err, ErrNoPlayers) {
		t.Fatalf("expected ErrNoPlayers, got %v", err)
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	dice := NewScriptedRoller(5, 6, 2, 4)
	state := start(t, dice, 2)
	before := state.Clone()
	next := apply(t, state, RollDice, dice)
	next = apply(t, next, RollPurchase, dice)
	next = apply(t, next, RollPurchase, dice)
	if !reflect.DeepEqual(state, before) {
		t.Fatalf("input state was mutated")
	}
	if next.Board[11].OwnerId != 1 {
		t.Fatalf("purchase did not land on the new state")
	}
}

func TestRestartKeepsRosterAndWipesProgress(t *testing.T) {
	dice := NewScriptedRoller(5, 6, 6)
	state := start(t, dice, 2)
	state = apply(t, state, RollDice, dice)
	state = apply(t, state, RollPurchase, dice)
	state.Players[1].InPrison = true

	state = apply(t, state, RestartGame, dice)
	expectState(t, state, models.RollDice)
	for _, p := range state.Players {
		if p.Position != 0 || p.DrinksTaken != 0 || p.DrinksGiven != 0 || len(p.OwnedCases) != 0 || p.InPrison {
			t.Fatalf("player not reset: %+v", p)
		}
	}
	if state.Players[1].Name != "P2" {
		t.Fatalf("identity lost on restart")
	}
	for _, sq := range state.Board {
		if sq.OwnerId != 0 {
			t.Fatalf("square %d still owned", sq.Id)
		}
	}
}

func TestSettlingRejectsTurnCommands(t *testing.T) {
	dice := NewScriptedRoller(1, 2)
	state := start(t, dice, 2)
	state.Settling = true
	before := state.Clone()

	next, err := Apply(state, Command{Kind: RollDice}, Env{Dice: dice})
	if !errors.Is(err, ErrInvalidCommand) {
		t.Fatalf("expected ErrInvalidCommand, got %v", err)
	}
	if !reflect.DeepEqual(next, before) || dice.Remaining() != 2 {
		t.Fatalf("rejected roll must not consume dice or change state")
	}

	next, err = Apply(state, Command{Kind: QuitPlayer, PlayerId: 2}, Env{Dice: dice})
	if err != nil {
		t.Fatalf("quit should still go through: %v", err)
	}
	if len(next.Players) != 1 {
		t.Fatalf("expected one player left, got %d", len(next.Players))
	}
}

func TestLandingOffTheBoardEndsTheCase(t *testing.T) {
	dice := NewScriptedRoller(5, 6)
	state := start(t, dice, 2)
	state.Board = state.Board[:10]
	state = apply(t, state, RollDice, dice)
	expectState(t, state, models.PostCaseActions)
	if state.CurrentPlayer().Position != 11 {
		t.Fatalf("expected position 11, got %d", state.CurrentPlayer().Position)
	}
}
