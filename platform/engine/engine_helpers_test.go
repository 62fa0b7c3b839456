package engine

import (
	"fmt"
	"testing"

	"github.com/DedS3t/drinkopoly-backend/app/models"
)

func start(t *testing.T, dice Roller, n int) models.GameState {
	t.Helper()
	entries := make([]models.PlayerDto, n)
	for i := range entries {
		entries[i] = models.PlayerDto{Name: fmt.Sprintf("P%d", i+1)}
	}
	state, err := Apply(models.GameState{}, Command{Kind: StartGame, Players: entries}, Env{Dice: dice})
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	return state
}

func apply(t *testing.T, state models.GameState, kind CommandKind, dice Roller) models.GameState {
	t.Helper()
	next, err := Apply(state, Command{Kind: kind}, Env{Dice: dice})
	if err != nil {
		t.Fatalf("%s: %v", kind, err)
	}
	return next
}

func expectState(t *testing.T, state models.GameState, want models.TurnState) {
	t.Helper()
	if state.TurnState != want {
		t.Fatalf("expected %s, got %s", want, state.TurnState)
	}
}

func expectEvent(t *testing.T, state models.GameState, want models.Continuation) {
	t.Helper()
	expectState(t, state, models.SpecialEventAction)
	if state.Turn.Event == nil {
		t.Fatalf("special event without payload")
	}
	if state.Turn.Event.Continuation != want {
		t.Fatalf("expected continuation %s, got %s (%s)", want, state.Turn.Event.Continuation, state.Turn.Event.Title)
	}
}

// drawn puts card on top of the chance stack and lands the current player
// on the chance square at position 4 with a (1,2) roll.
func drawn(t *testing.T, state models.GameState, dice *ScriptedRoller, card models.Card) models.GameState {
	t.Helper()
	state.Players[state.CurrentPlayerIndex].Position = 1
	state.ChanceStack = append([]models.Card{card}, state.ChanceStack...)
	dice.Dice(1, 2)
	state = apply(t, state, RollDice, dice)
	expectState(t, state, models.CardDrawAction)
	if state.Turn.CurrentCard == nil || state.Turn.CurrentCard.Id != card.Id {
		t.Fatalf("expected card %d to be drawn, got %+v", card.Id, state.Turn.CurrentCard)
	}
	return state
}

func effectCard(id int, effect models.CardEffect) models.Card {
	return models.Card{Id: id, Text: "test", Type: models.CardChance, IsActive: true, Effect: effect}
}
