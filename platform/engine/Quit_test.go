package engine

import (
	"errors"
	"reflect"
	"testing"

	"github.com/DedS3t/drinkopoly-backend/app/models"
)

func quit(t *testing.T, state models.GameState, id int) models.GameState {
	t.Helper()
	next, err := Apply(state, Command{Kind: QuitPlayer, PlayerId: id}, Env{Dice: NewScriptedRoller()})
	if err != nil {
		t.Fatalf("quit %d: %v", id, err)
	}
	return next
}

func TestQuitBeforeCurrentShiftsIndex(t *testing.T) {
	state := start(t, NewScriptedRoller(), 3)
	state.CurrentPlayerIndex = 1
	state.TurnState = models.PostCaseActions

	state = quit(t, state, 1)
	if len(state.Players) != 2 || state.CurrentPlayerIndex != 0 || state.CurrentPlayer().Id != 2 {
		t.Fatalf("expected player 2 to stay current, got idx=%d", state.CurrentPlayerIndex)
	}
	expectState(t, state, models.PostCaseActions)
}

func TestQuitCurrentHandsTurnOverAndFreesSquares(t *testing.T) {
	state := start(t, NewScriptedRoller(), 3)
	state.Board[1].OwnerId = 1
	state.Players[0].OwnedCases = []int{2}
	state.Players[1].InPrison = true
	state.TurnState = models.PropertyBuyAction
	state.Turn.PurchaseTarget = 2

	state = quit(t, state, 1)
	if state.CurrentPlayer().Id != 2 || state.Board[1].IsOwned() {
		t.Fatalf("unexpected state after quit: current=%d", state.CurrentPlayer().Id)
	}
	expectState(t, state, models.PrisonTurn)
	if state.Turn != (models.Turn{}) {
		t.Fatalf("turn fields should reset")
	}
}

func TestQuitLastIndexWraps(t *testing.T) {
	state := start(t, NewScriptedRoller(), 3)
	state.CurrentPlayerIndex = 2

	state = quit(t, state, 3)
	if state.CurrentPlayerIndex != 0 || state.CurrentPlayer().Id != 1 {
		t.Fatalf("expected wrap to first player")
	}
	expectState(t, state, models.RollDice)
}

func TestQuitDownToOnePlayerEndsGame(t *testing.T) {
	state := start(t, NewScriptedRoller(), 2)
	state = quit(t, state, 2)
	if !state.GameOver || len(state.Players) != 1 {
		t.Fatalf("expected game over")
	}
	if _, err := Apply(state, Command{Kind: RollDice}, Env{Dice: NewScriptedRoller()}); !errors.Is(err, ErrGameOver) {
		t.Fatalf("expected ErrGameOver, got %v", err)
	}

	state = quit(t, state, 1)
	if len(state.Players) != 0 || state.CurrentPlayer().Name != "?" {
		t.Fatalf("expected empty roster")
	}
}

func TestQuitUnknownPlayerIsNoop(t *testing.T) {
	state := start(t, NewScriptedRoller(), 2)
	before := state.Clone()
	state = quit(t, state, 42)
	if !reflect.DeepEqual(state, before) {
		t.Fatalf("unknown quit changed the state")
	}
}
