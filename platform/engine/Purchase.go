package engine

import (
	"fmt"

	"github.com/DedS3t/drinkopoly-backend/app/models"
)

// rollForPurchase spends one attempt. The rolled value is drunk win or lose.
func (g *game) rollForPurchase() error {
	t := &g.state.Turn
	if t.PurchaseResult == models.PurchaseSuccess || t.PurchaseAttempts >= g.env.Rules.MaxPurchaseAttempts {
		return fmt.Errorf("%w: no purchase attempt left", ErrInvalidCommand)
	}
	me := g.current()
	square := &g.state.Board[me.Position]
	if !square.IsBuyable() || square.IsOwned() {
		return fmt.Errorf("%w: square %d cannot be bought", ErrInvalidCommand, square.Id)
	}

	roll := g.env.Dice.Roll()
	me.DrinksTaken += roll
	t.LastPurchaseRoll = roll
	t.PurchaseAttempts++

	switch {
	case roll >= t.PurchaseTarget:
		square.OwnerId = me.Id
		me.OwnedCases = append(me.OwnedCases, square.Id)
		t.PurchaseResult = models.PurchaseSuccess
		g.state.TurnState = models.PostCaseActions
	case t.PurchaseAttempts >= g.env.Rules.MaxPurchaseAttempts:
		t.PurchaseResult = models.PurchaseFinalFailure
		g.state.TurnState = models.PostCaseActions
	default:
		t.PurchaseResult = models.PurchaseRetry
	}
	return nil
}

func (g *game) confirmRent() {
	me := g.current()
	square := g.state.Board[me.Position]
	rent := g.state.Turn.PendingRent

	if square.OwnerId == me.Id {
		me.DrinksGiven += rent
	} else if ownerIdx := g.state.PlayerIndex(square.OwnerId); ownerIdx != -1 {
		me.DrinksTaken += rent
		g.state.Players[ownerIdx].DrinksGiven += rent
	}
	g.state.Turn.PendingRent = 0
	g.state.TurnState = models.PostCaseActions
}
