package engine

import (
	"fmt"

	"github.com/DedS3t/drinkopoly-backend/app/models"
	"github.com/DedS3t/drinkopoly-backend/platform/board"
)

// resolve dispatches on the square the current player stands on.
func (g *game) resolve() {
	g.state.TurnState = models.ResolveCase
	me := g.current()
	square, err := board.GetByPos(me.Position, g.state.Board)
	if err != nil {
		g.state.TurnState = models.PostCaseActions
		return
	}

	switch square.Type {
	case models.SquareProperty, models.SquareBar:
		if !square.IsOwned() {
			g.openPurchase(square)
		} else {
			g.openRent(square)
		}
	case models.SquareStart:
		me.DrinksGiven += g.env.Rules.LandStartBonus
		g.event("START CELLAR!", fmt.Sprintf("Right on the cellar. Give out %d sips.", g.env.Rules.LandStartBonus), models.NoOp, 0)
	case models.SquareFillBasin:
		g.event("THE BASIN", "Pour whatever you want into the basin!", models.NoOp, 0)
	case models.SquareDrinkBasin:
		g.event("BOTTOMS UP!", "Sorry... you have to drink the WHOLE basin!", models.NoOp, 0)
	case models.SquareGoToJail:
		g.sendToJail()
		g.event("LOCKUP!", "Off to the sobering cell. You are stuck!", models.NoOp, 0)
	case models.SquareVisitOnly:
		g.event("LOCKUP", "All good, you are just visiting.", models.NoOp, 0)
	case models.SquareKidsArea:
		g.event("KIDS AREA", "It is getting hot in here... take off a piece of clothing!", models.NoOp, 0)
	case models.SquareChance:
		g.drawCard(models.CardChance)
	case models.SquareMiniGame:
		g.drawCard(models.CardMiniGame)
	default:
		g.state.TurnState = models.PostCaseActions
	}
}

func (g *game) openPurchase(square models.Square) {
	t := &g.state.Turn
	t.PurchaseTarget = board.Difficulty(square.Id)
	t.PurchaseAttempts = 0
	t.LastPurchaseRoll = 0
	t.PurchaseResult = models.PurchaseNone
	g.state.TurnState = models.PropertyBuyAction
}

func (g *game) openRent(square models.Square) {
	g.state.Turn.PendingRent = g.rent(square)
	g.state.TurnState = models.RentPaymentAction
}

// rent is 4 sips per bar the owner holds for bars, the family value for
// anything else.
func (g *game) rent(square models.Square) int {
	if square.Type == models.SquareBar {
		if g.state.PlayerIndex(square.OwnerId) == -1 {
			return 0
		}
		return g.env.Rules.BarRentPerBar * board.CountOwnedBars(square.OwnerId, g.state.Board)
	}
	if square.Family > 0 {
		return square.Family
	}
	return 1
}
