package engine

import (
	"fmt"

	"github.com/DedS3t/drinkopoly-backend/app/models"
)

func (g *game) sendToJail() {
	me := g.current()
	me.Position = g.env.Rules.JailIndex
	me.InPrison = true
	me.PrisonTurns = 0
}

// rollPrison needs a sum of 8 or more to get out. Out means moving the sum
// from the jail square, otherwise the sum is drunk and the turn is over.
func (g *game) rollPrison() {
	t := &g.state.Turn
	d1, d2 := g.env.Dice.Roll(), g.env.Dice.Roll()
	sum := d1 + d2
	t.Die1, t.Die2, t.DiceResult = d1, d2, sum
	t.IsDouble = d1 == d2
	me := g.current()

	if sum >= g.env.Rules.PrisonEscapeSum {
		me.InPrison = false
		me.PrisonTurns = 0
		me.Position = g.env.Rules.JailIndex
		g.event(
			"ESCAPE!",
			fmt.Sprintf("Well done, you rolled %d. You are free and move on.", sum),
			models.ContinueMovement,
			sum,
		)
		return
	}
	me.DrinksTaken += sum
	me.PrisonTurns++
	g.event(
		"MISSED...",
		fmt.Sprintf("You rolled %d, under %d. Drink %d sips and STAY LOCKED UP!", sum, g.env.Rules.PrisonEscapeSum, sum),
		models.NoOp,
		0,
	)
}
