package engine

import (
	"fmt"

	"github.com/DedS3t/drinkopoly-backend/app/models"
	"github.com/DedS3t/drinkopoly-backend/platform/board"
)

func (g *game) rollDice() {
	t := &g.state.Turn
	d1, d2 := g.env.Dice.Roll(), g.env.Dice.Roll()
	t.Die1, t.Die2, t.DiceResult = d1, d2, d1+d2
	t.IsDouble = d1 == d2
	t.PassedStart = false

	if !t.IsDouble {
		t.ConsecutiveDoubles = 0
		t.ReplayAvailable = false
		g.move(t.DiceResult)
		return
	}

	t.ConsecutiveDoubles++
	if g.env.Rules.ThreeDoublesToJail && t.ConsecutiveDoubles >= 3 {
		t.ConsecutiveDoubles = 0
		t.ReplayAvailable = false
		g.sendToJail()
		g.event("THIRD DOUBLE", "Three doubles in a row is suspicious. Straight to the lockup!", models.NoOp, 0)
		return
	}
	t.ReplayAvailable = true
	g.event(
		fmt.Sprintf("DOUBLE %d!", d1),
		fmt.Sprintf("Nice! Give out %d sips. You roll again after this turn.", d1),
		models.ContinueMovement,
		t.DiceResult,
	)
}

// move walks the current player forward. Crossing the start square pays
// the passing bonus; landing on it is left to the resolver.
func (g *game) move(steps int) {
	g.state.TurnState = models.MovePlayer
	me := g.current()
	start := me.Position
	final := board.Wrap(start + steps)
	me.Position = final

	if steps > 0 && final < start && final != 0 {
		me.DrinksGiven += g.env.Rules.PassStartBonus
		g.state.Turn.PassedStart = true
		g.event(
			"START CELLAR (PASSING)",
			fmt.Sprintf("You walk past the cellar. Give out %d sips.", g.env.Rules.PassStartBonus),
			models.ResumeCaseResolution,
			0,
		)
		return
	}
	g.resolve()
}
