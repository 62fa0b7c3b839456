package engine

import (
	"fmt"

	"github.com/DedS3t/drinkopoly-backend/app/models"
	"github.com/DedS3t/drinkopoly-backend/platform/board"
	"github.com/DedS3t/drinkopoly-backend/platform/deck"
)

func (g *game) drawCard(requested models.CardType) {
	card := deck.Draw(g.state, requested)
	g.state.Turn.CurrentCard = &card
	g.state.TurnState = models.CardDrawAction
}

// dismissCard acknowledges the drawn card and runs its effect. Cards with
// no mechanical effect just leave the turn in POST_CASE_ACTIONS.
func (g *game) dismissCard() {
	card := g.state.Turn.CurrentCard
	g.state.Turn.CurrentCard = nil
	g.state.TurnState = models.PostCaseActions
	if card != nil {
		g.applyEffect(*card)
	}
}

func (g *game) applyEffect(card models.Card) {
	me := g.current()
	effect := card.Effect

	switch effect.Kind {
	case models.EffectTeleport:
		g.teleport(board.Wrap(effect.Target))
	case models.EffectTeleportNoBuy:
		g.teleportNoBuy(board.Wrap(effect.Target))
	case models.EffectNearestBarBack:
		g.teleport(board.NearestBarBackwards(me.Position, g.state.Board))
	case models.EffectRetreat:
		steps := effect.Steps
		if steps <= 0 {
			steps = g.env.Rules.RetreatSteps
		}
		me.Position = board.Wrap(me.Position - steps)
		g.event("BACKWARDS", fmt.Sprintf("You stagger back %d squares.", steps), models.ResumeCaseResolution, 0)
	case models.EffectJail:
		g.sendToJail()
		g.event("LOCKUP!", "Bad luck... off to the sobering cell.", models.NoOp, 0)
	case models.EffectSwapPosition:
		g.swapPosition()
	case models.EffectSwapIdentity:
		g.swapIdentity()
	case models.EffectSteal:
		g.stealRandomProperty()
	case models.EffectChase:
		g.chase()
	case models.EffectReplay:
		g.event("ROLL AGAIN", "Lucky day! Roll the dice again right now.", models.Replay, 0)
	}
}

// teleport moves without the passing bonus, then resolves the new square.
func (g *game) teleport(target int) {
	g.current().Position = target
	g.event("TELEPORT", fmt.Sprintf("Off you go to %s.", g.state.Board[target].Name), models.ResumeCaseResolution, 0)
}

// teleportNoBuy only charges rent when someone else owns the target.
func (g *game) teleportNoBuy(target int) {
	me := g.current()
	me.Position = target
	square := g.state.Board[target]
	if square.IsOwned() && square.OwnerId != me.Id && square.IsBuyable() {
		g.openRent(square)
		return
	}
	g.event(square.Name, "You are at the bar! No buying here, just have a drink.", models.NoOp, 0)
}

func (g *game) others() []int {
	out := make([]int, 0, len(g.state.Players))
	for idx := range g.state.Players {
		if idx != g.state.CurrentPlayerIndex {
			out = append(out, idx)
		}
	}
	return out
}

func (g *game) swapPosition() {
	others := g.others()
	if len(others) == 0 {
		g.event("WALK IN MY SHOES", "Nobody to swap places with.", models.NoOp, 0)
		return
	}
	me := g.current()
	target := &g.state.Players[others[g.env.Dice.Intn(len(others))]]
	me.Position, target.Position = target.Position, me.Position
	g.event("WALK IN MY SHOES", fmt.Sprintf("You swapped places with %s!", target.Name), models.NoOp, 0)
}

// swapIdentity trades everything but who the players are: position,
// squares, sips and jail status.
func (g *game) swapIdentity() {
	others := g.others()
	if len(others) == 0 {
		g.event("IDENTITY THEFT", "Nobody to swap lives with.", models.NoOp, 0)
		return
	}
	me := g.current()
	target := &g.state.Players[others[g.env.Dice.Intn(len(others))]]

	me.Position, target.Position = target.Position, me.Position
	me.OwnedCases, target.OwnedCases = target.OwnedCases, me.OwnedCases
	me.DrinksTaken, target.DrinksTaken = target.DrinksTaken, me.DrinksTaken
	me.DrinksGiven, target.DrinksGiven = target.DrinksGiven, me.DrinksGiven
	me.InPrison, target.InPrison = target.InPrison, me.InPrison
	me.PrisonTurns, target.PrisonTurns = target.PrisonTurns, me.PrisonTurns

	for i := range g.state.Board {
		switch g.state.Board[i].OwnerId {
		case me.Id:
			g.state.Board[i].OwnerId = target.Id
		case target.Id:
			g.state.Board[i].OwnerId = me.Id
		}
	}
	g.event("IDENTITY THEFT", fmt.Sprintf("Unbelievable! You swapped lives with %s.", target.Name), models.NoOp, 0)
}

func (g *game) stealRandomProperty() {
	var victims []int
	for _, idx := range g.others() {
		if len(g.state.Players[idx].OwnedCases) > 0 {
			victims = append(victims, idx)
		}
	}
	if len(victims) == 0 {
		g.event("NO LUCK", "Nobody owns anything worth stealing...", models.NoOp, 0)
		return
	}
	me := g.current()
	victim := &g.state.Players[victims[g.env.Dice.Intn(len(victims))]]
	k := g.env.Dice.Intn(len(victim.OwnedCases))
	squareId := victim.OwnedCases[k]

	owned := make([]int, 0, len(victim.OwnedCases)-1)
	owned = append(owned, victim.OwnedCases[:k]...)
	victim.OwnedCases = append(owned, victim.OwnedCases[k+1:]...)
	me.OwnedCases = append(me.OwnedCases, squareId)
	board.SetOwner(squareId, me.Id, g.state.Board)

	name := "?"
	if square, err := board.GetById(squareId, g.state.Board); err == nil {
		name = square.Name
	}
	g.event("THEFT!", fmt.Sprintf("You stole '%s' from %s!", name, victim.Name), models.NoOp, 0)
}

// chase rolls two dice until a double or the attempt cap, each miss costing
// the chase penalty.
func (g *game) chase() {
	attempts, penalty, escaped := 0, 0, false
	for !escaped && attempts < g.env.Rules.ChaseMaxAttempts {
		attempts++
		if g.env.Dice.Roll() == g.env.Dice.Roll() {
			escaped = true
		} else {
			penalty += g.env.Rules.ChasePenalty
		}
	}
	g.current().DrinksTaken += penalty

	if escaped {
		g.event("RUN!", fmt.Sprintf("You lost the dealer after %d tries and drank %d sips in the panic.", attempts, penalty), models.NoOp, 0)
		return
	}
	g.event("CAUGHT", fmt.Sprintf("%d tries without a double... the dealer caught you. %d sips for nothing.", attempts, penalty), models.NoOp, 0)
}
