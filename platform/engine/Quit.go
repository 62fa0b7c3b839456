package engine

import (
	"github.com/DedS3t/drinkopoly-backend/app/models"
	"github.com/DedS3t/drinkopoly-backend/platform/board"
)

// quit removes a player, frees their squares and keeps the turn pointing at
// the right person. Unknown ids are ignored.
func (g *game) quit(playerId int) {
	idx := g.state.PlayerIndex(playerId)
	if idx == -1 {
		return
	}
	board.ReleaseOwner(playerId, g.state.Board)
	players := g.state.Players
	g.state.Players = append(players[:idx:idx], players[idx+1:]...)

	wasCurrent := idx == g.state.CurrentPlayerIndex
	if idx < g.state.CurrentPlayerIndex {
		g.state.CurrentPlayerIndex--
	}
	if len(g.state.Players) < 2 {
		g.state.GameOver = true
	}
	if len(g.state.Players) == 0 {
		g.state.CurrentPlayerIndex = 0
		g.state.Turn = models.Turn{}
		g.state.TurnState = models.StartTurn
		return
	}
	if wasCurrent {
		if g.state.CurrentPlayerIndex >= len(g.state.Players) {
			g.state.CurrentPlayerIndex = 0
		}
		g.state.Turn = models.Turn{}
		g.state.TurnState = models.StartTurn
		g.advance()
	}
}
