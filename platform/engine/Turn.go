package engine

import (
	"fmt"

	"github.com/DedS3t/drinkopoly-backend/app/models"
	"github.com/DedS3t/drinkopoly-backend/platform/board"
	"github.com/DedS3t/drinkopoly-backend/platform/deck"
)

var colors = []string{"#FF5252", "#448AFF", "#69F0AE", "#FFD740", "#E040FB", "#FF6E40"}

const defaultColor = "#9E9E9E"

func (g *game) library() ([]models.Card, []models.Card) {
	chance, miniGame := g.env.ChanceCards, g.env.MiniGameCards
	if chance == nil {
		chance = deck.DefaultChanceCards()
	}
	if miniGame == nil {
		miniGame = deck.DefaultMiniGameCards()
	}
	return chance, miniGame
}

func (g *game) deal(players []models.Player) {
	chance, miniGame := g.library()
	*g.state = models.GameState{
		Players:          players,
		Board:            board.LoadProperties(),
		AllChanceCards:   append([]models.Card(nil), chance...),
		AllMiniGameCards: append([]models.Card(nil), miniGame...),
		ChanceStack:      deck.BuildStack(chance, g.env.Dice),
		MiniGameStack:    deck.BuildStack(miniGame, g.env.Dice),
		TurnNumber:       1,
		TurnState:        models.StartTurn,
		GameOver:         g.state.GameOver && len(players) < 2,
	}
	g.advance()
}

func (g *game) start(entries []models.PlayerDto) {
	players := make([]models.Player, 0, len(entries))
	for idx, entry := range entries {
		name := entry.Name
		if name == "" {
			name = fmt.Sprintf("Player %d", idx+1)
		}
		avatar := entry.Avatar
		if avatar == "" {
			avatar = "🍺"
		}
		color := defaultColor
		if idx < len(colors) {
			color = colors[idx]
		}
		players = append(players, models.Player{
			Id:     idx + 1,
			Name:   name,
			Avatar: avatar,
			Color:  color,
		})
	}
	g.deal(players)
}

// restart keeps who is playing and wipes everything they did.
func (g *game) restart() {
	players := make([]models.Player, len(g.state.Players))
	for idx, p := range g.state.Players {
		players[idx] = models.Player{
			Id:     p.Id,
			Name:   p.Name,
			Avatar: p.Avatar,
			Color:  p.Color,
		}
	}
	if g.env.ChanceCards == nil && g.env.MiniGameCards == nil && len(g.state.AllChanceCards) > 0 {
		g.env.ChanceCards = g.state.AllChanceCards
		g.env.MiniGameCards = g.state.AllMiniGameCards
	}
	g.deal(players)
}

// advance chains the states that need no input.
func (g *game) advance() {
	for {
		switch g.state.TurnState {
		case models.StartTurn:
			g.state.TurnState = models.CheckPlayerStatus
		case models.CheckPlayerStatus:
			if len(g.state.Players) == 0 {
				g.state.TurnState = models.StartTurn
				return
			}
			if g.current().InPrison {
				g.state.TurnState = models.PrisonTurn
			} else {
				g.state.TurnState = models.RollDice
			}
			return
		default:
			return
		}
	}
}

func (g *game) endTurn() {
	g.state.TurnState = models.EndTurn
	if g.state.Turn.ReplayAvailable && !g.current().InPrison {
		g.state.Turn = models.Turn{ConsecutiveDoubles: g.state.Turn.ConsecutiveDoubles}
		g.state.TurnState = models.RollDice
		return
	}
	g.passToNext()
}

func (g *game) passToNext() {
	next := (g.state.CurrentPlayerIndex + 1) % len(g.state.Players)
	if next == 0 {
		g.state.TurnNumber++
	}
	g.state.CurrentPlayerIndex = next
	g.state.Turn = models.Turn{}
	g.state.TurnState = models.StartTurn
	g.advance()
}

// replay sends the same player straight back to the dice.
func (g *game) replay() {
	g.state.Turn = models.Turn{ConsecutiveDoubles: g.state.Turn.ConsecutiveDoubles}
	g.state.TurnState = models.RollDice
}
