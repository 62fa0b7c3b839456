package deck

import (
	_ "embed"
	"encoding/json"

	"github.com/DedS3t/drinkopoly-backend/app/models"
)

//go:embed cards.json
var cardsJson []byte

// Picker returns a uniform index in [0, n).
type Picker interface {
	Intn(n int) int
}

func defaults() []models.Card {
	var cards []models.Card
	if err := json.Unmarshal(cardsJson, &cards); err != nil {
		panic(err)
	}
	return cards
}

func DefaultChanceCards() []models.Card {
	return filterType(defaults(), models.CardChance)
}

func DefaultMiniGameCards() []models.Card {
	return filterType(defaults(), models.CardMiniGame)
}

func filterType(cards []models.Card, cardType models.CardType) []models.Card {
	out := make([]models.Card, 0, len(cards))
	for _, card := range cards {
		if card.Type == cardType {
			out = append(out, card)
		}
	}
	return out
}

// BuildStack shuffles the active subset of a library into a draw stack.
func BuildStack(library []models.Card, picker Picker) []models.Card {
	stack := make([]models.Card, 0, len(library))
	for _, card := range library {
		if card.IsActive {
			stack = append(stack, card)
		}
	}
	for i := len(stack) - 1; i > 0; i-- {
		j := picker.Intn(i + 1)
		stack[i], stack[j] = stack[j], stack[i]
	}
	return stack
}

// Draw pops the front card of the requested stack. An empty mini-game stack
// falls back to chance, and when both are empty the sentinel card is
// returned without touching either stack.
func Draw(state *models.GameState, requested models.CardType) models.Card {
	if requested == models.CardMiniGame && len(state.MiniGameStack) > 0 {
		card := state.MiniGameStack[0]
		state.MiniGameStack = state.MiniGameStack[1:]
		return card
	}
	if len(state.ChanceStack) > 0 {
		card := state.ChanceStack[0]
		state.ChanceStack = state.ChanceStack[1:]
		return card
	}
	return models.NoCardsLeft()
}
