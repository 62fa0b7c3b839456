package deck

import (
	"errors"
	"strings"

	"github.com/DedS3t/drinkopoly-backend/app/models"
)

// firstCustomId is the lowest id handed to a card created by players.
const firstCustomId = 301

var ErrCardNotFound = errors.New("card not found")

type Op string

const (
	OpAdd     Op = "add"
	OpUpdate  Op = "update"
	OpDelete  Op = "delete"
	OpRestore Op = "restore"
)

func cardText(title, text string) string {
	title = strings.TrimSpace(title)
	text = strings.TrimSpace(text)
	if title == "" {
		return text
	}
	return title + "\n" + text
}

// NextId is one past the highest id across every library given, never
// below the first custom id. Ids are unique across chance and mini-game.
func NextId(libraries ...[]models.Card) int {
	maxId := firstCustomId - 1
	for _, library := range libraries {
		for _, card := range library {
			if card.Id > maxId {
				maxId = card.Id
			}
		}
	}
	return maxId + 1
}

// AddCard appends a new active card to library. other is the library of the
// other card type, consulted only so the new id is free in both.
func AddCard(library, other []models.Card, dto models.CardDto) ([]models.Card, models.Card) {
	effect := dto.Effect
	if effect.Kind == "" {
		effect.Kind = models.EffectNone
	}
	card := models.Card{
		Id:       NextId(library, other),
		Text:     cardText(dto.Title, dto.Text),
		Type:     dto.Type,
		IsActive: true,
		Effect:   effect,
	}
	return append(library, card), card
}

func UpdateCard(library []models.Card, id int, title, text string) ([]models.Card, models.Card, error) {
	for i, card := range library {
		if card.Id == id {
			library[i].Text = cardText(title, text)
			return library, library[i], nil
		}
	}
	return library, models.Card{}, ErrCardNotFound
}

// SetActive is the soft delete / restore switch.
func SetActive(library []models.Card, id int, active bool) ([]models.Card, models.Card, error) {
	for i, card := range library {
		if card.Id == id {
			library[i].IsActive = active
			return library, library[i], nil
		}
	}
	return library, models.Card{}, ErrCardNotFound
}

// FindCard looks the id up in both libraries.
func FindCard(chance, miniGame []models.Card, id int) (models.Card, error) {
	for _, card := range chance {
		if card.Id == id {
			return card, nil
		}
	}
	for _, card := range miniGame {
		if card.Id == id {
			return card, nil
		}
	}
	return models.Card{}, ErrCardNotFound
}

// Sync mirrors a library change into a live game so the library and the
// draw stack never disagree.
func Sync(state *models.GameState, op Op, card models.Card) {
	library := &state.AllChanceCards
	stack := &state.ChanceStack
	if card.Type == models.CardMiniGame {
		library = &state.AllMiniGameCards
		stack = &state.MiniGameStack
	}

	replaced := false
	for i := range *library {
		if (*library)[i].Id == card.Id {
			(*library)[i] = card
			replaced = true
		}
	}
	if !replaced {
		*library = append(*library, card)
	}

	switch op {
	case OpAdd, OpRestore:
		if indexOf(*stack, card.Id) == -1 {
			*stack = append(*stack, card)
		}
	case OpUpdate:
		if idx := indexOf(*stack, card.Id); idx != -1 {
			(*stack)[idx] = card
		}
	case OpDelete:
		if idx := indexOf(*stack, card.Id); idx != -1 {
			*stack = append((*stack)[:idx:idx], (*stack)[idx+1:]...)
		}
	}
}

func indexOf(cards []models.Card, id int) int {
	for i, card := range cards {
		if card.Id == id {
			return i
		}
	}
	return -1
}
