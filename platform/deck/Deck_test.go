package deck

import (
	"context"
	"testing"

	"github.com/DedS3t/drinkopoly-backend/app/models"
)

type firstPicker struct{}

func (firstPicker) Intn(n int) int { return 0 }

func TestDefaults(t *testing.T) {
	chance := DefaultChanceCards()
	miniGame := DefaultMiniGameCards()
	if len(miniGame) != 21 {
		t.Fatalf("expected 21 mini-game cards, got %d", len(miniGame))
	}
	if len(chance) == 0 {
		t.Fatalf("no chance cards")
	}
	seen := map[int]bool{}
	for _, card := range append(chance, miniGame...) {
		if seen[card.Id] {
			t.Fatalf("duplicate card id %d", card.Id)
		}
		seen[card.Id] = true
		if !card.IsActive {
			t.Fatalf("default card %d inactive", card.Id)
		}
		if card.Effect.Kind == "" {
			t.Fatalf("card %d has no effect kind", card.Id)
		}
	}
	for _, card := range miniGame {
		if card.Effect.Kind != models.EffectNone {
			t.Fatalf("mini-game card %d carries effect %s", card.Id, card.Effect.Kind)
		}
	}
}

func TestBuildStackSkipsInactive(t *testing.T) {
	library := []models.Card{
		{Id: 1, IsActive: true}, {Id: 2, IsActive: false}, {Id: 3, IsActive: true},
	}
	stack := BuildStack(library, firstPicker{})
	if len(stack) != 2 {
		t.Fatalf("expected 2 cards, got %d", len(stack))
	}
	for _, card := range stack {
		if card.Id == 2 {
			t.Fatalf("inactive card dealt")
		}
	}
	if len(library) != 3 || library[0].Id != 1 {
		t.Fatalf("library was reordered")
	}
}

func TestDraw(t *testing.T) {
	chance := []models.Card{{Id: 101, Type: models.CardChance}, {Id: 102, Type: models.CardChance}}
	miniGame := []models.Card{{Id: 201, Type: models.CardMiniGame}}
	state := &models.GameState{ChanceStack: chance, MiniGameStack: miniGame}

	if card := Draw(state, models.CardMiniGame); card.Id != 201 {
		t.Fatalf("expected 201, got %d", card.Id)
	}
	if len(state.MiniGameStack) != 0 {
		t.Fatalf("mini-game stack did not shrink")
	}
	if card := Draw(state, models.CardMiniGame); card.Id != 101 {
		t.Fatalf("expected chance fallback 101, got %d", card.Id)
	}
	if card := Draw(state, models.CardChance); card.Id != 102 {
		t.Fatalf("expected 102, got %d", card.Id)
	}
	card := Draw(state, models.CardChance)
	if card.Id != models.NoCardsLeftId {
		t.Fatalf("expected sentinel, got %d", card.Id)
	}
	if len(state.ChanceStack) != 0 || len(state.MiniGameStack) != 0 {
		t.Fatalf("stacks mutated by sentinel draw")
	}
}

func TestAddCardIds(t *testing.T) {
	library := DefaultChanceCards()
	library, card := AddCard(library, DefaultMiniGameCards(), models.CardDto{Type: models.CardChance, Title: "NEW", Text: "Drink 1"})
	if card.Id != firstCustomId {
		t.Fatalf("expected id %d, got %d", firstCustomId, card.Id)
	}
	if card.Text != "NEW\nDrink 1" || card.Effect.Kind != models.EffectNone {
		t.Fatalf("unexpected card %+v", card)
	}
	_, next := AddCard(library, nil, models.CardDto{Type: models.CardChance, Text: "again"})
	if next.Id != firstCustomId+1 {
		t.Fatalf("expected id %d, got %d", firstCustomId+1, next.Id)
	}
}

func TestAddCardIdsUniqueAcrossTypes(t *testing.T) {
	chance, first := AddCard(DefaultChanceCards(), DefaultMiniGameCards(), models.CardDto{Type: models.CardChance, Text: "a"})
	_, second := AddCard(DefaultMiniGameCards(), chance, models.CardDto{Type: models.CardMiniGame, Text: "b"})
	if first.Id != firstCustomId || second.Id != firstCustomId+1 {
		t.Fatalf("expected ids %d and %d, got %d and %d", firstCustomId, firstCustomId+1, first.Id, second.Id)
	}

	miniGame := []models.Card{{Id: 450, Type: models.CardMiniGame}}
	if id := NextId(chance, miniGame); id != 451 {
		t.Fatalf("expected 451, got %d", id)
	}
}

func TestSyncKeepsStackConsistent(t *testing.T) {
	state := &models.GameState{
		AllChanceCards: []models.Card{{Id: 101, Type: models.CardChance, IsActive: true}, {Id: 102, Type: models.CardChance, IsActive: true}},
		ChanceStack:    []models.Card{{Id: 102, Type: models.CardChance, IsActive: true}},
	}

	lib, deleted, err := SetActive(state.AllChanceCards, 102, false)
	if err != nil {
		t.Fatal(err)
	}
	state.AllChanceCards = lib
	Sync(state, OpDelete, deleted)
	if len(state.ChanceStack) != 0 {
		t.Fatalf("deleted card still in stack")
	}
	if len(state.AllChanceCards) != 2 || state.AllChanceCards[1].IsActive {
		t.Fatalf("library lost the soft-deleted card: %+v", state.AllChanceCards)
	}

	restored := deleted
	restored.IsActive = true
	Sync(state, OpRestore, restored)
	Sync(state, OpRestore, restored)
	if len(state.ChanceStack) != 1 || state.ChanceStack[0].Id != 102 {
		t.Fatalf("restore should append once, got %+v", state.ChanceStack)
	}

	updated := restored
	updated.Text = "changed"
	Sync(state, OpUpdate, updated)
	if state.ChanceStack[0].Text != "changed" || state.AllChanceCards[1].Text != "changed" {
		t.Fatalf("update not mirrored")
	}

	added := models.Card{Id: 301, Type: models.CardMiniGame, IsActive: true}
	Sync(state, OpAdd, added)
	if len(state.MiniGameStack) != 1 || len(state.AllMiniGameCards) != 1 {
		t.Fatalf("mini-game add not mirrored")
	}
}

func TestUpdateUnknownCard(t *testing.T) {
	if _, _, err := UpdateCard(DefaultChanceCards(), 999, "a", "b"); err != ErrCardNotFound {
		t.Fatalf("expected ErrCardNotFound, got %v", err)
	}
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	chance, miniGame, err := LoadLibrary(ctx, store)
	if err != nil {
		t.Fatal(err)
	}
	if len(chance) != len(DefaultChanceCards()) || len(miniGame) != 21 {
		t.Fatalf("memory store should serve defaults")
	}
	if err := SaveLibrary(ctx, store, models.CardChance, chance[:1]); err != nil {
		t.Fatal(err)
	}
	chance, _, _ = LoadLibrary(ctx, store)
	if len(chance) != 1 {
		t.Fatalf("expected saved library of 1, got %d", len(chance))
	}
	if err := store.ResetToDefaults(ctx); err != nil {
		t.Fatal(err)
	}
	chance, _, _ = LoadLibrary(ctx, store)
	if len(chance) != len(DefaultChanceCards()) {
		t.Fatalf("reset did not restore defaults")
	}
}
