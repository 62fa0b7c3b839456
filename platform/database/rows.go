package database

import "github.com/DedS3t/drinkopoly-backend/app/models"

type cardRow struct {
	tableName struct{} `pg:"cards"`

	Id           int    `pg:",pk"`
	Text         string `pg:",notnull"`
	Type         string `pg:",notnull"`
	IsActive     bool   `pg:",use_zero,notnull"`
	EffectKind   string
	EffectTarget int `pg:",use_zero"`
	EffectSteps  int `pg:",use_zero"`
}

func toRow(card models.Card) cardRow {
	return cardRow{
		Id:           card.Id,
		Text:         card.Text,
		Type:         string(card.Type),
		IsActive:     card.IsActive,
		EffectKind:   string(card.Effect.Kind),
		EffectTarget: card.Effect.Target,
		EffectSteps:  card.Effect.Steps,
	}
}

func (r cardRow) card() models.Card {
	kind := models.EffectKind(r.EffectKind)
	if kind == "" {
		kind = models.EffectNone
	}
	return models.Card{
		Id:       r.Id,
		Text:     r.Text,
		Type:     models.CardType(r.Type),
		IsActive: r.IsActive,
		Effect: models.CardEffect{
			Kind:   kind,
			Target: r.EffectTarget,
			Steps:  r.EffectSteps,
		},
	}
}

func toCards(rows []cardRow) []models.Card {
	cards := make([]models.Card, len(rows))
	for i, row := range rows {
		cards[i] = row.card()
	}
	return cards
}
