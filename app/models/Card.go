package models

type CardType string

const (
	CardChance   CardType = "CHANCE"
	CardMiniGame CardType = "MINIGAME"
)

type EffectKind string

const (
	EffectNone           EffectKind = "none"
	EffectTeleport       EffectKind = "teleport"        // move to Target, then resolve the square
	EffectTeleportNoBuy  EffectKind = "teleport-no-buy" // move to Target, pay rent if owned by someone else
	EffectNearestBarBack EffectKind = "nearest-bar-back"
	EffectRetreat        EffectKind = "retreat" // move back Steps squares, then resolve
	EffectJail           EffectKind = "jail"
	EffectSwapPosition   EffectKind = "swap-position"
	EffectSwapIdentity   EffectKind = "swap-identity"
	EffectSteal          EffectKind = "steal"
	EffectChase          EffectKind = "chase"
	EffectReplay         EffectKind = "replay"
)

type CardEffect struct {
	Kind   EffectKind `json:"kind"`
	Target int        `json:"target,omitempty"` // board position for teleports
	Steps  int        `json:"steps,omitempty"`
}

type Card struct {
	Id       int        `json:"id"`
	Text     string     `json:"text"`
	Type     CardType   `json:"type"`
	IsActive bool       `json:"is_active"`
	Effect   CardEffect `json:"effect"`
}

// NoCardsLeftId identifies the sentinel card returned when both stacks are empty.
const NoCardsLeftId = 0

func NoCardsLeft() Card {
	return Card{
		Id:       NoCardsLeftId,
		Text:     "No cards left!",
		Type:     CardChance,
		IsActive: true,
		Effect:   CardEffect{Kind: EffectNone},
	}
}

type CardDto struct {
	Type   CardType   `json:"type"`
	Title  string     `json:"title"`
	Text   string     `json:"text"`
	Effect CardEffect `json:"effect"`
}
