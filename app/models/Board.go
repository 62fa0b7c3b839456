package models

type SquareType string

const (
	SquareStart      SquareType = "START"
	SquareProperty   SquareType = "PROPERTY"
	SquareBar        SquareType = "BAR"
	SquareChance     SquareType = "CHANCE"
	SquareMiniGame   SquareType = "MINIGAME"
	SquareFillBasin  SquareType = "FILL_BASIN"
	SquareDrinkBasin SquareType = "DRINK_BASIN"
	SquareVisitOnly  SquareType = "VISIT_ONLY"
	SquareGoToJail   SquareType = "GO_TO_JAIL"
	SquareKidsArea   SquareType = "KIDS_AREA"
)

// BarFamily is the family marker shared by every bar square.
const BarFamily = 99

type Square struct {
	Id      int        `json:"id"` // 1..40, position is Id-1
	Name    string     `json:"name"`
	Type    SquareType `json:"type"`
	Family  int        `json:"family,omitempty"`
	Price   int        `json:"price,omitempty"`
	OwnerId int        `json:"owner_id,omitempty"` // 0 means unowned
}

func (s Square) IsBuyable() bool {
	return s.Type == SquareProperty || s.Type == SquareBar
}

func (s Square) IsOwned() bool {
	return s.OwnerId != 0
}
