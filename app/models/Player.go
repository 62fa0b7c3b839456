package models

type Player struct {
	Id          int    `json:"id"`
	Name        string `json:"name"`
	Avatar      string `json:"avatar"`
	Color       string `json:"color"`
	Position    int    `json:"position"`
	InPrison    bool   `json:"in_prison"`
	PrisonTurns int    `json:"prison_turns"`
	OwnedCases  []int  `json:"owned_cases"`
	DrinksTaken int    `json:"drinks_taken"`
	DrinksGiven int    `json:"drinks_given"`
}

func (p Player) Owns(squareId int) bool {
	for _, id := range p.OwnedCases {
		if id == squareId {
			return true
		}
	}
	return false
}

// PlayerDto is a roster entry sent when a game starts.
type PlayerDto struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}
