package board

import (
	_ "embed"
	"encoding/json"
	"errors"

	"github.com/DedS3t/drinkopoly-backend/app/models"
)

const Size = 40

//go:embed properties.json
var propertiesJson []byte

var ErrNotFound = errors.New("not found")

// LoadProperties returns a fresh copy of the default board, every square unowned.
func LoadProperties() []models.Square {
	var properties []models.Square
	if err := json.Unmarshal(propertiesJson, &properties); err != nil {
		panic(err)
	}
	if len(properties) != Size {
		panic("board must have 40 squares")
	}
	return properties
}

func GetByPos(pos int, properties []models.Square) (models.Square, error) {
	if pos < 0 || pos >= len(properties) {
		return models.Square{}, ErrNotFound
	}
	return properties[pos], nil
}

func GetById(id int, properties []models.Square) (models.Square, error) { // O(N) time complexity
	for _, property := range properties {
		if property.Id == id {
			return property, nil
		}
	}
	return models.Square{}, ErrNotFound
}

// Wrap maps any step count onto the loop.
func Wrap(pos int) int {
	pos %= Size
	if pos < 0 {
		pos += Size
	}
	return pos
}

// Difficulty is the one-die score needed to buy the square: 2 on the first
// row up to 5 on the last one.
func Difficulty(squareId int) int {
	switch {
	case squareId <= 10:
		return 2
	case squareId <= 20:
		return 3
	case squareId <= 30:
		return 4
	}
	return 5
}

// CountOwnedBars counts the bars currently owned by ownerId.
func CountOwnedBars(ownerId int, properties []models.Square) int {
	count := 0
	for _, property := range properties {
		if property.Type == models.SquareBar && property.OwnerId == ownerId {
			count++
		}
	}
	return count
}

// NearestBarBackwards returns the position of the closest bar strictly behind
// pos, wrapping around to the last bar of the board.
func NearestBarBackwards(pos int, properties []models.Square) int {
	for i := 1; i <= len(properties); i++ {
		candidate := Wrap(pos - i)
		if properties[candidate].Type == models.SquareBar {
			return candidate
		}
	}
	return pos
}

// ReleaseOwner clears ownerId from every square it holds.
func ReleaseOwner(ownerId int, properties []models.Square) {
	for i := range properties {
		if properties[i].OwnerId == ownerId {
			properties[i].OwnerId = 0
		}
	}
}

func SetOwner(squareId int, ownerId int, properties []models.Square) bool {
	for i := range properties {
		if properties[i].Id == squareId {
			properties[i].OwnerId = ownerId
			return true
		}
	}
	return false
}
