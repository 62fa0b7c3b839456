package models

type TurnState string

const (
	StartTurn          TurnState = "START_TURN"
	CheckPlayerStatus  TurnState = "CHECK_PLAYER_STATUS"
	PrisonTurn         TurnState = "PRISON_TURN"
	RollDice           TurnState = "ROLL_DICE"
	MovePlayer         TurnState = "MOVE_PLAYER"
	ResolveCase        TurnState = "RESOLVE_CASE"
	PropertyBuyAction  TurnState = "PROPERTY_BUY_ACTION"
	RentPaymentAction  TurnState = "RENT_PAYMENT_ACTION"
	SpecialEventAction TurnState = "SPECIAL_EVENT_ACTION"
	CardDrawAction     TurnState = "CARD_DRAW_ACTION"
	PostCaseActions    TurnState = "POST_CASE_ACTIONS"
	EndTurn            TurnState = "END_TURN"
)

// Continuation tells the engine what to do once a special event is dismissed.
type Continuation string

const (
	NoOp                 Continuation = "NO_OP"
	ContinueMovement     Continuation = "CONTINUE_MOVEMENT"
	ResumeCaseResolution Continuation = "RESUME_CASE_RESOLUTION"
	Replay               Continuation = "REPLAY"
)

type PurchaseResult string

const (
	PurchaseNone         PurchaseResult = ""
	PurchaseSuccess      PurchaseResult = "SUCCESS"
	PurchaseRetry        PurchaseResult = "RETRY"
	PurchaseFinalFailure PurchaseResult = "FINAL_FAILURE"
)

type SpecialEvent struct {
	Title        string       `json:"title"`
	Message      string       `json:"message"`
	Continuation Continuation `json:"continuation"`
	Steps        int          `json:"steps,omitempty"` // for ContinueMovement
}

// Turn holds the fields scoped to the in-flight turn. It is reset whenever
// the turn passes to another player.
type Turn struct {
	Die1               int            `json:"die1"`
	Die2               int            `json:"die2"`
	DiceResult         int            `json:"dice_result"`
	IsDouble           bool           `json:"is_double"`
	ReplayAvailable    bool           `json:"replay_available"`
	ConsecutiveDoubles int            `json:"consecutive_doubles"`
	PassedStart        bool           `json:"passed_start"`
	PurchaseAttempts   int            `json:"purchase_attempts"`
	PurchaseTarget     int            `json:"purchase_target"`
	LastPurchaseRoll   int            `json:"last_purchase_roll"`
	PurchaseResult     PurchaseResult `json:"purchase_result"`
	PendingRent        int            `json:"pending_rent"`
	CurrentCard        *Card          `json:"current_card,omitempty"`
	Event              *SpecialEvent  `json:"event,omitempty"`
}

type GameState struct {
	Players            []Player  `json:"players"`
	Board              []Square  `json:"board"`
	ChanceStack        []Card    `json:"chance_stack"`
	MiniGameStack      []Card    `json:"minigame_stack"`
	AllChanceCards     []Card    `json:"all_chance_cards"`
	AllMiniGameCards   []Card    `json:"all_minigame_cards"`
	CurrentPlayerIndex int       `json:"current_player_index"`
	TurnState          TurnState `json:"turn_state"`
	TurnNumber         int       `json:"turn_number"`
	GameOver           bool      `json:"game_over"`
	Turn               Turn      `json:"turn"`
	// Settling is set while a command for this game is being applied.
	Settling           bool      `json:"settling"`
}

// CurrentPlayer returns a placeholder when the roster is empty.
func (g GameState) CurrentPlayer() Player {
	if g.CurrentPlayerIndex < 0 || g.CurrentPlayerIndex >= len(g.Players) {
		return Player{Name: "?"}
	}
	return g.Players[g.CurrentPlayerIndex]
}

func (g GameState) PlayerIndex(id int) int {
	for idx, p := range g.Players {
		if p.Id == id {
			return idx
		}
	}
	return -1
}

// Clone deep-copies every slice so the copy can be mutated freely.
func (g GameState) Clone() GameState {
	c := g
	c.Players = make([]Player, len(g.Players))
	for i, p := range g.Players {
		p.OwnedCases = append([]int(nil), p.OwnedCases...)
		c.Players[i] = p
	}
	c.Board = append([]Square(nil), g.Board...)
	c.ChanceStack = append([]Card(nil), g.ChanceStack...)
	c.MiniGameStack = append([]Card(nil), g.MiniGameStack...)
	c.AllChanceCards = append([]Card(nil), g.AllChanceCards...)
	c.AllMiniGameCards = append([]Card(nil), g.AllMiniGameCards...)
	if g.Turn.CurrentCard != nil {
		card := *g.Turn.CurrentCard
		c.Turn.CurrentCard = &card
	}
	if g.Turn.Event != nil {
		ev := *g.Turn.Event
		c.Turn.Event = &ev
	}
	return c
}
