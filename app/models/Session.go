package models

type GameCreateDto struct {
	Players []PlayerDto `json:"players"`
}

type CommandDto struct {
	Command  string `json:"command"`
	PlayerId int    `json:"player_id"`
}

type LoginDto struct {
	Password string `json:"password"`
}

// SocketCommand is the payload of every socket.io game event.
type SocketCommand struct {
	Game_id   string `json:"game_id"`
	Player_id int    `json:"player_id"`
	Token     string `json:"token"`
}
