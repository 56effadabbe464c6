package events

import "encoding/json"

// Inbound event names, as sent by the browser client.
const (
	JoinRoom   = "bingo:join"
	ChooseSide = "chooseSide"
	Drop       = "bingo:drop"
	Reset      = "bingo:reset"

	ChatJoinRoom = "chat:join-room"
	ChatSend     = "chat:send-message"

	Ping = "ping"
)

// Outbound event names.
const (
	Joined         = "joined"
	PlayerAssigned = "playerAssigned"
	SideTaken      = "sideTaken"
	PlayersUpdate  = "playersUpdate"
	GameStart      = "gameStart"
	Dropped        = "droped" // historical spelling, clients match on it
	GameOver       = "gameOver"
	GameReset      = "gameReset"

	NewMessage = "new-message"
	Pong       = "pong"
)

// Envelope is the frame exchanged on the socket in both directions.
// Data is left raw on the way in so each handler decodes its own payload.
type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// Message is an outbound frame with an already-shaped payload.
type Message struct {
	Event string `json:"event"`
	Data  any    `json:"data,omitempty"`
}

type JoinRoomPayload struct {
	RoomID string `json:"roomId"`
	Name   string `json:"name"`
}

type ChooseSidePayload struct {
	RoomID string `json:"roomId"`
	Role   string `json:"role"`
	Name   string `json:"name"`
}

type DropPayload struct {
	Room string `json:"room"`
	Col  int    `json:"col"`
}

type ResetPayload struct {
	RoomID string `json:"roomId"`
}

// Player is the wire form of a seated player.
type Player struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

type AssignedPayload struct {
	Role string `json:"role"`
}

type GameStartPayload struct {
	CurrentPlayer string   `json:"currentPlayer"`
	Players       []Player `json:"players"`
}

type DroppedPayload struct {
	Col           int    `json:"col"`
	Index         int    `json:"index"`
	Player        string `json:"player"`
	CurrentPlayer string `json:"currentPlayer"`
}

type GameOverPayload struct {
	Winner         string `json:"winner"`
	WinningIndexes []int  `json:"winningIndexes"`
}

type ChatSendPayload struct {
	RoomID  string `json:"roomId"`
	Message string `json:"message"`
	Sender  string `json:"sender"`
}

type NewMessagePayload struct {
	Sender  string `json:"sender"`
	Message string `json:"message"`
	Time    int64  `json:"time"`
}

type PongPayload struct {
	Message string `json:"message"`
	Time    int64  `json:"time"`
}
