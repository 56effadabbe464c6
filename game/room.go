package game

import (
	"sync"
	"time"

	"github.com/samber/lo"

	"github.com/BuraphaS/first-socket-backend/events"
)

// Player is a seated participant. ID is the current connection id and is
// rebound when the same display name reconnects.
type Player struct {
	ID   string
	Name string
	Role Seat
}

// Room holds one session's mutable state. All access goes through mu; the
// Service keeps the lock for a whole read-modify-write including the
// broadcasts it triggers, so room events reach the hub in a single order.
type Room struct {
	mu sync.Mutex

	board       Board
	players     []*Player
	currentTurn Seat
	winner      Seat
	winningLine []int

	lastActivity time.Time
}

func newRoom() *Room {
	return &Room{
		board:        NewBoard(),
		lastActivity: time.Now(),
	}
}

func (r *Room) touch() {
	r.lastActivity = time.Now()
}

func (r *Room) playerByName(name string) (*Player, bool) {
	return lo.Find(r.players, func(p *Player) bool { return p.Name == name })
}

func (r *Room) playerByConn(connID string) (*Player, bool) {
	return lo.Find(r.players, func(p *Player) bool { return p.ID == connID })
}

func (r *Room) seatTaken(role Seat) bool {
	return lo.SomeBy(r.players, func(p *Player) bool { return p.Role == role })
}

// startGame re-initializes board and turn state once both seats are filled.
func (r *Room) startGame() {
	r.board = NewBoard()
	r.currentTurn = SeatP1
	r.winner = SeatNone
	r.winningLine = nil
}

// clear wipes the room back to its just-created state, roster included.
func (r *Room) clear() {
	r.board = NewBoard()
	r.players = nil
	r.currentTurn = SeatNone
	r.winner = SeatNone
	r.winningLine = nil
}

func (r *Room) roster() []events.Player {
	return lo.Map(r.players, func(p *Player, _ int) events.Player {
		return events.Player{ID: p.ID, Name: p.Name, Role: string(p.Role)}
	})
}
