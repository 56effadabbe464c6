package game

import (
	"github.com/rs/zerolog/log"

	"github.com/BuraphaS/first-socket-backend/events"
)

// Broadcaster is the outbound side of the transport: targeted emission to a
// single connection and fan-out to every connection joined to a room.
type Broadcaster interface {
	ToConnection(connID string, event string, payload any)
	ToRoom(roomKey string, event string, payload any)
}

// Service applies inbound game events to rooms. Illegal requests are dropped
// silently; the only targeted rejection is sideTaken (see ChooseSide).
type Service struct {
	rooms *Registry
	port  Broadcaster
}

func NewService(rooms *Registry, port Broadcaster) *Service {
	return &Service{rooms: rooms, port: port}
}

// Join creates the room on first contact and acknowledges the requester.
// Room membership itself is the transport's concern.
func (s *Service) Join(roomKey, connID string) {
	room := s.rooms.GetOrCreate(roomKey)

	room.mu.Lock()
	room.touch()
	room.mu.Unlock()

	s.port.ToConnection(connID, events.Joined, nil)
}

// ChooseSide seats the requester, with three outcomes: a display name that is
// already seated reconnects (connection id rebound, requested role ignored), a
// role held by someone else is rejected to the requester only, otherwise the
// seat is taken. Filling the second seat starts the game with p1 to move.
func (s *Service) ChooseSide(roomKey string, role Seat, name, connID string) {
	room, ok := s.rooms.Get(roomKey)
	if !ok {
		return
	}

	room.mu.Lock()
	defer room.mu.Unlock()
	room.touch()

	if existing, ok := room.playerByName(name); ok {
		existing.ID = connID
		log.Info().Str("room", roomKey).Str("name", name).Msg("Player reconnected")
		s.port.ToConnection(connID, events.PlayerAssigned, events.AssignedPayload{Role: string(existing.Role)})
		s.port.ToRoom(roomKey, events.PlayersUpdate, room.roster())
		return
	}

	if role != SeatP1 && role != SeatP2 {
		return
	}

	if room.seatTaken(role) {
		s.port.ToConnection(connID, events.SideTaken, string(role))
		return
	}

	room.players = append(room.players, &Player{ID: connID, Name: name, Role: role})
	log.Info().Str("room", roomKey).Str("name", name).Str("role", string(role)).Msg("Seat assigned")
	s.port.ToConnection(connID, events.PlayerAssigned, events.AssignedPayload{Role: string(role)})
	s.port.ToRoom(roomKey, events.PlayersUpdate, room.roster())

	if len(room.players) == 2 {
		room.startGame()
		log.Info().Str("room", roomKey).Msg("Game started")
		s.port.ToRoom(roomKey, events.GameStart, events.GameStartPayload{
			CurrentPlayer: string(room.currentTurn),
			Players:       room.roster(),
		})
	}
}

// Drop places the mover's piece in the lowest empty cell of col. Any failed
// precondition, including a full column, is a silent no-op. On a winning move
// the turn is not advanced, so the droped event reports the winner's seat as
// currentPlayer.
func (s *Service) Drop(roomKey string, col int, connID string) {
	room, ok := s.rooms.Get(roomKey)
	if !ok {
		return
	}

	room.mu.Lock()
	defer room.mu.Unlock()
	room.touch()

	if room.winner != SeatNone || room.currentTurn == SeatNone {
		return
	}
	player, ok := room.playerByConn(connID)
	if !ok || player.Role != room.currentTurn {
		return
	}
	if col < 0 || col >= Cols {
		return
	}

	for r := Rows - 1; r >= 0; r-- {
		index := r*Cols + col
		if room.board[index] != SeatNone {
			continue
		}
		room.board[index] = player.Role

		if line := CheckWin(room.board, index); line != nil {
			room.winner = player.Role
			room.winningLine = line
			log.Info().Str("room", roomKey).Str("winner", string(player.Role)).Ints("line", line).Msg("Game over")
			s.port.ToRoom(roomKey, events.GameOver, events.GameOverPayload{
				Winner:         string(room.winner),
				WinningIndexes: line,
			})
		} else {
			room.currentTurn = room.currentTurn.Other()
		}

		s.port.ToRoom(roomKey, events.Dropped, events.DroppedPayload{
			Col:           col,
			Index:         index,
			Player:        string(player.Role),
			CurrentPlayer: string(room.currentTurn),
		})
		return
	}
}

// Reset wipes the room, roster included, so both seats must be re-chosen.
// Only a currently seated connection may reset.
func (s *Service) Reset(roomKey, connID string) {
	room, ok := s.rooms.Get(roomKey)
	if !ok {
		return
	}

	room.mu.Lock()
	defer room.mu.Unlock()
	room.touch()

	if _, ok := room.playerByConn(connID); !ok {
		return
	}

	room.clear()
	log.Info().Str("room", roomKey).Msg("Room reset")
	s.port.ToRoom(roomKey, events.GameReset, nil)
}
