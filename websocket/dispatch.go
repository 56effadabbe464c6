package websocket

import (
	"encoding/json"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/BuraphaS/first-socket-backend/events"
	"github.com/BuraphaS/first-socket-backend/game"
)

func (h *Handler) dispatch(c *Client, env events.Envelope) {
	switch env.Event {
	case events.JoinRoom:
		var p events.JoinRoomPayload
		if err := json.Unmarshal(env.Data, &p); err != nil || p.RoomID == "" {
			return
		}
		h.hub.Join(p.RoomID, c)
		h.svc.Join(p.RoomID, c.id)

	case events.ChooseSide:
		var p events.ChooseSidePayload
		if err := json.Unmarshal(env.Data, &p); err != nil || p.RoomID == "" {
			return
		}
		// Subscribe before the roster broadcast so the requester sees it,
		// but only when the room already exists.
		if _, ok := h.rooms.Get(p.RoomID); ok {
			h.hub.Join(p.RoomID, c)
		}
		h.svc.ChooseSide(p.RoomID, game.Seat(p.Role), p.Name, c.id)

	case events.Drop:
		var p events.DropPayload
		if err := json.Unmarshal(env.Data, &p); err != nil || p.Room == "" {
			return
		}
		h.svc.Drop(p.Room, p.Col, c.id)

	case events.Reset:
		var p events.ResetPayload
		if err := json.Unmarshal(env.Data, &p); err != nil || p.RoomID == "" {
			return
		}
		h.svc.Reset(p.RoomID, c.id)

	case events.ChatJoinRoom:
		// Chat join carries the room key as a bare string.
		var roomID string
		if err := json.Unmarshal(env.Data, &roomID); err != nil || roomID == "" {
			return
		}
		h.hub.Join(roomID, c)
		c.send(events.Joined, roomID)

	case events.ChatSend:
		var p events.ChatSendPayload
		if err := json.Unmarshal(env.Data, &p); err != nil || p.RoomID == "" {
			return
		}
		h.hub.ToRoom(p.RoomID, events.NewMessage, events.NewMessagePayload{
			Sender:  p.Sender,
			Message: p.Message,
			Time:    time.Now().UnixMilli(),
		})

	case events.Ping:
		c.send(events.Pong, events.PongPayload{
			Message: "pong",
			Time:    time.Now().UnixMilli(),
		})

	default:
		log.Warn().Str("connID", c.id).Str("event", env.Event).Msg("Unknown event")
	}
}
