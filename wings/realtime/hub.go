/*
 Explorer Platform, a platform for hosting and discovering Minecraft servers.
 Copyright (C) 2024 Yannic Rieger <oss@76k.io>

 This program is free software: you can redistribute it and/or modify
 it under the terms of the GNU Affero General Public License as published by
 the Free Software Foundation, either version 3 of the License, or
 (at your option) any later version.

 This program is distributed in the hope that it will be useful,
 but WITHOUT ANY WARRANTY; without even the implied warranty of
 MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 GNU Affero General Public License for more details.

 You should have received a copy of the GNU Affero General Public License
 along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/

package realtime

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/whatahelll/wings/wings/event"
)

const (
	JoinServer  = "join-server"
	LeaveServer = "leave-server"
	SendCommand = "send-command"

	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = pongWait * 9 / 10
	maxMessageSize = 64 * 1024
	sendBuffer     = 256
)

// Commander forwards commands from subscribers to a server.
type Commander interface {
	SendCommand(ctx context.Context, serverID, command string) error
}

type CommanderFunc func(ctx context.Context, serverID, command string) error

func (f CommanderFunc) SendCommand(ctx context.Context, serverID, command string) error {
	return f(ctx, serverID, command)
}

type message struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

type outgoing struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

type commandRequest struct {
	ServerID string `json:"serverId"`
	Command  string `json:"command"`
}

type client struct {
	id    string
	conn  *websocket.Conn
	send  chan []byte
	rooms map[string]struct{}
	once  sync.Once
}

func (c *client) close() {
	c.once.Do(func() {
		close(c.send)
	})
}

// Hub fans out events to websocket subscribers. subscribers join one
// room per server and receive every event published for it.
type Hub struct {
	logger    *slog.Logger
	commander Commander
	upgrader  websocket.Upgrader

	mu      sync.RWMutex
	clients map[*client]struct{}
	rooms   map[string]map[*client]struct{}
}

var _ event.Publisher = (*Hub)(nil)

func NewHub(logger *slog.Logger, commander Commander) *Hub {
	return &Hub{
		logger:    logger.With("component", "realtime-hub"),
		commander: commander,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// the panel is served from another origin.
			CheckOrigin: func(*http.Request) bool { return true },
		},
		clients: make(map[*client]struct{}),
		rooms:   make(map[string]map[*client]struct{}),
	}
}

// Publish never blocks. subscribers that can not keep up lose
// events.
func (h *Hub) Publish(serverID, name string, payload any) {
	data, err := json.Marshal(outgoing{Event: name, Data: payload})
	if err != nil {
		h.logger.Error("failed to encode event", "event", name, "server_id", serverID, "err", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for c := range h.rooms[serverID] {
		select {
		case c.send <- data:
		default:
			h.logger.Warn("subscriber too slow, dropping event", "client_id", c.id, "server_id", serverID, "event", name)
		}
	}
}

// Subscribers returns the number of clients joined to serverID.
func (h *Hub) Subscribers(serverID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[serverID])
}

func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.WarnContext(r.Context(), "websocket upgrade failed", "err", err)
		return
	}

	c := &client{
		id:    uuid.New().String(),
		conn:  conn,
		send:  make(chan []byte, sendBuffer),
		rooms: make(map[string]struct{}),
	}

	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()

	h.logger.InfoContext(r.Context(), "subscriber connected", "client_id", c.id, "remote_addr", r.RemoteAddr)

	go h.writeLoop(c)
	h.readLoop(c)
}

func (h *Hub) join(c *client, serverID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	room, ok := h.rooms[serverID]
	if !ok {
		room = make(map[*client]struct{})
		h.rooms[serverID] = room
	}
	room[c] = struct{}{}
	c.rooms[serverID] = struct{}{}
}

func (h *Hub) leave(c *client, serverID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.leaveLocked(c, serverID)
}

func (h *Hub) leaveLocked(c *client, serverID string) {
	delete(c.rooms, serverID)
	if room, ok := h.rooms[serverID]; ok {
		delete(room, c)
		if len(room) == 0 {
			delete(h.rooms, serverID)
		}
	}
}

func (h *Hub) remove(c *client) {
	h.mu.Lock()
	for id := range c.rooms {
		h.leaveLocked(c, id)
	}
	delete(h.clients, c)
	h.mu.Unlock()

	c.close()
}

func (h *Hub) readLoop(c *client) {
	defer func() {
		h.remove(c)
		_ = c.conn.Close()
		h.logger.Info("subscriber disconnected", "client_id", c.id)
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var msg message
		if err := c.conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Warn("subscriber read failed", "client_id", c.id, "err", err)
			}
			return
		}
		h.handle(c, msg)
	}
}

func (h *Hub) handle(c *client, msg message) {
	switch msg.Event {
	case JoinServer, LeaveServer:
		var serverID string
		if err := json.Unmarshal(msg.Data, &serverID); err != nil || serverID == "" {
			h.logger.Debug("ignoring malformed room message", "client_id", c.id, "event", msg.Event)
			return
		}
		if msg.Event == JoinServer {
			h.join(c, serverID)
		} else {
			h.leave(c, serverID)
		}
		h.logger.Debug("room membership changed", "client_id", c.id, "event", msg.Event, "server_id", serverID)
	case SendCommand:
		var req commandRequest
		if err := json.Unmarshal(msg.Data, &req); err != nil {
			h.reply(c, event.CommandOutputPayload{Output: "malformed command request", Error: true})
			return
		}
		if h.commander == nil {
			return
		}
		// successful commands are announced to the room by the
		// commander itself.
		if err := h.commander.SendCommand(context.Background(), req.ServerID, req.Command); err != nil {
			h.reply(c, event.CommandOutputPayload{
				Command: req.Command,
				Output:  err.Error(),
				Error:   true,
			})
		}
	default:
		h.logger.Debug("ignoring unknown event", "client_id", c.id, "event", msg.Event)
	}
}

// reply sends an event to a single client.
func (h *Hub) reply(c *client, payload event.CommandOutputPayload) {
	data, err := json.Marshal(outgoing{Event: event.CommandOutput, Data: payload})
	if err != nil {
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	if _, ok := h.clients[c]; !ok {
		return
	}

	select {
	case c.send <- data:
	default:
	}
}

func (h *Hub) writeLoop(c *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case data, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// Close disconnects every subscriber.
func (h *Hub) Close() {
	h.mu.Lock()
	clients := make([]*client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.Unlock()

	for _, c := range clients {
		h.remove(c)
	}
}
