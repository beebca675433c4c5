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

package realtime_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
	"github.com/whatahelll/wings/wings/event"
	"github.com/whatahelll/wings/wings/realtime"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

type envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return conn
}

func send(t *testing.T, conn *websocket.Conn, name string, data any) {
	t.Helper()
	require.NoError(t, conn.WriteJSON(map[string]any{"event": name, "data": data}))
}

func read(t *testing.T, conn *websocket.Conn) envelope {
	t.Helper()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))

	var env envelope
	require.NoError(t, conn.ReadJSON(&env))
	return env
}

func waitSubscribers(t *testing.T, hub *realtime.Hub, serverID string, n int) {
	t.Helper()
	require.Eventually(t, func() bool {
		return hub.Subscribers(serverID) == n
	}, 2*time.Second, 5*time.Millisecond)
}

func TestHubRoomsScopeEvents(t *testing.T) {
	hub := realtime.NewHub(discardLogger, nil)
	srv := httptest.NewServer(hub)
	defer srv.Close()
	defer hub.Close()

	var (
		s1 = dial(t, srv)
		s2 = dial(t, srv)
	)

	send(t, s1, realtime.JoinServer, "s1")
	send(t, s2, realtime.JoinServer, "s2")
	waitSubscribers(t, hub, "s1", 1)
	waitSubscribers(t, hub, "s2", 1)

	hub.Publish("s1", event.ServerStatus, event.StatusPayload{ServerID: "s1", Status: "online"})
	hub.Publish("s2", event.ServerStatus, event.StatusPayload{ServerID: "s2", Status: "offline"})

	got := read(t, s1)
	require.Equal(t, event.ServerStatus, got.Event)
	require.JSONEq(t, `{"serverId":"s1","status":"online"}`, string(got.Data))

	got = read(t, s2)
	require.JSONEq(t, `{"serverId":"s2","status":"offline"}`, string(got.Data))
}

func TestHubLeave(t *testing.T) {
	hub := realtime.NewHub(discardLogger, nil)
	srv := httptest.NewServer(hub)
	defer srv.Close()
	defer hub.Close()

	conn := dial(t, srv)

	send(t, conn, realtime.JoinServer, "s1")
	waitSubscribers(t, hub, "s1", 1)

	send(t, conn, realtime.LeaveServer, "s1")
	waitSubscribers(t, hub, "s1", 0)
}

func TestHubDisconnectLeavesRooms(t *testing.T) {
	hub := realtime.NewHub(discardLogger, nil)
	srv := httptest.NewServer(hub)
	defer srv.Close()
	defer hub.Close()

	conn := dial(t, srv)
	send(t, conn, realtime.JoinServer, "s1")
	waitSubscribers(t, hub, "s1", 1)

	require.NoError(t, conn.Close())
	waitSubscribers(t, hub, "s1", 0)
}

func TestHubSendCommand(t *testing.T) {
	var (
		mu   sync.Mutex
		got  []string
		hub  *realtime.Hub
		fail = errors.New("server is not running")
	)

	hub = realtime.NewHub(discardLogger, realtime.CommanderFunc(func(_ context.Context, serverID, command string) error {
		mu.Lock()
		got = append(got, serverID+":"+command)
		mu.Unlock()

		if command == "stop" {
			return fail
		}
		hub.Publish(serverID, event.CommandOutput, event.CommandOutputPayload{
			ServerID: serverID,
			Command:  command,
			Output:   "Command sent: " + command,
		})
		return nil
	}))

	srv := httptest.NewServer(hub)
	defer srv.Close()
	defer hub.Close()

	conn := dial(t, srv)
	send(t, conn, realtime.JoinServer, "s1")
	waitSubscribers(t, hub, "s1", 1)

	send(t, conn, realtime.SendCommand, map[string]string{"serverId": "s1", "command": "list"})
	env := read(t, conn)
	require.Equal(t, event.CommandOutput, env.Event)
	require.JSONEq(t, `{"serverId":"s1","command":"list","output":"Command sent: list"}`, string(env.Data))

	send(t, conn, realtime.SendCommand, map[string]string{"serverId": "s1", "command": "stop"})
	env = read(t, conn)
	require.JSONEq(t, `{"command":"stop","output":"server is not running","error":true}`, string(env.Data))

	mu.Lock()
	defer mu.Unlock()
	require.Equal(t, []string{"s1:list", "s1:stop"}, got)
}
