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

// Package event defines the messages fanned out to real-time
// subscribers of a server.
package event

import "time"

const (
	ServerStatus  = "server-status"
	ServerLog     = "server-log"
	CommandOutput = "command-output"
)

// Publisher delivers an event to every subscriber of serverID.
// implementations must not block on slow subscribers.
type Publisher interface {
	Publish(serverID, name string, payload any)
}

type StatusPayload struct {
	ServerID string `json:"serverId"`
	Status   string `json:"status"`
}

type LogPayload struct {
	ServerID  string    `json:"serverId"`
	Timestamp time.Time `json:"timestamp"`
	Level     string    `json:"level"`
	Message   string    `json:"message"`
}

type CommandOutputPayload struct {
	ServerID string `json:"serverId,omitempty"`
	Command  string `json:"command"`
	Output   string `json:"output"`
	Error    bool   `json:"error,omitempty"`
}

// Discard drops every event.
var Discard Publisher = discard{}

type discard struct{}

func (discard) Publish(string, string, any) {}
