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

package test

import (
	"sync"
	"testing"
	"time"

	"github.com/whatahelll/wings/wings/event"
)

type Event struct {
	ServerID string
	Name     string
	Payload  any
}

// Recorder is an event.Publisher that keeps everything published.
type Recorder struct {
	mu     sync.Mutex
	events []Event
	notify chan struct{}
}

var _ event.Publisher = (*Recorder)(nil)

func NewRecorder() *Recorder {
	return &Recorder{
		notify: make(chan struct{}, 1),
	}
}

func (r *Recorder) Publish(serverID, name string, payload any) {
	r.mu.Lock()
	r.events = append(r.events, Event{ServerID: serverID, Name: name, Payload: payload})
	r.mu.Unlock()

	select {
	case r.notify <- struct{}{}:
	default:
	}
}

func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}

// Statuses returns the published status transitions in order.
func (r *Recorder) Statuses() []string {
	var ret []string
	for _, e := range r.Events() {
		if p, ok := e.Payload.(event.StatusPayload); ok {
			ret = append(ret, p.Status)
		}
	}
	return ret
}

// WaitFor blocks until cond holds for the recorded events or fails
// the test after timeout.
func (r *Recorder) WaitFor(t *testing.T, timeout time.Duration, cond func(events []Event) bool) {
	t.Helper()

	deadline := time.After(timeout)
	for {
		if cond(r.Events()) {
			return
		}
		select {
		case <-r.notify:
		case <-time.After(10 * time.Millisecond):
		case <-deadline:
			t.Fatalf("condition not met within %v, events: %+v", timeout, r.Events())
		}
	}
}
