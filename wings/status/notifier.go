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

package status

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/whatahelll/wings/wings/event"
)

const DefaultSinkTimeout = 10 * time.Second

// Sink is an external system of record for status transitions.
type Sink interface {
	Notify(ctx context.Context, serverID string, s Status) error
}

// Notifier broadcasts transitions to local subscribers and, in the
// background, to an optional Sink. Announce never blocks on the sink
// and never fails. the sink sees the transitions of one server in
// announce order.
type Notifier struct {
	logger  *slog.Logger
	pub     event.Publisher
	sink    Sink
	timeout time.Duration
	wg      sync.WaitGroup

	mu sync.Mutex
	// tails holds the completion channel of the last queued sink
	// call per server.
	tails map[string]chan struct{}
}

func NewNotifier(logger *slog.Logger, pub event.Publisher, sink Sink, timeout time.Duration) *Notifier {
	if timeout <= 0 {
		timeout = DefaultSinkTimeout
	}
	return &Notifier{
		logger:  logger.With("component", "status-notifier"),
		pub:     pub,
		sink:    sink,
		timeout: timeout,
		tails:   make(map[string]chan struct{}),
	}
}

func (n *Notifier) Announce(ctx context.Context, serverID string, s Status) {
	n.logger.InfoContext(ctx, "status changed", "server_id", serverID, "status", s)

	n.pub.Publish(serverID, event.ServerStatus, event.StatusPayload{
		ServerID: serverID,
		Status:   string(s),
	})

	if n.sink == nil {
		return
	}

	// the sink call must outlive the caller's request.
	sinkCtx := context.WithoutCancel(ctx)

	n.mu.Lock()
	prev := n.tails[serverID]
	done := make(chan struct{})
	n.tails[serverID] = done
	n.mu.Unlock()

	n.wg.Add(1)
	go func() {
		defer n.wg.Done()
		defer func() {
			close(done)
			n.mu.Lock()
			if n.tails[serverID] == done {
				delete(n.tails, serverID)
			}
			n.mu.Unlock()
		}()

		if prev != nil {
			<-prev
		}

		n.notify(sinkCtx, serverID, s)
	}()
}

func (n *Notifier) notify(ctx context.Context, serverID string, s Status) {
	ctx, cancel := context.WithTimeout(ctx, n.timeout)
	defer cancel()

	if err := n.sink.Notify(ctx, serverID, s); err != nil {
		n.logger.WarnContext(ctx, "failed to notify status sink",
			"server_id", serverID,
			"status", s,
			"err", err,
		)
	}
}

// Wait blocks until all in-flight sink notifications are done.
func (n *Notifier) Wait() {
	n.wg.Wait()
}
