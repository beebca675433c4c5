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

package observe

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/whatahelll/wings/wings/event"
)

// Observer receives the output of a running server container. every
// chunk is published as a log event and checked for readiness.
type Observer struct {
	logger   *slog.Logger
	serverID string
	pub      event.Publisher
	ready    func(chunk string) bool
	onReady  func()
	latch    bool
	fired    atomic.Bool
	now      func() time.Time
}

type ObserverOptions struct {
	ServerID string
	// Ready reports whether a chunk signals readiness.
	Ready    func(chunk string) bool
	// OnReady is called for every chunk Ready matches. with Latch set,
	// it is only called for the first one.
	OnReady  func()

	Latch bool
	Now   func() time.Time
}

func NewObserver(logger *slog.Logger, pub event.Publisher, opts ObserverOptions) *Observer {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Observer{
		logger:   logger.With("component", "observer", "server_id", opts.ServerID),
		serverID: opts.ServerID,
		pub:      pub,
		ready:    opts.Ready,
		onReady:  opts.OnReady,
		latch:    opts.Latch,
		now:      opts.Now,
	}
}

func (o *Observer) Write(p []byte) (int, error) {
	chunk := string(p)

	o.logger.Debug("server output", "output", chunk)
	o.pub.Publish(o.serverID, event.ServerLog, event.LogPayload{
		ServerID:  o.serverID,
		Timestamp: o.now(),
		Level:     LevelInfo,
		Message:   chunk,
	})

	if o.ready == nil || !o.ready(chunk) {
		return len(p), nil
	}

	if o.latch && o.fired.Swap(true) {
		return len(p), nil
	}

	if o.onReady != nil {
		o.onReady()
	}

	return len(p), nil
}

// InstallWriter forwards install container output as info level
// log events.
type InstallWriter struct {
	ctx      context.Context
	logger   *slog.Logger
	serverID string
	pub      event.Publisher
	now      func() time.Time
}

func NewInstallWriter(ctx context.Context, logger *slog.Logger, pub event.Publisher, serverID string) *InstallWriter {
	return &InstallWriter{
		ctx:      ctx,
		logger:   logger.With("component", "installer", "server_id", serverID),
		serverID: serverID,
		pub:      pub,
		now:      time.Now,
	}
}

func (w *InstallWriter) Write(p []byte) (int, error) {
	chunk := string(p)

	w.logger.InfoContext(w.ctx, "install output", "output", chunk)
	w.pub.Publish(w.serverID, event.ServerLog, event.LogPayload{
		ServerID:  w.serverID,
		Timestamp: w.now(),
		Level:     LevelInfo,
		Message:   chunk,
	})

	return len(p), nil
}
