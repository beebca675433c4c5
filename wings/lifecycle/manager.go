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

package lifecycle

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/moby/locker"
	"github.com/whatahelll/wings/wings/egg"
	"github.com/whatahelll/wings/wings/environment"
	wingserrors "github.com/whatahelll/wings/wings/errors"
	"github.com/whatahelll/wings/wings/event"
	"github.com/whatahelll/wings/wings/game"
	"github.com/whatahelll/wings/wings/gameserver"
	"github.com/whatahelll/wings/wings/install"
	"github.com/whatahelll/wings/wings/observe"
	"github.com/whatahelll/wings/wings/runtime"
	"github.com/whatahelll/wings/wings/stats"
	"github.com/whatahelll/wings/wings/status"
)

const (
	DefaultStopTimeout  = 10 * time.Second
	DefaultRestartDelay = 2 * time.Second
	DefaultLogLines     = 100
)

type Config struct {
	DataDir      string
	StopTimeout  time.Duration
	RestartDelay time.Duration
	// ReadinessLatch limits the online announcement to the first
	// matching chunk of a run.
	ReadinessLatch bool
}

// Manager drives the lifecycle of server containers. it keeps no
// record of what is running, every operation asks the runtime.
// operations on the same server are serialized.
type Manager struct {
	logger   *slog.Logger
	cfg      Config
	rt       runtime.Service
	configs  gameserver.Store
	eggs     egg.Loader
	games    *game.Registry
	pipeline *install.Pipeline
	notifier *status.Notifier
	pub      event.Publisher
	locks    *locker.Locker
	now      func() time.Time

	streamsMu sync.Mutex
	streams   map[string]*stream
	streamsWg sync.WaitGroup
}

type stream struct {
	io.ReadCloser
}

func NewManager(
	logger *slog.Logger,
	cfg Config,
	rt runtime.Service,
	configs gameserver.Store,
	eggs egg.Loader,
	games *game.Registry,
	notifier *status.Notifier,
	pub event.Publisher,
) *Manager {
	if cfg.StopTimeout <= 0 {
		cfg.StopTimeout = DefaultStopTimeout
	}
	if cfg.RestartDelay < 0 {
		cfg.RestartDelay = 0
	}
	return &Manager{
		logger:   logger.With("component", "lifecycle-manager"),
		cfg:      cfg,
		rt:       rt,
		configs:  configs,
		eggs:     eggs,
		games:    games,
		pipeline: install.NewPipeline(logger, rt, pub, notifier),
		notifier: notifier,
		pub:      pub,
		locks:    locker.New(),
		now:      time.Now,
		streams:  make(map[string]*stream),
	}
}

// ServerDir is the host directory bind mounted into the containers
// of serverID.
func (m *Manager) ServerDir(serverID string) string {
	return filepath.Join(m.cfg.DataDir, "servers", serverID)
}

func (m *Manager) lock(serverID string) func() {
	m.locks.Lock(serverID)
	return func() {
		_ = m.locks.Unlock(serverID)
	}
}

// Configure persists cfg and creates the working directory of the
// server.
func (m *Manager) Configure(ctx context.Context, cfg gameserver.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	defer m.lock(cfg.ServerID)()

	if err := m.configs.Save(ctx, cfg); err != nil {
		return fmt.Errorf("save config: %w", err)
	}

	if err := os.MkdirAll(m.ServerDir(cfg.ServerID), 0o755); err != nil {
		return fmt.Errorf("create server dir: %w", err)
	}

	m.logger.InfoContext(ctx, "server configured", "server_id", cfg.ServerID, "egg_id", cfg.EggID, "game", cfg.GameKey())
	return nil
}

type target struct {
	cfg      gameserver.Config
	egg      egg.Egg
	provider game.Provider
}

// load reads the config and egg of serverID. eggs are read fresh on
// every call.
func (m *Manager) load(ctx context.Context, serverID string) (target, error) {
	if !gameserver.ValidID(serverID) {
		return target{}, wingserrors.ErrInvalidServerID
	}

	cfg, err := m.configs.Get(ctx, serverID)
	if err != nil {
		return target{}, err
	}

	e, err := m.eggs.Load(cfg.EggID)
	if err != nil {
		return target{}, err
	}

	return target{
		cfg:      cfg,
		egg:      e,
		provider: m.games.Get(cfg.GameKey()),
	}, nil
}

func (m *Manager) find(ctx context.Context, serverID string) (*runtime.Container, error) {
	if !gameserver.ValidID(serverID) {
		return nil, wingserrors.ErrInvalidServerID
	}

	c, err := m.rt.FindServerContainer(ctx, serverID)
	if err != nil {
		return nil, fmt.Errorf("find server container: %w", err)
	}

	return c, nil
}

func (m *Manager) Install(ctx context.Context, serverID string) error {
	if !gameserver.ValidID(serverID) {
		return wingserrors.ErrInvalidServerID
	}

	defer m.lock(serverID)()

	t, err := m.load(ctx, serverID)
	if err != nil {
		return err
	}

	c, err := m.find(ctx, serverID)
	if err != nil {
		return err
	}

	if c != nil && c.Running() {
		return wingserrors.ErrAlreadyRunning
	}

	m.notifier.Announce(ctx, serverID, status.Installing)

	dir := m.ServerDir(serverID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.notifier.Announce(ctx, serverID, status.InstallFailed)
		return fmt.Errorf("create server dir: %w", err)
	}

	return m.pipeline.Run(ctx, install.Request{
		Config:    t.cfg,
		Egg:       t.egg,
		Provider:  t.provider,
		ServerDir: dir,
	})
}

func (m *Manager) Start(ctx context.Context, serverID string) error {
	if !gameserver.ValidID(serverID) {
		return wingserrors.ErrInvalidServerID
	}

	defer m.lock(serverID)()

	return m.start(ctx, serverID)
}

// start must be called with the lock of serverID held.
func (m *Manager) start(ctx context.Context, serverID string) error {
	t, err := m.load(ctx, serverID)
	if err != nil {
		return err
	}

	c, err := m.find(ctx, serverID)
	if err != nil {
		return err
	}

	if c != nil && c.Running() {
		return wingserrors.ErrAlreadyRunning
	}

	if err := m.run(ctx, t, c); err != nil {
		m.logger.ErrorContext(ctx, "failed to start server", "server_id", serverID, "err", err)
		m.notifier.Announce(ctx, serverID, status.Error)
		return err
	}

	return nil
}

func (m *Manager) run(ctx context.Context, t target, stale *runtime.Container) error {
	var (
		cfg = t.cfg
		p   = t.provider
		dir = m.ServerDir(cfg.ServerID)
	)

	if stale != nil {
		m.logger.InfoContext(ctx, "removing stopped container", "server_id", cfg.ServerID, "container_id", stale.ID)
		if err := m.rt.RemoveContainer(ctx, stale.ID); err != nil {
			return fmt.Errorf("remove stopped container: %w", err)
		}
	}

	image := p.ResolveImage(t.egg)
	if err := p.EnsureImage(ctx, m.rt, image); err != nil {
		return fmt.Errorf("image %s: %w", image, err)
	}

	if err := p.PrepareFilesystem(dir, cfg); err != nil {
		return fmt.Errorf("prepare filesystem: %w", err)
	}

	env := append(environment.Resolve(t.egg.Variables, cfg), p.Environment(cfg)...)

	spec := p.ContainerSpec(game.SpecRequest{
		Config:    cfg,
		Image:     image,
		Command:   environment.Render(t.egg.Startup, t.egg.Variables, cfg),
		Env:       env,
		ServerDir: dir,
	})

	id, err := m.rt.CreateContainer(ctx, spec)
	if err != nil {
		return fmt.Errorf("create container: %w", err)
	}

	// the output stream lives as long as the container, not as long
	// as the request that started it.
	output, err := m.rt.AttachContainer(context.WithoutCancel(ctx), id, spec.TTY)
	if err != nil {
		m.cleanup(ctx, id)
		return fmt.Errorf("attach container: %w", err)
	}

	if err := m.rt.StartContainer(ctx, id); err != nil {
		_ = output.Close()
		m.cleanup(ctx, id)
		return fmt.Errorf("start container: %w", err)
	}

	m.logger.InfoContext(ctx, "server container started",
		"server_id", cfg.ServerID,
		"container_id", id,
		"image", image,
	)

	m.notifier.Announce(ctx, cfg.ServerID, status.Starting)
	m.watch(cfg.ServerID, t, output)

	return nil
}

func (m *Manager) cleanup(ctx context.Context, containerID string) {
	if err := m.rt.RemoveContainer(ctx, containerID); err != nil {
		m.logger.WarnContext(ctx, "could not remove container", "container_id", containerID, "err", err)
	}
}

// watch feeds output into an observer until the stream ends.
func (m *Manager) watch(serverID string, t target, output io.ReadCloser) {
	ctx := context.Background()

	obs := observe.NewObserver(m.logger, m.pub, observe.ObserverOptions{
		ServerID: serverID,
		Ready: func(chunk string) bool {
			return t.provider.Ready(chunk, t.egg)
		},
		OnReady: func() {
			m.notifier.Announce(ctx, serverID, status.Online)
		},
		Latch: m.cfg.ReadinessLatch,
		Now:   m.now,
	})

	s := &stream{ReadCloser: output}

	m.streamsMu.Lock()
	if prev, ok := m.streams[serverID]; ok {
		_ = prev.Close()
	}
	m.streams[serverID] = s
	m.streamsMu.Unlock()

	m.streamsWg.Add(1)
	go func() {
		defer m.streamsWg.Done()
		defer func() {
			_ = s.Close()
			m.streamsMu.Lock()
			if m.streams[serverID] == s {
				delete(m.streams, serverID)
			}
			m.streamsMu.Unlock()
		}()

		if _, err := io.Copy(obs, s); err != nil {
			m.logger.DebugContext(ctx, "output stream closed", "server_id", serverID, "err", err)
			return
		}
		m.logger.DebugContext(ctx, "output stream ended", "server_id", serverID)
	}()
}

func (m *Manager) Stop(ctx context.Context, serverID string) error {
	if !gameserver.ValidID(serverID) {
		return wingserrors.ErrInvalidServerID
	}

	defer m.lock(serverID)()

	c, err := m.find(ctx, serverID)
	if err != nil {
		return err
	}

	if c == nil || !c.Running() {
		return wingserrors.ErrNotRunning
	}

	if err := m.stop(ctx, c); err != nil {
		m.notifier.Announce(ctx, serverID, status.Error)
		return err
	}

	m.notifier.Announce(ctx, serverID, status.Offline)
	return nil
}

func (m *Manager) stop(ctx context.Context, c *runtime.Container) error {
	if err := m.rt.StopContainer(ctx, c.ID, m.cfg.StopTimeout); err != nil {
		return fmt.Errorf("stop container: %w", err)
	}

	if err := m.rt.RemoveContainer(ctx, c.ID); err != nil {
		return fmt.Errorf("remove container: %w", err)
	}

	m.logger.InfoContext(ctx, "server container stopped", "container_id", c.ID)
	return nil
}

// Kill terminates the container without a grace period. a container
// that already exited is only removed.
func (m *Manager) Kill(ctx context.Context, serverID string) error {
	if !gameserver.ValidID(serverID) {
		return wingserrors.ErrInvalidServerID
	}

	defer m.lock(serverID)()

	c, err := m.find(ctx, serverID)
	if err != nil {
		return err
	}

	if c == nil {
		return wingserrors.ErrContainerNotFound
	}

	if c.Running() {
		if err := m.rt.KillContainer(ctx, c.ID); err != nil {
			m.notifier.Announce(ctx, serverID, status.Error)
			return fmt.Errorf("kill container: %w", err)
		}
	}

	if err := m.rt.RemoveContainer(ctx, c.ID); err != nil {
		m.notifier.Announce(ctx, serverID, status.Error)
		return fmt.Errorf("remove container: %w", err)
	}

	m.logger.InfoContext(ctx, "server container killed", "server_id", serverID, "container_id", c.ID)
	m.notifier.Announce(ctx, serverID, status.Offline)

	return nil
}

// Restart stops the server if it is running, waits for the restart
// delay and starts it again, all under one lock.
func (m *Manager) Restart(ctx context.Context, serverID string) error {
	if !gameserver.ValidID(serverID) {
		return wingserrors.ErrInvalidServerID
	}

	defer m.lock(serverID)()

	c, err := m.find(ctx, serverID)
	if err != nil {
		return err
	}

	if c != nil && c.Running() {
		if err := m.stop(ctx, c); err != nil {
			m.notifier.Announce(ctx, serverID, status.Error)
			return err
		}
		m.notifier.Announce(ctx, serverID, status.Offline)
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(m.cfg.RestartDelay):
	}

	return m.start(ctx, serverID)
}

func commandScript(command string) []string {
	return []string{"sh", "-c", `printf '%s\n' "$1" > /proc/1/fd/0`, "sh", command}
}

// SendCommand writes command to the primary input of the server
// process. delivery is not acknowledged.
func (m *Manager) SendCommand(ctx context.Context, serverID, command string) error {
	if strings.TrimSpace(command) == "" {
		return wingserrors.ErrCommandMissing
	}

	c, err := m.find(ctx, serverID)
	if err != nil {
		return err
	}

	if c == nil || !c.Running() {
		return wingserrors.ErrNotRunning
	}

	if err := m.rt.Exec(ctx, c.ID, commandScript(command)); err != nil {
		m.pub.Publish(serverID, event.CommandOutput, event.CommandOutputPayload{
			ServerID: serverID,
			Command:  command,
			Output:   "Failed to send command: " + err.Error(),
			Error:    true,
		})
		return fmt.Errorf("send command: %w", err)
	}

	m.pub.Publish(serverID, event.CommandOutput, event.CommandOutputPayload{
		ServerID: serverID,
		Command:  command,
		Output:   "Command sent: " + command,
	})

	return nil
}

func (m *Manager) Stats(ctx context.Context, serverID string) (stats.Snapshot, error) {
	c, err := m.find(ctx, serverID)
	if err != nil {
		return stats.Snapshot{}, err
	}

	if c == nil {
		return stats.Snapshot{}, wingserrors.ErrContainerNotFound
	}

	if !c.Running() {
		return stats.Aggregate(runtime.Stats{}, false), nil
	}

	raw, err := m.rt.ContainerStats(ctx, c.ID)
	if err != nil {
		return stats.Snapshot{}, fmt.Errorf("container stats: %w", err)
	}

	return stats.Aggregate(raw, true), nil
}

// Logs returns the last lines of output of the server container.
// a non positive lines means DefaultLogLines.
func (m *Manager) Logs(ctx context.Context, serverID string, lines int) ([]observe.Line, error) {
	if lines <= 0 {
		lines = DefaultLogLines
	}

	c, err := m.find(ctx, serverID)
	if err != nil {
		return nil, err
	}

	if c == nil {
		return nil, wingserrors.ErrContainerNotFound
	}

	r, err := m.rt.ContainerLogs(ctx, c.ID, lines)
	if err != nil {
		return nil, fmt.Errorf("container logs: %w", err)
	}
	defer r.Close()

	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read logs: %w", err)
	}

	ret := observe.ParseLines(string(raw), m.now)
	if ret == nil {
		ret = []observe.Line{}
	}
	return ret, nil
}

// Close ends all output streams and waits for their observers.
func (m *Manager) Close() {
	m.streamsMu.Lock()
	for id, st := range m.streams {
		_ = st.Close()
		delete(m.streams, id)
	}
	m.streamsMu.Unlock()

	m.streamsWg.Wait()
}
