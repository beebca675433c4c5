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

package install

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/pkg/errors"
	"github.com/whatahelll/wings/wings/egg"
	"github.com/whatahelll/wings/wings/environment"
	"github.com/whatahelll/wings/wings/event"
	"github.com/whatahelll/wings/wings/game"
	"github.com/whatahelll/wings/wings/gameserver"
	"github.com/whatahelll/wings/wings/observe"
	"github.com/whatahelll/wings/wings/runtime"
	"github.com/whatahelll/wings/wings/status"
)

const (
	defaultEntrypoint = "bash"

	// output still buffered when the installer exits gets this long
	// to reach the observer.
	drainTimeout = 5 * time.Second
)

// ErrInstallFailed is returned when the install script exits with a
// non zero code.
var ErrInstallFailed = errors.New("installation failed")

type Request struct {
	Config    gameserver.Config
	Egg       egg.Egg
	Provider  game.Provider
	ServerDir string
}

// Pipeline runs the installation script of an egg inside a
// throwaway container. there are no retries, every failure is
// reported once.
type Pipeline struct {
	logger   *slog.Logger
	rt       runtime.Service
	pub      event.Publisher
	notifier *status.Notifier
}

func NewPipeline(logger *slog.Logger, rt runtime.Service, pub event.Publisher, notifier *status.Notifier) *Pipeline {
	return &Pipeline{
		logger:   logger.With("component", "install-pipeline"),
		rt:       rt,
		pub:      pub,
		notifier: notifier,
	}
}

func (p *Pipeline) Run(ctx context.Context, req Request) error {
	serverID := req.Config.ServerID

	inst := req.Egg.Installer()
	if inst == nil {
		p.logger.InfoContext(ctx, "egg has no installation step", "server_id", serverID, "egg_id", req.Config.EggID)
		p.notifier.Announce(ctx, serverID, status.Offline)
		return nil
	}

	if err := p.install(ctx, req, inst); err != nil {
		p.logger.ErrorContext(ctx, "installation failed", "server_id", serverID, "err", err)
		p.notifier.Announce(ctx, serverID, status.InstallFailed)
		return err
	}

	p.logger.InfoContext(ctx, "installation finished", "server_id", serverID)
	p.notifier.Announce(ctx, serverID, status.Offline)

	return nil
}

func (p *Pipeline) install(ctx context.Context, req Request, inst *egg.Installation) error {
	var (
		cfg = req.Config
		env = environment.Resolve(req.Egg.Variables, cfg)
	)

	image := inst.Container
	if image == "" {
		image = req.Provider.ResolveInstallerImage()
	}

	if err := req.Provider.EnsureImage(ctx, p.rt, image); err != nil {
		return fmt.Errorf("installer image %s: %w", image, err)
	}

	entrypoint := inst.Entrypoint
	if entrypoint == "" {
		entrypoint = defaultEntrypoint
	}

	// a leftover installer from a crashed run would block the name.
	if err := p.rt.RemoveContainer(ctx, runtime.InstallerName(cfg.ServerID)); err != nil {
		return fmt.Errorf("remove stale installer: %w", err)
	}

	id, err := p.rt.CreateContainer(ctx, runtime.ContainerSpec{
		Name:       runtime.InstallerName(cfg.ServerID),
		Image:      image,
		Cmd:        []string{entrypoint, "-c", inst.Script},
		Env:        env,
		WorkingDir: gameserver.InstallMountDir,
		Binds: []runtime.Bind{
			{
				HostPath:      req.ServerDir,
				ContainerPath: gameserver.InstallMountDir,
				Mode:          "rw",
			},
		},
		Labels:      runtime.InstallLabels(cfg.ServerID),
		MemoryBytes: cfg.MemoryBytes(),
		CPUPeriod:   100000,
		CPUQuota:    cfg.CPUQuota(),
		AutoRemove:  true,
	})
	if err != nil {
		return fmt.Errorf("create installer: %w", err)
	}

	output, err := p.rt.AttachContainer(ctx, id, false)
	if err != nil {
		p.remove(ctx, id)
		return fmt.Errorf("attach installer: %w", err)
	}
	defer output.Close()

	// registered before start, auto removal would swallow the exit
	// otherwise.
	exit := p.rt.WaitContainer(ctx, id)

	if err := p.rt.StartContainer(ctx, id); err != nil {
		p.remove(ctx, id)
		return fmt.Errorf("start installer: %w", err)
	}

	p.logger.InfoContext(ctx, "installer started",
		"server_id", cfg.ServerID,
		"container_id", id,
		"image", image,
	)

	copied := make(chan struct{})
	go func() {
		defer close(copied)
		w := observe.NewInstallWriter(ctx, p.logger, p.pub, cfg.ServerID)
		if _, err := io.Copy(w, output); err != nil {
			p.logger.DebugContext(ctx, "installer output stream ended", "server_id", cfg.ServerID, "err", err)
		}
	}()

	res := <-exit

	select {
	case <-copied:
	case <-time.After(drainTimeout):
	}

	if res.Err != nil {
		return fmt.Errorf("wait for installer: %w", res.Err)
	}

	if res.StatusCode != 0 {
		return fmt.Errorf("%w with exit code %d", ErrInstallFailed, res.StatusCode)
	}

	return nil
}

// remove cleans up an installer that never started, auto removal
// only applies once it ran.
func (p *Pipeline) remove(ctx context.Context, id string) {
	if err := p.rt.RemoveContainer(ctx, id); err != nil {
		p.logger.WarnContext(ctx, "could not remove installer", "container_id", id, "err", err)
	}
}
