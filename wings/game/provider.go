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

package game

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/google/go-containerregistry/pkg/name"
	"github.com/whatahelll/wings/wings/egg"
	wingserrors "github.com/whatahelll/wings/wings/errors"
	"github.com/whatahelll/wings/wings/gameserver"
	"github.com/whatahelll/wings/wings/runtime"
)

const (
	DefaultImage          = "ghcr.io/pterodactyl/yolks:java_17"
	DefaultInstallerImage = "ghcr.io/pterodactyl/installers:debian"

	cpuPeriod = 100000
)

// Provider carries everything that differs between games.
type Provider interface {
	ResolveImage(e egg.Egg) string
	ResolveInstallerImage() string
	EnsureImage(ctx context.Context, rt runtime.Service, ref string) error
	// PrepareFilesystem creates game specific directories and default
	// files. existing files are never touched.
	PrepareFilesystem(dir string, cfg gameserver.Config) error
	// Environment returns entries appended after the generic
	// environment of the server.
	Environment(cfg gameserver.Config) []string
	ContainerSpec(req SpecRequest) runtime.ContainerSpec
	Ready(chunk string, e egg.Egg) bool
}

type SpecRequest struct {
	Config    gameserver.Config
	Image     string
	Command   string
	Env       []string
	ServerDir string
}

type Images struct {
	Default   string
	Installer string
}

// Default is the provider used for every game without a dedicated
// variant, and the base all variants fall back to.
type Default struct {
	images Images
}

func NewDefault(images Images) *Default {
	if images.Default == "" {
		images.Default = DefaultImage
	}
	if images.Installer == "" {
		images.Installer = DefaultInstallerImage
	}
	return &Default{
		images: images,
	}
}

func (d *Default) ResolveImage(e egg.Egg) string {
	if ref, ok := e.DockerImages.First(); ok && ref != "" {
		return ref
	}
	return d.images.Default
}

func (d *Default) ResolveInstallerImage() string {
	return d.images.Installer
}

func (d *Default) EnsureImage(ctx context.Context, rt runtime.Service, ref string) error {
	if _, err := name.ParseReference(ref); err != nil {
		return wingserrors.New(wingserrors.KindValidation, "invalid image reference "+strconv.Quote(ref), err)
	}

	if err := rt.EnsureImage(ctx, ref); err != nil {
		return fmt.Errorf("ensure image: %w", err)
	}

	return nil
}

func (d *Default) PrepareFilesystem(dir string, _ gameserver.Config) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create server dir: %w", err)
	}
	return nil
}

func (d *Default) Environment(gameserver.Config) []string {
	return nil
}

func (d *Default) ContainerSpec(req SpecRequest) runtime.ContainerSpec {
	cfg := req.Config
	return runtime.ContainerSpec{
		Name:       runtime.ContainerName(cfg.ServerID),
		Image:      req.Image,
		Cmd:        []string{"bash", "-c", req.Command},
		Env:        req.Env,
		WorkingDir: gameserver.ContainerHomeDir,
		User:       "1000:1000",
		Binds: []runtime.Bind{
			{
				HostPath:      req.ServerDir,
				ContainerPath: gameserver.ContainerHomeDir,
				Mode:          "rw",
			},
		},
		Labels:        runtime.ServerLabels(cfg.ServerID, cfg.DisplayName(), cfg.GameKey()),
		MemoryBytes:   cfg.MemoryBytes(),
		CPUPeriod:     cpuPeriod,
		CPUQuota:      cfg.CPUQuota(),
		Ports:         []int{cfg.Port},
		RestartPolicy: runtime.RestartUnlessStopped,
		TTY:           true,
		OpenStdin:     true,
	}
}

func (d *Default) Ready(chunk string, e egg.Egg) bool {
	return containsAny(chunk, e.ReadinessMarkers())
}

func containsAny(s string, markers []string) bool {
	for _, m := range markers {
		if m != "" && strings.Contains(s, m) {
			return true
		}
	}
	return false
}

// variable returns the override for key, or def if it is unset or empty.
func variable(cfg gameserver.Config, key, def string) string {
	if v := cfg.Variables[key]; v != "" {
		return v
	}
	return def
}

// elevate lets the container start as root with enough capabilities
// to fix up file ownership on first run.
func elevate(spec runtime.ContainerSpec) runtime.ContainerSpec {
	spec.User = "root"
	spec.CapAdd = []string{"CHOWN", "DAC_OVERRIDE"}
	spec.SecurityOpt = []string{"no-new-privileges:false"}
	return spec
}
