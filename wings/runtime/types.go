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

package runtime

import (
	"context"
	"io"
	"time"
)

const (
	StateRunning = "running"

	RestartUnlessStopped = "unless-stopped"
)

// Service is the subset of the container runtime the daemon needs.
// implementations never cache container state, every call asks the
// runtime.
type Service interface {
	Ping(ctx context.Context) error
	// FindServerContainer returns the container labeled with the
	// server id, or nil if there is none.
	FindServerContainer(ctx context.Context, serverID string) (*Container, error)
	EnsureImage(ctx context.Context, ref string) error
	CreateContainer(ctx context.Context, spec ContainerSpec) (string, error)
	StartContainer(ctx context.Context, id string) error
	StopContainer(ctx context.Context, id string, timeout time.Duration) error
	KillContainer(ctx context.Context, id string) error
	RemoveContainer(ctx context.Context, id string) error
	// AttachContainer returns the combined stdout and stderr of the
	// container. the stream ends when the container exits.
	AttachContainer(ctx context.Context, id string, tty bool) (io.ReadCloser, error)
	// WaitContainer must be called before the container is started,
	// so that the exit of an auto removed container is not missed.
	WaitContainer(ctx context.Context, id string) <-chan WaitResult
	ContainerStats(ctx context.Context, id string) (Stats, error)
	ContainerLogs(ctx context.Context, id string, tail int) (io.ReadCloser, error)
	Exec(ctx context.Context, id string, cmd []string) error
}

type Container struct {
	ID     string
	Name   string
	State  string
	Labels map[string]string
}

func (c Container) Running() bool {
	return c.State == StateRunning
}

type Bind struct {
	HostPath      string
	ContainerPath string
	// Mode is appended to the bind, e.g. rw or ro.
	Mode          string
}

type ContainerSpec struct {
	Name       string
	Image      string
	Cmd        []string
	Env        []string
	WorkingDir string
	User       string
	Binds      []Bind
	Labels     map[string]string

	MemoryBytes int64
	CPUPeriod   int64
	CPUQuota    int64

	// Ports are published on the host as both tcp and udp.
	Ports         []int
	RestartPolicy string

	CapAdd      []string
	SecurityOpt []string
	AutoRemove  bool

	TTY       bool
	OpenStdin bool
}

type WaitResult struct {
	StatusCode int64
	Err        error
}

type CPUSample struct {
	TotalUsage  uint64
	SystemUsage uint64
	OnlineCPUs  uint32
}

type NetworkCounters struct {
	RxBytes uint64
	TxBytes uint64
}

// Stats is a raw snapshot of the runtime counters of a container.
type Stats struct {
	CPU         CPUSample
	PreCPU      CPUSample
	MemoryUsage uint64
	MemoryLimit uint64
	Networks    map[string]NetworkCounters
}
