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
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"time"

	cerrdefs "github.com/containerd/errdefs"
	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/filters"
	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/api/types/network"
	"github.com/docker/docker/client"
	"github.com/docker/docker/pkg/jsonmessage"
	"github.com/docker/docker/pkg/stdcopy"
	"github.com/docker/go-connections/nat"
	ocispec "github.com/opencontainers/image-spec/specs-go/v1"
	"github.com/whatahelll/wings/internal/ptr"
)

// DockerClient is the part of the docker api client used by
// the runtime service.
type DockerClient interface {
	Ping(ctx context.Context) (types.Ping, error)
	ContainerList(ctx context.Context, options container.ListOptions) ([]container.Summary, error)
	ContainerInspect(ctx context.Context, id string) (container.InspectResponse, error)
	ContainerCreate(
		ctx context.Context,
		config *container.Config,
		hostConfig *container.HostConfig,
		networkingConfig *network.NetworkingConfig,
		platform *ocispec.Platform,
		name string,
	) (container.CreateResponse, error)
	ContainerStart(ctx context.Context, id string, options container.StartOptions) error
	ContainerStop(ctx context.Context, id string, options container.StopOptions) error
	ContainerKill(ctx context.Context, id, signal string) error
	ContainerRemove(ctx context.Context, id string, options container.RemoveOptions) error
	ContainerAttach(ctx context.Context, id string, options container.AttachOptions) (types.HijackedResponse, error)
	ContainerWait(
		ctx context.Context,
		id string,
		condition container.WaitCondition,
	) (<-chan container.WaitResponse, <-chan error)
	ContainerStats(ctx context.Context, id string, stream bool) (container.StatsResponseReader, error)
	ContainerLogs(ctx context.Context, id string, options container.LogsOptions) (io.ReadCloser, error)
	ContainerExecCreate(ctx context.Context, id string, options container.ExecOptions) (container.ExecCreateResponse, error)
	ContainerExecStart(ctx context.Context, execID string, options container.ExecStartOptions) error
	ImageInspect(ctx context.Context, ref string, opts ...client.ImageInspectOption) (image.InspectResponse, error)
	ImagePull(ctx context.Context, ref string, options image.PullOptions) (io.ReadCloser, error)
}

var _ DockerClient = (*client.Client)(nil)

type dockerService struct {
	logger *slog.Logger
	client DockerClient
}

func NewDockerService(logger *slog.Logger, c DockerClient) Service {
	return &dockerService{
		logger: logger.With("component", "docker-runtime"),
		client: c,
	}
}

func (s *dockerService) Ping(ctx context.Context) error {
	if _, err := s.client.Ping(ctx); err != nil {
		return fmt.Errorf("ping docker: %w", err)
	}
	return nil
}

func (s *dockerService) FindServerContainer(ctx context.Context, serverID string) (*Container, error) {
	list, err := s.client.ContainerList(ctx, container.ListOptions{
		All:     true,
		Filters: filters.NewArgs(filters.Arg("label", LabelServerID+"="+serverID)),
	})
	if err != nil {
		return nil, fmt.Errorf("list containers: %w", err)
	}

	if len(list) == 0 {
		return nil, nil
	}

	if len(list) > 1 {
		s.logger.WarnContext(ctx, "found more than one container for server",
			"server_id", serverID,
			"count", len(list),
		)
	}

	// prefer a running container, so callers never miss one
	// when duplicates exist.
	summary := list[0]
	for _, c := range list {
		if c.State == StateRunning {
			summary = c
			break
		}
	}

	ins, err := s.client.ContainerInspect(ctx, summary.ID)
	if err != nil {
		if cerrdefs.IsNotFound(err) {
			// removed between list and inspect
			return nil, nil
		}
		return nil, fmt.Errorf("inspect container: %w", err)
	}

	ctr := &Container{
		ID:     ins.ID,
		Name:   ins.Name,
		Labels: summary.Labels,
	}

	if ins.State != nil {
		ctr.State = string(ins.State.Status)
		if ins.State.Running {
			ctr.State = StateRunning
		}
	}

	return ctr, nil
}

func (s *dockerService) EnsureImage(ctx context.Context, ref string) error {
	if _, err := s.client.ImageInspect(ctx, ref); err == nil {
		return nil
	} else if !cerrdefs.IsNotFound(err) {
		return fmt.Errorf("inspect image: %w", err)
	}

	logger := s.logger.With("image", ref)
	logger.InfoContext(ctx, "pulling image")

	rc, err := s.client.ImagePull(ctx, ref, image.PullOptions{})
	if err != nil {
		return fmt.Errorf("pull image: %w", err)
	}
	defer rc.Close()

	// the pull only completes once the progress stream is drained.
	// errors that happen mid pull are only reported in the stream.
	if err := jsonmessage.DisplayJSONMessagesStream(rc, io.Discard, 0, false, nil); err != nil {
		return fmt.Errorf("pull image: %w", err)
	}

	logger.InfoContext(ctx, "image pulled")
	return nil
}

func (s *dockerService) CreateContainer(ctx context.Context, spec ContainerSpec) (string, error) {
	var (
		exposed  = nat.PortSet{}
		bindings = nat.PortMap{}
		binds    = make([]string, 0, len(spec.Binds))
	)

	for _, p := range spec.Ports {
		for _, proto := range []string{"tcp", "udp"} {
			port, err := nat.NewPort(proto, strconv.Itoa(p))
			if err != nil {
				return "", fmt.Errorf("invalid port %d: %w", p, err)
			}
			exposed[port] = struct{}{}
			bindings[port] = []nat.PortBinding{
				{HostPort: strconv.Itoa(p)},
			}
		}
	}

	for _, b := range spec.Binds {
		bind := b.HostPath + ":" + b.ContainerPath
		if b.Mode != "" {
			bind += ":" + b.Mode
		}
		binds = append(binds, bind)
	}

	cfg := &container.Config{
		Image:        spec.Image,
		Cmd:          spec.Cmd,
		Env:          spec.Env,
		WorkingDir:   spec.WorkingDir,
		User:         spec.User,
		Labels:       spec.Labels,
		ExposedPorts: exposed,
		Tty:          spec.TTY,
		OpenStdin:    spec.OpenStdin,
		AttachStdin:  spec.OpenStdin,
		AttachStdout: true,
		AttachStderr: true,
	}

	hostCfg := &container.HostConfig{
		Binds:        binds,
		PortBindings: bindings,
		AutoRemove:   spec.AutoRemove,
		CapAdd:       spec.CapAdd,
		SecurityOpt:  spec.SecurityOpt,
		Resources: container.Resources{
			Memory:    spec.MemoryBytes,
			CPUPeriod: spec.CPUPeriod,
			CPUQuota:  spec.CPUQuota,
		},
	}

	if spec.RestartPolicy != "" {
		hostCfg.RestartPolicy = container.RestartPolicy{
			Name: container.RestartPolicyMode(spec.RestartPolicy),
		}
	}

	resp, err := s.client.ContainerCreate(ctx, cfg, hostCfg, nil, nil, spec.Name)
	if err != nil {
		return "", fmt.Errorf("create container: %w", err)
	}

	for _, w := range resp.Warnings {
		s.logger.WarnContext(ctx, "container create warning", "container_name", spec.Name, "warning", w)
	}

	return resp.ID, nil
}

func (s *dockerService) StartContainer(ctx context.Context, id string) error {
	if err := s.client.ContainerStart(ctx, id, container.StartOptions{}); err != nil {
		return fmt.Errorf("start container: %w", err)
	}
	return nil
}

func (s *dockerService) StopContainer(ctx context.Context, id string, timeout time.Duration) error {
	if err := s.client.ContainerStop(ctx, id, container.StopOptions{
		Timeout: ptr.Pointer(int(timeout.Seconds())),
	}); err != nil {
		return fmt.Errorf("stop container: %w", err)
	}
	return nil
}

func (s *dockerService) KillContainer(ctx context.Context, id string) error {
	if err := s.client.ContainerKill(ctx, id, "SIGKILL"); err != nil {
		return fmt.Errorf("kill container: %w", err)
	}
	return nil
}

func (s *dockerService) RemoveContainer(ctx context.Context, id string) error {
	if err := s.client.ContainerRemove(ctx, id, container.RemoveOptions{Force: true}); err != nil {
		if cerrdefs.IsNotFound(err) {
			return nil
		}
		return fmt.Errorf("remove container: %w", err)
	}
	return nil
}

func (s *dockerService) AttachContainer(ctx context.Context, id string, tty bool) (io.ReadCloser, error) {
	resp, err := s.client.ContainerAttach(ctx, id, container.AttachOptions{
		Stream: true,
		Stdout: true,
		Stderr: true,
	})
	if err != nil {
		return nil, fmt.Errorf("attach container: %w", err)
	}

	if tty {
		return &hijackedReader{resp: resp}, nil
	}

	return demux(resp.Reader, resp.Close), nil
}

func (s *dockerService) WaitContainer(ctx context.Context, id string) <-chan WaitResult {
	var (
		ret         = make(chan WaitResult, 1)
		respC, errC = s.client.ContainerWait(ctx, id, container.WaitConditionNextExit)
	)

	go func() {
		select {
		case resp := <-respC:
			res := WaitResult{StatusCode: resp.StatusCode}
			if resp.Error != nil && resp.Error.Message != "" {
				res.Err = fmt.Errorf("wait container: %s", resp.Error.Message)
			}
			ret <- res
		case err := <-errC:
			ret <- WaitResult{StatusCode: -1, Err: fmt.Errorf("wait container: %w", err)}
		}
	}()

	return ret
}

func (s *dockerService) ContainerStats(ctx context.Context, id string) (Stats, error) {
	// stream=false makes the daemon collect two samples, so
	// precpu_stats is populated.
	resp, err := s.client.ContainerStats(ctx, id, false)
	if err != nil {
		return Stats{}, fmt.Errorf("container stats: %w", err)
	}
	defer resp.Body.Close()

	var raw container.StatsResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return Stats{}, fmt.Errorf("decode stats: %w", err)
	}

	return statsFromDocker(raw), nil
}

func statsFromDocker(raw container.StatsResponse) Stats {
	st := Stats{
		CPU: CPUSample{
			TotalUsage:  raw.CPUStats.CPUUsage.TotalUsage,
			SystemUsage: raw.CPUStats.SystemUsage,
			OnlineCPUs:  raw.CPUStats.OnlineCPUs,
		},
		PreCPU: CPUSample{
			TotalUsage:  raw.PreCPUStats.CPUUsage.TotalUsage,
			SystemUsage: raw.PreCPUStats.SystemUsage,
			OnlineCPUs:  raw.PreCPUStats.OnlineCPUs,
		},
		MemoryUsage: raw.MemoryStats.Usage,
		MemoryLimit: raw.MemoryStats.Limit,
		Networks:    make(map[string]NetworkCounters, len(raw.Networks)),
	}

	for name, n := range raw.Networks {
		st.Networks[name] = NetworkCounters{
			RxBytes: n.RxBytes,
			TxBytes: n.TxBytes,
		}
	}

	return st
}

func (s *dockerService) ContainerLogs(ctx context.Context, id string, tail int) (io.ReadCloser, error) {
	ins, err := s.client.ContainerInspect(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("inspect container: %w", err)
	}

	rc, err := s.client.ContainerLogs(ctx, id, container.LogsOptions{
		ShowStdout: true,
		ShowStderr: true,
		Timestamps: true,
		Tail:       strconv.Itoa(tail),
	})
	if err != nil {
		return nil, fmt.Errorf("container logs: %w", err)
	}

	if ins.Config != nil && ins.Config.Tty {
		return rc, nil
	}

	return demux(rc, func() { rc.Close() }), nil
}

func (s *dockerService) Exec(ctx context.Context, id string, cmd []string) error {
	resp, err := s.client.ContainerExecCreate(ctx, id, container.ExecOptions{
		Cmd: cmd,
	})
	if err != nil {
		return fmt.Errorf("create exec: %w", err)
	}

	if err := s.client.ContainerExecStart(ctx, resp.ID, container.ExecStartOptions{
		Detach: true,
	}); err != nil {
		return fmt.Errorf("start exec: %w", err)
	}

	return nil
}

type hijackedReader struct {
	resp types.HijackedResponse
}

func (r *hijackedReader) Read(p []byte) (int, error) {
	return r.resp.Reader.Read(p)
}

func (r *hijackedReader) Close() error {
	r.resp.Close()
	return nil
}

// demux splits a multiplexed docker stream and merges stdout and
// stderr into a single reader.
func demux(src io.Reader, closeSrc func()) io.ReadCloser {
	pr, pw := io.Pipe()
	go func() {
		_, err := stdcopy.StdCopy(pw, pw, src)
		pw.CloseWithError(err)
	}()
	return &demuxReader{
		PipeReader: pr,
		closeSrc:   closeSrc,
	}
}

type demuxReader struct {
	*io.PipeReader
	closeSrc func()
}

func (r *demuxReader) Close() error {
	r.closeSrc()
	return r.PipeReader.Close()
}
