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

package lifecycle_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	mocky "github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/whatahelll/wings/internal/mock"
	"github.com/whatahelll/wings/test"
	"github.com/whatahelll/wings/wings/egg"
	wingserrors "github.com/whatahelll/wings/wings/errors"
	"github.com/whatahelll/wings/wings/event"
	"github.com/whatahelll/wings/wings/game"
	"github.com/whatahelll/wings/wings/gameserver"
	"github.com/whatahelll/wings/wings/lifecycle"
	"github.com/whatahelll/wings/wings/runtime"
	"github.com/whatahelll/wings/wings/stats"
	"github.com/whatahelll/wings/wings/status"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

const testEgg = `{
  "name": "Minecraft",
  "docker_images": {"Java 21": "ghcr.io/pterodactyl/yolks:java_21"},
  "startup": "java -Xmx{{SERVER_MEMORY}}M -jar {{SERVER_JARFILE}}",
  "config": {"startup": {"done": ")! For help"}},
  "variables": [
    {"name": "Jar", "env_variable": "SERVER_JARFILE", "default_value": "server.jar"}
  ]
}`

type fixture struct {
	m   *lifecycle.Manager
	rt  *mock.MockRuntimeService
	rec *test.Recorder
	dir string
}

func newFixture(t *testing.T, cfg lifecycle.Config) fixture {
	dir := t.TempDir()

	eggDir := filepath.Join(dir, "eggs")
	require.NoError(t, os.MkdirAll(eggDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(eggDir, "minecraft.json"), []byte(testEgg), 0o644))

	configs := gameserver.NewFileStore(filepath.Join(dir, "configs"))
	require.NoError(t, configs.Save(context.Background(), gameserver.Config{
		ServerID:  "s1",
		EggID:     "minecraft",
		Game:      "minecraft",
		Port:      25565,
		Plan:      gameserver.Plan{RAM: 2, CPU: 1},
		Variables: gameserver.Variables{"MAX_PLAYERS": "10"},
	}))

	var (
		rt       = mock.NewMockRuntimeService(t)
		rec      = test.NewRecorder()
		notifier = status.NewNotifier(discardLogger, rec, nil, 0)
		games    = game.NewRegistry(game.NewDefault(game.Images{}), game.Minecraft(""), game.Terraria("", ""))
	)

	cfg.DataDir = dir

	m := lifecycle.NewManager(discardLogger, cfg, rt, configs, egg.NewStore(eggDir), games, notifier, rec)
	t.Cleanup(m.Close)

	return fixture{
		m:   m,
		rt:  rt,
		rec: rec,
		dir: dir,
	}
}

func running(id string) *runtime.Container {
	return &runtime.Container{ID: id, Name: "pyro-s1", State: "running"}
}

func exited(id string) *runtime.Container {
	return &runtime.Container{ID: id, Name: "pyro-s1", State: "exited"}
}

// expectLaunch registers the calls of a successful start and returns
// the writer end of the container output.
func expectLaunch(rt *mock.MockRuntimeService, spec *runtime.ContainerSpec) *io.PipeWriter {
	pr, pw := io.Pipe()

	rt.EXPECT().EnsureImage(mocky.Anything, "ghcr.io/pterodactyl/yolks:java_21").Return(nil).Once()
	rt.EXPECT().
		CreateContainer(mocky.Anything, mocky.Anything).
		Run(func(_ context.Context, s runtime.ContainerSpec) {
			if spec != nil {
				*spec = s
			}
		}).
		Return("c1", nil).
		Once()
	rt.EXPECT().AttachContainer(mocky.Anything, "c1", true).Return(pr, nil).Once()
	rt.EXPECT().StartContainer(mocky.Anything, "c1").Return(nil).Once()

	return pw
}

func hasStatus(s string) func([]test.Event) bool {
	return func(events []test.Event) bool {
		for _, e := range events {
			if p, ok := e.Payload.(event.StatusPayload); ok && p.Status == s {
				return true
			}
		}
		return false
	}
}

func TestStart(t *testing.T) {
	var (
		f    = newFixture(t, lifecycle.Config{})
		ctx  = context.Background()
		spec runtime.ContainerSpec
	)

	f.rt.EXPECT().FindServerContainer(mocky.Anything, "s1").Return(nil, nil).Once()
	pw := expectLaunch(f.rt, &spec)
	defer pw.Close()

	require.NoError(t, f.m.Start(ctx, "s1"))
	require.Equal(t, []string{"starting"}, f.rec.Statuses())

	require.Equal(t, "pyro-s1", spec.Name)
	require.Equal(t, []string{"bash", "-c", "java -Xmx2048M -jar server.jar"}, spec.Cmd)
	require.Equal(t, "root", spec.User)
	require.Equal(t, []int{25565}, spec.Ports)
	require.Equal(t, "s1", spec.Labels[runtime.LabelServerID])
	require.Contains(t, spec.Env, "SERVER_JARFILE=server.jar")
	require.Contains(t, spec.Env, "EULA=TRUE")

	require.FileExists(t, filepath.Join(f.dir, "servers", "s1", "eula.txt"))

	_, err := pw.Write([]byte("[12:00:00 INFO]: Done (3.1s)! For help, type \"help\"\n"))
	require.NoError(t, err)

	f.rec.WaitFor(t, time.Second, hasStatus("online"))
	require.Equal(t, []string{"starting", "online"}, f.rec.Statuses())
}

func TestStartReadinessLatch(t *testing.T) {
	tests := []struct {
		name     string
		latch    bool
		statuses []string
	}{
		{
			name:     "re-fires without latch",
			latch:    false,
			statuses: []string{"starting", "online", "online"},
		},
		{
			name:     "fires once with latch",
			latch:    true,
			statuses: []string{"starting", "online"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, lifecycle.Config{ReadinessLatch: tt.latch})

			f.rt.EXPECT().FindServerContainer(mocky.Anything, "s1").Return(nil, nil).Once()
			pw := expectLaunch(f.rt, nil)

			require.NoError(t, f.m.Start(context.Background(), "s1"))

			for range 2 {
				_, err := pw.Write([]byte("Done (1.0s)! For help, type \"help\"\n"))
				require.NoError(t, err)
			}
			require.NoError(t, pw.Close())

			// closing the writer ends the observer, Close waits for it.
			f.m.Close()
			require.Equal(t, tt.statuses, f.rec.Statuses())
		})
	}
}

func TestStartRejected(t *testing.T) {
	tests := []struct {
		name   string
		id     string
		expErr error
		prep   func(*mock.MockRuntimeService)
	}{
		{
			name:   "already running",
			id:     "s1",
			expErr: wingserrors.ErrAlreadyRunning,
			prep: func(rt *mock.MockRuntimeService) {
				rt.EXPECT().FindServerContainer(mocky.Anything, "s1").Return(running("c0"), nil)
			},
		},
		{
			name:   "unknown server",
			id:     "s2",
			expErr: wingserrors.ErrServerConfigMissing,
			prep:   func(*mock.MockRuntimeService) {},
		},
		{
			name:   "invalid id",
			id:     "../s1",
			expErr: wingserrors.ErrInvalidServerID,
			prep:   func(*mock.MockRuntimeService) {},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, lifecycle.Config{})
			tt.prep(f.rt)

			err := f.m.Start(context.Background(), tt.id)
			require.ErrorIs(t, err, tt.expErr)
			require.Empty(t, f.rec.Events())
		})
	}
}

func TestStartRemovesStoppedContainer(t *testing.T) {
	f := newFixture(t, lifecycle.Config{})

	f.rt.EXPECT().FindServerContainer(mocky.Anything, "s1").Return(exited("c0"), nil).Once()
	f.rt.EXPECT().RemoveContainer(mocky.Anything, "c0").Return(nil).Once()
	pw := expectLaunch(f.rt, nil)
	defer pw.Close()

	require.NoError(t, f.m.Start(context.Background(), "s1"))
	require.Equal(t, []string{"starting"}, f.rec.Statuses())
}

func TestStartRuntimeFailureAnnouncesError(t *testing.T) {
	f := newFixture(t, lifecycle.Config{})

	f.rt.EXPECT().FindServerContainer(mocky.Anything, "s1").Return(nil, nil).Once()
	f.rt.EXPECT().
		EnsureImage(mocky.Anything, "ghcr.io/pterodactyl/yolks:java_21").
		Return(errors.New("pull access denied")).
		Once()

	err := f.m.Start(context.Background(), "s1")
	require.ErrorContains(t, err, "pull access denied")
	require.Equal(t, []string{"error"}, f.rec.Statuses())
}

func TestStartFailureRemovesContainer(t *testing.T) {
	f := newFixture(t, lifecycle.Config{})

	pr, pw := io.Pipe()
	defer pw.Close()

	f.rt.EXPECT().FindServerContainer(mocky.Anything, "s1").Return(nil, nil).Once()
	f.rt.EXPECT().EnsureImage(mocky.Anything, mocky.Anything).Return(nil).Once()
	f.rt.EXPECT().CreateContainer(mocky.Anything, mocky.Anything).Return("c1", nil).Once()
	f.rt.EXPECT().AttachContainer(mocky.Anything, "c1", true).Return(pr, nil).Once()
	f.rt.EXPECT().StartContainer(mocky.Anything, "c1").Return(errors.New("port is already allocated")).Once()
	f.rt.EXPECT().RemoveContainer(mocky.Anything, "c1").Return(nil).Once()

	require.Error(t, f.m.Start(context.Background(), "s1"))
	require.Equal(t, []string{"error"}, f.rec.Statuses())
}

func TestConcurrentStartCreatesOneContainer(t *testing.T) {
	var (
		f       = newFixture(t, lifecycle.Config{})
		created atomic.Bool
		pr, pw  = io.Pipe()
	)
	defer pw.Close()

	f.rt.EXPECT().
		FindServerContainer(mocky.Anything, "s1").
		RunAndReturn(func(context.Context, string) (*runtime.Container, error) {
			if created.Load() {
				return running("c1"), nil
			}
			return nil, nil
		})
	f.rt.EXPECT().EnsureImage(mocky.Anything, mocky.Anything).Return(nil).Once()
	f.rt.EXPECT().
		CreateContainer(mocky.Anything, mocky.Anything).
		RunAndReturn(func(context.Context, runtime.ContainerSpec) (string, error) {
			// widen the window between discovery and creation.
			time.Sleep(20 * time.Millisecond)
			created.Store(true)
			return "c1", nil
		}).
		Once()
	f.rt.EXPECT().AttachContainer(mocky.Anything, "c1", true).Return(pr, nil).Once()
	f.rt.EXPECT().StartContainer(mocky.Anything, "c1").Return(nil).Once()

	const n = 5

	var (
		wg       sync.WaitGroup
		conflict atomic.Int32
		ok       atomic.Int32
	)
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := f.m.Start(context.Background(), "s1")
			switch {
			case err == nil:
				ok.Add(1)
			case errors.Is(err, wingserrors.ErrAlreadyRunning):
				conflict.Add(1)
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	require.Equal(t, int32(1), ok.Load())
	require.Equal(t, int32(n-1), conflict.Load())
}

func TestStop(t *testing.T) {
	tests := []struct {
		name     string
		expErr   error
		statuses []string
		prep     func(*mock.MockRuntimeService)
	}{
		{
			name:   "no container",
			expErr: wingserrors.ErrNotRunning,
			prep: func(rt *mock.MockRuntimeService) {
				rt.EXPECT().FindServerContainer(mocky.Anything, "s1").Return(nil, nil)
			},
		},
		{
			name:   "container not running",
			expErr: wingserrors.ErrNotRunning,
			prep: func(rt *mock.MockRuntimeService) {
				rt.EXPECT().FindServerContainer(mocky.Anything, "s1").Return(exited("c1"), nil)
			},
		},
		{
			name:     "running",
			statuses: []string{"offline"},
			prep: func(rt *mock.MockRuntimeService) {
				rt.EXPECT().FindServerContainer(mocky.Anything, "s1").Return(running("c1"), nil)
				rt.EXPECT().StopContainer(mocky.Anything, "c1", 10*time.Second).Return(nil)
				rt.EXPECT().RemoveContainer(mocky.Anything, "c1").Return(nil)
			},
		},
		{
			name:     "stop fails",
			expErr:   errors.New("stop container: daemon gone"),
			statuses: []string{"error"},
			prep: func(rt *mock.MockRuntimeService) {
				rt.EXPECT().FindServerContainer(mocky.Anything, "s1").Return(running("c1"), nil)
				rt.EXPECT().StopContainer(mocky.Anything, "c1", 10*time.Second).Return(errors.New("daemon gone"))
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, lifecycle.Config{})
			tt.prep(f.rt)

			err := f.m.Stop(context.Background(), "s1")
			switch {
			case tt.expErr == nil:
				require.NoError(t, err)
			case wingserrors.KindOf(tt.expErr) == wingserrors.KindConflict:
				require.ErrorIs(t, err, tt.expErr)
				require.Equal(t, wingserrors.KindConflict, wingserrors.KindOf(err))
			default:
				require.EqualError(t, err, tt.expErr.Error())
			}

			require.Equal(t, tt.statuses, f.rec.Statuses())
		})
	}
}

func TestKill(t *testing.T) {
	tests := []struct {
		name     string
		expErr   error
		statuses []string
		prep     func(*mock.MockRuntimeService)
	}{
		{
			name:   "no container",
			expErr: wingserrors.ErrContainerNotFound,
			prep: func(rt *mock.MockRuntimeService) {
				rt.EXPECT().FindServerContainer(mocky.Anything, "s1").Return(nil, nil)
			},
		},
		{
			name:     "running",
			statuses: []string{"offline"},
			prep: func(rt *mock.MockRuntimeService) {
				rt.EXPECT().FindServerContainer(mocky.Anything, "s1").Return(running("c1"), nil)
				rt.EXPECT().KillContainer(mocky.Anything, "c1").Return(nil)
				rt.EXPECT().RemoveContainer(mocky.Anything, "c1").Return(nil)
			},
		},
		{
			name:     "already exited",
			statuses: []string{"offline"},
			prep: func(rt *mock.MockRuntimeService) {
				rt.EXPECT().FindServerContainer(mocky.Anything, "s1").Return(exited("c1"), nil)
				rt.EXPECT().RemoveContainer(mocky.Anything, "c1").Return(nil)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, lifecycle.Config{})
			tt.prep(f.rt)

			err := f.m.Kill(context.Background(), "s1")
			if tt.expErr != nil {
				require.ErrorIs(t, err, tt.expErr)
			} else {
				require.NoError(t, err)
			}

			require.Equal(t, tt.statuses, f.rec.Statuses())
		})
	}
}

func TestRestart(t *testing.T) {
	f := newFixture(t, lifecycle.Config{RestartDelay: time.Millisecond})

	f.rt.EXPECT().FindServerContainer(mocky.Anything, "s1").Return(running("c0"), nil).Once()
	f.rt.EXPECT().StopContainer(mocky.Anything, "c0", 10*time.Second).Return(nil).Once()
	f.rt.EXPECT().RemoveContainer(mocky.Anything, "c0").Return(nil).Once()
	f.rt.EXPECT().FindServerContainer(mocky.Anything, "s1").Return(nil, nil).Once()
	pw := expectLaunch(f.rt, nil)
	defer pw.Close()

	require.NoError(t, f.m.Restart(context.Background(), "s1"))
	require.Equal(t, []string{"offline", "starting"}, f.rec.Statuses())
}

func TestRestartCanceledDuringDelay(t *testing.T) {
	f := newFixture(t, lifecycle.Config{RestartDelay: time.Hour})

	f.rt.EXPECT().FindServerContainer(mocky.Anything, "s1").Return(nil, nil).Once()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	require.ErrorIs(t, f.m.Restart(ctx, "s1"), context.DeadlineExceeded)
	require.Empty(t, f.rec.Statuses())
}

func TestInstallRejectedWhileRunning(t *testing.T) {
	f := newFixture(t, lifecycle.Config{})

	f.rt.EXPECT().FindServerContainer(mocky.Anything, "s1").Return(running("c1"), nil)

	err := f.m.Install(context.Background(), "s1")
	require.ErrorIs(t, err, wingserrors.ErrAlreadyRunning)
	require.Empty(t, f.rec.Statuses())
}

func TestInstallWithoutScript(t *testing.T) {
	f := newFixture(t, lifecycle.Config{})

	f.rt.EXPECT().FindServerContainer(mocky.Anything, "s1").Return(nil, nil)

	require.NoError(t, f.m.Install(context.Background(), "s1"))
	require.Equal(t, []string{"installing", "offline"}, f.rec.Statuses())
	require.DirExists(t, filepath.Join(f.dir, "servers", "s1"))
}

func TestConfigure(t *testing.T) {
	f := newFixture(t, lifecycle.Config{})

	cfg := gameserver.Config{
		ServerID: "s9",
		EggID:    "terraria",
		Game:     "terraria",
		Port:     7777,
		Plan:     gameserver.Plan{RAM: 1, CPU: 1},
	}

	require.NoError(t, f.m.Configure(context.Background(), cfg))
	require.DirExists(t, filepath.Join(f.dir, "servers", "s9"))

	cfg.Port = 0
	err := f.m.Configure(context.Background(), cfg)
	require.Equal(t, wingserrors.KindValidation, wingserrors.KindOf(err))
}

func TestSendCommand(t *testing.T) {
	f := newFixture(t, lifecycle.Config{})

	f.rt.EXPECT().FindServerContainer(mocky.Anything, "s1").Return(running("c1"), nil)
	f.rt.EXPECT().
		Exec(mocky.Anything, "c1", []string{"sh", "-c", `printf '%s\n' "$1" > /proc/1/fd/0`, "sh", "say hi; rm -rf /"}).
		Return(nil)

	require.NoError(t, f.m.SendCommand(context.Background(), "s1", "say hi; rm -rf /"))

	events := f.rec.Events()
	require.Len(t, events, 1)
	require.Equal(t, event.CommandOutput, events[0].Name)
	require.Equal(t, event.CommandOutputPayload{
		ServerID: "s1",
		Command:  "say hi; rm -rf /",
		Output:   "Command sent: say hi; rm -rf /",
	}, events[0].Payload)
}

func TestSendCommandRejected(t *testing.T) {
	tests := []struct {
		name    string
		command string
		expErr  error
		prep    func(*mock.MockRuntimeService)
	}{
		{
			name:    "empty command",
			command: "  ",
			expErr:  wingserrors.ErrCommandMissing,
			prep:    func(*mock.MockRuntimeService) {},
		},
		{
			name:    "not running",
			command: "list",
			expErr:  wingserrors.ErrNotRunning,
			prep: func(rt *mock.MockRuntimeService) {
				rt.EXPECT().FindServerContainer(mocky.Anything, "s1").Return(exited("c1"), nil)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, lifecycle.Config{})
			tt.prep(f.rt)

			require.ErrorIs(t, f.m.SendCommand(context.Background(), "s1", tt.command), tt.expErr)
			require.Empty(t, f.rec.Events())
		})
	}
}

func TestStats(t *testing.T) {
	tests := []struct {
		name     string
		expected stats.Snapshot
		expErr   error
		prep     func(*mock.MockRuntimeService)
	}{
		{
			name:   "no container",
			expErr: wingserrors.ErrContainerNotFound,
			prep: func(rt *mock.MockRuntimeService) {
				rt.EXPECT().FindServerContainer(mocky.Anything, "s1").Return(nil, nil)
			},
		},
		{
			name: "not running",
			prep: func(rt *mock.MockRuntimeService) {
				rt.EXPECT().FindServerContainer(mocky.Anything, "s1").Return(exited("c1"), nil)
			},
		},
		{
			name: "running",
			expected: stats.Snapshot{
				CPU:     50,
				Memory:  stats.Memory{Used: 1024, Total: 2048, Percent: 50},
				Network: stats.Network{Rx: 10, Tx: 20},
			},
			prep: func(rt *mock.MockRuntimeService) {
				rt.EXPECT().FindServerContainer(mocky.Anything, "s1").Return(running("c1"), nil)
				rt.EXPECT().ContainerStats(mocky.Anything, "c1").Return(runtime.Stats{
					CPU:         runtime.CPUSample{TotalUsage: 1500, SystemUsage: 4000, OnlineCPUs: 2},
					PreCPU:      runtime.CPUSample{TotalUsage: 1000, SystemUsage: 2000, OnlineCPUs: 2},
					MemoryUsage: 1024 * 1024 * 1024,
					MemoryLimit: 2 * 1024 * 1024 * 1024,
					Networks: map[string]runtime.NetworkCounters{
						"eth0": {RxBytes: 10, TxBytes: 20},
					},
				}, nil)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, lifecycle.Config{})
			tt.prep(f.rt)

			got, err := f.m.Stats(context.Background(), "s1")
			if tt.expErr != nil {
				require.ErrorIs(t, err, tt.expErr)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.expected, got)
		})
	}
}

func TestLogs(t *testing.T) {
	f := newFixture(t, lifecycle.Config{})

	raw := "2024-01-02T03:04:05.000000001Z [INFO] Starting\n" +
		"2024-01-02T03:04:06.000000001Z [ERROR] Crash\n"

	f.rt.EXPECT().FindServerContainer(mocky.Anything, "s1").Return(running("c1"), nil)
	f.rt.EXPECT().
		ContainerLogs(mocky.Anything, "c1", lifecycle.DefaultLogLines).
		Return(io.NopCloser(strings.NewReader(raw)), nil)

	lines, err := f.m.Logs(context.Background(), "s1", 0)
	require.NoError(t, err)
	require.Len(t, lines, 2)
	require.Equal(t, "[INFO] Starting", lines[0].Message)
	require.Equal(t, "info", lines[0].Level)
	require.Equal(t, "error", lines[1].Level)
}
