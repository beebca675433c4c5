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

package install_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	mocky "github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/whatahelll/wings/internal/mock"
	"github.com/whatahelll/wings/test"
	"github.com/whatahelll/wings/wings/egg"
	"github.com/whatahelll/wings/wings/event"
	"github.com/whatahelll/wings/wings/game"
	"github.com/whatahelll/wings/wings/gameserver"
	"github.com/whatahelll/wings/wings/install"
	"github.com/whatahelll/wings/wings/runtime"
	"github.com/whatahelll/wings/wings/status"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func installRequest(inst *egg.Installation) install.Request {
	return install.Request{
		Config: gameserver.Config{
			ServerID: "s1",
			EggID:    "minecraft",
			Game:     "minecraft",
			Port:     25565,
			Plan:     gameserver.Plan{RAM: 2, CPU: 1},
		},
		Egg: egg.Egg{
			Name:    "Minecraft",
			Startup: "java -jar server.jar",
			Scripts: egg.Scripts{Installation: inst},
			Variables: []egg.Variable{
				{Name: "Version", EnvVariable: "MINECRAFT_VERSION", DefaultValue: "latest"},
			},
		},
		Provider:  game.NewDefault(game.Images{}),
		ServerDir: "/data/servers/s1",
	}
}

func exited(code int64, err error) <-chan runtime.WaitResult {
	ch := make(chan runtime.WaitResult, 1)
	ch <- runtime.WaitResult{StatusCode: code, Err: err}
	return ch
}

func TestPipelineRun(t *testing.T) {
	inst := &egg.Installation{
		Script:    "echo installing",
		Container: "ghcr.io/example/installer:1",
	}

	tests := []struct {
		name     string
		inst     *egg.Installation
		statuses []string
		wantErr  bool
		errIs    error
		prep     func(*mock.MockRuntimeService)
	}{
		{
			name:     "no installation step",
			inst:     nil,
			statuses: []string{"offline"},
			prep:     func(*mock.MockRuntimeService) {},
		},
		{
			name:     "exit code zero",
			inst:     inst,
			statuses: []string{"offline"},
			prep: func(rt *mock.MockRuntimeService) {
				rt.EXPECT().EnsureImage(mocky.Anything, "ghcr.io/example/installer:1").Return(nil)
				rt.EXPECT().RemoveContainer(mocky.Anything, "pyro-s1-installer").Return(nil)
				rt.EXPECT().CreateContainer(mocky.Anything, mocky.Anything).Return("c1", nil)
				rt.EXPECT().
					AttachContainer(mocky.Anything, "c1", false).
					Return(io.NopCloser(strings.NewReader("installing\n")), nil)
				rt.EXPECT().WaitContainer(mocky.Anything, "c1").Return(exited(0, nil))
				rt.EXPECT().StartContainer(mocky.Anything, "c1").Return(nil)
			},
		},
		{
			name:     "non zero exit code",
			inst:     inst,
			statuses: []string{"install_failed"},
			wantErr:  true,
			errIs:    install.ErrInstallFailed,
			prep: func(rt *mock.MockRuntimeService) {
				rt.EXPECT().EnsureImage(mocky.Anything, "ghcr.io/example/installer:1").Return(nil)
				rt.EXPECT().RemoveContainer(mocky.Anything, "pyro-s1-installer").Return(nil)
				rt.EXPECT().CreateContainer(mocky.Anything, mocky.Anything).Return("c1", nil)
				rt.EXPECT().
					AttachContainer(mocky.Anything, "c1", false).
					Return(io.NopCloser(strings.NewReader("boom\n")), nil)
				rt.EXPECT().WaitContainer(mocky.Anything, "c1").Return(exited(1, nil))
				rt.EXPECT().StartContainer(mocky.Anything, "c1").Return(nil)
			},
		},
		{
			name:     "image pull fails",
			inst:     inst,
			statuses: []string{"install_failed"},
			wantErr:  true,
			prep: func(rt *mock.MockRuntimeService) {
				rt.EXPECT().
					EnsureImage(mocky.Anything, "ghcr.io/example/installer:1").
					Return(errors.New("pull access denied"))
			},
		},
		{
			name:     "attach fails",
			inst:     inst,
			statuses: []string{"install_failed"},
			wantErr:  true,
			prep: func(rt *mock.MockRuntimeService) {
				rt.EXPECT().EnsureImage(mocky.Anything, "ghcr.io/example/installer:1").Return(nil)
				rt.EXPECT().RemoveContainer(mocky.Anything, "pyro-s1-installer").Return(nil)
				rt.EXPECT().CreateContainer(mocky.Anything, mocky.Anything).Return("c1", nil)
				rt.EXPECT().
					AttachContainer(mocky.Anything, "c1", false).
					Return(nil, errors.New("attach refused"))
				rt.EXPECT().RemoveContainer(mocky.Anything, "c1").Return(nil)
			},
		},
		{
			name:     "start fails",
			inst:     inst,
			statuses: []string{"install_failed"},
			wantErr:  true,
			prep: func(rt *mock.MockRuntimeService) {
				rt.EXPECT().EnsureImage(mocky.Anything, "ghcr.io/example/installer:1").Return(nil)
				rt.EXPECT().RemoveContainer(mocky.Anything, "pyro-s1-installer").Return(nil)
				rt.EXPECT().CreateContainer(mocky.Anything, mocky.Anything).Return("c1", nil)
				rt.EXPECT().
					AttachContainer(mocky.Anything, "c1", false).
					Return(io.NopCloser(strings.NewReader("")), nil)
				rt.EXPECT().WaitContainer(mocky.Anything, "c1").Return(make(chan runtime.WaitResult))
				rt.EXPECT().StartContainer(mocky.Anything, "c1").Return(errors.New("no such image"))
				rt.EXPECT().RemoveContainer(mocky.Anything, "c1").Return(nil)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var (
				rt       = mock.NewMockRuntimeService(t)
				rec      = test.NewRecorder()
				notifier = status.NewNotifier(discardLogger, rec, nil, 0)
				p        = install.NewPipeline(discardLogger, rt, rec, notifier)
			)

			tt.prep(rt)

			err := p.Run(context.Background(), installRequest(tt.inst))
			if tt.wantErr {
				require.Error(t, err)
				if tt.errIs != nil {
					require.ErrorIs(t, err, tt.errIs)
				}
			} else {
				require.NoError(t, err)
			}

			require.Equal(t, tt.statuses, rec.Statuses())
		})
	}
}

func TestPipelineContainerSpec(t *testing.T) {
	var (
		rt       = mock.NewMockRuntimeService(t)
		rec      = test.NewRecorder()
		notifier = status.NewNotifier(discardLogger, rec, nil, 0)
		p        = install.NewPipeline(discardLogger, rt, rec, notifier)
		got      runtime.ContainerSpec
	)

	rt.EXPECT().EnsureImage(mocky.Anything, game.DefaultInstallerImage).Return(nil)
	rt.EXPECT().RemoveContainer(mocky.Anything, "pyro-s1-installer").Return(nil)
	rt.EXPECT().
		CreateContainer(mocky.Anything, mocky.Anything).
		Run(func(_ context.Context, spec runtime.ContainerSpec) {
			got = spec
		}).
		Return("c1", nil)
	rt.EXPECT().
		AttachContainer(mocky.Anything, "c1", false).
		Return(io.NopCloser(strings.NewReader("done\n")), nil)
	rt.EXPECT().WaitContainer(mocky.Anything, "c1").Return(exited(0, nil))
	rt.EXPECT().StartContainer(mocky.Anything, "c1").Return(nil)

	req := installRequest(&egg.Installation{Script: "./install.sh", Entrypoint: "ash"})
	require.NoError(t, p.Run(context.Background(), req))

	expected := runtime.ContainerSpec{
		Name:  "pyro-s1-installer",
		Image: game.DefaultInstallerImage,
		Cmd:   []string{"ash", "-c", "./install.sh"},
		Env: []string{
			"MINECRAFT_VERSION=latest",
			"SERVER_MEMORY=2048",
			"SERVER_PORT=25565",
			"PUID=1000",
			"PGID=1000",
		},
		WorkingDir: "/mnt/server",
		Binds: []runtime.Bind{
			{HostPath: "/data/servers/s1", ContainerPath: "/mnt/server", Mode: "rw"},
		},
		Labels:      map[string]string{runtime.LabelInstallID: "s1"},
		MemoryBytes: 2 * 1024 * 1024 * 1024,
		CPUPeriod:   100000,
		CPUQuota:    100000,
		AutoRemove:  true,
	}

	if d := cmp.Diff(expected, got); d != "" {
		t.Fatalf("mismatch (-want +got):\n%s", d)
	}

	var logs []string
	for _, e := range rec.Events() {
		if p, ok := e.Payload.(event.LogPayload); ok {
			logs = append(logs, p.Message)
		}
	}
	require.Equal(t, []string{"done\n"}, logs)
}
