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

package environment_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/whatahelll/wings/wings/egg"
	"github.com/whatahelll/wings/wings/environment"
	"github.com/whatahelll/wings/wings/gameserver"
)

var mcVars = []egg.Variable{
	{Name: "Server Version", EnvVariable: "MINECRAFT_VERSION", DefaultValue: "latest"},
	{Name: "Max Players", EnvVariable: "MAX_PLAYERS", DefaultValue: "20"},
}

func TestRender(t *testing.T) {
	tests := []struct {
		name     string
		tmpl     string
		vars     []egg.Variable
		cfg      gameserver.Config
		expected string
	}{
		{
			name:     "memory placeholder",
			tmpl:     "java -Xmx{{SERVER_MEMORY}}M -jar server.jar",
			cfg:      gameserver.Config{Plan: gameserver.Plan{RAM: 2}},
			expected: "java -Xmx2048M -jar server.jar",
		},
		{
			name:     "port placeholder",
			tmpl:     "./run --port {{server.build.default.port}}",
			cfg:      gameserver.Config{Port: 7777},
			expected: "./run --port 7777",
		},
		{
			name: "override wins over default",
			tmpl: "run --max {{MAX_PLAYERS}} --version {{MINECRAFT_VERSION}}",
			vars: mcVars,
			cfg: gameserver.Config{
				Variables: gameserver.Variables{"MAX_PLAYERS": "10"},
			},
			expected: "run --max 10 --version latest",
		},
		{
			name: "empty override falls back to default",
			tmpl: "{{MAX_PLAYERS}}",
			vars: mcVars,
			cfg: gameserver.Config{
				Variables: gameserver.Variables{"MAX_PLAYERS": ""},
			},
			expected: "20",
		},
		{
			name:     "unresolved placeholders stay",
			tmpl:     "run {{UNKNOWN}} {{server.build.env.X}}",
			vars:     mcVars,
			expected: "run {{UNKNOWN}} {{server.build.env.X}}",
		},
		{
			name: "regex characters in names are literal",
			tmpl: "a {{A.B}} {{AxB}}",
			vars: []egg.Variable{
				{Name: "dot", EnvVariable: "A.B", DefaultValue: "dot"},
			},
			expected: "a dot {{AxB}}",
		},
		{
			name: "replacement is literal",
			tmpl: "{{X}}",
			vars: []egg.Variable{
				{Name: "x", EnvVariable: "X", DefaultValue: "$1 ${name}"},
			},
			expected: "$1 ${name}",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := environment.Render(tt.tmpl, tt.vars, tt.cfg)
			require.Equal(t, tt.expected, got)
		})
	}
}

func TestRenderIsPure(t *testing.T) {
	var (
		tmpl = "java -Xmx{{SERVER_MEMORY}}M {{MAX_PLAYERS}} {{NOPE}}"
		cfg  = gameserver.Config{
			Port:      25565,
			Plan:      gameserver.Plan{RAM: 4},
			Variables: gameserver.Variables{"MAX_PLAYERS": "5"},
		}
		first = environment.Render(tmpl, mcVars, cfg)
	)

	for range 10 {
		require.Equal(t, first, environment.Render(tmpl, mcVars, cfg))
	}
	require.Equal(t, gameserver.Variables{"MAX_PLAYERS": "5"}, cfg.Variables)
}

func TestResolve(t *testing.T) {
	cfg := gameserver.Config{
		Port:      25565,
		Plan:      gameserver.Plan{RAM: 2, CPU: 1},
		Variables: gameserver.Variables{"MAX_PLAYERS": "10", "IGNORED": "x"},
	}

	expected := []string{
		"MINECRAFT_VERSION=latest",
		"MAX_PLAYERS=10",
		"SERVER_MEMORY=2048",
		"SERVER_PORT=25565",
		"PUID=1000",
		"PGID=1000",
	}

	if d := cmp.Diff(expected, environment.Resolve(mcVars, cfg)); d != "" {
		t.Fatalf("env mismatch (-want +got):\n%s", d)
	}
}
