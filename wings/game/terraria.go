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
	"fmt"
	"io"
	"path/filepath"

	"github.com/whatahelll/wings/wings/egg"
	"github.com/whatahelll/wings/wings/gameserver"
	"github.com/whatahelll/wings/wings/runtime"
)

const (
	GameTerraria = "terraria"

	DefaultDotnetImage = "mono:latest"
)

var terrariaReadyMarkers = []string{
	"Server started",
	"Listening on port",
	"Type 'help' for a list of commands",
	"Server is now online",
	"Ready for players",
}

var terrariaDirs = []string{
	".local/share/Terraria/Worlds",
	".local/share/Terraria/Players",
	".local/share/Terraria/ModLoader",
	"saves",
}

// Terraria returns the variant for terraria dedicated servers. the
// egg image is never used, image wins if set, otherwise dotnetImage.
func Terraria(image, dotnetImage string) Variant {
	if dotnetImage == "" {
		dotnetImage = DefaultDotnetImage
	}
	return Variant{
		Game: GameTerraria,
		ResolveImage: func(Provider, egg.Egg) string {
			if image != "" {
				return image
			}
			return dotnetImage
		},
		PrepareFilesystem: func(base Provider, dir string, cfg gameserver.Config) error {
			if err := base.PrepareFilesystem(dir, cfg); err != nil {
				return err
			}

			if err := mkdirs(dir, terrariaDirs...); err != nil {
				return err
			}

			if err := writeIfAbsent(filepath.Join(dir, "serverconfig.txt"), func(w io.Writer) error {
				return writeTerrariaConfig(w, cfg)
			}); err != nil {
				return err
			}

			return writeIfAbsent(filepath.Join(dir, "banlist.txt"), staticContent(""))
		},
		Environment: func(_ Provider, cfg gameserver.Config) []string {
			return []string{
				"WORLD_NAME=" + variable(cfg, "WORLD_NAME", "PyroWorld"),
				"MAX_PLAYERS=" + variable(cfg, "MAX_PLAYERS", "8"),
				"SERVER_PASSWORD=" + variable(cfg, "SERVER_PASSWORD", ""),
				"AUTOCREATE=" + variable(cfg, "AUTOCREATE", "2"),
				"DIFFICULTY=" + variable(cfg, "DIFFICULTY", "1"),
				"WORLD_SIZE=" + variable(cfg, "WORLD_SIZE", "2"),
			}
		},
		ContainerSpec: func(base Provider, req SpecRequest) runtime.ContainerSpec {
			return elevate(base.ContainerSpec(req))
		},
		Ready: func(base Provider, chunk string, e egg.Egg) bool {
			return containsAny(chunk, terrariaReadyMarkers) || base.Ready(chunk, e)
		},
	}
}

// the terraria server reads plain key=value lines without any
// escaping, so this is not written as a properties file.
func writeTerrariaConfig(w io.Writer, cfg gameserver.Config) error {
	saves := gameserver.ContainerHomeDir + "/saves/"
	lines := [][2]string{
		{"world", saves + "world.wld"},
		{"autocreate", variable(cfg, "AUTOCREATE", "2")},
		{"worldname", variable(cfg, "WORLD_NAME", "PyroWorld")},
		{"difficulty", variable(cfg, "DIFFICULTY", "1")},
		{"maxplayers", variable(cfg, "MAX_PLAYERS", "8")},
		{"port", fmt.Sprint(cfg.Port)},
		{"password", variable(cfg, "SERVER_PASSWORD", "")},
		{"motd", variable(cfg, "SERVER_MOTD", "Welcome to Pyro Terraria Server!")},
		{"worldpath", saves},
		{"banlist", "banlist.txt"},
		{"secure", "1"},
		{"language", "en-US"},
		{"npcstream", "60"},
		{"priority", "1"},
	}

	for _, l := range lines {
		if _, err := fmt.Fprintf(w, "%s=%s\n", l[0], l[1]); err != nil {
			return err
		}
	}
	return nil
}
