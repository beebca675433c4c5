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
	"io"
	"path/filepath"
	"strconv"

	"github.com/magiconair/properties"
	"github.com/whatahelll/wings/wings/egg"
	"github.com/whatahelll/wings/wings/gameserver"
	"github.com/whatahelll/wings/wings/runtime"
)

const GameMinecraft = "minecraft"

var minecraftReadyMarkers = []string{
	"Done (",
	"Time elapsed:",
	`For help, type "help"`,
	"Starting minecraft server version",
	"Server startup complete",
}

var minecraftDirs = []string{
	"versions",
	"world",
	"logs",
	"plugins",
	"mods",
	"config",
	"libraries",
}

// server.properties keys in file order, with the variable used to
// override each and its default.
var minecraftProperties = []struct {
	key      string
	variable string
	def      string
}{
	{"max-players", "MAX_PLAYERS", "20"},
	{"motd", "SERVER_MOTD", "A Pyro Minecraft Server"},
	{"gamemode", "GAMEMODE", "survival"},
	{"difficulty", "DIFFICULTY", "normal"},
	{"level-name", "LEVEL_NAME", "world"},
	{"level-seed", "LEVEL_SEED", ""},
	{"pvp", "PVP", "true"},
	{"online-mode", "ONLINE_MODE", "true"},
	{"white-list", "WHITE_LIST", "false"},
	{"enforce-whitelist", "ENFORCE_WHITELIST", "false"},
	{"spawn-protection", "SPAWN_PROTECTION", "16"},
	{"max-world-size", "MAX_WORLD_SIZE", "29999984"},
	{"enable-command-block", "ENABLE_COMMAND_BLOCK", "false"},
}

// Minecraft returns the variant for java edition servers. image
// replaces the egg image if set.
func Minecraft(image string) Variant {
	return Variant{
		Game: GameMinecraft,
		ResolveImage: func(base Provider, e egg.Egg) string {
			if image != "" {
				return image
			}
			return base.ResolveImage(e)
		},
		PrepareFilesystem: func(base Provider, dir string, cfg gameserver.Config) error {
			if err := base.PrepareFilesystem(dir, cfg); err != nil {
				return err
			}

			if err := mkdirs(dir, minecraftDirs...); err != nil {
				return err
			}

			if err := writeIfAbsent(filepath.Join(dir, "eula.txt"), staticContent("eula=true\n")); err != nil {
				return err
			}

			return writeIfAbsent(filepath.Join(dir, "server.properties"), func(w io.Writer) error {
				return writeServerProperties(w, cfg)
			})
		},
		Environment: func(_ Provider, cfg gameserver.Config) []string {
			return []string{
				"MINECRAFT_VERSION=" + variable(cfg, "MINECRAFT_VERSION", "latest"),
				"SERVER_TYPE=" + variable(cfg, "SERVER_TYPE", "VANILLA"),
				"EULA=TRUE",
				"ENABLE_RCON=" + variable(cfg, "ENABLE_RCON", "true"),
				"RCON_PORT=" + variable(cfg, "RCON_PORT", "25575"),
				"RCON_PASSWORD=" + variable(cfg, "RCON_PASSWORD", "minecraft"),
			}
		},
		ContainerSpec: func(base Provider, req SpecRequest) runtime.ContainerSpec {
			return elevate(base.ContainerSpec(req))
		},
		Ready: func(base Provider, chunk string, e egg.Egg) bool {
			return containsAny(chunk, minecraftReadyMarkers) || base.Ready(chunk, e)
		},
	}
}

func writeServerProperties(w io.Writer, cfg gameserver.Config) error {
	p := properties.NewProperties()
	p.WriteSeparator = "="

	if _, _, err := p.Set("server-port", strconv.Itoa(cfg.Port)); err != nil {
		return err
	}

	for _, prop := range minecraftProperties {
		if _, _, err := p.Set(prop.key, variable(cfg, prop.variable, prop.def)); err != nil {
			return err
		}
	}

	_, err := p.Write(w, properties.UTF8)
	return err
}
