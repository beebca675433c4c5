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

package fixture

import (
	"github.com/whatahelll/wings/wings/gameserver"
)

// ServerConfig returns a valid config for a minecraft server.
func ServerConfig(serverID string) gameserver.Config {
	return gameserver.Config{
		ServerID: serverID,
		Name:     "Survival",
		EggID:    "minecraft",
		Game:     "minecraft",
		Port:     25565,
		Plan: gameserver.Plan{
			RAM: 2,
			CPU: 1,
		},
		Variables: gameserver.Variables{
			"MAX_PLAYERS": "10",
		},
	}
}
