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

package api

import (
	"context"

	"github.com/whatahelll/wings/wings/egg"
	"github.com/whatahelll/wings/wings/gameserver"
	"github.com/whatahelll/wings/wings/observe"
	"github.com/whatahelll/wings/wings/stats"
)

// Service is what the HTTP surface needs from the lifecycle manager.
type Service interface {
	Configure(ctx context.Context, cfg gameserver.Config) error
	Install(ctx context.Context, serverID string) error
	Start(ctx context.Context, serverID string) error
	Stop(ctx context.Context, serverID string) error
	Restart(ctx context.Context, serverID string) error
	Kill(ctx context.Context, serverID string) error
	Stats(ctx context.Context, serverID string) (stats.Snapshot, error)
	Logs(ctx context.Context, serverID string, lines int) ([]observe.Line, error)
	SendCommand(ctx context.Context, serverID, command string) error
}

type Catalog interface {
	List() ([]egg.Entry, error)
	ByGame(game string) ([]egg.Egg, error)
}
