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

package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	wingserrors "github.com/whatahelll/wings/wings/errors"
	"github.com/whatahelll/wings/wings/gameserver"
)

var _ gameserver.Store = (*DB)(nil)

const (
	upsertServerConfig = `
INSERT INTO server_configs (id, data, updated_at)
VALUES ($1, $2, now())
ON CONFLICT (id) DO UPDATE
SET data = EXCLUDED.data, updated_at = EXCLUDED.updated_at`

	getServerConfig = `SELECT data FROM server_configs WHERE id = $1`
)

func (db *DB) Save(ctx context.Context, cfg gameserver.Config) error {
	if !gameserver.ValidID(cfg.ServerID) {
		return wingserrors.ErrInvalidServerID
	}

	data, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return db.do(ctx, func(conn *pgxpool.Conn) error {
		if _, err := conn.Exec(ctx, upsertServerConfig, cfg.ServerID, data); err != nil {
			return fmt.Errorf("upsert server config: %w", err)
		}
		return nil
	})
}

func (db *DB) Get(ctx context.Context, serverID string) (gameserver.Config, error) {
	if !gameserver.ValidID(serverID) {
		return gameserver.Config{}, wingserrors.ErrInvalidServerID
	}

	var data []byte
	if err := db.do(ctx, func(conn *pgxpool.Conn) error {
		return conn.QueryRow(ctx, getServerConfig, serverID).Scan(&data)
	}); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return gameserver.Config{}, wingserrors.ErrServerConfigMissing.WithCause(err)
		}
		return gameserver.Config{}, fmt.Errorf("get server config: %w", err)
	}

	var cfg gameserver.Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return gameserver.Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	return cfg, nil
}
