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

package gameserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	wingserrors "github.com/whatahelll/wings/wings/errors"
)

type Store interface {
	Save(ctx context.Context, cfg Config) error
	Get(ctx context.Context, serverID string) (Config, error)
}

// FileStore keeps one JSON document per server in dir.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{
		dir: dir,
	}
}

func (s *FileStore) path(serverID string) string {
	return filepath.Join(s.dir, serverID+".json")
}

func (s *FileStore) Save(_ context.Context, cfg Config) error {
	if !ValidID(cfg.ServerID) {
		return wingserrors.ErrInvalidServerID
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, "."+cfg.ServerID+"-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write config: %w", err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close config: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path(cfg.ServerID)); err != nil {
		return fmt.Errorf("rename config: %w", err)
	}

	return nil
}

func (s *FileStore) Get(_ context.Context, serverID string) (Config, error) {
	if !ValidID(serverID) {
		return Config{}, wingserrors.ErrInvalidServerID
	}

	data, err := os.ReadFile(s.path(serverID))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Config{}, wingserrors.ErrServerConfigMissing.WithCause(err)
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	// the file name is authoritative
	cfg.ServerID = serverID
	return cfg, nil
}
