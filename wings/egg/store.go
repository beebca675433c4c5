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

package egg

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	wingserrors "github.com/whatahelll/wings/wings/errors"
	"github.com/whatahelll/wings/wings/gameserver"
)

//go:embed defaults/*.json
var defaults embed.FS

type Loader interface {
	Load(id string) (Egg, error)
}

// Store reads eggs from a directory. nothing is cached, every
// call goes to disk, so synced or edited eggs are picked up
// without a restart.
type Store struct {
	dir string
}

func NewStore(dir string) *Store {
	return &Store{
		dir: dir,
	}
}

func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) Load(id string) (Egg, error) {
	if !gameserver.ValidID(id) {
		return Egg{}, wingserrors.ErrInvalidEggID
	}

	data, err := os.ReadFile(filepath.Join(s.dir, id+".json"))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Egg{}, wingserrors.ErrEggNotFound.WithCause(err)
		}
		return Egg{}, fmt.Errorf("read egg: %w", err)
	}

	e, err := Parse(data)
	if err != nil {
		return Egg{}, wingserrors.New(wingserrors.KindValidation, "egg "+id+" is invalid", err)
	}

	e.ID = id
	return e, nil
}

func Parse(data []byte) (Egg, error) {
	var e Egg
	if err := json.Unmarshal(data, &e); err != nil {
		return Egg{}, fmt.Errorf("decode egg: %w", err)
	}

	if err := Validate(e); err != nil {
		return Egg{}, err
	}

	return e, nil
}

// Entry is the result of listing a single egg file.
type Entry struct {
	ID  string
	Egg Egg
	Err error
}

// List returns an entry for every egg file in the store, sorted
// by id. eggs that fail to load carry the error instead.
func (s *Store) List() ([]Entry, error) {
	files, err := os.ReadDir(s.dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read eggs dir: %w", err)
	}

	entries := make([]Entry, 0, len(files))
	for _, f := range files {
		if f.IsDir() || !strings.HasSuffix(f.Name(), ".json") {
			continue
		}

		id := strings.TrimSuffix(f.Name(), ".json")
		e, err := s.Load(id)
		entries = append(entries, Entry{
			ID:  id,
			Egg: e,
			Err: err,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].ID < entries[j].ID
	})

	return entries, nil
}

// ByGame returns all valid eggs meant for the given game. eggs
// without an explicit game hint match by id prefix.
func (s *Store) ByGame(game string) ([]Egg, error) {
	entries, err := s.List()
	if err != nil {
		return nil, err
	}

	var ret []Egg
	for _, en := range entries {
		if en.Err != nil {
			continue
		}
		if strings.EqualFold(en.Egg.Game, game) ||
			(en.Egg.Game == "" && strings.HasPrefix(strings.ToLower(en.ID), strings.ToLower(game))) {
			ret = append(ret, en.Egg)
		}
	}

	return ret, nil
}

// EnsureDefaults writes the built-in eggs into the store, skipping
// every egg that already exists. returns the ids that were written.
func (s *Store) EnsureDefaults() ([]string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return nil, fmt.Errorf("create eggs dir: %w", err)
	}

	files, err := fs.ReadDir(defaults, "defaults")
	if err != nil {
		return nil, fmt.Errorf("read default eggs: %w", err)
	}

	var written []string
	for _, f := range files {
		dst := filepath.Join(s.dir, f.Name())
		if _, err := os.Stat(dst); err == nil {
			continue
		}

		data, err := defaults.ReadFile("defaults/" + f.Name())
		if err != nil {
			return nil, fmt.Errorf("read default egg %s: %w", f.Name(), err)
		}

		if err := os.WriteFile(dst, data, 0o644); err != nil {
			return nil, fmt.Errorf("write default egg %s: %w", f.Name(), err)
		}

		written = append(written, strings.TrimSuffix(f.Name(), ".json"))
	}

	return written, nil
}
