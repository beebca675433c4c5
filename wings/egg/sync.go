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
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	githttp "github.com/go-git/go-git/v5/plumbing/transport/http"
	"github.com/pkg/errors"
)

var ErrRepoURLMissing = errors.New("egg repository url is not set")

type SyncConfig struct {
	RepoURL string
	Branch  string
	// Path is the directory inside the repository containing the eggs.
	Path  string
	Token string
}

// GitSyncer fetches eggs from a git repository into a Store.
type GitSyncer struct {
	logger *slog.Logger
	cfg    SyncConfig
	store  *Store
}

func NewGitSyncer(logger *slog.Logger, cfg SyncConfig, store *Store) *GitSyncer {
	return &GitSyncer{
		logger: logger.With("component", "egg-syncer"),
		cfg:    cfg,
		store:  store,
	}
}

// Sync shallow clones the configured branch and copies every valid
// egg into the store, overwriting local copies. it returns the
// number of eggs imported.
func (s *GitSyncer) Sync(ctx context.Context) (int, error) {
	if s.cfg.RepoURL == "" {
		return 0, ErrRepoURLMissing
	}

	tmp, err := os.MkdirTemp("", "wings-eggs-*")
	if err != nil {
		return 0, fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(tmp)

	opts := &git.CloneOptions{
		URL:           s.cfg.RepoURL,
		ReferenceName: plumbing.NewBranchReferenceName(s.cfg.Branch),
		SingleBranch:  true,
		Depth:         1,
	}

	if s.cfg.Token != "" {
		// github accepts any non-empty user name for token auth
		opts.Auth = &githttp.BasicAuth{
			Username: "wings",
			Password: s.cfg.Token,
		}
	}

	s.logger.InfoContext(ctx, "cloning egg repository", "url", s.cfg.RepoURL, "branch", s.cfg.Branch)

	if _, err := git.PlainCloneContext(ctx, tmp, false, opts); err != nil {
		return 0, fmt.Errorf("clone egg repository: %w", err)
	}

	n, err := s.importDir(ctx, filepath.Join(tmp, filepath.Clean("/"+s.cfg.Path)))
	if err != nil {
		return 0, err
	}

	s.logger.InfoContext(ctx, "eggs synced", "count", n)
	return n, nil
}

func (s *GitSyncer) importDir(ctx context.Context, src string) (int, error) {
	files, err := os.ReadDir(src)
	if err != nil {
		return 0, fmt.Errorf("read egg source dir: %w", err)
	}

	if err := os.MkdirAll(s.store.Dir(), 0o755); err != nil {
		return 0, fmt.Errorf("create eggs dir: %w", err)
	}

	n := 0
	for _, f := range files {
		if f.IsDir() || !strings.HasSuffix(f.Name(), ".json") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(src, f.Name()))
		if err != nil {
			return n, fmt.Errorf("read egg %s: %w", f.Name(), err)
		}

		if _, err := Parse(data); err != nil {
			s.logger.WarnContext(ctx, "skipping invalid egg", "file", f.Name(), "err", err)
			continue
		}

		if err := os.WriteFile(filepath.Join(s.store.Dir(), f.Name()), data, 0o644); err != nil {
			return n, fmt.Errorf("write egg %s: %w", f.Name(), err)
		}
		n++
	}

	return n, nil
}
