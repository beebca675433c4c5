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
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestImportDirSkipsInvalidEggs(t *testing.T) {
	var (
		src    = t.TempDir()
		dst    = t.TempDir()
		logger = slog.New(slog.NewTextHandler(os.Stdout, nil))
		syncer = NewGitSyncer(logger, SyncConfig{}, NewStore(dst))
	)

	files := map[string]string{
		"good.json":   `{"name":"Good","startup":"run"}`,
		"bad.json":    `{"name":"Bad"}`,
		"notes.txt":   `not an egg`,
		"broken.json": `{`,
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(src, name), []byte(content), 0o644))
	}

	n, err := syncer.importDir(context.Background(), src)
	require.NoError(t, err)
	require.Equal(t, 1, n)

	_, err = os.Stat(filepath.Join(dst, "good.json"))
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dst, "bad.json"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestSyncRequiresRepoURL(t *testing.T) {
	var (
		logger = slog.New(slog.NewTextHandler(os.Stdout, nil))
		syncer = NewGitSyncer(logger, SyncConfig{Branch: "main"}, NewStore(t.TempDir()))
	)

	_, err := syncer.Sync(context.Background())
	require.ErrorIs(t, err, ErrRepoURLMissing)
}
