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

package errors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	wingserrors "github.com/whatahelll/wings/wings/errors"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name:     "validation",
			err:      wingserrors.ErrInvalidServerID,
			expected: http.StatusBadRequest,
		},
		{
			name:     "conflict wrapped",
			err:      fmt.Errorf("stop: %w", wingserrors.ErrNotRunning),
			expected: http.StatusConflict,
		},
		{
			name:     "not found",
			err:      wingserrors.ErrEggNotFound,
			expected: http.StatusNotFound,
		},
		{
			name:     "plain error is runtime",
			err:      errors.New("boom"),
			expected: http.StatusInternalServerError,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, wingserrors.HTTPStatus(tt.err))
		})
	}
}

func TestIsMatchesSentinelWithCause(t *testing.T) {
	cause := errors.New("open eggs/x.json: no such file")
	err := wingserrors.New(wingserrors.KindNotFound, "egg does not exist", cause)

	require.ErrorIs(t, err, wingserrors.ErrEggNotFound)
	require.ErrorIs(t, err, cause)
	require.Equal(t, "egg does not exist: open eggs/x.json: no such file", err.Error())
}
