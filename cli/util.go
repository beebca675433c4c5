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

package cli

import (
	"github.com/rodaine/table"
)

// Section is a table with no column headers. the main purpose
// of this is to align values when printing, so they are on the
// same level. here's an example:
// what we don't want:
//
//	CPU: 12.5%
//	Memory: 512.00 / 2048.00 MB
//	Network: rx 1024 tx 2048
//
// what we want:
//
//	CPU:       12.5%
//	Memory:    512.00 / 2048.00 MB
//	Network:   rx 1024 tx 2048
func Section() table.Table {
	t := table.New("", "")
	t.WithHeaderFormatter(func(s string, i ...any) string {
		return ""
	})
	return t
}
