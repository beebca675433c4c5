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

// Package environment resolves egg variables into container
// environment entries and renders startup command templates.
package environment

import (
	"regexp"
	"strconv"

	"github.com/whatahelll/wings/wings/egg"
	"github.com/whatahelll/wings/wings/gameserver"
)

const (
	MemoryPlaceholder = "{{SERVER_MEMORY}}"
	PortPlaceholder   = "{{server.build.default.port}}"

	ProcessUID = 1000
	ProcessGID = 1000
)

// Value returns the effective value of v: the override if one is
// set and non-empty, otherwise the egg default.
func Value(v egg.Variable, overrides gameserver.Variables) string {
	if val, ok := overrides[v.EnvVariable]; ok && val != "" {
		return val
	}
	return v.DefaultValue
}

// Resolve builds the environment list shared by install and runtime
// containers. declared variables come first, in egg order, followed
// by the fixed entries.
func Resolve(vars []egg.Variable, cfg gameserver.Config) []string {
	env := make([]string, 0, len(vars)+4)
	for _, v := range vars {
		env = append(env, v.EnvVariable+"="+Value(v, cfg.Variables))
	}

	return append(env,
		"SERVER_MEMORY="+strconv.FormatInt(cfg.MemoryMB(), 10),
		"SERVER_PORT="+strconv.Itoa(cfg.Port),
		"PUID="+strconv.Itoa(ProcessUID),
		"PGID="+strconv.Itoa(ProcessGID),
	)
}

// Render substitutes every declared variable placeholder and the
// reserved memory and port placeholders in tmpl. placeholders
// without a value are left untouched.
func Render(tmpl string, vars []egg.Variable, cfg gameserver.Config) string {
	out := tmpl
	for _, v := range vars {
		if v.EnvVariable == "" {
			continue
		}
		out = replace(out, "{{"+v.EnvVariable+"}}", Value(v, cfg.Variables))
	}

	out = replace(out, MemoryPlaceholder, strconv.FormatInt(cfg.MemoryMB(), 10))
	out = replace(out, PortPlaceholder, strconv.Itoa(cfg.Port))
	return out
}

func replace(s, placeholder, value string) string {
	return regexp.MustCompile(regexp.QuoteMeta(placeholder)).ReplaceAllLiteralString(s, value)
}
