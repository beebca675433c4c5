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

package observe

import (
	"regexp"
	"strings"
	"time"
)

const (
	LevelInfo    = "info"
	LevelWarning = "warning"
	LevelError   = "error"
)

var timestampRegex = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}\.\d+Z)\s?`)

type Line struct {
	Timestamp time.Time `json:"timestamp"`
	Level     string    `json:"level"`
	Message   string    `json:"message"`
}

func Classify(line string) string {
	switch {
	case strings.Contains(line, "ERROR"):
		return LevelError
	case strings.Contains(line, "WARN"):
		return LevelWarning
	default:
		return LevelInfo
	}
}

// ParseLines splits raw log output into lines. a leading timestamp,
// as added by the runtime, is split off. lines without one get now.
// blank lines are dropped.
func ParseLines(raw string, now func() time.Time) []Line {
	var ret []Line
	for _, l := range strings.Split(raw, "\n") {
		l = strings.TrimRight(l, "\r")
		if strings.TrimSpace(l) == "" {
			continue
		}

		line := Line{
			Message: l,
		}

		if m := timestampRegex.FindStringSubmatch(l); m != nil {
			if ts, err := time.Parse(time.RFC3339Nano, m[1]); err == nil {
				line.Timestamp = ts
				line.Message = l[len(m[0]):]
			}
		}

		if line.Timestamp.IsZero() {
			line.Timestamp = now()
		}

		line.Message = strings.TrimSpace(line.Message)
		line.Level = Classify(line.Message)
		ret = append(ret, line)
	}
	return ret
}
