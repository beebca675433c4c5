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
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"

	"github.com/hashicorp/go-multierror"
	wingserrors "github.com/whatahelll/wings/wings/errors"
)

const (
	// the runtime container always sees its files here.
	ContainerHomeDir = "/home/container"
	// install containers mount the server directory here.
	InstallMountDir = "/mnt/server"

	DefaultGame = "default"
)

var idRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_.-]*$`)

// ValidID reports whether id can safely be used as a path
// element and as part of a container name.
func ValidID(id string) bool {
	return len(id) <= 128 && idRegex.MatchString(id)
}

type Plan struct {
	// RAM in gigabytes.
	RAM float64 `json:"ram"`
	// CPU in cores.
	CPU float64 `json:"cpu"`
}

// Config is the desired state of a single server instance as
// handed to us by the panel.
type Config struct {
	ServerID  string    `json:"serverId"`
	Name      string    `json:"name,omitempty"`
	EggID     string    `json:"eggId"`
	Game      string    `json:"game,omitempty"`
	Port      int       `json:"port"`
	Plan      Plan      `json:"plan"`
	Variables Variables `json:"variables,omitempty"`
}

func (c Config) MemoryMB() int64 {
	return int64(c.Plan.RAM * 1024)
}

func (c Config) MemoryBytes() int64 {
	return c.MemoryMB() * 1024 * 1024
}

func (c Config) CPUQuota() int64 {
	return int64(c.Plan.CPU * 100000)
}

func (c Config) DisplayName() string {
	if c.Name != "" {
		return c.Name
	}
	return c.ServerID
}

func (c Config) GameKey() string {
	if c.Game == "" {
		return DefaultGame
	}
	return c.Game
}

// Validate returns every problem found with the config.
func (c Config) Validate() error {
	var errs *multierror.Error
	if !ValidID(c.ServerID) {
		errs = multierror.Append(errs, wingserrors.ErrInvalidServerID)
	}
	if !ValidID(c.EggID) {
		errs = multierror.Append(errs, wingserrors.ErrInvalidEggID)
	}
	if c.Port < 1 || c.Port > 65535 {
		errs = multierror.Append(errs, fmt.Errorf("port %d is out of range", c.Port))
	}
	if c.Plan.RAM <= 0 {
		errs = multierror.Append(errs, fmt.Errorf("plan.ram must be positive"))
	}
	if c.Plan.CPU <= 0 {
		errs = multierror.Append(errs, fmt.Errorf("plan.cpu must be positive"))
	}
	if err := errs.ErrorOrNil(); err != nil {
		return wingserrors.New(wingserrors.KindValidation, "invalid server config", err)
	}
	return nil
}

// Variables are sparse overrides of egg variable defaults. the panel
// is not strict about types, so scalar values are accepted and
// stored in their string form.
type Variables map[string]string

func (v *Variables) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	out := make(Variables, len(raw))
	for k, val := range raw {
		switch val := val.(type) {
		case nil:
			continue
		case string:
			out[k] = val
		case bool:
			out[k] = strconv.FormatBool(val)
		case float64:
			out[k] = strconv.FormatFloat(val, 'f', -1, 64)
		default:
			return fmt.Errorf("variable %s: unsupported value type %T", k, val)
		}
	}

	*v = out
	return nil
}
