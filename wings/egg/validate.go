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
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// Validate checks that the egg carries everything needed to install
// and start a server. all problems are reported at once.
func Validate(e Egg) error {
	var errs *multierror.Error

	if e.Name == "" {
		errs = multierror.Append(errs, fmt.Errorf("name is required"))
	}

	if e.Startup == "" {
		errs = multierror.Append(errs, fmt.Errorf("startup is required"))
	}

	if inst := e.Installer(); inst != nil && inst.Script == "" {
		errs = multierror.Append(errs, fmt.Errorf("scripts.installation.script is required"))
	}

	for i, v := range e.Variables {
		if v.EnvVariable == "" {
			errs = multierror.Append(errs, fmt.Errorf("variables[%d]: env_variable is required", i))
		}
		if v.Name == "" {
			errs = multierror.Append(errs, fmt.Errorf("variables[%d]: name is required", i))
		}
	}

	return errs.ErrorOrNil()
}
