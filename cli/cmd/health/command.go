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

package health

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/whatahelll/wings/cli"
)

func NewCommand(ctx context.Context, cliCtx cli.Context) *cobra.Command {
	run := func(cmd *cobra.Command, args []string) error {
		h, err := cliCtx.Client.Health(ctx)
		if err != nil {
			return fmt.Errorf("error while checking health: %w", err)
		}

		t := cli.Section()
		t.AddRow("Endpoint: ", cliCtx.Config.Endpoint)
		t.AddRow("Status: ", h.Status)
		t.AddRow("Version: ", h.Version)
		t.AddRow("Time: ", h.Timestamp.Format(time.RFC1123Z))
		t.Print()

		return nil
	}

	return &cobra.Command{
		Use:          "health",
		Short:        "Checks whether the daemon is reachable.",
		RunE:         run,
		SilenceUsage: true,
	}
}
