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

package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/whatahelll/wings/cli"
	"github.com/whatahelll/wings/cli/cmd/egg"
	"github.com/whatahelll/wings/cli/cmd/health"
	"github.com/whatahelll/wings/cli/cmd/server"
	"github.com/whatahelll/wings/cli/cmd/version"
)

func Root(ctx context.Context, cliCtx cli.Context) *cobra.Command {
	root := &cobra.Command{
		Use:   "wingsctl",
		Short: "Operate game servers managed by a wings daemon.",
	}

	root.AddCommand(
		server.NewCommand(ctx, cliCtx),
		egg.NewCommand(ctx, cliCtx),
		health.NewCommand(ctx, cliCtx),
		version.NewCommand(),
	)

	return root
}
