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
	"strconv"

	"github.com/rodaine/table"
	"github.com/spf13/cobra"
	"github.com/whatahelll/wings/cli"
)

func NewCommand(ctx context.Context, cliCtx cli.Context) *cobra.Command {
	c := &cobra.Command{
		Use:   "egg",
		Short: "Commands related to the egg catalog of the daemon.",
	}
	c.AddCommand(newListCommand(ctx, cliCtx))
	return c
}

func newListCommand(ctx context.Context, cliCtx cli.Context) *cobra.Command {
	var game string

	run := func(cmd *cobra.Command, args []string) error {
		eggs, err := cliCtx.Client.Eggs(ctx, game)
		if err != nil {
			return fmt.Errorf("error while listing eggs: %w", err)
		}

		t := table.New("ID", "NAME", "GAME", "VALID", "ERROR")
		for _, e := range eggs {
			t.AddRow(e.ID, e.Name, e.Game, strconv.FormatBool(e.Valid), e.Error)
		}
		t.Print()

		return nil
	}

	c := &cobra.Command{
		Use:          "list",
		Short:        "Lists the eggs known to the daemon.",
		RunE:         run,
		SilenceUsage: true,
	}
	c.Flags().StringVar(&game, "game", "", "only list eggs for this game")
	return c
}
