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

package server

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rodaine/table"
	"github.com/spf13/cobra"
	"github.com/whatahelll/wings/cli"
)

func NewCommand(ctx context.Context, cliCtx cli.Context) *cobra.Command {
	c := &cobra.Command{
		Use:   "server",
		Short: "Commands related to managing game servers.",
	}
	c.AddCommand(
		newConfigureCommand(ctx, cliCtx),
		newActionCommand(ctx, cliCtx, "install", "Runs the install script of the server's egg."),
		newActionCommand(ctx, cliCtx, "start", "Starts the server."),
		newActionCommand(ctx, cliCtx, "stop", "Stops the server gracefully."),
		newActionCommand(ctx, cliCtx, "restart", "Stops and starts the server."),
		newActionCommand(ctx, cliCtx, "kill", "Kills and removes the server's container."),
		newStatsCommand(ctx, cliCtx),
		newLogsCommand(ctx, cliCtx),
		newCommandCommand(ctx, cliCtx),
	)
	return c
}

func newConfigureCommand(ctx context.Context, cliCtx cli.Context) *cobra.Command {
	var file string

	run := func(cmd *cobra.Command, args []string) error {
		if file == "" {
			return fmt.Errorf("config file is missing")
		}

		data, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("read config file: %w", err)
		}

		msg, err := cliCtx.Client.Configure(ctx, args[0], data)
		if err != nil {
			return fmt.Errorf("error while configuring server: %w", err)
		}

		fmt.Println(msg)
		return nil
	}

	c := &cobra.Command{
		Use:          "configure <server-id>",
		Short:        "Uploads the json config of a server.",
		Args:         cobra.ExactArgs(1),
		RunE:         run,
		SilenceUsage: true,
	}
	c.Flags().StringVarP(&file, "file", "f", "", "path to the json server config")
	return c
}

func newActionCommand(ctx context.Context, cliCtx cli.Context, action, short string) *cobra.Command {
	run := func(cmd *cobra.Command, args []string) error {
		msg, err := cliCtx.Client.Action(ctx, args[0], action)
		if err != nil {
			return fmt.Errorf("error while running %s: %w", action, err)
		}

		fmt.Println(msg)
		return nil
	}

	return &cobra.Command{
		Use:          action + " <server-id>",
		Short:        short,
		Args:         cobra.ExactArgs(1),
		RunE:         run,
		SilenceUsage: true,
	}
}

func newStatsCommand(ctx context.Context, cliCtx cli.Context) *cobra.Command {
	run := func(cmd *cobra.Command, args []string) error {
		snap, err := cliCtx.Client.Stats(ctx, args[0])
		if err != nil {
			return fmt.Errorf("error while getting stats: %w", err)
		}

		t := cli.Section()
		t.AddRow("CPU: ", fmt.Sprintf("%.2f%%", snap.CPU))
		t.AddRow("Memory: ", fmt.Sprintf("%.2f / %.2f MB (%.2f%%)", snap.Memory.Used, snap.Memory.Total, snap.Memory.Percent))
		t.AddRow("Network: ", fmt.Sprintf("rx %d tx %d", snap.Network.Rx, snap.Network.Tx))
		t.Print()

		return nil
	}

	return &cobra.Command{
		Use:          "stats <server-id>",
		Short:        "Displays the current resource usage of the server.",
		Args:         cobra.ExactArgs(1),
		RunE:         run,
		SilenceUsage: true,
	}
}

func newLogsCommand(ctx context.Context, cliCtx cli.Context) *cobra.Command {
	var lines int

	run := func(cmd *cobra.Command, args []string) error {
		logs, err := cliCtx.Client.Logs(ctx, args[0], lines)
		if err != nil {
			return fmt.Errorf("error while getting logs: %w", err)
		}

		t := table.New("TIME", "LEVEL", "MESSAGE")
		for _, l := range logs {
			t.AddRow(l.Timestamp.Format(time.RFC3339), strings.ToUpper(l.Level), l.Message)
		}
		t.Print()

		return nil
	}

	c := &cobra.Command{
		Use:          "logs <server-id>",
		Short:        "Displays the most recent log lines of the server.",
		Args:         cobra.ExactArgs(1),
		RunE:         run,
		SilenceUsage: true,
	}
	c.Flags().IntVarP(&lines, "lines", "n", 100, "number of lines to show")
	return c
}

func newCommandCommand(ctx context.Context, cliCtx cli.Context) *cobra.Command {
	run := func(cmd *cobra.Command, args []string) error {
		msg, err := cliCtx.Client.SendCommand(ctx, args[0], strings.Join(args[1:], " "))
		if err != nil {
			return fmt.Errorf("error while sending command: %w", err)
		}

		fmt.Println(msg)
		return nil
	}

	return &cobra.Command{
		Use:          "command <server-id> <command...>",
		Short:        "Sends a console command to the server.",
		Args:         cobra.MinimumNArgs(2),
		RunE:         run,
		SilenceUsage: true,
	}
}
