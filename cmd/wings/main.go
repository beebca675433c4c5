package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/hashicorp/go-multierror"
	"github.com/peterbourgon/ff/v3"
	"github.com/whatahelll/wings/wings"
	"github.com/whatahelll/wings/wings/game"
	"github.com/whatahelll/wings/wings/lifecycle"
	"github.com/whatahelll/wings/wings/status"
)

func main() {
	var (
		fs             = flag.NewFlagSet("wings", flag.ContinueOnError)
		listenAddr     = fs.String("listen-addr", ":8080", "address the http api listens on")                                                //nolint:lll
		dataDir        = fs.String("data-dir", ".", "directory holding server files, configs and eggs")                                      //nolint:lll
		logLevel       = fs.String("log-level", "info", "log level (debug, info, warn, error)")                                              //nolint:lll
		panelURL       = fs.String("panel-url", "", "base url of the panel status changes are reported to. empty disables reporting")        //nolint:lll
		panelTimeout   = fs.Duration("panel-timeout", status.DefaultSinkTimeout, "timeout for a single status report to the panel")         //nolint:lll
		stopTimeout    = fs.Duration("stop-timeout", lifecycle.DefaultStopTimeout, "grace period before a stopping server is killed")        //nolint:lll
		restartDelay   = fs.Duration("restart-delay", lifecycle.DefaultRestartDelay, "pause between stop and start of a restart")            //nolint:lll
		readinessLatch = fs.Bool("readiness-latch", false, "announce online only once per start instead of every time a marker is seen")     //nolint:lll
		defaultImage   = fs.String("default-image", game.DefaultImage, "image used when an egg declares no docker images")                   //nolint:lll
		installerImage = fs.String("installer-image", game.DefaultInstallerImage, "image used for install scripts without a container")      //nolint:lll
		minecraftImage = fs.String("minecraft-image", "", "image override for minecraft servers")                                            //nolint:lll
		terrariaImage  = fs.String("terraria-image", "", "image override for terraria servers")                                              //nolint:lll
		dotnetImage    = fs.String("dotnet-image", game.DefaultDotnetImage, "fallback image for terraria servers")                           //nolint:lll
		postgresDSN    = fs.String("postgres-dsn", "", "postgres connection string for server configs. empty stores them as files")         //nolint:lll
		eggsSync       = fs.Bool("eggs-sync", false, "sync eggs from a git repository on boot")                                              //nolint:lll
		eggsRepoURL    = fs.String("eggs-repo-url", "", "git repository eggs are synced from")                                               //nolint:lll
		eggsRepoBranch = fs.String("eggs-repo-branch", "main", "branch of the egg repository")                                               //nolint:lll
		eggsRepoPath   = fs.String("eggs-repo-path", "eggs", "directory inside the egg repository")                                          //nolint:lll
		eggsRepoToken  = fs.String("eggs-repo-token", "", "token used to authenticate against the egg repository")                           //nolint:lll
		_              = fs.String("config", "/etc/wings/config.json", "path to the config file")                                            //nolint:lll
	)
	if err := ff.Parse(fs, os.Args[1:],
		ff.WithEnvVarPrefix("WINGS"),
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(ff.JSONParser),
		ff.WithAllowMissingConfigFile(true),
	); err != nil {
		die(slog.New(slog.NewJSONHandler(os.Stdout, nil)), "failed to parse config", err)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
		die(slog.New(slog.NewJSONHandler(os.Stdout, nil)), "invalid log level", err)
	}

	var (
		logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
		cfg    = wings.Config{
			ListenAddr:     *listenAddr,
			DataDir:        *dataDir,
			PanelURL:       *panelURL,
			PanelTimeout:   *panelTimeout,
			StopTimeout:    *stopTimeout,
			RestartDelay:   *restartDelay,
			ReadinessLatch: *readinessLatch,
			DefaultImage:   *defaultImage,
			InstallerImage: *installerImage,
			MinecraftImage: *minecraftImage,
			TerrariaImage:  *terrariaImage,
			DotnetImage:    *dotnetImage,
			PostgresDSN:    *postgresDSN,
			Eggs: wings.EggsConfig{
				Sync:       *eggsSync,
				RepoURL:    *eggsRepoURL,
				RepoBranch: *eggsRepoBranch,
				RepoPath:   *eggsRepoPath,
				RepoToken:  *eggsRepoToken,
			},
		}
		ctx    = context.Background()
		server = wings.NewServer(logger)
	)

	go func() {
		c := make(chan os.Signal, 1)
		signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
		s := <-c
		logger.Info("received shutdown signal", "signal", s)
		server.Stop()
	}()

	if err := server.Run(ctx, cfg); err != nil {
		var multi *multierror.Error
		if errors.As(err, &multi) {
			errs := make([]string, 0, len(multi.WrappedErrors()))
			for _, err := range multi.WrappedErrors() {
				errs = append(errs, err.Error())
			}
			die(logger, "failed to run server", errors.New(strings.Join(errs, ",")))
			return
		}
		die(logger, "failed to run server", err)
	}
}

func die(logger *slog.Logger, msg string, err error) {
	logger.Error(msg, "err", err)
	os.Exit(1)
}
