package wings

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"path/filepath"
	"sync"

	"github.com/docker/docker/client"
	"github.com/hashicorp/go-multierror"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/whatahelll/wings/wings/api"
	"github.com/whatahelll/wings/wings/egg"
	"github.com/whatahelll/wings/wings/game"
	"github.com/whatahelll/wings/wings/gameserver"
	"github.com/whatahelll/wings/wings/lifecycle"
	"github.com/whatahelll/wings/wings/postgres"
	"github.com/whatahelll/wings/wings/postgres/migrations"
	"github.com/whatahelll/wings/wings/realtime"
	"github.com/whatahelll/wings/wings/runtime"
	"github.com/whatahelll/wings/wings/status"
)

type Server struct {
	logger *slog.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
}

func NewServer(logger *slog.Logger) *Server {
	return &Server{
		logger: logger,
	}
}

// Stop makes a running Run return after shutting down every
// component.
func (s *Server) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
	}
}

func (s *Server) Run(ctx context.Context, cfg Config) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	s.mu.Lock()
	s.cancel = cancel
	s.mu.Unlock()

	dockerClient, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return fmt.Errorf("create docker client: %w", err)
	}
	defer dockerClient.Close()

	rt := runtime.NewDockerService(s.logger, dockerClient)
	if err := rt.Ping(ctx); err != nil {
		return fmt.Errorf("docker daemon unreachable: %w", err)
	}

	configs, closeStore, err := s.configStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	eggs := egg.NewStore(filepath.Join(cfg.DataDir, "eggs"))
	written, err := eggs.EnsureDefaults()
	if err != nil {
		return fmt.Errorf("write default eggs: %w", err)
	}
	if len(written) > 0 {
		s.logger.InfoContext(ctx, "wrote default eggs", "eggs", written)
	}

	if cfg.Eggs.Sync {
		syncer := egg.NewGitSyncer(s.logger, egg.SyncConfig{
			RepoURL: cfg.Eggs.RepoURL,
			Branch:  cfg.Eggs.RepoBranch,
			Path:    cfg.Eggs.RepoPath,
			Token:   cfg.Eggs.RepoToken,
		}, eggs)
		// the local catalog is still usable when the repository is not.
		if _, err := syncer.Sync(ctx); err != nil {
			s.logger.ErrorContext(ctx, "failed to sync eggs", "err", err)
		}
	}

	var (
		games = game.NewRegistry(
			game.NewDefault(game.Images{
				Default:   cfg.DefaultImage,
				Installer: cfg.InstallerImage,
			}),
			game.Minecraft(cfg.MinecraftImage),
			game.Terraria(cfg.TerrariaImage, cfg.DotnetImage),
		)
		manager *lifecycle.Manager
		hub     = realtime.NewHub(s.logger, realtime.CommanderFunc(
			func(ctx context.Context, serverID, command string) error {
				return manager.SendCommand(ctx, serverID, command)
			},
		))
		sink status.Sink
	)

	if cfg.PanelURL != "" {
		sink = status.NewPanelSink(cfg.PanelURL, &http.Client{Timeout: cfg.PanelTimeout})
	} else {
		s.logger.InfoContext(ctx, "panel url not set, status sink disabled")
	}

	notifier := status.NewNotifier(s.logger, hub, sink, cfg.PanelTimeout)
	manager = lifecycle.NewManager(
		s.logger,
		lifecycle.Config{
			DataDir:        cfg.DataDir,
			StopTimeout:    cfg.StopTimeout,
			RestartDelay:   cfg.RestartDelay,
			ReadinessLatch: cfg.ReadinessLatch,
		},
		rt,
		configs,
		eggs,
		games,
		notifier,
		hub,
	)

	apiServer := api.NewServer(s.logger, manager, eggs, hub)

	var g multierror.Group
	g.Go(func() error {
		if err := apiServer.Run(ctx, cfg.ListenAddr); err != nil {
			cancel()
			return fmt.Errorf("failed to serve api: %w", err)
		}
		return nil
	})

	s.logger.InfoContext(ctx, "wings started", "listen_addr", cfg.ListenAddr, "games", games.Games())

	<-ctx.Done()

	// add stop related code below

	hub.Close()
	manager.Close()
	notifier.Wait()

	return g.Wait().ErrorOrNil()
}

// configStore uses postgres when a dsn is configured and falls back
// to json files below the data dir otherwise.
func (s *Server) configStore(ctx context.Context, cfg Config) (gameserver.Store, func(), error) {
	if cfg.PostgresDSN == "" {
		return gameserver.NewFileStore(filepath.Join(cfg.DataDir, "configs")), func() {}, nil
	}

	if err := migrations.Migrate(cfg.PostgresDSN); err != nil {
		return nil, nil, fmt.Errorf("migrate: %w", err)
	}

	pool, err := pgxpool.New(ctx, cfg.PostgresDSN)
	if err != nil {
		return nil, nil, fmt.Errorf("create pool: %w", err)
	}

	return postgres.NewDB(s.logger, pool), pool.Close, nil
}
