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

package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	wingserrors "github.com/whatahelll/wings/wings/errors"
)

const Version = "1.0.0"

type Server struct {
	logger  *slog.Logger
	svc     Service
	catalog Catalog
	echo    *echo.Echo
	now     func() time.Time
}

// NewServer wires the routes. realtime is mounted at /ws and may be
// nil.
func NewServer(logger *slog.Logger, svc Service, catalog Catalog, realtime http.Handler) *Server {
	s := &Server{
		logger:  logger.With("component", "api"),
		svc:     svc,
		catalog: catalog,
		echo:    echo.New(),
		now:     time.Now,
	}

	e := s.echo
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = s.handleError

	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string { return uuid.New().String() },
	}))
	e.Use(s.requestLogger())

	e.GET("/health", s.health)
	e.GET("/api/eggs", s.listEggs)

	servers := e.Group("/api/servers/:id")
	servers.POST("/config", s.configure)
	servers.POST("/install", s.install)
	servers.POST("/start", s.start)
	servers.POST("/stop", s.stop)
	servers.POST("/restart", s.restart)
	servers.POST("/kill", s.kill)
	servers.GET("/stats", s.stats)
	servers.GET("/logs", s.logs)
	servers.POST("/command", s.command)

	if realtime != nil {
		e.GET("/ws", echo.WrapHandler(realtime))
	}

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.echo.ServeHTTP(w, r)
}

// Run serves on addr until ctx is canceled.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.echo,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.InfoContext(ctx, "serving http", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (s *Server) requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
				"request_id", v.RequestID,
			}
			if v.Error != nil {
				s.logger.WarnContext(c.Request().Context(), "request failed", append(attrs, "err", v.Error)...)
				return nil
			}
			s.logger.DebugContext(c.Request().Context(), "request", attrs...)
			return nil
		},
	})
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var (
		code = wingserrors.HTTPStatus(err)
		msg  = err.Error()
		we   wingserrors.Error
		he   *echo.HTTPError
	)

	// echo errors wrapped by one of ours keep our message.
	if !errors.As(err, &we) && errors.As(err, &he) {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			msg = m
		} else {
			msg = http.StatusText(code)
		}
	}

	if code >= http.StatusInternalServerError {
		s.logger.ErrorContext(c.Request().Context(), "request failed",
			"method", c.Request().Method,
			"path", c.Path(),
			"server_id", c.Param("id"),
			"err", err,
		)
	}

	if err := c.JSON(code, errorResponse{Error: msg}); err != nil {
		s.logger.ErrorContext(c.Request().Context(), "could not write error response", "err", err)
	}
}
