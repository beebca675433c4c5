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
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	wingserrors "github.com/whatahelll/wings/wings/errors"
	"github.com/whatahelll/wings/wings/gameserver"
	"github.com/whatahelll/wings/wings/lifecycle"
)

type successResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func ok(c echo.Context, msg string) error {
	return c.JSON(http.StatusOK, successResponse{Success: true, Message: msg})
}

type healthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
}

func (s *Server) health(c echo.Context) error {
	return c.JSON(http.StatusOK, healthResponse{
		Status:    "ok",
		Timestamp: s.now().UTC(),
		Version:   Version,
	})
}

type eggResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Game  string `json:"game,omitempty"`
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

func (s *Server) listEggs(c echo.Context) error {
	if game := c.QueryParam("game"); game != "" {
		eggs, err := s.catalog.ByGame(game)
		if err != nil {
			return err
		}
		ret := make([]eggResponse, 0, len(eggs))
		for _, e := range eggs {
			ret = append(ret, eggResponse{ID: e.ID, Name: e.Name, Game: e.Game, Valid: true})
		}
		return c.JSON(http.StatusOK, ret)
	}

	entries, err := s.catalog.List()
	if err != nil {
		return err
	}

	ret := make([]eggResponse, 0, len(entries))
	for _, en := range entries {
		r := eggResponse{
			ID:    en.ID,
			Name:  en.Egg.Name,
			Game:  en.Egg.Game,
			Valid: en.Err == nil,
		}
		if en.Err != nil {
			r.Error = en.Err.Error()
		}
		ret = append(ret, r)
	}

	return c.JSON(http.StatusOK, ret)
}

func (s *Server) configure(c echo.Context) error {
	var cfg gameserver.Config
	if err := c.Bind(&cfg); err != nil {
		return wingserrors.New(wingserrors.KindValidation, "malformed server config", err)
	}

	// the path wins over whatever the body claims.
	cfg.ServerID = c.Param("id")

	if err := s.svc.Configure(c.Request().Context(), cfg); err != nil {
		return err
	}

	return ok(c, "Configuration saved")
}

func (s *Server) install(c echo.Context) error {
	if err := s.svc.Install(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return ok(c, "Installation completed")
}

func (s *Server) start(c echo.Context) error {
	if err := s.svc.Start(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return ok(c, "Server started")
}

func (s *Server) stop(c echo.Context) error {
	if err := s.svc.Stop(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return ok(c, "Server stopped")
}

func (s *Server) restart(c echo.Context) error {
	if err := s.svc.Restart(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return ok(c, "Server restarted")
}

func (s *Server) kill(c echo.Context) error {
	if err := s.svc.Kill(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return ok(c, "Server killed")
}

func (s *Server) stats(c echo.Context) error {
	snap, err := s.svc.Stats(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, snap)
}

func (s *Server) logs(c echo.Context) error {
	lines := lifecycle.DefaultLogLines
	if v := c.QueryParam("lines"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			lines = n
		}
	}

	ret, err := s.svc.Logs(c.Request().Context(), c.Param("id"), lines)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, ret)
}

type commandRequest struct {
	Command string `json:"command"`
}

func (s *Server) command(c echo.Context) error {
	var req commandRequest
	if err := c.Bind(&req); err != nil {
		return wingserrors.New(wingserrors.KindValidation, "malformed command request", err)
	}

	if err := s.svc.SendCommand(c.Request().Context(), c.Param("id"), req.Command); err != nil {
		return err
	}

	return ok(c, "Command sent")
}
