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

package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/whatahelll/wings/wings/observe"
	"github.com/whatahelll/wings/wings/stats"
)

// Client talks to the http api of a wings daemon.
type Client struct {
	endpoint string
	http     *http.Client
}

func NewClient(endpoint string, httpClient *http.Client) *Client {
	return &Client{
		endpoint: strings.TrimRight(endpoint, "/"),
		http:     httpClient,
	}
}

// APIError is returned for every response with a non 2xx status.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s (status %d)", e.Message, e.StatusCode)
}

type Health struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
}

type Egg struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Game  string `json:"game"`
	Valid bool   `json:"valid"`
	Error string `json:"error"`
}

type actionResponse struct {
	Message string `json:"message"`
}

func (c *Client) Health(ctx context.Context) (Health, error) {
	var h Health
	if err := c.do(ctx, http.MethodGet, "/health", nil, &h); err != nil {
		return Health{}, err
	}
	return h, nil
}

func (c *Client) Eggs(ctx context.Context, game string) ([]Egg, error) {
	path := "/api/eggs"
	if game != "" {
		path += "?game=" + url.QueryEscape(game)
	}

	var eggs []Egg
	if err := c.do(ctx, http.MethodGet, path, nil, &eggs); err != nil {
		return nil, err
	}
	return eggs, nil
}

// Configure uploads a raw json server config.
func (c *Client) Configure(ctx context.Context, serverID string, config []byte) (string, error) {
	var resp actionResponse
	if err := c.do(ctx, http.MethodPost, serverPath(serverID, "config"), config, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

// Action triggers one of the body-less lifecycle operations, for
// example start or kill, and returns the message of the daemon.
func (c *Client) Action(ctx context.Context, serverID, action string) (string, error) {
	var resp actionResponse
	if err := c.do(ctx, http.MethodPost, serverPath(serverID, action), nil, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

func (c *Client) SendCommand(ctx context.Context, serverID, command string) (string, error) {
	body, err := json.Marshal(map[string]string{"command": command})
	if err != nil {
		return "", fmt.Errorf("marshal command: %w", err)
	}

	var resp actionResponse
	if err := c.do(ctx, http.MethodPost, serverPath(serverID, "command"), body, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

func (c *Client) Stats(ctx context.Context, serverID string) (stats.Snapshot, error) {
	var snap stats.Snapshot
	if err := c.do(ctx, http.MethodGet, serverPath(serverID, "stats"), nil, &snap); err != nil {
		return stats.Snapshot{}, err
	}
	return snap, nil
}

func (c *Client) Logs(ctx context.Context, serverID string, lines int) ([]observe.Line, error) {
	path := serverPath(serverID, "logs")
	if lines > 0 {
		path += "?lines=" + strconv.Itoa(lines)
	}

	var ret []observe.Line
	if err := c.do(ctx, http.MethodGet, path, nil, &ret); err != nil {
		return nil, err
	}
	return ret, nil
}

func serverPath(serverID, action string) string {
	return "/api/servers/" + url.PathEscape(serverID) + "/" + action
}

func (c *Client) do(ctx context.Context, method, path string, body []byte, out any) error {
	var r io.Reader
	if body != nil {
		r = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint+path, r)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var e struct {
			Error string `json:"error"`
		}
		msg := strings.TrimSpace(string(data))
		if err := json.Unmarshal(data, &e); err == nil && e.Error != "" {
			msg = e.Error
		}
		return &APIError{StatusCode: resp.StatusCode, Message: msg}
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}
