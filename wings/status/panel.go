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

package status

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

const userAgent = "PyroWings/1.0"

// PanelSink reports transitions to the management panel.
type PanelSink struct {
	baseURL string
	client  *http.Client
}

func NewPanelSink(baseURL string, client *http.Client) *PanelSink {
	if client == nil {
		client = http.DefaultClient
	}
	return &PanelSink{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
	}
}

func (s *PanelSink) Notify(ctx context.Context, serverID string, st Status) error {
	body, err := json.Marshal(map[string]string{"status": string(st)})
	if err != nil {
		return fmt.Errorf("marshal body: %w", err)
	}

	endpoint := s.baseURL + "/api/servers/" + url.PathEscape(serverID) + "/status"

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("panel responded with %s", resp.Status)
	}

	return nil
}
