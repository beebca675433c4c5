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
	"bytes"
	"encoding/json"
	"fmt"
)

// Egg describes how to install and run one kind of game server.
// eggs are read-only once loaded.
type Egg struct {
	// ID is the file name the egg was loaded from, without extension.
	ID string `json:"-"`

	UUID         string     `json:"uuid,omitempty"`
	Name         string     `json:"name"`
	Description  string     `json:"description,omitempty"`
	Game         string     `json:"game,omitempty"`
	DockerImages Images     `json:"docker_images,omitempty"`
	Startup      string     `json:"startup"`
	Config       Config     `json:"config"`
	Scripts      Scripts    `json:"scripts"`
	Variables    []Variable `json:"variables"`
}

// ReadinessMarkers are substrings which, when seen in the server
// output, signal that the game finished booting.
func (e Egg) ReadinessMarkers() []string {
	return e.Config.Startup.Done
}

// Installer returns the installation step, or nil if the egg does
// not declare one.
func (e Egg) Installer() *Installation {
	return e.Scripts.Installation
}

type Config struct {
	Startup StartupConfig `json:"startup"`
	Stop    string        `json:"stop,omitempty"`
}

type StartupConfig struct {
	Done Markers `json:"done,omitempty"`
}

type Scripts struct {
	Installation *Installation `json:"installation,omitempty"`
}

type Installation struct {
	Script     string `json:"script"`
	Container  string `json:"container,omitempty"`
	Entrypoint string `json:"entrypoint,omitempty"`
}

type Variable struct {
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	EnvVariable  string `json:"env_variable"`
	DefaultValue string `json:"default_value"`
	UserViewable bool   `json:"user_viewable"`
	UserEditable bool   `json:"user_editable"`
	Rules        string `json:"rules,omitempty"`
}

// Markers accepts either a single string or a list of strings.
type Markers []string

func (m *Markers) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		if single == "" {
			*m = nil
			return nil
		}
		*m = Markers{single}
		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return fmt.Errorf("markers must be a string or a list of strings: %w", err)
	}
	*m = list
	return nil
}

type Image struct {
	Tag string
	Ref string
}

// Images is the docker_images object of an egg. json objects are
// unordered maps in go, so the document order is kept explicitly,
// because the first image is the one that is used by default.
type Images []Image

func (i Images) First() (string, bool) {
	if len(i) == 0 {
		return "", false
	}
	return i[0].Ref, true
}

func (i *Images) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}

	if tok == nil {
		*i = nil
		return nil
	}

	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("docker_images must be an object")
	}

	var out Images
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}

		var ref string
		if err := dec.Decode(&ref); err != nil {
			return fmt.Errorf("docker_images[%v]: %w", keyTok, err)
		}

		out = append(out, Image{
			Tag: keyTok.(string),
			Ref: ref,
		})
	}

	*i = out
	return nil
}

func (i Images) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for idx, img := range i {
		if idx > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(img.Tag)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(img.Ref)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
