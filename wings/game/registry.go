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

package game

import (
	"context"
	"slices"
	"strings"

	"github.com/whatahelll/wings/wings/egg"
	"github.com/whatahelll/wings/wings/gameserver"
	"github.com/whatahelll/wings/wings/runtime"
)

// Variant overrides some capabilities of a base provider. every nil
// capability falls through to the base. overrides receive the base,
// so they can build on top of it.
type Variant struct {
	Game string

	ResolveImage          func(base Provider, e egg.Egg) string
	ResolveInstallerImage func(base Provider) string
	EnsureImage           func(ctx context.Context, base Provider, rt runtime.Service, ref string) error
	PrepareFilesystem     func(base Provider, dir string, cfg gameserver.Config) error
	Environment           func(base Provider, cfg gameserver.Config) []string
	ContainerSpec         func(base Provider, req SpecRequest) runtime.ContainerSpec
	Ready                 func(base Provider, chunk string, e egg.Egg) bool
}

type chain struct {
	v    Variant
	base Provider
}

func (c chain) ResolveImage(e egg.Egg) string {
	if c.v.ResolveImage != nil {
		return c.v.ResolveImage(c.base, e)
	}
	return c.base.ResolveImage(e)
}

func (c chain) ResolveInstallerImage() string {
	if c.v.ResolveInstallerImage != nil {
		return c.v.ResolveInstallerImage(c.base)
	}
	return c.base.ResolveInstallerImage()
}

func (c chain) EnsureImage(ctx context.Context, rt runtime.Service, ref string) error {
	if c.v.EnsureImage != nil {
		return c.v.EnsureImage(ctx, c.base, rt, ref)
	}
	return c.base.EnsureImage(ctx, rt, ref)
}

func (c chain) PrepareFilesystem(dir string, cfg gameserver.Config) error {
	if c.v.PrepareFilesystem != nil {
		return c.v.PrepareFilesystem(c.base, dir, cfg)
	}
	return c.base.PrepareFilesystem(dir, cfg)
}

func (c chain) Environment(cfg gameserver.Config) []string {
	if c.v.Environment != nil {
		return c.v.Environment(c.base, cfg)
	}
	return c.base.Environment(cfg)
}

func (c chain) ContainerSpec(req SpecRequest) runtime.ContainerSpec {
	if c.v.ContainerSpec != nil {
		return c.v.ContainerSpec(c.base, req)
	}
	return c.base.ContainerSpec(req)
}

func (c chain) Ready(chunk string, e egg.Egg) bool {
	if c.v.Ready != nil {
		return c.v.Ready(c.base, chunk, e)
	}
	return c.base.Ready(chunk, e)
}

// Registry maps game keys to providers. it is built once and never
// modified afterwards, so it is safe for concurrent use.
type Registry struct {
	base      Provider
	providers map[string]Provider
}

func NewRegistry(base Provider, variants ...Variant) *Registry {
	providers := make(map[string]Provider, len(variants))
	for _, v := range variants {
		providers[strings.ToLower(v.Game)] = chain{v: v, base: base}
	}
	return &Registry{
		base:      base,
		providers: providers,
	}
}

// Get returns the provider for game. unknown games get the base
// provider.
func (r *Registry) Get(game string) Provider {
	if p, ok := r.providers[strings.ToLower(game)]; ok {
		return p
	}
	return r.base
}

func (r *Registry) Games() []string {
	games := make([]string, 0, len(r.providers))
	for g := range r.providers {
		games = append(games, g)
	}
	slices.Sort(games)
	return games
}
