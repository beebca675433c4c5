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

package runtime

import (
	"testing"

	"github.com/docker/docker/api/types/container"
	"github.com/google/go-cmp/cmp"
)

func TestStatsFromDocker(t *testing.T) {
	var raw container.StatsResponse
	raw.CPUStats.CPUUsage.TotalUsage = 400
	raw.CPUStats.SystemUsage = 2000
	raw.CPUStats.OnlineCPUs = 2
	raw.PreCPUStats.CPUUsage.TotalUsage = 200
	raw.PreCPUStats.SystemUsage = 1000
	raw.MemoryStats.Usage = 512
	raw.MemoryStats.Limit = 1024
	raw.Networks = map[string]container.NetworkStats{
		"eth0": {RxBytes: 10, TxBytes: 20},
	}

	expected := Stats{
		CPU:         CPUSample{TotalUsage: 400, SystemUsage: 2000, OnlineCPUs: 2},
		PreCPU:      CPUSample{TotalUsage: 200, SystemUsage: 1000},
		MemoryUsage: 512,
		MemoryLimit: 1024,
		Networks: map[string]NetworkCounters{
			"eth0": {RxBytes: 10, TxBytes: 20},
		},
	}

	if d := cmp.Diff(expected, statsFromDocker(raw)); d != "" {
		t.Fatalf("stats mismatch (-want +got):\n%s", d)
	}
}
