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

package stats_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/whatahelll/wings/wings/runtime"
	"github.com/whatahelll/wings/wings/stats"
)

func TestAggregate(t *testing.T) {
	busy := runtime.Stats{
		CPU:         runtime.CPUSample{TotalUsage: 3_000, SystemUsage: 20_000, OnlineCPUs: 4},
		PreCPU:      runtime.CPUSample{TotalUsage: 1_000, SystemUsage: 10_000},
		MemoryUsage: 512 * 1024 * 1024,
		MemoryLimit: 2048 * 1024 * 1024,
		Networks: map[string]runtime.NetworkCounters{
			"eth0": {RxBytes: 1234, TxBytes: 5678},
			"eth1": {RxBytes: 1, TxBytes: 1},
		},
	}

	tests := []struct {
		name     string
		raw      runtime.Stats
		running  bool
		expected stats.Snapshot
	}{
		{
			name:    "running",
			raw:     busy,
			running: true,
			expected: stats.Snapshot{
				CPU: 80,
				Memory: stats.Memory{
					Used:    512,
					Total:   2048,
					Percent: 25,
				},
				Network: stats.Network{Rx: 1234, Tx: 5678},
			},
		},
		{
			name:     "not running is all zero",
			raw:      busy,
			running:  false,
			expected: stats.Snapshot{},
		},
		{
			name: "no system delta and no limit",
			raw: runtime.Stats{
				CPU:         runtime.CPUSample{TotalUsage: 10, SystemUsage: 10, OnlineCPUs: 1},
				PreCPU:      runtime.CPUSample{TotalUsage: 5, SystemUsage: 10},
				MemoryUsage: 1024 * 1024,
			},
			running: true,
			expected: stats.Snapshot{
				Memory: stats.Memory{Used: 1},
			},
		},
		{
			name: "memory rounded to whole megabytes",
			raw: runtime.Stats{
				CPU:         runtime.CPUSample{TotalUsage: 10, SystemUsage: 10, OnlineCPUs: 1},
				PreCPU:      runtime.CPUSample{TotalUsage: 10, SystemUsage: 10},
				MemoryUsage: 1536*1024*1024 + 700*1024,
				MemoryLimit: 2048*1024*1024 + 300*1024,
			},
			running: true,
			expected: stats.Snapshot{
				Memory: stats.Memory{
					Used:    1537,
					Total:   2048,
					Percent: 75.02,
				},
			},
		},
		{
			name: "cpu rounded to two decimals",
			raw: runtime.Stats{
				CPU:    runtime.CPUSample{TotalUsage: 1, SystemUsage: 3, OnlineCPUs: 1},
				PreCPU: runtime.CPUSample{},
			},
			running: true,
			expected: stats.Snapshot{
				CPU: 33.33,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if d := cmp.Diff(tt.expected, stats.Aggregate(tt.raw, tt.running)); d != "" {
				t.Fatalf("snapshot mismatch (-want +got):\n%s", d)
			}
		})
	}
}
