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

package stats

import (
	"math"

	"github.com/whatahelll/wings/wings/runtime"
)

// PrimaryInterface is the network interface counters are read from.
const PrimaryInterface = "eth0"

type Memory struct {
	// Used and Total are in whole megabytes.
	Used    float64 `json:"used"`
	Total   float64 `json:"total"`
	Percent float64 `json:"percent"`
}

type Network struct {
	Rx uint64 `json:"rx"`
	Tx uint64 `json:"tx"`
}

type Snapshot struct {
	CPU     float64 `json:"cpu"`
	Memory  Memory  `json:"memory"`
	Network Network `json:"network"`
}

// Aggregate turns raw runtime counters into a Snapshot. a container
// that is not running always yields the zero Snapshot.
func Aggregate(raw runtime.Stats, running bool) Snapshot {
	if !running {
		return Snapshot{}
	}

	var (
		cpuDelta = float64(raw.CPU.TotalUsage) - float64(raw.PreCPU.TotalUsage)
		sysDelta = float64(raw.CPU.SystemUsage) - float64(raw.PreCPU.SystemUsage)
		cpu      float64
	)

	if sysDelta > 0 && cpuDelta > 0 {
		cpu = cpuDelta / sysDelta * float64(onlineCPUs(raw)) * 100
	}

	var memPercent float64
	if raw.MemoryLimit > 0 {
		memPercent = float64(raw.MemoryUsage) / float64(raw.MemoryLimit) * 100
	}

	net := raw.Networks[PrimaryInterface]

	return Snapshot{
		CPU: round(cpu),
		Memory: Memory{
			Used:    math.Round(float64(raw.MemoryUsage) / 1024 / 1024),
			Total:   math.Round(float64(raw.MemoryLimit) / 1024 / 1024),
			Percent: round(memPercent),
		},
		Network: Network{
			Rx: net.RxBytes,
			Tx: net.TxBytes,
		},
	}
}

func onlineCPUs(raw runtime.Stats) uint32 {
	if raw.CPU.OnlineCPUs > 0 {
		return raw.CPU.OnlineCPUs
	}
	return 1
}

func round(f float64) float64 {
	return math.Round(f*100) / 100
}
