package sysinfo

import (
	"fmt"
	"runtime"

	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/mem"
)

// Snapshot reports process-host utilization for the detailed health check.
type Snapshot struct {
	GoVersion   string `json:"go_version"`
	Platform    string `json:"platform"`
	CPUCount    int    `json:"cpu_count"`
	MemoryUsage string `json:"memory_usage"`
	DiskUsage   string `json:"disk_usage"`
}

// Collect gathers a point-in-time system snapshot. Probe failures degrade to
// "unavailable" rather than failing the health check.
func Collect() Snapshot {
	snap := Snapshot{
		GoVersion:   runtime.Version(),
		Platform:    runtime.GOOS,
		CPUCount:    runtime.NumCPU(),
		MemoryUsage: "unavailable",
		DiskUsage:   "unavailable",
	}

	if vm, err := mem.VirtualMemory(); err == nil {
		snap.MemoryUsage = fmt.Sprintf("%.1f%%", vm.UsedPercent)
	}
	if du, err := disk.Usage("/"); err == nil {
		snap.DiskUsage = fmt.Sprintf("%.1f%%", du.UsedPercent)
	}

	return snap
}
