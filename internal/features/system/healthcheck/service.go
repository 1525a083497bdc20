package system_healthcheck

import (
	"fmt"

	"teamhub-backend/internal/config"

	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/mem"
)

type HealthcheckService struct{}

type SystemStatusDTO struct {
	Status string `json:"status"`

	MemoryTotalBytes uint64  `json:"memoryTotalBytes"`
	MemoryUsedBytes  uint64  `json:"memoryUsedBytes"`
	MemoryUsedPct    float64 `json:"memoryUsedPct"`

	DiskTotalBytes uint64  `json:"diskTotalBytes"`
	DiskFreeBytes  uint64  `json:"diskFreeBytes"`
	DiskUsedPct    float64 `json:"diskUsedPct"`
}

// GetSystemStatus reports memory and data directory disk usage. The
// endpoint stays public so load balancers can probe it without a token.
func (s *HealthcheckService) GetSystemStatus() (*SystemStatusDTO, error) {
	memory, err := mem.VirtualMemory()
	if err != nil {
		return nil, fmt.Errorf("failed to read memory stats: %w", err)
	}

	diskUsage, err := disk.Usage(config.GetEnv().DataFolder)
	if err != nil {
		return nil, fmt.Errorf("failed to read disk stats: %w", err)
	}

	return &SystemStatusDTO{
		Status:           "ok",
		MemoryTotalBytes: memory.Total,
		MemoryUsedBytes:  memory.Used,
		MemoryUsedPct:    memory.UsedPercent,
		DiskTotalBytes:   diskUsage.Total,
		DiskFreeBytes:    diskUsage.Free,
		DiskUsedPct:      diskUsage.UsedPercent,
	}, nil
}
