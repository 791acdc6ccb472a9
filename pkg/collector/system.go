package collector

import (
	"context"
	"fmt"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/mem"
)

// CPU 使用率在一个短窗口内采样，避免瞬时毛刺
const cpuSampleWindow = 500 * time.Millisecond

// Metrics 一次采集到的系统利用率
type Metrics struct {
	CPU    float64 // CPU 使用率(%)
	Memory float64 // 内存使用率(%)
	Disk   float64 // 磁盘使用率(%)
}

// SystemCollector 系统指标采集器
type SystemCollector struct {
	diskPath string
}

// NewSystemCollector 创建系统指标采集器（统计根分区的磁盘使用率）
func NewSystemCollector() *SystemCollector {
	return &SystemCollector{diskPath: "/"}
}

// Collect 采集 CPU/内存/磁盘使用率
// 指标源不可用视为环境不受支持，错误直接返回给调用方
// 采样窗口期间会阻塞调用方
func (c *SystemCollector) Collect(ctx context.Context) (*Metrics, error) {
	cpuPercents, err := cpu.PercentWithContext(ctx, cpuSampleWindow, false)
	if err != nil {
		return nil, fmt.Errorf("采集 CPU 使用率失败: %w", err)
	}
	if len(cpuPercents) == 0 {
		return nil, fmt.Errorf("采集 CPU 使用率失败: 无返回数据")
	}

	memInfo, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("采集内存使用率失败: %w", err)
	}

	diskInfo, err := disk.UsageWithContext(ctx, c.diskPath)
	if err != nil {
		return nil, fmt.Errorf("采集磁盘使用率失败: %w", err)
	}

	return &Metrics{
		CPU:    cpuPercents[0],
		Memory: memInfo.UsedPercent,
		Disk:   diskInfo.UsedPercent,
	}, nil
}
