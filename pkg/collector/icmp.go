package collector

import (
	"context"
	"time"

	probing "github.com/prometheus-community/pro-bing"

	"github.com/dushixiang/vitals/internal/models"
)

// ICMPProber 进程内 ICMP 探测器（不依赖系统 ping 命令）
type ICMPProber struct {
	timeout time.Duration
}

// NewICMPProber 创建 ICMP 探测器
func NewICMPProber(timeout time.Duration) *ICMPProber {
	return &ICMPProber{timeout: timeout}
}

// Probe 发送一个 ICMP Echo，超时内收到回包视为 UP
func (p *ICMPProber) Probe(ctx context.Context, host string) string {
	pinger, err := probing.NewPinger(host)
	if err != nil {
		return models.StatusDown
	}

	pinger.Count = 1
	pinger.Timeout = p.timeout

	// 先尝试非特权模式（UDP），失败再尝试特权模式（需要 CAP_NET_RAW）
	pinger.SetPrivileged(false)
	if err := pinger.RunWithContext(ctx); err != nil {
		pinger.SetPrivileged(true)
		if err := pinger.RunWithContext(ctx); err != nil {
			return models.StatusDown
		}
	}

	if pinger.Statistics().PacketsRecv > 0 {
		return models.StatusUp
	}
	return models.StatusDown
}
