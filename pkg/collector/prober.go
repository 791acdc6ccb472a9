package collector

import (
	"context"
	"io"
	"os/exec"
	"runtime"
	"time"

	"github.com/dushixiang/vitals/internal/models"
)

// Prober 连通性探测器
// 任何失败（命令缺失、超时、非 0 退出码）都折算成 DOWN，从不返回错误
type Prober interface {
	Probe(ctx context.Context, host string) string
}

// ExecProber 调用系统 ping 命令的探测器
// Windows 上单包参数是 -n，其余系统是 -c
type ExecProber struct {
	binary  string
	timeout time.Duration
}

// NewExecProber 创建 ping 命令探测器
func NewExecProber(timeout time.Duration) *ExecProber {
	return &ExecProber{
		binary:  "ping",
		timeout: timeout,
	}
}

// Probe 发送一个探测包，超时内退出码为 0 视为 UP
// 每次调用只探测一次，重试语义由外层采样周期提供
func (p *ExecProber) Probe(ctx context.Context, host string) string {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, p.binary, countFlag(), "1", host)
	cmd.Stdout = io.Discard
	cmd.Stderr = io.Discard

	if err := cmd.Run(); err != nil {
		return models.StatusDown
	}
	return models.StatusUp
}

func countFlag() string {
	if runtime.GOOS == "windows" {
		return "-n"
	}
	return "-c"
}
