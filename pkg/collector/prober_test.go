package collector

import (
	"context"
	"testing"
	"time"

	"github.com/dushixiang/vitals/internal/models"
)

func TestExecProberMissingBinary(t *testing.T) {
	p := NewExecProber(3 * time.Second)
	p.binary = "no-such-ping-command"

	status := p.Probe(context.Background(), "127.0.0.1")
	if status != models.StatusDown {
		t.Errorf("命令缺失应该返回 DOWN，实际返回 %s", status)
	}
}

func TestExecProberUnreachableHost(t *testing.T) {
	timeout := 2 * time.Second
	p := NewExecProber(timeout)

	// .invalid 顶级域名保证无法解析
	started := time.Now()
	status := p.Probe(context.Background(), "host.invalid")
	elapsed := time.Since(started)

	if status != models.StatusDown {
		t.Errorf("不可达主机应该返回 DOWN，实际返回 %s", status)
	}
	if elapsed > timeout+2*time.Second {
		t.Errorf("探测应该在超时内返回，实际耗时 %v", elapsed)
	}
}

func TestExecProberCanceledContext(t *testing.T) {
	p := NewExecProber(3 * time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if status := p.Probe(ctx, "127.0.0.1"); status != models.StatusDown {
		t.Errorf("已取消的 context 应该返回 DOWN，实际返回 %s", status)
	}
}

func TestICMPProberInvalidHost(t *testing.T) {
	p := NewICMPProber(2 * time.Second)

	if status := p.Probe(context.Background(), "host.invalid"); status != models.StatusDown {
		t.Errorf("无法解析的主机应该返回 DOWN，实际返回 %s", status)
	}
}
