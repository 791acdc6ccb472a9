package service

import (
	"strings"
	"testing"

	"github.com/dushixiang/vitals/internal/models"
)

func TestFormatSamplesEmpty(t *testing.T) {
	text := FormatSamples("=== Last 5 entries ===", nil, "(No data)")
	if !strings.Contains(text, "=== Last 5 entries ===") {
		t.Errorf("报表应该包含标题，实际输出:\n%s", text)
	}
	if !strings.Contains(text, "(No data)") {
		t.Errorf("空输入应该渲染占位文本，实际输出:\n%s", text)
	}
}

func TestFormatSamples(t *testing.T) {
	samples := []models.Sample{
		{ID: 12, Timestamp: "2026-08-30 10:00:05", CPU: 7.5, Memory: 45.62, Disk: 100, PingStatus: models.StatusUp},
		{ID: 3, Timestamp: "2026-08-30 10:00:00", CPU: 12.34, Memory: 5, Disk: 78.9, PingStatus: models.StatusDown},
	}
	text := FormatSamples("=== Last 2 entries ===", samples, "(No data)")

	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	// 首行是空行，然后是标题和两条记录
	if len(lines) != 4 {
		t.Fatalf("应该输出 4 行，实际 %d 行:\n%s", len(lines), text)
	}

	want := []string{
		"#  12 | 2026-08-30 10:00:05 | CPU   7.5% | MEM  45.6% | DISK 100.0% | PING UP",
		"#   3 | 2026-08-30 10:00:00 | CPU  12.3% | MEM   5.0% | DISK  78.9% | PING DOWN",
	}
	for i, line := range lines[2:] {
		if line != want[i] {
			t.Errorf("第 %d 条记录格式不对\n期望: %q\n实际: %q", i+1, want[i], line)
		}
	}
}
