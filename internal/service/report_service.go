package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/dushixiang/vitals/internal/models"
	"github.com/dushixiang/vitals/internal/repo"
)

// ReportService 采样记录报表
type ReportService struct {
	sampleRepo *repo.SampleRepo
}

// NewReportService 创建报表服务
func NewReportService(sampleRepo *repo.SampleRepo) *ReportService {
	return &ReportService{sampleRepo: sampleRepo}
}

// RecentReport 渲染最近 limit 条记录的报表
func (s *ReportService) RecentReport(ctx context.Context, limit int) (string, error) {
	samples, err := s.sampleRepo.FindRecent(ctx, limit)
	if err != nil {
		return "", fmt.Errorf("查询最近记录失败: %w", err)
	}
	title := fmt.Sprintf("=== Last %d entries ===", limit)
	return FormatSamples(title, samples, "(No data)"), nil
}

// FailedReport 渲染所有 ping 失败记录的报表
func (s *ReportService) FailedReport(ctx context.Context) (string, error) {
	samples, err := s.sampleRepo.FindByStatus(ctx, models.StatusDown)
	if err != nil {
		return "", fmt.Errorf("查询失败记录失败: %w", err)
	}
	return FormatSamples("=== Failed pings (DOWN) ===", samples, "(None)"), nil
}

// FormatSamples 渲染固定列宽的文本报表，空输入渲染占位文本
func FormatSamples(title string, samples []models.Sample, empty string) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(title)
	b.WriteString("\n")

	if len(samples) == 0 {
		b.WriteString(empty)
		b.WriteString("\n")
		return b.String()
	}

	for _, sample := range samples {
		b.WriteString(fmt.Sprintf("#%4d | %s | CPU %5.1f%% | MEM %5.1f%% | DISK %5.1f%% | PING %s\n",
			sample.ID, sample.Timestamp, sample.CPU, sample.Memory, sample.Disk, sample.PingStatus))
	}
	return b.String()
}
