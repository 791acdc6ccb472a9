package service

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dushixiang/vitals/internal/config"
	"github.com/dushixiang/vitals/internal/models"
	"github.com/dushixiang/vitals/internal/repo"
	"github.com/dushixiang/vitals/pkg/collector"
)

// Collector 系统指标采集能力（便于测试注入假实现）
type Collector interface {
	Collect(ctx context.Context) (*collector.Metrics, error)
}

// SamplerService 采样循环：固定次数、固定间隔，逐条落库
type SamplerService struct {
	conf          *config.Config
	sampleRepo    *repo.SampleRepo
	collector     Collector
	prober        collector.Prober
	reportService *ReportService
	logger        *zap.Logger
	out           io.Writer
}

// NewSamplerService 创建采样服务
func NewSamplerService(conf *config.Config, sampleRepo *repo.SampleRepo, c Collector, p collector.Prober, logger *zap.Logger) *SamplerService {
	return &SamplerService{
		conf:          conf,
		sampleRepo:    sampleRepo,
		collector:     c,
		prober:        p,
		reportService: NewReportService(sampleRepo),
		logger:        logger,
		out:           os.Stdout,
	}
}

// SetOutput 重定向进度和报表输出（测试用）
func (s *SamplerService) SetOutput(w io.Writer) {
	s.out = w
}

// Run 执行一轮完整采样：建表 -> N 次采样 -> 报表
// ctx 取消时在采样边界优雅退出，已写入的记录保持完整
// 存储或指标源错误直接中止本轮并返回
func (s *SamplerService) Run(ctx context.Context) error {
	runID := uuid.New().String()
	logger := s.logger.With(zap.String("runId", runID))

	started := time.Now()
	logger.Info("开始采样",
		zap.String("host", s.conf.Host),
		zap.Int("samples", s.conf.Samples),
		zap.Int("interval", s.conf.Interval))

	fmt.Fprintln(s.out, "Initializing database...")
	if err := s.sampleRepo.Init(ctx); err != nil {
		return err
	}

	fmt.Fprintf(s.out, "Collecting %d samples every %d seconds...\n", s.conf.Samples, s.conf.Interval)

	written := 0
	for i := 1; i <= s.conf.Samples; i++ {
		if canceled(ctx) {
			return s.interrupted(logger, written)
		}

		sample, err := s.takeSample(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return s.interrupted(logger, written)
			}
			return err
		}

		// 已开始的采样总是完整落库，取消只在边界生效
		if err := s.sampleRepo.Create(context.WithoutCancel(ctx), sample); err != nil {
			return err
		}
		written++

		fmt.Fprintf(s.out, "[%d/%d] Logged at %s | CPU %.1f%% MEM %.1f%% DISK %.1f%% PING %s\n",
			i, s.conf.Samples, sample.Timestamp, sample.CPU, sample.Memory, sample.Disk, sample.PingStatus)
		logger.Debug("采样已落库",
			zap.Uint("id", sample.ID),
			zap.Float64("cpu", sample.CPU),
			zap.Float64("memory", sample.Memory),
			zap.Float64("disk", sample.Disk),
			zap.String("pingStatus", sample.PingStatus))

		if i < s.conf.Samples {
			if err := s.wait(ctx); err != nil {
				return s.interrupted(logger, written)
			}
		}
	}

	logger.Info("采样完成",
		zap.Int("written", written),
		zap.Duration("elapsed", time.Since(started)))

	return s.printReports(ctx)
}

// takeSample 采集一条带时间戳的完整记录
func (s *SamplerService) takeSample(ctx context.Context) (*models.Sample, error) {
	timestamp := time.Now().Format(models.TimestampLayout)

	metrics, err := s.collector.Collect(ctx)
	if err != nil {
		return nil, err
	}

	// 探测失败折算为 DOWN，不会产生残缺记录
	status := s.prober.Probe(ctx, s.conf.Host)

	return &models.Sample{
		Timestamp:  timestamp,
		CPU:        metrics.CPU,
		Memory:     metrics.Memory,
		Disk:       metrics.Disk,
		PingStatus: status,
	}, nil
}

// wait 间隔等待，ctx 取消时立即返回
func (s *SamplerService) wait(ctx context.Context) error {
	timer := time.NewTimer(time.Duration(s.conf.Interval) * time.Second)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// printReports 输出最近记录报表，按配置附带失败记录报表
func (s *SamplerService) printReports(ctx context.Context) error {
	text, err := s.reportService.RecentReport(context.WithoutCancel(ctx), s.conf.Report.Recent)
	if err != nil {
		return err
	}
	fmt.Fprint(s.out, text)

	if s.conf.Report.ShowFailed {
		text, err = s.reportService.FailedReport(context.WithoutCancel(ctx))
		if err != nil {
			return err
		}
		fmt.Fprint(s.out, text)
	}
	return nil
}

// interrupted 处理用户中断：打印提示后正常返回，不视为错误
func (s *SamplerService) interrupted(logger *zap.Logger, written int) error {
	fmt.Fprintln(s.out, "\nInterrupted by user. Exiting...")
	logger.Info("采样被中断", zap.Int("written", written))
	return nil
}

func canceled(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return true
	default:
		return false
	}
}
