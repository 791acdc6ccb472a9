package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-errors/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dushixiang/vitals/internal/config"
	"github.com/dushixiang/vitals/internal/database"
	"github.com/dushixiang/vitals/internal/repo"
	"github.com/dushixiang/vitals/internal/service"
	"github.com/dushixiang/vitals/pkg/collector"
	"github.com/dushixiang/vitals/pkg/logger"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "vitals: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "vitals",
		Short:         "定时采集系统健康指标并记录到 SQLite",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newReportCmd())
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

// loadConfig 加载配置文件（未指定时使用默认值），并用命令行参数覆盖
func loadConfig(cmd *cobra.Command, configFile string) (*config.Config, error) {
	conf := config.Default()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		conf = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("host") {
		conf.Host, _ = flags.GetString("host")
	}
	if flags.Changed("samples") {
		conf.Samples, _ = flags.GetInt("samples")
	}
	if flags.Changed("interval") {
		conf.Interval, _ = flags.GetInt("interval")
	}
	if flags.Changed("db") {
		conf.Database, _ = flags.GetString("db")
	}
	if flags.Changed("timeout") {
		conf.Ping.Timeout, _ = flags.GetInt("timeout")
	}
	if flags.Changed("ping-mode") {
		conf.Ping.Mode, _ = flags.GetString("ping-mode")
	}
	if flags.Changed("failed") {
		conf.Report.ShowFailed, _ = flags.GetBool("failed")
	}

	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return conf, nil
}

func newRunCmd() *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "执行一轮固定次数的采样并输出报表",
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := loadConfig(cmd, configFile)
			if err != nil {
				return err
			}

			log := logger.New(&conf.Log)
			defer log.Sync()

			// Ctrl+C / SIGTERM 触发优雅退出
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			db, err := database.Open(conf.Database)
			if err != nil {
				return err
			}
			defer database.Close(db)

			timeout := time.Duration(conf.Ping.Timeout) * time.Second
			var prober collector.Prober
			switch conf.Ping.Mode {
			case config.ProbeModeICMP:
				prober = collector.NewICMPProber(timeout)
			default:
				prober = collector.NewExecProber(timeout)
			}

			sampleRepo := repo.NewSampleRepo(db)
			samplerService := service.NewSamplerService(conf, sampleRepo, collector.NewSystemCollector(), prober, log)

			if err := samplerService.Run(ctx); err != nil {
				log.Error("采样中止", zap.String("stack", errors.Wrap(err, 0).ErrorStack()))
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configFile, "config", "c", "", "配置文件路径（YAML）")
	cmd.Flags().String("host", "google.com", "连通性探测目标主机")
	cmd.Flags().Int("samples", 5, "采样次数")
	cmd.Flags().Int("interval", 10, "采样间隔（秒）")
	cmd.Flags().String("db", "log.db", "SQLite 数据库文件路径")
	cmd.Flags().Int("timeout", 3, "单次探测超时（秒）")
	cmd.Flags().String("ping-mode", config.ProbeModeExec, "探测方式: exec 或 icmp")
	cmd.Flags().Bool("failed", false, "报表附带所有 DOWN 记录")
	return cmd
}

func newReportCmd() *cobra.Command {
	var (
		dbPath string
		recent int
		failed bool
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "只读回放：输出最近记录报表，不执行采样",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := database.Open(dbPath)
			if err != nil {
				return err
			}
			defer database.Close(db)

			sampleRepo := repo.NewSampleRepo(db)
			if err := sampleRepo.Init(cmd.Context()); err != nil {
				return err
			}
			reportService := service.NewReportService(sampleRepo)

			text, err := reportService.RecentReport(cmd.Context(), recent)
			if err != nil {
				return err
			}
			fmt.Print(text)

			if failed {
				text, err = reportService.FailedReport(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Print(text)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "log.db", "SQLite 数据库文件路径")
	cmd.Flags().IntVar(&recent, "recent", 5, "展示最近几条记录")
	cmd.Flags().BoolVar(&failed, "failed", false, "附带所有 DOWN 记录")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "输出版本号",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}
}
