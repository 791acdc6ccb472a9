package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// 探测方式
const (
	ProbeModeExec = "exec" // 调用系统 ping 命令
	ProbeModeICMP = "icmp" // 进程内 ICMP（pro-bing）
)

// Config 应用配置
type Config struct {
	Host     string       `yaml:"host"`     // 连通性探测目标主机
	Samples  int          `yaml:"samples"`  // 采样次数
	Interval int          `yaml:"interval"` // 采样间隔（秒）
	Database string       `yaml:"database"` // SQLite 数据库文件路径
	Ping     PingConfig   `yaml:"ping"`
	Report   ReportConfig `yaml:"report"`
	Log      LogConfig    `yaml:"log"`
}

// PingConfig 连通性探测配置
type PingConfig struct {
	Mode    string `yaml:"mode"`    // exec 或 icmp
	Timeout int    `yaml:"timeout"` // 单次探测超时（秒）
}

// ReportConfig 报表配置
type ReportConfig struct {
	Recent     int  `yaml:"recent"`     // 展示最近几条记录
	ShowFailed bool `yaml:"showFailed"` // 是否附带 DOWN 记录报表
}

// LogConfig 日志配置
type LogConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`       // 为空时输出到标准错误
	MaxSize    int    `yaml:"maxSize"`    // MB
	MaxBackups int    `yaml:"maxBackups"` // 保留的旧日志文件数
	MaxAge     int    `yaml:"maxAge"`     // 天数
	Compress   bool   `yaml:"compress"`
}

// Default 默认配置（与原始工具的固定常量一致）
func Default() *Config {
	return &Config{
		Host:     "google.com",
		Samples:  5,
		Interval: 10,
		Database: "log.db",
		Ping: PingConfig{
			Mode:    ProbeModeExec,
			Timeout: 3,
		},
		Report: ReportConfig{
			Recent:     5,
			ShowFailed: false,
		},
		Log: LogConfig{
			Level:      "info",
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     7,
		},
	}
}

// Load 从 YAML 文件加载配置，未设置的字段保持默认值
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取配置文件失败: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("解析配置文件失败: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate 校验配置合法性
func (c *Config) Validate() error {
	if c.Host == "" {
		return fmt.Errorf("host 不能为空")
	}
	if c.Samples < 0 {
		return fmt.Errorf("samples 不能为负数: %d", c.Samples)
	}
	if c.Interval < 0 {
		return fmt.Errorf("interval 不能为负数: %d", c.Interval)
	}
	if c.Database == "" {
		return fmt.Errorf("database 不能为空")
	}
	if c.Ping.Timeout <= 0 {
		return fmt.Errorf("ping.timeout 必须大于 0: %d", c.Ping.Timeout)
	}
	switch c.Ping.Mode {
	case ProbeModeExec, ProbeModeICMP:
	default:
		return fmt.Errorf("不支持的探测方式: %s", c.Ping.Mode)
	}
	return nil
}
