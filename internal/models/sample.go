package models

// 时间戳的存储格式（秒级精度，直接可读）
const TimestampLayout = "2006-01-02 15:04:05"

// Ping 状态枚举
const (
	StatusUp   = "UP"
	StatusDown = "DOWN"
)

// Sample 一次系统健康采样记录
type Sample struct {
	ID         uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Timestamp  string  `gorm:"not null" json:"timestamp"`              // 采集时间（YYYY-MM-DD HH:MM:SS）
	CPU        float64 `gorm:"column:cpu;not null" json:"cpu"`         // CPU 使用率(%)
	Memory     float64 `gorm:"not null" json:"memory"`                 // 内存使用率(%)
	Disk       float64 `gorm:"not null" json:"disk"`                   // 磁盘使用率(%)
	PingStatus string  `gorm:"column:ping_status;not null" json:"pingStatus"` // 网络连通状态（UP/DOWN）
}

func (Sample) TableName() string {
	return "system_log"
}
