package repo

import (
	"context"
	"fmt"

	"github.com/dushixiang/vitals/internal/models"
	"gorm.io/gorm"
)

// SampleRepo 采样记录数据访问层
type SampleRepo struct {
	db *gorm.DB
}

// NewSampleRepo 创建仓库
func NewSampleRepo(db *gorm.DB) *SampleRepo {
	return &SampleRepo{db: db}
}

// Init 初始化表结构（幂等，可在每次启动时调用）
func (r *SampleRepo) Init(ctx context.Context) error {
	if err := r.db.WithContext(ctx).AutoMigrate(&models.Sample{}); err != nil {
		return fmt.Errorf("初始化 system_log 表失败: %w", err)
	}
	return nil
}

// Create 插入一条采样记录（单独事务，返回前已提交）
func (r *SampleRepo) Create(ctx context.Context, sample *models.Sample) error {
	if err := r.db.WithContext(ctx).Create(sample).Error; err != nil {
		return fmt.Errorf("写入采样记录失败: %w", err)
	}
	return nil
}

// FindRecent 查询最近的 limit 条记录，按 id 降序
// limit <= 0 或空表返回空切片而不是错误
func (r *SampleRepo) FindRecent(ctx context.Context, limit int) ([]models.Sample, error) {
	samples := make([]models.Sample, 0)
	if limit <= 0 {
		return samples, nil
	}
	err := r.db.WithContext(ctx).
		Order("id DESC").
		Limit(limit).
		Find(&samples).Error
	return samples, err
}

// FindByStatus 查询指定 ping 状态的所有记录，按 id 降序
func (r *SampleRepo) FindByStatus(ctx context.Context, status string) ([]models.Sample, error) {
	samples := make([]models.Sample, 0)
	err := r.db.WithContext(ctx).
		Where("ping_status = ?", status).
		Order("id DESC").
		Find(&samples).Error
	return samples, err
}

// Count 统计记录总数
func (r *SampleRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Sample{}).Count(&count).Error
	return count, err
}
