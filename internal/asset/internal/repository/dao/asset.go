package dao

import (
	"context"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

type Asset struct {
	Id           string `gorm:"type:CHAR(36);primaryKey;comment:'规范UUID'"`
	Tag          string `gorm:"type:VARCHAR(32);NOT NULL;uniqueIndex:unq_asset_tag;comment:'资产编号'"`
	Name         string `gorm:"type:VARCHAR(256);NOT NULL;comment:'名称'"`
	Category     string `gorm:"type:VARCHAR(64);NOT NULL;index:idx_asset_category;comment:'类别'"`
	Serial       string `gorm:"type:VARCHAR(128);comment:'序列号'"`
	PurchaseDate int64  `gorm:"comment:'购入日期'"`
	Status       string `gorm:"type:VARCHAR(16);NOT NULL;index:idx_asset_status;comment:'状态'"`
	AssigneeId   string `gorm:"type:CHAR(36);index:idx_asset_assignee;comment:'使用人员工UUID'"`
	Deleted      uint8  `gorm:"type:TINYINT;NOT NULL;default:0;index:idx_asset_deleted;comment:'软删除标记'"`

	Ctime int64
	Utime int64
}

func (Asset) TableName() string {
	return "assets"
}

type Filter struct {
	Category string
	Status   string
}

type AssetDAO interface {
	Create(ctx context.Context, a Asset) (string, error)
	Update(ctx context.Context, a Asset) error
	UpdateAssignment(ctx context.Context, id, assigneeId, status string) error
	FindById(ctx context.Context, id string) (Asset, error)
	List(ctx context.Context, f Filter, offset, limit int) ([]Asset, error)
	Count(ctx context.Context, f Filter) (int64, error)
	Delete(ctx context.Context, id string) error
}

type GORMAssetDAO struct {
	db *egorm.Component
}

func NewGORMAssetDAO(db *egorm.Component) AssetDAO {
	return &GORMAssetDAO{db: db}
}

func (g *GORMAssetDAO) Create(ctx context.Context, a Asset) (string, error) {
	now := time.Now().UnixMilli()
	a.Ctime, a.Utime = now, now
	err := g.db.WithContext(ctx).Create(&a).Error
	return a.Id, err
}

func (g *GORMAssetDAO) Update(ctx context.Context, a Asset) error {
	return g.db.WithContext(ctx).Model(&Asset{}).
		Where("id = ? AND deleted = 0", a.Id).
		Updates(map[string]any{
			"name":          a.Name,
			"category":      a.Category,
			"serial":        a.Serial,
			"purchase_date": a.PurchaseDate,
			"status":        a.Status,
			"utime":         time.Now().UnixMilli(),
		}).Error
}

func (g *GORMAssetDAO) UpdateAssignment(ctx context.Context, id, assigneeId, status string) error {
	return g.db.WithContext(ctx).Model(&Asset{}).
		Where("id = ? AND deleted = 0", id).
		Updates(map[string]any{
			"assignee_id": assigneeId,
			"status":      status,
			"utime":       time.Now().UnixMilli(),
		}).Error
}

func (g *GORMAssetDAO) FindById(ctx context.Context, id string) (Asset, error) {
	var a Asset
	err := g.active(ctx).Where("id = ?", id).First(&a).Error
	return a, err
}

func (g *GORMAssetDAO) List(ctx context.Context, f Filter, offset, limit int) ([]Asset, error) {
	var res []Asset
	err := g.filtered(ctx, f).Offset(offset).Limit(limit).Order("utime DESC").Find(&res).Error
	return res, err
}

func (g *GORMAssetDAO) Count(ctx context.Context, f Filter) (int64, error) {
	var count int64
	err := g.filtered(ctx, f).Model(&Asset{}).Count(&count).Error
	return count, err
}

func (g *GORMAssetDAO) Delete(ctx context.Context, id string) error {
	return g.db.WithContext(ctx).Model(&Asset{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"deleted": 1,
			"utime":   time.Now().UnixMilli(),
		}).Error
}

func (g *GORMAssetDAO) active(ctx context.Context) *gorm.DB {
	return g.db.WithContext(ctx).Where("deleted = 0")
}

func (g *GORMAssetDAO) filtered(ctx context.Context, f Filter) *gorm.DB {
	query := g.active(ctx)
	if f.Category != "" {
		query = query.Where("category = ?", f.Category)
	}
	if f.Status != "" {
		query = query.Where("status = ?", f.Status)
	}
	return query
}
