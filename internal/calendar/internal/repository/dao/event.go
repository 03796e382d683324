package dao

import (
	"context"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

type Event struct {
	Id          string `gorm:"type:CHAR(36);primaryKey;comment:'规范UUID'"`
	Title       string `gorm:"type:VARCHAR(256);NOT NULL;comment:'标题'"`
	Description string `gorm:"type:TEXT;comment:'描述'"`
	StartTime   int64  `gorm:"NOT NULL;index:idx_event_start;comment:'开始时间'"`
	EndTime     int64  `gorm:"NOT NULL;index:idx_event_end;comment:'结束时间'"`
	AllDay      bool   `gorm:"comment:'全天事件'"`
	Kind        string `gorm:"type:VARCHAR(16);NOT NULL;comment:'类型'"`
	OrganizerId string `gorm:"type:CHAR(36);index:idx_event_organizer;comment:'组织者员工UUID'"`
	Deleted     uint8  `gorm:"type:TINYINT;NOT NULL;default:0;index:idx_event_deleted;comment:'软删除标记'"`

	Ctime int64
	Utime int64
}

func (Event) TableName() string {
	return "calendar_events"
}

type EventDAO interface {
	Create(ctx context.Context, e Event) (string, error)
	Update(ctx context.Context, e Event) error
	FindById(ctx context.Context, id string) (Event, error)
	// FindByRange 查询与 [start, end) 有交集的事件
	FindByRange(ctx context.Context, start, end int64) ([]Event, error)
	Delete(ctx context.Context, id string) error
}

type GORMEventDAO struct {
	db *egorm.Component
}

func NewGORMEventDAO(db *egorm.Component) EventDAO {
	return &GORMEventDAO{db: db}
}

func (g *GORMEventDAO) Create(ctx context.Context, e Event) (string, error) {
	now := time.Now().UnixMilli()
	e.Ctime, e.Utime = now, now
	err := g.db.WithContext(ctx).Create(&e).Error
	return e.Id, err
}

func (g *GORMEventDAO) Update(ctx context.Context, e Event) error {
	return g.db.WithContext(ctx).Model(&Event{}).
		Where("id = ? AND deleted = 0", e.Id).
		Updates(map[string]any{
			"title":        e.Title,
			"description":  e.Description,
			"start_time":   e.StartTime,
			"end_time":     e.EndTime,
			"all_day":      e.AllDay,
			"kind":         e.Kind,
			"organizer_id": e.OrganizerId,
			"utime":        time.Now().UnixMilli(),
		}).Error
}

func (g *GORMEventDAO) FindById(ctx context.Context, id string) (Event, error) {
	var e Event
	err := g.active(ctx).Where("id = ?", id).First(&e).Error
	return e, err
}

func (g *GORMEventDAO) FindByRange(ctx context.Context, start, end int64) ([]Event, error) {
	var res []Event
	// 区间相交：开始早于窗口结束，且结束晚于窗口开始
	err := g.active(ctx).
		Where("start_time < ? AND end_time > ?", end, start).
		Order("start_time ASC").
		Find(&res).Error
	return res, err
}

func (g *GORMEventDAO) Delete(ctx context.Context, id string) error {
	return g.db.WithContext(ctx).Model(&Event{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"deleted": 1,
			"utime":   time.Now().UnixMilli(),
		}).Error
}

func (g *GORMEventDAO) active(ctx context.Context) *gorm.DB {
	return g.db.WithContext(ctx).Where("deleted = 0")
}
