package dao

import (
	"context"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

// Employee 员工表。软删除：deleted 置 1，所有查询排除已删除行。
type Employee struct {
	Id          string `gorm:"type:CHAR(36);primaryKey;comment:'规范UUID'"`
	Code        string `gorm:"type:VARCHAR(32);NOT NULL;uniqueIndex:unq_employee_code;comment:'员工编码，例如 EMP-A1B2C3D4'"`
	Name        string `gorm:"type:VARCHAR(256);NOT NULL;index:idx_employee_name;comment:'姓名'"`
	Email       string `gorm:"type:VARCHAR(256);NOT NULL;index:idx_employee_email;comment:'工作邮箱'"`
	Phone       string `gorm:"type:VARCHAR(32);comment:'电话'"`
	Department  string `gorm:"type:VARCHAR(128);NOT NULL;index:idx_employee_department;comment:'部门'"`
	Designation string `gorm:"type:VARCHAR(128);comment:'职位'"`
	Location    string `gorm:"type:VARCHAR(128);comment:'办公地点'"`
	JoinedDate  int64  `gorm:"comment:'入职日期'"`
	Status      string `gorm:"type:ENUM('ACTIVE','ON_LEAVE','EXITED');NOT NULL;default:'ACTIVE';comment:'在职状态'"`
	Deleted     uint8  `gorm:"type:TINYINT;NOT NULL;default:0;index:idx_employee_deleted;comment:'软删除标记'"`

	Ctime int64
	Utime int64
}

func (Employee) TableName() string {
	return "employees"
}

type EmployeeDAO interface {
	Create(ctx context.Context, e Employee) (string, error)
	Update(ctx context.Context, e Employee) error
	FindById(ctx context.Context, id string) (Employee, error)
	FindByIds(ctx context.Context, ids []string) ([]Employee, error)
	List(ctx context.Context, f Filter, offset, limit int) ([]Employee, error)
	Count(ctx context.Context, f Filter) (int64, error)
	// IdByField 按单个列做大小写不敏感的精确匹配，只命中未删除行
	IdByField(ctx context.Context, column, value string) (string, error)
	Delete(ctx context.Context, id string) error
}

// Filter 员工列表的过滤条件，零值字段不参与过滤
type Filter struct {
	Department string
	Status     string
	// Name 模糊匹配
	Name string
}

type GORMEmployeeDAO struct {
	db *egorm.Component
}

func NewGORMEmployeeDAO(db *egorm.Component) EmployeeDAO {
	return &GORMEmployeeDAO{db: db}
}

func (g *GORMEmployeeDAO) Create(ctx context.Context, e Employee) (string, error) {
	now := time.Now().UnixMilli()
	e.Ctime, e.Utime = now, now
	err := g.db.WithContext(ctx).Create(&e).Error
	return e.Id, err
}

func (g *GORMEmployeeDAO) Update(ctx context.Context, e Employee) error {
	return g.db.WithContext(ctx).Model(&Employee{}).
		Where("id = ? AND deleted = 0", e.Id).
		Updates(map[string]any{
			"name":        e.Name,
			"email":       e.Email,
			"phone":       e.Phone,
			"department":  e.Department,
			"designation": e.Designation,
			"location":    e.Location,
			"joined_date": e.JoinedDate,
			"status":      e.Status,
			"utime":       time.Now().UnixMilli(),
		}).Error
}

func (g *GORMEmployeeDAO) FindById(ctx context.Context, id string) (Employee, error) {
	var e Employee
	err := g.active(ctx).Where("id = ?", id).First(&e).Error
	return e, err
}

func (g *GORMEmployeeDAO) FindByIds(ctx context.Context, ids []string) ([]Employee, error) {
	var res []Employee
	err := g.active(ctx).Where("id IN ?", ids).Find(&res).Error
	return res, err
}

func (g *GORMEmployeeDAO) List(ctx context.Context, f Filter, offset, limit int) ([]Employee, error) {
	var res []Employee
	err := g.filtered(ctx, f).Offset(offset).Limit(limit).Order("utime DESC").Find(&res).Error
	return res, err
}

func (g *GORMEmployeeDAO) Count(ctx context.Context, f Filter) (int64, error) {
	var count int64
	err := g.filtered(ctx, f).Model(&Employee{}).Count(&count).Error
	return count, err
}

func (g *GORMEmployeeDAO) IdByField(ctx context.Context, column, value string) (string, error) {
	var e Employee
	err := g.active(ctx).Select("id").
		Where("LOWER("+column+") = LOWER(?)", value).
		First(&e).Error
	return e.Id, err
}

func (g *GORMEmployeeDAO) Delete(ctx context.Context, id string) error {
	return g.db.WithContext(ctx).Model(&Employee{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"deleted": 1,
			"utime":   time.Now().UnixMilli(),
		}).Error
}

func (g *GORMEmployeeDAO) active(ctx context.Context) *gorm.DB {
	return g.db.WithContext(ctx).Where("deleted = 0")
}

func (g *GORMEmployeeDAO) filtered(ctx context.Context, f Filter) *gorm.DB {
	query := g.active(ctx)
	if f.Department != "" {
		query = query.Where("department = ?", f.Department)
	}
	if f.Status != "" {
		query = query.Where("status = ?", f.Status)
	}
	if f.Name != "" {
		query = query.Where("name LIKE ?", "%"+f.Name+"%")
	}
	return query
}
