package repository

import (
	"context"
	"errors"

	"github.com/lakshaytakkar/team-portal/internal/employee/internal/repository/dao"
	"github.com/lakshaytakkar/team-portal/internal/pkg/resolver"
	"gorm.io/gorm"
)

// 员工支持的备用键到列名的映射。
// 列名走白名单，备用键的值永远只作为查询参数出现。
var employeeKeyColumns = map[resolver.Key]string{
	KeyCode:  "code",
	KeyEmail: "email",
	KeyName:  "name",
}

const (
	KeyCode  resolver.Key = "code"
	KeyEmail resolver.Key = "email"
	KeyName  resolver.Key = "name"
)

// employeeLookup 把 EmployeeDAO 适配成解析器需要的 Lookup
type employeeLookup struct {
	dao dao.EmployeeDAO
}

func NewEmployeeLookup(d dao.EmployeeDAO) resolver.Lookup {
	return &employeeLookup{dao: d}
}

func (l *employeeLookup) ByID(ctx context.Context, id string) (string, error) {
	e, err := l.dao.FindById(ctx, id)
	if err != nil {
		return "", mapNotFound(err)
	}
	return e.Id, nil
}

func (l *employeeLookup) ByKey(ctx context.Context, key resolver.Key, value string) (string, error) {
	column, ok := employeeKeyColumns[key]
	if !ok {
		return "", resolver.ErrRecordNotFound
	}
	id, err := l.dao.IdByField(ctx, column, value)
	if err != nil {
		return "", mapNotFound(err)
	}
	return id, nil
}

func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return resolver.ErrRecordNotFound
	}
	return err
}
