package repository

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/lakshaytakkar/team-portal/internal/employee/internal/domain"
	"github.com/lakshaytakkar/team-portal/internal/employee/internal/repository/dao"
)

// EmployeeRepository 解耦 Domain 层与 DAO 层，负责两者之间的数据转换
//
//go:generate mockgen -source=./employee.go -destination=./mocks/employee.mock.go -package=repomocks EmployeeRepository
type EmployeeRepository interface {
	Create(ctx context.Context, e domain.Employee) (string, error)
	Update(ctx context.Context, e domain.Employee) error
	FindById(ctx context.Context, id string) (domain.Employee, error)
	FindByIds(ctx context.Context, ids []string) ([]domain.Employee, error)
	List(ctx context.Context, f domain.Filter, offset, limit int) ([]domain.Employee, error)
	Count(ctx context.Context, f domain.Filter) (int64, error)
	Delete(ctx context.Context, id string) error
}

type employeeRepository struct {
	dao dao.EmployeeDAO
}

func NewEmployeeRepository(d dao.EmployeeDAO) EmployeeRepository {
	return &employeeRepository{dao: d}
}

func (r *employeeRepository) Create(ctx context.Context, e domain.Employee) (string, error) {
	return r.dao.Create(ctx, r.toEntity(e))
}

func (r *employeeRepository) Update(ctx context.Context, e domain.Employee) error {
	return r.dao.Update(ctx, r.toEntity(e))
}

func (r *employeeRepository) FindById(ctx context.Context, id string) (domain.Employee, error) {
	found, err := r.dao.FindById(ctx, id)
	if err != nil {
		return domain.Employee{}, err
	}
	return r.toDomain(found), nil
}

func (r *employeeRepository) FindByIds(ctx context.Context, ids []string) ([]domain.Employee, error) {
	found, err := r.dao.FindByIds(ctx, ids)
	if err != nil {
		return nil, err
	}
	return slice.Map(found, func(_ int, src dao.Employee) domain.Employee {
		return r.toDomain(src)
	}), nil
}

func (r *employeeRepository) List(ctx context.Context, f domain.Filter, offset, limit int) ([]domain.Employee, error) {
	found, err := r.dao.List(ctx, r.toFilter(f), offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(found, func(_ int, src dao.Employee) domain.Employee {
		return r.toDomain(src)
	}), nil
}

func (r *employeeRepository) Count(ctx context.Context, f domain.Filter) (int64, error) {
	return r.dao.Count(ctx, r.toFilter(f))
}

func (r *employeeRepository) Delete(ctx context.Context, id string) error {
	return r.dao.Delete(ctx, id)
}

func (r *employeeRepository) toFilter(f domain.Filter) dao.Filter {
	return dao.Filter{
		Department: f.Department,
		Status:     f.Status.String(),
		Name:       f.Name,
	}
}

func (r *employeeRepository) toEntity(e domain.Employee) dao.Employee {
	return dao.Employee{
		Id:          e.ID,
		Code:        e.Code,
		Name:        e.Name,
		Email:       e.Email,
		Phone:       e.Phone,
		Department:  e.Department,
		Designation: e.Designation,
		Location:    e.Location,
		JoinedDate:  e.JoinedDate,
		Status:      e.Status.String(),
	}
}

func (r *employeeRepository) toDomain(e dao.Employee) domain.Employee {
	return domain.Employee{
		ID:          e.Id,
		Code:        e.Code,
		Name:        e.Name,
		Email:       e.Email,
		Phone:       e.Phone,
		Department:  e.Department,
		Designation: e.Designation,
		Location:    e.Location,
		JoinedDate:  e.JoinedDate,
		Status:      domain.Status(e.Status),
	}
}
