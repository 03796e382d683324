package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/lakshaytakkar/team-portal/internal/employee/internal/domain"
	"github.com/lakshaytakkar/team-portal/internal/employee/internal/repository"
	"github.com/lithammer/shortuuid/v4"
	"golang.org/x/sync/errgroup"
)

// ErrInvalidEmployee 必填字段缺失或状态非法
var ErrInvalidEmployee = errors.New("员工信息不完整")

//go:generate mockgen -source=./employee.go -destination=../../mocks/employee.mock.go -package=employeemocks -typed EmployeeService
type EmployeeService interface {
	// Save 创建或更新员工。ID 为空表示创建，此时生成规范 UUID 和员工编码。
	Save(ctx context.Context, e domain.Employee) (string, error)
	Detail(ctx context.Context, id string) (domain.Employee, error)
	GetByIds(ctx context.Context, ids []string) (map[string]domain.Employee, error)
	List(ctx context.Context, f domain.Filter, offset, limit int) ([]domain.Employee, int64, error)
	// Delete 软删除。被删除的员工不再出现在任何查询和解析结果里。
	Delete(ctx context.Context, id string) error
}

type employeeService struct {
	repo repository.EmployeeRepository
}

func NewEmployeeService(repo repository.EmployeeRepository) EmployeeService {
	return &employeeService{repo: repo}
}

func (s *employeeService) Save(ctx context.Context, e domain.Employee) (string, error) {
	if !e.IsValid() {
		return "", ErrInvalidEmployee
	}
	if e.ID == "" {
		e.ID = uuid.NewString()
		e.Code = newEmployeeCode()
		return s.repo.Create(ctx, e)
	}
	return e.ID, s.repo.Update(ctx, e)
}

func (s *employeeService) Detail(ctx context.Context, id string) (domain.Employee, error) {
	return s.repo.FindById(ctx, id)
}

func (s *employeeService) GetByIds(ctx context.Context, ids []string) (map[string]domain.Employee, error) {
	employees, err := s.repo.FindByIds(ctx, ids)
	if err != nil {
		return nil, err
	}
	res := make(map[string]domain.Employee, len(employees))
	for _, e := range employees {
		res[e.ID] = e
	}
	return res, nil
}

func (s *employeeService) List(ctx context.Context, f domain.Filter, offset, limit int) ([]domain.Employee, int64, error) {
	var (
		employees []domain.Employee
		total     int64
	)
	var eg errgroup.Group
	eg.Go(func() error {
		var err error
		employees, err = s.repo.List(ctx, f, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.Count(ctx, f)
		return err
	})
	return employees, total, eg.Wait()
}

func (s *employeeService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// newEmployeeCode 生成形如 EMP-A1B2C3D4 的员工编码。
// shortuuid 是 base57，截 8 位的碰撞概率对内部系统足够低，
// 表上另有唯一索引兜底。
func newEmployeeCode() string {
	return "EMP-" + strings.ToUpper(shortuuid.New()[:8])
}
