package employee

import (
	"github.com/lakshaytakkar/team-portal/internal/employee/internal/domain"
	"github.com/lakshaytakkar/team-portal/internal/employee/internal/service"
	"github.com/lakshaytakkar/team-portal/internal/employee/internal/web"
	"github.com/lakshaytakkar/team-portal/internal/pkg/resolver"
)

type (
	Handler  = web.Handler
	Service  = service.EmployeeService
	Employee = domain.Employee
	Status   = domain.Status
	Filter   = domain.Filter
	// Resolver 把员工编码/邮箱/姓名解析成规范 UUID，
	// 供资产、日历、招聘等模块引用员工时使用
	Resolver = resolver.Resolver
)

const (
	StatusActive  = domain.StatusActive
	StatusOnLeave = domain.StatusOnLeave
	StatusExited  = domain.StatusExited
)

type Module struct {
	Hdl *Handler
	Svc Service
	Rsv *Resolver
}
