//go:build wireinject

package employee

import (
	"sync"

	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/lakshaytakkar/team-portal/internal/employee/internal/repository"
	"github.com/lakshaytakkar/team-portal/internal/employee/internal/repository/dao"
	"github.com/lakshaytakkar/team-portal/internal/employee/internal/service"
	"github.com/lakshaytakkar/team-portal/internal/employee/internal/web"
	"github.com/lakshaytakkar/team-portal/internal/pkg/resolver"
)

func InitModule(db *egorm.Component) (*Module, error) {
	wire.Build(
		InitTablesOnce,
		repository.NewEmployeeRepository,
		service.NewEmployeeService,
		web.NewHandler,
		initResolver,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.EmployeeDAO {
	once.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewGORMEmployeeDAO(db)
}

// initResolver 显式声明员工的备用键顺序：编码最具体先查，姓名最模糊兜底
func initResolver(d dao.EmployeeDAO) *resolver.Resolver {
	return resolver.New(
		repository.NewEmployeeLookup(d),
		repository.KeyCode,
		repository.KeyEmail,
		repository.KeyName,
	)
}
