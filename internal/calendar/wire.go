//go:build wireinject

package calendar

import (
	"sync"

	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/lakshaytakkar/team-portal/internal/calendar/internal/repository"
	"github.com/lakshaytakkar/team-portal/internal/calendar/internal/repository/dao"
	"github.com/lakshaytakkar/team-portal/internal/calendar/internal/service"
	"github.com/lakshaytakkar/team-portal/internal/calendar/internal/web"
	"github.com/lakshaytakkar/team-portal/internal/employee"
)

func InitModule(db *egorm.Component, em *employee.Module) (*Module, error) {
	wire.Build(
		InitTablesOnce,
		repository.NewEventRepository,
		service.NewEventService,
		web.NewHandler,
		wire.FieldsOf(new(*employee.Module), "Rsv"),
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.EventDAO {
	once.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewGORMEventDAO(db)
}
