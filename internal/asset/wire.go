//go:build wireinject

package asset

import (
	"sync"

	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/lakshaytakkar/team-portal/internal/asset/internal/repository"
	"github.com/lakshaytakkar/team-portal/internal/asset/internal/repository/dao"
	"github.com/lakshaytakkar/team-portal/internal/asset/internal/service"
	"github.com/lakshaytakkar/team-portal/internal/asset/internal/web"
	"github.com/lakshaytakkar/team-portal/internal/employee"
)

func InitModule(db *egorm.Component, em *employee.Module) (*Module, error) {
	wire.Build(
		InitTablesOnce,
		repository.NewAssetRepository,
		service.NewAssetService,
		web.NewHandler,
		wire.FieldsOf(new(*employee.Module), "Rsv"),
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.AssetDAO {
	once.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewGORMAssetDAO(db)
}
