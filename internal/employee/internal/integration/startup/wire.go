//go:build wireinject

package startup

import (
	"github.com/google/wire"
	"github.com/lakshaytakkar/team-portal/internal/employee"
	testioc "github.com/lakshaytakkar/team-portal/internal/test/ioc"
)

func InitModule() (*employee.Module, error) {
	wire.Build(testioc.InitDB, employee.InitModule)
	return new(employee.Module), nil
}
