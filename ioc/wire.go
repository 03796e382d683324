//go:build wireinject

package ioc

import (
	"github.com/google/wire"
	"github.com/lakshaytakkar/team-portal/internal/asset"
	"github.com/lakshaytakkar/team-portal/internal/calendar"
	"github.com/lakshaytakkar/team-portal/internal/client"
	"github.com/lakshaytakkar/team-portal/internal/employee"
	"github.com/lakshaytakkar/team-portal/internal/product"
	"github.com/lakshaytakkar/team-portal/internal/project"
	"github.com/lakshaytakkar/team-portal/internal/recruitment"
)

var BaseSet = wire.NewSet(InitDB, InitCache, InitRedis, InitMQ)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		employee.InitModule,
		wire.FieldsOf(new(*employee.Module), "Hdl"),
		recruitment.InitModule,
		wire.FieldsOf(new(*recruitment.Module), "CandidateHdl", "InterviewHdl", "OfferHdl"),
		client.InitModule,
		wire.FieldsOf(new(*client.Module), "Hdl"),
		project.InitModule,
		wire.FieldsOf(new(*project.Module), "Hdl"),
		asset.InitModule,
		wire.FieldsOf(new(*asset.Module), "Hdl"),
		calendar.InitModule,
		wire.FieldsOf(new(*calendar.Module), "Hdl"),
		product.InitModule,
		wire.FieldsOf(new(*product.Module), "Hdl"),
		InitSession,
		initGinxServer)
	return new(App), nil
}
