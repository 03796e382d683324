// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

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

// Injectors from wire.go:

func InitApp() (*App, error) {
	cmdable := InitRedis()
	provider := InitSession(cmdable)
	v := InitDB()
	module, err := employee.InitModule(v)
	if err != nil {
		return nil, err
	}
	v2 := module.Hdl
	recruitmentModule, err := recruitment.InitModule(v, module)
	if err != nil {
		return nil, err
	}
	v3 := recruitmentModule.CandidateHdl
	v4 := recruitmentModule.InterviewHdl
	v5 := recruitmentModule.OfferHdl
	mq := InitMQ()
	clientModule, err := client.InitModule(v, mq)
	if err != nil {
		return nil, err
	}
	v6 := clientModule.Hdl
	projectModule, err := project.InitModule(v, clientModule, module)
	if err != nil {
		return nil, err
	}
	v7 := projectModule.Hdl
	assetModule, err := asset.InitModule(v, module)
	if err != nil {
		return nil, err
	}
	v8 := assetModule.Hdl
	calendarModule, err := calendar.InitModule(v, module)
	if err != nil {
		return nil, err
	}
	v9 := calendarModule.Hdl
	cache := InitCache(cmdable)
	productModule, err := product.InitModule(v, cache)
	if err != nil {
		return nil, err
	}
	v10 := productModule.Hdl
	component := initGinxServer(provider, v2, v3, v4, v5, v6, v7, v8, v9, v10)
	app := &App{
		Web: component,
	}
	return app, nil
}

// wire.go:

var BaseSet = wire.NewSet(InitDB, InitCache, InitRedis, InitMQ)
