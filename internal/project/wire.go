// Copyright 2025 lakshaytakkar
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build wireinject

package project

import (
	"sync"

	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/lakshaytakkar/team-portal/internal/client"
	"github.com/lakshaytakkar/team-portal/internal/employee"
	"github.com/lakshaytakkar/team-portal/internal/project/internal/repository"
	"github.com/lakshaytakkar/team-portal/internal/project/internal/repository/dao"
	"github.com/lakshaytakkar/team-portal/internal/project/internal/service"
	"github.com/lakshaytakkar/team-portal/internal/project/internal/web"
)

func InitModule(db *egorm.Component,
	cm *client.Module,
	em *employee.Module) (*Module, error) {
	wire.Build(
		InitTablesOnce,
		repository.NewProjectRepository,
		initService,
		web.NewHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.ProjectDAO {
	once.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewGORMProjectDAO(db)
}

// initService 两个模块都对外暴露 *resolver.Resolver，
// wire 没法按类型区分，这里手工接线
func initService(repo repository.ProjectRepository,
	cm *client.Module,
	em *employee.Module) service.ProjectService {
	return service.NewProjectService(repo, cm.Rsv, em.Rsv)
}
