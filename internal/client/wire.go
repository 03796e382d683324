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

package client

import (
	"sync"

	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/lakshaytakkar/team-portal/internal/client/internal/event"
	"github.com/lakshaytakkar/team-portal/internal/client/internal/repository"
	"github.com/lakshaytakkar/team-portal/internal/client/internal/repository/dao"
	"github.com/lakshaytakkar/team-portal/internal/client/internal/service"
	"github.com/lakshaytakkar/team-portal/internal/client/internal/web"
	"github.com/lakshaytakkar/team-portal/internal/pkg/resolver"
)

func InitModule(db *egorm.Component, q mq.MQ) (*Module, error) {
	wire.Build(
		InitTablesOnce,
		initStageChangedProducer,
		repository.NewClientRepository,
		event.NewStageChangedEventProducer,
		service.NewClientService,
		web.NewHandler,
		initResolver,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.ClientDAO {
	once.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewGORMClientDAO(db)
}

func initStageChangedProducer(q mq.MQ) mq.Producer {
	res, err := q.Producer(event.StageChangedTopic)
	if err != nil {
		panic(err)
	}
	return res
}

// initResolver 客户的备用键顺序：公司名先查，邮箱兜底
func initResolver(d dao.ClientDAO) *resolver.Resolver {
	return resolver.New(
		repository.NewClientLookup(d),
		repository.KeyName,
		repository.KeyEmail,
	)
}
