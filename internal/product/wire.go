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

package product

import (
	"sync"

	"github.com/ecodeclub/ecache"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/lakshaytakkar/team-portal/internal/pkg/resolver"
	"github.com/lakshaytakkar/team-portal/internal/product/internal/repository"
	"github.com/lakshaytakkar/team-portal/internal/product/internal/repository/cache"
	"github.com/lakshaytakkar/team-portal/internal/product/internal/repository/dao"
	"github.com/lakshaytakkar/team-portal/internal/product/internal/service"
	"github.com/lakshaytakkar/team-portal/internal/product/internal/web"
)

func InitModule(db *egorm.Component, ec ecache.Cache) (*Module, error) {
	wire.Build(
		InitTablesOnce,
		cache.NewProductCache,
		repository.NewCachedProductRepository,
		service.NewProductService,
		web.NewHandler,
		initResolver,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.ProductDAO {
	once.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewGORMProductDAO(db)
}

// initResolver SKU 唯一且最具体，先于品名查
func initResolver(d dao.ProductDAO) *resolver.Resolver {
	return resolver.New(
		repository.NewProductLookup(d),
		repository.KeySKU,
		repository.KeyName,
	)
}
