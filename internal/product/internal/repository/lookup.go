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

package repository

import (
	"context"
	"errors"

	"github.com/lakshaytakkar/team-portal/internal/pkg/resolver"
	"github.com/lakshaytakkar/team-portal/internal/product/internal/repository/dao"
	"gorm.io/gorm"
)

const (
	KeySKU  resolver.Key = "sku"
	KeyName resolver.Key = "name"
)

// SKU 唯一且最具体，永远先于品名查
var productKeyColumns = map[resolver.Key]string{
	KeySKU:  "sku",
	KeyName: "name",
}

type productLookup struct {
	dao dao.ProductDAO
}

func NewProductLookup(d dao.ProductDAO) resolver.Lookup {
	return &productLookup{dao: d}
}

func (l *productLookup) ByID(ctx context.Context, id string) (string, error) {
	p, err := l.dao.FindById(ctx, id)
	if err != nil {
		return "", mapNotFound(err)
	}
	return p.Id, nil
}

func (l *productLookup) ByKey(ctx context.Context, key resolver.Key, value string) (string, error) {
	column, ok := productKeyColumns[key]
	if !ok {
		return "", resolver.ErrRecordNotFound
	}
	id, err := l.dao.IdByField(ctx, column, value)
	if err != nil {
		return "", mapNotFound(err)
	}
	return id, nil
}

func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return resolver.ErrRecordNotFound
	}
	return err
}
