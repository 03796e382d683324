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

	"github.com/lakshaytakkar/team-portal/internal/client/internal/repository/dao"
	"github.com/lakshaytakkar/team-portal/internal/pkg/resolver"
	"gorm.io/gorm"
)

const (
	KeyName  resolver.Key = "name"
	KeyEmail resolver.Key = "email"
)

// 客户的备用键解析顺序是公司名优先于邮箱，
// 这里只维护键到列名的白名单，顺序在装配处声明。
var clientKeyColumns = map[resolver.Key]string{
	KeyName:  "company_name",
	KeyEmail: "email",
}

type clientLookup struct {
	dao dao.ClientDAO
}

func NewClientLookup(d dao.ClientDAO) resolver.Lookup {
	return &clientLookup{dao: d}
}

func (l *clientLookup) ByID(ctx context.Context, id string) (string, error) {
	c, err := l.dao.FindById(ctx, id)
	if err != nil {
		return "", mapNotFound(err)
	}
	return c.Id, nil
}

func (l *clientLookup) ByKey(ctx context.Context, key resolver.Key, value string) (string, error) {
	column, ok := clientKeyColumns[key]
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
