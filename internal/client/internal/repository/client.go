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

	"github.com/ecodeclub/ekit/slice"
	"github.com/lakshaytakkar/team-portal/internal/client/internal/domain"
	"github.com/lakshaytakkar/team-portal/internal/client/internal/repository/dao"
)

//go:generate mockgen -source=./client.go -destination=./mocks/client.mock.go -package=repomocks ClientRepository
type ClientRepository interface {
	Create(ctx context.Context, c domain.Client) (string, error)
	Update(ctx context.Context, c domain.Client) error
	UpdateStage(ctx context.Context, id, stage string) error
	FindById(ctx context.Context, id string) (domain.Client, error)
	FindAll(ctx context.Context) ([]domain.Client, error)
	List(ctx context.Context, offset, limit int) ([]domain.Client, error)
	Count(ctx context.Context) (int64, error)
	Delete(ctx context.Context, id string) error
}

type clientRepository struct {
	dao dao.ClientDAO
}

func NewClientRepository(d dao.ClientDAO) ClientRepository {
	return &clientRepository{dao: d}
}

func (r *clientRepository) Create(ctx context.Context, c domain.Client) (string, error) {
	return r.dao.Create(ctx, r.toEntity(c))
}

func (r *clientRepository) Update(ctx context.Context, c domain.Client) error {
	return r.dao.Update(ctx, r.toEntity(c))
}

func (r *clientRepository) UpdateStage(ctx context.Context, id, stage string) error {
	return r.dao.UpdateStage(ctx, id, stage)
}

func (r *clientRepository) FindById(ctx context.Context, id string) (domain.Client, error) {
	found, err := r.dao.FindById(ctx, id)
	if err != nil {
		return domain.Client{}, err
	}
	return r.toDomain(found), nil
}

func (r *clientRepository) FindAll(ctx context.Context) ([]domain.Client, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return slice.Map(found, func(_ int, src dao.Client) domain.Client {
		return r.toDomain(src)
	}), nil
}

func (r *clientRepository) List(ctx context.Context, offset, limit int) ([]domain.Client, error) {
	found, err := r.dao.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(found, func(_ int, src dao.Client) domain.Client {
		return r.toDomain(src)
	}), nil
}

func (r *clientRepository) Count(ctx context.Context) (int64, error) {
	return r.dao.Count(ctx)
}

func (r *clientRepository) Delete(ctx context.Context, id string) error {
	return r.dao.Delete(ctx, id)
}

func (r *clientRepository) toEntity(c domain.Client) dao.Client {
	return dao.Client{
		Id:          c.ID,
		CompanyName: c.CompanyName,
		ContactName: c.ContactName,
		Email:       c.Email,
		Phone:       c.Phone,
		State:       c.State,
		Ein:         c.EIN,
		Notes:       c.Notes,
		Stage:       c.Stage,
	}
}

func (r *clientRepository) toDomain(c dao.Client) domain.Client {
	return domain.Client{
		ID:          c.Id,
		CompanyName: c.CompanyName,
		ContactName: c.ContactName,
		Email:       c.Email,
		Phone:       c.Phone,
		State:       c.State,
		EIN:         c.Ein,
		Notes:       c.Notes,
		Stage:       c.Stage,
	}
}
