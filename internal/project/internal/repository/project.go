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
	"github.com/lakshaytakkar/team-portal/internal/project/internal/domain"
	"github.com/lakshaytakkar/team-portal/internal/project/internal/repository/dao"
)

//go:generate mockgen -source=./project.go -destination=./mocks/project.mock.go -package=repomocks ProjectRepository
type ProjectRepository interface {
	Create(ctx context.Context, p domain.Project) (string, error)
	Update(ctx context.Context, p domain.Project) error
	UpdateStage(ctx context.Context, id, stage string) error
	FindById(ctx context.Context, id string) (domain.Project, error)
	FindAll(ctx context.Context) ([]domain.Project, error)
	List(ctx context.Context, offset, limit int) ([]domain.Project, error)
	Count(ctx context.Context) (int64, error)
	Delete(ctx context.Context, id string) error
}

type projectRepository struct {
	dao dao.ProjectDAO
}

func NewProjectRepository(d dao.ProjectDAO) ProjectRepository {
	return &projectRepository{dao: d}
}

func (r *projectRepository) Create(ctx context.Context, p domain.Project) (string, error) {
	return r.dao.Create(ctx, r.toEntity(p))
}

func (r *projectRepository) Update(ctx context.Context, p domain.Project) error {
	return r.dao.Update(ctx, r.toEntity(p))
}

func (r *projectRepository) UpdateStage(ctx context.Context, id, stage string) error {
	return r.dao.UpdateStage(ctx, id, stage)
}

func (r *projectRepository) FindById(ctx context.Context, id string) (domain.Project, error) {
	found, err := r.dao.FindById(ctx, id)
	if err != nil {
		return domain.Project{}, err
	}
	return r.toDomain(found), nil
}

func (r *projectRepository) FindAll(ctx context.Context) ([]domain.Project, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return slice.Map(found, func(_ int, src dao.Project) domain.Project {
		return r.toDomain(src)
	}), nil
}

func (r *projectRepository) List(ctx context.Context, offset, limit int) ([]domain.Project, error) {
	found, err := r.dao.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(found, func(_ int, src dao.Project) domain.Project {
		return r.toDomain(src)
	}), nil
}

func (r *projectRepository) Count(ctx context.Context) (int64, error) {
	return r.dao.Count(ctx)
}

func (r *projectRepository) Delete(ctx context.Context, id string) error {
	return r.dao.Delete(ctx, id)
}

func (r *projectRepository) toEntity(p domain.Project) dao.Project {
	return dao.Project{
		Id:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		ClientId:    p.ClientID,
		LeadId:      p.LeadID,
		Stage:       p.Stage,
		Health:      p.Health.String(),
	}
}

func (r *projectRepository) toDomain(p dao.Project) domain.Project {
	return domain.Project{
		ID:          p.Id,
		Name:        p.Name,
		Description: p.Description,
		ClientID:    p.ClientId,
		LeadID:      p.LeadId,
		Stage:       p.Stage,
		Health:      domain.Health(p.Health),
	}
}
