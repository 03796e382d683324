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

package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/lakshaytakkar/team-portal/internal/pkg/resolver"
	"github.com/lakshaytakkar/team-portal/internal/project/internal/domain"
	"github.com/lakshaytakkar/team-portal/internal/project/internal/repository"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

var (
	ErrInvalidProject = errors.New("项目数据非法")
	ErrInvalidStage   = errors.New("非法的阶段")
)

//go:generate mockgen -source=./project.go -package=svcmocks -destination=../../mocks/project.mock.go ProjectService
type ProjectService interface {
	// Save 保存项目。Client 和 Lead 字段接受任意标识符：
	// 客户可以传公司名或邮箱，负责人可以传工号、邮箱或姓名，
	// 落库前都解析成规范 UUID。两者都允许为空。
	Save(ctx context.Context, p domain.Project, clientIdentifier, leadIdentifier string) (string, error)
	Detail(ctx context.Context, id string) (domain.Project, error)
	List(ctx context.Context, offset, limit int) ([]domain.Project, int64, error)
	Board(ctx context.Context) ([]domain.Column, error)
	Advance(ctx context.Context, id string) (string, error)
	Retreat(ctx context.Context, id string) (string, error)
	SetStage(ctx context.Context, id, stage string) error
	Delete(ctx context.Context, id string) error
}

type projectService struct {
	repo        repository.ProjectRepository
	clientRsv   *resolver.Resolver
	employeeRsv *resolver.Resolver
}

func NewProjectService(repo repository.ProjectRepository,
	clientRsv *resolver.Resolver,
	employeeRsv *resolver.Resolver) ProjectService {
	return &projectService{
		repo:        repo,
		clientRsv:   clientRsv,
		employeeRsv: employeeRsv,
	}
}

func (s *projectService) Save(ctx context.Context, p domain.Project,
	clientIdentifier, leadIdentifier string) (string, error) {
	if p.Health == "" {
		p.Health = domain.HealthOnTrack
	}
	if !p.IsValid() {
		return "", ErrInvalidProject
	}
	clientID, err := s.clientRsv.Resolve(ctx, clientIdentifier, false)
	if err != nil {
		return "", err
	}
	leadID, err := s.employeeRsv.Resolve(ctx, leadIdentifier, false)
	if err != nil {
		return "", err
	}
	p.ClientID = clientID
	p.LeadID = leadID
	if p.ID != "" {
		return p.ID, s.repo.Update(ctx, p)
	}
	p.ID = uuid.NewString()
	p.Stage = domain.Pipeline.First()
	return s.repo.Create(ctx, p)
}

func (s *projectService) Detail(ctx context.Context, id string) (domain.Project, error) {
	return s.repo.FindById(ctx, id)
}

func (s *projectService) List(ctx context.Context, offset, limit int) ([]domain.Project, int64, error) {
	var (
		eg       errgroup.Group
		projects []domain.Project
		total    int64
	)
	eg.Go(func() error {
		var err error
		projects, err = s.repo.List(ctx, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.Count(ctx)
		return err
	})
	return projects, total, eg.Wait()
}

func (s *projectService) Board(ctx context.Context) ([]domain.Column, error) {
	projects, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	grouped := make(map[string][]domain.Project, len(projects))
	for _, p := range projects {
		grouped[p.Stage] = append(grouped[p.Stage], p)
	}
	names := domain.Pipeline.Columns()
	columns := make([]domain.Column, 0, len(names))
	for _, name := range names {
		columns = append(columns, domain.Column{
			Name:     name,
			Projects: grouped[name],
		})
	}
	return columns, nil
}

func (s *projectService) Advance(ctx context.Context, id string) (string, error) {
	return s.step(ctx, id, domain.Pipeline.Advance)
}

func (s *projectService) Retreat(ctx context.Context, id string) (string, error) {
	return s.step(ctx, id, domain.Pipeline.Retreat)
}

func (s *projectService) step(ctx context.Context, id string,
	move func(stage string) (string, error)) (string, error) {
	p, err := s.repo.FindById(ctx, id)
	if err != nil {
		return "", err
	}
	next, err := move(p.Stage)
	if err != nil {
		return "", errors.Wrapf(ErrInvalidStage, "stage %s", p.Stage)
	}
	if next == p.Stage {
		return next, nil
	}
	return next, s.repo.UpdateStage(ctx, id, next)
}

func (s *projectService) SetStage(ctx context.Context, id, stage string) error {
	if !domain.Pipeline.CanSet(stage) {
		return errors.Wrapf(ErrInvalidStage, "stage %s", stage)
	}
	return s.repo.UpdateStage(ctx, id, stage)
}

func (s *projectService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
