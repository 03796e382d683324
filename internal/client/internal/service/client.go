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
	"time"

	"github.com/google/uuid"
	"github.com/gotomicro/ego/core/elog"
	"github.com/lakshaytakkar/team-portal/internal/client/internal/domain"
	"github.com/lakshaytakkar/team-portal/internal/client/internal/event"
	"github.com/lakshaytakkar/team-portal/internal/client/internal/repository"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

var (
	ErrInvalidClient = errors.New("客户数据非法")
	ErrInvalidStage  = errors.New("非法的阶段")
)

//go:generate mockgen -source=./client.go -package=svcmocks -destination=../../mocks/client.mock.go ClientService
type ClientService interface {
	Save(ctx context.Context, c domain.Client) (string, error)
	Detail(ctx context.Context, id string) (domain.Client, error)
	List(ctx context.Context, offset, limit int) ([]domain.Client, int64, error)
	// Board 按流水线列分组返回全部客户，列顺序固定
	Board(ctx context.Context) ([]domain.Column, error)
	// Advance 推进到下一阶段。已在末尾则原样返回；
	// 终止态不在有序序列里，返回 ErrInvalidStage
	Advance(ctx context.Context, id string) (string, error)
	// Retreat 退回上一阶段。已在起点则原样返回；
	// 终止态不在有序序列里，返回 ErrInvalidStage
	Retreat(ctx context.Context, id string) (string, error)
	// SetStage 直接设置任意合法阶段，不校验相邻性
	SetStage(ctx context.Context, id, stage string) error
	Delete(ctx context.Context, id string) error
}

type clientService struct {
	repo     repository.ClientRepository
	producer event.StageChangedEventProducer
	logger   *elog.Component
}

func NewClientService(repo repository.ClientRepository,
	producer event.StageChangedEventProducer) ClientService {
	return &clientService{
		repo:     repo,
		producer: producer,
		logger:   elog.DefaultLogger,
	}
}

func (s *clientService) Save(ctx context.Context, c domain.Client) (string, error) {
	if !c.IsValid() {
		return "", ErrInvalidClient
	}
	if c.ID != "" {
		return c.ID, s.repo.Update(ctx, c)
	}
	c.ID = uuid.NewString()
	c.Stage = domain.Pipeline.First()
	return s.repo.Create(ctx, c)
}

func (s *clientService) Detail(ctx context.Context, id string) (domain.Client, error) {
	return s.repo.FindById(ctx, id)
}

func (s *clientService) List(ctx context.Context, offset, limit int) ([]domain.Client, int64, error) {
	var (
		eg      errgroup.Group
		clients []domain.Client
		total   int64
	)
	eg.Go(func() error {
		var err error
		clients, err = s.repo.List(ctx, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.Count(ctx)
		return err
	})
	return clients, total, eg.Wait()
}

func (s *clientService) Board(ctx context.Context) ([]domain.Column, error) {
	clients, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	grouped := make(map[string][]domain.Client, len(clients))
	for _, c := range clients {
		grouped[c.Stage] = append(grouped[c.Stage], c)
	}
	names := domain.Pipeline.Columns()
	columns := make([]domain.Column, 0, len(names))
	for _, name := range names {
		columns = append(columns, domain.Column{
			Name:    name,
			Clients: grouped[name],
		})
	}
	return columns, nil
}

func (s *clientService) Advance(ctx context.Context, id string) (string, error) {
	return s.step(ctx, id, domain.Pipeline.Advance)
}

func (s *clientService) Retreat(ctx context.Context, id string) (string, error) {
	return s.step(ctx, id, domain.Pipeline.Retreat)
}

func (s *clientService) step(ctx context.Context, id string,
	move func(stage string) (string, error)) (string, error) {
	c, err := s.repo.FindById(ctx, id)
	if err != nil {
		return "", err
	}
	next, err := move(c.Stage)
	if err != nil {
		return "", errors.Wrapf(ErrInvalidStage, "stage %s", c.Stage)
	}
	// 已经在端点上，不落库也不发事件
	if next == c.Stage {
		return next, nil
	}
	if err = s.repo.UpdateStage(ctx, id, next); err != nil {
		return "", err
	}
	s.notifyStageChanged(c, next)
	return next, nil
}

func (s *clientService) SetStage(ctx context.Context, id, stage string) error {
	if !domain.Pipeline.CanSet(stage) {
		return errors.Wrapf(ErrInvalidStage, "stage %s", stage)
	}
	c, err := s.repo.FindById(ctx, id)
	if err != nil {
		return err
	}
	if stage == c.Stage {
		return nil
	}
	if err = s.repo.UpdateStage(ctx, id, stage); err != nil {
		return err
	}
	s.notifyStageChanged(c, stage)
	return nil
}

func (s *clientService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// notifyStageChanged 发送失败只记日志，不影响主流程
func (s *clientService) notifyStageChanged(c domain.Client, after string) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*3)
	defer cancel()
	evt := event.StageChangedEvent{
		ClientID:    c.ID,
		CompanyName: c.CompanyName,
		Before:      c.Stage,
		After:       after,
		Utime:       time.Now().UnixMilli(),
	}
	if err := s.producer.Produce(ctx, evt); err != nil {
		s.logger.Error("发送客户阶段变更事件失败",
			elog.FieldErr(err),
			elog.String("clientID", c.ID))
	}
}
