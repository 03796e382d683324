package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/lakshaytakkar/team-portal/internal/calendar/internal/domain"
	"github.com/lakshaytakkar/team-portal/internal/calendar/internal/repository"
	"github.com/lakshaytakkar/team-portal/internal/pkg/resolver"
	"github.com/pkg/errors"
)

var (
	ErrInvalidEvent = errors.New("日历事件非法")
	ErrInvalidRange = errors.New("查询区间非法")
)

type EventService interface {
	// Save 保存事件。organizer 接受任意员工标识符，允许为空
	Save(ctx context.Context, e domain.Event, organizer string) (string, error)
	Detail(ctx context.Context, id string) (domain.Event, error)
	// Range 返回与 [start, end) 有交集的全部事件
	Range(ctx context.Context, start, end int64) ([]domain.Event, error)
	Delete(ctx context.Context, id string) error
}

type eventService struct {
	repo        repository.EventRepository
	employeeRsv *resolver.Resolver
}

func NewEventService(repo repository.EventRepository,
	employeeRsv *resolver.Resolver) EventService {
	return &eventService{
		repo:        repo,
		employeeRsv: employeeRsv,
	}
}

func (s *eventService) Save(ctx context.Context, e domain.Event, organizer string) (string, error) {
	if !e.IsValid() {
		return "", ErrInvalidEvent
	}
	organizerID, err := s.employeeRsv.Resolve(ctx, organizer, false)
	if err != nil {
		return "", err
	}
	e.OrganizerID = organizerID
	if e.ID != "" {
		return e.ID, s.repo.Update(ctx, e)
	}
	e.ID = uuid.NewString()
	return s.repo.Create(ctx, e)
}

func (s *eventService) Detail(ctx context.Context, id string) (domain.Event, error) {
	return s.repo.FindById(ctx, id)
}

func (s *eventService) Range(ctx context.Context, start, end int64) ([]domain.Event, error) {
	if start >= end {
		return nil, ErrInvalidRange
	}
	return s.repo.FindByRange(ctx, start, end)
}

func (s *eventService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
