package repository

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/lakshaytakkar/team-portal/internal/calendar/internal/domain"
	"github.com/lakshaytakkar/team-portal/internal/calendar/internal/repository/dao"
)

type EventRepository interface {
	Create(ctx context.Context, e domain.Event) (string, error)
	Update(ctx context.Context, e domain.Event) error
	FindById(ctx context.Context, id string) (domain.Event, error)
	FindByRange(ctx context.Context, start, end int64) ([]domain.Event, error)
	Delete(ctx context.Context, id string) error
}

type eventRepository struct {
	dao dao.EventDAO
}

func NewEventRepository(d dao.EventDAO) EventRepository {
	return &eventRepository{dao: d}
}

func (r *eventRepository) Create(ctx context.Context, e domain.Event) (string, error) {
	return r.dao.Create(ctx, r.toEntity(e))
}

func (r *eventRepository) Update(ctx context.Context, e domain.Event) error {
	return r.dao.Update(ctx, r.toEntity(e))
}

func (r *eventRepository) FindById(ctx context.Context, id string) (domain.Event, error) {
	found, err := r.dao.FindById(ctx, id)
	if err != nil {
		return domain.Event{}, err
	}
	return r.toDomain(found), nil
}

func (r *eventRepository) FindByRange(ctx context.Context, start, end int64) ([]domain.Event, error) {
	found, err := r.dao.FindByRange(ctx, start, end)
	if err != nil {
		return nil, err
	}
	return slice.Map(found, func(_ int, src dao.Event) domain.Event {
		return r.toDomain(src)
	}), nil
}

func (r *eventRepository) Delete(ctx context.Context, id string) error {
	return r.dao.Delete(ctx, id)
}

func (r *eventRepository) toEntity(e domain.Event) dao.Event {
	return dao.Event{
		Id:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		StartTime:   e.StartTime,
		EndTime:     e.EndTime,
		AllDay:      e.AllDay,
		Kind:        e.Kind.String(),
		OrganizerId: e.OrganizerID,
	}
}

func (r *eventRepository) toDomain(e dao.Event) domain.Event {
	return domain.Event{
		ID:          e.Id,
		Title:       e.Title,
		Description: e.Description,
		StartTime:   e.StartTime,
		EndTime:     e.EndTime,
		AllDay:      e.AllDay,
		Kind:        domain.Kind(e.Kind),
		OrganizerID: e.OrganizerId,
	}
}
