package repository

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/lakshaytakkar/team-portal/internal/asset/internal/domain"
	"github.com/lakshaytakkar/team-portal/internal/asset/internal/repository/dao"
)

//go:generate mockgen -source=./asset.go -destination=./mocks/asset.mock.go -package=repomocks AssetRepository
type AssetRepository interface {
	Create(ctx context.Context, a domain.Asset) (string, error)
	Update(ctx context.Context, a domain.Asset) error
	UpdateAssignment(ctx context.Context, id, assigneeID string, status domain.Status) error
	FindById(ctx context.Context, id string) (domain.Asset, error)
	List(ctx context.Context, f domain.Filter, offset, limit int) ([]domain.Asset, error)
	Count(ctx context.Context, f domain.Filter) (int64, error)
	Delete(ctx context.Context, id string) error
}

type assetRepository struct {
	dao dao.AssetDAO
}

func NewAssetRepository(d dao.AssetDAO) AssetRepository {
	return &assetRepository{dao: d}
}

func (r *assetRepository) Create(ctx context.Context, a domain.Asset) (string, error) {
	return r.dao.Create(ctx, r.toEntity(a))
}

func (r *assetRepository) Update(ctx context.Context, a domain.Asset) error {
	return r.dao.Update(ctx, r.toEntity(a))
}

func (r *assetRepository) UpdateAssignment(ctx context.Context, id, assigneeID string, status domain.Status) error {
	return r.dao.UpdateAssignment(ctx, id, assigneeID, status.String())
}

func (r *assetRepository) FindById(ctx context.Context, id string) (domain.Asset, error) {
	found, err := r.dao.FindById(ctx, id)
	if err != nil {
		return domain.Asset{}, err
	}
	return r.toDomain(found), nil
}

func (r *assetRepository) List(ctx context.Context, f domain.Filter, offset, limit int) ([]domain.Asset, error) {
	found, err := r.dao.List(ctx, dao.Filter{
		Category: f.Category,
		Status:   f.Status.String(),
	}, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(found, func(_ int, src dao.Asset) domain.Asset {
		return r.toDomain(src)
	}), nil
}

func (r *assetRepository) Count(ctx context.Context, f domain.Filter) (int64, error) {
	return r.dao.Count(ctx, dao.Filter{
		Category: f.Category,
		Status:   f.Status.String(),
	})
}

func (r *assetRepository) Delete(ctx context.Context, id string) error {
	return r.dao.Delete(ctx, id)
}

func (r *assetRepository) toEntity(a domain.Asset) dao.Asset {
	return dao.Asset{
		Id:           a.ID,
		Tag:          a.Tag,
		Name:         a.Name,
		Category:     a.Category,
		Serial:       a.Serial,
		PurchaseDate: a.PurchaseDate,
		Status:       a.Status.String(),
		AssigneeId:   a.AssigneeID,
	}
}

func (r *assetRepository) toDomain(a dao.Asset) domain.Asset {
	return domain.Asset{
		ID:           a.Id,
		Tag:          a.Tag,
		Name:         a.Name,
		Category:     a.Category,
		Serial:       a.Serial,
		PurchaseDate: a.PurchaseDate,
		Status:       domain.Status(a.Status),
		AssigneeID:   a.AssigneeId,
	}
}
