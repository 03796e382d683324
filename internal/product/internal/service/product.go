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
	"github.com/lakshaytakkar/team-portal/internal/product/internal/domain"
	"github.com/lakshaytakkar/team-portal/internal/product/internal/repository"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

var (
	ErrInvalidProduct      = errors.New("商品数据非法")
	ErrInvalidListingState = errors.New("非法的上架状态")
)

type ProductService interface {
	Save(ctx context.Context, p domain.Product) (string, error)
	// Detail 接受任意标识符：规范 ID、SKU 或品名，SKU 优先于品名
	Detail(ctx context.Context, identifier string) (domain.Product, error)
	List(ctx context.Context, f domain.Filter, offset, limit int) ([]domain.Product, int64, error)
	// SetListingState 调整 Faire 上架状态，任意状态间直接切换。
	// identifier 同 Detail，接受规范 ID、SKU 或品名。
	SetListingState(ctx context.Context, identifier string, state domain.ListingState) error
	Delete(ctx context.Context, identifier string) error
}

type productService struct {
	repo repository.ProductRepository
	rsv  *resolver.Resolver
}

func NewProductService(repo repository.ProductRepository,
	rsv *resolver.Resolver) ProductService {
	return &productService{
		repo: repo,
		rsv:  rsv,
	}
}

func (s *productService) Save(ctx context.Context, p domain.Product) (string, error) {
	if !p.IsValid() {
		return "", ErrInvalidProduct
	}
	if p.ID != "" {
		return p.ID, s.repo.Update(ctx, p)
	}
	p.ID = uuid.NewString()
	if p.Status == "" {
		p.Status = domain.StatusActive
	}
	p.ListingState = domain.ListingDraft
	return s.repo.Create(ctx, p)
}

func (s *productService) Detail(ctx context.Context, identifier string) (domain.Product, error) {
	id, err := s.rsv.Resolve(ctx, identifier, true)
	if err != nil {
		return domain.Product{}, err
	}
	return s.repo.FindById(ctx, id)
}

func (s *productService) List(ctx context.Context, f domain.Filter, offset, limit int) ([]domain.Product, int64, error) {
	var (
		eg       errgroup.Group
		products []domain.Product
		total    int64
	)
	eg.Go(func() error {
		var err error
		products, err = s.repo.List(ctx, f, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.Count(ctx, f)
		return err
	})
	return products, total, eg.Wait()
}

func (s *productService) SetListingState(ctx context.Context, identifier string, state domain.ListingState) error {
	if !state.IsValid() {
		return errors.Wrapf(ErrInvalidListingState, "state %s", state)
	}
	id, err := s.rsv.Resolve(ctx, identifier, true)
	if err != nil {
		return err
	}
	return s.repo.UpdateListingState(ctx, id, state)
}

func (s *productService) Delete(ctx context.Context, identifier string) error {
	id, err := s.rsv.Resolve(ctx, identifier, true)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
