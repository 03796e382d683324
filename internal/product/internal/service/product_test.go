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
	"strings"
	"testing"

	"github.com/lakshaytakkar/team-portal/internal/pkg/resolver"
	"github.com/lakshaytakkar/team-portal/internal/product/internal/domain"
	"github.com/lakshaytakkar/team-portal/internal/product/internal/repository"
	"github.com/lakshaytakkar/team-portal/internal/product/internal/repository/dao"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const (
	mugID   = "aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee"
	bowlID  = "11111111-2222-3333-4444-555555555555"
	ghostID = "99999999-8888-7777-6666-555555555555"
)

// lookupDAO 最小化实现解析要用到的两个方法，并记录按列查找的轨迹。
// 其余方法不会被解析路径触达。
type lookupDAO struct {
	dao.ProductDAO
	rows     map[string]dao.Product
	byColumn []string
}

func newLookupDAO() *lookupDAO {
	return &lookupDAO{
		rows: map[string]dao.Product{
			mugID:  {Id: mugID, Sku: "MUG-001", Name: "Stoneware Mug"},
			bowlID: {Id: bowlID, Sku: "BOWL-001", Name: "Ramen Bowl"},
		},
	}
}

func (d *lookupDAO) FindById(_ context.Context, id string) (dao.Product, error) {
	p, ok := d.rows[id]
	if !ok {
		return dao.Product{}, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (d *lookupDAO) IdByField(_ context.Context, column, value string) (string, error) {
	d.byColumn = append(d.byColumn, column)
	for _, p := range d.rows {
		switch column {
		case "sku":
			if strings.EqualFold(p.Sku, value) {
				return p.Id, nil
			}
		case "name":
			if strings.EqualFold(p.Name, value) {
				return p.Id, nil
			}
		}
	}
	return "", gorm.ErrRecordNotFound
}

// fakeRepo 只关心 service 最终用哪个规范 ID 去访问存储
type fakeRepo struct {
	repository.ProductRepository
	foundID   string
	updatedID string
	deletedID string
	state     domain.ListingState
}

func (r *fakeRepo) FindById(_ context.Context, id string) (domain.Product, error) {
	r.foundID = id
	return domain.Product{ID: id}, nil
}

func (r *fakeRepo) UpdateListingState(_ context.Context, id string, state domain.ListingState) error {
	r.updatedID = id
	r.state = state
	return nil
}

func (r *fakeRepo) Delete(_ context.Context, id string) error {
	r.deletedID = id
	return nil
}

func newTestService() (ProductService, *lookupDAO, *fakeRepo) {
	d := newLookupDAO()
	repo := &fakeRepo{}
	rsv := resolver.New(repository.NewProductLookup(d),
		repository.KeySKU, repository.KeyName)
	return NewProductService(repo, rsv), d, repo
}

func TestProductService_Detail_Identifier(t *testing.T) {
	t.Parallel()
	testcases := []struct {
		name       string
		identifier string
		wantID     string
		wantErr    error
		// 期望按列查找的顺序，nil 表示不应发生备用键查找
		wantColumns []string
	}{
		{
			name:        "按SKU大小写不敏感",
			identifier:  "mug-001",
			wantID:      mugID,
			wantColumns: []string{"sku"},
		},
		{
			name:        "SKU未命中回落品名",
			identifier:  "Ramen Bowl",
			wantID:      bowlID,
			wantColumns: []string{"sku", "name"},
		},
		{
			name:       "UUID只走主键，绝不比对SKU或品名",
			identifier: mugID,
			wantID:     mugID,
		},
		{
			name:       "UUID形状未命中不回落备用键",
			identifier: ghostID,
			wantErr:    resolver.ErrNotFound,
		},
		{
			name:        "两个键都未命中",
			identifier:  "nonexistent",
			wantErr:     resolver.ErrNotFound,
			wantColumns: []string{"sku", "name"},
		},
		{
			name:       "空标识符视为缺失",
			identifier: "",
			wantErr:    resolver.ErrMissingIdentifier,
		},
	}
	for _, tc := range testcases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			svc, d, repo := newTestService()
			p, err := svc.Detail(context.Background(), tc.identifier)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.wantID, p.ID)
				assert.Equal(t, tc.wantID, repo.foundID)
			}
			assert.Equal(t, tc.wantColumns, d.byColumn)
		})
	}
}

func TestProductService_SetListingState_Identifier(t *testing.T) {
	t.Parallel()
	t.Run("按SKU解析后落到规范ID", func(t *testing.T) {
		t.Parallel()
		svc, _, repo := newTestService()
		err := svc.SetListingState(context.Background(), "BOWL-001", domain.ListingPublished)
		require.NoError(t, err)
		assert.Equal(t, bowlID, repo.updatedID)
		assert.Equal(t, domain.ListingPublished, repo.state)
	})
	t.Run("状态非法时不发起解析", func(t *testing.T) {
		t.Parallel()
		svc, d, _ := newTestService()
		err := svc.SetListingState(context.Background(), "BOWL-001", domain.ListingState("ARCHIVED"))
		assert.ErrorIs(t, err, ErrInvalidListingState)
		assert.Nil(t, d.byColumn)
	})
	t.Run("标识符未命中", func(t *testing.T) {
		t.Parallel()
		svc, _, _ := newTestService()
		err := svc.SetListingState(context.Background(), "nope", domain.ListingUnpublished)
		assert.ErrorIs(t, err, resolver.ErrNotFound)
	})
}

func TestProductService_Delete_Identifier(t *testing.T) {
	t.Parallel()
	svc, _, repo := newTestService()
	err := svc.Delete(context.Background(), "Stoneware Mug")
	require.NoError(t, err)
	assert.Equal(t, mugID, repo.deletedID)
}
