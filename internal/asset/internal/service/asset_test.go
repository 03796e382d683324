package service

import (
	"context"
	"strings"
	"testing"

	"github.com/lakshaytakkar/team-portal/internal/asset/internal/domain"
	repomocks "github.com/lakshaytakkar/team-portal/internal/asset/internal/repository/mocks"
	"github.com/lakshaytakkar/team-portal/internal/pkg/resolver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testAssetID    = "aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee"
	testEmployeeID = "99999999-8888-7777-6666-555555555555"
)

type stubLookup struct{}

func (s *stubLookup) ByID(_ context.Context, id string) (string, error) {
	if id == testEmployeeID {
		return testEmployeeID, nil
	}
	return "", resolver.ErrRecordNotFound
}

func (s *stubLookup) ByKey(_ context.Context, _ resolver.Key, value string) (string, error) {
	if value == "张三" {
		return testEmployeeID, nil
	}
	return "", resolver.ErrRecordNotFound
}

func newTestService(repo *repomocks.MockAssetRepository) AssetService {
	return NewAssetService(repo, resolver.New(&stubLookup{}, "name"))
}

func TestAssetService_Assign(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name     string
		employee string
		mock     func(ctrl *gomock.Controller) *repomocks.MockAssetRepository
		wantErr  error
	}{
		{
			name:     "按姓名解析使用人并分配",
			employee: "张三",
			mock: func(ctrl *gomock.Controller) *repomocks.MockAssetRepository {
				repo := repomocks.NewMockAssetRepository(ctrl)
				repo.EXPECT().FindById(gomock.Any(), testAssetID).
					Return(domain.Asset{ID: testAssetID, Status: domain.StatusAvailable}, nil)
				repo.EXPECT().UpdateAssignment(gomock.Any(), testAssetID,
					testEmployeeID, domain.StatusAssigned).Return(nil)
				return repo
			},
		},
		{
			name:     "使用人标识符为空-必填报错",
			employee: "",
			mock: func(ctrl *gomock.Controller) *repomocks.MockAssetRepository {
				repo := repomocks.NewMockAssetRepository(ctrl)
				repo.EXPECT().UpdateAssignment(gomock.Any(), gomock.Any(),
					gomock.Any(), gomock.Any()).Times(0)
				return repo
			},
			wantErr: resolver.ErrMissingIdentifier,
		},
		{
			name:     "使用人不存在",
			employee: "李四",
			mock: func(ctrl *gomock.Controller) *repomocks.MockAssetRepository {
				repo := repomocks.NewMockAssetRepository(ctrl)
				repo.EXPECT().UpdateAssignment(gomock.Any(), gomock.Any(),
					gomock.Any(), gomock.Any()).Times(0)
				return repo
			},
			wantErr: resolver.ErrNotFound,
		},
		{
			name:     "已报废的资产不能分配",
			employee: "张三",
			mock: func(ctrl *gomock.Controller) *repomocks.MockAssetRepository {
				repo := repomocks.NewMockAssetRepository(ctrl)
				repo.EXPECT().FindById(gomock.Any(), testAssetID).
					Return(domain.Asset{ID: testAssetID, Status: domain.StatusRetired}, nil)
				repo.EXPECT().UpdateAssignment(gomock.Any(), gomock.Any(),
					gomock.Any(), gomock.Any()).Times(0)
				return repo
			},
			wantErr: ErrAssetRetired,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := newTestService(tc.mock(ctrl))
			err := svc.Assign(context.Background(), testAssetID, tc.employee)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestAssetService_Release(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := repomocks.NewMockAssetRepository(ctrl)
	repo.EXPECT().UpdateAssignment(gomock.Any(), testAssetID, "", domain.StatusAvailable).Return(nil)
	svc := newTestService(repo)
	require.NoError(t, svc.Release(context.Background(), testAssetID))
}

func TestAssetService_Save(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := repomocks.NewMockAssetRepository(ctrl)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, a domain.Asset) {
			assert.NotEmpty(t, a.ID)
			assert.True(t, strings.HasPrefix(a.Tag, "AST-"))
			assert.Len(t, a.Tag, 12)
			assert.Equal(t, domain.StatusAvailable, a.Status)
		}).Return(testAssetID, nil)
	svc := newTestService(repo)
	id, err := svc.Save(context.Background(), domain.Asset{
		Name:     "MacBook Pro 14",
		Category: "LAPTOP",
	})
	require.NoError(t, err)
	assert.Equal(t, testAssetID, id)
}
