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
	"testing"

	"github.com/lakshaytakkar/team-portal/internal/pkg/resolver"
	"github.com/lakshaytakkar/team-portal/internal/project/internal/domain"
	repomocks "github.com/lakshaytakkar/team-portal/internal/project/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testProjectID  = "aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee"
	testClientID   = "11111111-2222-3333-4444-555555555555"
	testEmployeeID = "99999999-8888-7777-6666-555555555555"
)

// stubLookup 只认一条记录，按值命中
type stubLookup struct {
	id    string
	value string
}

func (s *stubLookup) ByID(_ context.Context, id string) (string, error) {
	if id == s.id {
		return s.id, nil
	}
	return "", resolver.ErrRecordNotFound
}

func (s *stubLookup) ByKey(_ context.Context, _ resolver.Key, value string) (string, error) {
	if value == s.value {
		return s.id, nil
	}
	return "", resolver.ErrRecordNotFound
}

func newTestService(repo *repomocks.MockProjectRepository) ProjectService {
	clientRsv := resolver.New(&stubLookup{id: testClientID, value: "Acme LLC"}, "name")
	employeeRsv := resolver.New(&stubLookup{id: testEmployeeID, value: "EMP-1A2B3C4D"}, "code")
	return NewProjectService(repo, clientRsv, employeeRsv)
}

func TestProjectService_Save(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name    string
		project domain.Project
		client  string
		lead    string
		mock    func(ctrl *gomock.Controller) *repomocks.MockProjectRepository
		wantErr error
	}{
		{
			name:    "新建项目-按名字解析客户和负责人",
			project: domain.Project{Name: "Acme 注册交付"},
			client:  "Acme LLC",
			lead:    "EMP-1A2B3C4D",
			mock: func(ctrl *gomock.Controller) *repomocks.MockProjectRepository {
				repo := repomocks.NewMockProjectRepository(ctrl)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).
					Do(func(_ context.Context, p domain.Project) {
						assert.Equal(t, testClientID, p.ClientID)
						assert.Equal(t, testEmployeeID, p.LeadID)
						assert.Equal(t, domain.StagePlanning, p.Stage)
						assert.Equal(t, domain.HealthOnTrack, p.Health)
						assert.NotEmpty(t, p.ID)
					}).Return(testProjectID, nil)
				return repo
			},
		},
		{
			name:    "内部项目-客户和负责人都为空",
			project: domain.Project{Name: "行政系统升级"},
			mock: func(ctrl *gomock.Controller) *repomocks.MockProjectRepository {
				repo := repomocks.NewMockProjectRepository(ctrl)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).
					Do(func(_ context.Context, p domain.Project) {
						assert.Empty(t, p.ClientID)
						assert.Empty(t, p.LeadID)
					}).Return(testProjectID, nil)
				return repo
			},
		},
		{
			name:    "缺少项目名",
			project: domain.Project{},
			mock: func(ctrl *gomock.Controller) *repomocks.MockProjectRepository {
				repo := repomocks.NewMockProjectRepository(ctrl)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
				return repo
			},
			wantErr: ErrInvalidProject,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := newTestService(tc.mock(ctrl))
			id, err := svc.Save(context.Background(), tc.project, tc.client, tc.lead)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testProjectID, id)
		})
	}
}

func TestProjectService_Stage(t *testing.T) {
	t.Parallel()
	t.Run("推进一步", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := repomocks.NewMockProjectRepository(ctrl)
		repo.EXPECT().FindById(gomock.Any(), testProjectID).
			Return(domain.Project{ID: testProjectID, Stage: domain.StagePlanning}, nil)
		repo.EXPECT().UpdateStage(gomock.Any(), testProjectID, domain.StageInProgress).Return(nil)
		svc := newTestService(repo)
		stage, err := svc.Advance(context.Background(), testProjectID)
		require.NoError(t, err)
		assert.Equal(t, domain.StageInProgress, stage)
	})
	t.Run("末尾推进是无操作", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := repomocks.NewMockProjectRepository(ctrl)
		repo.EXPECT().FindById(gomock.Any(), testProjectID).
			Return(domain.Project{ID: testProjectID, Stage: domain.StageCompleted}, nil)
		repo.EXPECT().UpdateStage(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
		svc := newTestService(repo)
		stage, err := svc.Advance(context.Background(), testProjectID)
		require.NoError(t, err)
		assert.Equal(t, domain.StageCompleted, stage)
	})
	t.Run("从任意阶段直接跳到终止态", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := repomocks.NewMockProjectRepository(ctrl)
		repo.EXPECT().UpdateStage(gomock.Any(), testProjectID, domain.StageOnHold).Return(nil)
		svc := newTestService(repo)
		err := svc.SetStage(context.Background(), testProjectID, domain.StageOnHold)
		require.NoError(t, err)
	})
	t.Run("非法阶段拒绝设置", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := repomocks.NewMockProjectRepository(ctrl)
		repo.EXPECT().UpdateStage(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
		svc := newTestService(repo)
		err := svc.SetStage(context.Background(), testProjectID, "ARCHIVED")
		assert.ErrorIs(t, err, ErrInvalidStage)
	})
}
