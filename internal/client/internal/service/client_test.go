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

	"github.com/lakshaytakkar/team-portal/internal/client/internal/domain"
	"github.com/lakshaytakkar/team-portal/internal/client/internal/event"
	evtmocks "github.com/lakshaytakkar/team-portal/internal/client/internal/event/mocks"
	repomocks "github.com/lakshaytakkar/team-portal/internal/client/internal/repository/mocks"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testClientID = "11111111-2222-3333-4444-555555555555"

func TestClientService_Advance(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name      string
		mock      func(ctrl *gomock.Controller) (*repomocks.MockClientRepository, *evtmocks.MockStageChangedEventProducer)
		wantStage string
		wantErr   error
	}{
		{
			name: "中间阶段推进一步",
			mock: func(ctrl *gomock.Controller) (*repomocks.MockClientRepository, *evtmocks.MockStageChangedEventProducer) {
				repo := repomocks.NewMockClientRepository(ctrl)
				repo.EXPECT().FindById(gomock.Any(), testClientID).
					Return(domain.Client{
						ID:          testClientID,
						CompanyName: "Acme LLC",
						Stage:       domain.StageBooked,
					}, nil)
				repo.EXPECT().UpdateStage(gomock.Any(), testClientID, domain.StagePaid).Return(nil)
				producer := evtmocks.NewMockStageChangedEventProducer(ctrl)
				producer.EXPECT().Produce(gomock.Any(), gomock.Any()).
					Do(func(_ context.Context, evt event.StageChangedEvent) {
						assert.Equal(t, domain.StageBooked, evt.Before)
						assert.Equal(t, domain.StagePaid, evt.After)
						assert.Equal(t, testClientID, evt.ClientID)
					}).Return(nil)
				return repo, producer
			},
			wantStage: domain.StagePaid,
		},
		{
			name: "已在末尾-原样返回不落库",
			mock: func(ctrl *gomock.Controller) (*repomocks.MockClientRepository, *evtmocks.MockStageChangedEventProducer) {
				repo := repomocks.NewMockClientRepository(ctrl)
				repo.EXPECT().FindById(gomock.Any(), testClientID).
					Return(domain.Client{ID: testClientID, Stage: domain.StageDelivered}, nil)
				repo.EXPECT().UpdateStage(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
				producer := evtmocks.NewMockStageChangedEventProducer(ctrl)
				producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Times(0)
				return repo, producer
			},
			wantStage: domain.StageDelivered,
		},
		{
			name: "终止态不能推进",
			mock: func(ctrl *gomock.Controller) (*repomocks.MockClientRepository, *evtmocks.MockStageChangedEventProducer) {
				repo := repomocks.NewMockClientRepository(ctrl)
				repo.EXPECT().FindById(gomock.Any(), testClientID).
					Return(domain.Client{ID: testClientID, Stage: domain.StageCancelled}, nil)
				repo.EXPECT().UpdateStage(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
				producer := evtmocks.NewMockStageChangedEventProducer(ctrl)
				producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Times(0)
				return repo, producer
			},
			wantErr: ErrInvalidStage,
		},
		{
			name: "事件发送失败不影响推进结果",
			mock: func(ctrl *gomock.Controller) (*repomocks.MockClientRepository, *evtmocks.MockStageChangedEventProducer) {
				repo := repomocks.NewMockClientRepository(ctrl)
				repo.EXPECT().FindById(gomock.Any(), testClientID).
					Return(domain.Client{ID: testClientID, Stage: domain.StageFiling}, nil)
				repo.EXPECT().UpdateStage(gomock.Any(), testClientID, domain.StageBanking).Return(nil)
				producer := evtmocks.NewMockStageChangedEventProducer(ctrl)
				producer.EXPECT().Produce(gomock.Any(), gomock.Any()).
					Return(errors.New("mq 不可用"))
				return repo, producer
			},
			wantStage: domain.StageBanking,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo, producer := tc.mock(ctrl)
			svc := NewClientService(repo, producer)
			stage, err := svc.Advance(context.Background(), testClientID)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantStage, stage)
		})
	}
}

func TestClientService_Retreat(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := repomocks.NewMockClientRepository(ctrl)
	repo.EXPECT().FindById(gomock.Any(), testClientID).
		Return(domain.Client{ID: testClientID, Stage: domain.StageBooked}, nil)
	repo.EXPECT().UpdateStage(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	producer := evtmocks.NewMockStageChangedEventProducer(ctrl)
	producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Times(0)

	svc := NewClientService(repo, producer)
	// 已在起点，退回是无操作
	stage, err := svc.Retreat(context.Background(), testClientID)
	require.NoError(t, err)
	assert.Equal(t, domain.StageBooked, stage)
}

func TestClientService_SetStage(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name    string
		stage   string
		mock    func(ctrl *gomock.Controller) (*repomocks.MockClientRepository, *evtmocks.MockStageChangedEventProducer)
		wantErr error
	}{
		{
			name:  "跨多级直接设置",
			stage: domain.StageBanking,
			mock: func(ctrl *gomock.Controller) (*repomocks.MockClientRepository, *evtmocks.MockStageChangedEventProducer) {
				repo := repomocks.NewMockClientRepository(ctrl)
				repo.EXPECT().FindById(gomock.Any(), testClientID).
					Return(domain.Client{ID: testClientID, Stage: domain.StageBooked}, nil)
				repo.EXPECT().UpdateStage(gomock.Any(), testClientID, domain.StageBanking).Return(nil)
				producer := evtmocks.NewMockStageChangedEventProducer(ctrl)
				producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)
				return repo, producer
			},
		},
		{
			name:  "设置为终止态",
			stage: domain.StageCancelled,
			mock: func(ctrl *gomock.Controller) (*repomocks.MockClientRepository, *evtmocks.MockStageChangedEventProducer) {
				repo := repomocks.NewMockClientRepository(ctrl)
				repo.EXPECT().FindById(gomock.Any(), testClientID).
					Return(domain.Client{ID: testClientID, Stage: domain.StageOnboarding}, nil)
				repo.EXPECT().UpdateStage(gomock.Any(), testClientID, domain.StageCancelled).Return(nil)
				producer := evtmocks.NewMockStageChangedEventProducer(ctrl)
				producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)
				return repo, producer
			},
		},
		{
			name:  "未知阶段直接拒绝",
			stage: "SHIPPED",
			mock: func(ctrl *gomock.Controller) (*repomocks.MockClientRepository, *evtmocks.MockStageChangedEventProducer) {
				repo := repomocks.NewMockClientRepository(ctrl)
				repo.EXPECT().FindById(gomock.Any(), gomock.Any()).Times(0)
				repo.EXPECT().UpdateStage(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
				producer := evtmocks.NewMockStageChangedEventProducer(ctrl)
				producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Times(0)
				return repo, producer
			},
			wantErr: ErrInvalidStage,
		},
		{
			name:  "设置为当前阶段-无操作",
			stage: domain.StagePaid,
			mock: func(ctrl *gomock.Controller) (*repomocks.MockClientRepository, *evtmocks.MockStageChangedEventProducer) {
				repo := repomocks.NewMockClientRepository(ctrl)
				repo.EXPECT().FindById(gomock.Any(), testClientID).
					Return(domain.Client{ID: testClientID, Stage: domain.StagePaid}, nil)
				repo.EXPECT().UpdateStage(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
				producer := evtmocks.NewMockStageChangedEventProducer(ctrl)
				producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Times(0)
				return repo, producer
			},
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo, producer := tc.mock(ctrl)
			svc := NewClientService(repo, producer)
			err := svc.SetStage(context.Background(), testClientID, tc.stage)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestClientService_Board(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := repomocks.NewMockClientRepository(ctrl)
	repo.EXPECT().FindAll(gomock.Any()).Return([]domain.Client{
		{ID: "c1", Stage: domain.StageBooked},
		{ID: "c2", Stage: domain.StageDelivered},
		{ID: "c3", Stage: domain.StageBooked},
		{ID: "c4", Stage: domain.StageCancelled},
	}, nil)
	producer := evtmocks.NewMockStageChangedEventProducer(ctrl)

	svc := NewClientService(repo, producer)
	columns, err := svc.Board(context.Background())
	require.NoError(t, err)
	// 七个有序列加一个终止态列，空列也要出现
	require.Len(t, columns, 8)
	assert.Equal(t, domain.StageBooked, columns[0].Name)
	assert.Len(t, columns[0].Clients, 2)
	assert.Len(t, columns[1].Clients, 0)
	assert.Equal(t, domain.StageCancelled, columns[7].Name)
	assert.Len(t, columns[7].Clients, 1)
}
