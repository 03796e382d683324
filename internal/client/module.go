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

package client

import (
	"github.com/lakshaytakkar/team-portal/internal/client/internal/domain"
	"github.com/lakshaytakkar/team-portal/internal/client/internal/service"
	"github.com/lakshaytakkar/team-portal/internal/client/internal/web"
	"github.com/lakshaytakkar/team-portal/internal/pkg/resolver"
)

type (
	Handler = web.Handler
	Service = service.ClientService
	Client  = domain.Client
	Column  = domain.Column
	// Resolver 把公司名/邮箱解析成客户的规范 UUID，供项目模块关联客户
	Resolver = resolver.Resolver
)

const (
	StageBooked     = domain.StageBooked
	StagePaid       = domain.StagePaid
	StageOnboarding = domain.StageOnboarding
	StageDocuments  = domain.StageDocuments
	StageFiling     = domain.StageFiling
	StageBanking    = domain.StageBanking
	StageDelivered  = domain.StageDelivered
	StageCancelled  = domain.StageCancelled
)

type Module struct {
	Hdl *Handler
	Svc Service
	Rsv *Resolver
}
