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

package domain

import (
	"github.com/lakshaytakkar/team-portal/internal/pkg/pipeline"
)

// 项目看板的四列，外加两个只能直接设置的终止态
const (
	StagePlanning   = "PLANNING"
	StageInProgress = "IN_PROGRESS"
	StageReview     = "REVIEW"
	StageCompleted  = "COMPLETED"
	StageOnHold     = "ON_HOLD"
	StageCancelled  = "CANCELLED"
)

var Pipeline = pipeline.New(
	[]string{
		StagePlanning,
		StageInProgress,
		StageReview,
		StageCompleted,
	},
	StageOnHold,
	StageCancelled,
)

// Health 是项目的健康度，独立的元数据，不参与阶段推进
type Health string

const (
	HealthOnTrack  Health = "ON_TRACK"
	HealthAtRisk   Health = "AT_RISK"
	HealthOffTrack Health = "OFF_TRACK"
)

func (h Health) IsValid() bool {
	switch h {
	case HealthOnTrack, HealthAtRisk, HealthOffTrack:
		return true
	default:
		return false
	}
}

func (h Health) String() string {
	return string(h)
}

type Project struct {
	ID          string
	Name        string
	Description string
	// ClientID 关联的客户 UUID，内部项目可以为空
	ClientID string
	// LeadID 项目负责人的员工 UUID，可以为空
	LeadID string
	Stage  string
	Health Health
}

func (p Project) IsValid() bool {
	return p.Name != "" && p.Health.IsValid()
}

type Column struct {
	Name     string
	Projects []Project
}
