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

// LLC 客户的交付流水线。顺序即业务推进顺序，CANCELLED 是
// 独立的终止态，只能通过直接设置进入，不参与前进/后退。
const (
	StageBooked     = "BOOKED"
	StagePaid       = "PAID"
	StageOnboarding = "ONBOARDING"
	StageDocuments  = "DOCUMENTS"
	StageFiling     = "FILING"
	StageBanking    = "BANKING"
	StageDelivered  = "DELIVERED"
	StageCancelled  = "CANCELLED"
)

// Pipeline 定义一次，所有读写路径共用
var Pipeline = pipeline.New(
	[]string{
		StageBooked,
		StagePaid,
		StageOnboarding,
		StageDocuments,
		StageFiling,
		StageBanking,
		StageDelivered,
	},
	StageCancelled,
)

// Client 是 LLC 客户的领域模型。
// ID 是规范 UUID；CompanyName 和 Email 是备用键，
// 解析顺序为 name → email。
type Client struct {
	ID          string
	CompanyName string
	ContactName string
	Email       string
	Phone       string
	// State 注册州，例如 Wyoming、Delaware
	State string
	// EIN 联邦税号，申请下来之前为空
	EIN   string
	Notes string
	Stage string
}

func (c Client) IsValid() bool {
	if c.CompanyName == "" || c.Email == "" || c.State == "" {
		return false
	}
	return true
}

// Column 是看板上的一列：一个展示列名和列下的客户
type Column struct {
	Name    string
	Clients []Client
}
