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

package web

type Project struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ClientID    string `json:"clientID"`
	LeadID      string `json:"leadID"`
	Stage       string `json:"stage"`
	Health      string `json:"health"`
}

type Column struct {
	Name     string    `json:"name"`
	Projects []Project `json:"projects"`
}

type SaveReq struct {
	Project Project `json:"project"`
	// Client 客户标识符：UUID、公司名或邮箱
	Client string `json:"client"`
	// Lead 负责人标识符：UUID、工号、邮箱或姓名
	Lead string `json:"lead"`
}

type ListReq struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type DetailReq struct {
	ID string `json:"id"`
}

type StepReq struct {
	ID string `json:"id"`
}

type SetStageReq struct {
	ID    string `json:"id"`
	Stage string `json:"stage"`
}

type DeleteReq struct {
	ID string `json:"id"`
}
