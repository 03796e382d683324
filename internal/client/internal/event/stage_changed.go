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

package event

const (
	StageChangedTopic = "client_stage_changes"
)

// StageChangedEvent 客户阶段变更事件。
// 下游用来发通知和做交付时效统计。
type StageChangedEvent struct {
	ClientID    string `json:"clientID"`
	CompanyName string `json:"companyName"`
	Before      string `json:"before"`
	After       string `json:"after"`
	Utime       int64  `json:"utime"`
}
