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

// Candidate 是候选人的领域模型
type Candidate struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Position  string
	ResumeURL string
	// Source 简历来源，例如内推、招聘网站
	Source string
}

func (c Candidate) IsValid() bool {
	if c.Name == "" || c.Email == "" || c.Position == "" {
		return false
	}
	return true
}

// Interview 是一场面试的领域模型。
// InterviewerID 在排期时通过员工解析器把编码/邮箱/姓名换成规范 UUID。
type Interview struct {
	ID            string
	CandidateID   string
	CandidateName string
	Position      string
	ScheduledAt   int64
	// InterviewerID 面试官的员工UUID
	InterviewerID string
	// Location 地点或会议链接
	Location string

	// 聚合：该面试已有的评估记录与推导出的综合状态，仅详情页填充
	Evaluations []Evaluation
	Status      EvalStatus
}

func (i Interview) IsValid() bool {
	if i.CandidateID == "" || i.ScheduledAt == 0 {
		return false
	}
	return true
}
