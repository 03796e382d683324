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

type SaveCandidateReq struct {
	Candidate Candidate `json:"candidate"`
}

type Candidate struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Position  string `json:"position"`
	ResumeURL string `json:"resumeURL"`
	Source    string `json:"source"`
}

type SaveInterviewReq struct {
	Interview Interview `json:"interview"`
	// Interviewer 员工编码、邮箱、姓名或 UUID，允许为空
	Interviewer string `json:"interviewer"`
}

type Interview struct {
	ID            string       `json:"id"`
	CandidateID   string       `json:"candidateId"`
	CandidateName string       `json:"candidateName"`
	Position      string       `json:"position"`
	ScheduledAt   int64        `json:"scheduledAt"`
	InterviewerID string       `json:"interviewerId"`
	Location      string       `json:"location"`
	Status        string       `json:"status"`
	Evaluations   []Evaluation `json:"evaluations,omitempty"` // 仅在详情页中填充
}

type Evaluation struct {
	InterviewID        string `json:"interviewId"`
	Round              string `json:"round"`
	TechnicalScore     int    `json:"technicalScore"`
	CommunicationScore int    `json:"communicationScore"`
	CultureScore       int    `json:"cultureScore"`
	Recommendation     string `json:"recommendation"`
	Notes              string `json:"notes"`
	EvaluatorID        string `json:"evaluatorId"`
}

type RecordEvaluationReq struct {
	Evaluation Evaluation `json:"evaluation"`
}

type ProgressReq struct {
	InterviewID string `json:"interviewId"`
}

type DetailReq struct {
	ID string `json:"id"`
}

type DeleteReq struct {
	ID string `json:"id"`
}

type ByCandidateReq struct {
	CandidateID string `json:"candidateId"`
}

type ListReq struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type OfferSendReq struct {
	Email         string `json:"email"`
	CandidateName string `json:"candidateName"`
	Position      string `json:"position"`
	Salary        string `json:"salary"`
	JoiningTime   int64  `json:"joiningTime"`
}
