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

// Round 定义了评估轮次。一场面试最多两轮：初评和复评。
type Round string

const (
	RoundLevel1 Round = "LEVEL_1"
	RoundLevel2 Round = "LEVEL_2"
)

// IsValid 检查给定的字符串是否为有效的评估轮次
func (r Round) IsValid() bool {
	switch r {
	case RoundLevel1, RoundLevel2:
		return true
	default:
		return false
	}
}

func (r Round) String() string {
	return string(r)
}

// Recommendation 定义了评估人给出的录用建议
type Recommendation string

const (
	RecommendHire   Recommendation = "HIRE"
	RecommendMaybe  Recommendation = "MAYBE"
	RecommendNoHire Recommendation = "NO_HIRE"
)

func (r Recommendation) IsValid() bool {
	switch r {
	case RecommendHire, RecommendMaybe, RecommendNoHire:
		return true
	default:
		return false
	}
}

func (r Recommendation) String() string {
	return string(r)
}

// EvalStatus 是面试的综合评估状态，由已有的评估记录推导而来，
// 不落库。
type EvalStatus string

const (
	EvalPendingLevel1 EvalStatus = "PENDING_LEVEL_1"
	EvalPendingLevel2 EvalStatus = "PENDING_LEVEL_2"
	EvalCompleted     EvalStatus = "COMPLETED"
	EvalRejected      EvalStatus = "REJECTED"
)

func (s EvalStatus) String() string {
	return string(s)
}

const (
	minScore = 1
	maxScore = 10
)

// Evaluation 是单轮评估的领域模型。
// 每场面试每个轮次最多一条记录，重复提交按 upsert 处理。
type Evaluation struct {
	ID          int64
	InterviewID string
	Round       Round
	// 三个子分，取值范围 [1, 10]
	TechnicalScore     int
	CommunicationScore int
	CultureScore       int
	Recommendation     Recommendation
	Notes              string
	// EvaluatorID 评估人的员工UUID
	EvaluatorID string
}

func (e Evaluation) IsValid() bool {
	if e.InterviewID == "" ||
		!e.Round.IsValid() ||
		!e.Recommendation.IsValid() ||
		!validScore(e.TechnicalScore) ||
		!validScore(e.CommunicationScore) ||
		!validScore(e.CultureScore) {
		return false
	}
	return true
}

func validScore(s int) bool {
	return s >= minScore && s <= maxScore
}

// DeriveStatus 根据已有的评估记录推导面试的综合状态：
//  1. 没有初评 → 等待初评；
//  2. 初评建议不录用 → 直接拒绝，不再期待复评；
//  3. 有初评没有复评 → 等待复评；
//  4. 两轮齐全 → 完成。
//
// 没有初评时复评记录不具备业务含义，推导时直接忽略。
func DeriveStatus(evals []Evaluation) EvalStatus {
	var l1, l2 *Evaluation
	for i := range evals {
		switch evals[i].Round {
		case RoundLevel1:
			l1 = &evals[i]
		case RoundLevel2:
			l2 = &evals[i]
		}
	}
	if l1 == nil {
		return EvalPendingLevel1
	}
	if l1.Recommendation == RecommendNoHire {
		return EvalRejected
	}
	if l2 == nil {
		return EvalPendingLevel2
	}
	return EvalCompleted
}
