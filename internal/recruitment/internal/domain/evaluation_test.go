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
	"testing"

	"github.com/stretchr/testify/assert"
)

func evaluation(round Round, rec Recommendation) Evaluation {
	return Evaluation{
		InterviewID:        "itv-1",
		Round:              round,
		TechnicalScore:     8,
		CommunicationScore: 7,
		CultureScore:       9,
		Recommendation:     rec,
	}
}

func TestDeriveStatus(t *testing.T) {
	testCases := []struct {
		name  string
		evals []Evaluation
		want  EvalStatus
	}{
		{
			name:  "没有任何评估",
			evals: nil,
			want:  EvalPendingLevel1,
		},
		{
			name: "初评录用-无复评",
			evals: []Evaluation{
				evaluation(RoundLevel1, RecommendHire),
			},
			want: EvalPendingLevel2,
		},
		{
			name: "初评待定-无复评",
			evals: []Evaluation{
				evaluation(RoundLevel1, RecommendMaybe),
			},
			want: EvalPendingLevel2,
		},
		{
			name: "初评录用-有复评",
			evals: []Evaluation{
				evaluation(RoundLevel1, RecommendHire),
				evaluation(RoundLevel2, RecommendHire),
			},
			want: EvalCompleted,
		},
		{
			name: "初评不录用-无复评",
			evals: []Evaluation{
				evaluation(RoundLevel1, RecommendNoHire),
			},
			want: EvalRejected,
		},
		{
			name: "初评不录用-即使有复评也是拒绝",
			evals: []Evaluation{
				evaluation(RoundLevel1, RecommendNoHire),
				evaluation(RoundLevel2, RecommendHire),
			},
			want: EvalRejected,
		},
		{
			name: "只有复评-没有初评时复评没有业务含义",
			evals: []Evaluation{
				evaluation(RoundLevel2, RecommendHire),
			},
			want: EvalPendingLevel1,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DeriveStatus(tc.evals))
		})
	}
}

func TestEvaluation_IsValid(t *testing.T) {
	valid := evaluation(RoundLevel1, RecommendHire)
	assert.True(t, valid.IsValid())

	noInterview := valid
	noInterview.InterviewID = ""
	assert.False(t, noInterview.IsValid())

	badRound := valid
	badRound.Round = "LEVEL_3"
	assert.False(t, badRound.IsValid())

	badRec := valid
	badRec.Recommendation = "STRONG_HIRE"
	assert.False(t, badRec.IsValid())

	scoreLow := valid
	scoreLow.TechnicalScore = 0
	assert.False(t, scoreLow.IsValid())

	scoreHigh := valid
	scoreHigh.CultureScore = 11
	assert.False(t, scoreHigh.IsValid())
}
