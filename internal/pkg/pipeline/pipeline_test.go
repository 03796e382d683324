package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var onboarding = New(
	[]string{"BOOKED", "PAID", "ONBOARDING", "DOCUMENTS", "FILING", "BANKING", "DELIVERED"},
	"CANCELLED",
)

func TestPipeline_Advance(t *testing.T) {
	stages := onboarding.Stages()
	// 中间每一个阶段前进一步都落在下一个阶段
	for i := 0; i < len(stages)-1; i++ {
		next, err := onboarding.Advance(stages[i])
		require.NoError(t, err)
		assert.Equal(t, stages[i+1], next)
	}
	// 最后一个阶段前进是空操作
	next, err := onboarding.Advance("DELIVERED")
	require.NoError(t, err)
	assert.Equal(t, "DELIVERED", next)
}

func TestPipeline_Retreat(t *testing.T) {
	stages := onboarding.Stages()
	for i := 1; i < len(stages); i++ {
		prev, err := onboarding.Retreat(stages[i])
		require.NoError(t, err)
		assert.Equal(t, stages[i-1], prev)
	}
	// 第一个阶段后退是空操作
	prev, err := onboarding.Retreat("BOOKED")
	require.NoError(t, err)
	assert.Equal(t, "BOOKED", prev)
}

func TestPipeline_UnknownStage(t *testing.T) {
	_, err := onboarding.Advance("CANCELLED")
	assert.ErrorIs(t, err, ErrUnknownStage, "终止态不参与前进后退")
	_, err = onboarding.Retreat("不存在")
	assert.ErrorIs(t, err, ErrUnknownStage)
}

func TestPipeline_CanSet(t *testing.T) {
	testCases := []struct {
		name  string
		stage string
		want  bool
	}{
		{name: "第一个阶段", stage: "BOOKED", want: true},
		{name: "最后一个阶段", stage: "DELIVERED", want: true},
		{name: "终止态可以直接设置", stage: "CANCELLED", want: true},
		{name: "未知状态", stage: "SHIPPED", want: false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, onboarding.CanSet(tc.stage))
		})
	}
}

func TestPipeline_IndexAndColumns(t *testing.T) {
	assert.Equal(t, 0, onboarding.Index("BOOKED"))
	assert.Equal(t, 6, onboarding.Index("DELIVERED"))
	assert.Equal(t, -1, onboarding.Index("CANCELLED"), "终止态不在有序序列里")
	assert.Equal(t, "BOOKED", onboarding.First())
	assert.True(t, onboarding.IsTerminal("CANCELLED"))
	assert.False(t, onboarding.IsTerminal("BOOKED"))

	cols := onboarding.Columns()
	require.Len(t, cols, 8)
	assert.Equal(t, "CANCELLED", cols[7])
}
