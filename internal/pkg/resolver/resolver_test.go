package resolver

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeLookup 记录调用次数，用来断言解析器没有多查
type fakeLookup struct {
	byID    map[string]string
	byKey   map[Key]map[string]string
	idCalls int
	// 每个键的调用次数
	keyCalls map[Key]int
}

func newFakeLookup() *fakeLookup {
	return &fakeLookup{
		byID:     map[string]string{},
		byKey:    map[Key]map[string]string{},
		keyCalls: map[Key]int{},
	}
}

func (f *fakeLookup) ByID(_ context.Context, id string) (string, error) {
	f.idCalls++
	res, ok := f.byID[id]
	if !ok {
		return "", ErrRecordNotFound
	}
	return res, nil
}

func (f *fakeLookup) ByKey(_ context.Context, key Key, value string) (string, error) {
	f.keyCalls[key]++
	res, ok := f.byKey[key][strings.ToLower(value)]
	if !ok {
		return "", ErrRecordNotFound
	}
	return res, nil
}

const empID = "5aa2780c-6d9f-4c9b-9f01-2d53f5d3a001"

func TestResolver_Resolve(t *testing.T) {
	testCases := []struct {
		name       string
		lookup     func() *fakeLookup
		identifier string
		required   bool
		wantID     string
		wantErr    error
		// 附加断言，例如调用次数
		after func(t *testing.T, f *fakeLookup)
	}{
		{
			name:       "空标识符-必填",
			lookup:     newFakeLookup,
			identifier: "",
			required:   true,
			wantErr:    ErrMissingIdentifier,
		},
		{
			name:       "空标识符-选填",
			lookup:     newFakeLookup,
			identifier: "",
			required:   false,
			wantID:     "",
		},
		{
			name: "UUID直接命中",
			lookup: func() *fakeLookup {
				f := newFakeLookup()
				f.byID[empID] = empID
				return f
			},
			identifier: empID,
			required:   true,
			wantID:     empID,
			after: func(t *testing.T, f *fakeLookup) {
				assert.Equal(t, 1, f.idCalls)
				assert.Empty(t, f.keyCalls)
			},
		},
		{
			name:       "UUID形状但不存在-绝不回落到备用键",
			lookup:     newFakeLookup,
			identifier: "12345678-1234-1234-1234-123456789012",
			required:   true,
			wantErr:    ErrNotFound,
			after: func(t *testing.T, f *fakeLookup) {
				assert.Equal(t, 1, f.idCalls)
				assert.Empty(t, f.keyCalls, "UUID 形状的输入不允许触发备用键查找")
			},
		},
		{
			name:       "UUID形状但不存在-选填则视为没有值",
			lookup:     newFakeLookup,
			identifier: "12345678-1234-1234-1234-123456789012",
			required:   false,
			wantID:     "",
		},
		{
			name: "大写UUID同样短路",
			lookup: func() *fakeLookup {
				f := newFakeLookup()
				f.byID[strings.ToUpper(empID)] = empID
				return f
			},
			identifier: strings.ToUpper(empID),
			required:   true,
			wantID:     empID,
			after: func(t *testing.T, f *fakeLookup) {
				assert.Empty(t, f.keyCalls)
			},
		},
		{
			name: "按第一个键命中即停",
			lookup: func() *fakeLookup {
				f := newFakeLookup()
				f.byKey["code"] = map[string]string{"emp-a1b2c3d4": empID}
				f.byKey["email"] = map[string]string{"jane@acme.com": "别的ID"}
				return f
			},
			identifier: "EMP-A1B2C3D4",
			required:   true,
			wantID:     empID,
			after: func(t *testing.T, f *fakeLookup) {
				assert.Equal(t, 1, f.keyCalls["code"])
				assert.Zero(t, f.keyCalls["email"])
				assert.Zero(t, f.keyCalls["name"])
			},
		},
		{
			name: "前面的键未命中则按顺序往后查",
			lookup: func() *fakeLookup {
				f := newFakeLookup()
				f.byKey["name"] = map[string]string{"jane doe": empID}
				return f
			},
			identifier: "Jane Doe",
			required:   true,
			wantID:     empID,
			after: func(t *testing.T, f *fakeLookup) {
				assert.Equal(t, 1, f.keyCalls["code"])
				assert.Equal(t, 1, f.keyCalls["email"])
				assert.Equal(t, 1, f.keyCalls["name"])
			},
		},
		{
			name:       "所有键都未命中-必填",
			lookup:     newFakeLookup,
			identifier: "不存在的名字",
			required:   true,
			wantErr:    ErrNotFound,
		},
		{
			name:       "所有键都未命中-选填",
			lookup:     newFakeLookup,
			identifier: "不存在的名字",
			required:   false,
			wantID:     "",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := tc.lookup()
			r := New(f, "code", "email", "name")
			id, err := r.Resolve(context.Background(), tc.identifier, tc.required)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.wantID, id)
			}
			if tc.after != nil {
				tc.after(t, f)
			}
		})
	}
}

func Test_isCanonicalID(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "标准小写", input: "5aa2780c-6d9f-4c9b-9f01-2d53f5d3a001", want: true},
		{name: "标准大写", input: "5AA2780C-6D9F-4C9B-9F01-2D53F5D3A001", want: true},
		{name: "无连字符变体不算", input: "5aa2780c6d9f4c9b9f012d53f5d3a001", want: false},
		{name: "花括号变体不算", input: "{5aa2780c-6d9f-4c9b-9f01-2d53f5d3a0}", want: false},
		{name: "普通名字", input: "Acme LLC", want: false},
		{name: "空串", input: "", want: false},
		{name: "长度对但不是十六进制", input: "zzzzzzzz-zzzz-zzzz-zzzz-zzzzzzzzzzzz", want: false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, isCanonicalID(tc.input))
		})
	}
}
