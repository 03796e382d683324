package service

import (
	"context"
	"strings"
	"testing"

	"github.com/lakshaytakkar/team-portal/internal/employee/internal/domain"
	repomocks "github.com/lakshaytakkar/team-portal/internal/employee/internal/repository/mocks"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testEmployeeID = "aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee"

func validEmployee() domain.Employee {
	return domain.Employee{
		Name:       "张三",
		Email:      "zhangsan@example.com",
		Department: "工程",
		Status:     domain.StatusActive,
	}
}

func TestEmployeeService_Save(t *testing.T) {
	t.Parallel()
	t.Run("创建时生成规范ID和员工编码", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		repo := repomocks.NewMockEmployeeRepository(ctrl)
		var created domain.Employee
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			Do(func(_ context.Context, e domain.Employee) {
				created = e
			}).Return(testEmployeeID, nil)

		svc := NewEmployeeService(repo)
		id, err := svc.Save(context.Background(), validEmployee())
		require.NoError(t, err)
		assert.Equal(t, testEmployeeID, id)
		assert.Len(t, created.ID, 36)
		assert.True(t, strings.HasPrefix(created.Code, "EMP-"))
		assert.Len(t, created.Code, 12)
	})
	t.Run("更新时不重新生成编码", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		repo := repomocks.NewMockEmployeeRepository(ctrl)
		e := validEmployee()
		e.ID = testEmployeeID
		e.Code = "EMP-A1B2C3D4"
		repo.EXPECT().Update(gomock.Any(), e).Return(nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

		svc := NewEmployeeService(repo)
		id, err := svc.Save(context.Background(), e)
		require.NoError(t, err)
		assert.Equal(t, testEmployeeID, id)
	})
	t.Run("必填字段缺失", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		repo := repomocks.NewMockEmployeeRepository(ctrl)
		e := validEmployee()
		e.Email = ""
		svc := NewEmployeeService(repo)
		_, err := svc.Save(context.Background(), e)
		assert.ErrorIs(t, err, ErrInvalidEmployee)
	})
	t.Run("状态非法", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		repo := repomocks.NewMockEmployeeRepository(ctrl)
		e := validEmployee()
		e.Status = "FIRED"
		svc := NewEmployeeService(repo)
		_, err := svc.Save(context.Background(), e)
		assert.ErrorIs(t, err, ErrInvalidEmployee)
	})
}

func TestEmployeeService_List(t *testing.T) {
	t.Parallel()
	t.Run("列表和计数并行返回", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		repo := repomocks.NewMockEmployeeRepository(ctrl)
		f := domain.Filter{Department: "工程"}
		repo.EXPECT().List(gomock.Any(), f, 0, 10).
			Return([]domain.Employee{{ID: testEmployeeID}}, nil)
		repo.EXPECT().Count(gomock.Any(), f).Return(int64(37), nil)

		svc := NewEmployeeService(repo)
		employees, total, err := svc.List(context.Background(), f, 0, 10)
		require.NoError(t, err)
		assert.Len(t, employees, 1)
		assert.Equal(t, int64(37), total)
	})
	t.Run("任一查询失败整体失败", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		repo := repomocks.NewMockEmployeeRepository(ctrl)
		mockErr := errors.New("mock db error")
		repo.EXPECT().List(gomock.Any(), gomock.Any(), 0, 10).
			Return(nil, mockErr)
		repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(int64(0), nil)

		svc := NewEmployeeService(repo)
		_, _, err := svc.List(context.Background(), domain.Filter{}, 0, 10)
		assert.ErrorIs(t, err, mockErr)
	})
}

func TestEmployeeService_GetByIds(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	repo := repomocks.NewMockEmployeeRepository(ctrl)
	ids := []string{testEmployeeID, "11111111-2222-3333-4444-555555555555"}
	repo.EXPECT().FindByIds(gomock.Any(), ids).Return([]domain.Employee{
		{ID: ids[0], Name: "张三"},
		{ID: ids[1], Name: "李四"},
	}, nil)

	svc := NewEmployeeService(repo)
	got, err := svc.GetByIds(context.Background(), ids)
	require.NoError(t, err)
	assert.Equal(t, "张三", got[ids[0]].Name)
	assert.Equal(t, "李四", got[ids[1]].Name)
}

func TestEmployeeService_Delete(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	repo := repomocks.NewMockEmployeeRepository(ctrl)
	repo.EXPECT().Delete(gomock.Any(), testEmployeeID).Return(nil)

	svc := NewEmployeeService(repo)
	require.NoError(t, svc.Delete(context.Background(), testEmployeeID))
}
