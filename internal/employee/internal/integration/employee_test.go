//go:build e2e

package integration

import (
	"context"
	"testing"
	"time"

	"github.com/ego-component/egorm"
	"github.com/lakshaytakkar/team-portal/internal/employee"
	"github.com/lakshaytakkar/team-portal/internal/employee/internal/integration/startup"
	edao "github.com/lakshaytakkar/team-portal/internal/employee/internal/repository/dao"
	"github.com/lakshaytakkar/team-portal/internal/pkg/resolver"
	testioc "github.com/lakshaytakkar/team-portal/internal/test/ioc"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

const (
	activeID  = "aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee"
	deletedID = "11111111-2222-3333-4444-555555555555"
)

type EmployeeTestSuite struct {
	suite.Suite
	db  *egorm.Component
	dao edao.EmployeeDAO
	svc employee.Service
	rsv *employee.Resolver
}

func (s *EmployeeTestSuite) SetupSuite() {
	module, err := startup.InitModule()
	require.NoError(s.T(), err)
	s.svc = module.Svc
	s.rsv = module.Rsv
	s.db = testioc.InitDB()
	s.dao = edao.NewGORMEmployeeDAO(s.db)
}

func (s *EmployeeTestSuite) TearDownTest() {
	require.NoError(s.T(), s.db.Exec("TRUNCATE TABLE `employees`").Error)
}

func (s *EmployeeTestSuite) insert(e edao.Employee) {
	now := time.Now().UnixMilli()
	e.Ctime, e.Utime = now, now
	if e.Status == "" {
		e.Status = "ACTIVE"
	}
	require.NoError(s.T(), s.db.WithContext(context.Background()).Create(&e).Error)
}

// 同名同构的两行，一行被软删除：所有读路径都只能看到未删除的那行
func (s *EmployeeTestSuite) seedPair() {
	s.insert(edao.Employee{
		Id:         activeID,
		Code:       "EMP-AAAA1111",
		Name:       "王五",
		Email:      "wangwu@example.com",
		Department: "工程",
	})
	s.insert(edao.Employee{
		Id:         deletedID,
		Code:       "EMP-BBBB2222",
		Name:       "王五",
		Email:      "wangwu.old@example.com",
		Department: "工程",
		Deleted:    1,
	})
}

func (s *EmployeeTestSuite) TestFindByIdExcludesDeleted() {
	t := s.T()
	s.seedPair()
	got, err := s.dao.FindById(context.Background(), activeID)
	require.NoError(t, err)
	require.Equal(t, "EMP-AAAA1111", got.Code)

	_, err = s.dao.FindById(context.Background(), deletedID)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	batch, err := s.dao.FindByIds(context.Background(), []string{activeID, deletedID})
	require.NoError(t, err)
	require.Len(t, batch, 1)
	require.Equal(t, activeID, batch[0].Id)
}

func (s *EmployeeTestSuite) TestIdByFieldExcludesDeleted() {
	t := s.T()
	s.seedPair()
	// 姓名同时命中两行，但只返回未删除的那行
	id, err := s.dao.IdByField(context.Background(), "name", "王五")
	require.NoError(t, err)
	require.Equal(t, activeID, id)

	// 只有被删除的行持有这个编码
	_, err = s.dao.IdByField(context.Background(), "code", "EMP-BBBB2222")
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// 大小写不敏感
	id, err = s.dao.IdByField(context.Background(), "email", "WANGWU@EXAMPLE.COM")
	require.NoError(t, err)
	require.Equal(t, activeID, id)
}

func (s *EmployeeTestSuite) TestListCountExcludeDeleted() {
	t := s.T()
	s.seedPair()
	list, err := s.dao.List(context.Background(), edao.Filter{Department: "工程"}, 0, 10)
	require.NoError(t, err)
	require.Len(t, list, 1)

	count, err := s.dao.Count(context.Background(), edao.Filter{Department: "工程"})
	require.NoError(t, err)
	require.Equal(t, int64(1), count)
}

func (s *EmployeeTestSuite) TestResolverNeverResolvesDeleted() {
	t := s.T()
	s.seedPair()
	// 未删除行：编码大小写混写也能命中
	id, err := s.rsv.Resolve(context.Background(), "emp-aaaa1111", true)
	require.NoError(t, err)
	require.Equal(t, activeID, id)

	// 被删除行的编码和邮箱都解析不到
	_, err = s.rsv.Resolve(context.Background(), "EMP-BBBB2222", true)
	require.ErrorIs(t, err, resolver.ErrNotFound)
	_, err = s.rsv.Resolve(context.Background(), "wangwu.old@example.com", true)
	require.ErrorIs(t, err, resolver.ErrNotFound)

	// 被删除行的规范 ID 同样解析不到
	_, err = s.rsv.Resolve(context.Background(), deletedID, true)
	require.ErrorIs(t, err, resolver.ErrNotFound)

	// 可选引用对已删除行返回空串而不是错误
	id, err = s.rsv.Resolve(context.Background(), deletedID, false)
	require.NoError(t, err)
	require.Empty(t, id)
}

func (s *EmployeeTestSuite) TestResolverUUIDNeverFallsBack() {
	t := s.T()
	// 姓名恰好长得像 UUID 的员工：按该 UUID 解析不允许命中姓名列
	const uuidShapedName = "bbbbbbbb-cccc-dddd-eeee-ffffffffffff"
	s.insert(edao.Employee{
		Id:         activeID,
		Code:       "EMP-CCCC3333",
		Name:       uuidShapedName,
		Email:      "uuidname@example.com",
		Department: "工程",
	})
	_, err := s.rsv.Resolve(context.Background(), uuidShapedName, true)
	require.ErrorIs(t, err, resolver.ErrNotFound)
}

func (s *EmployeeTestSuite) TestServiceDeleteHidesEverywhere() {
	t := s.T()
	id, err := s.svc.Save(context.Background(), employee.Employee{
		Name:       "赵六",
		Email:      "zhaoliu@example.com",
		Department: "财务",
		Status:     employee.StatusActive,
	})
	require.NoError(t, err)
	created, err := s.dao.FindById(context.Background(), id)
	require.NoError(t, err)

	require.NoError(t, s.svc.Delete(context.Background(), id))

	_, err = s.dao.FindById(context.Background(), id)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
	_, err = s.rsv.Resolve(context.Background(), created.Code, true)
	require.ErrorIs(t, err, resolver.ErrNotFound)
	// 行还在表里，只是被标记
	var raw edao.Employee
	require.NoError(t, s.db.Where("id = ?", id).First(&raw).Error)
	require.Equal(t, uint8(1), raw.Deleted)
}

func TestEmployee(t *testing.T) {
	suite.Run(t, new(EmployeeTestSuite))
}
