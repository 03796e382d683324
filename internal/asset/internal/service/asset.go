package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/lakshaytakkar/team-portal/internal/asset/internal/domain"
	"github.com/lakshaytakkar/team-portal/internal/asset/internal/repository"
	"github.com/lakshaytakkar/team-portal/internal/pkg/resolver"
	"github.com/lithammer/shortuuid/v4"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

var (
	ErrInvalidAsset = errors.New("资产数据非法")
	// ErrAssetRetired 已报废的资产不能再分配
	ErrAssetRetired = errors.New("资产已报废")
)

type AssetService interface {
	Save(ctx context.Context, a domain.Asset) (string, error)
	Detail(ctx context.Context, id string) (domain.Asset, error)
	List(ctx context.Context, f domain.Filter, offset, limit int) ([]domain.Asset, int64, error)
	// Assign 把资产分配给员工。employeeIdentifier 接受 UUID、
	// 工号、邮箱或姓名，解析失败（包括为空）直接报错。
	Assign(ctx context.Context, assetID, employeeIdentifier string) error
	// Release 回收资产，清空使用人
	Release(ctx context.Context, assetID string) error
	Delete(ctx context.Context, id string) error
}

type assetService struct {
	repo        repository.AssetRepository
	employeeRsv *resolver.Resolver
}

func NewAssetService(repo repository.AssetRepository,
	employeeRsv *resolver.Resolver) AssetService {
	return &assetService{
		repo:        repo,
		employeeRsv: employeeRsv,
	}
}

func (s *assetService) Save(ctx context.Context, a domain.Asset) (string, error) {
	if !a.IsValid() {
		return "", ErrInvalidAsset
	}
	if a.ID != "" {
		return a.ID, s.repo.Update(ctx, a)
	}
	a.ID = uuid.NewString()
	a.Tag = newAssetTag()
	a.Status = domain.StatusAvailable
	return s.repo.Create(ctx, a)
}

func (s *assetService) Detail(ctx context.Context, id string) (domain.Asset, error) {
	return s.repo.FindById(ctx, id)
}

func (s *assetService) List(ctx context.Context, f domain.Filter, offset, limit int) ([]domain.Asset, int64, error) {
	var (
		eg     errgroup.Group
		assets []domain.Asset
		total  int64
	)
	eg.Go(func() error {
		var err error
		assets, err = s.repo.List(ctx, f, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.Count(ctx, f)
		return err
	})
	return assets, total, eg.Wait()
}

func (s *assetService) Assign(ctx context.Context, assetID, employeeIdentifier string) error {
	employeeID, err := s.employeeRsv.Resolve(ctx, employeeIdentifier, true)
	if err != nil {
		return err
	}
	a, err := s.repo.FindById(ctx, assetID)
	if err != nil {
		return err
	}
	if a.Status == domain.StatusRetired {
		return ErrAssetRetired
	}
	return s.repo.UpdateAssignment(ctx, assetID, employeeID, domain.StatusAssigned)
}

func (s *assetService) Release(ctx context.Context, assetID string) error {
	return s.repo.UpdateAssignment(ctx, assetID, "", domain.StatusAvailable)
}

func (s *assetService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// newAssetTag 生成形如 AST-A1B2C3D4 的资产编号，表上有唯一索引兜底
func newAssetTag() string {
	return "AST-" + strings.ToUpper(shortuuid.New()[:8])
}
