package asset

import (
	"github.com/lakshaytakkar/team-portal/internal/asset/internal/domain"
	"github.com/lakshaytakkar/team-portal/internal/asset/internal/service"
	"github.com/lakshaytakkar/team-portal/internal/asset/internal/web"
)

type (
	Handler = web.Handler
	Service = service.AssetService
	Asset   = domain.Asset
	Status  = domain.Status
	Filter  = domain.Filter
)

const (
	StatusAvailable   = domain.StatusAvailable
	StatusAssigned    = domain.StatusAssigned
	StatusMaintenance = domain.StatusMaintenance
	StatusRetired     = domain.StatusRetired
)

type Module struct {
	Hdl *Handler
	Svc Service
}
