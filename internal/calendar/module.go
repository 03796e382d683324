package calendar

import (
	"github.com/lakshaytakkar/team-portal/internal/calendar/internal/domain"
	"github.com/lakshaytakkar/team-portal/internal/calendar/internal/service"
	"github.com/lakshaytakkar/team-portal/internal/calendar/internal/web"
)

type (
	Handler = web.Handler
	Service = service.EventService
	Event   = domain.Event
	Kind    = domain.Kind
)

const (
	KindMeeting  = domain.KindMeeting
	KindHoliday  = domain.KindHoliday
	KindDeadline = domain.KindDeadline
	KindOther    = domain.KindOther
)

type Module struct {
	Hdl *Handler
	Svc Service
}
