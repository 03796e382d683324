package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/lakshaytakkar/team-portal/internal/calendar/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	invalidInputResult = ginx.Result{
		Code: errs.InvalidInput.Code,
		Msg:  errs.InvalidInput.Msg,
	}
	invalidRangeResult = ginx.Result{
		Code: errs.InvalidRange.Code,
		Msg:  errs.InvalidRange.Msg,
	}
)
