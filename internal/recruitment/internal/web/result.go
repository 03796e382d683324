package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/lakshaytakkar/team-portal/internal/recruitment/internal/errs"
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
	levelTwoNotAllowedResult = ginx.Result{
		Code: errs.LevelTwoNotAllowed.Code,
		Msg:  errs.LevelTwoNotAllowed.Msg,
	}
)
