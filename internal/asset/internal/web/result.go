package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/lakshaytakkar/team-portal/internal/asset/internal/errs"
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
	assigneeNotFoundResult = ginx.Result{
		Code: errs.AssigneeNotFound.Code,
		Msg:  errs.AssigneeNotFound.Msg,
	}
	assetRetiredResult = ginx.Result{
		Code: errs.AssetRetired.Code,
		Msg:  errs.AssetRetired.Msg,
	}
)
