package errs

var (
	SystemError      = ErrorCode{Code: 505001, Msg: "系统错误"}
	InvalidInput     = ErrorCode{Code: 505002, Msg: "资产信息不完整"}
	AssigneeNotFound = ErrorCode{Code: 505003, Msg: "使用人不存在"}
	AssetRetired     = ErrorCode{Code: 505004, Msg: "资产已报废"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
