package errs

var (
	SystemError  = ErrorCode{Code: 502001, Msg: "系统错误"}
	InvalidInput = ErrorCode{Code: 502002, Msg: "输入不合法"}
	// LevelTwoNotAllowed 复评的前置条件不满足
	LevelTwoNotAllowed = ErrorCode{Code: 502003, Msg: "复评的前置条件不满足"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
