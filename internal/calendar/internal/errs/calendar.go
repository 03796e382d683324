package errs

var (
	SystemError  = ErrorCode{Code: 506001, Msg: "系统错误"}
	InvalidInput = ErrorCode{Code: 506002, Msg: "日历事件不完整"}
	InvalidRange = ErrorCode{Code: 506003, Msg: "查询区间非法"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
