package errs

var (
	SystemError      = ErrorCode{Code: 501001, Msg: "系统错误"}
	InvalidInput     = ErrorCode{Code: 501002, Msg: "员工信息不完整"}
	EmployeeNotFound = ErrorCode{Code: 501003, Msg: "员工不存在"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
