package domain

// Status 定义了员工的在职状态
type Status string

const (
	StatusActive  Status = "ACTIVE"
	StatusOnLeave Status = "ON_LEAVE"
	StatusExited  Status = "EXITED"
)

// IsValid 检查给定的字符串是否为有效的员工状态
func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusOnLeave, StatusExited:
		return true
	default:
		return false
	}
}

func (s Status) String() string {
	return string(s)
}

// Employee 是员工的领域模型。
// ID 是规范 UUID；Code 和 Email 是面向人的备用键，
// 解析器按 code → email → name 的顺序查找。
type Employee struct {
	ID          string
	Code        string
	Name        string
	Email       string
	Phone       string
	Department  string
	Designation string
	Location    string
	JoinedDate  int64
	Status      Status
}

// Filter 员工列表的过滤条件，零值字段不参与过滤
type Filter struct {
	Department string
	Status     Status
	// Name 模糊匹配
	Name string
}

func (e Employee) IsValid() bool {
	if e.Name == "" ||
		e.Email == "" ||
		e.Department == "" ||
		!e.Status.IsValid() {
		return false
	}
	return true
}
