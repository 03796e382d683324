package domain

// Status 资产的生命周期状态
type Status string

const (
	StatusAvailable   Status = "AVAILABLE"
	StatusAssigned    Status = "ASSIGNED"
	StatusMaintenance Status = "MAINTENANCE"
	StatusRetired     Status = "RETIRED"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusAvailable, StatusAssigned, StatusMaintenance, StatusRetired:
		return true
	default:
		return false
	}
}

func (s Status) String() string {
	return string(s)
}

type Asset struct {
	ID string
	// Tag 资产编号，形如 AST-XXXXXXXX，入库时生成
	Tag      string
	Name     string
	Category string
	Serial   string
	// PurchaseDate 购入日期，unix 毫秒
	PurchaseDate int64
	Status       Status
	// AssigneeID 当前使用人的员工 UUID，未分配时为空
	AssigneeID string
}

func (a Asset) IsValid() bool {
	return a.Name != "" && a.Category != ""
}

type Filter struct {
	Category string
	Status   Status
}
