package domain

// Kind 日历事件的类型
type Kind string

const (
	KindMeeting  Kind = "MEETING"
	KindHoliday  Kind = "HOLIDAY"
	KindDeadline Kind = "DEADLINE"
	KindOther    Kind = "OTHER"
)

func (k Kind) IsValid() bool {
	switch k {
	case KindMeeting, KindHoliday, KindDeadline, KindOther:
		return true
	default:
		return false
	}
}

func (k Kind) String() string {
	return string(k)
}

type Event struct {
	ID          string
	Title       string
	Description string
	// StartTime/EndTime unix 毫秒。全天事件也存具体时刻，
	// 展示层自己决定怎么渲染
	StartTime int64
	EndTime   int64
	AllDay    bool
	Kind      Kind
	// OrganizerID 组织者的员工 UUID，可以为空
	OrganizerID string
}

func (e Event) IsValid() bool {
	if e.Title == "" || !e.Kind.IsValid() {
		return false
	}
	return e.StartTime < e.EndTime
}
