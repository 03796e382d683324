package web

type Event struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	StartTime   int64  `json:"startTime"`
	EndTime     int64  `json:"endTime"`
	AllDay      bool   `json:"allDay"`
	Kind        string `json:"kind"`
	OrganizerID string `json:"organizerID"`
}

type SaveReq struct {
	Event Event `json:"event"`
	// Organizer 组织者标识符：UUID、工号、邮箱或姓名
	Organizer string `json:"organizer"`
}

type RangeReq struct {
	Start int64 `json:"start"`
	End   int64 `json:"end"`
}

type DetailReq struct {
	ID string `json:"id"`
}

type DeleteReq struct {
	ID string `json:"id"`
}
