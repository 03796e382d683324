package web

type SaveReq struct {
	Employee Employee `json:"employee"`
}

type Employee struct {
	ID          string `json:"id"`
	Code        string `json:"code"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Department  string `json:"department"`
	Designation string `json:"designation"`
	Location    string `json:"location"`
	JoinedDate  int64  `json:"joinedDate"`
	Status      string `json:"status"`
}

type DetailReq struct {
	ID string `json:"id"`
}

type DeleteReq struct {
	ID string `json:"id"`
}

type ListReq struct {
	Department string `json:"department"`
	Status     string `json:"status"`
	// Name 模糊匹配
	Name   string `json:"name"`
	Offset int    `json:"offset"`
	Limit  int    `json:"limit"`
}
