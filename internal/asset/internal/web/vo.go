package web

type Asset struct {
	ID           string `json:"id"`
	Tag          string `json:"tag"`
	Name         string `json:"name"`
	Category     string `json:"category"`
	Serial       string `json:"serial"`
	PurchaseDate int64  `json:"purchaseDate"`
	Status       string `json:"status"`
	AssigneeID   string `json:"assigneeID"`
}

type SaveReq struct {
	Asset Asset `json:"asset"`
}

type ListReq struct {
	Category string `json:"category"`
	Status   string `json:"status"`
	Offset   int    `json:"offset"`
	Limit    int    `json:"limit"`
}

type DetailReq struct {
	ID string `json:"id"`
}

type AssignReq struct {
	ID string `json:"id"`
	// Employee 使用人标识符：UUID、工号、邮箱或姓名
	Employee string `json:"employee"`
}

type ReleaseReq struct {
	ID string `json:"id"`
}

type DeleteReq struct {
	ID string `json:"id"`
}
