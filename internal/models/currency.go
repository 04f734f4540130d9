package models

// Currency mirrors a row of the currencies table.
type Currency struct {
	ID       int64  `json:"id"`
	Code     string `json:"code"`
	Fullname string `json:"fullname"`
	Sign     string `json:"sign"`
}
