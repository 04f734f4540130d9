package domain

// Currency represents a supported currency.
type Currency struct {
	ID       int64  `json:"id"`       // Store-assigned; zero until created
	Code     string `json:"code"`     // e.g., "USD"
	Fullname string `json:"fullname"` // e.g., "US Dollar"
	Sign     string `json:"sign"`     // e.g., "$"
}
