package patrons

// ===== Requests =====

// Dues is deliberately not "required": zero is a legal balance.
type CreatePatronRequest struct {
	Email       string  `json:"email" binding:"required"`
	Dues        float64 `json:"dues"`
	PhoneNumber string  `json:"phone_number" binding:"required"`
}

type UpdatePatronRequest struct {
	Email       string  `json:"email" binding:"required"`
	Dues        float64 `json:"dues"`
	PhoneNumber string  `json:"phone_number" binding:"required"`
}

// ===== Responses =====

type PatronResponse struct {
	PatronID    int64   `json:"patron_id"`
	Email       string  `json:"email"`
	Dues        float64 `json:"dues"`
	PhoneNumber string  `json:"phone_number"`
}

// ===== CSV import =====

type ImportPatronsResponse struct {
	Total   int               `json:"total"`
	OkCount int               `json:"ok_count"`
	NgCount int               `json:"ng_count"`
	Results []ImportRowResult `json:"results"`
}

type ImportRowResult struct {
	Row      int     `json:"row"` // 1-based data row, header excluded
	Ok       bool    `json:"ok"`
	Error    *string `json:"error,omitempty"`
	PatronID *int64  `json:"patron_id,omitempty"`
	Email    *string `json:"email,omitempty"`
}
