package loans

// Dates travel as YYYY-MM-DD strings.

// ===== Requests =====

type CreateLoanRequest struct {
	PatronID       int64   `json:"patron_id" binding:"required"`
	BranchID       int64   `json:"branch_id" binding:"required"`
	BeginDate      string  `json:"begin_date" binding:"required"`
	ExpectedReturn string  `json:"expected_return_date" binding:"required"`
	OverdueFee     float64 `json:"overdue_fee"`
}

type UpdateLoanRequest struct {
	PatronID       int64   `json:"patron_id" binding:"required"`
	BranchID       int64   `json:"branch_id" binding:"required"`
	BeginDate      string  `json:"begin_date" binding:"required"`
	ExpectedReturn string  `json:"expected_return_date" binding:"required"`
	OverdueFee     float64 `json:"overdue_fee"`
}

type CreateLoanDetailRequest struct {
	LoanID        int64   `json:"loan_id" binding:"required"`
	BookID        int64   `json:"book_id" binding:"required"`
	IndividualFee float64 `json:"individual_fee"`
}

type UpdateLoanDetailRequest struct {
	LoanID        int64   `json:"loan_id" binding:"required"`
	BookID        int64   `json:"book_id" binding:"required"`
	IndividualFee float64 `json:"individual_fee"`
}

// CheckoutRequest creates a header plus its line items as one transaction.
type CheckoutRequest struct {
	PatronID       int64          `json:"patron_id" binding:"required"`
	BranchID       int64          `json:"branch_id" binding:"required"`
	BeginDate      string         `json:"begin_date" binding:"required"`
	ExpectedReturn string         `json:"expected_return_date" binding:"required"`
	OverdueFee     float64        `json:"overdue_fee"`
	Lines          []CheckoutLine `json:"lines" binding:"required,min=1,dive"`
}

type CheckoutLine struct {
	BookID        int64   `json:"book_id" binding:"required"`
	IndividualFee float64 `json:"individual_fee"`
}

// ===== Responses =====

type LoanDetailResponse struct {
	LoanDetailID  int64   `json:"loan_detail_id"`
	LoanID        int64   `json:"loan_id"`
	BookID        int64   `json:"book_id"`
	IndividualFee float64 `json:"individual_fee"`
}

type LoanResponse struct {
	LoanID             int64                `json:"loan_id"`
	PatronID           int64                `json:"patron_id"`
	BranchID           int64                `json:"branch_id"`
	BeginDate          string               `json:"begin_date"`
	ExpectedReturnDate string               `json:"expected_return_date"`
	OverdueFee         float64              `json:"overdue_fee"`
	Details            []LoanDetailResponse `json:"details"`
}
