package loans

import "time"

// LoanHeader is one checkout transaction for a patron at a branch.
type LoanHeader struct {
	LoanID             int64
	PatronID           int64
	BranchID           int64
	BeginDate          time.Time
	ExpectedReturnDate time.Time
	OverdueFee         float64
}

// LoanDetail is one book line item within a loan, carrying its own fee.
type LoanDetail struct {
	LoanDetailID  int64
	LoanID        int64
	BookID        int64
	IndividualFee float64
}
