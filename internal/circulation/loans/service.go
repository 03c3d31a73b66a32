package loans

import (
	"context"
	"database/sql"
	"time"

	"biblio-backend/internal/platform/apierr"
	"biblio-backend/internal/platform/db"
)

const dateLayout = "2006-01-02"

type Service struct {
	db    *sql.DB
	store *Store
}

func NewService(conn *sql.DB) *Service {
	return &Service{db: conn, store: NewStore(conn)}
}

// checkRefs verifies that every referenced row exists before a write is
// accepted. The source system trusted the caller here; a missing reference
// is reported as CONSTRAINT_VIOLATION instead.
func (s *Service) checkHeaderRefs(ctx context.Context, q db.DBTX, patronID, branchID int64) error {
	ok, err := s.store.PatronExists(ctx, q, patronID)
	if err != nil {
		return apierr.FromStorage(err, "patron not found")
	}
	if !ok {
		return apierr.Constraint("patron does not exist")
	}
	ok, err = s.store.BranchExists(ctx, q, branchID)
	if err != nil {
		return apierr.FromStorage(err, "branch not found")
	}
	if !ok {
		return apierr.Constraint("branch does not exist")
	}
	return nil
}

func (s *Service) checkDetailRefs(ctx context.Context, q db.DBTX, loanID, bookID int64, checkLoan bool) error {
	if checkLoan {
		ok, err := s.store.LoanExists(ctx, q, loanID)
		if err != nil {
			return apierr.FromStorage(err, "loan not found")
		}
		if !ok {
			return apierr.Constraint("loan does not exist")
		}
	}
	ok, err := s.store.BookExists(ctx, q, bookID)
	if err != nil {
		return apierr.FromStorage(err, "book not found")
	}
	if !ok {
		return apierr.Constraint("book does not exist")
	}
	return nil
}

func parseDates(begin, expected string) (time.Time, time.Time, error) {
	b, err := time.Parse(dateLayout, begin)
	if err != nil {
		return time.Time{}, time.Time{}, apierr.Invalid("invalid begin_date, expected YYYY-MM-DD")
	}
	e, err := time.Parse(dateLayout, expected)
	if err != nil {
		return time.Time{}, time.Time{}, apierr.Invalid("invalid expected_return_date, expected YYYY-MM-DD")
	}
	return b, e, nil
}

// ===== headers =====

func (s *Service) CreateLoan(ctx context.Context, in CreateLoanRequest) (LoanResponse, error) {
	if in.OverdueFee < 0 {
		return LoanResponse{}, apierr.Invalid("overdue_fee must be >= 0")
	}
	begin, expected, err := parseDates(in.BeginDate, in.ExpectedReturn)
	if err != nil {
		return LoanResponse{}, err
	}
	if err := s.checkHeaderRefs(ctx, s.db, in.PatronID, in.BranchID); err != nil {
		return LoanResponse{}, err
	}

	h := &LoanHeader{
		PatronID:           in.PatronID,
		BranchID:           in.BranchID,
		BeginDate:          begin,
		ExpectedReturnDate: expected,
		OverdueFee:         in.OverdueFee,
	}
	if err := s.store.InsertHeader(ctx, s.db, h); err != nil {
		return LoanResponse{}, apierr.FromStorage(err, "loan not found")
	}
	return headerResponse(h, nil), nil
}

func (s *Service) GetLoan(ctx context.Context, id int64) (LoanResponse, error) {
	h, err := s.store.GetHeaderByID(ctx, id)
	if err != nil {
		return LoanResponse{}, apierr.FromStorage(err, "loan not found")
	}
	return headerResponse(h, nil), nil
}

func (s *Service) UpdateLoan(ctx context.Context, id int64, in UpdateLoanRequest) (LoanResponse, error) {
	if in.OverdueFee < 0 {
		return LoanResponse{}, apierr.Invalid("overdue_fee must be >= 0")
	}
	begin, expected, err := parseDates(in.BeginDate, in.ExpectedReturn)
	if err != nil {
		return LoanResponse{}, err
	}
	if err := s.checkHeaderRefs(ctx, s.db, in.PatronID, in.BranchID); err != nil {
		return LoanResponse{}, err
	}

	h := &LoanHeader{
		LoanID:             id,
		PatronID:           in.PatronID,
		BranchID:           in.BranchID,
		BeginDate:          begin,
		ExpectedReturnDate: expected,
		OverdueFee:         in.OverdueFee,
	}
	if err := s.store.UpdateHeader(ctx, h); err != nil {
		return LoanResponse{}, apierr.FromStorage(err, "loan not found")
	}
	return headerResponse(h, nil), nil
}

// DeleteLoan removes the header and its detail rows as one transaction, so
// no orphan lines survive the header.
func (s *Service) DeleteLoan(ctx context.Context, id int64) error {
	err := db.RunInTx(ctx, s.db, nil, func(ctx context.Context, tx db.DBTX) error {
		return s.store.DeleteLoanCascade(ctx, tx, id)
	})
	if err != nil {
		return apierr.FromStorage(err, "loan not found")
	}
	return nil
}

// ListLoans returns every header with its line items attached. Two queries,
// correlated here by loanID; the row set matches the flat listings exactly.
func (s *Service) ListLoans(ctx context.Context) ([]LoanResponse, error) {
	headers, err := s.store.ListHeaders(ctx)
	if err != nil {
		return nil, apierr.FromStorage(err, "loan not found")
	}
	details, err := s.store.ListDetails(ctx)
	if err != nil {
		return nil, apierr.FromStorage(err, "loan not found")
	}

	byLoan := map[int64][]LoanDetailResponse{}
	for _, d := range details {
		byLoan[d.LoanID] = append(byLoan[d.LoanID], detailResponse(&d))
	}

	out := make([]LoanResponse, 0, len(headers))
	for i := range headers {
		out = append(out, headerResponse(&headers[i], byLoan[headers[i].LoanID]))
	}
	return out, nil
}

// ===== checkout =====

// Checkout persists a header plus all of its lines in one transaction.
// Any failure rolls the whole loan back.
func (s *Service) Checkout(ctx context.Context, in CheckoutRequest) (LoanResponse, error) {
	if in.OverdueFee < 0 {
		return LoanResponse{}, apierr.Invalid("overdue_fee must be >= 0")
	}
	if len(in.Lines) == 0 {
		return LoanResponse{}, apierr.Invalid("at least one line is required")
	}
	for _, l := range in.Lines {
		if l.IndividualFee < 0 {
			return LoanResponse{}, apierr.Invalid("individual_fee must be >= 0")
		}
	}
	begin, expected, err := parseDates(in.BeginDate, in.ExpectedReturn)
	if err != nil {
		return LoanResponse{}, err
	}

	h := &LoanHeader{
		PatronID:           in.PatronID,
		BranchID:           in.BranchID,
		BeginDate:          begin,
		ExpectedReturnDate: expected,
		OverdueFee:         in.OverdueFee,
	}
	ds := make([]*LoanDetail, 0, len(in.Lines))

	err = db.RunInTx(ctx, s.db, nil, func(ctx context.Context, tx db.DBTX) error {
		if err := s.checkHeaderRefs(ctx, tx, in.PatronID, in.BranchID); err != nil {
			return err
		}
		if err := s.store.InsertHeader(ctx, tx, h); err != nil {
			return err
		}
		for _, line := range in.Lines {
			if err := s.checkDetailRefs(ctx, tx, h.LoanID, line.BookID, false); err != nil {
				return err
			}
			d := &LoanDetail{LoanID: h.LoanID, BookID: line.BookID, IndividualFee: line.IndividualFee}
			if err := s.store.InsertDetail(ctx, tx, d); err != nil {
				return err
			}
			ds = append(ds, d)
		}
		return nil
	})
	if err != nil {
		return LoanResponse{}, apierr.FromStorage(err, "loan not found")
	}

	resp := headerResponse(h, nil)
	for _, d := range ds {
		resp.Details = append(resp.Details, detailResponse(d))
	}
	return resp, nil
}

// ===== details =====

func (s *Service) CreateDetail(ctx context.Context, in CreateLoanDetailRequest) (LoanDetailResponse, error) {
	if in.IndividualFee < 0 {
		return LoanDetailResponse{}, apierr.Invalid("individual_fee must be >= 0")
	}
	if err := s.checkDetailRefs(ctx, s.db, in.LoanID, in.BookID, true); err != nil {
		return LoanDetailResponse{}, err
	}
	d := &LoanDetail{LoanID: in.LoanID, BookID: in.BookID, IndividualFee: in.IndividualFee}
	if err := s.store.InsertDetail(ctx, s.db, d); err != nil {
		return LoanDetailResponse{}, apierr.FromStorage(err, "loan detail not found")
	}
	return detailResponse(d), nil
}

func (s *Service) UpdateDetail(ctx context.Context, id int64, in UpdateLoanDetailRequest) (LoanDetailResponse, error) {
	if in.IndividualFee < 0 {
		return LoanDetailResponse{}, apierr.Invalid("individual_fee must be >= 0")
	}
	if err := s.checkDetailRefs(ctx, s.db, in.LoanID, in.BookID, true); err != nil {
		return LoanDetailResponse{}, err
	}
	d := &LoanDetail{LoanDetailID: id, LoanID: in.LoanID, BookID: in.BookID, IndividualFee: in.IndividualFee}
	if err := s.store.UpdateDetail(ctx, d); err != nil {
		return LoanDetailResponse{}, apierr.FromStorage(err, "loan detail not found")
	}
	return detailResponse(d), nil
}

func (s *Service) DeleteDetail(ctx context.Context, id int64) error {
	if err := s.store.DeleteDetail(ctx, id); err != nil {
		return apierr.FromStorage(err, "loan detail not found")
	}
	return nil
}

func (s *Service) ListDetails(ctx context.Context) ([]LoanDetailResponse, error) {
	details, err := s.store.ListDetails(ctx)
	if err != nil {
		return nil, apierr.FromStorage(err, "loan detail not found")
	}
	out := make([]LoanDetailResponse, 0, len(details))
	for i := range details {
		out = append(out, detailResponse(&details[i]))
	}
	return out, nil
}

// ===== response builders =====

func headerResponse(h *LoanHeader, details []LoanDetailResponse) LoanResponse {
	if details == nil {
		details = []LoanDetailResponse{}
	}
	return LoanResponse{
		LoanID:             h.LoanID,
		PatronID:           h.PatronID,
		BranchID:           h.BranchID,
		BeginDate:          h.BeginDate.Format(dateLayout),
		ExpectedReturnDate: h.ExpectedReturnDate.Format(dateLayout),
		OverdueFee:         h.OverdueFee,
		Details:            details,
	}
}

func detailResponse(d *LoanDetail) LoanDetailResponse {
	return LoanDetailResponse{
		LoanDetailID:  d.LoanDetailID,
		LoanID:        d.LoanID,
		BookID:        d.BookID,
		IndividualFee: d.IndividualFee,
	}
}
