package patrons

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"biblio-backend/internal/platform/apierr"
)

// importHeader is the required first row of an uploaded CSV.
var importHeader = []string{"email", "dues", "phoneNumber"}

// ImportCSV loads patrons from a CSV stream. Rows are processed
// independently: a bad row is reported in its result and does not abort the
// batch. Excel exports often carry a UTF-8 BOM, so the reader strips one if
// present.
func (s *Service) ImportCSV(ctx context.Context, src io.Reader) (ImportPatronsResponse, error) {
	dec := unicode.UTF8BOM.NewDecoder()
	r := csv.NewReader(transform.NewReader(src, dec))
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		return ImportPatronsResponse{}, apierr.Invalid("empty or unreadable csv")
	}
	if !headerMatches(header) {
		return ImportPatronsResponse{}, apierr.Invalid("csv header must be: email,dues,phoneNumber")
	}

	resp := ImportPatronsResponse{Results: []ImportRowResult{}}
	for rowNum := 1; ; rowNum++ {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		resp.Total++
		if err != nil {
			resp.NgCount++
			resp.Results = append(resp.Results, ngRow(rowNum, fmt.Sprintf("malformed csv row: %v", err)))
			continue
		}
		res := s.importRow(ctx, rowNum, record)
		if res.Ok {
			resp.OkCount++
		} else {
			resp.NgCount++
		}
		resp.Results = append(resp.Results, res)
	}
	return resp, nil
}

func (s *Service) importRow(ctx context.Context, rowNum int, record []string) ImportRowResult {
	if len(record) != len(importHeader) {
		return ngRow(rowNum, "expected 3 columns")
	}
	email := strings.TrimSpace(record[0])
	phone := strings.TrimSpace(record[2])
	dues, err := strconv.ParseFloat(strings.TrimSpace(record[1]), 64)
	if err != nil {
		return ngRow(rowNum, "dues is not a number")
	}
	out, err := s.Create(ctx, CreatePatronRequest{Email: email, Dues: dues, PhoneNumber: phone})
	if err != nil {
		return ngRow(rowNum, err.Error())
	}
	return ImportRowResult{Row: rowNum, Ok: true, PatronID: &out.PatronID, Email: &out.Email}
}

func headerMatches(got []string) bool {
	if len(got) != len(importHeader) {
		return false
	}
	for i, want := range importHeader {
		if !strings.EqualFold(strings.TrimSpace(got[i]), want) {
			return false
		}
	}
	return true
}

func ngRow(row int, msg string) ImportRowResult {
	return ImportRowResult{Row: row, Ok: false, Error: &msg}
}
