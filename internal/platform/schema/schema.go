// Package schema creates the lending tables at startup when
// database.bootstrap is enabled. Statements are idempotent so a restart
// against an existing database is a no-op.
package schema

import (
	"context"
	"database/sql"
	"fmt"
)

var statements = []string{
	`CREATE TABLE IF NOT EXISTS Branches (
		branchID INT AUTO_INCREMENT PRIMARY KEY,
		branchDescription VARCHAR(255) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS Genres (
		genreID INT AUTO_INCREMENT PRIMARY KEY,
		genreName VARCHAR(255) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS Books (
		bookID INT AUTO_INCREMENT PRIMARY KEY,
		title VARCHAR(255) NOT NULL,
		author VARCHAR(255) NOT NULL,
		isbn VARCHAR(32) NOT NULL,
		branchID INT NOT NULL,
		CONSTRAINT fk_books_branch FOREIGN KEY (branchID) REFERENCES Branches (branchID)
	)`,
	`CREATE TABLE IF NOT EXISTS Patrons (
		patronID INT AUTO_INCREMENT PRIMARY KEY,
		email VARCHAR(255) NOT NULL,
		dues DECIMAL(10,2) NOT NULL DEFAULT 0.00,
		phoneNumber VARCHAR(32) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS LoanHeader (
		loanID INT AUTO_INCREMENT PRIMARY KEY,
		patronID INT NOT NULL,
		branchID INT NOT NULL,
		beginDate DATE NOT NULL,
		expectedReturnDate DATE NOT NULL,
		overdueFee DECIMAL(10,2) NOT NULL DEFAULT 0.00,
		CONSTRAINT fk_loanheader_patron FOREIGN KEY (patronID) REFERENCES Patrons (patronID),
		CONSTRAINT fk_loanheader_branch FOREIGN KEY (branchID) REFERENCES Branches (branchID)
	)`,
	`CREATE TABLE IF NOT EXISTS LoanDetails (
		loanDetailID INT AUTO_INCREMENT PRIMARY KEY,
		loanID INT NOT NULL,
		bookID INT NOT NULL,
		individualFee DECIMAL(10,2) NOT NULL DEFAULT 0.00,
		CONSTRAINT fk_loandetails_loan FOREIGN KEY (loanID) REFERENCES LoanHeader (loanID),
		CONSTRAINT fk_loandetails_book FOREIGN KEY (bookID) REFERENCES Books (bookID)
	)`,
}

// Apply runs every DDL statement in order.
func Apply(ctx context.Context, conn *sql.DB) error {
	for i, stmt := range statements {
		if _, err := conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema statement %d: %w", i+1, err)
		}
	}
	return nil
}
