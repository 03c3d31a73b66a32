package books

// ===== Requests =====

type CreateBookRequest struct {
	Title    string `json:"title" binding:"required"`
	Author   string `json:"author" binding:"required"`
	ISBN     string `json:"isbn" binding:"required"`
	BranchID int64  `json:"branch_id" binding:"required"`
}

type UpdateBookRequest struct {
	Title    string `json:"title" binding:"required"`
	Author   string `json:"author" binding:"required"`
	ISBN     string `json:"isbn" binding:"required"`
	BranchID int64  `json:"branch_id" binding:"required"`
}

// ===== Responses =====

type BookResponse struct {
	BookID   int64  `json:"book_id"`
	Title    string `json:"title"`
	Author   string `json:"author"`
	ISBN     string `json:"isbn"`
	BranchID int64  `json:"branch_id"`
}
