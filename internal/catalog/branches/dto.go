package branches

// ===== Requests =====

type CreateBranchRequest struct {
	Description string `json:"description" binding:"required"`
}

// Updates are full overwrites, so the shape matches Create.
type UpdateBranchRequest struct {
	Description string `json:"description" binding:"required"`
}

// ===== Responses =====

type BranchResponse struct {
	BranchID    int64  `json:"branch_id"`
	Description string `json:"description"`
}
