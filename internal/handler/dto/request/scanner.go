package request

import "github.com/google/uuid"

type ScanRequest struct {
	Token    string    `json:"token" binding:"required"`
	BranchID uuid.UUID `json:"branch_id" binding:"required"`
}

type IssueTokenRequest struct {
	UserID string `json:"user_id" binding:"required,max=64"`
}
