package helpers

import (
	model "construction-marketplace/internal/models"
	"time"
)

// Request/Response DTOs
type TokenRequest struct {
	Account string `json:"account" binding:"required"`
}

type TokenResponse struct {
	Account string `json:"account"`
	Token   string `json:"token"`
}

type CreateProjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       uint64 `json:"price"`
}

type PlaceBidRequest struct {
	ProjectID *uint64 `json:"project_id" binding:"required"`
	Amount    uint64  `json:"amount"`
	Escrow    uint64  `json:"escrow"`
}

type ProjectResponse struct {
	ProjectID         uint64 `json:"project_id"`
	Name              string `json:"name"`
	Description       string `json:"description"`
	IsActive          bool   `json:"is_active"`
	Price             uint64 `json:"price"`
	Owner             string `json:"owner"`
	MilestonesReached []int  `json:"milestones_reached"`
}

type BidResponse struct {
	BidID     uint64 `json:"bid_id"`
	ProjectID uint64 `json:"project_id"`
	Bidder    string `json:"bidder"`
	Amount    uint64 `json:"amount"`
	CreatedAt string `json:"created_at"`
}

type TreasuryResponse struct {
	Balance uint64 `json:"balance"`
	Stopped bool   `json:"stopped"`
}

type WithdrawResponse struct {
	Amount uint64 `json:"amount"`
	Owner  string `json:"owner"`
}

type ToggleResponse struct {
	Stopped bool `json:"stopped"`
}

// ToProjectResponse converts a project record to its HTTP shape; the 365 day
// flags compress to the list of reached indices.
func ToProjectResponse(p model.Project) ProjectResponse {
	reached := make([]int, 0)
	for i, done := range p.Milestones {
		if done {
			reached = append(reached, i)
		}
	}
	return ProjectResponse{
		ProjectID:         p.ProjectID,
		Name:              p.Name,
		Description:       p.Description,
		IsActive:          p.IsActive,
		Price:             p.Price,
		Owner:             p.Owner,
		MilestonesReached: reached,
	}
}

// ToBidResponse converts a bid record to its HTTP shape
func ToBidResponse(b model.Bid) BidResponse {
	return BidResponse{
		BidID:     b.BidID,
		ProjectID: b.ProjectID,
		Bidder:    b.Bidder,
		Amount:    b.Amount,
		CreatedAt: b.CreatedAt.UTC().Format(time.RFC3339),
	}
}
