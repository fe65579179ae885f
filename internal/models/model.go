package models

import "time"

// MilestoneDays is the fixed number of per-day progress flags each project carries.
const MilestoneDays = 365

// Project represents a published construction project
type Project struct {
	ProjectID   uint64              `json:"project_id"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	IsActive    bool                `json:"is_active"`
	Price       uint64              `json:"price"`
	Owner       string              `json:"owner"`
	Milestones  [MilestoneDays]bool `json:"milestones"`
}

// Bid represents a contractor's escrowed bid on a project
type Bid struct {
	BidID     uint64    `json:"bid_id"`
	ProjectID uint64    `json:"project_id"`
	Bidder    string    `json:"bidder"`
	Amount    uint64    `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}

// EventType identifies the kind of marketplace notification
type EventType string

const (
	EventNewProject       EventType = "NewProject"
	EventNewBid           EventType = "NewBid"
	EventBidAccepted      EventType = "BidAccepted"
	EventMilestoneReached EventType = "MilestoneReached"
	EventProjectCompleted EventType = "ProjectCompleted"
)

// Event is an append-only notification recorded for every successful state
// transition. Optional fields are pointers so that zero-valued ids stay
// distinguishable from absent ones.
type Event struct {
	Seq            uint64    `json:"seq"`
	Type           EventType `json:"type"`
	ProjectID      uint64    `json:"project_id"`
	BidID          *uint64   `json:"bid_id,omitempty"`
	Name           string    `json:"name,omitempty"`
	Amount         *uint64   `json:"amount,omitempty"`
	MilestoneIndex *int      `json:"milestone_index,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}
