package repository

import (
	"fmt"
	"sync"
	"time"

	"construction-marketplace/internal/marketerrors"
	model "construction-marketplace/internal/models"

	"github.com/samber/lo"
)

// MarketplaceDB defines the storage interface for the project marketplace.
// Each write method commits its whole effect atomically, including the
// matching notification, so callers that validate first get all-or-nothing
// operations for free.
type MarketplaceDB interface {
	CreateProject(p model.Project) (model.Project, error)
	GetProject(id uint64) (model.Project, error)
	ListProjects() []model.Project
	RecordBid(b model.Bid) (model.Bid, error)
	GetBid(id uint64) (model.Bid, error)
	BidsByProject(projectID uint64) []model.Bid
	TransferOwnership(projectID uint64, newOwner string, bidID uint64) error
	MarkMilestone(projectID uint64, index int) error
	RecordCompletion(projectID uint64) error
	Balance() uint64
	Drain() uint64
	Events() []model.Event
	EventsByProject(projectID uint64) []model.Event
	EventsByBid(bidID uint64) []model.Event
}

// MemoryRepo is a concurrency-safe in-memory implementation of MarketplaceDB.
// Project and bid ids are independent counters starting at 0; they only ever
// move forward, so ids are never reused. All escrowed value is pooled into a
// single balance with no per-project sub-ledger.
type MemoryRepo struct {
	mu            sync.RWMutex
	projects      map[uint64]model.Project
	bids          map[uint64]model.Bid
	nextProjectID uint64
	nextBidID     uint64
	balance       uint64
	events        []model.Event
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		projects: make(map[uint64]model.Project),
		bids:     make(map[uint64]model.Bid),
	}
}

// appendEvent records a notification; callers must hold r.mu.
func (r *MemoryRepo) appendEvent(e model.Event) {
	e.Seq = uint64(len(r.events))
	e.CreatedAt = time.Now().UTC()
	r.events = append(r.events, e)
}

// CreateProject assigns the next project id, stores the record, and records a
// NewProject notification. Name, description, and price are stored verbatim.
func (r *MemoryRepo) CreateProject(p model.Project) (model.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p.ProjectID = r.nextProjectID
	r.nextProjectID++
	r.projects[p.ProjectID] = p

	r.appendEvent(model.Event{
		Type:      model.EventNewProject,
		ProjectID: p.ProjectID,
		Name:      p.Name,
	})
	return p, nil
}

// GetProject returns the stored project record
func (r *MemoryRepo) GetProject(id uint64) (model.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.projects[id]
	if !ok {
		return model.Project{}, fmt.Errorf("get project %d: %w", id, marketerrors.ErrProjectNotFound)
	}
	return p, nil
}

// ListProjects returns all projects ordered by id
func (r *MemoryRepo) ListProjects() []model.Project {
	r.mu.RLock()
	defer r.mu.RUnlock()

	projects := make([]model.Project, 0, len(r.projects))
	for id := uint64(0); id < r.nextProjectID; id++ {
		projects = append(projects, r.projects[id])
	}
	return projects
}

// RecordBid assigns the next bid id, stores the record, and pools the
// escrowed amount into the balance. The referenced project must exist; it is
// the caller's job to check it is still active.
func (r *MemoryRepo) RecordBid(b model.Bid) (model.Bid, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.projects[b.ProjectID]; !ok {
		return model.Bid{}, fmt.Errorf("record bid for project %d: %w", b.ProjectID, marketerrors.ErrProjectNotFound)
	}

	b.BidID = r.nextBidID
	r.nextBidID++
	r.bids[b.BidID] = b
	r.balance += b.Amount

	r.appendEvent(model.Event{
		Type:      model.EventNewBid,
		ProjectID: b.ProjectID,
		BidID:     lo.ToPtr(b.BidID),
		Amount:    lo.ToPtr(b.Amount),
	})
	return b, nil
}

// GetBid returns the stored bid record
func (r *MemoryRepo) GetBid(id uint64) (model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.bids[id]
	if !ok {
		return model.Bid{}, fmt.Errorf("get bid %d: %w", id, marketerrors.ErrBidNotFound)
	}
	return b, nil
}

// BidsByProject returns all bids placed on a project ordered by bid id
func (r *MemoryRepo) BidsByProject(projectID uint64) []model.Bid {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bids := make([]model.Bid, 0)
	for id := uint64(0); id < r.nextBidID; id++ {
		if b, ok := r.bids[id]; ok && b.ProjectID == projectID {
			bids = append(bids, b)
		}
	}
	return bids
}

// TransferOwnership finalizes a project and hands it to the accepted bidder:
// the project is deactivated and its owner becomes newOwner, in one step.
func (r *MemoryRepo) TransferOwnership(projectID uint64, newOwner string, bidID uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.projects[projectID]
	if !ok {
		return fmt.Errorf("transfer project %d: %w", projectID, marketerrors.ErrProjectNotFound)
	}

	p.IsActive = false
	p.Owner = newOwner
	r.projects[projectID] = p

	r.appendEvent(model.Event{
		Type:      model.EventBidAccepted,
		ProjectID: projectID,
		BidID:     lo.ToPtr(bidID),
	})
	return nil
}

// MarkMilestone sets the project's day flag. Setting an already-set flag is a
// no-op success, but still records a notification.
func (r *MemoryRepo) MarkMilestone(projectID uint64, index int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.projects[projectID]
	if !ok {
		return fmt.Errorf("mark milestone on project %d: %w", projectID, marketerrors.ErrProjectNotFound)
	}
	if index < 0 || index >= model.MilestoneDays {
		return fmt.Errorf("mark milestone %d on project %d: %w", index, projectID, marketerrors.ErrInvalidMilestoneIndex)
	}

	p.Milestones[index] = true
	r.projects[projectID] = p

	r.appendEvent(model.Event{
		Type:           model.EventMilestoneReached,
		ProjectID:      projectID,
		MilestoneIndex: lo.ToPtr(index),
	})
	return nil
}

// RecordCompletion records a ProjectCompleted notification. It changes no
// stored field on the project.
func (r *MemoryRepo) RecordCompletion(projectID uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.projects[projectID]; !ok {
		return fmt.Errorf("record completion of project %d: %w", projectID, marketerrors.ErrProjectNotFound)
	}

	r.appendEvent(model.Event{
		Type:      model.EventProjectCompleted,
		ProjectID: projectID,
	})
	return nil
}

// Balance returns the pooled escrow balance
func (r *MemoryRepo) Balance() uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.balance
}

// Drain zeroes the pooled balance and returns the drained amount. The zeroing
// commits before the amount is handed to the caller, so a re-entrant caller
// can never observe the pre-drain balance.
func (r *MemoryRepo) Drain() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	amount := r.balance
	r.balance = 0
	return amount
}

// Events returns the full notification log in emission order
func (r *MemoryRepo) Events() []model.Event {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]model.Event(nil), r.events...)
}

// EventsByProject returns the notifications recorded for one project
func (r *MemoryRepo) EventsByProject(projectID uint64) []model.Event {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return lo.Filter(r.events, func(e model.Event, _ int) bool {
		return e.ProjectID == projectID
	})
}

// EventsByBid returns the notifications that reference one bid
func (r *MemoryRepo) EventsByBid(bidID uint64) []model.Event {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return lo.Filter(r.events, func(e model.Event, _ int) bool {
		return e.BidID != nil && *e.BidID == bidID
	})
}
