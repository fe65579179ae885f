package market

import (
	"fmt"
	"sync"
	"time"

	"construction-marketplace/internal/access"
	"construction-marketplace/internal/marketerrors"
	"construction-marketplace/internal/metrics"
	"construction-marketplace/internal/models"
	"construction-marketplace/internal/repository"
)

// MarketService implements the marketplace business rules. A single mutex
// serializes every mutating operation so that each one observes a consistent
// snapshot across the project and bid stores and either commits all of its
// effects or none of them: every precondition is checked before the first
// write, and each commit is one atomic repository call.
type MarketService struct {
	mu     sync.Mutex
	repo   repository.MarketplaceDB
	access *access.Controller
}

// NewMarketService creates a new MarketService instance
func NewMarketService(repo repository.MarketplaceDB, ctrl *access.Controller) *MarketService {
	return &MarketService{
		repo:   repo,
		access: ctrl,
	}
}

// SystemOwner returns the account that controls the gate and the treasury
func (s *MarketService) SystemOwner() string {
	return s.access.Owner()
}

// Stopped reports whether the emergency stop is engaged
func (s *MarketService) Stopped() bool {
	return s.access.Stopped()
}

// ToggleActive flips the emergency stop. System owner only; the gate itself
// does not guard this operation, otherwise a stopped marketplace could never
// be resumed.
func (s *MarketService) ToggleActive(caller string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stopped, err := s.access.ToggleActive(caller)
	if err != nil {
		return false, fmt.Errorf("service: toggle active: %w", err)
	}
	metrics.RecordOperation("toggle_active", metrics.StatusOK)
	return stopped, nil
}

// CreateProject publishes a new project owned by the caller. Name,
// description, and price are stored verbatim; nothing validates them.
func (s *MarketService) CreateProject(name, description string, price uint64, caller string) (models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.access.RequireRunning(); err != nil {
		return models.Project{}, fmt.Errorf("service: create project: %w", err)
	}

	project, err := s.repo.CreateProject(models.Project{
		Name:        name,
		Description: description,
		IsActive:    true,
		Price:       price,
		Owner:       caller,
	})
	if err != nil {
		return models.Project{}, fmt.Errorf("service: failed to create project for %s: %w", caller, err)
	}

	metrics.RecordOperation("create_project", metrics.StatusOK)
	return project, nil
}

// PlaceBid validates and records an escrowed bid on an active project. The
// escrowed value must equal the declared bid amount exactly; both under- and
// over-payment are rejected and nothing is recorded. On success the escrow
// joins the pooled treasury balance.
func (s *MarketService) PlaceBid(projectID, amount, escrow uint64, caller string) (models.Bid, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.access.RequireRunning(); err != nil {
		return models.Bid{}, fmt.Errorf("service: place bid: %w", err)
	}

	project, err := s.repo.GetProject(projectID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: place bid: %w", err)
	}
	if !project.IsActive {
		return models.Bid{}, fmt.Errorf("service: place bid on project %d: %w", projectID, marketerrors.ErrProjectNotActive)
	}
	if escrow != amount {
		return models.Bid{}, fmt.Errorf("service: escrowed %d for declared amount %d: %w", escrow, amount, marketerrors.ErrInsufficientFunds)
	}

	bid, err := s.repo.RecordBid(models.Bid{
		ProjectID: projectID,
		Bidder:    caller,
		Amount:    amount,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to record bid on project %d by %s: %w", projectID, caller, err)
	}

	metrics.RecordOperation("place_bid", metrics.StatusOK)
	metrics.SetPooledBalance(s.repo.Balance())
	return bid, nil
}

// AcceptBid transfers project custody to the bidder. Only the project's
// current owner may accept, and only while the project is active; acceptance
// deactivates the project, so at most one bid is ever accepted per project.
// The escrow of the accepted bid, and of every losing bid, stays in the
// pooled balance: there is no payout to the previous owner and no refund to
// losing bidders. That settlement gap is inherited behavior, kept on purpose.
func (s *MarketService) AcceptBid(bidID uint64, caller string) (models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.access.RequireRunning(); err != nil {
		return models.Project{}, fmt.Errorf("service: accept bid: %w", err)
	}

	bid, err := s.repo.GetBid(bidID)
	if err != nil {
		return models.Project{}, fmt.Errorf("service: accept bid: %w", err)
	}
	project, err := s.repo.GetProject(bid.ProjectID)
	if err != nil {
		return models.Project{}, fmt.Errorf("service: accept bid %d: %w", bidID, err)
	}
	if caller != project.Owner {
		return models.Project{}, fmt.Errorf("service: accept bid %d by %s: %w", bidID, caller, marketerrors.ErrUnauthorized)
	}
	if !project.IsActive {
		return models.Project{}, fmt.Errorf("service: accept bid %d on project %d: %w", bidID, project.ProjectID, marketerrors.ErrProjectNotActive)
	}

	if err := s.repo.TransferOwnership(project.ProjectID, bid.Bidder, bidID); err != nil {
		return models.Project{}, fmt.Errorf("service: failed to transfer project %d to %s: %w", project.ProjectID, bid.Bidder, err)
	}

	metrics.RecordOperation("accept_bid", metrics.StatusOK)
	updated, err := s.repo.GetProject(project.ProjectID)
	if err != nil {
		return models.Project{}, fmt.Errorf("service: reload project %d after transfer: %w", project.ProjectID, err)
	}
	return updated, nil
}

// MarkMilestone sets one of the project's 365 day flags. Only the current
// owner may mark, which after acceptance is the winning bidder. Marking an
// already-set flag succeeds again.
func (s *MarketService) MarkMilestone(projectID uint64, index int, caller string) (models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.access.RequireRunning(); err != nil {
		return models.Project{}, fmt.Errorf("service: mark milestone: %w", err)
	}

	project, err := s.repo.GetProject(projectID)
	if err != nil {
		return models.Project{}, fmt.Errorf("service: mark milestone: %w", err)
	}
	if caller != project.Owner {
		return models.Project{}, fmt.Errorf("service: mark milestone on project %d by %s: %w", projectID, caller, marketerrors.ErrUnauthorized)
	}
	if index < 0 || index >= models.MilestoneDays {
		return models.Project{}, fmt.Errorf("service: milestone index %d: %w", index, marketerrors.ErrInvalidMilestoneIndex)
	}

	if err := s.repo.MarkMilestone(projectID, index); err != nil {
		return models.Project{}, fmt.Errorf("service: failed to mark milestone %d on project %d: %w", index, projectID, err)
	}

	metrics.RecordOperation("mark_milestone", metrics.StatusOK)
	updated, err := s.repo.GetProject(projectID)
	if err != nil {
		return models.Project{}, fmt.Errorf("service: reload project %d after milestone: %w", projectID, err)
	}
	return updated, nil
}

// CompleteProject records completion of a project. It mutates no stored
// field; the notification is the whole effect.
func (s *MarketService) CompleteProject(projectID uint64, caller string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.access.RequireRunning(); err != nil {
		return fmt.Errorf("service: complete project: %w", err)
	}

	project, err := s.repo.GetProject(projectID)
	if err != nil {
		return fmt.Errorf("service: complete project: %w", err)
	}
	if caller != project.Owner {
		return fmt.Errorf("service: complete project %d by %s: %w", projectID, caller, marketerrors.ErrUnauthorized)
	}

	if err := s.repo.RecordCompletion(projectID); err != nil {
		return fmt.Errorf("service: failed to record completion of project %d: %w", projectID, err)
	}

	metrics.RecordOperation("complete_project", metrics.StatusOK)
	return nil
}

// Withdraw drains the whole pooled balance to the system owner and returns
// the drained amount. Deliberately NOT gated by the emergency stop: the owner
// can still pull funds while the marketplace is frozen. The balance is zeroed
// before the amount leaves the service.
func (s *MarketService) Withdraw(caller string) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.access.RequireOwner(caller); err != nil {
		return 0, fmt.Errorf("service: withdraw: %w", err)
	}

	amount := s.repo.Drain()
	metrics.RecordOperation("withdraw", metrics.StatusOK)
	metrics.SetPooledBalance(0)
	return amount, nil
}

// GetProject returns a stored project record
func (s *MarketService) GetProject(id uint64) (models.Project, error) {
	project, err := s.repo.GetProject(id)
	if err != nil {
		return models.Project{}, fmt.Errorf("service: %w", err)
	}
	return project, nil
}

// GetBid returns a stored bid record
func (s *MarketService) GetBid(id uint64) (models.Bid, error) {
	bid, err := s.repo.GetBid(id)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: %w", err)
	}
	return bid, nil
}

// ListProjects returns every published project
func (s *MarketService) ListProjects() []models.Project {
	return s.repo.ListProjects()
}

// BidsForProject returns all bids placed on a project
func (s *MarketService) BidsForProject(projectID uint64) ([]models.Bid, error) {
	if _, err := s.repo.GetProject(projectID); err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	return s.repo.BidsByProject(projectID), nil
}

// Treasury returns the pooled escrow balance
func (s *MarketService) Treasury() uint64 {
	return s.repo.Balance()
}

// Events returns the full notification log
func (s *MarketService) Events() []models.Event {
	return s.repo.Events()
}

// EventsForProject returns the notifications recorded for one project
func (s *MarketService) EventsForProject(projectID uint64) []models.Event {
	return s.repo.EventsByProject(projectID)
}

// EventsForBid returns the notifications that reference one bid
func (s *MarketService) EventsForBid(bidID uint64) []models.Event {
	return s.repo.EventsByBid(bidID)
}
