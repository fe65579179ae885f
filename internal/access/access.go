package access

import (
	"fmt"
	"sync"

	"construction-marketplace/internal/marketerrors"
)

// Controller holds the system owner identity and the emergency-stop flag.
// The owner is fixed at construction and never changes.
type Controller struct {
	mu      sync.RWMutex
	owner   string
	stopped bool
}

// NewController creates an access controller owned by the given account
func NewController(owner string) *Controller {
	return &Controller{owner: owner}
}

// Owner returns the system owner account
func (c *Controller) Owner() string {
	return c.owner
}

// Stopped reports whether the emergency stop is engaged
func (c *Controller) Stopped() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.stopped
}

// ToggleActive flips the emergency-stop flag and returns the new stopped
// state. Only the system owner may call it.
func (c *Controller) ToggleActive(caller string) (bool, error) {
	if caller != c.owner {
		return false, fmt.Errorf("access: toggle by %q: %w", caller, marketerrors.ErrUnauthorized)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopped = !c.stopped
	return c.stopped, nil
}

// RequireRunning fails when the emergency stop is engaged; every mutating
// marketplace operation calls it first.
func (c *Controller) RequireRunning() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.stopped {
		return fmt.Errorf("access: %w", marketerrors.ErrEmergencyStopped)
	}
	return nil
}

// RequireStopped is the inverse gate. No operation uses it; it exists so the
// stop/resume pair of predicates stays complete.
func (c *Controller) RequireStopped() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.stopped {
		return fmt.Errorf("access: marketplace is running")
	}
	return nil
}

// RequireOwner fails unless the caller is the system owner
func (c *Controller) RequireOwner(caller string) error {
	if caller != c.owner {
		return fmt.Errorf("access: caller %q is not the system owner: %w", caller, marketerrors.ErrUnauthorized)
	}
	return nil
}
