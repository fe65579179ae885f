package repository

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"construction-marketplace/internal/marketerrors"
	model "construction-marketplace/internal/models"

	"github.com/stretchr/testify/require"
)

// Helper to create a new Project
func newProject(name, owner string, price uint64) model.Project {
	return model.Project{
		Name:        name,
		Description: fmt.Sprintf("%s description", name),
		IsActive:    true,
		Price:       price,
		Owner:       owner,
	}
}

// Helper to create a new Bid
func newBid(projectID uint64, bidder string, amount uint64) model.Bid {
	return model.Bid{
		ProjectID: projectID,
		Bidder:    bidder,
		Amount:    amount,
		CreatedAt: time.Now().UTC(),
	}
}

// Test CreateProject
func TestMemoryRepo_CreateProject(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()

	// ids are assigned sequentially from 0
	for i := uint64(0); i < 3; i++ {
		created, err := repo.CreateProject(newProject(fmt.Sprintf("project_%d", i), "alice", 100))
		require.NoError(t, err)
		require.Equal(t, i, created.ProjectID)
		require.True(t, created.IsActive)
	}

	// milestones start all false
	p, err := repo.GetProject(0)
	require.NoError(t, err)
	require.Len(t, p.Milestones, model.MilestoneDays)
	for _, flag := range p.Milestones {
		require.False(t, flag)
	}

	// empty name and zero price are stored verbatim
	created, err := repo.CreateProject(model.Project{IsActive: true, Owner: "bob"})
	require.NoError(t, err)
	require.Equal(t, uint64(3), created.ProjectID)
	require.Empty(t, created.Name)

	// each creation records a NewProject notification
	events := repo.Events()
	require.Len(t, events, 4)
	for i, e := range events {
		require.Equal(t, model.EventNewProject, e.Type)
		require.Equal(t, uint64(i), e.Seq)
		require.Equal(t, uint64(i), e.ProjectID)
	}
}

func TestMemoryRepo_GetProject_NotFound(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()
	_, err := repo.GetProject(99)
	require.ErrorIs(t, err, marketerrors.ErrProjectNotFound)
}

// Test RecordBid
func TestMemoryRepo_RecordBid(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()
	_, err := repo.CreateProject(newProject("bridge", "alice", 100))
	require.NoError(t, err)

	tests := []struct {
		name      string
		bid       model.Bid
		wantError error
	}{
		{name: "valid_bid", bid: newBid(0, "bob", 50)},
		{name: "zero_amount_bid", bid: newBid(0, "carol", 0)},
		{name: "empty_bidder", bid: newBid(0, "", 10)},
		{name: "project_never_created", bid: newBid(42, "bob", 50), wantError: marketerrors.ErrProjectNotFound},
	}

	var wantBalance uint64
	var wantBids int
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			recorded, err := repo.RecordBid(tc.bid)
			if tc.wantError != nil {
				require.ErrorIs(t, err, tc.wantError)
				return
			}
			require.NoError(t, err)
			require.Equal(t, uint64(wantBids), recorded.BidID)
			wantBids++
			wantBalance += tc.bid.Amount
			require.Equal(t, wantBalance, repo.Balance())
		})
	}

	// a failed record must not advance the bid counter
	recorded, err := repo.RecordBid(newBid(0, "dave", 5))
	require.NoError(t, err)
	require.Equal(t, uint64(wantBids), recorded.BidID)

	bids := repo.BidsByProject(0)
	require.Len(t, bids, wantBids+1)

	// concurrent bids keep counter and balance consistent
	t.Run("concurrent_bids", func(t *testing.T) {
		repo := NewMemoryRepo()
		_, err := repo.CreateProject(newProject("tower", "alice", 100))
		require.NoError(t, err)

		var wg sync.WaitGroup
		concurrentCount := 50

		for i := 0; i < concurrentCount; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := repo.RecordBid(newBid(0, "bidder", 2))
				require.NoError(t, err)
			}()
		}

		wg.Wait()

		require.Len(t, repo.BidsByProject(0), concurrentCount)
		require.Equal(t, uint64(2*concurrentCount), repo.Balance())
	})
}

// Test TransferOwnership
func TestMemoryRepo_TransferOwnership(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()
	_, err := repo.CreateProject(newProject("bridge", "alice", 100))
	require.NoError(t, err)
	bid, err := repo.RecordBid(newBid(0, "bob", 50))
	require.NoError(t, err)

	require.NoError(t, repo.TransferOwnership(0, bid.Bidder, bid.BidID))

	p, err := repo.GetProject(0)
	require.NoError(t, err)
	require.False(t, p.IsActive)
	require.Equal(t, "bob", p.Owner)

	// transfer does not touch the pooled balance
	require.Equal(t, uint64(50), repo.Balance())

	require.ErrorIs(t, repo.TransferOwnership(7, "bob", 0), marketerrors.ErrProjectNotFound)

	events := repo.EventsByBid(bid.BidID)
	require.Len(t, events, 2) // NewBid + BidAccepted
	require.Equal(t, model.EventBidAccepted, events[1].Type)
}

// Test MarkMilestone
func TestMemoryRepo_MarkMilestone(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()
	_, err := repo.CreateProject(newProject("bridge", "alice", 100))
	require.NoError(t, err)

	tests := []struct {
		name      string
		index     int
		wantError error
	}{
		{name: "first_day", index: 0},
		{name: "last_day", index: 364},
		{name: "one_past_end", index: 365, wantError: marketerrors.ErrInvalidMilestoneIndex},
		{name: "negative", index: -1, wantError: marketerrors.ErrInvalidMilestoneIndex},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := repo.MarkMilestone(0, tc.index)
			if tc.wantError != nil {
				require.ErrorIs(t, err, tc.wantError)
				return
			}
			require.NoError(t, err)
			p, err := repo.GetProject(0)
			require.NoError(t, err)
			require.True(t, p.Milestones[tc.index])
		})
	}

	// marking the same day twice succeeds and leaves the flag set
	require.NoError(t, repo.MarkMilestone(0, 0))
	p, err := repo.GetProject(0)
	require.NoError(t, err)
	require.True(t, p.Milestones[0])

	require.ErrorIs(t, repo.MarkMilestone(9, 0), marketerrors.ErrProjectNotFound)
}

// Test RecordCompletion
func TestMemoryRepo_RecordCompletion(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()
	created, err := repo.CreateProject(newProject("bridge", "alice", 100))
	require.NoError(t, err)

	require.NoError(t, repo.RecordCompletion(created.ProjectID))

	// completion changes no stored field
	after, err := repo.GetProject(created.ProjectID)
	require.NoError(t, err)
	require.Equal(t, created, after)

	events := repo.EventsByProject(created.ProjectID)
	require.Equal(t, model.EventProjectCompleted, events[len(events)-1].Type)

	require.ErrorIs(t, repo.RecordCompletion(42), marketerrors.ErrProjectNotFound)
}

// Test Drain
func TestMemoryRepo_Drain(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()
	_, err := repo.CreateProject(newProject("bridge", "alice", 100))
	require.NoError(t, err)
	_, err = repo.RecordBid(newBid(0, "bob", 30))
	require.NoError(t, err)
	_, err = repo.RecordBid(newBid(0, "carol", 20))
	require.NoError(t, err)

	require.Equal(t, uint64(50), repo.Drain())
	require.Equal(t, uint64(0), repo.Balance())

	// draining an empty balance yields zero
	require.Equal(t, uint64(0), repo.Drain())
}

// Test event log queries
func TestMemoryRepo_Events(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()
	_, err := repo.CreateProject(newProject("bridge", "alice", 100))
	require.NoError(t, err)
	_, err = repo.CreateProject(newProject("tunnel", "bob", 200))
	require.NoError(t, err)
	bid, err := repo.RecordBid(newBid(1, "carol", 75))
	require.NoError(t, err)

	all := repo.Events()
	require.Len(t, all, 3)
	for i, e := range all {
		require.Equal(t, uint64(i), e.Seq)
	}

	bridge := repo.EventsByProject(0)
	require.Len(t, bridge, 1)
	require.Equal(t, model.EventNewProject, bridge[0].Type)

	tunnel := repo.EventsByProject(1)
	require.Len(t, tunnel, 2)

	byBid := repo.EventsByBid(bid.BidID)
	require.Len(t, byBid, 1)
	require.Equal(t, model.EventNewBid, byBid[0].Type)
	require.Equal(t, uint64(75), *byBid[0].Amount)

	require.Empty(t, repo.EventsByBid(17))
}
