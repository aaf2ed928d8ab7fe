// Package lifecycle enforces the quote status workflow:
//
//	draft -> pending -> approved -> in-progress -> completed
//	                 \-> rejected
//
// The workflow is forward-only; no transition re-enters an earlier state.
// Content edits are allowed only before approval (draft, pending,
// rejected).
package lifecycle

import (
	"errors"
	"fmt"
	"time"

	"github.com/biryaniking52/catering-app/internal/models"
	"github.com/biryaniking52/catering-app/internal/store"
)

var (
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrNotEditable       = errors.New("quote is not editable in its current status")
)

// transitions lists, per current status, the statuses reachable from it.
var transitions = map[string][]string{
	models.StatusDraft:      {models.StatusPending},
	models.StatusPending:    {models.StatusApproved, models.StatusRejected},
	models.StatusApproved:   {models.StatusInProgress},
	models.StatusInProgress: {models.StatusCompleted},
	models.StatusRejected:   {},
	models.StatusCompleted:  {},
}

// CanTransition reports whether a quote may move from one status to
// another.
func CanTransition(from, to string) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Editable reports whether a quote's content may still be changed.
// Approved, in-progress and completed quotes are terminal for edits.
func Editable(status string) bool {
	switch status {
	case models.StatusDraft, models.StatusPending, models.StatusRejected:
		return true
	}
	return false
}

// EnsureEditable returns ErrNotEditable when content edits are no longer
// allowed for the given status.
func EnsureEditable(status string) error {
	if !Editable(status) {
		return fmt.Errorf("%w: %s", ErrNotEditable, status)
	}
	return nil
}

// Service applies workflow transitions to stored quotes with their side
// effects (timestamp stamping, approver identity).
type Service struct {
	store *store.Store
}

func NewService(s *store.Store) *Service { return &Service{store: s} }

// Submit moves a draft quote into the approval queue. Rejected quotes stay
// rejected; reworking one means editing its content, not resubmitting the
// status.
func (s *Service) Submit(id uint) (*models.Quote, error) {
	return s.transition(id, models.StatusPending, nil)
}

// Approve moves a pending quote to approved, stamping when and by whom.
func (s *Service) Approve(id uint, approver string) (*models.Quote, error) {
	now := time.Now()
	return s.transition(id, models.StatusApproved, map[string]any{
		"approved_at": &now,
		"approved_by": approver,
	})
}

// Reject moves a pending quote to rejected.
func (s *Service) Reject(id uint) (*models.Quote, error) {
	return s.transition(id, models.StatusRejected, nil)
}

// Start marks an approved quote as in preparation by the catering team.
func (s *Service) Start(id uint) (*models.Quote, error) {
	return s.transition(id, models.StatusInProgress, nil)
}

// Complete marks an in-progress quote as fulfilled.
func (s *Service) Complete(id uint) (*models.Quote, error) {
	return s.transition(id, models.StatusCompleted, nil)
}

func (s *Service) transition(id uint, to string, extra map[string]any) (*models.Quote, error) {
	q, err := s.store.GetQuote(id)
	if err != nil {
		return nil, err
	}
	if !CanTransition(q.Status, to) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, q.Status, to)
	}
	updates := map[string]any{"status": to}
	for k, v := range extra {
		updates[k] = v
	}
	return s.store.UpdateQuote(id, updates, nil)
}
