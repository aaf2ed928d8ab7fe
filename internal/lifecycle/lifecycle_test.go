package lifecycle

import (
	"errors"
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/biryaniking52/catering-app/internal/models"
	"github.com/biryaniking52/catering-app/internal/store"
)

func testStore(t *testing.T) *store.Store {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&models.Quote{}, &models.QuoteItem{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return store.New(db)
}

func seedQuote(t *testing.T, st *store.Store, status string) models.Quote {
	t.Helper()
	q, err := st.AddQuote(models.Quote{
		ClientName: "John Doe",
		Status:     status,
		Items:      []models.QuoteItem{{FoodItemID: 1, VendorID: 1, Quantity: 10}},
	})
	if err != nil {
		t.Fatalf("seed quote: %v", err)
	}
	return q
}

func TestCanTransitionTable(t *testing.T) {
	cases := []struct {
		from, to string
		ok       bool
	}{
		{models.StatusDraft, models.StatusPending, true},
		{models.StatusPending, models.StatusApproved, true},
		{models.StatusPending, models.StatusRejected, true},
		{models.StatusApproved, models.StatusInProgress, true},
		{models.StatusInProgress, models.StatusCompleted, true},

		{models.StatusDraft, models.StatusApproved, false},
		{models.StatusPending, models.StatusCompleted, false},
		{models.StatusApproved, models.StatusPending, false},
		{models.StatusRejected, models.StatusPending, false},
		{models.StatusCompleted, models.StatusInProgress, false},
		{models.StatusCompleted, models.StatusDraft, false},
		{"bogus", models.StatusPending, false},
	}
	for _, c := range cases {
		if got := CanTransition(c.from, c.to); got != c.ok {
			t.Errorf("CanTransition(%s, %s) = %v, want %v", c.from, c.to, got, c.ok)
		}
	}
}

func TestEditableGate(t *testing.T) {
	for _, status := range []string{models.StatusDraft, models.StatusPending, models.StatusRejected} {
		if !Editable(status) {
			t.Errorf("%s quotes must stay editable", status)
		}
		if err := EnsureEditable(status); err != nil {
			t.Errorf("EnsureEditable(%s): %v", status, err)
		}
	}
	for _, status := range []string{models.StatusApproved, models.StatusInProgress, models.StatusCompleted} {
		if Editable(status) {
			t.Errorf("%s quotes must be locked", status)
		}
		if err := EnsureEditable(status); !errors.Is(err, ErrNotEditable) {
			t.Errorf("EnsureEditable(%s): got %v, want ErrNotEditable", status, err)
		}
	}
}

func TestFullWorkflow(t *testing.T) {
	st := testStore(t)
	svc := NewService(st)
	q := seedQuote(t, st, models.StatusDraft)

	q2, err := svc.Submit(q.ID)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if q2.Status != models.StatusPending {
		t.Fatalf("submit: status=%s", q2.Status)
	}

	q3, err := svc.Approve(q.ID, "Admin")
	if err != nil {
		t.Fatalf("approve: %v", err)
	}
	if q3.Status != models.StatusApproved {
		t.Fatalf("approve: status=%s", q3.Status)
	}
	if q3.ApprovedAt == nil || q3.ApprovedBy != "Admin" {
		t.Fatalf("approve must stamp approver: at=%v by=%q", q3.ApprovedAt, q3.ApprovedBy)
	}

	q4, err := svc.Start(q.ID)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if q4.Status != models.StatusInProgress {
		t.Fatalf("start: status=%s", q4.Status)
	}
	q5, err := svc.Complete(q.ID)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if q5.Status != models.StatusCompleted {
		t.Fatalf("complete: status=%s", q5.Status)
	}

	// completed is terminal
	if _, err := svc.Start(q.ID); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("completed quote restarted: %v", err)
	}
}

func TestRejectIsTerminal(t *testing.T) {
	st := testStore(t)
	svc := NewService(st)
	q := seedQuote(t, st, models.StatusPending)

	if _, err := svc.Reject(q.ID); err != nil {
		t.Fatalf("reject: %v", err)
	}
	if _, err := svc.Submit(q.ID); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("rejected quote resubmitted: %v", err)
	}
	if _, err := svc.Approve(q.ID, "Admin"); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("rejected quote approved: %v", err)
	}

	got, err := st.GetQuote(q.ID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.Status != models.StatusRejected {
		t.Fatalf("failed transition changed status to %s", got.Status)
	}
}

func TestApproveRequiresPending(t *testing.T) {
	st := testStore(t)
	svc := NewService(st)
	q := seedQuote(t, st, models.StatusDraft)

	if _, err := svc.Approve(q.ID, "Admin"); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("draft quote approved directly: %v", err)
	}
	got, _ := st.GetQuote(q.ID)
	if got.ApprovedAt != nil || got.ApprovedBy != "" {
		t.Fatalf("failed approve left approver stamps: %+v", got)
	}
}

func TestTransitionMissingQuote(t *testing.T) {
	st := testStore(t)
	svc := NewService(st)
	if _, err := svc.Submit(9999); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
