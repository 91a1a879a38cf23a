// Package service exposes the wizard to the presentation layer. Every entry
// point runs through the logging and metrics interceptors, mutates the session
// through the workflow package, and snapshots changed collections to storage.
package service

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mmynk/splitwizard/internal/ledger"
	"github.com/mmynk/splitwizard/internal/metrics"
	"github.com/mmynk/splitwizard/internal/middleware"
	"github.com/mmynk/splitwizard/internal/models"
	"github.com/mmynk/splitwizard/internal/storage"
	"github.com/mmynk/splitwizard/internal/workflow"
)

// WizardService owns one wizard session.
type WizardService struct {
	kv        storage.KV
	rec       *metrics.Recorder
	intercept middleware.Interceptor
	session   *workflow.Session
	sessionID string
}

// NewWizardService restores names and bills from kv and starts a new session.
func NewWizardService(ctx context.Context, kv storage.KV, rec *metrics.Recorder) *WizardService {
	snap := LoadSnapshot(ctx, kv)

	s := &WizardService{
		kv:        kv,
		rec:       rec,
		intercept: middleware.Chain(middleware.Logging(), middleware.Metrics(rec)),
		session:   workflow.NewSession(snap.Names, snap.Bills),
		sessionID: uuid.New().String(),
	}
	if err := kv.Set(ctx, storage.KeySession, []byte(s.sessionID)); err != nil {
		slog.Warn("Failed to record session id", "error", err)
	}

	slog.Info("Session started",
		"session_id", s.sessionID,
		"names_count", len(snap.Names),
		"bills_count", len(snap.Bills),
	)
	return s
}

// SessionID identifies this run in logs.
func (s *WizardService) SessionID() string { return s.sessionID }

// Names returns a copy of the participant list.
func (s *WizardService) Names() []string {
	return append([]string(nil), s.session.Names...)
}

// Bills returns a copy of the bill list.
func (s *WizardService) Bills() []models.Bill {
	return models.CloneBills(s.session.Bills)
}

// Totals returns a copy of the allocation totals.
func (s *WizardService) Totals() models.IndividualAmounts {
	return s.session.Totals.Clone()
}

// State returns the current workflow state.
func (s *WizardService) State() workflow.State { return s.session.State }

// CurrentBill returns the bill being allocated, if any.
func (s *WizardService) CurrentBill() (models.Bill, bool) { return s.session.CurrentBill() }

// IsLastBill reports whether the current bill is the last to allocate.
func (s *WizardService) IsLastBill() bool { return s.session.IsLastBill() }

// Summary returns the settlement table.
func (s *WizardService) Summary() models.Summary { return s.session.Summary() }

// AddParticipant adds a participant name.
func (s *WizardService) AddParticipant(ctx context.Context, name string) error {
	return s.run(ctx, "add_participant", func(ctx context.Context) error {
		if err := s.session.AddParticipant(name); err != nil {
			return err
		}
		s.persistNames(ctx)
		return nil
	})
}

// RemoveParticipant removes the participant at index.
func (s *WizardService) RemoveParticipant(ctx context.Context, index int) error {
	return s.run(ctx, "remove_participant", func(ctx context.Context) error {
		s.session.RemoveParticipant(index)
		s.persistNames(ctx)
		return nil
	})
}

// AddBill records a bill.
func (s *WizardService) AddBill(ctx context.Context, in ledger.BillInput) error {
	return s.run(ctx, "add_bill", func(ctx context.Context) error {
		if err := s.session.AddBill(in); err != nil {
			return err
		}
		s.persistBills(ctx)
		return nil
	})
}

// RemoveBill removes the bill at index.
func (s *WizardService) RemoveBill(ctx context.Context, index int) error {
	return s.run(ctx, "remove_bill", func(ctx context.Context) error {
		s.session.RemoveBill(index)
		s.persistBills(ctx)
		return nil
	})
}

// AllocateCurrentBill splits the current bill among selected.
func (s *WizardService) AllocateCurrentBill(ctx context.Context, selected []string) error {
	return s.run(ctx, "allocate_current_bill", func(context.Context) error {
		return s.session.AllocateCurrentBill(selected)
	})
}

// AdvanceWorkflow moves to the next step if its guard passes.
func (s *WizardService) AdvanceWorkflow(ctx context.Context) error {
	return s.run(ctx, "advance_workflow", func(context.Context) error {
		return s.session.Advance()
	})
}

// RetreatWorkflow moves to the previous step.
func (s *WizardService) RetreatWorkflow(ctx context.Context) error {
	return s.run(ctx, "retreat_workflow", func(context.Context) error {
		s.session.Retreat()
		return nil
	})
}

// Restart clears the session and the persisted lists.
func (s *WizardService) Restart(ctx context.Context) error {
	return s.run(ctx, "restart", func(ctx context.Context) error {
		s.session.Restart()
		s.persistNames(ctx)
		s.persistBills(ctx)
		return nil
	})
}

// run wraps fn with the interceptors and records any step change.
func (s *WizardService) run(ctx context.Context, name string, fn middleware.Action) error {
	ctx = middleware.WithSessionID(ctx, s.sessionID)
	from := s.session.State.Step

	err := s.intercept(name, fn)(ctx)

	if to := s.session.State.Step; to != from {
		s.rec.Transition(from.String(), to.String())
		slog.Info("Workflow transition",
			"from", from.String(),
			"to", to.String(),
			"session_id", s.sessionID,
		)
	}
	return err
}

func (s *WizardService) persistNames(ctx context.Context) {
	s.persist(ctx, storage.KeyNames, s.session.Names)
}

func (s *WizardService) persistBills(ctx context.Context) {
	s.persist(ctx, storage.KeyBills, s.session.Bills)
}

// persist is fire-and-forget: a failed write is logged and counted, never returned.
func (s *WizardService) persist(ctx context.Context, key string, v any) {
	raw, err := json.Marshal(v)
	if err == nil {
		err = s.kv.Set(ctx, key, raw)
	}
	if err != nil {
		s.rec.PersistFailure(key)
		slog.Warn("Failed to persist snapshot", "key", key, "error", err, "session_id", s.sessionID)
	}
}
