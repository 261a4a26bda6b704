package commands

import (
	"context"
	"sync"
	"time"

	"bonojuntos/internal/domain/redemption"
	"bonojuntos/internal/pkg/clock"
	"bonojuntos/internal/pkg/config"

	"github.com/google/uuid"
)

// Idle and terminal sessions are reclaimed after this much inactivity;
// a session holding a pending confirmation is never evicted.
const sessionIdleTTL = 30 * time.Minute

// ScannerCommands drives one confirmation session per authenticated
// collaborator. It binds the stateless coordinator to the session state
// machine: every network result is delivered back through the session with
// the attempt id it belongs to, so late responses for cancelled attempts
// are discarded rather than resurrected.
type ScannerCommands interface {
	Scan(ctx context.Context, collaboratorID uuid.UUID, token string, branchID uuid.UUID) (redemption.Snapshot, error)
	Confirm(ctx context.Context, collaboratorID uuid.UUID) (redemption.Snapshot, error)
	Cancel(collaboratorID uuid.UUID) (redemption.Snapshot, error)
	State(collaboratorID uuid.UUID) redemption.Snapshot
	Watch(collaboratorID uuid.UUID) <-chan redemption.Snapshot
}

type sessionEntry struct {
	sess     *redemption.Session
	lastSeen time.Time
}

type scannerUseCaseImpl struct {
	cmds  RedemptionCommands
	clock clock.Clock
	cfg   config.RedemptionConfig

	mu       sync.Mutex
	sessions map[uuid.UUID]*sessionEntry
}

func NewScannerCommands(cmds RedemptionCommands, clk clock.Clock, cfg config.Config) ScannerCommands {
	return &scannerUseCaseImpl{
		cmds:     cmds,
		clock:    clk,
		cfg:      cfg.Redemption,
		sessions: make(map[uuid.UUID]*sessionEntry),
	}
}

func (s *scannerUseCaseImpl) sessionFor(collaboratorID uuid.UUID) *redemption.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	s.evictStaleLocked(now, collaboratorID)

	entry, ok := s.sessions[collaboratorID]
	if !ok {
		entry = &sessionEntry{sess: redemption.NewSession(s.cfg.ScanCooldown)}
		s.sessions[collaboratorID] = entry
	}
	entry.lastSeen = now
	return entry.sess
}

func (s *scannerUseCaseImpl) evictStaleLocked(now time.Time, active uuid.UUID) {
	for id, entry := range s.sessions {
		if id == active || now.Sub(entry.lastSeen) < sessionIdleTTL {
			continue
		}
		switch entry.sess.Snapshot().Phase {
		case redemption.PhaseIdle, redemption.PhaseSucceeded, redemption.PhaseFailed:
			delete(s.sessions, id)
		}
	}
}

func (s *scannerUseCaseImpl) Scan(
	ctx context.Context,
	collaboratorID uuid.UUID,
	token string,
	branchID uuid.UUID,
) (redemption.Snapshot, error) {
	sess := s.sessionFor(collaboratorID)

	attemptID, err := sess.BeginScan(s.clock.Now())
	if err != nil {
		return sess.Snapshot(), err
	}

	record, err := s.cmds.ProcessScan(ctx, token, collaboratorID.String(), branchID)
	if err != nil {
		_ = sess.Reject(attemptID, err)
		return sess.Snapshot(), err
	}

	record.AttemptID = attemptID
	if readyErr := sess.Ready(attemptID, record); readyErr != nil {
		// The attempt was cancelled or superseded while enriching;
		// the record is dropped here, not surfaced.
		return sess.Snapshot(), nil
	}
	return sess.Snapshot(), nil
}

func (s *scannerUseCaseImpl) Confirm(ctx context.Context, collaboratorID uuid.UUID) (redemption.Snapshot, error) {
	sess := s.sessionFor(collaboratorID)

	attemptID, record, err := sess.StartConfirm()
	if err != nil {
		return sess.Snapshot(), err
	}

	result, err := s.cmds.Confirm(ctx, record)
	if err != nil {
		_ = sess.Fail(attemptID, err)
		return sess.Snapshot(), err
	}

	_ = sess.Complete(attemptID, result)
	return sess.Snapshot(), nil
}

// Cancel discards a pending confirmation, or dismisses a terminal result
// back to idle; both return the operator to a scannable state.
func (s *scannerUseCaseImpl) Cancel(collaboratorID uuid.UUID) (redemption.Snapshot, error) {
	sess := s.sessionFor(collaboratorID)

	if err := sess.Cancel(); err == nil {
		return sess.Snapshot(), nil
	}
	if err := sess.Dismiss(); err != nil {
		return sess.Snapshot(), err
	}
	return sess.Snapshot(), nil
}

func (s *scannerUseCaseImpl) State(collaboratorID uuid.UUID) redemption.Snapshot {
	return s.sessionFor(collaboratorID).Snapshot()
}

func (s *scannerUseCaseImpl) Watch(collaboratorID uuid.UUID) <-chan redemption.Snapshot {
	return s.sessionFor(collaboratorID).Watch()
}
