package redemption

import (
	"errors"
	"sync"
	"time"

	"bonojuntos/internal/domain/claim"

	"github.com/google/uuid"
)

type Phase string

const (
	PhaseIdle Phase = "idle"
	// PhaseScanning exists only while the camera is actively sampling
	// frames. It is a capture-layer concern; the session never enters it
	// itself because callers hand over already-captured tokens.
	PhaseScanning             Phase = "scanning"
	PhaseValidating           Phase = "validating"
	PhaseAwaitingConfirmation Phase = "awaiting_confirmation"
	PhaseConfirming           Phase = "confirming"
	PhaseSucceeded            Phase = "succeeded"
	PhaseFailed               Phase = "failed"
)

var (
	ErrScanInFlight      = errors.New("a scan attempt is already in flight")
	ErrScanThrottled     = errors.New("scan rejected by cooldown")
	ErrStaleAttempt      = errors.New("attempt is no longer active")
	ErrInvalidTransition = errors.New("invalid session state transition")
)

// Snapshot is the read-only view of the session exposed for rendering.
// Exactly one of Record/Result/Err is populated in the phases that carry a
// payload; impossible combinations cannot be represented.
type Snapshot struct {
	Phase     Phase
	AttemptID uuid.UUID
	Record    *ConfirmationRecord
	Result    *RedemptionResult
	Err       error
}

// Session is the per-operator confirmation state machine. One attempt is
// live at a time; every mutating call checks both the phase and the attempt
// identity so a response arriving for a cancelled attempt can never be
// confused with the current one.
type Session struct {
	mu        sync.Mutex
	phase     Phase
	attemptID uuid.UUID
	record    *ConfirmationRecord
	result    *RedemptionResult
	err       error

	lastScan time.Time
	cooldown time.Duration

	watchers []chan Snapshot
}

func NewSession(cooldown time.Duration) *Session {
	return &Session{
		phase:    PhaseIdle,
		cooldown: cooldown,
	}
}

// BeginScan opens a new attempt. It is rejected while a previous attempt is
// validating or confirming, and by the scan cooldown. A new scan from
// AwaitingConfirmation implicitly cancels the pending record (no side
// effect has happened yet); from a terminal phase it dismisses the result.
func (s *Session) BeginScan(now time.Time) (uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.phase {
	case PhaseValidating, PhaseConfirming:
		return uuid.Nil, ErrScanInFlight
	}

	if !claim.ShouldAccept(s.lastScan, now, s.cooldown) {
		return uuid.Nil, ErrScanThrottled
	}

	s.lastScan = now
	s.attemptID = uuid.New()
	s.phase = PhaseValidating
	s.record = nil
	s.result = nil
	s.err = nil
	s.notifyLocked()
	return s.attemptID, nil
}

// Ready delivers the enriched record for the given attempt. A record for a
// stale attempt (cancelled or superseded) is discarded and ErrStaleAttempt
// returned; the session is not mutated.
func (s *Session) Ready(attemptID uuid.UUID, record *ConfirmationRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if attemptID != s.attemptID {
		return ErrStaleAttempt
	}
	if s.phase != PhaseValidating {
		return ErrInvalidTransition
	}

	s.phase = PhaseAwaitingConfirmation
	s.record = record
	s.notifyLocked()
	return nil
}

// Reject fails the attempt during validation.
func (s *Session) Reject(attemptID uuid.UUID, cause error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if attemptID != s.attemptID {
		return ErrStaleAttempt
	}
	if s.phase != PhaseValidating {
		return ErrInvalidTransition
	}

	s.phase = PhaseFailed
	s.record = nil
	s.err = cause
	s.notifyLocked()
	return nil
}

// StartConfirm moves the pending record into the confirming phase and hands
// it to the caller for submission.
func (s *Session) StartConfirm() (uuid.UUID, *ConfirmationRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseAwaitingConfirmation {
		return uuid.Nil, nil, ErrInvalidTransition
	}

	s.phase = PhaseConfirming
	s.notifyLocked()
	return s.attemptID, s.record, nil
}

func (s *Session) Complete(attemptID uuid.UUID, result *RedemptionResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if attemptID != s.attemptID {
		return ErrStaleAttempt
	}
	if s.phase != PhaseConfirming {
		return ErrInvalidTransition
	}

	s.phase = PhaseSucceeded
	s.record = nil
	s.result = result
	s.notifyLocked()
	return nil
}

func (s *Session) Fail(attemptID uuid.UUID, cause error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if attemptID != s.attemptID {
		return ErrStaleAttempt
	}
	if s.phase != PhaseConfirming {
		return ErrInvalidTransition
	}

	s.phase = PhaseFailed
	s.record = nil
	s.err = cause
	s.notifyLocked()
	return nil
}

// Cancel discards the pending record without side effects. Effective
// immediately: the attempt id is rotated so any late enrichment result is
// rejected by Ready as stale.
func (s *Session) Cancel() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseAwaitingConfirmation {
		return ErrInvalidTransition
	}

	s.resetLocked()
	return nil
}

// Dismiss returns the session to Idle after a terminal phase.
func (s *Session) Dismiss() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseSucceeded && s.phase != PhaseFailed {
		return ErrInvalidTransition
	}

	s.resetLocked()
	return nil
}

func (s *Session) resetLocked() {
	s.phase = PhaseIdle
	s.attemptID = uuid.Nil
	s.record = nil
	s.result = nil
	s.err = nil
	s.notifyLocked()
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Watch returns a channel carrying state snapshots, latest-wins: a slow
// consumer sees the newest state, not every intermediate one.
func (s *Session) Watch() <-chan Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch := make(chan Snapshot, 1)
	ch <- s.snapshotLocked()
	s.watchers = append(s.watchers, ch)
	return ch
}

func (s *Session) snapshotLocked() Snapshot {
	return Snapshot{
		Phase:     s.phase,
		AttemptID: s.attemptID,
		Record:    s.record,
		Result:    s.result,
		Err:       s.err,
	}
}

func (s *Session) notifyLocked() {
	snap := s.snapshotLocked()
	for _, ch := range s.watchers {
		select {
		case ch <- snap:
		default:
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- snap:
			default:
			}
		}
	}
}
