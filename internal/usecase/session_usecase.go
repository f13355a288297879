package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"fabricmeasure/internal/domain/entities"
	"fabricmeasure/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidMethod     = errors.New("invalid measurement method")
	ErrMethodNotSelected = errors.New("no measurement method selected")
	ErrMethodMismatch    = errors.New("capture does not match the selected method")
	ErrSessionComplete   = errors.New("measurement already saved; start a new session")
	ErrNotAnImage        = errors.New("selected file is not an image")
	ErrInvalidDimensions = errors.New("width and height must be positive numbers")
	ErrNoDraft           = errors.New("no measurement draft available")
	ErrEmptyName         = errors.New("fabric name is required")
	ErrOperationInFlight = errors.New("another session operation is already in progress")
	ErrCameraUnavailable = errors.New("camera unavailable or permission denied")
	ErrCameraNotActive   = errors.New("camera is not active")
	ErrSessionReset      = errors.New("session was reset while the operation was pending")
)

// ISessionUseCase drives the measurement wizard: method choice, the three
// capture paths, draft review, and the save into history.
//
// Operations map to the wizard steps:
//   - "choose method"    => SelectMethod()
//   - capture screens    => CaptureUpload() / CaptureManual() / StartAR()+CaptureAR()
//   - results review     => CurrentDraft()
//   - "save to history"  => Save()
//   - leaving the wizard => Abandon()

type ISessionUseCase interface {
	SelectMethod(ctx context.Context, method entities.Method) (entities.SessionSnapshot, error)
	CaptureUpload(ctx context.Context, file entities.UploadedFile) (entities.MeasurementDraft, error)
	CaptureManual(ctx context.Context, width, height float64) (entities.MeasurementDraft, error)
	StartAR(ctx context.Context) (entities.SessionSnapshot, error)
	CaptureAR(ctx context.Context) (entities.MeasurementDraft, error)
	CurrentDraft() (entities.MeasurementDraft, bool)
	Snapshot() entities.SessionSnapshot
	Save(ctx context.Context, name, fabricType, notes string) (entities.HistoryRecord, error)
	Abandon(ctx context.Context) entities.SessionSnapshot
}

// SessionUseCase is the single-session flow controller. One session exists
// per process; the mutex serializes the state machine while the suspended
// capture/save work runs outside the lock, guarded by the busy flag so at
// most one operation is ever in flight.
type SessionUseCase struct {
	mu       sync.Mutex
	state    entities.SessionState
	method   entities.Method
	draft    *entities.MeasurementDraft
	busy     bool
	cameraOn bool
	// gen increments on every reset (SelectMethod/Abandon) so a pending
	// capture or save whose session was reset discards its result.
	gen int

	history interfaces.IHistoryRepository
	uploads interfaces.IUploadAnalyzer
	meter   interfaces.IARMeter
	camera  interfaces.ICameraGateway

	now func() time.Time
}

var _ ISessionUseCase = (*SessionUseCase)(nil)

func NewSessionUseCase(
	history interfaces.IHistoryRepository,
	uploads interfaces.IUploadAnalyzer,
	meter interfaces.IARMeter,
	camera interfaces.ICameraGateway,
) *SessionUseCase {
	return &SessionUseCase{
		state:   entities.SessionStateIdle,
		history: history,
		uploads: uploads,
		meter:   meter,
		camera:  camera,
		now:     time.Now,
	}
}

func (u *SessionUseCase) SelectMethod(ctx context.Context, method entities.Method) (entities.SessionSnapshot, error) {
	if !method.Valid() {
		return u.Snapshot(), ErrInvalidMethod
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	// Selecting a method discards any in-progress capture state, including
	// a pending operation's eventual result.
	u.resetLocked()
	u.method = method
	u.state = entities.SessionStateMethodSelected
	return u.snapshotLocked(), nil
}

func (u *SessionUseCase) CaptureUpload(ctx context.Context, file entities.UploadedFile) (entities.MeasurementDraft, error) {
	u.mu.Lock()
	if err := u.beginCaptureLocked(entities.MethodUpload); err != nil {
		u.mu.Unlock()
		return entities.MeasurementDraft{}, err
	}
	if !file.IsImage() {
		// Silent rejection in the reference UI: no transition, retryable.
		u.mu.Unlock()
		return entities.MeasurementDraft{}, ErrNotAnImage
	}
	gen := u.gen
	u.busy = true
	u.state = entities.SessionStateCapturing
	u.mu.Unlock()

	width, height, err := u.uploads.Analyze(ctx, file)

	u.mu.Lock()
	defer u.mu.Unlock()
	u.busy = false
	if u.gen != gen {
		return entities.MeasurementDraft{}, ErrSessionReset
	}
	if err != nil {
		return entities.MeasurementDraft{}, err
	}
	return u.acceptDraftLocked(width, height), nil
}

func (u *SessionUseCase) CaptureManual(ctx context.Context, width, height float64) (entities.MeasurementDraft, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if err := u.beginCaptureLocked(entities.MethodManual); err != nil {
		return entities.MeasurementDraft{}, err
	}
	if width <= 0 || height <= 0 {
		// Stay in Capturing: the form remains open for correction.
		u.state = entities.SessionStateCapturing
		return entities.MeasurementDraft{}, ErrInvalidDimensions
	}
	u.state = entities.SessionStateCapturing
	return u.acceptDraftLocked(width, height), nil
}

func (u *SessionUseCase) StartAR(ctx context.Context) (entities.SessionSnapshot, error) {
	u.mu.Lock()
	if err := u.beginCaptureLocked(entities.MethodAR); err != nil {
		u.mu.Unlock()
		return u.Snapshot(), err
	}
	gen := u.gen
	u.busy = true
	u.mu.Unlock()

	err := u.camera.Acquire(ctx)

	u.mu.Lock()
	defer u.mu.Unlock()
	u.busy = false
	if u.gen != gen {
		if err == nil {
			u.camera.Release()
		}
		return u.snapshotLocked(), ErrSessionReset
	}
	if err != nil {
		u.state = entities.SessionStateCameraUnsupported
		return u.snapshotLocked(), ErrCameraUnavailable
	}
	u.cameraOn = true
	u.state = entities.SessionStateCapturing
	return u.snapshotLocked(), nil
}

func (u *SessionUseCase) CaptureAR(ctx context.Context) (entities.MeasurementDraft, error) {
	u.mu.Lock()
	if err := u.beginCaptureLocked(entities.MethodAR); err != nil {
		u.mu.Unlock()
		return entities.MeasurementDraft{}, err
	}
	if !u.cameraOn {
		u.mu.Unlock()
		return entities.MeasurementDraft{}, ErrCameraNotActive
	}
	gen := u.gen
	u.busy = true
	u.mu.Unlock()

	width, height, err := u.meter.Measure(ctx)

	u.mu.Lock()
	defer u.mu.Unlock()
	u.busy = false
	// The camera is released on every exit path, success or not.
	u.releaseCameraLocked()
	if u.gen != gen {
		return entities.MeasurementDraft{}, ErrSessionReset
	}
	if err != nil {
		return entities.MeasurementDraft{}, err
	}
	return u.acceptDraftLocked(width, height), nil
}

func (u *SessionUseCase) CurrentDraft() (entities.MeasurementDraft, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.draft == nil {
		return entities.MeasurementDraft{}, false
	}
	return *u.draft, true
}

func (u *SessionUseCase) Snapshot() entities.SessionSnapshot {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.snapshotLocked()
}

func (u *SessionUseCase) Save(ctx context.Context, name, fabricType, notes string) (entities.HistoryRecord, error) {
	u.mu.Lock()
	if u.busy {
		u.mu.Unlock()
		return entities.HistoryRecord{}, ErrOperationInFlight
	}
	if u.state != entities.SessionStateDraftReady || u.draft == nil || !u.draft.Complete() {
		u.mu.Unlock()
		return entities.HistoryRecord{}, ErrNoDraft
	}
	name = strings.TrimSpace(name)
	if name == "" {
		// Validation failure: no state change, retryable.
		u.mu.Unlock()
		return entities.HistoryRecord{}, ErrEmptyName
	}

	draft := *u.draft
	record := entities.HistoryRecord{
		ID:        "measurement-" + uuid.NewString(),
		Name:      name,
		Type:      strings.TrimSpace(fabricType),
		Notes:     strings.TrimSpace(notes),
		Width:     draft.Width,
		Height:    draft.Height,
		Method:    draft.Method,
		Timestamp: draft.CapturedAt,
		Estimates: entities.CalculateEstimates(draft.Width, draft.Height),
	}

	gen := u.gen
	u.busy = true
	u.state = entities.SessionStateSaving
	u.mu.Unlock()

	err := u.history.Append(ctx, record)

	u.mu.Lock()
	defer u.mu.Unlock()
	u.busy = false
	if u.gen != gen {
		return entities.HistoryRecord{}, ErrSessionReset
	}
	if err != nil {
		u.state = entities.SessionStateDraftReady
		return entities.HistoryRecord{}, err
	}
	u.draft = nil
	u.state = entities.SessionStateSaved
	return record, nil
}

func (u *SessionUseCase) Abandon(ctx context.Context) entities.SessionSnapshot {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.resetLocked()
	u.method = ""
	u.state = entities.SessionStateIdle
	return u.snapshotLocked()
}

// beginCaptureLocked validates that a capture operation may start for the
// given method. Caller holds the lock.
func (u *SessionUseCase) beginCaptureLocked(method entities.Method) error {
	if u.busy {
		return ErrOperationInFlight
	}
	if u.method == "" {
		return ErrMethodNotSelected
	}
	if u.method != method {
		return ErrMethodMismatch
	}
	switch u.state {
	case entities.SessionStateSaved, entities.SessionStateSaving:
		return ErrSessionComplete
	}
	return nil
}

// acceptDraftLocked records a completed capture. CapturedAt is the wall-clock
// time of the transition into DraftReady.
func (u *SessionUseCase) acceptDraftLocked(width, height float64) entities.MeasurementDraft {
	draft := entities.MeasurementDraft{
		Width:      width,
		Height:     height,
		Method:     u.method,
		CapturedAt: u.now(),
	}
	u.draft = &draft
	u.state = entities.SessionStateDraftReady
	return draft
}

func (u *SessionUseCase) resetLocked() {
	u.gen++
	u.draft = nil
	u.busy = false
	u.releaseCameraLocked()
}

func (u *SessionUseCase) releaseCameraLocked() {
	if u.cameraOn {
		u.camera.Release()
		u.cameraOn = false
	}
}

func (u *SessionUseCase) snapshotLocked() entities.SessionSnapshot {
	return entities.SessionSnapshot{
		State:    u.state,
		Method:   u.method,
		HasDraft: u.draft != nil,
	}
}
