package entities

// SessionState tracks the measurement wizard through its steps.
//
// Lifecycle:
//
//	Idle -> MethodSelected -> Capturing -> DraftReady -> Saving -> Saved
//
// CameraUnsupported is a terminal sub-state of Capturing reachable only on
// the ar path when camera access is denied or unsupported; the only way out
// is selecting another method or abandoning the session.

type SessionState string

const (
	SessionStateIdle              SessionState = "idle"
	SessionStateMethodSelected    SessionState = "method_selected"
	SessionStateCapturing         SessionState = "capturing"
	SessionStateCameraUnsupported SessionState = "camera_unsupported"
	SessionStateDraftReady        SessionState = "draft_ready"
	SessionStateSaving            SessionState = "saving"
	SessionStateSaved             SessionState = "saved"
)

// SessionSnapshot is a read-only view of the session flow, exposed to the
// rendering layer instead of transient navigation payloads.
type SessionSnapshot struct {
	State    SessionState `json:"state"`
	Method   Method       `json:"method,omitempty"`
	HasDraft bool         `json:"has_draft"`
}
