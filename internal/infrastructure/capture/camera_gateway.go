package capture

import (
	"context"
	"errors"
	"log"
	"sync"
)

var ErrCameraAccessDenied = errors.New("camera access denied or unsupported")

// CameraGateway simulates the camera device capability: request stream,
// release stream. When disabled it refuses every acquisition, which drives
// the session into its camera-unsupported sub-state; this mirrors a user
// denying the browser camera permission.
type CameraGateway struct {
	disabled bool

	mu     sync.Mutex
	active bool
}

func NewCameraGateway(disabled bool) *CameraGateway {
	if disabled {
		log.Printf("[camera][gateway] camera disabled; acquisitions will be refused")
	}
	return &CameraGateway{disabled: disabled}
}

func (g *CameraGateway) Acquire(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if g.disabled {
		log.Printf("[camera][gateway] acquire refused")
		return ErrCameraAccessDenied
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.active = true
	log.Printf("[camera][gateway] stream acquired")
	return nil
}

// Release is safe to call on every exit path, including when no stream is
// held.
func (g *CameraGateway) Release() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.active {
		return
	}
	g.active = false
	log.Printf("[camera][gateway] stream released")
}

// Active reports whether a stream is currently held.
func (g *CameraGateway) Active() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.active
}
