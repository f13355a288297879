package interfaces

import (
	"context"

	"fabricmeasure/internal/domain/entities"
)

// IUploadAnalyzer measures fabric dimensions from an uploaded image.
//
// The shipped implementation is a placeholder that returns fixed dimensions
// after a simulated processing delay; a real image-analysis pipeline plugs in
// behind this seam without touching the session flow.

type IUploadAnalyzer interface {
	Analyze(ctx context.Context, file entities.UploadedFile) (width, height float64, err error)
}

// IARMeter measures fabric dimensions through the live camera.
//
// The shipped implementation fakes AR tracking with bounded random values
// after a simulated delay; real AR geometry replaces it behind this seam.

type IARMeter interface {
	Measure(ctx context.Context) (width, height float64, err error)
}

// ICameraGateway is the camera device capability used by the ar path.
// Release must be safe to call on every exit path, including after a failed
// Acquire.

type ICameraGateway interface {
	Acquire(ctx context.Context) error
	Release()
}
