package capture

import (
	"context"
	"log"
	"time"

	"fabricmeasure/internal/domain/entities"
	"fabricmeasure/internal/usecase/interfaces"
)

// Placeholder dimensions reported for every uploaded image until a real
// image-analysis pipeline is integrated behind IUploadAnalyzer.
const (
	placeholderUploadWidth  = 150.0
	placeholderUploadHeight = 100.0
)

// UploadBackend is a stand-in for image-based measurement: it waits for a
// simulated processing delay and reports fixed dimensions. The delay is a
// test double for real processing completion, not a contract.
type UploadBackend struct {
	delay time.Duration
}

var _ interfaces.IUploadAnalyzer = (*UploadBackend)(nil)

func NewUploadBackend(delay time.Duration) *UploadBackend {
	return &UploadBackend{delay: delay}
}

func (b *UploadBackend) Analyze(ctx context.Context, file entities.UploadedFile) (float64, float64, error) {
	log.Printf("[capture][upload] analyze start file=%s type=%s size=%d", file.Filename, file.ContentType, file.SizeBytes)

	if err := wait(ctx, b.delay); err != nil {
		log.Printf("[capture][upload] analyze cancelled file=%s err=%v", file.Filename, err)
		return 0, 0, err
	}

	log.Printf("[capture][upload] analyze done file=%s width=%.1f height=%.1f (placeholder)", file.Filename, placeholderUploadWidth, placeholderUploadHeight)
	return placeholderUploadWidth, placeholderUploadHeight, nil
}

// wait sleeps for d or until ctx is done, whichever comes first.
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
