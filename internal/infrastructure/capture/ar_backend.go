package capture

import (
	"context"
	"log"
	"math"
	"math/rand/v2"
	"time"

	"fabricmeasure/internal/usecase/interfaces"
)

// Simulated AR measurement bounds, in centimeters.
const (
	arWidthMin  = 20.0
	arWidthSpan = 50.0

	arHeightMin  = 15.0
	arHeightSpan = 30.0
)

// ARBackend fakes AR tracking: after a simulated convergence delay it reports
// random dimensions within fixed bounds, one decimal of precision. Real AR
// geometry replaces this behind IARMeter without touching the session flow.
type ARBackend struct {
	delay time.Duration
}

var _ interfaces.IARMeter = (*ARBackend)(nil)

func NewARBackend(delay time.Duration) *ARBackend {
	return &ARBackend{delay: delay}
}

func (b *ARBackend) Measure(ctx context.Context) (float64, float64, error) {
	log.Printf("[capture][ar] measure start")

	if err := wait(ctx, b.delay); err != nil {
		log.Printf("[capture][ar] measure cancelled err=%v", err)
		return 0, 0, err
	}

	width := round1(arWidthMin + rand.Float64()*arWidthSpan)
	height := round1(arHeightMin + rand.Float64()*arHeightSpan)
	log.Printf("[capture][ar] measure done width=%.1f height=%.1f (placeholder)", width, height)
	return width, height, nil
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
