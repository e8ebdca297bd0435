package jolly

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/jollyjumper/internal/config"
	"github.com/vovakirdan/jollyjumper/internal/core"
)

// fixedRand returns the same draw every time. Intn scales f into [0, n) the
// way math.Floor(f*n) would.
type fixedRand struct {
	f float64
}

func (r fixedRand) Float64() float64 { return r.f }
func (r fixedRand) Intn(n int) int   { return int(r.f * float64(n)) }

// newRunning builds a running simulation with default config.
func newRunning(t *testing.T, opts ...Option) *Simulation {
	t.Helper()
	s, err := New(config.DefaultJollyConfig(), opts...)
	require.NoError(t, err)
	require.NoError(t, s.Start(core.Color("#00b894")))
	return s
}

func noInput() core.InputFrame {
	return core.NewInputFrame()
}

func held(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}
