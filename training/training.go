// Package training drives the epoch loop of a network: forward, backward,
// update on the same fixed batch, with per-epoch loss tracking.
package training

import (
	"fmt"
	"time"

	"github.com/montanaflynn/stats"
	"go.dedis.ch/onet/v3/log"
	"gonum.org/v1/gonum/mat"

	"github.com/denselab/scratchmlp"
)

// Config holds the hyperparameters of one training run.
type Config struct {
	Epochs      int
	LearnRate   float64
	Momentum    float64
	ReportEvery int // epochs between loss log lines, 0 for silent
}

// DefaultConfig returns the package-level default hyperparameters.
func DefaultConfig() Config {
	return Config{
		Epochs:      scratchmlp.DefaultEpochs,
		LearnRate:   scratchmlp.DefaultLearningRate,
		Momentum:    scratchmlp.DefaultMomentum,
		ReportEvery: scratchmlp.DefaultReportEvery,
	}
}

func (c Config) check() error {
	if c.Epochs <= 0 {
		return fmt.Errorf("training: %d epochs, want positive: %w", c.Epochs, scratchmlp.ErrInvalidArgument)
	}
	if c.LearnRate <= 0 {
		return fmt.Errorf("training: learn rate %v, want positive: %w", c.LearnRate, scratchmlp.ErrInvalidArgument)
	}
	if c.Momentum < 0 || c.Momentum >= 1 {
		return fmt.Errorf("training: momentum %v outside [0,1): %w", c.Momentum, scratchmlp.ErrInvalidArgument)
	}
	if c.ReportEvery < 0 {
		return fmt.Errorf("training: report interval %d, want >= 0: %w", c.ReportEvery, scratchmlp.ErrInvalidArgument)
	}
	return nil
}

// EpochStat records one epoch of the loop.
type EpochStat struct {
	Epoch   int
	Loss    float64
	Elapsed time.Duration
}

// History is the per-epoch record of a run, in epoch order.
type History []EpochStat

// Losses returns the loss sequence, suitable for plotting.
func (h History) Losses() []float64 {
	losses := make([]float64, len(h))
	for i, e := range h {
		losses[i] = e.Loss
	}
	return losses
}

// Summary condenses a run.
type Summary struct {
	First  float64
	Last   float64
	Min    float64
	Max    float64
	Mean   float64
	StdDev float64
}

// Summary computes loss statistics over the whole history.
func (h History) Summary() (Summary, error) {
	if len(h) == 0 {
		return Summary{}, fmt.Errorf("training: empty history: %w", scratchmlp.ErrInvalidArgument)
	}
	losses := h.Losses()

	min, err := stats.Min(losses)
	if err != nil {
		return Summary{}, err
	}
	max, err := stats.Max(losses)
	if err != nil {
		return Summary{}, err
	}
	mean, err := stats.Mean(losses)
	if err != nil {
		return Summary{}, err
	}
	std, err := stats.StandardDeviation(losses)
	if err != nil {
		return Summary{}, err
	}

	return Summary{
		First:  losses[0],
		Last:   losses[len(losses)-1],
		Min:    min,
		Max:    max,
		Mean:   mean,
		StdDev: std,
	}, nil
}

// Train runs the configured number of epochs over the fixed batch x/y,
// mutating the model in place. The loss recorded for an epoch is computed
// from that epoch's forward pass, before the parameters move.
func Train(model *scratchmlp.Model, x, y *mat.Dense, cfg Config) (History, error) {
	if model == nil || x == nil || y == nil {
		return nil, fmt.Errorf("training: nil model or batch: %w", scratchmlp.ErrInvalidArgument)
	}
	if err := cfg.check(); err != nil {
		return nil, err
	}

	history := make(History, 0, cfg.Epochs)
	for epoch := 0; epoch < cfg.Epochs; epoch++ {
		start := time.Now()

		output, err := model.Forward(x)
		if err != nil {
			return history, fmt.Errorf("epoch %d: %w", epoch, err)
		}
		epochLoss, err := scratchmlp.Loss(output, y)
		if err != nil {
			return history, fmt.Errorf("epoch %d: %w", epoch, err)
		}
		if err := model.Backward(y); err != nil {
			return history, fmt.Errorf("epoch %d: %w", epoch, err)
		}
		if err := model.UpdateMomentum(cfg.LearnRate, cfg.Momentum); err != nil {
			return history, fmt.Errorf("epoch %d: %w", epoch, err)
		}

		history = append(history, EpochStat{Epoch: epoch, Loss: epochLoss, Elapsed: time.Since(start)})

		if cfg.ReportEvery > 0 && (epoch == 0 || (epoch+1)%cfg.ReportEvery == 0) {
			log.Lvlf2("Epoch: %d, loss: %.6f", epoch, epochLoss)
		}
	}
	return history, nil
}
