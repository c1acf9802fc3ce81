package warmup

import (
	"context"
	"runtime"
	"sync"
	"time"

	"github.com/baditaflorin/go_answer_normalization/internal/core/domain"
	"github.com/baditaflorin/go_answer_normalization/internal/ports"
)

// WarmupConfig defines configuration for warming up the system
type WarmupConfig struct {
	// Number of concurrent warmup routines to run
	Concurrency int
	// Number of passes over the sample answers per routine
	Iterations int
	// Warmup duration (0 means no time limit)
	Duration time.Duration
	// Whether to perform GC after warmup
	ForceGC bool
}

// DefaultWarmupConfig returns the default warmup configuration
func DefaultWarmupConfig() WarmupConfig {
	return WarmupConfig{
		Concurrency: runtime.NumCPU(),
		Iterations:  100,
		Duration:    2 * time.Second,
		ForceGC:     true,
	}
}

// SampleAnswers are typical answers per category, in the formats the
// exercises produce.
var SampleAnswers = map[domain.Category][]string{
	domain.CategoryDate:        {"21st March, 2024", "March 21, 2024", "1 JUNE 1999", "the 3rd of May"},
	domain.CategoryTime:        {"3:15pm", "15:15", "3.15 PM", "12am", "7 am", "00:00"},
	domain.CategoryPhone:       {"+1 (555) 123-4567", "020 7946 0958", "555.123.4567"},
	domain.CategoryPrice:       {"$1,234.50", "£ 19.99", "€5", "1234.5"},
	domain.CategoryLargeNumber: {"1,000,000", "2 500 000", "0"},
	domain.CategoryDecimal:     {"3.14159", "-0.5", "1e3"},
	domain.CategoryPercentage:  {"45 %", "12.5%", "100"},
	domain.CategoryMeasurement: {"5 km", "12.5 kg"},
	domain.CategoryMixed:       {"ab 12 cd", "QX7 2LM"},
}

// Manager handles system warmup operations
type Manager struct {
	logger      ports.Logger
	dispatchers []ports.Dispatcher
	config      WarmupConfig
}

// NewManager creates a new warmup manager
func NewManager(logger ports.Logger, config WarmupConfig) *Manager {
	if config.Concurrency <= 0 {
		config.Concurrency = runtime.NumCPU()
	}
	return &Manager{
		logger: logger,
		config: config,
	}
}

// RegisterDispatcher adds a dispatcher to be warmed up
func (wm *Manager) RegisterDispatcher(d ports.Dispatcher) {
	wm.dispatchers = append(wm.dispatchers, d)
}

// WarmUp runs every sample answer through every registered dispatcher and
// returns the number of normalizations performed.
func (wm *Manager) WarmUp(ctx context.Context) int {
	startTime := time.Now()
	wm.logger.Info("Starting system warmup",
		"components", len(wm.dispatchers),
		"concurrency", wm.config.Concurrency,
		"iterations", wm.config.Iterations,
	)

	// Create a context with timeout if duration is specified
	warmupCtx := ctx
	if wm.config.Duration > 0 {
		var cancel context.CancelFunc
		warmupCtx, cancel = context.WithTimeout(ctx, wm.config.Duration)
		defer cancel()
	}

	performed := wm.warmUpDispatchers(warmupCtx)

	if wm.config.ForceGC {
		wm.logger.Debug("Forcing garbage collection after warmup")
		runtime.GC()
	}

	wm.logger.Info("System warmup completed",
		"normalizations", performed,
		"duration", time.Since(startTime),
	)
	return performed
}

func (wm *Manager) warmUpDispatchers(ctx context.Context) int {
	if len(wm.dispatchers) == 0 {
		return 0
	}

	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		total int
	)
	for i := 0; i < wm.config.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			count := 0
			defer func() {
				mu.Lock()
				total += count
				mu.Unlock()
			}()

			for j := 0; j < wm.config.Iterations; j++ {
				select {
				case <-ctx.Done():
					return
				default:
				}

				for _, d := range wm.dispatchers {
					for category, samples := range SampleAnswers {
						for _, s := range samples {
							_ = d.Normalize(category, s)
							count++
						}
					}
				}
			}
		}()
	}

	wg.Wait()
	return total
}
