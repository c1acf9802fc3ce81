// Package stream normalizes and grades answer files line by line.
//
// Each non-blank line that does not start with '#' holds tab-separated
// fields: "category<TAB>answer" asks for the canonical form and
// "category<TAB>answer<TAB>reference" asks for a verdict. One JSON result is
// written per record, in input order.
package stream

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/baditaflorin/go_answer_normalization/internal/core/domain"
	"github.com/baditaflorin/go_answer_normalization/internal/core/grading"
	"github.com/baditaflorin/go_answer_normalization/internal/ports"
)

const (
	// DefaultBatchSize defines how many records go to a worker at once
	DefaultBatchSize = 100

	// MaxLineSize bounds a single input line
	MaxLineSize = 1024 * 1024 // 1MB
)

// Service is what the processor needs from the normalizer.
type Service interface {
	Normalize(category domain.Category, input string) domain.Value
	Grade(ctx context.Context, category domain.Category, answer, reference string) grading.Verdict
}

// Result is the outcome for one input record.
type Result struct {
	Line     int              `json:"line"`
	Category string           `json:"category,omitempty"`
	Value    *domain.Value    `json:"value,omitempty"`
	Verdict  *grading.Verdict `json:"verdict,omitempty"`
	Error    string           `json:"error,omitempty"`
}

// Stats summarizes a run.
type Stats struct {
	Records    int
	Normalized int
	Graded     int
	Correct    int
	Invalid    int
}

func (s *Stats) add(r Result) {
	s.Records++
	switch {
	case r.Error != "":
		s.Invalid++
	case r.Verdict != nil:
		s.Graded++
		if r.Verdict.Correct {
			s.Correct++
		}
	default:
		s.Normalized++
	}
}

// Config defines configuration for batch processing
type Config struct {
	BatchSize int
	// Workers 0 means runtime.NumCPU()
	Workers int
}

// Processor runs answer files through a Service with a pool of workers.
type Processor struct {
	logger    ports.Logger
	service   Service
	batchSize int
	workers   int
}

type record struct {
	line int
	text string
}

type job struct {
	id      int
	records []record
}

type jobResult struct {
	id      int
	results []Result
}

// NewProcessor creates a new batch processor
func NewProcessor(logger ports.Logger, service Service, config Config) *Processor {
	if config.BatchSize <= 0 {
		config.BatchSize = DefaultBatchSize
	}
	if config.Workers <= 0 {
		config.Workers = runtime.NumCPU()
	}
	return &Processor{
		logger:    logger,
		service:   service,
		batchSize: config.BatchSize,
		workers:   config.Workers,
	}
}

// Process reads records from r and writes one JSON line per record to w.
// Batches are processed in parallel; output keeps input order.
func (p *Processor) Process(ctx context.Context, r io.Reader, w io.Writer) (Stats, error) {
	startTime := time.Now()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	jobs := make(chan job, p.workers)
	results := make(chan jobResult, p.workers)
	readErr := make(chan error, 1)

	go func() {
		defer close(jobs)
		readErr <- p.readBatches(ctx, r, jobs)
	}()

	var wg sync.WaitGroup
	for i := 0; i < p.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p.worker(ctx, jobs, results)
		}()
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	var stats Stats
	enc := json.NewEncoder(w)
	pending := make(map[int][]Result)
	next := 0

	for jr := range results {
		pending[jr.id] = jr.results

		// Emit batches in order
		for {
			batch, ok := pending[next]
			if !ok {
				break
			}
			delete(pending, next)
			next++

			for _, res := range batch {
				stats.add(res)
				if err := enc.Encode(res); err != nil {
					return stats, fmt.Errorf("write result: %w", err)
				}
			}
		}
	}

	// A reader blocked on an unfinished input is abandoned on cancellation.
	if err := ctx.Err(); err != nil {
		p.logger.Warn("Batch processing cancelled", "error", err)
		return stats, err
	}
	if err := <-readErr; err != nil {
		return stats, err
	}

	p.logger.Debug("Batch processing completed",
		"records", stats.Records,
		"invalid", stats.Invalid,
		"workers", p.workers,
		"duration", time.Since(startTime),
	)
	return stats, nil
}

func (p *Processor) readBatches(ctx context.Context, r io.Reader, jobs chan<- job) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxLineSize)

	batch := make([]record, 0, p.batchSize)
	id := 0
	send := func() error {
		if len(batch) == 0 {
			return nil
		}
		select {
		case jobs <- job{id: id, records: batch}:
			id++
			batch = make([]record, 0, p.batchSize)
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSuffix(scanner.Text(), "\r")
		if strings.TrimSpace(text) == "" || strings.HasPrefix(text, "#") {
			continue
		}
		batch = append(batch, record{line: line, text: text})
		if len(batch) >= p.batchSize {
			if err := send(); err != nil {
				return err
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input at line %d: %w", line+1, err)
	}
	return send()
}

func (p *Processor) worker(ctx context.Context, jobs <-chan job, results chan<- jobResult) {
	for j := range jobs {
		out := make([]Result, 0, len(j.records))
		for _, rec := range j.records {
			out = append(out, p.process(ctx, rec))
		}

		select {
		case results <- jobResult{id: j.id, results: out}:
		case <-ctx.Done():
			return
		}
	}
}

func (p *Processor) process(ctx context.Context, rec record) Result {
	fields := strings.Split(rec.text, "\t")
	res := Result{Line: rec.line}

	if len(fields) < 2 || len(fields) > 3 {
		res.Error = fmt.Sprintf("expected 2 or 3 tab-separated fields, got %d", len(fields))
		return res
	}

	category := domain.ParseCategory(fields[0])
	res.Category = category.String()

	if len(fields) == 2 {
		v := p.service.Normalize(category, fields[1])
		res.Value = &v
		return res
	}

	verdict := p.service.Grade(ctx, category, fields[1], fields[2])
	res.Verdict = &verdict
	return res
}
