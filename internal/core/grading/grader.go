package grading

import (
	"context"
	"fmt"
	"strings"

	"github.com/baditaflorin/go_answer_normalization/internal/core/domain"
	"github.com/baditaflorin/go_answer_normalization/internal/ports"
)

// Policy decides how answers that failed to parse are graded.
type Policy int

const (
	// PolicyLenient compares canonical values as they are. An unreadable
	// clock time equals midnight and an unparsed number equals the same
	// unparsed text.
	PolicyLenient Policy = iota
	// PolicyStrict marks every unparsed answer wrong.
	PolicyStrict
)

// String returns the configuration name of the policy.
func (p Policy) String() string {
	switch p {
	case PolicyLenient:
		return "lenient"
	case PolicyStrict:
		return "strict"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

// ParsePolicy resolves "lenient" or "strict".
func ParsePolicy(name string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "lenient":
		return PolicyLenient, nil
	case "strict":
		return PolicyStrict, nil
	default:
		return 0, fmt.Errorf("unknown grading policy %q", name)
	}
}

// Verdict reasons.
const (
	ReasonMatch     = "match"
	ReasonMismatch  = "mismatch"
	ReasonUnparsed  = "answer_unparsed"
	ReasonCancelled = "cancelled"
)

// Verdict is the outcome of grading one answer.
type Verdict struct {
	Category  domain.Category `json:"category"`
	Correct   bool            `json:"correct"`
	Reason    string          `json:"reason"`
	Policy    string          `json:"policy"`
	Answer    domain.Value    `json:"answer"`
	Reference domain.Value    `json:"reference"`
}

// Config holds configuration for the grader.
type Config struct {
	Policy Policy
}

// DefaultConfig returns a default configuration.
func DefaultConfig() Config {
	return Config{Policy: PolicyLenient}
}

// Validate checks if the configuration is valid.
func (c Config) Validate() error {
	if c.Policy != PolicyLenient && c.Policy != PolicyStrict {
		return fmt.Errorf("unknown grading policy %d", int(c.Policy))
	}
	return nil
}

// Grader compares a submitted answer against the reference answer after
// normalizing both with the same category.
type Grader struct {
	config     Config
	logger     ports.Logger
	dispatcher ports.Dispatcher
}

// NewGrader creates a new grader.
func NewGrader(config Config, logger ports.Logger, dispatcher ports.Dispatcher) (*Grader, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &Grader{
		config:     config,
		logger:     logger,
		dispatcher: dispatcher,
	}, nil
}

// Grade grades answer with the configured policy.
func (g *Grader) Grade(ctx context.Context, category domain.Category, answer, reference string) Verdict {
	return g.GradeWith(ctx, g.config.Policy, category, answer, reference)
}

// GradeWith grades answer with an explicit policy.
func (g *Grader) GradeWith(ctx context.Context, policy Policy, category domain.Category, answer, reference string) Verdict {
	verdict := Verdict{
		Category: category,
		Policy:   policy.String(),
	}

	select {
	case <-ctx.Done():
		g.logger.Error("Grading cancelled", "error", ctx.Err())
		verdict.Reason = ReasonCancelled
		return verdict
	default:
	}

	verdict.Answer = g.dispatcher.Normalize(category, answer)
	verdict.Reference = g.dispatcher.Normalize(category, reference)

	if !verdict.Reference.Parsed() {
		g.logger.Warn("Reference answer did not parse",
			"category", category.String(),
			"reference", reference,
		)
	}

	switch {
	case policy == PolicyStrict && !verdict.Answer.Parsed():
		verdict.Reason = ReasonUnparsed
	case verdict.Answer.Equal(verdict.Reference):
		verdict.Correct = true
		verdict.Reason = ReasonMatch
	default:
		verdict.Reason = ReasonMismatch
	}

	g.logger.Debug("Graded answer",
		"category", category.String(),
		"policy", verdict.Policy,
		"correct", verdict.Correct,
		"reason", verdict.Reason,
	)
	return verdict
}
