package stream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/baditaflorin/go_answer_normalization/internal/adapters/logger"
	"github.com/baditaflorin/go_answer_normalization/internal/adapters/normalizer"
	"github.com/baditaflorin/go_answer_normalization/internal/core/dispatch"
	"github.com/baditaflorin/go_answer_normalization/internal/core/domain"
	"github.com/baditaflorin/go_answer_normalization/internal/core/grading"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type service struct {
	*dispatch.Dispatcher
	grader *grading.Grader
}

func (s service) Grade(ctx context.Context, category domain.Category, answer, reference string) grading.Verdict {
	return s.grader.Grade(ctx, category, answer, reference)
}

func newTestProcessor(t *testing.T, config Config) *Processor {
	t.Helper()
	d := dispatch.NewDispatcher(logger.NewNop(), normalizer.NewNormalizerFactory())
	g, err := grading.NewGrader(grading.DefaultConfig(), logger.NewNop(), d)
	require.NoError(t, err)
	return NewProcessor(logger.NewNop(), service{Dispatcher: d, grader: g}, config)
}

func decodeResults(t *testing.T, out *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var results []map[string]interface{}
	dec := json.NewDecoder(out)
	for dec.More() {
		var r map[string]interface{}
		require.NoError(t, dec.Decode(&r))
		results = append(results, r)
	}
	return results
}

func TestProcess(t *testing.T) {
	input := strings.Join([]string{
		"# category, answer, reference",
		"price\t$1,234.50",
		"",
		"time\t3.15 PM\t15:15\r",
		"date\t21/03/2024\t21st March, 2024",
		"mixed",
	}, "\n")

	p := newTestProcessor(t, Config{BatchSize: 1, Workers: 3})
	var out bytes.Buffer
	stats, err := p.Process(context.Background(), strings.NewReader(input), &out)
	require.NoError(t, err)

	assert.Equal(t, Stats{Records: 4, Normalized: 1, Graded: 2, Correct: 1, Invalid: 1}, stats)

	results := decodeResults(t, &out)
	require.Len(t, results, 4)

	assert.EqualValues(t, 2, results[0]["line"])
	assert.Equal(t, "1234.5", results[0]["value"].(map[string]interface{})["text"])

	assert.EqualValues(t, 4, results[1]["line"])
	assert.Equal(t, true, results[1]["verdict"].(map[string]interface{})["correct"])

	assert.EqualValues(t, 5, results[2]["line"])
	assert.Equal(t, false, results[2]["verdict"].(map[string]interface{})["correct"])

	assert.EqualValues(t, 6, results[3]["line"])
	assert.Contains(t, results[3]["error"], "expected 2 or 3")
}

func TestProcessKeepsOrder(t *testing.T) {
	var in strings.Builder
	for i := 0; i < 1000; i++ {
		fmt.Fprintf(&in, "large_number\t%d,000\n", i)
	}

	p := newTestProcessor(t, Config{BatchSize: 7, Workers: 8})
	var out bytes.Buffer
	stats, err := p.Process(context.Background(), strings.NewReader(in.String()), &out)
	require.NoError(t, err)
	assert.Equal(t, 1000, stats.Normalized)

	results := decodeResults(t, &out)
	require.Len(t, results, 1000)
	for i, r := range results {
		assert.EqualValues(t, i+1, r["line"])
		assert.Equal(t, fmt.Sprint(i*1000), r["value"].(map[string]interface{})["text"])
	}
}

func TestProcessEmptyInput(t *testing.T) {
	p := newTestProcessor(t, Config{})
	var out bytes.Buffer
	stats, err := p.Process(context.Background(), strings.NewReader(""), &out)
	require.NoError(t, err)
	assert.Zero(t, stats.Records)
	assert.Zero(t, out.Len())
}

func TestProcessCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := newTestProcessor(t, Config{BatchSize: 1, Workers: 1})
	_, err := p.Process(ctx, strings.NewReader("price\t1\nprice\t2\n"), &bytes.Buffer{})
	assert.ErrorIs(t, err, context.Canceled)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestProcessWriteError(t *testing.T) {
	p := newTestProcessor(t, Config{BatchSize: 1, Workers: 2})
	_, err := p.Process(context.Background(), strings.NewReader("price\t1\nprice\t2\nprice\t3\n"), failingWriter{})
	assert.ErrorContains(t, err, "disk full")
}

func TestProcessLineTooLong(t *testing.T) {
	p := newTestProcessor(t, Config{})
	long := "mixed\t" + strings.Repeat("a", MaxLineSize+1)
	_, err := p.Process(context.Background(), strings.NewReader(long), &bytes.Buffer{})
	assert.Error(t, err)
}
