package answernorm

import (
	"os"

	adapter "github.com/baditaflorin/go_answer_normalization/internal/adapters/logger"
	"github.com/baditaflorin/l"
)

// createDefaultLogger creates the logger behind the package-level functions.
// Per-answer traces are debug level, so in practice it only reports problems
// such as reference answers that do not parse.
func createDefaultLogger() (l.Logger, error) {
	return l.NewStandardFactory().CreateLogger(adapter.DefaultConfig(os.Stderr))
}
