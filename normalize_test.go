package answernorm

import (
	"testing"

	"github.com/baditaflorin/go_answer_normalization/pkg/answer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeInput(t *testing.T) {
	t.Run("empty price falls back to text", func(t *testing.T) {
		v := NormalizeInput(answer.Price, "")
		assert.Equal(t, answer.KindText, v.Kind())
		assert.Equal(t, "", v.String())
	})

	numbers := []struct {
		category answer.Category
		in       string
		expected float64
	}{
		{answer.Price, "$1,234.50", 1234.5},
		{answer.LargeNumber, "0", 0},
		{answer.Percentage, "45 %", 45},
		{answer.Decimal, " 3.50 ", 3.5},
	}
	for _, tc := range numbers {
		t.Run(tc.category.String()+" "+tc.in, func(t *testing.T) {
			f, ok := NormalizeInput(tc.category, tc.in).Float()
			require.True(t, ok)
			assert.Equal(t, tc.expected, f)
		})
	}

	t.Run("phone", func(t *testing.T) {
		assert.Equal(t, "+1(555)123-4567", NormalizeInput(answer.Phone, "+1 (555) 123-4567").String())
	})

	t.Run("time", func(t *testing.T) {
		for in, expected := range map[string]int{"3:15pm": 915, "15:15": 915, "3pm": 900} {
			m, ok := NormalizeInput(answer.Time, in).MinutesSinceMidnight()
			require.True(t, ok)
			assert.Equal(t, expected, m, "input %q", in)
		}
	})

	t.Run("date", func(t *testing.T) {
		assert.Equal(t, "21MARCH2024", NormalizeInput(answer.Date, "21st March, 2024").String())
	})

	t.Run("mixed", func(t *testing.T) {
		assert.Equal(t, "AB12CD", NormalizeInput(answer.Mixed, "ab 12 cd").String())
	})

	t.Run("by name", func(t *testing.T) {
		assert.Equal(t, "AB12CD", NormalizeInputName("mixed", "ab 12 cd").String())
		assert.Equal(t, "ab 12 cd", NormalizeInputName("no-such-category", "ab 12 cd").String())
	})
}

func TestGradeWithDefaults(t *testing.T) {
	v := GradeWithDefaults(answer.Price, "1234.5", "$1,234.50")
	assert.True(t, v.Correct)

	v = GradeWithDefaults(answer.Date, "21/03/2024", "21st March, 2024")
	assert.False(t, v.Correct)
}

func TestQuestionCategories(t *testing.T) {
	got := QuestionCategories()
	require.Len(t, got, 8)
	assert.Equal(t, "Date", got[0].ID)
	assert.Equal(t, "Percentage", got[7].ID)
}
