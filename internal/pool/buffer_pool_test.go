package pool

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringBuilderPoolResets(t *testing.T) {
	p := NewStringBuilderPool()
	sb := p.Get()
	sb.WriteString("dirty")
	p.Put(sb)

	assert.Equal(t, 0, p.Get().Len())
}

func TestCaserPool(t *testing.T) {
	upper, lower := NewUpperPool(), NewLowerPool()

	assert.Equal(t, "AB12CD", upper.String("ab12cd"))
	assert.Equal(t, "STRASSE", upper.String("straße"))
	assert.Equal(t, "3:15 pm", lower.String("3:15 PM"))
	assert.Equal(t, "", upper.String(""))
}

func TestCaserPoolConcurrentUse(t *testing.T) {
	upper := NewUpperPool()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				assert.Equal(t, "ÉCOLE", upper.String("école"))
			}
		}()
	}
	wg.Wait()
}
