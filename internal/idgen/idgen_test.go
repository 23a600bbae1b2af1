package idgen_test

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sealstore/internal/domain"
	"sealstore/internal/idgen"
)

func TestUUID_Generate(t *testing.T) {
	gen := idgen.UUID{}

	a := gen.Generate()
	b := gen.Generate()

	require.NotEqual(t, a, b)
	parsed, err := uuid.Parse(a.String())
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
}

func TestSequence_Generate(t *testing.T) {
	seq := idgen.NewSequence(0)

	assert.Equal(t, domain.ID("1"), seq.Generate())
	assert.Equal(t, domain.ID("2"), seq.Generate())

	offset := idgen.NewSequence(41)
	assert.Equal(t, domain.ID("42"), offset.Generate())
}

func TestSequence_Concurrent(t *testing.T) {
	seq := idgen.NewSequence(0)

	var (
		mu   sync.Mutex
		seen = make(map[domain.ID]struct{})
		wg   sync.WaitGroup
	)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				id := seq.Generate()
				mu.Lock()
				seen[id] = struct{}{}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Len(t, seen, 800)
}
