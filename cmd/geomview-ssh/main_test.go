package main

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSizeTracker(t *testing.T) {
	st := newSizeTracker(80, 24)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			st.update(100+i, 30+i)
			_, _, _ = st.getSize()
		}()
	}
	wg.Wait()

	st.update(120, 40)
	w, h, err := st.getSize()
	assert.NoError(t, err)
	assert.Equal(t, 120, w)
	assert.Equal(t, 40, h)
}
