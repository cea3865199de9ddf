package dedup

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFirstOccurrenceWins(t *testing.T) {
	r := NewRegistry()

	path, dup := r.Register([]byte("abc"), "out/a.mid")

	assert := assert.New(t)
	assert.False(dup)
	assert.Equal("out/a.mid", path)
}

func TestIdenticalContentIsDuplicate(t *testing.T) {
	r := NewRegistry()
	r.Register([]byte("abc"), "out/a.mid")

	path, dup := r.Register([]byte("abc"), "out/b.mid")

	assert := assert.New(t)
	assert.True(dup)
	assert.Equal("out/a.mid", path)

	report := r.GetReport()
	assert.Equal(1, report.UniqueFiles)
	assert.Equal(1, report.Duplicates)
	assert.Equal(int64(3), report.BytesSaved)
}

func TestDifferentContentIsNotDuplicate(t *testing.T) {
	r := NewRegistry()
	r.Register([]byte("abc"), "out/a.mid")

	_, dup := r.Register([]byte("abd"), "out/b.mid")

	assert := assert.New(t)
	assert.False(dup)
	assert.Equal(2, r.GetReport().UniqueFiles)
}

func TestForgetReleasesReservation(t *testing.T) {
	r := NewRegistry()
	r.Register([]byte("abc"), "out/a.mid")
	r.Forget([]byte("abc"), "out/a.mid")

	path, dup := r.Register([]byte("abc"), "out/b.mid")

	assert := assert.New(t)
	assert.False(dup)
	assert.Equal("out/b.mid", path)
}

func TestForgetIgnoresNonCanonicalPath(t *testing.T) {
	r := NewRegistry()
	r.Register([]byte("abc"), "out/a.mid")
	r.Forget([]byte("abc"), "out/other.mid")

	_, dup := r.Register([]byte("abc"), "out/b.mid")
	assert.True(t, dup)
}

func TestConcurrentRegistersHaveOneWinner(t *testing.T) {
	r := NewRegistry()
	content := []byte("identical track bytes")

	var wg sync.WaitGroup
	wins := make(chan string, 100)
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			path := fmt.Sprintf("out/%v.mid", i)
			if _, dup := r.Register(content, path); !dup {
				wins <- path
			}
		}(i)
	}
	wg.Wait()
	close(wins)

	var winners []string
	for w := range wins {
		winners = append(winners, w)
	}

	assert := assert.New(t)
	assert.Len(winners, 1)
	assert.Equal(99, r.GetReport().Duplicates)
}

func TestHashMatchesByteEquality(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(Hash([]byte("abc")), Hash([]byte("abc")))
	assert.NotEqual(Hash([]byte("abc")), Hash([]byte("abd")))
}
