package batch

import (
	"fmt"
	"sync"
	"time"

	"github.com/bep/debounce"
)

// progress prints a debounced "n of m" line so big batches don't emit one
// line per file.
type progress struct {
	mu        sync.Mutex
	total     int
	done      int
	debounced func(func())
}

func newProgress(total int) *progress {
	return &progress{
		total:     total,
		debounced: debounce.New(200 * time.Millisecond),
	}
}

func (p *progress) fileDone() {
	p.mu.Lock()
	p.done++
	count := p.done
	p.mu.Unlock()

	p.debounced(func() {
		fmt.Printf("Processed %v of %v midi files\n", count, p.total)
	})
}

// flush prints the final count unconditionally once the batch is done.
func (p *progress) flush() {
	p.mu.Lock()
	count := p.done
	p.mu.Unlock()
	fmt.Printf("Processed %v of %v midi files\n", count, p.total)
}
