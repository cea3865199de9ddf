// Package dedup keeps a process-wide map from content hash to the first
// output path written with that content. Byte-identical tracks resolve to
// a single physical file.
package dedup

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"
)

// Registry is safe for concurrent use. Construct one per run and pass it
// by handle; there is no package-level instance.
type Registry struct {
	mu         sync.Mutex
	canonical  map[string]string // hash -> first output path
	duplicates int
	bytesSaved int64
}

type Report struct {
	UniqueFiles int   `json:"total_unique_files"`
	Duplicates  int   `json:"duplicates_found"`
	BytesSaved  int64 `json:"bytes_saved"`
}

func NewRegistry() *Registry {
	return &Registry{canonical: make(map[string]string)}
}

func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// Register performs the atomic check-then-insert. The first caller for a
// given content wins and must write the file at path; later callers get
// the canonical path back and drop their buffer.
func (r *Registry) Register(data []byte, path string) (string, bool) {
	hash := Hash(data)

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.canonical[hash]; ok {
		r.duplicates++
		r.bytesSaved += int64(len(data))
		return existing, true
	}
	r.canonical[hash] = path
	return path, false
}

// Forget drops the hash entry if path is still its canonical path. Used
// when the physical write after a winning Register fails, so a later
// identical buffer doesn't point at a file that never landed.
func (r *Registry) Forget(data []byte, path string) {
	hash := Hash(data)

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.canonical[hash]; ok && existing == path {
		delete(r.canonical, hash)
	}
}

func (r *Registry) GetReport() Report {
	r.mu.Lock()
	defer r.mu.Unlock()

	return Report{
		UniqueFiles: len(r.canonical),
		Duplicates:  r.duplicates,
		BytesSaved:  r.bytesSaved,
	}
}
