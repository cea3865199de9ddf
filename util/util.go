package util

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jsphweid/trackdex/constants"
	"golang.org/x/exp/constraints"
)

// ListMidiFiles returns the names of all midi files directly inside dir
// (no recursion), sorted for deterministic dispatch order.
func ListMidiFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var res []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if ext == ".mid" || ext == ".midi" {
			res = append(res, name)
		}
	}
	sort.Strings(res)
	return res, nil
}

// SanitizeFilename makes a name safe for the filesystem: invalid characters
// become dashes, spaces become underscores, length is capped.
func SanitizeFilename(name string) string {
	const invalid = `<>:"/\|?*`
	var b strings.Builder
	for _, r := range name {
		switch {
		case strings.ContainsRune(invalid, r):
			b.WriteRune('-')
		case r == ' ':
			b.WriteRune('_')
		default:
			b.WriteRune(r)
		}
	}
	res := b.String()
	if len(res) > constants.MaxFilenameLen {
		res = res[:constants.MaxFilenameLen]
	}
	return res
}

func GetKeysSorted[B any](m map[string]B) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func Min[A constraints.Ordered](num1 A, num2 A) A {
	if num1 > num2 {
		return num2
	}
	return num1
}
