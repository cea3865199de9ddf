// Package tags turns curated tag lists into output folder paths.
package tags

import (
	"path"
	"strings"
)

// Process applies the folder organization rules:
//   - 'medieval' overrides everything else
//   - 'fiddle' is removed
//   - 'folk music' moves to the front
//   - at most 3 tags survive
//   - a single surviving tag gets an 'other' subfolder
//
// Returns the surviving tags and whether the 'other' subfolder applies.
func Process(input []string) ([]string, bool) {
	if len(input) == 0 {
		return []string{"uncategorized"}, false
	}

	for _, t := range input {
		if strings.EqualFold(strings.TrimSpace(t), "medieval") {
			return []string{"medieval"}, false
		}
	}

	var filtered []string
	for _, t := range input {
		if strings.EqualFold(strings.TrimSpace(t), "fiddle") {
			continue
		}
		filtered = append(filtered, t)
	}
	if len(filtered) == 0 {
		return []string{"other"}, false
	}

	for i, t := range filtered {
		if strings.EqualFold(strings.TrimSpace(t), "folk music") {
			filtered = append([]string{filtered[i]}, append(filtered[:i:i], filtered[i+1:]...)...)
			break
		}
	}

	if len(filtered) > 3 {
		filtered = filtered[:3]
	}

	return filtered, len(filtered) == 1
}

// FolderPath builds the relative folder path for a tag list, e.g.
// "folk music/country/bluegrass" or "jazz/other".
func FolderPath(input []string) string {
	tagList, isOther := Process(input)
	res := path.Join(tagList...)
	if isOther {
		res = path.Join(res, "other")
	}
	return res
}
