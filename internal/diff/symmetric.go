package diff

import (
	"reflect"
	"sort"
	"strings"

	"github.com/platebook/platebook/internal/models"
)

// FieldDiff is one differing field between the local and remote copies of a
// record, identified by its dotted path. A nil side means the field is absent
// on that side. Both values are carried for human inspection.
type FieldDiff struct {
	Path   string
	Local  any
	Remote any
}

// Symmetric compares local and remote field maps directly (not against a
// baseline) and reports every differing leaf. Envelope fields such as version
// and sync metadata never appear here because they are not part of the field
// map. Results are sorted by path for stable presentation.
func Symmetric(local, remote models.Fields) []FieldDiff {
	var diffs []FieldDiff
	walkSymmetric("", local, remote, &diffs)
	sort.Slice(diffs, func(i, j int) bool { return diffs[i].Path < diffs[j].Path })
	return diffs
}

func walkSymmetric(prefix string, local, remote models.Fields, out *[]FieldDiff) {
	seen := make(map[string]struct{}, len(local)+len(remote))
	for key := range local {
		seen[key] = struct{}{}
	}
	for key := range remote {
		seen[key] = struct{}{}
	}

	for key := range seen {
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}
		localVal, inLocal := local[key]
		remoteVal, inRemote := remote[key]

		localMap, localIsMap := asMap(localVal)
		remoteMap, remoteIsMap := asMap(remoteVal)
		if inLocal && inRemote && localIsMap && remoteIsMap {
			walkSymmetric(path, localMap, remoteMap, out)
			continue
		}
		if inLocal && inRemote && reflect.DeepEqual(localVal, remoteVal) {
			continue
		}
		*out = append(*out, FieldDiff{Path: path, Local: localVal, Remote: remoteVal})
	}
}

// GetPath reads the value at a dotted path. The second result is false when
// any segment of the path is absent.
func GetPath(f models.Fields, path string) (any, bool) {
	parts := strings.Split(path, ".")
	cur := f
	for _, part := range parts[:len(parts)-1] {
		next, ok := asMap(cur[part])
		if !ok {
			return nil, false
		}
		cur = next
	}
	val, ok := cur[parts[len(parts)-1]]
	return val, ok
}

// SetPath writes a value at a dotted path, creating intermediate maps as
// needed. A nil value deletes the leaf. Used when assembling a merged record
// from per-field resolution choices.
func SetPath(f models.Fields, path string, value any) {
	parts := strings.Split(path, ".")
	cur := f
	for _, part := range parts[:len(parts)-1] {
		next, ok := asMap(cur[part])
		if !ok {
			next = models.Fields{}
			cur[part] = map[string]any(next)
		}
		cur = next
	}
	leaf := parts[len(parts)-1]
	if value == nil {
		delete(cur, leaf)
		return
	}
	cur[leaf] = models.Fields{"v": value}.Clone()["v"]
}
