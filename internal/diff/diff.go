// Package diff computes field-level deltas between record field maps.
//
// Changed produces the minimal delta used for partial updates: only the
// deepest differing leaf paths are included, reconstructed as minimal nested
// objects, so the server can apply surgical field writes. Symmetric produces
// a presentation-oriented local-vs-remote comparison used by the conflict
// resolution flow.
package diff

import (
	"reflect"

	"github.com/platebook/platebook/internal/models"
)

// Changed returns the minimal set of fields in current that differ from
// baseline. A field present in baseline but absent from current is reported
// as an explicit nil so the server clears it. An empty result means the two
// field sets are deep-equal; pushing such a record must not produce a
// network call.
func Changed(current, baseline models.Fields) models.Fields {
	out := models.Fields{}
	for key := range current {
		curVal := current[key]
		baseVal, inBase := baseline[key]
		if !inBase {
			out[key] = curVal
			continue
		}
		curMap, curIsMap := asMap(curVal)
		baseMap, baseIsMap := asMap(baseVal)
		if curIsMap && baseIsMap {
			sub := Changed(curMap, baseMap)
			if len(sub) > 0 {
				out[key] = map[string]any(sub)
			}
			continue
		}
		if !reflect.DeepEqual(curVal, baseVal) {
			out[key] = curVal
		}
	}
	for key := range baseline {
		if _, ok := current[key]; !ok {
			out[key] = nil
		}
	}
	return out
}

// Apply merges a delta produced by Changed into base and returns the result.
// Nested maps are merged recursively; a nil delta value removes the field.
// Neither input is mutated.
func Apply(base, delta models.Fields) models.Fields {
	out := base.Clone()
	if out == nil {
		out = models.Fields{}
	}
	for key, deltaVal := range delta {
		if deltaVal == nil {
			delete(out, key)
			continue
		}
		deltaMap, deltaIsMap := asMap(deltaVal)
		baseMap, baseIsMap := asMap(out[key])
		if deltaIsMap && baseIsMap {
			out[key] = map[string]any(Apply(baseMap, deltaMap))
			continue
		}
		out[key] = models.Fields{"v": deltaVal}.Clone()["v"]
	}
	return out
}

func asMap(v any) (models.Fields, bool) {
	switch m := v.(type) {
	case map[string]any:
		return models.Fields(m), true
	case models.Fields:
		return m, true
	default:
		return nil, false
	}
}
