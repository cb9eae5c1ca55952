package board

import (
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/matzehuels/dropgrid/pkg/errors"
	"github.com/matzehuels/dropgrid/pkg/registry"
)

// maxSuggestDistance bounds how different a suggestion may be from the input.
const maxSuggestDistance = 3

// Suggest returns the candidate closest to name by edit distance, ignoring
// case, or "" when nothing is close enough.
func Suggest(name string, candidates []string) string {
	best, bestDist := "", maxSuggestDistance+1
	lower := strings.ToLower(name)
	for _, c := range candidates {
		d := levenshtein.ComputeDistance(lower, strings.ToLower(c))
		if d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}

// LookupZone returns the zone with the given id. The UNKNOWN_CONTAINER error
// names the closest existing zone when there is one.
func (b *Board) LookupZone(id string) (*Zone, error) {
	if z, ok := b.Zone(registry.ContainerID(id)); ok {
		return z, nil
	}
	names := make([]string, len(b.Zones))
	for i, z := range b.Zones {
		names[i] = string(z.ID)
	}
	return nil, notFound(errors.ErrCodeUnknownContainer, "zone", id, names)
}

// LookupItem resolves an item by id or, failing that, by label. The
// UNKNOWN_ITEM error names the closest id or label when there is one.
func (b *Board) LookupItem(ref string) (registry.ItemID, error) {
	if _, _, ok := b.Find(registry.ItemID(ref)); ok {
		return registry.ItemID(ref), nil
	}

	var names []string
	for _, z := range b.Zones {
		for _, it := range z.Items {
			if it.Label != "" && strings.EqualFold(it.Label, ref) {
				return it.ID, nil
			}
			names = append(names, string(it.ID))
			if it.Label != "" {
				names = append(names, it.Label)
			}
		}
	}
	return "", notFound(errors.ErrCodeUnknownItem, "item", ref, names)
}

func notFound(code errors.Code, kind, name string, candidates []string) error {
	if s := Suggest(name, candidates); s != "" {
		return errors.New(code, "unknown %s %q (did you mean %q?)", kind, name, s)
	}
	return errors.New(code, "unknown %s %q", kind, name)
}
