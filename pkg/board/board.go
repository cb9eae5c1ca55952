package board

import (
	"slices"

	"github.com/matzehuels/dropgrid/pkg/dnd"
	"github.com/matzehuels/dropgrid/pkg/errors"
	"github.com/matzehuels/dropgrid/pkg/registry"
	"github.com/matzehuels/dropgrid/pkg/reorder"
)

// Default grid dimensions for zones that do not set them.
const (
	DefaultColumns = 4
	DefaultRows    = 5
)

// Item is one draggable entry.
type Item struct {
	ID    registry.ItemID `toml:"id" json:"id"`
	Label string          `toml:"label" json:"label"`
}

// Zone is one drop zone and its items in display order.
type Zone struct {
	ID      registry.ContainerID `toml:"id" json:"id"`
	Title   string               `toml:"title,omitempty" json:"title,omitempty"`
	Columns int                  `toml:"columns" json:"columns"`
	Rows    int                  `toml:"rows" json:"rows"`

	// Break starts a new layout row with this zone.
	Break bool   `toml:"break,omitempty" json:"break,omitempty"`
	Items []Item `toml:"items" json:"items"`
}

// ItemIDs returns the ids of the zone's items in order.
func (z *Zone) ItemIDs() []registry.ItemID {
	ids := make([]registry.ItemID, len(z.Items))
	for i, it := range z.Items {
		ids[i] = it.ID
	}
	return ids
}

// Name returns the title, falling back to the id.
func (z *Zone) Name() string {
	if z.Title != "" {
		return z.Title
	}
	return string(z.ID)
}

// Board is a named set of zones.
type Board struct {
	Name  string `toml:"name" json:"name"`
	Zones []Zone `toml:"zones" json:"zones"`
}

// Zone returns the zone with the given id.
func (b *Board) Zone(id registry.ContainerID) (*Zone, bool) {
	for i := range b.Zones {
		if b.Zones[i].ID == id {
			return &b.Zones[i], true
		}
	}
	return nil, false
}

// ZoneIDs returns the zone ids in display order.
func (b *Board) ZoneIDs() []registry.ContainerID {
	ids := make([]registry.ContainerID, len(b.Zones))
	for i, z := range b.Zones {
		ids[i] = z.ID
	}
	return ids
}

// Find returns the zone holding item and its index.
func (b *Board) Find(item registry.ItemID) (*Zone, int, bool) {
	for i := range b.Zones {
		z := &b.Zones[i]
		if idx := slices.IndexFunc(z.Items, func(it Item) bool { return it.ID == item }); idx >= 0 {
			return z, idx, true
		}
	}
	return nil, -1, false
}

// ItemCount returns the number of items across all zones.
func (b *Board) ItemCount() int {
	n := 0
	for _, z := range b.Zones {
		n += len(z.Items)
	}
	return n
}

// Clone returns a deep copy of b.
func (b *Board) Clone() *Board {
	out := &Board{Name: b.Name, Zones: slices.Clone(b.Zones)}
	for i := range out.Zones {
		out.Zones[i].Items = slices.Clone(out.Zones[i].Items)
	}
	return out
}

// Only returns a copy of b restricted to the given zones, keeping the
// board's zone order. Unknown ids are ignored.
func (b *Board) Only(ids ...registry.ContainerID) *Board {
	out := &Board{Name: b.Name}
	for _, z := range b.Zones {
		if slices.Contains(ids, z.ID) {
			z.Items = slices.Clone(z.Items)
			out.Zones = append(out.Zones, z)
		}
	}
	return out
}

// Without returns a copy of b without the given zones.
func (b *Board) Without(ids ...registry.ContainerID) *Board {
	out := &Board{Name: b.Name}
	for _, z := range b.Zones {
		if !slices.Contains(ids, z.ID) {
			z.Items = slices.Clone(z.Items)
			out.Zones = append(out.Zones, z)
		}
	}
	return out
}

// Normalize fills in defaults: grid dimensions for zones that have none.
func (b *Board) Normalize() {
	for i := range b.Zones {
		z := &b.Zones[i]
		if z.Columns <= 0 {
			z.Columns = DefaultColumns
		}
		if z.Rows <= 0 {
			z.Rows = DefaultRows
		}
	}
}

// Validate checks names, ids, and grid sizes. Item ids must be unique across
// the whole board because the drag registry is keyed by item id.
func (b *Board) Validate() error {
	if err := errors.ValidateBoardName(b.Name); err != nil {
		return err
	}
	if len(b.Zones) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "board %q has no zones", b.Name)
	}

	zones := make(map[registry.ContainerID]bool, len(b.Zones))
	items := make(map[registry.ItemID]registry.ContainerID, b.ItemCount())
	for _, z := range b.Zones {
		if err := errors.ValidateID("zone", string(z.ID)); err != nil {
			return err
		}
		if zones[z.ID] {
			return errors.New(errors.ErrCodeDuplicateID, "zone %q defined twice", z.ID)
		}
		zones[z.ID] = true

		if z.Columns <= 0 || z.Rows <= 0 {
			return errors.New(errors.ErrCodeInvalidGrid, "zone %q: columns and rows must be positive", z.ID)
		}
		for _, it := range z.Items {
			if err := errors.ValidateID("item", string(it.ID)); err != nil {
				return errors.Wrap(errors.ErrCodeInvalidID, err, "zone %q", z.ID)
			}
			if prev, dup := items[it.ID]; dup {
				return errors.New(errors.ErrCodeDuplicateID, "item %q appears in %q and %q", it.ID, prev, z.ID)
			}
			items[it.ID] = z.ID
		}
	}
	return nil
}

// Apply commits a drop and returns the new board. b is not modified.
//
// A change without a target zone reorders within the source zone
// (reorder.Swap); otherwise the item moves between zones (reorder.Move).
func (b *Board) Apply(ch dnd.Change) (*Board, error) {
	src, ok := b.Zone(ch.SourceContainerID)
	if !ok {
		return nil, errors.New(errors.ErrCodeUnknownContainer, "zone %q not found", ch.SourceContainerID)
	}

	out := b.Clone()
	newSrc, _ := out.Zone(src.ID)

	if !ch.IsMove() || ch.TargetContainerID == ch.SourceContainerID {
		items, err := reorder.Swap(src.Items, ch.SourceIndex, ch.TargetIndex)
		if err != nil {
			return nil, err
		}
		newSrc.Items = items
		return out, nil
	}

	dst, ok := b.Zone(ch.TargetContainerID)
	if !ok {
		return nil, errors.New(errors.ErrCodeUnknownContainer, "zone %q not found", ch.TargetContainerID)
	}
	srcItems, dstItems, err := reorder.Move(src.Items, dst.Items, ch.SourceIndex, ch.TargetIndex)
	if err != nil {
		return nil, err
	}
	newDst, _ := out.Zone(dst.ID)
	newSrc.Items, newDst.Items = srcItems, dstItems
	return out, nil
}
