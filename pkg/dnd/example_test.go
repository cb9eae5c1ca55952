package dnd_test

import (
	"fmt"

	"github.com/matzehuels/dropgrid/pkg/dnd"
	"github.com/matzehuels/dropgrid/pkg/geom"
	"github.com/matzehuels/dropgrid/pkg/registry"
	"github.com/matzehuels/dropgrid/pkg/reorder"
)

func ExampleContext() {
	zones := map[registry.ContainerID][]registry.ItemID{
		"left":  {"A", "B"},
		"right": {"X", "Y"},
	}

	ctx := dnd.NewContext(dnd.Hooks{
		OnChange: func(ch dnd.Change) {
			if !ch.IsMove() {
				zones[ch.SourceContainerID], _ = reorder.Swap(zones[ch.SourceContainerID], ch.SourceIndex, ch.TargetIndex)
				return
			}
			src, dst, err := reorder.Move(zones[ch.SourceContainerID], zones[ch.TargetContainerID], ch.SourceIndex, ch.TargetIndex)
			if err != nil {
				fmt.Println(err)
				return
			}
			zones[ch.SourceContainerID], zones[ch.TargetContainerID] = src, dst
		},
	}, dnd.Options{})

	grid := geom.GridSpec{Columns: 4, RowHeight: 70}
	_ = ctx.RegisterDroppable("left", geom.R(0, 0, 400, 400), grid, zones["left"])
	_ = ctx.RegisterDroppable("right", geom.R(420, 0, 400, 400), grid, zones["right"])
	_ = ctx.RegisterDraggable("A", "left", geom.R(0, 0, 100, 70))

	_ = ctx.DragStart("A", geom.Pt(50, 35))
	ctx.DragMove(geom.Pt(530, 35))
	fmt.Println(ctx.Snapshot().Transform)
	ctx.DragEnd()

	fmt.Println(zones["left"], zones["right"])
	// Output:
	// translate3d(480px, 0px, 0) scaleX(1.06) scaleY(1.06)
	// [B] [X A Y]
}

func ExampleContext_unknownItem() {
	ctx := dnd.NewContext(dnd.Hooks{}, dnd.Options{})
	err := ctx.DragStart("ghost", geom.Pt(0, 0))
	fmt.Println(err)
	fmt.Println(ctx.Snapshot().Session.Phase)
	// Output:
	// UNKNOWN_ITEM: item "ghost" is not registered
	// idle
}
