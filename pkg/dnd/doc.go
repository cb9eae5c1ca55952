// Package dnd implements the drag session state machine for grid
// drag-and-drop and the context that connects it to a host application.
//
// # Overview
//
// A drag goes through two phases:
//
//	Idle --DragStart--> Dragging --DragMove--> Dragging
//	                       |
//	                       +--DragEnd----> Idle   (OnDragEnd, OnChange)
//	                       +--DragCancel-> Idle   (OnDragCancel)
//
// [Store] holds the session and performs the transitions. On every
// DragMove it asks a [collision.Resolver] which container and cell the
// pointer is over. Events that make no sense in the current phase are
// ignored: a DragMove, DragEnd, or DragCancel while Idle does nothing, and
// a second DragStart while Dragging does nothing either. The only error is
// a DragStart for an item the registry does not know.
//
// # Context
//
// [Context] is what a host uses. It owns a [registry.Registry] and a Store,
// forwards layout registration to the registry, forwards pointer events to
// the store, and invokes the host's [Hooks]. After OnDragEnd it derives a
// [Change] and passes it to OnChange:
//
//	ctx := dnd.NewContext(dnd.Hooks{
//	    OnChange: func(ch dnd.Change) {
//	        if ch.IsMove() {
//	            src, dst, _ := reorder.Move(zones[ch.SourceContainerID], zones[ch.TargetContainerID], ch.SourceIndex, ch.TargetIndex)
//	            // commit src and dst
//	        } else {
//	            next, _ := reorder.Swap(zones[ch.SourceContainerID], ch.SourceIndex, ch.TargetIndex)
//	            // commit next
//	        }
//	    },
//	}, dnd.Options{})
//
// The store never changes item order itself. After committing, the host
// calls [Context.SetItemOrder] so the next drag sees the new arrangement.
//
// # Rendering
//
// [Context.Snapshot] returns the session together with the dragged node,
// the container under the pointer, and the [Transform] to paint the dragged
// item with: the pointer delta plus a constant lift scale ([DefaultScale])
// while dragging, [Identity] otherwise.
//
// # Reducer Form
//
// Hosts that route input through a message loop can build [Action] values
// with [Start], [MoveTo], [End], and [Cancel] and feed them to
// [Context.Dispatch].
package dnd
