package board

import "github.com/matzehuels/dropgrid/pkg/registry"

// DefaultName is the name of the built-in board.
const DefaultName = "drag-between"

// Default returns the built-in board: two zones side by side and a dock
// underneath. With single set, the right zone is left out.
func Default(single bool) *Board {
	b := &Board{
		Name: DefaultName,
		Zones: []Zone{
			{
				ID: "left", Columns: 4, Rows: 5,
				Items: []Item{
					item("1", "ben"), item("2", "joe"), item("3", "jason"),
					item("4", "chris"), item("5", "heather"), item("6", "Richard"),
				},
			},
			{
				ID: "right", Columns: 4, Rows: 5,
				Items: []Item{
					item("7", "george"), item("8", "rupert"), item("9", "alice"),
					item("10", "katherine"), item("11", "pam"), item("12", "katie"),
				},
			},
			{
				ID: "dock", Columns: 4, Rows: 2, Break: true,
				Items: []Item{item("13", "Whatever")},
			},
		},
	}
	if single {
		return b.Without("right")
	}
	return b
}

func item(id, label string) Item {
	return Item{ID: registry.ItemID(id), Label: label}
}
