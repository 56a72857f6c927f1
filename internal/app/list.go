package app

import (
	"context"
	"fmt"
)

func (a *App) List(ctx context.Context) error {
	items := a.manager.Inventory()

	noun := "items"
	if len(items) == 1 {
		noun = "item"
	}
	fmt.Fprintf(a.out, "Your inventory: %d %s\n", len(items), noun)

	for _, item := range items {
		fmt.Fprintf(a.out, "%s  %-20s  %8.2f  x%d  %s\n",
			item.ID, item.Name, item.Price, item.TotalStock, item.Description)
	}
	return nil
}
