package app

import (
	"context"
	"fmt"
)

func (a *App) Edit(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "Enter item id to edit", a.out)
	if err != nil {
		return err
	}

	var found bool
	for _, item := range a.manager.Inventory() {
		if item.ID == id {
			found = true

			draft, err := a.readItemForm(item)
			if err != nil {
				fmt.Fprintln(a.out, err.Error())
				return err
			}
			draft.ID = item.ID

			if err := a.manager.EditItem(ctx, draft); err != nil {
				fmt.Fprintln(a.out, err.Error())
				return err
			}
			fmt.Fprintf(a.out, "Updated %s\n", draft.ID)
			break
		}
	}

	if !found {
		fmt.Fprintf(a.out, "No item with id %s\n", id)
	}
	return nil
}
