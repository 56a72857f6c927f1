package app

import (
	"context"
	"fmt"
)

func (a *App) Remove(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "Enter item id to remove", a.out)
	if err != nil {
		return err
	}

	if err := a.manager.RemoveItem(ctx, id); err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	fmt.Fprintf(a.out, "Removed %s\n", id)
	return nil
}
