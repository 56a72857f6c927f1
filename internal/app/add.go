package app

import (
	"context"
	"fmt"

	"github.com/bluemoon/stockkeeper/internal/models"
)

func (a *App) Add(ctx context.Context) error {
	draft, err := a.readItemForm(models.InventoryItem{})
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	stored, err := a.manager.AddItem(ctx, draft)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	fmt.Fprintf(a.out, "Added %s (%s)\n", stored.Name, stored.ID)
	return nil
}

// readItemForm prompts for the item fields and validates them. The passed
// item provides defaults shown in the prompts for the edit flow.
func (a *App) readItemForm(current models.InventoryItem) (models.InventoryItem, error) {
	name, err := GetSimpleText(a.reader, prompt("Item name", current.Name), a.out)
	if err != nil {
		return models.InventoryItem{}, err
	}

	price, err := GetFloat(a.reader, prompt("Price", fmt.Sprintf("%v", current.Price)), a.out)
	if err != nil {
		return models.InventoryItem{}, err
	}

	stock, err := GetInt(a.reader, prompt("Total stock", fmt.Sprintf("%d", current.TotalStock)), a.out)
	if err != nil {
		return models.InventoryItem{}, err
	}

	description, err := GetSimpleText(a.reader, prompt("Description", current.Description), a.out)
	if err != nil {
		return models.InventoryItem{}, err
	}

	item := models.InventoryItem{
		ID:          current.ID,
		Name:        name,
		Price:       price,
		TotalStock:  stock,
		Description: description,
	}
	if err := models.ValidateItem(item); err != nil {
		return models.InventoryItem{}, err
	}
	return item, nil
}

func prompt(label, current string) string {
	if current == "" {
		return label
	}
	return fmt.Sprintf("%s (was: %s)", label, current)
}
