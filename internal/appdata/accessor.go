// Package appdata maps the three persisted records — registered users,
// current session, full inventory — onto the key-value store. Reads never
// fail: a missing key, a storage error, or a malformed document all come
// back as absence, so a damaged store looks empty instead of crashing the
// app. Writes do report errors so callers can keep their in-memory state
// consistent with what actually landed on disk.
package appdata

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/bluemoon/stockkeeper/internal/logging"
	"github.com/bluemoon/stockkeeper/internal/models"
	"github.com/bluemoon/stockkeeper/internal/storage"
)

// Storage keys. These exact strings are the on-disk contract.
const (
	UsersKey       = "my-app-users"
	CurrentUserKey = "my-app-current-user"
	InventoryKey   = "my-app-inventory"
)

type Accessor struct {
	store storage.Store
	log   logging.Logger
}

func NewAccessor(store storage.Store, log logging.Logger) *Accessor {
	return &Accessor{store: store, log: log}
}

// read fetches key and decodes it into v. Absence and corruption both
// return false; only corruption and I/O failures are logged.
func (a *Accessor) read(ctx context.Context, key string, v any) bool {
	data, err := a.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			a.log.Warn(ctx, "storage read failed, treating as absent", "key", key, "error", err)
		}
		return false
	}
	if err := json.Unmarshal([]byte(data), v); err != nil {
		a.log.Warn(ctx, "malformed record, treating as absent", "key", key, "error", err)
		return false
	}
	return true
}

func (a *Accessor) write(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := a.store.Set(ctx, key, string(data)); err != nil {
		return fmt.Errorf("persist %s: %w", key, err)
	}
	return nil
}

// Users returns the registered-users collection, or nil if absent.
func (a *Accessor) Users(ctx context.Context) []models.User {
	var users []models.User
	if !a.read(ctx, UsersKey, &users) {
		return nil
	}
	return users
}

// CurrentUser returns the persisted session record, or nil if signed out.
func (a *Accessor) CurrentUser(ctx context.Context) *models.User {
	var user models.User
	if !a.read(ctx, CurrentUserKey, &user) {
		return nil
	}
	return &user
}

// Inventory returns the full persisted inventory across all users,
// or nil if absent.
func (a *Accessor) Inventory(ctx context.Context) []models.InventoryItem {
	var items []models.InventoryItem
	if !a.read(ctx, InventoryKey, &items) {
		return nil
	}
	return items
}

func (a *Accessor) SaveUsers(ctx context.Context, users []models.User) error {
	return a.write(ctx, UsersKey, users)
}

func (a *Accessor) SaveCurrentUser(ctx context.Context, user models.User) error {
	return a.write(ctx, CurrentUserKey, user)
}

func (a *Accessor) ClearCurrentUser(ctx context.Context) error {
	if err := a.store.Remove(ctx, CurrentUserKey); err != nil {
		return fmt.Errorf("remove %s: %w", CurrentUserKey, err)
	}
	return nil
}

func (a *Accessor) SaveInventory(ctx context.Context, items []models.InventoryItem) error {
	return a.write(ctx, InventoryKey, items)
}
