// Package session holds the signed-in user and their visible slice of the
// inventory, and keeps both mirrors consistent with the persisted records.
// Every mutation is written to storage before the in-memory mirror is
// updated, so a failed write leaves memory and disk agreeing on the old
// state. Inventory writes merge against a freshly re-read copy of the full
// persisted collection so one user's edit never clobbers another's items.
package session

import (
	"context"
	"errors"
	"sync"

	"github.com/bluemoon/stockkeeper/internal/appdata"
	"github.com/bluemoon/stockkeeper/internal/logging"
	"github.com/bluemoon/stockkeeper/internal/models"
)

// Sentinel errors. The messages double as the user-facing strings the UI
// shows verbatim, so they must not change.
var (
	ErrWrongPassword = errors.New("Incorrect email/password combination")
	ErrDuplicateName = errors.New("An item with the same name exists already")
	ErrNotSignedIn   = errors.New("no user is signed in")
)

// Manager owns the session and visible-inventory mirrors. All operations
// are serialized by a single mutex, so two actions racing each other cannot
// interleave their read-modify-write cycles.
type Manager struct {
	mu   sync.Mutex
	data *appdata.Accessor
	log  logging.Logger

	currentUser *models.User
	inventory   []models.InventoryItem
}

func NewManager(data *appdata.Accessor, log logging.Logger) *Manager {
	return &Manager{data: data, log: log}
}

// Bootstrap loads the persisted session and inventory into the mirrors.
// Run once at startup; any accessor failure degrades to the signed-out,
// empty-inventory state.
func (m *Manager) Bootstrap(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	user := m.data.CurrentUser(ctx)
	m.currentUser = user
	m.inventory = nil

	if user == nil {
		return
	}

	m.inventory = filterByOwner(m.data.Inventory(ctx), user.Email)
	m.log.Info(ctx, "restored session", "email", user.Email, "items", len(m.inventory))
}

// Login signs the candidate in. An email nobody has used before registers a
// new account on the spot; a known email must present the stored password
// exactly. On a password mismatch the session is left untouched and
// ErrWrongPassword is returned.
func (m *Manager) Login(ctx context.Context, candidate models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	users := m.data.Users(ctx)

	var found *models.User
	for i := range users {
		if users[i].Email == candidate.Email {
			found = &users[i]
			break
		}
	}

	if found == nil {
		if err := m.data.SaveUsers(ctx, append(users, candidate)); err != nil {
			return err
		}
		m.log.Info(ctx, "registered new user", "email", candidate.Email)
		return m.adoptSession(ctx, candidate)
	}

	if found.Password != candidate.Password {
		m.log.Warn(ctx, "rejected login", "email", candidate.Email)
		return ErrWrongPassword
	}

	return m.adoptSession(ctx, candidate)
}

// adoptSession persists the session record, then points the mirrors at the
// user and their slice of a freshly read inventory. Callers hold the mutex.
func (m *Manager) adoptSession(ctx context.Context, user models.User) error {
	if err := m.data.SaveCurrentUser(ctx, user); err != nil {
		return err
	}

	m.currentUser = &user
	m.inventory = filterByOwner(m.data.Inventory(ctx), user.Email)
	return nil
}

// Logout removes the persisted session and clears both mirrors. The local
// sign-out always happens; a storage failure is still reported so the
// caller knows the on-disk session record may linger.
func (m *Manager) Logout(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	err := m.data.ClearCurrentUser(ctx)

	m.currentUser = nil
	m.inventory = nil
	return err
}

// AddItem stores a new item for the signed-in user. The draft's ID and User
// fields are overwritten: a fresh random id is assigned and the owner is
// stamped from the session. A name already present in the visible slice is
// rejected with ErrDuplicateName.
func (m *Manager) AddItem(ctx context.Context, draft models.InventoryItem) (models.InventoryItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.currentUser == nil {
		return models.InventoryItem{}, ErrNotSignedIn
	}

	for _, it := range m.inventory {
		if it.Name == draft.Name {
			return models.InventoryItem{}, ErrDuplicateName
		}
	}

	id, err := models.NewItemID()
	if err != nil {
		return models.InventoryItem{}, err
	}
	draft.ID = id
	draft.User = m.currentUser.Email

	visible := append(append([]models.InventoryItem{}, m.inventory...), draft)

	full := m.data.Inventory(ctx)
	if full == nil {
		full = visible
	} else {
		full = append(full, draft)
	}

	if err := m.data.SaveInventory(ctx, full); err != nil {
		return models.InventoryItem{}, err
	}

	m.inventory = visible
	return draft, nil
}

// EditItem replaces the stored item carrying the same ID. The duplicate-name
// check skips the item under edit, so saving without renaming is not
// reported as a collision.
func (m *Manager) EditItem(ctx context.Context, item models.InventoryItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.currentUser == nil {
		return ErrNotSignedIn
	}

	for _, it := range m.inventory {
		if it.Name == item.Name && it.ID != item.ID {
			return ErrDuplicateName
		}
	}

	item.User = m.currentUser.Email

	visible := make([]models.InventoryItem, len(m.inventory))
	for i, it := range m.inventory {
		if it.ID == item.ID {
			visible[i] = item
		} else {
			visible[i] = it
		}
	}

	full := m.data.Inventory(ctx)
	if full == nil {
		full = visible
	} else {
		for i := range full {
			if full[i].ID == item.ID {
				full[i] = item
			}
		}
	}

	if err := m.data.SaveInventory(ctx, full); err != nil {
		return err
	}

	m.inventory = visible
	return nil
}

// RemoveItem deletes the item with the given id. Removing an unknown id is
// a no-op, not an error.
func (m *Manager) RemoveItem(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	visible := make([]models.InventoryItem, 0, len(m.inventory))
	for _, it := range m.inventory {
		if it.ID != id {
			visible = append(visible, it)
		}
	}

	full := m.data.Inventory(ctx)
	if full == nil {
		full = visible
	} else {
		kept := make([]models.InventoryItem, 0, len(full))
		for _, it := range full {
			if it.ID != id {
				kept = append(kept, it)
			}
		}
		full = kept
	}

	if err := m.data.SaveInventory(ctx, full); err != nil {
		return err
	}

	m.inventory = visible
	return nil
}

// CurrentUser returns a copy of the signed-in user, or nil when signed out.
func (m *Manager) CurrentUser() *models.User {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.currentUser == nil {
		return nil
	}
	u := *m.currentUser
	return &u
}

// Inventory returns a copy of the visible slice.
func (m *Manager) Inventory() []models.InventoryItem {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]models.InventoryItem{}, m.inventory...)
}

func filterByOwner(items []models.InventoryItem, email string) []models.InventoryItem {
	if items == nil {
		return nil
	}
	owned := make([]models.InventoryItem, 0, len(items))
	for _, it := range items {
		if it.User == email {
			owned = append(owned, it)
		}
	}
	return owned
}
