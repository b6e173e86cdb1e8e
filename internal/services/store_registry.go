package services

import (
	"errors"
	"sort"
	"sync"

	"github.com/google/uuid"

	"storehours/pkg/models"
)

// ErrStoreNotFound reports an unknown store ID.
var ErrStoreNotFound = errors.New("store not found")

// StoreRegistry keeps registered stores and their availability policies
// in memory. Persistence is out of scope: the registry lives and dies
// with the process.
type StoreRegistry struct {
	mu     sync.RWMutex
	stores map[uuid.UUID]models.Store
}

func NewStoreRegistry() *StoreRegistry {
	return &StoreRegistry{
		stores: make(map[uuid.UUID]models.Store),
	}
}

// Create registers a store and assigns it an ID.
func (r *StoreRegistry) Create(name string, restrictions models.RestrictionsOrder) models.Store {
	store := models.Store{
		ID:                uuid.New(),
		Name:              name,
		RestrictionsOrder: restrictions,
	}
	r.mu.Lock()
	r.stores[store.ID] = store
	r.mu.Unlock()
	return store
}

// GetByID returns the store with the given ID.
func (r *StoreRegistry) GetByID(id uuid.UUID) (models.Store, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	store, ok := r.stores[id]
	if !ok {
		return models.Store{}, ErrStoreNotFound
	}
	return store, nil
}

// List returns all registered stores ordered by name.
func (r *StoreRegistry) List() []models.Store {
	r.mu.RLock()
	stores := make([]models.Store, 0, len(r.stores))
	for _, store := range r.stores {
		stores = append(stores, store)
	}
	r.mu.RUnlock()
	sort.Slice(stores, func(i, j int) bool { return stores[i].Name < stores[j].Name })
	return stores
}

// UpdateRestrictions replaces a store's availability policy.
func (r *StoreRegistry) UpdateRestrictions(id uuid.UUID, restrictions models.RestrictionsOrder) (models.Store, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	store, ok := r.stores[id]
	if !ok {
		return models.Store{}, ErrStoreNotFound
	}
	store.RestrictionsOrder = restrictions
	r.stores[id] = store
	return store, nil
}

// Delete removes a store from the registry.
func (r *StoreRegistry) Delete(id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.stores[id]; !ok {
		return ErrStoreNotFound
	}
	delete(r.stores, id)
	return nil
}
