package db

import (
	"sync"

	"github.com/pagecraft/pages-go/lib/exception"
	db2 "github.com/pagecraft/pages-go/lib/models/db"
)

// MemoryDataStore keeps pages in process memory. Used by tests and as the
// default store (data is lost on restart).
type MemoryDataStore struct {
	mu        sync.RWMutex
	pageStore map[string]db2.PageDB
}

func NewMemoryDataStore() *MemoryDataStore {
	return &MemoryDataStore{
		pageStore: make(map[string]db2.PageDB),
	}
}

func (m *MemoryDataStore) DoesPageExist(pageID string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.pageStore[pageID]
	return ok
}

func (m *MemoryDataStore) SavePage(page db2.PageDB) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pageStore[page.Id] = page
	return nil
}

func (m *MemoryDataStore) GetPage(pageID string) (*db2.PageDB, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	retrievedPage, ok := m.pageStore[pageID]
	if !ok {
		return nil, exception.NewPageNotFoundError(pageID)
	}
	return &retrievedPage, nil
}

func (m *MemoryDataStore) RemovePage(pageID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.pageStore[pageID]; !ok {
		return exception.NewPageNotFoundError(pageID)
	}
	delete(m.pageStore, pageID)
	return nil
}

func (m *MemoryDataStore) GetPageIds() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var pageIds []string
	for k := range m.pageStore {
		pageIds = append(pageIds, k)
	}
	return pageIds
}

func (m *MemoryDataStore) Ping() error {
	return nil
}
