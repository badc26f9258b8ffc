package memory

import (
	"sync"

	"turkeybowl/internal/models"
)

// Repository holds the most recent pipeline results so bot handlers and the
// watcher can serve them without re-running the pull.
type Repository struct {
	results *models.Results
	mu      sync.RWMutex
}

func NewRepository() *Repository {
	return &Repository{}
}

func (r *Repository) SaveResults(results *models.Results) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.results = results
}

func (r *Repository) GetResults() *models.Results {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.results
}
