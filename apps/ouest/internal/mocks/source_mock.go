package mocks

import (
	"context"
	"sync"

	"ouest.xdoubleu.com/apps/ouest/internal/models"
	"ouest.xdoubleu.com/apps/ouest/internal/repositories"
)

// MockSource serves whatever schedule or error was last set.
type MockSource struct {
	mu       sync.RWMutex
	schedule models.Schedule
	err      error
}

func NewMockSource(schedule models.Schedule) *MockSource {
	return &MockSource{
		mu:       sync.RWMutex{},
		schedule: schedule,
		err:      nil,
	}
}

var _ repositories.Source = (*MockSource)(nil)

func (source *MockSource) Load(_ context.Context) (models.Schedule, error) {
	source.mu.RLock()
	defer source.mu.RUnlock()

	if source.err != nil {
		return models.Schedule{}, source.err
	}
	return source.schedule, nil
}

func (source *MockSource) Set(schedule models.Schedule) {
	source.mu.Lock()
	defer source.mu.Unlock()

	source.schedule = schedule
	source.err = nil
}

func (source *MockSource) Fail(err error) {
	source.mu.Lock()
	defer source.mu.Unlock()

	source.err = err
}
