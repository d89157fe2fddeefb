package repository

import (
	"context"
	"sort"
	"sync"

	"planner-api/modules/schedule/entity"
)

// MemoryEventRepository is the embedded event store driver. It backs dev
// deployments that run without Postgres and doubles as the test double for
// the service layer.
type MemoryEventRepository struct {
	mu     sync.RWMutex
	events map[string]entity.Event
}

func NewMemoryEventRepository() *MemoryEventRepository {
	return &MemoryEventRepository{events: make(map[string]entity.Event)}
}

func (r *MemoryEventRepository) Create(_ context.Context, event *entity.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events[event.ID] = *event
	return nil
}

func (r *MemoryEventRepository) GetByID(_ context.Context, id string) (*entity.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if e, ok := r.events[id]; ok {
		copy := e
		return &copy, nil
	}
	return nil, nil
}

func (r *MemoryEventRepository) GetForDay(_ context.Context, day string) ([]entity.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	events := []entity.Event{}
	for _, e := range r.events {
		if e.Day == day {
			events = append(events, e)
		}
	}
	sortEvents(events)
	return events, nil
}

func (r *MemoryEventRepository) GetForRange(_ context.Context, from, to string) ([]entity.Event, error) {
	if from > to {
		return []entity.Event{}, nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	events := []entity.Event{}
	for _, e := range r.events {
		if e.Day >= from && e.Day <= to {
			events = append(events, e)
		}
	}
	sortEvents(events)
	return events, nil
}

func (r *MemoryEventRepository) GetAll(_ context.Context) ([]entity.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	events := make([]entity.Event, 0, len(r.events))
	for _, e := range r.events {
		events = append(events, e)
	}
	sortEvents(events)
	return events, nil
}

func (r *MemoryEventRepository) Update(_ context.Context, event *entity.Event) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.events[event.ID]; !ok {
		return false, nil
	}
	r.events[event.ID] = *event
	return true, nil
}

func (r *MemoryEventRepository) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.events[id]; !ok {
		return false, nil
	}
	delete(r.events, id)
	return true, nil
}

func sortEvents(events []entity.Event) {
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].Day != events[j].Day {
			return events[i].Day < events[j].Day
		}
		if events[i].StartTime != events[j].StartTime {
			return events[i].StartTime < events[j].StartTime
		}
		return events[i].ID < events[j].ID
	})
}
