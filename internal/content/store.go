package content

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Source loads a content snapshot. Implementations must return records in
// their display order.
type Source interface {
	Load(ctx context.Context) (Snapshot, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func(ctx context.Context) (Snapshot, error)

// Load calls f.
func (f SourceFunc) Load(ctx context.Context) (Snapshot, error) {
	return f(ctx)
}

// Store is the immutable in-memory content set. Accessors return copies.
type Store struct {
	snapshot Snapshot
	byID     map[string]int
}

// NewStore builds a store from an already loaded snapshot.
func NewStore(snapshot Snapshot) (*Store, error) {
	normalized := snapshot.normalize()
	if err := normalized.Validate(); err != nil {
		return nil, fmt.Errorf("validate content: %w", err)
	}
	byID := make(map[string]int, len(normalized.Projects))
	for idx, project := range normalized.Projects {
		byID[project.ID] = idx
	}
	return &Store{snapshot: normalized, byID: byID}, nil
}

// Load reads a snapshot from source once and builds a Store.
func Load(ctx context.Context, source Source) (*Store, error) {
	if source == nil {
		return nil, errors.New("content source is required")
	}
	snapshot, err := source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load content: %w", err)
	}
	return NewStore(snapshot)
}

// Projects returns every project in display order.
func (s *Store) Projects() []Project {
	if s == nil {
		return nil
	}
	return FilterProjects(s.snapshot.Projects, FilterAll)
}

// FilteredProjects returns the projects passing filter in display order.
func (s *Store) FilteredProjects(filter Filter) []Project {
	if s == nil {
		return nil
	}
	return FilterProjects(s.snapshot.Projects, filter)
}

// Project looks up a project by id.
func (s *Store) Project(id string) (Project, bool) {
	if s == nil {
		return Project{}, false
	}
	idx, ok := s.byID[strings.TrimSpace(id)]
	if !ok {
		return Project{}, false
	}
	return s.snapshot.Projects[idx].clone(), true
}

// Members returns every member in display order.
func (s *Store) Members() []Member {
	if s == nil {
		return nil
	}
	return append([]Member(nil), s.snapshot.Members...)
}

// Department returns the department record.
func (s *Store) Department() Department {
	if s == nil {
		return Department{}
	}
	return s.snapshot.Department.clone()
}

// Counts reports how many projects each status has, plus the total under
// FilterAll.
func (s *Store) Counts() map[Filter]int {
	counts := make(map[Filter]int, len(Filters()))
	for _, filter := range Filters() {
		counts[filter] = 0
	}
	if s == nil {
		return counts
	}
	for _, project := range s.snapshot.Projects {
		counts[FilterAll]++
		counts[Filter(project.Status)]++
	}
	return counts
}
