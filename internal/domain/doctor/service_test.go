package doctor

import (
	"context"
	"sort"
	"strings"
	"testing"

	"github.com/google/uuid"
)

type mockRepo struct {
	doctors map[uuid.UUID]*Doctor
}

func newMockRepo() *mockRepo {
	return &mockRepo{doctors: make(map[uuid.UUID]*Doctor)}
}

func (m *mockRepo) add(name, specialty string) *Doctor {
	d := &Doctor{ID: uuid.New(), Name: name, Specialty: specialty}
	m.doctors[d.ID] = d
	return d
}

func (m *mockRepo) GetByID(_ context.Context, id uuid.UUID) (*Doctor, error) {
	d, ok := m.doctors[id]
	if !ok {
		return nil, ErrNotFound
	}
	return d, nil
}

func (m *mockRepo) Search(_ context.Context, f SearchFilter, limit, offset int) ([]*Doctor, int, error) {
	var matched []*Doctor
	for _, d := range m.doctors {
		if f.Specialty != "" && !strings.EqualFold(d.Specialty, f.Specialty) {
			continue
		}
		if f.Query != "" && !strings.Contains(strings.ToLower(d.Name), strings.ToLower(f.Query)) {
			continue
		}
		matched = append(matched, d)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].Name < matched[j].Name })

	total := len(matched)
	if offset > total {
		offset = total
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return matched[offset:end], total, nil
}

func TestSearch_FilterBySpecialty(t *testing.T) {
	repo := newMockRepo()
	repo.add("Dr. Grace Hopper", "Cardiology")
	repo.add("Dr. Alan Kay", "Dermatology")
	svc := NewService(repo)

	items, total, err := svc.Search(context.Background(), SearchFilter{Specialty: "cardiology"}, 20, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 1 || len(items) != 1 {
		t.Fatalf("expected 1 match, got total=%d len=%d", total, len(items))
	}
	if items[0].Name != "Dr. Grace Hopper" {
		t.Errorf("unexpected doctor: %s", items[0].Name)
	}
}

func TestSearch_FilterByName(t *testing.T) {
	repo := newMockRepo()
	repo.add("Dr. Grace Hopper", "Cardiology")
	repo.add("Dr. Alan Kay", "Dermatology")
	svc := NewService(repo)

	items, total, err := svc.Search(context.Background(), SearchFilter{Query: "hopper"}, 20, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 1 || len(items) != 1 {
		t.Fatalf("expected 1 match, got total=%d len=%d", total, len(items))
	}
}

func TestSearch_Pagination(t *testing.T) {
	repo := newMockRepo()
	repo.add("Dr. A", "Cardiology")
	repo.add("Dr. B", "Cardiology")
	repo.add("Dr. C", "Cardiology")
	svc := NewService(repo)

	items, total, err := svc.Search(context.Background(), SearchFilter{}, 2, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 3 {
		t.Errorf("expected total 3, got %d", total)
	}
	if len(items) != 1 || items[0].Name != "Dr. C" {
		t.Errorf("expected last page with Dr. C, got %+v", items)
	}
}

func TestGet_NotFound(t *testing.T) {
	svc := NewService(newMockRepo())
	if _, err := svc.Get(context.Background(), uuid.New()); err != ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
