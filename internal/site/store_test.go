package site

import (
	stderrors "errors"
	"reflect"
	"testing"

	"github.com/vango-dev/folio/internal/errors"
)

func defaultStore(t *testing.T) *Store {
	t.Helper()
	s, err := DefaultStore()
	if err != nil {
		t.Fatalf("DefaultStore() error: %v", err)
	}
	return s
}

func TestNewStoreRejectsBadDocuments(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"not json", `{"research": [`},
		{"array root", `[1, 2]`},
		{"research not array", `{"research": {"id": "1"}}`},
		{"interests not array", `{"interests": "none"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewStore([]byte(tt.doc))
			var fe *errors.FolioError
			if !stderrors.As(err, &fe) || fe.Code != "F202" {
				t.Errorf("NewStore(%s) error = %v, want F202", tt.doc, err)
			}
		})
	}
}

func TestStoreProjects(t *testing.T) {
	s := defaultStore(t)

	projects := s.Projects()
	if len(projects) != 3 {
		t.Fatalf("len(Projects()) = %d, want 3", len(projects))
	}

	p, ok := s.Project("2")
	if !ok {
		t.Fatal("Project(2) not found")
	}
	if p.Title != "Agent Memory Compression" || p.Status != "in-progress" {
		t.Errorf("Project(2) = %+v", p)
	}
	if !reflect.DeepEqual(p.Tags, []string{"agents", "llm", "memory"}) {
		t.Errorf("Tags = %v", p.Tags)
	}

	if _, ok := s.Project("99"); ok {
		t.Error("Project(99) should not exist")
	}
}

func TestStoreNumericIDs(t *testing.T) {
	s, err := NewStore([]byte(`{"research": [{"id": 7, "title": "Seven"}]}`))
	if err != nil {
		t.Fatal(err)
	}
	if p, ok := s.Project("7"); !ok || p.Title != "Seven" {
		t.Errorf("Project(7) = %+v, %v", p, ok)
	}
	if len(s.Interests()) != 0 {
		t.Error("missing interests array should read as empty")
	}
}

func TestStoreInterests(t *testing.T) {
	s := defaultStore(t)

	if got := s.Categories(); !reflect.DeepEqual(got, []string{"photography", "reading", "hiking"}) {
		t.Errorf("Categories() = %v", got)
	}

	photos := s.InterestsByCategory("photography")
	if len(photos) != 2 {
		t.Errorf("photography interests = %d, want 2", len(photos))
	}
	if len(s.InterestsByCategory("cooking")) != 0 {
		t.Error("unknown category should be empty")
	}

	timeline := s.Timeline()
	for i := 1; i < len(timeline); i++ {
		if timeline[i-1].Date < timeline[i].Date {
			t.Fatalf("timeline not newest first: %v", timeline)
		}
	}
	if timeline[0].ID != "street-tokyo" {
		t.Errorf("newest = %q", timeline[0].ID)
	}

	in, ok := s.Interest("book-club")
	if !ok || in.Category != "reading" {
		t.Errorf("Interest(book-club) = %+v, %v", in, ok)
	}
}

func TestStoreModuleAndStats(t *testing.T) {
	s := defaultStore(t)

	m, ok := s.Module("research")
	if !ok || m.Title != "Research Projects" || len(m.Features) != 3 {
		t.Errorf("Module(research) = %+v, %v", m, ok)
	}
	if _, ok := s.Module("knowledge"); ok {
		t.Error("Module(knowledge) should not exist")
	}

	want := Stats{Projects: 3, CompletedProjects: 1, Interests: 4, Categories: 3}
	if got := s.Stats(); got != want {
		t.Errorf("Stats() = %+v, want %+v", got, want)
	}
}
