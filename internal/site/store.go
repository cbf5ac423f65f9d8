package site

import (
	_ "embed"
	"sort"

	"github.com/tidwall/gjson"

	"github.com/vango-dev/folio/internal/errors"
)

//go:embed content.json
var defaultContent []byte

// Project is a research project.
type Project struct {
	ID          string
	Title       string
	Description string
	Status      string
	StartDate   string
	EndDate     string
	Category    string
	Tags        []string
}

// Interest is a personal interest entry.
type Interest struct {
	ID          string
	Title       string
	Category    string
	Description string
	Date        string
}

// Module is the introduction of one top-level section of the site.
type Module struct {
	Name     string
	Title    string
	Desc     string
	Detail   string
	Features []string
}

// Stats summarizes the content store for the admin page.
type Stats struct {
	Projects          int
	CompletedProjects int
	Interests         int
	Categories        int
}

// Store answers content queries against a JSON document.
// The document is read-only once the store is created.
type Store struct {
	doc []byte
}

// DefaultStore returns a store over the bundled site content.
func DefaultStore() (*Store, error) {
	return NewStore(defaultContent)
}

// NewStore validates doc and returns a store over it.
func NewStore(doc []byte) (*Store, error) {
	if !gjson.ValidBytes(doc) {
		return nil, errors.New("F202").WithDetail("Content document is not valid JSON.")
	}
	if !gjson.ParseBytes(doc).IsObject() {
		return nil, errors.New("F202")
	}
	for _, key := range []string{"research", "interests"} {
		if r := gjson.GetBytes(doc, key); r.Exists() && !r.IsArray() {
			return nil, errors.New("F202").WithDetail(key + " must be an array.")
		}
	}
	return &Store{doc: doc}, nil
}

// Module returns the introduction of a site section.
func (s *Store) Module(name string) (Module, bool) {
	r := gjson.GetBytes(s.doc, "modules."+gjson.Escape(name))
	if !r.Exists() {
		return Module{}, false
	}
	return Module{
		Name:     name,
		Title:    r.Get("title").String(),
		Desc:     r.Get("desc").String(),
		Detail:   r.Get("detail").String(),
		Features: stringList(r.Get("features")),
	}, true
}

// Projects returns every research project in document order.
func (s *Store) Projects() []Project {
	var out []Project
	gjson.GetBytes(s.doc, "research").ForEach(func(_, v gjson.Result) bool {
		out = append(out, projectFrom(v))
		return true
	})
	return out
}

// Project looks up a research project by id.
func (s *Store) Project(id string) (Project, bool) {
	var (
		found Project
		ok    bool
	)
	gjson.GetBytes(s.doc, "research").ForEach(func(_, v gjson.Result) bool {
		if v.Get("id").String() == id {
			found, ok = projectFrom(v), true
			return false
		}
		return true
	})
	return found, ok
}

// Interests returns every interest in document order.
func (s *Store) Interests() []Interest {
	var out []Interest
	gjson.GetBytes(s.doc, "interests").ForEach(func(_, v gjson.Result) bool {
		out = append(out, interestFrom(v))
		return true
	})
	return out
}

// Interest looks up an interest by id.
func (s *Store) Interest(id string) (Interest, bool) {
	for _, in := range s.Interests() {
		if in.ID == id {
			return in, true
		}
	}
	return Interest{}, false
}

// InterestsByCategory returns the interests of one category.
func (s *Store) InterestsByCategory(category string) []Interest {
	var out []Interest
	for _, in := range s.Interests() {
		if in.Category == category {
			out = append(out, in)
		}
	}
	return out
}

// Categories returns the distinct interest categories in first-seen order.
func (s *Store) Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, c := range gjson.GetBytes(s.doc, "interests.#.category").Array() {
		name := c.String()
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	return out
}

// Timeline returns interests newest first. Dates are ISO 8601, so string
// order is date order.
func (s *Store) Timeline() []Interest {
	out := s.Interests()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date > out[j].Date
	})
	return out
}

// Stats counts the store's content.
func (s *Store) Stats() Stats {
	return Stats{
		Projects:          int(gjson.GetBytes(s.doc, "research.#").Int()),
		CompletedProjects: len(gjson.GetBytes(s.doc, `research.#(status=="completed")#`).Array()),
		Interests:         int(gjson.GetBytes(s.doc, "interests.#").Int()),
		Categories:        len(s.Categories()),
	}
}

func projectFrom(v gjson.Result) Project {
	return Project{
		ID:          v.Get("id").String(),
		Title:       v.Get("title").String(),
		Description: v.Get("description").String(),
		Status:      v.Get("status").String(),
		StartDate:   v.Get("startDate").String(),
		EndDate:     v.Get("endDate").String(),
		Category:    v.Get("category").String(),
		Tags:        stringList(v.Get("tags")),
	}
}

func interestFrom(v gjson.Result) Interest {
	return Interest{
		ID:          v.Get("id").String(),
		Title:       v.Get("title").String(),
		Category:    v.Get("category").String(),
		Description: v.Get("description").String(),
		Date:        v.Get("date").String(),
	}
}

func stringList(r gjson.Result) []string {
	var out []string
	for _, item := range r.Array() {
		out = append(out, item.String())
	}
	return out
}
