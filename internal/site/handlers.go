package site

import (
	"context"

	"github.com/vango-dev/folio/internal/errors"
	"github.com/vango-dev/folio/pkg/router"
)

// Route patterns of the portfolio.
const (
	PathHome              = "/"
	PathAgent             = "/agent"
	PathAgentAbout        = "/agent/about"
	PathResearch          = "/research"
	PathResearchAbout     = "/research/about"
	PathResearchDetail    = "/research/:id"
	PathInterests         = "/interests"
	PathInterestsAbout    = "/interests/about"
	PathInterestsTimeline = "/interests/timeline"
	PathInterestsCategory = "/interests/category/:category"
	PathInterestDetail    = "/interests/:id"
	PathAdmin             = "/admin"
)

// routes returns the route table in registration order. Static patterns
// always win over parameterized ones, so /research/about is never read as
// a project id.
func (s *Site) routes() []router.Route {
	return []router.Route{
		{Pattern: PathHome, Handler: s.home},
		{Pattern: PathAgent, Handler: s.agent},
		{Pattern: PathAgentAbout, Handler: s.about("agent")},
		{Pattern: PathResearch, Handler: s.researchList},
		{Pattern: PathResearchAbout, Handler: s.about("research")},
		{Pattern: PathResearchDetail, Handler: s.researchDetail},
		{Pattern: PathInterests, Handler: s.interestsGrid},
		{Pattern: PathInterestsAbout, Handler: s.about("interests")},
		{Pattern: PathInterestsTimeline, Handler: s.interestsTimeline},
		{Pattern: PathInterestsCategory, Handler: s.interestsCategory},
		{Pattern: PathInterestDetail, Handler: s.interestDetail},
		{Pattern: PathAdmin, Handler: s.adminPage},
	}
}

var moduleNames = []string{"agent", "research", "interests"}

func (s *Site) home(_ context.Context, _ *router.Context) error {
	var modules []Module
	for _, name := range moduleNames {
		if m, ok := s.store.Module(name); ok {
			modules = append(modules, m)
		}
	}
	title := s.cfg.Name
	if title == "" {
		title = HomeTitle
	}
	return s.render(title, "home", map[string]any{
		"Title":   title,
		"Modules": modules,
	})
}

func (s *Site) about(name string) router.Handler {
	return func(_ context.Context, rc *router.Context) error {
		m, ok := s.store.Module(name)
		if !ok {
			return errors.New("F201").WithPath(rc.Path)
		}
		detail, err := s.renderer.Markdown(m.Detail)
		if err != nil {
			return err
		}
		return s.render(m.Title, "about", map[string]any{
			"Name":     m.Name,
			"Title":    m.Title,
			"Desc":     m.Desc,
			"Detail":   detail,
			"Features": m.Features,
		})
	}
}

func (s *Site) agent(_ context.Context, _ *router.Context) error {
	m, _ := s.store.Module("agent")
	if err := s.render(m.Title, "agent", m); err != nil {
		return err
	}
	s.view.SetFullscreen(true)
	return nil
}

type linkItem struct {
	Title  string
	Status string
	Date   string
	URL    string
}

func (s *Site) researchList(_ context.Context, rc *router.Context) error {
	var items []linkItem
	for _, p := range s.store.Projects() {
		items = append(items, linkItem{
			Title:  p.Title,
			Status: p.Status,
			URL:    "#" + rc.Router.BuildURL(PathResearchDetail, map[string]string{"id": p.ID}, nil),
		})
	}
	return s.render("Research Projects", "research-list", map[string]any{"Projects": items})
}

func (s *Site) researchDetail(_ context.Context, rc *router.Context) error {
	p, ok := s.store.Project(rc.Params.Value("id"))
	if !ok {
		return errors.New("F201").WithPath(rc.Path)
	}
	body, err := s.renderer.Markdown(p.Description)
	if err != nil {
		return err
	}
	return s.render(p.Title, "research-detail", map[string]any{
		"Title":     p.Title,
		"Status":    p.Status,
		"StartDate": p.StartDate,
		"EndDate":   p.EndDate,
		"Tags":      p.Tags,
		"Body":      body,
	})
}

func (s *Site) interestsGrid(_ context.Context, rc *router.Context) error {
	return s.renderInterests(rc, "Personal Interests", s.store.Interests())
}

func (s *Site) interestsCategory(_ context.Context, rc *router.Context) error {
	category := rc.Params.Value("category")
	return s.renderInterests(rc, formatPathTitle(category), s.store.InterestsByCategory(category))
}

func (s *Site) renderInterests(rc *router.Context, heading string, interests []Interest) error {
	type category struct{ Name, URL string }
	var categories []category
	for _, c := range s.store.Categories() {
		categories = append(categories, category{
			Name: formatPathTitle(c),
			URL:  "#" + rc.Router.BuildURL(PathInterestsCategory, map[string]string{"category": c}, nil),
		})
	}
	return s.render(heading, "interests-grid", map[string]any{
		"Heading":    heading,
		"Categories": categories,
		"Interests":  s.interestLinks(rc, interests),
	})
}

func (s *Site) interestsTimeline(_ context.Context, rc *router.Context) error {
	return s.render("Timeline", "interests-timeline", map[string]any{
		"Interests": s.interestLinks(rc, s.store.Timeline()),
	})
}

func (s *Site) interestLinks(rc *router.Context, interests []Interest) []linkItem {
	items := make([]linkItem, 0, len(interests))
	for _, in := range interests {
		items = append(items, linkItem{
			Title: in.Title,
			Date:  in.Date,
			URL:   "#" + rc.Router.BuildURL(PathInterestDetail, map[string]string{"id": in.ID}, nil),
		})
	}
	return items
}

func (s *Site) interestDetail(_ context.Context, rc *router.Context) error {
	in, ok := s.store.Interest(rc.Params.Value("id"))
	if !ok {
		return errors.New("F201").WithPath(rc.Path)
	}
	body, err := s.renderer.Markdown(in.Description)
	if err != nil {
		return err
	}
	return s.render(in.Title, "interest-detail", map[string]any{
		"Title":       in.Title,
		"Category":    formatPathTitle(in.Category),
		"CategoryURL": "#" + rc.Router.BuildURL(PathInterestsCategory, map[string]string{"category": in.Category}, nil),
		"Date":        in.Date,
		"Body":        body,
	})
}

func (s *Site) adminPage(_ context.Context, _ *router.Context) error {
	return s.render("Admin", "admin", s.store.Stats())
}

func (s *Site) render(title, page string, data any) error {
	html, err := s.renderer.Page(page, data)
	if err != nil {
		return err
	}
	s.view.SetContent(title, html)
	return nil
}
