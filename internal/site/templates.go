package site

const pageTemplates = `
{{define "home"}}<section class="hero-section">
<h1 class="hero-title">{{.Title}}</h1>
<div class="modules-grid">{{range .Modules}}
<div class="module-card" data-module="{{.Name}}">
<h3>{{.Title}}</h3>
<p class="module-desc">{{.Desc}}</p>
<a href="#/{{.Name}}/about" class="btn btn-ghost">Learn more</a>
<a href="#/{{.Name}}" class="btn btn-accent">Enter</a>
</div>{{end}}
</div>
</section>{{end}}

{{define "about"}}<section class="module-about-page">
<a href="#/" class="back-link">Back to Home</a>
<h1>{{.Title}}</h1>
<p class="module-about-desc">{{.Desc}}</p>
<a href="#/{{.Name}}" class="btn btn-accent">Enter</a>
<div class="module-about-detail">{{.Detail}}</div>
<ul class="feature-grid">{{range .Features}}<li class="feature-item">{{.}}</li>{{end}}</ul>
</section>{{end}}

{{define "agent"}}<section class="agent-page">
<h1>{{.Title}}</h1>
<p>{{.Desc}}</p>
<div class="agent-chat" id="agent-chat"></div>
</section>{{end}}

{{define "research-list"}}<section class="research-page">
<h1>Research Projects</h1>
<ul class="project-list">{{range .Projects}}
<li class="project-card status-{{.Status}}"><a href="{{.URL}}">{{.Title}}</a> <span class="project-status">{{.Status}}</span></li>{{end}}
</ul>
</section>{{end}}

{{define "research-detail"}}<article class="project-detail">
<a href="#/research" class="back-link">All projects</a>
<h1>{{.Title}}</h1>
<p class="project-meta">{{.Status}} · {{.StartDate}}{{if .EndDate}} to {{.EndDate}}{{end}}</p>
<div class="project-body">{{.Body}}</div>
<ul class="tags">{{range .Tags}}<li class="tag">{{.}}</li>{{end}}</ul>
</article>{{end}}

{{define "interests-grid"}}<section class="interests-page">
<h1>{{.Heading}}</h1>
<nav class="category-filter">{{range .Categories}}<a href="{{.URL}}" class="category-link">{{.Name}}</a> {{end}}<a href="#/interests/timeline">Timeline</a></nav>
{{if .Interests}}<div class="interests-grid">{{range .Interests}}
<div class="interest-card"><a href="{{.URL}}">{{.Title}}</a> <span class="interest-date">{{.Date}}</span></div>{{end}}
</div>{{else}}<p class="empty-state">Nothing here yet.</p>{{end}}
</section>{{end}}

{{define "interests-timeline"}}<section class="interests-timeline">
<h1>Timeline</h1>
<ol class="timeline">{{range .Interests}}
<li class="timeline-item"><time>{{.Date}}</time> <a href="{{.URL}}">{{.Title}}</a></li>{{end}}
</ol>
</section>{{end}}

{{define "interest-detail"}}<article class="interest-detail">
<a href="#/interests" class="back-link">All interests</a>
<h1>{{.Title}}</h1>
<p class="interest-meta"><a href="{{.CategoryURL}}">{{.Category}}</a> · {{.Date}}</p>
<div class="interest-body">{{.Body}}</div>
</article>{{end}}

{{define "admin"}}<section class="admin-page">
<h1>Admin</h1>
<dl class="stats">
<dt>Projects</dt><dd>{{.Projects}}</dd>
<dt>Completed</dt><dd>{{.CompletedProjects}}</dd>
<dt>Interests</dt><dd>{{.Interests}}</dd>
<dt>Categories</dt><dd>{{.Categories}}</dd>
</dl>
</section>{{end}}
`
