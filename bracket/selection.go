// Package bracket turns the provider's bracket options into a weight, template and page
// selection, and prepares the provider's rendered bracket markup for display.
package bracket

import (
	"net/url"
	"slices"
	"strconv"
	"strings"

	"twviewer/models"
	"twviewer/trackwrestling"
)

// Query is the raw selection from the bracket sidebar form. Pages only apply to the
// template named by PagesFor, so checkboxes left over from another template are ignored.
// WeightID echoes the provider id of the weight the form was rendered for.
type Query struct {
	Weight   *int
	Template *int
	PagesFor *int
	Pages    []int
	View     bool
	WeightID *int
}

// QueryFromValues reads the sidebar form fields out of a query string.
func QueryFromValues(v url.Values) Query {
	q := ParseQuery(v.Get("weight"), v.Get("template"), v.Get("pagesFor"), v["page"], v.Get("view"))
	q.WeightID = parseIndex(v.Get("weightId"))
	return q
}

// Prefetch returns the rendered-bracket request the form already names, so it can run
// alongside the bracket options call. ok is false when the form is not asking to view.
func (q Query) Prefetch() (weightID int, pages []int, ok bool) {
	if !q.View || q.WeightID == nil || q.PagesFor == nil {
		return 0, nil, false
	}
	return *q.WeightID, q.Pages, true
}

func ParseQuery(weight, template, pagesFor string, pages []string, view string) Query {
	q := Query{
		Weight:   parseIndex(weight),
		Template: parseIndex(template),
		PagesFor: parseIndex(pagesFor),
	}
	for _, p := range pages {
		for _, part := range strings.Split(p, ",") {
			if id, err := strconv.Atoi(strings.TrimSpace(part)); err == nil {
				q.Pages = append(q.Pages, id)
			}
		}
	}
	switch strings.ToLower(strings.TrimSpace(view)) {
	case "1", "true", "yes", "on":
		q.View = true
	}
	return q
}

func parseIndex(s string) *int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return nil
	}
	return &n
}

type Selection struct {
	Weights   []models.Weight
	Weight    models.Weight
	HasWeight bool

	Templates   []models.Template
	Template    models.Template
	HasTemplate bool
}

// Resolve walks weight, then template, then pages. A missing or unknown weight selects
// the first weight. A template that does not belong to the weight's bracket is replaced by
// the weight's default, which is how changing the weight resets the template.
func Resolve(data models.BracketData, q Query) Selection {
	sel := Selection{Weights: data.Weights}
	if len(data.Weights) == 0 {
		return sel
	}

	sel.Weight = data.Weights[0]
	if q.Weight != nil {
		if w, ok := data.Weight(*q.Weight); ok {
			sel.Weight = w
		}
	}
	sel.HasWeight = true
	sel.Templates = data.TemplatesFor(sel.Weight.BracketID)

	explicit := false
	if q.Template != nil {
		if t, ok := data.Template(*q.Template); ok && t.BracketID == sel.Weight.BracketID {
			sel.Template, sel.HasTemplate, explicit = t, true, true
		}
	}
	if !sel.HasTemplate {
		sel.Template, sel.HasTemplate = data.DefaultTemplate(sel.Weight)
	}
	if !sel.HasTemplate {
		return sel
	}

	if explicit && q.PagesFor != nil && *q.PagesFor == sel.Template.TemplateIndex {
		sel.Template = sel.Template.WithShownPages(q.Pages)
	}
	return sel
}

// Ready reports whether a bracket can be requested.
func (s Selection) Ready() bool {
	return s.HasWeight && s.HasTemplate
}

func (s Selection) PageIDs() []int {
	return s.Template.ShownPageIDs()
}

// PagesParam is the comma-joined page list sent to the provider.
func (s Selection) PagesParam() string {
	return trackwrestling.JoinPageIDs(s.PageIDs())
}

// UpstreamID is the id the provider's rendered-bracket call is keyed by: the weight id.
func (s Selection) UpstreamID() int {
	return s.Weight.WeightID
}

// Prefetched reports whether a bracket requested with weightID and pages is the one the
// resolved selection asks for.
func (s Selection) Prefetched(weightID int, pages []int) bool {
	return s.Ready() && s.UpstreamID() == weightID && slices.Equal(s.PageIDs(), pages)
}

// Values encodes the selection back into the sidebar's query string.
func (s Selection) Values(view bool) url.Values {
	v := url.Values{}
	if !s.HasWeight {
		return v
	}
	v.Set("weight", strconv.Itoa(s.Weight.WeightIndex))
	v.Set("weightId", strconv.Itoa(s.Weight.WeightID))
	if s.HasTemplate {
		v.Set("template", strconv.Itoa(s.Template.TemplateIndex))
		v.Set("pagesFor", strconv.Itoa(s.Template.TemplateIndex))
		for _, id := range s.PageIDs() {
			v.Add("page", strconv.Itoa(id))
		}
	}
	if view {
		v.Set("view", "1")
	}
	return v
}
