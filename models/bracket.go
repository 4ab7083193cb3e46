package models

import "encoding/json"

type Weight struct {
	WeightIndex int    `json:"weight_index"`
	WeightID    int    `json:"weight_id"`
	WeightName  string `json:"weight_name"`
	BracketID   int    `json:"bracket_id"`
}

type BracketPage struct {
	PageIndex int    `json:"page_index"`
	PageID    int    `json:"page_id"`
	PageName  string `json:"page_name"`
	ShowPage  bool   `json:"show_page"`
}

type Template struct {
	TemplateIndex int           `json:"template_index"`
	BracketID     int           `json:"bracket_id"`
	TemplateID    int           `json:"template_id"`
	TemplateName  string        `json:"template_name"`
	BracketWidth  int           `json:"bracket_width"`
	BracketHeight int           `json:"bracket_height"`
	BracketFont   int           `json:"bracket_font"`
	Pages         []BracketPage `json:"pages"`
}

// WithShownPages returns a copy of t showing exactly the pages listed in ids.
func (t Template) WithShownPages(ids []int) Template {
	want := make(map[int]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	out := t
	out.Pages = make([]BracketPage, len(t.Pages))
	for i, p := range t.Pages {
		p.ShowPage = want[p.PageID]
		out.Pages[i] = p
	}
	return out
}

func (t Template) ShownPageIDs() []int {
	ids := make([]int, 0, len(t.Pages))
	for _, p := range t.Pages {
		if p.ShowPage {
			ids = append(ids, p.PageID)
		}
	}
	return ids
}

type BracketType struct {
	BracketID            int  `json:"bracketId"`
	DefaultTemplateIndex *int `json:"default_template_index,omitempty"`
}

// UnmarshalJSON accepts both bracketId and bracket_id; the provider has sent each.
func (b *BracketType) UnmarshalJSON(data []byte) error {
	var raw struct {
		BracketID            *int `json:"bracketId"`
		BracketIDSnake       *int `json:"bracket_id"`
		DefaultTemplateIndex *int `json:"default_template_index"`
		DefaultTemplateCamel *int `json:"defaultTemplateIndex"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*b = BracketType{}
	switch {
	case raw.BracketID != nil:
		b.BracketID = *raw.BracketID
	case raw.BracketIDSnake != nil:
		b.BracketID = *raw.BracketIDSnake
	}
	b.DefaultTemplateIndex = raw.DefaultTemplateIndex
	if b.DefaultTemplateIndex == nil {
		b.DefaultTemplateIndex = raw.DefaultTemplateCamel
	}
	return nil
}

type BracketData struct {
	Weights      []Weight      `json:"weights"`
	Templates    []Template    `json:"templates"`
	BracketTypes []BracketType `json:"bracket_types"`
}

func (d BracketData) Weight(index int) (Weight, bool) {
	for _, w := range d.Weights {
		if w.WeightIndex == index {
			return w, true
		}
	}
	return Weight{}, false
}

func (d BracketData) TemplatesFor(bracketID int) []Template {
	var out []Template
	for _, t := range d.Templates {
		if t.BracketID == bracketID {
			out = append(out, t)
		}
	}
	return out
}

func (d BracketData) Template(index int) (Template, bool) {
	for _, t := range d.Templates {
		if t.TemplateIndex == index {
			return t, true
		}
	}
	return Template{}, false
}

// DefaultTemplate picks the bracket type's default template for w when the provider
// names one that belongs to w's bracket, and otherwise the first matching template.
func (d BracketData) DefaultTemplate(w Weight) (Template, bool) {
	for _, bt := range d.BracketTypes {
		if bt.BracketID != w.BracketID || bt.DefaultTemplateIndex == nil {
			continue
		}
		if t, ok := d.Template(*bt.DefaultTemplateIndex); ok && t.BracketID == w.BracketID {
			return t, true
		}
	}
	candidates := d.TemplatesFor(w.BracketID)
	if len(candidates) == 0 {
		return Template{}, false
	}
	return candidates[0], true
}
