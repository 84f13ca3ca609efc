package catalog

// Template is a static JSON-shaped blueprint with zero or more
// {{UPPER_SNAKE}} placeholders. Loaded from compiled-in data, immutable at
// runtime.
type Template struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Body    string `json:"body"`
	Premium bool   `json:"premium"`
}

// Example pairs a template with a plausible placeholder value-set for
// quick-start loading.
type Example struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	TemplateID string            `json:"template_id"`
	Values     map[string]string `json:"values"`
}

// VisualStyle is an optional aesthetic-direction tag.
type VisualStyle struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ShowcaseVideo is a curated demo clip linking back to the example value-set
// that produced it.
type ShowcaseVideo struct {
	ID          string `json:"id"`
	VideoURL    string `json:"video_url"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ExampleID   string `json:"example_id"`
}

// TemplateByID resolves a template id, falling back to the first catalog
// entry so a selected id is always resolvable.
func TemplateByID(id string) Template {
	for _, t := range Templates {
		if t.ID == id {
			return t
		}
	}
	return Templates[0]
}

// ExampleByID returns the example with the given id, if any.
func ExampleByID(id string) (Example, bool) {
	for _, ex := range Examples {
		if ex.ID == id {
			return ex, true
		}
	}
	return Example{}, false
}

// StyleByID returns the visual style with the given id, if any.
func StyleByID(id string) (VisualStyle, bool) {
	for _, s := range VisualStyles {
		if s.ID == id {
			return s, true
		}
	}
	return VisualStyle{}, false
}
