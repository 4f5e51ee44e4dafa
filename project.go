package folio

// ProjectRecord is one entry of the project list. The engine only reads it.
type ProjectRecord struct {
	Title       string          `yaml:"title"`
	Subtitle    string          `yaml:"subtitle,omitempty"`
	Description string          `yaml:"description"`
	Tags        []string        `yaml:"tags,omitempty"`
	Link        string          `yaml:"link,omitempty"`
	Details     *ProjectDetails `yaml:"details,omitempty"`
}

// HasLink reports whether selecting the project navigates away from the page.
func (p ProjectRecord) HasLink() bool {
	return p.Link != ""
}

// ProjectDetails is the expanded content shown in the detail overlay.
type ProjectDetails struct {
	Overview []string        `yaml:"overview,omitempty"`
	Sections []DetailSection `yaml:"sections,omitempty"`
}

// DetailSection is one titled block of project details.
type DetailSection struct {
	Title   string   `yaml:"title"`
	Bullets []string `yaml:"bullets,omitempty"`
	Body    []string `yaml:"body,omitempty"`
}
