// Package content loads the static portfolio content: identity, about text,
// skills, and the ordered project list.
package content

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/phanxgames/folio"
	"gopkg.in/yaml.v3"
)

//go:embed site.yaml
var defaultSite []byte

var (
	// ErrNoProjects is returned when a site declares no projects.
	ErrNoProjects = errors.New("no projects")
	// ErrNoName is returned when a site has no owner name.
	ErrNoName = errors.New("missing name")
)

// Link is an outbound link such as a social profile.
type Link struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
}

// Skill is one skill card.
type Skill struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// Site is the full content of the page.
type Site struct {
	Name     string                `yaml:"name"`
	Initials string                `yaml:"initials,omitempty"`
	Tagline  string                `yaml:"tagline"`
	Links    []Link                `yaml:"links,omitempty"`
	About    []string              `yaml:"about,omitempty"`
	Skills   []Skill               `yaml:"skills,omitempty"`
	Tech     []string              `yaml:"tech,omitempty"`
	Projects []folio.ProjectRecord `yaml:"projects"`
}

// Default returns the embedded site content.
func Default() (*Site, error) {
	return Parse(defaultSite)
}

// Load reads and parses a YAML site file.
func Load(path string) (*Site, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("content: read %s: %w", path, err)
	}
	site, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w (file %s)", err, path)
	}
	return site, nil
}

// Parse decodes and validates YAML site content.
func Parse(data []byte) (*Site, error) {
	var site Site
	if err := yaml.Unmarshal(data, &site); err != nil {
		return nil, fmt.Errorf("content: parse: %w", err)
	}
	if err := site.Validate(); err != nil {
		return nil, err
	}
	if site.Initials == "" {
		site.Initials = initials(site.Name)
	}
	return &site, nil
}

// Validate checks the fields the page cannot render without.
func (s *Site) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("content: %w", ErrNoName)
	}
	if len(s.Projects) == 0 {
		return fmt.Errorf("content: %w", ErrNoProjects)
	}
	for i, p := range s.Projects {
		if strings.TrimSpace(p.Title) == "" {
			return fmt.Errorf("content: project %d: missing title", i)
		}
		if p.Details != nil {
			for j, sec := range p.Details.Sections {
				if strings.TrimSpace(sec.Title) == "" {
					return fmt.Errorf("content: project %q: details section %d: missing title", p.Title, j)
				}
			}
		}
	}
	for i, l := range s.Links {
		if l.URL == "" {
			return fmt.Errorf("content: link %d (%s): missing url", i, l.Label)
		}
	}
	return nil
}

// initials returns the upper-cased first letter of each word in name.
func initials(name string) string {
	var b strings.Builder
	for _, w := range strings.Fields(name) {
		for _, r := range w {
			b.WriteString(strings.ToUpper(string(r)))
			break
		}
	}
	return b.String()
}
