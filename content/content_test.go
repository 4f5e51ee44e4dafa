package content

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	site, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	if site.Name != "Andrew Kobus" || site.Initials != "AK" {
		t.Errorf("identity = %q / %q", site.Name, site.Initials)
	}
	if len(site.Projects) != 4 {
		t.Fatalf("len(Projects) = %d, want 4", len(site.Projects))
	}
	if site.Projects[0].Title != "Idaho SIF" || site.Projects[0].HasLink() {
		t.Errorf("first project = %+v, want link-less Idaho SIF", site.Projects[0])
	}
	linked := 0
	for _, p := range site.Projects {
		if p.HasLink() {
			linked++
			if p.Link != "https://github.com/andkob/Planly" {
				t.Errorf("link = %q", p.Link)
			}
		} else if p.Details == nil {
			t.Errorf("link-less project %q has no details", p.Title)
		}
	}
	if linked != 1 {
		t.Errorf("linked projects = %d, want 1", linked)
	}
	if len(site.Links) != 3 || len(site.Skills) != 3 || len(site.About) == 0 || len(site.Tech) == 0 {
		t.Errorf("links=%d skills=%d about=%d tech=%d", len(site.Links), len(site.Skills), len(site.About), len(site.Tech))
	}
}

func TestParseDerivesInitials(t *testing.T) {
	site, err := Parse([]byte(`
name: ada lovelace king
projects:
  - title: Engine
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if site.Initials != "ALK" {
		t.Errorf("Initials = %q, want ALK", site.Initials)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		target  error
		contain string
	}{
		{name: "no name", yaml: "projects:\n  - title: A\n", target: ErrNoName},
		{name: "blank name", yaml: "name: '  '\nprojects:\n  - title: A\n", target: ErrNoName},
		{name: "no projects", yaml: "name: A\n", target: ErrNoProjects},
		{name: "invalid yaml", yaml: "name: [unclosed\n", contain: "content: parse"},
		{name: "untitled project", yaml: "name: A\nprojects:\n  - description: x\n", contain: "missing title"},
		{name: "link without url", yaml: "name: A\nlinks:\n  - label: GitHub\nprojects:\n  - title: A\n", contain: "missing url"},
		{
			name:    "untitled details section",
			yaml:    "name: A\nprojects:\n  - title: A\n    details:\n      sections:\n        - bullets: [x]\n",
			contain: "details section 0",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.target != nil && !errors.Is(err, tt.target) {
				t.Errorf("error = %v, want %v", err, tt.target)
			}
			if tt.contain != "" && !strings.Contains(err.Error(), tt.contain) {
				t.Errorf("error = %q, want it to contain %q", err, tt.contain)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	data := `
name: Grace Hopper
tagline: Compilers
projects:
  - title: COBOL
    link: https://example.com/cobol
  - title: A-0
    details:
      overview: [First compiler.]
      sections:
        - title: Design
          bullets: [Subroutines]
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	site, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(site.Projects) != 2 || site.Projects[1].Details.Sections[0].Title != "Design" {
		t.Errorf("projects = %+v", site.Projects)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error = %v, want not-exist", err)
	}

	path := filepath.Join(t.TempDir(), "empty.yaml")
	if err := os.WriteFile(path, []byte("name: A\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(path)
	if !errors.Is(err, ErrNoProjects) || !strings.Contains(err.Error(), path) {
		t.Errorf("error = %v, want ErrNoProjects naming %s", err, path)
	}
}
