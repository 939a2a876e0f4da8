package kql

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// QueryTemplate is a single canned Log Analytics query over SigninLogs. Every
// query carries the same outbound predicate used by the Graph-based modules
// (HomeTenantId == own tenant, ResourceTenantId different and non-empty) so
// both tool paths report the same population.
type QueryTemplate struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Severity    string   `yaml:"severity"`
	Query       string   `yaml:"query"`
	Category    string   `yaml:"category"`
	References  []string `yaml:"references,omitempty"`
}

//go:embed *.yaml
var EmbeddedTemplates embed.FS

// TemplateLoader loads query templates from the embedded set and, optionally,
// a user-supplied directory.
type TemplateLoader struct {
	templates []*QueryTemplate
}

// NewTemplateLoader creates a loader seeded with the embedded templates.
func NewTemplateLoader() (*TemplateLoader, error) {
	loader := &TemplateLoader{}

	entries, err := EmbeddedTemplates.ReadDir(".")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded templates: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".yaml" {
			continue
		}
		data, err := EmbeddedTemplates.ReadFile(entry.Name())
		if err != nil {
			return nil, fmt.Errorf("failed to read embedded template %s: %w", entry.Name(), err)
		}

		var template QueryTemplate
		if err := yaml.Unmarshal(data, &template); err != nil {
			return nil, fmt.Errorf("failed to parse embedded template %s: %w", entry.Name(), err)
		}
		if err := validateTemplate(&template); err != nil {
			return nil, fmt.Errorf("invalid embedded template %s: %w", entry.Name(), err)
		}

		loader.templates = append(loader.templates, &template)
	}

	return loader, nil
}

// LoadUserTemplates loads additional templates from a directory.
func (l *TemplateLoader) LoadUserTemplates(templateDir string) error {
	if templateDir == "" {
		return nil
	}

	dirInfo, err := os.Stat(templateDir)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("template directory '%s' does not exist", templateDir)
		}
		return fmt.Errorf("failed to access template directory: %w", err)
	}
	if !dirInfo.IsDir() {
		return fmt.Errorf("'%s' is not a directory", templateDir)
	}

	files, err := filepath.Glob(filepath.Join(templateDir, "*.yaml"))
	if err != nil {
		return fmt.Errorf("failed to list template files: %w", err)
	}

	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read template file %s: %w", file, err)
		}

		var template QueryTemplate
		if err := yaml.Unmarshal(data, &template); err != nil {
			return fmt.Errorf("failed to parse template file %s: %w", file, err)
		}
		if err := validateTemplate(&template); err != nil {
			return fmt.Errorf("invalid template %s: %w", file, err)
		}

		l.templates = append(l.templates, &template)
	}

	return nil
}

// GetTemplates returns all loaded templates, optionally filtered by category.
func (l *TemplateLoader) GetTemplates(category string) []*QueryTemplate {
	if category == "" {
		return l.templates
	}
	var filtered []*QueryTemplate
	for _, t := range l.templates {
		if t.Category == category {
			filtered = append(filtered, t)
		}
	}
	return filtered
}

// GetByID returns the template with the given ID, if loaded.
func (l *TemplateLoader) GetByID(id string) (*QueryTemplate, bool) {
	for _, t := range l.templates {
		if t.ID == id {
			return t, true
		}
	}
	return nil, false
}

func validateTemplate(t *QueryTemplate) error {
	if t.ID == "" {
		return fmt.Errorf("template is missing an id")
	}
	if t.Name == "" {
		return fmt.Errorf("template %s is missing a name", t.ID)
	}
	if t.Query == "" {
		return fmt.Errorf("template %s is missing a query", t.ID)
	}
	if t.Category == "" {
		return fmt.Errorf("template %s is missing a category", t.ID)
	}
	return nil
}
