package templates

import (
	"bytes"
	"fmt"
	"html/template"
	"path/filepath"
	"strings"
)

// Manager holds named template groups. Each group is parsed once at
// startup; the first file of a group is the one executed.
type Manager struct {
	templates map[string]managedTemplate
}

type managedTemplate struct {
	Main string
	Tmpl *template.Template
}

// Group declares one named template group for the manager.
type Group struct {
	Name  string
	Files []string
}

var templateFuncMap = template.FuncMap{
	"contains": strings.Contains,
	"replace":  strings.ReplaceAll,
	"iterate": func(count uint) []uint {
		items := make([]uint, count)
		for i := range count {
			items[i] = i
		}
		return items
	},
	"inc": func(i int) int {
		return i + 1
	},
	"safeHTML": func(s string) template.HTML {
		return template.HTML(s)
	},
}

func NewManager(groups ...Group) (*Manager, error) {
	templateMap := make(map[string]managedTemplate)

	for _, group := range groups {
		tmpl := template.New(group.Name).Funcs(templateFuncMap)
		tmpl, err := tmpl.ParseFiles(group.Files...)
		if err != nil {
			return nil, err
		}
		templateMap[group.Name] = managedTemplate{
			Main: filepath.Base(group.Files[0]),
			Tmpl: tmpl,
		}
	}

	return &Manager{templates: templateMap}, nil
}

func (m *Manager) Render(name string, data any) ([]byte, error) {
	tmpl, exists := m.templates[name]
	if !exists {
		return nil, fmt.Errorf("template %s is not found", name)
	}

	var buf bytes.Buffer
	err := tmpl.Tmpl.ExecuteTemplate(&buf, tmpl.Main, data)
	return buf.Bytes(), err
}

func (m *Manager) Add(name string, files ...string) error {
	if len(files) == 0 {
		return fmt.Errorf("you can't add template without any files")
	}

	tmpl := template.New(name).Funcs(templateFuncMap)

	tmpl, err := tmpl.ParseFiles(files...)
	if err != nil {
		return fmt.Errorf("failed to add template into manager: %w", err)
	}

	m.templates[name] = managedTemplate{
		Main: filepath.Base(files[0]),
		Tmpl: tmpl,
	}
	return nil
}
