package generator

import (
	"bytes"
	"embed"
	"os"
	"path/filepath"
	"strings"
	"text/template"
	"unicode"

	"noa/internal/services"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var fileTemplates = template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))

type templateData struct {
	Name        string
	DisplayName string
	Module      string
	Port        int
	Endpoints   []endpoint
}

// GetEndpoints returns the endpoints served over GET; the test stub template
// only exercises those, the process endpoint is covered through process().
func (d templateData) GetEndpoints() []endpoint {
	var out []endpoint
	for _, e := range d.Endpoints {
		if e.Kind != "process" {
			out = append(out, e)
		}
	}
	return out
}

type endpoint struct {
	Path     string
	Kind     string
	Handler  string
	TestName string
	Service  string
}

func buildEndpoints(service string, paths []string) []endpoint {
	endpoints := make([]endpoint, 0, len(paths))
	for _, path := range paths {
		e := endpoint{Path: path, Service: service}
		switch path {
		case "/":
			e.Kind = "root"
			e.Handler = "handleRoot"
		case "/health":
			e.Kind = "health"
			e.Handler = "handleHealth"
		case "/process":
			e.Kind = "process"
			e.Handler = "handleProcess"
		default:
			e.Kind = "generic"
			e.Handler = "handle" + exportedName(path)
		}
		e.TestName = strings.ToUpper(e.Handler[:1]) + e.Handler[1:]
		endpoints = append(endpoints, e)
	}
	return endpoints
}

// exportedName turns an endpoint path into a Go identifier suffix:
// "/graph-extract" becomes "GraphExtract".
func exportedName(path string) string {
	var b strings.Builder
	upperNext := true
	for _, r := range path {
		if r == '/' || r == '-' || r == '_' || r == '.' {
			upperNext = true
			continue
		}
		if upperNext {
			b.WriteRune(unicode.ToUpper(r))
			upperNext = false
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func (g *ServiceGenerator) renderFiles(servicePath string, data templateData) ([]string, error) {
	outputs := []struct {
		template string
		path     string
	}{
		{"main.go.tmpl", filepath.Join(servicePath, "main.go")},
		{"main_test.go.tmpl", filepath.Join(servicePath, "main_test.go")},
		{"go.mod.tmpl", filepath.Join(servicePath, "go.mod")},
		{"Dockerfile.tmpl", filepath.Join(servicePath, "Dockerfile")},
	}

	files := make([]string, 0, len(outputs))
	for _, out := range outputs {
		var buf bytes.Buffer
		if err := fileTemplates.ExecuteTemplate(&buf, out.template, data); err != nil {
			return nil, services.Wrap(services.ErrConfiguration, AgentName, "render template", out.template, err)
		}
		if err := os.WriteFile(out.path, buf.Bytes(), 0o644); err != nil {
			return nil, services.Wrap(services.ErrWorkspace, AgentName, "write file", out.path, err)
		}
		files = append(files, out.path)
	}
	return files, nil
}
