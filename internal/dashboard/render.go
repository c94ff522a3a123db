package dashboard

import (
	"embed"
	"html/template"
	"io"
	"time"

	"github.com/BuzzLyutic/todo-dashboard/internal/model"
)

//go:embed templates/*.html
var templateFS embed.FS

const timeLayout = "2006-01-02 15:04:05"

type Manifest struct {
	Name            string         `json:"name"`
	ShortName       string         `json:"short_name"`
	Description     string         `json:"description"`
	StartURL        string         `json:"start_url"`
	Display         string         `json:"display"`
	ThemeColor      string         `json:"theme_color"`
	BackgroundColor string         `json:"background_color"`
	Icons           []ManifestIcon `json:"icons"`
}

type ManifestIcon struct {
	Src   string `json:"src"`
	Sizes string `json:"sizes"`
	Type  string `json:"type"`
}

func NewManifest(basePath string) Manifest {
	return Manifest{
		Name:            "Todo Dashboard",
		ShortName:       "Dashboard",
		Description:     "Personal dashboard for markdown todos",
		StartURL:        basePath,
		Display:         "standalone",
		ThemeColor:      "#1a1a2e",
		BackgroundColor: "#1a1a2e",
		Icons: []ManifestIcon{
			{Src: basePath + "pwa-192x192.png", Sizes: "192x192", Type: "image/png"},
			{Src: basePath + "pwa-512x512.png", Sizes: "512x512", Type: "image/png"},
		},
	}
}

type Page struct {
	BasePath string
	Manifest Manifest
	View     View
}

type Renderer struct {
	tmpl     *template.Template
	location *time.Location
}

// NewRenderer parses the embedded page template. Timestamps are shown in loc.
func NewRenderer(loc *time.Location) (*Renderer, error) {
	if loc == nil {
		loc = time.Local
	}
	r := &Renderer{location: loc}

	tmpl, err := template.New("index.html").Funcs(template.FuncMap{
		"formatTime": r.formatTime,
		"isHigh":     func(p model.Priority) bool { return p == model.PriorityHigh },
	}).ParseFS(templateFS, "templates/index.html")
	if err != nil {
		return nil, err
	}
	r.tmpl = tmpl
	return r, nil
}

func (r *Renderer) Render(w io.Writer, page Page) error {
	return r.tmpl.Execute(w, page)
}

func (r *Renderer) formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.In(r.location).Format(timeLayout)
}
