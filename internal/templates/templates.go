package templates

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"

	"github.com/warblerhq/warbler/internal/logger"
	"github.com/warblerhq/warbler/internal/models"
)

// Data carries everything the layout and pages can render. Handlers
// fill in the fields their page needs and leave the rest zero.
type Data struct {
	CurrentUser *models.User
	Flashes     []string

	User           *models.User
	Users          []models.User
	Messages       []models.Message
	Timeline       []models.TimelineMessage
	Message        *models.Message
	Author         *models.User
	Search         string
	IsFollowing    bool
	MessageCount   int64
	FollowingCount int
	FollowersCount int

	// Sticky form values for re-renders after a failed submit.
	FormUsername string
	FormEmail    string
}

// Renderer holds the parsed page templates.
type Renderer struct {
	pages map[string]*template.Template
}

// New parses the layout and every page template.
func New() (*Renderer, error) {
	layout, err := template.New("layout").Funcs(template.FuncMap{
		"date": func(t interface{ Format(string) string }) string {
			return t.Format("02 January 2006")
		},
	}).Parse(layoutHTML)
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}

	r := &Renderer{pages: make(map[string]*template.Template, len(pageHTML))}
	for name, html := range pageHTML {
		page, err := layout.Clone()
		if err != nil {
			return nil, err
		}
		if _, err := page.Parse(html); err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		r.pages[name] = page
	}

	return r, nil
}

// Render writes the named page with the given status. The page is
// executed into a buffer first so a template error never leaks half a
// document.
func (r *Renderer) Render(w http.ResponseWriter, status int, name string, data *Data) {
	page, ok := r.pages[name]
	if !ok {
		logger.Log.Errorw("unknown template", "name", name)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if data == nil {
		data = &Data{}
	}

	var buf bytes.Buffer
	if err := page.Execute(&buf, data); err != nil {
		logger.Log.Errorw("failed to render template", "name", name, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}
