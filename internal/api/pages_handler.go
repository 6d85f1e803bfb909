package api

import (
	"embed"
	"html/template"
	"net/http"

	"go.uber.org/zap"
)

//go:embed templates/*.html templates/admin/*.html
var templateFS embed.FS

// PagesHandler renders the landing page and the static admin pages.
type PagesHandler struct {
	tmpl   *template.Template
	logger *zap.Logger
}

func NewPagesHandler(logger *zap.Logger) (*PagesHandler, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html", "templates/admin/*.html")
	if err != nil {
		return nil, err
	}
	return &PagesHandler{tmpl: tmpl, logger: logger}, nil
}

func (h *PagesHandler) Index(w http.ResponseWriter, r *http.Request) {
	h.render(w, "index.html")
}

func (h *PagesHandler) AdminDashboard(w http.ResponseWriter, r *http.Request) {
	h.render(w, "dashboard.html")
}

func (h *PagesHandler) AdminUsers(w http.ResponseWriter, r *http.Request) {
	h.render(w, "users.html")
}

func (h *PagesHandler) AdminReports(w http.ResponseWriter, r *http.Request) {
	h.render(w, "reports.html")
}

func (h *PagesHandler) render(w http.ResponseWriter, name string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.tmpl.ExecuteTemplate(w, name, nil); err != nil {
		h.logger.Error("template render failed", zap.String("template", name), zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}
