package handler

import (
	"bytes"
	"context"
	"embed"
	"html/template"
	"net/http"

	"github.com/iho/paisa/internal/adapter/http/dto"
	"github.com/iho/paisa/internal/domain"
	"github.com/iho/paisa/internal/usecase"
)

//go:embed templates/report.html
var templatesFS embed.FS

var reportTemplate = template.Must(template.ParseFS(templatesFS, "templates/report.html"))

// ReportService defines the read models used by ReportHandler.
type ReportService interface {
	Dashboard() usecase.Dashboard
	History(f domain.Filter) usecase.History
	Report() usecase.Report
	Categories(txType string) ([]domain.CategoryInfo, error)
}

// LanguageSource returns the user's display language.
type LanguageSource interface {
	Language(ctx context.Context) domain.Language
}

// ReportHandler serves the dashboard, history, reports and category catalog.
type ReportHandler struct {
	reports  ReportService
	language LanguageSource
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reports ReportService, language LanguageSource) *ReportHandler {
	return &ReportHandler{reports: reports, language: language}
}

func (h *ReportHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dto.DashboardFromUseCase(h.reports.Dashboard()))
}

// History filters by the type, category and range query parameters.
func (h *ReportHandler) History(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f, err := domain.ParseFilter(q.Get("type"), q.Get("category"), q.Get("range"))
	if err != nil {
		writeDomainError(w, "invalid filter", err)
		return
	}
	writeJSON(w, http.StatusOK, dto.HistoryFromUseCase(h.reports.History(f)))
}

func (h *ReportHandler) Reports(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dto.ReportFromUseCase(h.reports.Report()))
}

// Print renders the report as a standalone printable page.
func (h *ReportHandler) Print(w http.ResponseWriter, r *http.Request) {
	lang := requestLanguage(r, h.language)
	report := h.reports.Report()

	var buf bytes.Buffer
	err := reportTemplate.Execute(&buf, struct {
		usecase.Report
		Lang    domain.Language
		Strings domain.Strings
	}{
		Report:  report,
		Lang:    lang,
		Strings: domain.StringsFor(lang),
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to render report", err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

func (h *ReportHandler) Categories(w http.ResponseWriter, r *http.Request) {
	cats, err := h.reports.Categories(r.URL.Query().Get("type"))
	if err != nil {
		writeDomainError(w, "invalid category type", err)
		return
	}
	writeJSON(w, http.StatusOK, dto.CategoriesFromDomain(cats))
}

// requestLanguage prefers a valid lang query parameter over the stored preference.
func requestLanguage(r *http.Request, source LanguageSource) domain.Language {
	if q := r.URL.Query().Get("lang"); q != "" {
		if lang, err := domain.ParseLanguage(q); err == nil {
			return lang
		}
	}
	if source == nil {
		return domain.DefaultLanguage
	}
	return source.Language(r.Context())
}
