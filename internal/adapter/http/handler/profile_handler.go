package handler

import (
	"context"
	"net/http"

	"github.com/iho/paisa/internal/adapter/http/dto"
	"github.com/iho/paisa/internal/domain"
	"github.com/iho/paisa/internal/usecase"
)

// ProfileService defines the onboarding and preference operations.
type ProfileService interface {
	Onboard(ctx context.Context, input usecase.OnboardInput) (*domain.Profile, error)
	Current(ctx context.Context) (*domain.Profile, error)
	ChangeLanguage(ctx context.Context, language string) (*domain.Profile, error)
	SignOut(ctx context.Context) error
	Theme(ctx context.Context) domain.Theme
	SetTheme(ctx context.Context, theme string) (domain.Theme, error)
}

// ProfileHandler handles onboarding, language and theme requests.
type ProfileHandler struct {
	profiles ProfileService
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(profiles ProfileService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

// Get returns the profile, or 404 while onboarding is pending.
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.profiles.Current(r.Context())
	if err != nil {
		writeDomainError(w, "failed to get profile", err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ProfileFromDomain(p))
}

func (h *ProfileHandler) Onboard(w http.ResponseWriter, r *http.Request) {
	var req dto.OnboardRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	p, err := h.profiles.Onboard(r.Context(), usecase.OnboardInput{Name: req.Name, Language: req.Language})
	if err != nil {
		writeDomainError(w, "failed to onboard", err)
		return
	}
	writeJSON(w, http.StatusCreated, dto.ProfileFromDomain(p))
}

// SignOut clears the profile. Transactions are kept.
func (h *ProfileHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	if err := h.profiles.SignOut(r.Context()); err != nil {
		writeDomainError(w, "failed to sign out", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ProfileHandler) ChangeLanguage(w http.ResponseWriter, r *http.Request) {
	var req dto.LanguageRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	p, err := h.profiles.ChangeLanguage(r.Context(), req.Language)
	if err != nil {
		writeDomainError(w, "failed to change language", err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ProfileFromDomain(p))
}

func (h *ProfileHandler) GetTheme(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dto.ThemeResponse{Theme: string(h.profiles.Theme(r.Context()))})
}

func (h *ProfileHandler) SetTheme(w http.ResponseWriter, r *http.Request) {
	var req dto.ThemeRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	theme, err := h.profiles.SetTheme(r.Context(), req.Theme)
	if err != nil {
		writeDomainError(w, "failed to set theme", err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ThemeResponse{Theme: string(theme)})
}
