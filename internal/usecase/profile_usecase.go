package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/iho/paisa/internal/domain"
)

// ProfileUseCase handles cosmetic onboarding and display preferences.
type ProfileUseCase struct {
	repo  ProfileRepository
	clock Clock
	log   zerolog.Logger
}

// NewProfileUseCase creates a new ProfileUseCase.
func NewProfileUseCase(repo ProfileRepository, clock Clock, log zerolog.Logger) *ProfileUseCase {
	if clock == nil {
		clock = SystemClock{}
	}
	return &ProfileUseCase{repo: repo, clock: clock, log: log}
}

// OnboardInput represents input for onboarding.
type OnboardInput struct {
	Name     string
	Language string
}

// Onboard stores the profile. Empty name and language take defaults.
func (uc *ProfileUseCase) Onboard(ctx context.Context, input OnboardInput) (*domain.Profile, error) {
	name := strings.TrimSpace(input.Name)
	if err := domain.ValidateName(name); err != nil {
		return nil, err
	}
	if name == "" {
		name = domain.DefaultProfileName
	}

	lang, err := domain.ParseLanguage(input.Language)
	if err != nil {
		return nil, err
	}

	profile := domain.Profile{
		Name:      name,
		Language:  lang,
		CreatedAt: uc.clock.Now(),
	}
	if err := uc.repo.SaveProfile(ctx, profile); err != nil {
		return nil, err
	}

	uc.log.Info().Str("language", string(lang)).Msg("profile onboarded")
	return &profile, nil
}

// Current returns the stored profile or domain.ErrNotOnboarded.
func (uc *ProfileUseCase) Current(ctx context.Context) (*domain.Profile, error) {
	return uc.profile(ctx)
}

// profile discards an unreadable stored profile so the user onboards again.
func (uc *ProfileUseCase) profile(ctx context.Context) (*domain.Profile, error) {
	p, err := uc.repo.GetProfile(ctx)
	if errors.Is(err, domain.ErrNotOnboarded) {
		if err != domain.ErrNotOnboarded {
			uc.log.Warn().Err(err).Msg("stored profile unreadable, treating as not onboarded")
		}
		return nil, domain.ErrNotOnboarded
	}
	return p, err
}

// Language returns the profile language, or DefaultLanguage before onboarding.
func (uc *ProfileUseCase) Language(ctx context.Context) domain.Language {
	p, err := uc.profile(ctx)
	if err != nil || p.Language == "" {
		return domain.DefaultLanguage
	}
	return p.Language
}

// ChangeLanguage updates the language of the onboarded profile.
func (uc *ProfileUseCase) ChangeLanguage(ctx context.Context, language string) (*domain.Profile, error) {
	lang, err := domain.ParseLanguage(language)
	if err != nil {
		return nil, err
	}

	p, err := uc.profile(ctx)
	if err != nil {
		return nil, err
	}

	p.Language = lang
	if err := uc.repo.SaveProfile(ctx, *p); err != nil {
		return nil, err
	}
	return p, nil
}

// SignOut removes the profile. Transactions are kept.
func (uc *ProfileUseCase) SignOut(ctx context.Context) error {
	if err := uc.repo.DeleteProfile(ctx); err != nil && !errors.Is(err, domain.ErrKeyNotFound) {
		return err
	}
	uc.log.Info().Msg("signed out")
	return nil
}

// Theme returns the stored theme. Missing or unreadable values yield light.
func (uc *ProfileUseCase) Theme(ctx context.Context) domain.Theme {
	theme, err := uc.repo.GetTheme(ctx)
	if err != nil {
		if !errors.Is(err, domain.ErrKeyNotFound) {
			uc.log.Warn().Err(err).Msg("theme unreadable, using light")
		}
		return domain.ThemeLight
	}
	return theme
}

// SetTheme stores the theme preference.
func (uc *ProfileUseCase) SetTheme(ctx context.Context, theme string) (domain.Theme, error) {
	t, err := domain.ParseTheme(theme)
	if err != nil {
		return "", err
	}
	if err := uc.repo.SaveTheme(ctx, t); err != nil {
		return "", err
	}
	return t, nil
}
