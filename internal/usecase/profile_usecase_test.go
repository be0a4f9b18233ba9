package usecase_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"go.uber.org/mock/gomock"

	"github.com/iho/paisa/internal/domain"
	"github.com/iho/paisa/internal/usecase"
	"github.com/iho/paisa/internal/usecase/mocks"
)

func TestProfileUseCase_Onboard(t *testing.T) {
	tests := []struct {
		name     string
		input    usecase.OnboardInput
		wantName string
		wantLang domain.Language
		wantErr  error
	}{
		{"defaults", usecase.OnboardInput{}, domain.DefaultProfileName, domain.LanguageEnglish, nil},
		{"named urdu", usecase.OnboardInput{Name: "  Ayesha ", Language: "pk"}, "Ayesha", domain.LanguageUrdu, nil},
		{"bad language", usecase.OnboardInput{Name: "Ali", Language: "de"}, "", "", domain.ErrInvalidLanguage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mocks.NewMockProfileRepository(ctrl)
			if tt.wantErr == nil {
				repo.EXPECT().SaveProfile(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, p domain.Profile) error {
						if p.Name != tt.wantName || p.Language != tt.wantLang {
							t.Errorf("saved unexpected profile %+v", p)
						}
						if !p.CreatedAt.Equal(baseTime) {
							t.Errorf("expected CreatedAt from clock, got %s", p.CreatedAt)
						}
						return nil
					})
			}

			uc := usecase.NewProfileUseCase(repo, mocks.NewMockClock(baseTime), zerolog.Nop())
			p, err := uc.Onboard(context.Background(), tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error %v", err)
			}
			if p.Name != tt.wantName {
				t.Fatalf("expected name %q, got %q", tt.wantName, p.Name)
			}
		})
	}
}

func TestProfileUseCase_ChangeLanguage(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockProfileRepository(ctrl)

	repo.EXPECT().GetProfile(gomock.Any()).Return(&domain.Profile{Name: "Ali", Language: domain.LanguageEnglish}, nil)
	repo.EXPECT().SaveProfile(gomock.Any(), domain.Profile{Name: "Ali", Language: domain.LanguageUrdu}).Return(nil)

	uc := usecase.NewProfileUseCase(repo, nil, zerolog.Nop())
	p, err := uc.ChangeLanguage(context.Background(), "PK")
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if p.Language != domain.LanguageUrdu {
		t.Fatalf("expected pk, got %s", p.Language)
	}
}

func TestProfileUseCase_ChangeLanguageBeforeOnboarding(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockProfileRepository(ctrl)
	repo.EXPECT().GetProfile(gomock.Any()).Return(nil, domain.ErrNotOnboarded).Times(2)

	uc := usecase.NewProfileUseCase(repo, nil, zerolog.Nop())
	if _, err := uc.ChangeLanguage(context.Background(), "en"); !errors.Is(err, domain.ErrNotOnboarded) {
		t.Fatalf("expected ErrNotOnboarded, got %v", err)
	}
	if got := uc.Language(context.Background()); got != domain.DefaultLanguage {
		t.Fatalf("expected default language, got %s", got)
	}
}

func TestProfileUseCase_UnreadableProfileLoggedAndDiscarded(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockProfileRepository(ctrl)
	decodeErr := fmt.Errorf("%w: decode profile: unexpected end of JSON input", domain.ErrNotOnboarded)
	repo.EXPECT().GetProfile(gomock.Any()).Return(nil, decodeErr).Times(2)

	var buf bytes.Buffer
	uc := usecase.NewProfileUseCase(repo, nil, zerolog.New(&buf))

	p, err := uc.Current(context.Background())
	if p != nil || err != domain.ErrNotOnboarded {
		t.Fatalf("expected bare ErrNotOnboarded, got %v %v", p, err)
	}
	if !strings.Contains(buf.String(), "stored profile unreadable") {
		t.Fatalf("expected warning to be logged, got %q", buf.String())
	}
	if got := uc.Language(context.Background()); got != domain.DefaultLanguage {
		t.Fatalf("expected default language, got %s", got)
	}
}

func TestProfileUseCase_SignOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockProfileRepository(ctrl)

	gomock.InOrder(
		repo.EXPECT().DeleteProfile(gomock.Any()).Return(nil),
		repo.EXPECT().DeleteProfile(gomock.Any()).Return(domain.ErrKeyNotFound),
		repo.EXPECT().DeleteProfile(gomock.Any()).Return(errors.New("backend down")),
	)

	uc := usecase.NewProfileUseCase(repo, nil, zerolog.Nop())
	ctx := context.Background()

	if err := uc.SignOut(ctx); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if err := uc.SignOut(ctx); err != nil {
		t.Fatalf("signing out twice should succeed, got %v", err)
	}
	if err := uc.SignOut(ctx); err == nil {
		t.Fatalf("expected backend error")
	}
}

func TestProfileUseCase_Theme(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockProfileRepository(ctrl)

	gomock.InOrder(
		repo.EXPECT().GetTheme(gomock.Any()).Return(domain.Theme(""), domain.ErrKeyNotFound),
		repo.EXPECT().GetTheme(gomock.Any()).Return(domain.Theme(""), errors.New("malformed")),
		repo.EXPECT().SaveTheme(gomock.Any(), domain.ThemeDark).Return(nil),
		repo.EXPECT().GetTheme(gomock.Any()).Return(domain.ThemeDark, nil),
	)

	uc := usecase.NewProfileUseCase(repo, nil, zerolog.Nop())
	ctx := context.Background()

	if got := uc.Theme(ctx); got != domain.ThemeLight {
		t.Fatalf("expected light when missing, got %s", got)
	}
	if got := uc.Theme(ctx); got != domain.ThemeLight {
		t.Fatalf("expected light when malformed, got %s", got)
	}
	if _, err := uc.SetTheme(ctx, "dark"); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if got := uc.Theme(ctx); got != domain.ThemeDark {
		t.Fatalf("expected dark, got %s", got)
	}
	if _, err := uc.SetTheme(ctx, "neon"); !errors.Is(err, domain.ErrInvalidTheme) {
		t.Fatalf("expected ErrInvalidTheme, got %v", err)
	}
}
