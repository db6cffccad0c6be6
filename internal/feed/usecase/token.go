package usecase

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"venue-calendar/internal/feed"
	settingsRepo "venue-calendar/internal/settings/repository"
)

const (
	maxTokenLength    = 64
	defaultQueryParam = "calendar_feed"
	defaultTokenParam = "token"
)

// Enabled reports whether the feed is switched on.
func (uc *implUseCase) Enabled() bool {
	return uc.cfg.Enabled
}

// Authorize checks token against the stored feed token.
func (uc *implUseCase) Authorize(ctx context.Context, token string) error {
	if !uc.Enabled() {
		return feed.ErrFeedDisabled
	}

	stored, err := uc.storedToken(ctx)
	if errors.Is(err, feed.ErrTokenNotFound) {
		return feed.ErrAccessDenied
	}
	if err != nil {
		return err
	}

	if token == "" || subtle.ConstantTimeCompare([]byte(token), []byte(stored)) != 1 {
		return feed.ErrAccessDenied
	}
	return nil
}

// FeedURL returns the subscription URL of the current token. With
// input.Create a missing token is generated first.
func (uc *implUseCase) FeedURL(ctx context.Context, input feed.FeedURLInput) (feed.FeedURLOutput, error) {
	token, err := uc.storedToken(ctx)
	if err == nil {
		return uc.output(token, false), nil
	}
	if !errors.Is(err, feed.ErrTokenNotFound) || !input.Create {
		return feed.FeedURLOutput{}, err
	}

	token = generateToken()
	if err := uc.saveToken(ctx, token); err != nil {
		return feed.FeedURLOutput{}, err
	}
	uc.l.Infof(ctx, "feed.usecase.FeedURL: generated feed token")
	return uc.output(token, true), nil
}

// RegenerateToken stores a fresh token.
func (uc *implUseCase) RegenerateToken(ctx context.Context) (feed.FeedURLOutput, error) {
	token := generateToken()
	if err := uc.saveToken(ctx, token); err != nil {
		return feed.FeedURLOutput{}, err
	}
	uc.l.Infof(ctx, "feed.usecase.RegenerateToken: feed token replaced")
	return uc.output(token, true), nil
}

// SetToken stores a caller-supplied token reduced to letters and digits.
func (uc *implUseCase) SetToken(ctx context.Context, input feed.SetTokenInput) (feed.FeedURLOutput, error) {
	token := SanitizeToken(input.Token)
	if token == "" {
		return feed.FeedURLOutput{}, feed.ErrInvalidToken
	}
	if err := uc.saveToken(ctx, token); err != nil {
		return feed.FeedURLOutput{}, err
	}
	return uc.output(token, false), nil
}

// SanitizeToken keeps ASCII letters and digits and caps the length at 64.
func SanitizeToken(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if b.Len() == maxTokenLength {
			break
		}
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// generateToken returns 32 lower-case hex characters.
func generateToken() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

func (uc *implUseCase) storedToken(ctx context.Context) (string, error) {
	if uc.settings == nil {
		return "", feed.ErrTokenNotFound
	}
	token, err := uc.settings.Get(ctx, feed.TokenSettingKey)
	if errors.Is(err, settingsRepo.ErrNotFound) || (err == nil && token == "") {
		return "", feed.ErrTokenNotFound
	}
	if err != nil {
		uc.l.Errorf(ctx, "feed.usecase.storedToken: %v", err)
		return "", fmt.Errorf("read feed token: %w", err)
	}
	return token, nil
}

func (uc *implUseCase) saveToken(ctx context.Context, token string) error {
	if uc.settings == nil {
		return feed.ErrMissingCollaborator
	}
	if err := uc.settings.Set(ctx, feed.TokenSettingKey, token); err != nil {
		uc.l.Errorf(ctx, "feed.usecase.saveToken: %v", err)
		return fmt.Errorf("save feed token: %w", err)
	}
	return nil
}

func (uc *implUseCase) output(token string, created bool) feed.FeedURLOutput {
	return feed.FeedURLOutput{
		URL:     uc.feedURL(token),
		Token:   token,
		Created: created,
	}
}

func (uc *implUseCase) feedURL(token string) string {
	queryParam := uc.cfg.QueryParam
	if queryParam == "" {
		queryParam = defaultQueryParam
	}
	tokenParam := uc.cfg.TokenParam
	if tokenParam == "" {
		tokenParam = defaultTokenParam
	}

	u, err := url.Parse(uc.cfg.SiteURL)
	if err != nil {
		u = &url.URL{}
	}
	if u.Path == "" {
		u.Path = "/"
	}
	q := u.Query()
	q.Set(queryParam, "1")
	q.Set(tokenParam, token)
	u.RawQuery = q.Encode()
	return u.String()
}
