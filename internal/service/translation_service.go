package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"portfolio/backend/internal/i18n"
	"portfolio/backend/internal/logger"
	"portfolio/backend/internal/service/ai"
)

// maxDraftFields bounds how many fields one draft request may translate.
const maxDraftFields = 20

// draftConcurrency is the number of fields translated in parallel.
const draftConcurrency = 4

// TranslationDraftService produces machine translations an operator can review
// before saving them. Drafts are never persisted.
type TranslationDraftService interface {
	Draft(ctx context.Context, sourceLanguage, targetLanguage string, fields map[string]string) (map[string]string, error)
}

type translationDraftService struct {
	provider ai.Provider
	limiter  *ai.RateLimiter
}

// NewTranslationDraftService creates a draft service. A nil provider makes
// every request fail with ErrUnavailable.
func NewTranslationDraftService(provider ai.Provider, limiter *ai.RateLimiter) TranslationDraftService {
	if limiter == nil {
		limiter = ai.NewRateLimiter(ai.DefaultRateLimit)
	}
	return &translationDraftService{provider: provider, limiter: limiter}
}

func (s *translationDraftService) Draft(ctx context.Context, sourceLanguage, targetLanguage string, fields map[string]string) (map[string]string, error) {
	if s.provider == nil {
		return nil, ErrUnavailable
	}

	source := normalizeLanguage(sourceLanguage)
	target := normalizeLanguage(targetLanguage)
	if source == "" || target == "" {
		return nil, invalidf("sourceLanguage and targetLanguage are required")
	}
	if source == target {
		return nil, invalidf("sourceLanguage and targetLanguage must differ")
	}
	if !i18n.IsSupported(source) || !i18n.IsSupported(target) {
		return nil, invalidf("languages must be one of " + strings.Join(i18n.SupportedLanguages, ", "))
	}
	if len(fields) == 0 {
		return nil, invalidf("fields are required")
	}
	if len(fields) > maxDraftFields {
		return nil, invalidf(fmt.Sprintf("at most %d fields can be translated at once", maxDraftFields))
	}

	var mu sync.Mutex
	result := make(map[string]string, len(fields))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(draftConcurrency)
	for name, text := range fields {
		if strings.TrimSpace(text) == "" {
			mu.Lock()
			result[name] = ""
			mu.Unlock()
			continue
		}
		g.Go(func() error {
			if err := s.limiter.Wait(gctx); err != nil {
				return err
			}
			translated, err := s.provider.Complete(gctx, ai.GetTranslateFieldPrompt(name, source, target), ai.WrapInput(text))
			if err != nil {
				return fmt.Errorf("translate %s: %w", name, err)
			}
			mu.Lock()
			result[name] = translated
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logger.Warn("translation draft failed", "module", "service", "action", "translate", "resource", "ai", "result", "failed", "provider", s.provider.Name(), "error", err)
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	logger.Info("translation draft ready", "module", "service", "action", "translate", "resource", "ai", "result", "ok", "provider", s.provider.Name(), "fields", len(fields), "target", target)
	return result, nil
}
