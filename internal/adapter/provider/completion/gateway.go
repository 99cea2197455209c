// Package completion is the gateway to the AI text-completion providers.
// Each provider is a binding: endpoint, credential style, payload shape and
// the JSON paths the reply and error message are read from.
package completion

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/samber/lo"
	"github.com/tidwall/gjson"

	"github.com/heartmarshall/dialects-backend/internal/config"
)

// Gateway sends a single user message to a named provider and returns the reply.
// It never retries.
type Gateway struct {
	client    *resty.Client
	providers map[string]config.ProviderConfig
	log       *slog.Logger
}

// NewGateway creates a Gateway from provider settings.
func NewGateway(logger *slog.Logger, cfg config.ProvidersConfig) *Gateway {
	return &Gateway{
		client:    resty.New().SetTimeout(cfg.Timeout),
		providers: cfg.ByName(),
		log:       logger.With("adapter", "completion"),
	}
}

// Providers returns the names of all bound providers, sorted.
func (g *Gateway) Providers() []string {
	names := lo.Keys(bindings)
	slices.Sort(names)
	return names
}

// Supports reports whether name has a binding.
func (g *Gateway) Supports(name string) bool {
	_, ok := bindings[name]
	return ok
}

// Complete sends message to provider and returns the reply text.
//
// Errors: *UnknownProviderError, *MissingCredentialError, *TransportError or
// *ProviderError. A success response without a reply yields the provider's
// placeholder text, not an error.
func (g *Gateway) Complete(ctx context.Context, provider, message string) (string, error) {
	b, ok := bindings[provider]
	if !ok {
		return "", &UnknownProviderError{Provider: provider}
	}

	pc := g.providers[provider]
	if !pc.KeySet {
		return "", &MissingCredentialError{Provider: provider, display: b.display}
	}

	baseURL := lo.CoalesceOrEmpty(pc.BaseURL, b.defaultBaseURL)
	model := lo.CoalesceOrEmpty(pc.Model, b.defaultModel)
	url := strings.TrimRight(baseURL, "/") + b.path(model)

	req := g.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeaders(b.headers).
		SetBody(b.payload(model, message))

	switch b.auth {
	case authBearer:
		req.SetHeader("Authorization", "Bearer "+pc.APIKey)
	case authHeader:
		req.SetHeader(b.keyHeader, pc.APIKey)
	}

	g.log.DebugContext(ctx, "completion request",
		slog.String("provider", provider),
		slog.String("model", model),
		slog.Int("message_len", len(message)),
	)

	res, err := req.Post(url)
	if err != nil {
		g.log.WarnContext(ctx, "completion transport failed",
			slog.String("provider", provider),
			slog.String("error", err.Error()),
		)
		return "", &TransportError{Provider: provider, Err: err, display: b.display}
	}

	body := res.Body()

	if !res.IsSuccess() || !gjson.ValidBytes(body) {
		msg := gjson.GetBytes(body, b.errorPath).String()
		if msg == "" {
			msg = "فشل الاتصال بـ " + b.display
		}
		g.log.WarnContext(ctx, "completion provider error",
			slog.String("provider", provider),
			slog.Int("status", res.StatusCode()),
			slog.String("message", msg),
		)
		return "", &ProviderError{Provider: provider, Status: res.StatusCode(), Message: msg}
	}

	reply := gjson.GetBytes(body, b.replyPath).String()
	if reply == "" {
		reply = b.placeholder
	}

	g.log.DebugContext(ctx, "completion response",
		slog.String("provider", provider),
		slog.Int("status", res.StatusCode()),
		slog.Int("reply_len", len(reply)),
	)

	return reply, nil
}
