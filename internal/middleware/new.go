package middleware

import (
	"habit-notes/pkg/log"
)

// Config configures the shared gin middlewares.
type Config struct {
	RateLimitPerMin     int
	TelegramSecretToken string
}

type Middleware struct {
	l             log.Logger
	limiter       *rateLimiter
	telegramToken string
}

func New(l log.Logger, cfg Config) Middleware {
	return Middleware{
		l:             l,
		limiter:       newRateLimiter(cfg.RateLimitPerMin),
		telegramToken: cfg.TelegramSecretToken,
	}
}
