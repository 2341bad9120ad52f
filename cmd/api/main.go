package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"habit-notes/config"
	"habit-notes/internal/checklist"
	"habit-notes/internal/httpserver"
	insightUsecase "habit-notes/internal/insight/usecase"
	tgDelivery "habit-notes/internal/note/delivery/telegram"
	noteUsecase "habit-notes/internal/note/usecase"
	"habit-notes/internal/reminder/extractor"
	reminderUsecase "habit-notes/internal/reminder/usecase"
	"habit-notes/pkg/datemath"
	"habit-notes/pkg/gcalendar"
	"habit-notes/pkg/log"
	"habit-notes/pkg/telegram"
)

// @title       Habit Notes API
// @description Personal notes with keyword tagging, derived reminders and habit insights.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Habit Notes...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Storage driver: %s", cfg.Storage.Driver)

	// 3. Storage
	repo, err := openRepository(ctx, cfg.Storage, logger)
	if err != nil {
		logger.Error(ctx, "Failed to open note storage: ", err)
		return
	}
	defer repo.Close()

	// 4. DateMath parser
	dateMathParser, err := datemath.NewParser(cfg.Reminder.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Reminder.Timezone, err)
		dateMathParser, _ = datemath.NewParser("UTC")
	}

	// 5. Google Calendar client (optional)
	var calendar gcalendar.ICalendar
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
			logger.Warn(ctx, "→ Run `notesctl gcal-auth` to generate token.json")
		} else {
			calendar = calendarClient
			logger.Info(ctx, "✅ Google Calendar initialized")
		}
	}

	// 6. UseCases
	checklistSvc := checklist.New()
	reminderExtractor := extractor.New(
		extractor.WithDateMath(dateMathParser),
		extractor.WithCache(cfg.Reminder.CacheSize),
	)
	reminderUC := reminderUsecase.New(logger, reminderExtractor, calendar, dateMathParser, cfg.GoogleCalendar.CalendarID)
	noteUC := noteUsecase.New(logger, repo, checklistSvc, cfg.Storage.NotesKey, reminderUC)
	insightUC := insightUsecase.New(logger, noteUC, reminderUC, checklistSvc, dateMathParser.Location())

	// Reminders are derived state: rebuild them from the stored notes.
	notes, err := noteUC.All(ctx)
	if err != nil {
		logger.Error(ctx, "Failed to load notes: ", err)
		return
	}
	if err := reminderUC.NotesChanged(ctx, notes); err != nil {
		logger.Warnf(ctx, "Initial reminder extraction failed: %v", err)
	}
	logger.Infof(ctx, "Loaded %d note(s)", len(notes))

	// 7. Telegram (optional)
	var telegramHandler tgDelivery.Handler
	if cfg.Telegram.BotToken != "" {
		telegramBot := telegram.NewBot(cfg.Telegram.BotToken)
		telegramHandler = tgDelivery.New(logger, noteUC, reminderUC, insightUC, telegramBot)

		webhookURL, whErr := newWebhookResolver().Resolve(ctx, cfg.Telegram.WebhookURL, cfg.Telegram.NgrokAPIURL)
		if whErr != nil {
			logger.Warnf(ctx, "Could not detect ngrok URL: %v", whErr)
		}

		if webhookURL != "" {
			if whErr := telegramBot.SetWebhook(ctx, telegram.WebhookOptions{
				URL:         webhookURL,
				SecretToken: cfg.Telegram.SecretToken,
			}); whErr != nil {
				logger.Warnf(ctx, "Failed to set Telegram webhook: %v", whErr)
			} else {
				logger.Infof(ctx, "✅ Telegram webhook registered at %s", webhookURL)
			}
		}
	} else {
		logger.Warn(ctx, "Telegram skipped: TELEGRAM_BOT_TOKEN is missing")
	}

	// 8. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:              logger,
		Port:                cfg.HTTPServer.Port,
		Mode:                cfg.HTTPServer.Mode,
		Environment:         cfg.Environment.Name,
		RateLimitPerMin:     cfg.RateLimit.PerMin,
		TelegramSecretToken: cfg.Telegram.SecretToken,
		NoteUC:              noteUC,
		ReminderUC:          reminderUC,
		InsightUC:           insightUC,
		TelegramHandler:     telegramHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
