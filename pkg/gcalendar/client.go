package gcalendar

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

const dateLayout = "2006-01-02"

// DefaultTokenPath is where an OAuth desktop-app token is looked up.
const DefaultTokenPath = "token.json"

// ErrEmptyTitle is returned when a reminder event has no title.
var ErrEmptyTitle = errors.New("gcalendar: event title is required")

// Client wraps the Google Calendar API service.
type Client struct {
	service *calendar.Service
}

// NewClientFromCredentialsFile creates a Calendar client from a credentials
// file. Service-account keys are used directly; OAuth desktop-app
// credentials need a token next to the binary (DefaultTokenPath).
func NewClientFromCredentialsFile(ctx context.Context, credentialsPath string) (*Client, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return NewClientFromCredentialsJSON(ctx, data)
}

// NewClientFromCredentialsJSON creates a Calendar client from raw credentials JSON.
func NewClientFromCredentialsJSON(ctx context.Context, credentialsJSON []byte) (*Client, error) {
	ts, err := tokenSource(ctx, credentialsJSON, DefaultTokenPath)
	if err != nil {
		return nil, err
	}
	svc, err := calendar.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &Client{service: svc}, nil
}

// NewClientFromHTTP creates a Calendar client from a pre-configured HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client) (*Client, error) {
	svc, err := calendar.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &Client{service: svc}, nil
}

func tokenSource(ctx context.Context, credentialsJSON []byte, tokenPath string) (oauth2.TokenSource, error) {
	jwtCfg, jwtErr := google.JWTConfigFromJSON(credentialsJSON, calendar.CalendarEventsScope)
	if jwtErr == nil {
		return jwtCfg.TokenSource(ctx), nil
	}

	var creds struct {
		Installed struct {
			ClientID     string `json:"client_id"`
			ClientSecret string `json:"client_secret"`
		} `json:"installed"`
	}
	if err := json.Unmarshal(credentialsJSON, &creds); err != nil || creds.Installed.ClientID == "" {
		return nil, fmt.Errorf("unsupported credentials format: %w", jwtErr)
	}

	raw, err := os.ReadFile(tokenPath)
	if err != nil {
		return nil, fmt.Errorf("oauth desktop credentials need %s: %w", tokenPath, err)
	}
	var tok oauth2.Token
	if err := json.Unmarshal(raw, &tok); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", tokenPath, err)
	}

	cfg := &oauth2.Config{
		ClientID:     creds.Installed.ClientID,
		ClientSecret: creds.Installed.ClientSecret,
		Scopes:       []string{calendar.CalendarEventsScope},
		Endpoint:     google.Endpoint,
	}
	return cfg.TokenSource(ctx, &tok), nil
}

// ScheduleReminder creates a calendar event for a reminder. All-day events
// use date-only boundaries; timed events default to DefaultDuration.
func (c *Client) ScheduleReminder(ctx context.Context, ev ReminderEvent) (Event, error) {
	if strings.TrimSpace(ev.Title) == "" {
		return Event{}, ErrEmptyTitle
	}

	start, end := ev.Start, ev.End
	body := &calendar.Event{
		Summary:     ev.Title,
		Description: ev.Details,
	}
	if ev.AllDay {
		if end.IsZero() || !end.After(start) {
			end = start.AddDate(0, 0, 1)
		}
		body.Start = &calendar.EventDateTime{Date: start.Format(dateLayout)}
		body.End = &calendar.EventDateTime{Date: end.Format(dateLayout)}
	} else {
		if end.IsZero() || !end.After(start) {
			end = start.Add(DefaultDuration)
		}
		body.Start = &calendar.EventDateTime{DateTime: start.Format(time.RFC3339), TimeZone: ev.Timezone}
		body.End = &calendar.EventDateTime{DateTime: end.Format(time.RFC3339), TimeZone: ev.Timezone}
	}

	calendarID := ev.CalendarID
	if calendarID == "" {
		calendarID = DefaultCalendarID
	}

	created, err := c.service.Events.Insert(calendarID, body).Context(ctx).Do()
	if err != nil {
		return Event{}, fmt.Errorf("failed to create calendar event: %w", err)
	}

	return Event{
		ID:     created.Id,
		Title:  created.Summary,
		Link:   created.HtmlLink,
		Start:  start,
		End:    end,
		AllDay: ev.AllDay,
	}, nil
}
