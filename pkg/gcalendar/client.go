package gcalendar

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/oauth2"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// Client wraps the Google Calendar API service.
type Client struct {
	service *calendar.Service
}

// NewClientFromToken creates a Calendar client authenticated with a
// pre-obtained bearer token. A non-empty endpoint overrides the API base URL.
func NewClientFromToken(ctx context.Context, accessToken, endpoint string) (*Client, error) {
	if accessToken == "" {
		return nil, errors.New("gcalendar: access token is required")
	}
	ts := oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: accessToken,
		TokenType:   "Bearer",
	})

	opts := []option.ClientOption{option.WithTokenSource(ts)}
	if endpoint != "" {
		opts = append(opts, option.WithEndpoint(endpoint))
	}

	svc, err := calendar.NewService(ctx, opts...)
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

// UpsertEvent writes the event under its own ID with a PUT. When the remote
// calendar does not know the ID yet, the event is inserted with that ID.
func (c *Client) UpsertEvent(ctx context.Context, calendarID string, req EventPayload) (*Event, error) {
	if req.ID == "" {
		return nil, errors.New("gcalendar: event id is required")
	}
	if calendarID == "" {
		calendarID = "primary"
	}

	body := req.toAPI()
	saved, err := c.service.Events.Update(calendarID, req.ID, body).Context(ctx).Do()
	if isNotFound(err) {
		saved, err = c.service.Events.Insert(calendarID, body).Context(ctx).Do()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to upsert calendar event %s: %w", req.ID, err)
	}

	return &Event{
		ID:       saved.Id,
		Summary:  saved.Summary,
		HtmlLink: saved.HtmlLink,
		Status:   saved.Status,
	}, nil
}

func isNotFound(err error) bool {
	var apiErr *googleapi.Error
	return errors.As(err, &apiErr) && apiErr.Code == http.StatusNotFound
}

func (p EventPayload) toAPI() *calendar.Event {
	ev := &calendar.Event{
		Id:          p.ID,
		Summary:     p.Summary,
		Description: p.Description,
		Location:    p.Location,
		ColorId:     p.ColorID,
		Start:       p.Start.toAPI(),
		End:         p.End.toAPI(),
	}
	if p.SourceURL != "" {
		ev.Source = &calendar.EventSource{Title: p.SourceTitle, Url: p.SourceURL}
	}
	return ev
}

func (t EventTime) toAPI() *calendar.EventDateTime {
	if t.Date != "" {
		return &calendar.EventDateTime{Date: t.Date}
	}
	return &calendar.EventDateTime{
		// RFC 3339 keeps the offset; TimeZone names the zone for recurring display.
		DateTime: t.DateTime.Format(time.RFC3339),
		TimeZone: t.TimeZone,
	}
}
