package usecase

import (
	"fmt"
	"strings"

	"venue-calendar/internal/calsync"
	"venue-calendar/internal/model"
	"venue-calendar/pkg/gcalendar"
)

const (
	maxExternalIDLen = 1024
	stampLayout      = "20060102t150405"
	dateLayout       = "2006-01-02"
)

// payload maps one feed entry onto a remote event.
func (uc *implUseCase) payload(e model.Entry, fc model.FeedContext) (gcalendar.EventPayload, error) {
	occ := e.Occurrence
	if occ.Start.IsZero() || occ.End.Before(occ.Start) {
		return gcalendar.EventPayload{}, fmt.Errorf("%w: invalid time range", calsync.ErrPayloadBuild)
	}
	summary := uc.composer.Summary(e)
	if summary == "" {
		return gcalendar.EventPayload{}, fmt.Errorf("%w: empty summary", calsync.ErrPayloadBuild)
	}

	p := gcalendar.EventPayload{
		ID:          uc.externalID(e),
		Summary:     summary,
		Description: uc.composer.Description(e),
		Location:    uc.composer.Location(e),
		ColorID:     ColorID(uc.composer.Color(e), e.Event.ID),
		SourceTitle: fc.CalendarName,
		SourceURL:   e.Event.Permalink,
	}

	if occ.AllDay {
		loc := fc.Location
		if loc == nil {
			loc = occ.Start.Location()
		}
		p.Start = gcalendar.EventTime{Date: occ.Start.In(loc).Format(dateLayout)}
		p.End = gcalendar.EventTime{Date: occ.End.In(loc).Format(dateLayout)}
		return p, nil
	}

	p.Start = gcalendar.EventTime{DateTime: occ.Start, TimeZone: fc.TimezoneName}
	p.End = gcalendar.EventTime{DateTime: occ.End, TimeZone: fc.TimezoneName}
	return p, nil
}

// externalID returns the remote id of an entry. It is derived from the
// event id and the UTC start only, so repeated syncs address the same
// remote event. Google accepts lowercase base32hex ids, so anything outside
// [0-9a-v] is dropped.
func (uc *implUseCase) externalID(e model.Entry) string {
	kind, id := "", e.Event.ID
	if e.IsClosure() {
		kind, id = "closure", -id
	}
	raw := fmt.Sprintf("%s-%s%d-%s", uc.cfg.IDPrefix, kind, id, e.Occurrence.Start.UTC().Format(stampLayout))
	return sanitizeID(raw)
}

func sanitizeID(raw string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(raw) {
		if (r >= '0' && r <= '9') || (r >= 'a' && r <= 'v') {
			b.WriteRune(r)
		}
		if b.Len() >= maxExternalIDLen {
			break
		}
	}
	return b.String()
}
