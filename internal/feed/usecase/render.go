package usecase

import (
	"context"
	"fmt"
	"mime"
	"net/url"
	"path"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"

	"venue-calendar/internal/feed/compose"
	"venue-calendar/internal/model"
)

const (
	utcLayout = "20060102T150405Z"

	refreshInterval  = "PT1H"
	placeholderTitle = "No upcoming events"
)

// Feed builds a fresh context and renders it. Build failures degrade to an
// empty calendar so clients always receive a parseable document.
func (uc *implUseCase) Feed(ctx context.Context) []byte {
	fc, err := uc.BuildContext(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "feed.usecase.Feed: build context: %v", err)
		return uc.emptyCalendar()
	}
	return uc.RenderICS(ctx, fc)
}

// RenderICS serializes the entries of fc. A feed without entries carries a
// single placeholder event.
func (uc *implUseCase) RenderICS(ctx context.Context, fc model.FeedContext) []byte {
	host := compose.SiteHost(fc.SiteURL)
	stamp := uc.now()

	cal := newCalendar(host)
	cal.SetCalscale("GREGORIAN")
	cal.SetMethod(ical.MethodPublish)
	cal.SetRefreshInterval(refreshInterval)
	cal.SetXPublishedTTL(refreshInterval)
	if name := text(fc.CalendarName); name != "" {
		cal.SetName(name)
	}
	if fc.TimezoneName != "" {
		cal.SetXWRTimezone(fc.TimezoneName)
	}

	entries := uc.Entries(ctx, fc)
	if len(entries) == 0 {
		uc.addPlaceholder(cal, host, stamp)
	}
	for _, e := range entries {
		uc.addEntry(cal, e, host, stamp)
	}

	return []byte(cal.Serialize(ical.WithNewLineWindows))
}

func (uc *implUseCase) emptyCalendar() []byte {
	cal := newCalendar(compose.SiteHost(uc.cfg.SiteURL))
	return []byte(cal.Serialize(ical.WithNewLineWindows))
}

func newCalendar(host string) *ical.Calendar {
	cal := ical.NewCalendar()
	cal.SetProductId(prodID(host))
	return cal
}

func (uc *implUseCase) addPlaceholder(cal *ical.Calendar, host string, stamp time.Time) {
	today := uc.dates.StartOfDay(stamp)

	ev := cal.AddEvent("no-upcoming-events@" + host)
	ev.SetDtStampTime(stamp)
	ev.SetAllDayStartAt(today)
	ev.SetAllDayEndAt(uc.dates.NextDay(today))
	ev.SetSummary(placeholderTitle)
	ev.SetTimeTransparency(ical.TransparencyTransparent)
}

func (uc *implUseCase) addEntry(cal *ical.Calendar, e model.Entry, host string, stamp time.Time) {
	occ := e.Occurrence
	c := uc.composer

	ev := cal.AddEvent(entryUID(e, host))
	ev.SetDtStampTime(stamp)
	if occ.AllDay {
		loc := uc.dates.Location()
		ev.SetAllDayStartAt(occ.Start.In(loc))
		ev.SetAllDayEndAt(occ.End.In(loc))
		ev.SetProperty(allDayFlag, "TRUE")
	} else {
		ev.SetStartAt(occ.Start)
		ev.SetEndAt(occ.End)
	}

	if v := text(c.Summary(e)); v != "" {
		ev.SetSummary(v)
	}
	if v := text(c.Location(e)); v != "" {
		ev.SetLocation(v)
	}
	if v := text(c.Description(e)); v != "" {
		ev.SetDescription(v)
	}
	if e.Event.Permalink != "" {
		ev.SetURL(e.Event.Permalink)
	}
	for _, cat := range c.Categories(e) {
		if v := text(cat); v != "" {
			ev.AddCategory(v)
		}
	}
	if color := c.Color(e); color != "" {
		ev.SetColor(color)
	}
	if u := e.Event.CoverImageURL; u != "" {
		if mt := attachType(u); mt != "" {
			ev.AddAttachmentURL(u, mt)
		} else {
			ev.AddAttachment(u)
		}
	}

	if e.IsClosure() {
		ev.SetTimeTransparency(ical.TransparencyOpaque)
	} else {
		ev.SetStatus(icsStatus(occ.Status))
	}
}

// allDayFlag marks all-day events for Outlook.
const allDayFlag = ical.ComponentProperty("X-MICROSOFT-CDO-ALLDAYEVENT")

// text prepares a TEXT value. Line breaks are normalized to LF, the only
// break TEXT can encode, so a lone CR or CRLF reads back as LF.
func text(s string) string {
	return lineBreaks.Replace(s)
}

var lineBreaks = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// entryUID is stable for a given event, start instant and site.
func entryUID(e model.Entry, host string) string {
	kind, id := "event", e.Event.ID
	if e.IsClosure() {
		kind, id = "closure", -id
	}
	return fmt.Sprintf("%s-%d-%s@%s", kind, id, e.Occurrence.Start.UTC().Format(utcLayout), host)
}

func prodID(host string) string {
	return "-//" + host + "//Venue Calendar//EN"
}

func icsStatus(s model.Status) ical.ObjectStatus {
	switch s {
	case model.StatusCancelled:
		return ical.ObjectStatusCancelled
	case model.StatusToConfirm, model.StatusPostponed:
		return ical.ObjectStatusTentative
	default:
		return ical.ObjectStatusConfirmed
	}
}

// attachType guesses the FMTTYPE of a cover image from its path.
func attachType(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	mt := mime.TypeByExtension(strings.ToLower(path.Ext(u.Path)))
	if i := strings.IndexByte(mt, ';'); i >= 0 {
		mt = mt[:i]
	}
	return mt
}
