// Package compose builds the human-readable parts of a calendar entry.
// Output is plain text; callers apply their own wire escaping.
package compose

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"venue-calendar/internal/model"
	"venue-calendar/pkg/datemath"
)

const (
	// DefaultBodyLimit is the rune budget of the plain-text event body.
	DefaultBodyLimit = 600

	summarySeparator = " — "
	closurePrefix    = "Venue closed"
)

var hexColor = regexp.MustCompile(`^#?([0-9a-fA-F]{6}|[0-9a-fA-F]{3})$`)

// Composer renders summaries, locations, descriptions and colors shared by
// the ICS feed and the calendar sync payloads.
type Composer struct {
	dates      *datemath.Parser
	typeColors map[string]string
	bodyLimit  int
}

// New creates a Composer. typeColors maps a lower-case event type to a hex color.
func New(dates *datemath.Parser, typeColors map[string]string) *Composer {
	if dates == nil {
		dates = datemath.NewParserIn(nil)
	}
	palette := make(map[string]string, len(typeColors))
	for k, v := range typeColors {
		if c := NormalizeColor(v); c != "" {
			palette[strings.ToLower(strings.TrimSpace(k))] = c
		}
	}
	return &Composer{
		dates:      dates,
		typeColors: palette,
		bodyLimit:  DefaultBodyLimit,
	}
}

// Summary is the entry title. Closures read "Venue closed: <detail>"; events
// append their slot label unless the title already says it.
func (c *Composer) Summary(e model.Entry) string {
	if e.IsClosure() {
		detail := strings.TrimSpace(e.Occurrence.Label)
		if detail == "" {
			return closurePrefix
		}
		return closurePrefix + ": " + detail
	}

	title := strings.TrimSpace(e.Event.Title)
	if e.Occurrence.Source == model.SourceRange {
		return title
	}
	slot := strings.TrimSpace(e.Occurrence.SlotLabel())
	switch {
	case slot == "":
		return title
	case title == "":
		return slot
	case strings.Contains(strings.ToLower(title), strings.ToLower(slot)):
		return title
	default:
		return title + summarySeparator + slot
	}
}

// Location joins the venue name, address and description.
func (c *Composer) Location(e model.Entry) string {
	loc := e.Event.Location
	if loc == nil {
		return ""
	}
	return joinUnique(", ", loc.Name, loc.Address, loc.Description)
}

// Description assembles the optional sections of an entry, separated by
// blank lines.
func (c *Composer) Description(e model.Entry) string {
	ev := e.Event
	var sections []string
	add := func(s string) {
		if s = strings.TrimSpace(s); s != "" {
			sections = append(sections, s)
		}
	}

	add(e.Occurrence.SlotLabel())
	if !e.IsClosure() && ev.Category != "" {
		add("Type: " + ev.Category)
	}
	add(ageRange(ev.AgeMin, ev.AgeMax))
	add(price(ev.Price))
	if ev.RegistrationDeadline != nil {
		add("Registration until " + c.dates.FormatDateTime(*ev.RegistrationDeadline))
	}
	if where := c.Location(e); where != "" {
		block := "Location: " + where
		if ev.Location.MapURL != "" {
			block += "\nMap: " + ev.Location.MapURL
		}
		add(block)
	}
	add(Truncate(StripHTML(ev.Description), c.bodyLimit))
	if ev.Permalink != "" {
		add("More info: " + ev.Permalink)
	}

	return strings.Join(sections, "\n\n")
}

// Color resolves the display color: the event's own override, then the
// palette entry of its type, else empty.
func (c *Composer) Color(e model.Entry) string {
	if col := NormalizeColor(e.Event.Color); col != "" {
		return col
	}
	return c.typeColors[strings.ToLower(strings.TrimSpace(e.Event.Category))]
}

// Categories returns the CATEGORIES values of an entry.
func (c *Composer) Categories(e model.Entry) []string {
	if e.Event.Category == "" {
		return nil
	}
	return []string{e.Event.Category}
}

// NormalizeColor returns a valid hex color as "#RRGGBB", or empty.
func NormalizeColor(s string) string {
	m := hexColor.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return ""
	}
	hex := strings.ToUpper(m[1])
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	return "#" + hex
}

// SiteHost returns the host of a site URL, or "localhost" when it has none.
func SiteHost(siteURL string) string {
	u, err := url.Parse(strings.TrimSpace(siteURL))
	if err != nil || u.Hostname() == "" {
		return "localhost"
	}
	return u.Hostname()
}

func ageRange(lo, hi *int) string {
	switch {
	case lo != nil && hi != nil:
		return fmt.Sprintf("Ages: %d–%d", *lo, *hi)
	case lo != nil:
		return fmt.Sprintf("Ages: %d+", *lo)
	case hi != nil:
		return fmt.Sprintf("Ages: up to %d", *hi)
	}
	return ""
}

func price(p *float64) string {
	if p == nil {
		return ""
	}
	if *p <= 0 {
		return "Free"
	}
	amount := strconv.FormatFloat(*p, 'f', 2, 64)
	amount = strings.TrimSuffix(amount, ".00")
	return "Price: " + amount + " €"
}

func joinUnique(sep string, parts ...string) string {
	seen := make(map[string]struct{}, len(parts))
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		key := strings.ToLower(p)
		if p == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, p)
	}
	return strings.Join(out, sep)
}
