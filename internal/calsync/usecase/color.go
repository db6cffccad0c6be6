package usecase

import (
	"hash/fnv"
	"strconv"

	"venue-calendar/internal/feed/compose"
)

// eventPalette is Google Calendar's event color table, indexed by color id.
var eventPalette = [...]struct {
	id      string
	r, g, b int
}{
	{"1", 0xa4, 0xbd, 0xfc},
	{"2", 0x7a, 0xe7, 0xbf},
	{"3", 0xdb, 0xad, 0xff},
	{"4", 0xff, 0x88, 0x7c},
	{"5", 0xfb, 0xd7, 0x5b},
	{"6", 0xff, 0xb8, 0x78},
	{"7", 0x46, 0xd6, 0xdb},
	{"8", 0xe1, 0xe1, 0xe1},
	{"9", 0x54, 0x84, 0xed},
	{"10", 0x51, 0xb7, 0x49},
	{"11", 0xdc, 0x21, 0x27},
}

// ColorID maps a hex color onto the nearest palette entry. Without a usable
// color the event id is hashed onto the palette instead.
func ColorID(hex string, eventID int64) string {
	r, g, b, ok := parseHex(hex)
	if !ok {
		h := fnv.New32a()
		h.Write([]byte(strconv.FormatInt(eventID, 10)))
		return eventPalette[h.Sum32()%uint32(len(eventPalette))].id
	}

	best, bestDist := 0, -1
	for i, p := range eventPalette {
		dr, dg, db := r-p.r, g-p.g, b-p.b
		dist := dr*dr + dg*dg + db*db
		if bestDist < 0 || dist < bestDist {
			best, bestDist = i, dist
		}
	}
	return eventPalette[best].id
}

func parseHex(s string) (r, g, b int, ok bool) {
	s = compose.NormalizeColor(s)
	if s == "" {
		return 0, 0, 0, false
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff), true
}
