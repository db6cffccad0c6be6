package response_test

import (
	"encoding/json"
	"testing"
	"time"

	"venue-calendar/pkg/response"
)

func TestDateMarshalJSON(t *testing.T) {
	tm := time.Date(2024, 5, 1, 23, 30, 0, 0, time.FixedZone("X", -2*3600))

	b, err := json.Marshal(response.Date(tm))
	if err != nil {
		t.Fatalf("unexpected error marshaling Date: %v", err)
	}
	if string(b) != `"2024-05-02"` {
		t.Errorf("Date JSON = %s", b)
	}

	b, err = json.Marshal(response.DateTime(tm))
	if err != nil {
		t.Fatalf("unexpected error marshaling DateTime: %v", err)
	}
	if string(b) != `"2024-05-02T01:30:00Z"` {
		t.Errorf("DateTime JSON = %s", b)
	}
}
