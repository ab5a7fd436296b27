package widget

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/voyageui/voyage"
	"github.com/voyageui/voyage/session"
	"github.com/voyageui/voyage/trigger"
)

// capture records every trigger a widget fires, already parsed back out of
// the wire text.
type capture struct {
	mu     sync.Mutex
	humans []string
	fired  []trigger.Parsed
}

func (c *capture) Send(_ context.Context, human, machine string) error {
	parsed, err := trigger.Parse(machine)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.humans = append(c.humans, human)
	c.fired = append(c.fired, *parsed)
	return nil
}

// harness wires a fresh selection store and dispatcher to a capture. Call
// flush before asserting on fired triggers.
type harness struct {
	selections *session.Selections
	dispatcher *trigger.Dispatcher
	capture    *capture
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	c := &capture{}
	return &harness{
		selections: session.NewSelections(),
		dispatcher: trigger.NewDispatcher(c),
		capture:    c,
	}
}

func (h *harness) flush() []trigger.Parsed {
	h.dispatcher.Close()
	h.capture.mu.Lock()
	defer h.capture.mu.Unlock()
	return h.capture.fired
}

func decodePayload[T any](t *testing.T, parsed trigger.Parsed) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(parsed.Payload, &out))
	return out
}

func payloadKeys(t *testing.T, parsed trigger.Parsed) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(parsed.Payload, &out))
	return out
}

// findNodes walks a render tree and returns every node matching the
// predicate, depth first.
func findNodes(root Node, match func(Node) bool) []Node {
	var found []Node
	if match(root) {
		found = append(found, root)
	}
	for _, child := range root.Children {
		found = append(found, findNodes(child, match)...)
	}
	return found
}

func buttons(root Node, action trigger.Action) []Node {
	return findNodes(root, func(n Node) bool {
		return n.Kind == NodeButton && n.Action == action
	})
}

func sampleFlights() []voyage.Flight {
	return []voyage.Flight{
		{
			FlightID: "FL-001", Airline: "SkyJet", Origin: "SEA", Destination: "Tokyo",
			DepartureDate: "2026-03-01", DepartureTimeLocal: "08:15",
			DurationHours: 10.5, Stops: 0, CabinClass: "economy", TotalPriceUSD: 420,
		},
		{
			FlightID: "FL-002", Airline: "Atlas Air", Origin: "SEA", Destination: "Tokyo",
			DepartureDate: "2026-03-01", DepartureTimeLocal: "11:40",
			DurationHours: 13, Stops: 1, CabinClass: "economy", TotalPriceUSD: 365,
		},
	}
}

func sampleHotels() []voyage.Hotel {
	return []voyage.Hotel{
		{
			HotelID: "HT-001", Name: "Harbor View Suites", City: "Tokyo",
			CheckInDate: "2026-03-01", CheckOutDate: "2026-03-05",
			Guests: 2, Rooms: 1, NightlyRateUSD: 180, StarRating: 4.5,
			WalkabilityScore: 92, Amenities: []string{"wifi", "breakfast", "gym"},
		},
		{
			HotelID: "HT-002", Name: "Grand Central Hotel", City: "Tokyo",
			CheckInDate: "2026-03-01", CheckOutDate: "2026-03-05",
			Guests: 2, Rooms: 1, NightlyRateUSD: 240, StarRating: 4.8,
			WalkabilityScore: 88, Amenities: []string{"wifi", "breakfast"},
		},
	}
}

func sampleDays() []voyage.ItineraryDay {
	return []voyage.ItineraryDay{
		{Date: "2026-03-01", Pace: "balanced", Activities: []string{"Arrive and check in", "Evening food walk"}},
		{Date: "2026-03-02", Pace: "fast", Activities: []string{"Museum morning", "Market lunch", "Neighborhood crawl"}},
	}
}
