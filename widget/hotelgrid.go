package widget

import (
	"fmt"
	"strings"

	"github.com/voyageui/voyage"
	"github.com/voyageui/voyage/session"
	"github.com/voyageui/voyage/trigger"
)

// HotelCardGrid renders a grid of hotel cards and highlights the card
// matching the current hotel selection. Like FlightList it is ungated.
type HotelCardGrid struct {
	// Title is the header shown above the grid.
	Title string

	// Hotels are the options to render, in the order given.
	Hotels []voyage.Hotel

	selections *session.Selections
	dispatcher *trigger.Dispatcher
}

// NewHotelCardGrid creates a hotel grid bound to the session's selection
// store and trigger dispatcher.
func NewHotelCardGrid(hotels []voyage.Hotel, selections *session.Selections, dispatcher *trigger.Dispatcher) *HotelCardGrid {
	return &HotelCardGrid{
		Title:      "Hotel Options",
		Hotels:     hotels,
		selections: selections,
		dispatcher: dispatcher,
	}
}

// Render produces the widget's render tree for the given selection snapshot.
func (w *HotelCardGrid) Render(snap session.Snapshot) Node {
	cards := make([]Node, 0, len(w.Hotels))
	for _, h := range w.Hotels {
		selected := snap.HotelID == h.HotelID
		label := "Choose hotel"
		if selected {
			label = "Selected"
		}
		cards = append(cards, Node{
			Kind:     NodeCard,
			Text:     h.Name,
			Meta:     "$" + FormatUSD(h.NightlyRateUSD) + "/night",
			Selected: selected,
			ImageURL: h.ImageURL,
			Children: []Node{
				textLine(fmt.Sprintf("%s • %s★ • Walkability %d",
					h.City, FormatStars(h.StarRating), h.WalkabilityScore)),
				textLine(fmt.Sprintf("%s → %s • %d guest(s) • %d room(s)",
					h.CheckInDate, h.CheckOutDate, h.Guests, h.Rooms)),
				textLine(strings.Join(h.Amenities, " • ")),
				{Kind: NodeButton, Text: label, Action: trigger.ActionSelectHotel, Ref: h.HotelID},
			},
		})
	}

	compare := Node{Kind: NodeButton, Text: "Compare", Action: trigger.ActionCompareHotels}
	children := append([]Node{
		header(w.Title, fmt.Sprintf("%d results", len(w.Hotels)), compare),
	}, cards...)
	return section(children...)
}

// Select records the hotel as the session's pick and fires a select_hotel
// trigger carrying the reduced payload for that hotel.
func (w *HotelCardGrid) Select(hotelID string) error {
	hotel, ok := w.find(hotelID)
	if !ok {
		return fmt.Errorf("widget: hotel %q is not in the grid", hotelID)
	}

	w.selections.Set(session.SlotHotel, hotel.HotelID)
	w.dispatcher.Fire(trigger.ActionSelectHotel, SelectHotelPayload{
		HotelID:        hotel.HotelID,
		Name:           hotel.Name,
		City:           hotel.City,
		CheckInDate:    hotel.CheckInDate,
		CheckOutDate:   hotel.CheckOutDate,
		NightlyRateUSD: hotel.NightlyRateUSD,
	}, fmt.Sprintf("User selected hotel %s (%s) in %s at $%s per night.",
		hotel.HotelID, hotel.Name, hotel.City, FormatUSD(hotel.NightlyRateUSD)))
	return nil
}

// Compare fires a compare_hotels trigger with one reduced row per visible
// hotel. It is available regardless of selection state.
func (w *HotelCardGrid) Compare() {
	entries := make([]CompareHotelEntry, 0, len(w.Hotels))
	for _, h := range w.Hotels {
		entries = append(entries, CompareHotelEntry{
			HotelID:          h.HotelID,
			Name:             h.Name,
			NightlyRateUSD:   h.NightlyRateUSD,
			StarRating:       h.StarRating,
			WalkabilityScore: h.WalkabilityScore,
		})
	}
	w.dispatcher.Fire(trigger.ActionCompareHotels, CompareHotelsPayload{Hotels: entries},
		fmt.Sprintf("User wants to compare all %d hotel options.", len(entries)))
}

func (w *HotelCardGrid) find(hotelID string) (voyage.Hotel, bool) {
	for _, h := range w.Hotels {
		if h.HotelID == hotelID {
			return h, true
		}
	}
	return voyage.Hotel{}, false
}
