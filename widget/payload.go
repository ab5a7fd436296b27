package widget

import "github.com/voyageui/voyage"

// Reduced trigger payloads. Each action carries only the fields the agent
// needs to act on it; full domain records never cross the trigger boundary.

// SelectFlightPayload identifies a chosen flight plus the route context the
// agent needs to continue planning. Stops, duration and cabin class are
// deliberately absent.
type SelectFlightPayload struct {
	FlightID      string  `json:"flight_id"`
	Airline       string  `json:"airline"`
	Origin        string  `json:"origin"`
	Destination   string  `json:"destination"`
	DepartureDate string  `json:"departure_date"`
	TotalPriceUSD float64 `json:"total_price_usd"`
}

// CompareFlightEntry is one row of a compare_flights payload.
type CompareFlightEntry struct {
	FlightID      string  `json:"flight_id"`
	Airline       string  `json:"airline"`
	TotalPriceUSD float64 `json:"total_price_usd"`
	Stops         int     `json:"stops"`
	DurationHours float64 `json:"duration_hours"`
}

// CompareFlightsPayload carries the comparison rows for every visible flight.
type CompareFlightsPayload struct {
	Flights []CompareFlightEntry `json:"flights"`
}

// SelectHotelPayload identifies a chosen hotel with its stay dates and rate.
type SelectHotelPayload struct {
	HotelID        string  `json:"hotel_id"`
	Name           string  `json:"name"`
	City           string  `json:"city"`
	CheckInDate    string  `json:"check_in_date"`
	CheckOutDate   string  `json:"check_out_date"`
	NightlyRateUSD float64 `json:"nightly_rate_usd"`
}

// CompareHotelEntry is one row of a compare_hotels payload.
type CompareHotelEntry struct {
	HotelID          string  `json:"hotel_id"`
	Name             string  `json:"name"`
	NightlyRateUSD   float64 `json:"nightly_rate_usd"`
	StarRating       float64 `json:"star_rating"`
	WalkabilityScore int     `json:"walkability_score"`
}

// CompareHotelsPayload carries the comparison rows for every visible hotel.
type CompareHotelsPayload struct {
	Hotels []CompareHotelEntry `json:"hotels"`
}

// RefineDayPayload carries the single day the user asked to rework.
type RefineDayPayload struct {
	Date       string   `json:"date"`
	Pace       string   `json:"pace"`
	Activities []string `json:"activities"`
}

// RegenerateDayEntry is the date-and-pace outline of one day. A regenerate
// request sends the outline of every day and nothing else.
type RegenerateDayEntry struct {
	Date string `json:"date"`
	Pace string `json:"pace"`
}

// RegenerateItineraryPayload carries the outline of the whole itinerary.
type RegenerateItineraryPayload struct {
	Days []RegenerateDayEntry `json:"days"`
}

// FinalizePlanPayload binds the committed selections to the cost estimate.
type FinalizePlanPayload struct {
	SelectedFlightID          string               `json:"selected_flight_id"`
	SelectedHotelID           string               `json:"selected_hotel_id"`
	EstimatedCostBreakdownUSD voyage.CostBreakdown `json:"estimated_cost_breakdown_usd"`
}
