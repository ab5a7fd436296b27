package planner

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/voyageui/voyage"
)

// stableInt maps a seed string into [low, high] deterministically. hexOffset
// selects which slice of the digest feeds the value, so different tool
// families draw from independent streams for the same seed.
func stableInt(seed string, low, high, hexOffset int) int {
	digest := sha256.Sum256([]byte(seed))
	hexDigest := hex.EncodeToString(digest[:])
	value, err := strconv.ParseUint(hexDigest[hexOffset:hexOffset+8], 16, 64)
	if err != nil {
		// A SHA-256 hex digest always parses; keep the zero value if not.
		value = 0
	}
	return low + int(value%uint64(high-low+1))
}

// mockImageURL returns a deterministic preview image URL for cards.
func mockImageURL(seed string, width, height int) string {
	digest := sha256.Sum256([]byte(seed))
	safeSeed := hex.EncodeToString(digest[:])[:20]
	return fmt.Sprintf("https://picsum.photos/seed/%s/%d/%d", safeSeed, width, height)
}

// SearchFlightsArgs are the parameters of the search_flights tool.
type SearchFlightsArgs struct {
	Origin        string `json:"origin" desc:"Departure city or airport." required:"true"`
	Destination   string `json:"destination" desc:"Arrival city or airport." required:"true"`
	DepartureDate string `json:"departure_date" desc:"ISO date string (YYYY-MM-DD)." required:"true"`
	Travelers     int    `json:"travelers" desc:"Number of travelers."`
	CabinClass    string `json:"cabin_class" desc:"Cabin class." enum:"economy,premium_economy,business,first"`
}

var flightAirlines = []string{"SkyJet", "Atlas Air", "Horizon Lines"}

// SearchFlights returns mock flight options for a route and date, cheapest
// first. One option per airline, all attributes derived from the inputs.
func SearchFlights(args SearchFlightsArgs) []voyage.Flight {
	travelers := args.Travelers
	if travelers < 1 {
		travelers = 1
	}
	cabin := args.CabinClass
	if cabin == "" {
		cabin = "economy"
	}

	options := make([]voyage.Flight, 0, len(flightAirlines))
	for idx, airline := range flightAirlines {
		seed := fmt.Sprintf("%s-%s-%s-%s-%s", args.Origin, args.Destination, args.DepartureDate, airline, cabin)

		basePrice := stableInt(seed, 180, 820, 0)
		durationHours := stableInt(seed+"-duration", 2, 14, 0)
		stops := stableInt(seed+"-stops", 0, 2, 0)
		departHour := stableInt(seed+"-depart", 5, 21, 0)

		options = append(options, voyage.Flight{
			FlightID:           fmt.Sprintf("FL-%03d", idx+1),
			Airline:            airline,
			Origin:             args.Origin,
			Destination:        args.Destination,
			DepartureDate:      args.DepartureDate,
			DepartureTimeLocal: fmt.Sprintf("%02d:15", departHour),
			DurationHours:      float64(durationHours),
			Stops:              stops,
			CabinClass:         cabin,
			TotalPriceUSD:      float64(basePrice * travelers),
			ImageURL:           mockImageURL(seed+"-image", 720, 420),
		})
	}

	sort.SliceStable(options, func(i, j int) bool {
		return options[i].TotalPriceUSD < options[j].TotalPriceUSD
	})
	return options
}

// SearchHotelsArgs are the parameters of the search_hotels tool.
type SearchHotelsArgs struct {
	City         string `json:"city" desc:"City to stay in." required:"true"`
	CheckInDate  string `json:"check_in_date" desc:"Check-in date (YYYY-MM-DD)." required:"true"`
	CheckOutDate string `json:"check_out_date" desc:"Check-out date (YYYY-MM-DD)." required:"true"`
	Guests       int    `json:"guests" desc:"Number of guests."`
	Rooms        int    `json:"rooms" desc:"Number of rooms."`
}

var hotelNames = []string{
	"Harbor View Suites",
	"Grand Central Hotel",
	"Maple & Stone Boutique",
	"Lumen Stay",
}

// SearchHotels returns mock hotels for a city and date range, sorted by
// nightly rate ascending with star rating descending as the tiebreak.
func SearchHotels(args SearchHotelsArgs) []voyage.Hotel {
	guests := args.Guests
	if guests < 1 {
		guests = 2
	}
	rooms := args.Rooms
	if rooms < 1 {
		rooms = 1
	}

	results := make([]voyage.Hotel, 0, len(hotelNames))
	for idx, name := range hotelNames {
		seed := fmt.Sprintf("%s-%s-%s-%s-%d-%d", args.City, args.CheckInDate, args.CheckOutDate, name, guests, rooms)

		nightly := stableInt(seed, 90, 420, 8)
		rating := float64(stableInt(seed+"-rating", 38, 49, 8)) / 10
		walkScore := stableInt(seed+"-walk", 60, 98, 8)

		results = append(results, voyage.Hotel{
			HotelID:          fmt.Sprintf("HT-%03d", idx+1),
			Name:             name,
			City:             args.City,
			CheckInDate:      args.CheckInDate,
			CheckOutDate:     args.CheckOutDate,
			Guests:           guests,
			Rooms:            rooms,
			NightlyRateUSD:   float64(nightly),
			StarRating:       rating,
			WalkabilityScore: walkScore,
			Amenities:        []string{"wifi", "breakfast", "gym"},
			ImageURL:         mockImageURL(seed+"-image", 720, 420),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].NightlyRateUSD != results[j].NightlyRateUSD {
			return results[i].NightlyRateUSD < results[j].NightlyRateUSD
		}
		return results[i].StarRating > results[j].StarRating
	})
	return results
}

// BuildItineraryArgs are the parameters of the build_daily_itinerary tool.
type BuildItineraryArgs struct {
	Destination string   `json:"destination" desc:"Destination city." required:"true"`
	StartDate   string   `json:"start_date" desc:"First day of the trip (YYYY-MM-DD)." required:"true"`
	EndDate     string   `json:"end_date" desc:"Last day of the trip (YYYY-MM-DD)." required:"true"`
	Interests   []string `json:"interests" desc:"Interest categories to draw activities from."`
	Pace        string   `json:"pace" desc:"Trip pace." enum:"slow,balanced,fast"`
}

var activityBank = map[string][]string{
	"food":          {"street food tour", "chef tasting menu", "local market crawl"},
	"nature":        {"sunrise viewpoint", "city park walk", "coastal trail"},
	"landmarks":     {"historic district", "architecture walk", "museum visit"},
	"shopping":      {"artisan market", "design district", "bookstore crawl"},
	"local culture": {"neighborhood walk", "live music venue", "cultural center"},
}

const dateLayout = "2006-01-02"

// ErrInvalidDateWindow is returned when end_date precedes start_date.
var ErrInvalidDateWindow = errors.New("planner: end_date must be on or after start_date")

// BuildDailyItinerary creates a day-by-day itinerary skeleton. Activities
// rotate deterministically through the interest categories; pace controls how
// many slots each day gets.
func BuildDailyItinerary(args BuildItineraryArgs) ([]voyage.ItineraryDay, error) {
	interests := args.Interests
	if len(interests) == 0 {
		interests = []string{"food", "landmarks", "local culture"}
	}
	pace := args.Pace
	if pace == "" {
		pace = "balanced"
	}

	start, err := time.Parse(dateLayout, args.StartDate)
	if err != nil {
		return nil, fmt.Errorf("planner: invalid start_date: %w", err)
	}
	end, err := time.Parse(dateLayout, args.EndDate)
	if err != nil {
		return nil, fmt.Errorf("planner: invalid end_date: %w", err)
	}
	if end.Before(start) {
		return nil, ErrInvalidDateWindow
	}

	slotsPerDay := 3
	switch pace {
	case "slow":
		slotsPerDay = 2
	case "fast":
		slotsPerDay = 4
	}

	dayCount := int(end.Sub(start).Hours()/24) + 1
	schedule := make([]voyage.ItineraryDay, 0, dayCount)

	for offset := 0; offset < dayCount; offset++ {
		current := start.AddDate(0, 0, offset)
		picks := make([]string, 0, slotsPerDay)
		for slot := 0; slot < slotsPerDay; slot++ {
			interest := interests[(offset+slot)%len(interests)]
			choices, ok := activityBank[interest]
			if !ok {
				choices = activityBank["local culture"]
			}
			picks = append(picks, fmt.Sprintf("%s: %s", args.Destination, choices[(offset+slot)%len(choices)]))
		}

		date := current.Format(dateLayout)
		schedule = append(schedule, voyage.ItineraryDay{
			Date:       date,
			Pace:       pace,
			Activities: picks,
			ImageURL:   mockImageURL(fmt.Sprintf("%s-%s-%s", args.Destination, date, pace), 960, 540),
		})
	}

	return schedule, nil
}

// SummarizeArgs are the parameters of the summarize_trip_plan tool.
type SummarizeArgs struct {
	Flights   []voyage.Flight       `json:"flights" desc:"Flight options, best first." required:"true"`
	Hotels    []voyage.Hotel        `json:"hotels" desc:"Hotel options, best first." required:"true"`
	Itinerary []voyage.ItineraryDay `json:"itinerary" desc:"Planned itinerary days." required:"true"`
	Travelers int                   `json:"travelers" desc:"Number of travelers."`
}

// TripSummary is the structured result of summarize_trip_plan, consumed by
// the budget component.
type TripSummary struct {
	RecommendedFlight         *voyage.Flight       `json:"recommended_flight"`
	RecommendedHotel          *voyage.Hotel        `json:"recommended_hotel"`
	ItineraryDays             int                  `json:"itinerary_days"`
	EstimatedCostBreakdownUSD voyage.CostBreakdown `json:"estimated_cost_breakdown_usd"`
}

// SummarizeTripPlan builds a high-level trip summary and cost estimate.
// The first option in each list is treated as the recommendation.
func SummarizeTripPlan(args SummarizeArgs) TripSummary {
	travelers := args.Travelers
	if travelers < 1 {
		travelers = 1
	}

	summary := TripSummary{ItineraryDays: len(args.Itinerary)}

	nights := len(args.Itinerary) - 1
	if nights < 0 {
		nights = 0
	}
	days := len(args.Itinerary)
	if days < 1 {
		days = 1
	}

	var flightCost, hotelCost float64
	if len(args.Flights) > 0 {
		flight := args.Flights[0]
		summary.RecommendedFlight = &flight
		flightCost = float64(int(flight.TotalPriceUSD))
	}
	if len(args.Hotels) > 0 {
		hotel := args.Hotels[0]
		summary.RecommendedHotel = &hotel
		hotelCost = float64(int(hotel.NightlyRateUSD) * nights)
	}
	foodLocal := float64(65 * days * travelers)

	summary.EstimatedCostBreakdownUSD = voyage.CostBreakdown{
		Flight:                flightCost,
		Hotel:                 hotelCost,
		FoodAndLocalTransport: foodLocal,
		TotalEstimate:         flightCost + hotelCost + foodLocal,
	}
	return summary
}
