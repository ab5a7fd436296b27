package voyage

// Flight represents a single flight option for a route and date.
// Fields mirror the FlightList component schema; widgets read them to render
// cards and to build reduced trigger payloads, never to mutate.
type Flight struct {
	FlightID           string  `json:"flight_id" desc:"Unique flight identifier." required:"true"`
	Airline            string  `json:"airline" desc:"Airline name." required:"true"`
	Origin             string  `json:"origin" desc:"Departure airport or city." required:"true"`
	Destination        string  `json:"destination" desc:"Arrival airport or city." required:"true"`
	DepartureDate      string  `json:"departure_date" desc:"Departure date in YYYY-MM-DD format." required:"true"`
	DepartureTimeLocal string  `json:"departure_time_local" desc:"Local departure time HH:MM." required:"true"`
	DurationHours      float64 `json:"duration_hours" desc:"Total flight duration in hours." required:"true"`
	Stops              int     `json:"stops" desc:"Number of stops." required:"true"`
	CabinClass         string  `json:"cabin_class" desc:"Cabin class." required:"true"`
	TotalPriceUSD      float64 `json:"total_price_usd" desc:"Total price in USD for all travelers." required:"true"`
	ImageURL           string  `json:"image_url,omitempty" desc:"Optional preview image URL for the flight card."`
}

// Hotel represents a hotel option including nightly rate and trip dates.
type Hotel struct {
	HotelID          string   `json:"hotel_id" desc:"Unique hotel identifier." required:"true"`
	Name             string   `json:"name" desc:"Hotel name." required:"true"`
	City             string   `json:"city" desc:"City where hotel is located." required:"true"`
	CheckInDate      string   `json:"check_in_date" desc:"Check-in date in YYYY-MM-DD format." required:"true"`
	CheckOutDate     string   `json:"check_out_date" desc:"Check-out date in YYYY-MM-DD format." required:"true"`
	Guests           int      `json:"guests" desc:"Number of guests." required:"true"`
	Rooms            int      `json:"rooms" desc:"Number of rooms." required:"true"`
	NightlyRateUSD   float64  `json:"nightly_rate_usd" desc:"Nightly price in USD." required:"true"`
	StarRating       float64  `json:"star_rating" desc:"Star rating, e.g. 4.5." required:"true"`
	WalkabilityScore int      `json:"walkability_score" desc:"Walkability score from 0 to 100." required:"true"`
	Amenities        []string `json:"amenities" desc:"List of included amenities." required:"true"`
	ImageURL         string   `json:"image_url,omitempty" desc:"Optional preview image URL for the hotel card."`
}

// ItineraryDay represents one day in the itinerary timeline.
type ItineraryDay struct {
	Date       string   `json:"date" desc:"Date in YYYY-MM-DD format." required:"true"`
	Pace       string   `json:"pace" desc:"Travel pace for the day." required:"true"`
	Activities []string `json:"activities" desc:"Planned activities for the day." required:"true"`
	ImageURL   string   `json:"image_url,omitempty" desc:"Optional cover image URL for the itinerary day."`
}

// CostBreakdown is a trip cost estimate in USD broken down by category.
type CostBreakdown struct {
	Flight                float64 `json:"flight" desc:"Estimated flight total in USD." required:"true"`
	Hotel                 float64 `json:"hotel" desc:"Estimated hotel total in USD." required:"true"`
	FoodAndLocalTransport float64 `json:"food_and_local_transport" desc:"Estimated food and local transport total in USD." required:"true"`
	TotalEstimate         float64 `json:"total_estimate" desc:"Overall trip estimate in USD." required:"true"`
}
