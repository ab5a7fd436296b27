package planner

import (
	"context"
	"encoding/json"

	"github.com/voyageui/voyage/tool"
)

// NewToolRegistry builds the registry of travel tools the planner offers to
// the model. Results are marshaled to JSON so they round-trip through the
// tool-result message unchanged.
func NewToolRegistry() *tool.Registry {
	return tool.NewRegistry().Add(
		tool.Func("search_flights", "Return flight options for a route and date.",
			func(ctx context.Context, args SearchFlightsArgs) (string, error) {
				return marshalResult(SearchFlights(args))
			}),
		tool.Func("search_hotels", "Return hotel options for a city and date range.",
			func(ctx context.Context, args SearchHotelsArgs) (string, error) {
				return marshalResult(SearchHotels(args))
			}),
		tool.Func("build_daily_itinerary", "Create a day-by-day itinerary skeleton with activities.",
			func(ctx context.Context, args BuildItineraryArgs) (string, error) {
				days, err := BuildDailyItinerary(args)
				if err != nil {
					return "", err
				}
				return marshalResult(days)
			}),
		tool.Func("summarize_trip_plan", "Build a high-level trip summary and cost estimate.",
			func(ctx context.Context, args SummarizeArgs) (string, error) {
				return marshalResult(SummarizeTripPlan(args))
			}),
	)
}

func marshalResult(v any) (string, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
