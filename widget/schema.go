package widget

import (
	"encoding/json"

	"github.com/voyageui/voyage"
)

// Component prop shapes as the agent platform sees them. The schemas derived
// from these tell the model which components exist and what props each takes.

// FlightListProps is the prop shape of the FlightList component.
type FlightListProps struct {
	Title   string          `json:"title,omitempty" desc:"Optional title shown above flight cards."`
	Flights []voyage.Flight `json:"flights" desc:"List of flight options." required:"true"`
}

// HotelCardGridProps is the prop shape of the HotelCardGrid component.
type HotelCardGridProps struct {
	Title  string         `json:"title,omitempty" desc:"Optional title shown above hotel cards."`
	Hotels []voyage.Hotel `json:"hotels" desc:"List of hotel options." required:"true"`
}

// ItineraryTimelineProps is the prop shape of the ItineraryTimeline component.
type ItineraryTimelineProps struct {
	Title string                `json:"title,omitempty" desc:"Optional section title."`
	Days  []voyage.ItineraryDay `json:"days" desc:"Ordered itinerary days." required:"true"`
}

// BudgetBreakdownProps is the prop shape of the BudgetBreakdown component.
type BudgetBreakdownProps struct {
	Title                     string               `json:"title,omitempty" desc:"Optional section title."`
	EstimatedCostBreakdownUSD voyage.CostBreakdown `json:"estimated_cost_breakdown_usd" desc:"Trip cost estimate in USD broken down by category." required:"true"`
}

// ComponentSchemas returns the JSON Schema for every custom component, keyed
// by component name.
func ComponentSchemas() map[string]json.RawMessage {
	return map[string]json.RawMessage{
		"FlightList": voyage.SchemaFrom[FlightListProps]().
			Describe("Displays multiple flight options in an interactive selectable list.").
			Strict().Build(),
		"HotelCardGrid": voyage.SchemaFrom[HotelCardGridProps]().
			Describe("Displays hotel options in a selectable card grid.").
			Strict().Build(),
		"ItineraryTimeline": voyage.SchemaFrom[ItineraryTimelineProps]().
			Describe("Displays a day-by-day itinerary timeline with activities.").
			Strict().Build(),
		"BudgetBreakdown": voyage.SchemaFrom[BudgetBreakdownProps]().
			Describe("Displays a visual budget summary for trip costs.").
			Strict().Build(),
	}
}

// MetadataHeader returns the request metadata that registers the custom
// components with the C1 generation endpoint. The value under "thesys" is a
// JSON document of the form {"c1_custom_components": {<name>: <schema>}}.
func MetadataHeader() (map[string]string, error) {
	payload, err := json.Marshal(map[string]any{
		"c1_custom_components": ComponentSchemas(),
	})
	if err != nil {
		return nil, err
	}
	return map[string]string{"thesys": string(payload)}, nil
}

// MustMetadataHeader is like MetadataHeader but panics on error. Useful at
// startup where a marshalling failure means the schemas themselves are broken.
func MustMetadataHeader() map[string]string {
	header, err := MetadataHeader()
	if err != nil {
		panic(err)
	}
	return header
}
