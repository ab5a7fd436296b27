package trigger

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Source identifies this widget set in every trigger. The backend matches on
// it before trusting the action field.
const Source = "travel_custom_component"

// MarkerPrefix starts the machine-readable line of every encoded trigger.
// The backend parser strips exactly this prefix and parses the remainder as
// JSON; both sides must agree on it byte for byte.
const MarkerPrefix = "COMPONENT_TRIGGER "

// Fixed instruction lines appended after the marker line.
const (
	instructionUserAction = "Treat this as an explicit user action from the UI."
	instructionRespond    = "Use tools as needed and respond with updated travel recommendations using custom components."
)

// Action identifies a widget action in the closed trigger vocabulary.
// Extending the vocabulary is a breaking protocol change that requires a
// coordinated update on the backend.
type Action string

const (
	ActionSelectFlight        Action = "select_flight"
	ActionCompareFlights      Action = "compare_flights"
	ActionSelectHotel         Action = "select_hotel"
	ActionCompareHotels       Action = "compare_hotels"
	ActionRefineItineraryDay  Action = "refine_itinerary_day"
	ActionRegenerateItinerary Action = "regenerate_itinerary"
	ActionOptimizeBudget      Action = "optimize_budget"
	ActionFinalizePlan        Action = "finalize_plan_with_selections"
)

// Actions returns the closed action vocabulary.
func Actions() []Action {
	return []Action{
		ActionSelectFlight,
		ActionCompareFlights,
		ActionSelectHotel,
		ActionCompareHotels,
		ActionRefineItineraryDay,
		ActionRegenerateItinerary,
		ActionOptimizeBudget,
		ActionFinalizePlan,
	}
}

// Valid reports whether the action is part of the vocabulary.
func (a Action) Valid() bool {
	switch a {
	case ActionSelectFlight, ActionCompareFlights,
		ActionSelectHotel, ActionCompareHotels,
		ActionRefineItineraryDay, ActionRegenerateItinerary,
		ActionOptimizeBudget, ActionFinalizePlan:
		return true
	}
	return false
}

// Trigger is a structured widget action bound for the backend agent.
// Payload must be JSON-serializable; passing values that cannot be marshaled
// (cycles, NaN) is a caller contract violation, not a runtime condition.
type Trigger struct {
	Source  string `json:"source"`
	Action  Action `json:"action"`
	Payload any    `json:"payload"`
}

// New creates a trigger with the fixed source tag.
func New(action Action, payload any) Trigger {
	return Trigger{
		Source:  Source,
		Action:  action,
		Payload: payload,
	}
}

// Encode serializes the trigger into the machine-readable instruction block:
// the marker line followed by the two fixed instruction lines.
func (t Trigger) Encode() (string, error) {
	data, err := json.Marshal(t)
	if err != nil {
		return "", fmt.Errorf("encode trigger %q: %w", t.Action, err)
	}

	var b strings.Builder
	b.WriteString(MarkerPrefix)
	b.Write(data)
	b.WriteByte('\n')
	b.WriteString(instructionUserAction)
	b.WriteByte('\n')
	b.WriteString(instructionRespond)
	return b.String(), nil
}

// Parsed is a trigger recovered from message text. Payload is left raw for
// the caller to decode against the action's payload shape.
type Parsed struct {
	Source  string          `json:"source"`
	Action  Action          `json:"action"`
	Payload json.RawMessage `json:"payload"`
}

// ErrNoTrigger is returned by Parse when no marker line is present.
var ErrNoTrigger = errors.New("no component trigger in message")

// Parse locates the marker line in a chat message and decodes the trigger.
// This is the agent-side half of the wire contract: it finds the line by
// prefix, strips the prefix, and parses the remainder as JSON.
func Parse(text string) (*Parsed, error) {
	for _, line := range strings.Split(text, "\n") {
		if !strings.HasPrefix(line, MarkerPrefix) {
			continue
		}
		raw := strings.TrimPrefix(line, MarkerPrefix)

		var p Parsed
		if err := json.Unmarshal([]byte(raw), &p); err != nil {
			return nil, fmt.Errorf("parse trigger line: %w", err)
		}
		if p.Source != Source {
			return nil, fmt.Errorf("unexpected trigger source %q", p.Source)
		}
		if !p.Action.Valid() {
			return nil, fmt.Errorf("unknown trigger action %q", p.Action)
		}
		return &p, nil
	}
	return nil, ErrNoTrigger
}
