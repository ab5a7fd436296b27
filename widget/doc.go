// Package widget implements the travel widget set rendered inside the chat
// transcript: FlightList, HotelCardGrid, ItineraryTimeline and
// BudgetBreakdown.
//
// Each widget is a pure function of its props and a selection snapshot to a
// declarative [Node] tree; the hosting rendering engine turns the tree into
// actual UI. Side effects are confined to the interaction methods, which do
// exactly two things: write a slot in the session selection store and fire a
// trigger through the dispatcher.
//
// The itinerary and budget widgets are gated: until both a flight and a hotel
// are selected they render a locked placeholder naming whichever picks are
// still missing. The gate is recomputed from a fresh snapshot on every
// render, so out-of-order agent replies cannot unlock a widget the current
// selections do not justify.
//
// Triggers carry reduced payloads: each action includes only the fields that
// action needs, never the full domain record.
package widget
