package widget

import (
	"errors"
	"fmt"

	"github.com/voyageui/voyage/session"
)

// ErrSelectionsIncomplete is returned by interactions that require both a
// flight and a hotel selection before they may fire.
var ErrSelectionsIncomplete = errors.New("widget: both a flight and a hotel must be selected")

// missingPicks names whichever selections are still absent. Each slot is
// checked on its own so the placeholder can say exactly what is missing.
func missingPicks(snap session.Snapshot) string {
	switch {
	case !snap.HasFlight() && !snap.HasHotel():
		return "a flight and a hotel"
	case !snap.HasFlight():
		return "a flight"
	default:
		return "a hotel"
	}
}

// locked renders the placeholder a gated widget shows until the gate
// condition holds.
func locked(title, unlocks string, snap session.Snapshot) Node {
	return section(
		header(title, "Locked"),
		Node{
			Kind: NodePlaceholder,
			Text: fmt.Sprintf("Select %s to unlock the %s.", missingPicks(snap), unlocks),
		},
	)
}
