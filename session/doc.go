// Package session holds per-conversation UI state shared across widgets.
//
// A [Selections] store keeps one scalar slot per choice category (the
// selected flight, the selected hotel). Widgets write slots when the user
// picks an option and read them on every render; dependent widgets derive
// their gate condition from a [Snapshot] rather than caching it, so a stale
// or out-of-order agent reply can never unlock a widget the current state
// does not justify.
//
// A [Manager] maps chat thread IDs to their sessions so that concurrent
// conversations never see each other's picks. Selections are never deleted;
// an absent slot is the natural unselected state and the session ends with
// the process.
package session
