package widget

import "github.com/voyageui/voyage/trigger"

// NodeKind identifies the kind of node in a render tree.
type NodeKind string

const (
	// NodeSection is a widget's outer container.
	NodeSection NodeKind = "section"

	// NodeHeader is a title row with an optional meta string.
	NodeHeader NodeKind = "header"

	// NodeCard is a selectable option card.
	NodeCard NodeKind = "card"

	// NodeText is a plain text line.
	NodeText NodeKind = "text"

	// NodeList is an ordered list (the itinerary timeline).
	NodeList NodeKind = "list"

	// NodeItem is an entry in a list.
	NodeItem NodeKind = "item"

	// NodeButton is an actionable button bound to a trigger action.
	NodeButton NodeKind = "button"

	// NodeBar is a proportional bar (budget shares).
	NodeBar NodeKind = "bar"

	// NodePlaceholder is the locked-state stand-in for a gated widget.
	NodePlaceholder NodeKind = "placeholder"
)

// Node is one element of a widget's declarative render tree. Widgets produce
// trees; the hosting rendering engine draws them. Trees are plain data with
// no callbacks, so rendering stays a pure function of props and selection
// state.
type Node struct {
	Kind NodeKind `json:"kind"`

	// Text is the node's primary text (title, label, line content).
	Text string `json:"text,omitempty"`

	// Meta is secondary text rendered alongside Text (result counts, prices).
	Meta string `json:"meta,omitempty"`

	// Action names the trigger a button fires. The host routes the click back
	// to the widget's interaction method using Action and Ref.
	Action trigger.Action `json:"action,omitempty"`

	// Ref identifies which record a button refers to (flight ID, day date).
	Ref string `json:"ref,omitempty"`

	// Selected marks the card matching the current selection.
	Selected bool `json:"selected,omitempty"`

	// Disabled marks a button that must not fire its action.
	Disabled bool `json:"disabled,omitempty"`

	// Percent is the fill percentage for bar nodes (0-100).
	Percent int `json:"percent,omitempty"`

	// ImageURL is an optional preview image for cards and items.
	ImageURL string `json:"imageUrl,omitempty"`

	Children []Node `json:"children,omitempty"`
}

func section(children ...Node) Node {
	return Node{Kind: NodeSection, Children: children}
}

func header(title, meta string, buttons ...Node) Node {
	return Node{Kind: NodeHeader, Text: title, Meta: meta, Children: buttons}
}

func textLine(text string) Node {
	return Node{Kind: NodeText, Text: text}
}
