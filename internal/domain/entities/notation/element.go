// Package notation defines the notation domain: the canonical element shape,
// the raw (storage) shapes it is decoded from, and the pure expansion pipeline
// that turns compact combo references into render-ready elements.
package notation

// NotationElement is the canonical, post-normalization element shape. Every
// field is guaranteed non-nil-renderable: a normalized element always carries
// at least one usable display representation.
type NotationElement struct {
	ID          string  `json:"id"`
	ElementID   string  `json:"elementId"`
	CategoryID  string  `json:"categoryId"`
	Name        string  `json:"name"`
	Symbol      string  `json:"symbol"`
	Numpad      string  `json:"numpad"`
	ImageURL    *string `json:"imageUrl"`
	Display     string  `json:"display"`
	Description string  `json:"description"`
}

// RawElementFields is the nested payload some historical records carry under
// an "element" key.
type RawElementFields struct {
	Name        string  `json:"name,omitempty"`
	Symbol      string  `json:"symbol,omitempty"`
	Numpad      string  `json:"numpad,omitempty"`
	ImageURL    *string `json:"imageUrl,omitempty"`
	Description string  `json:"description,omitempty"`
}

// RawNotationElement is the authoring/storage shape of an element. Records
// arrive in two variants: flat (display fields at the top level) and nested
// (display fields under Element). Normalize collapses both into a
// NotationElement.
type RawNotationElement struct {
	ID          string            `json:"id,omitempty"`
	ElementID   string            `json:"elementId,omitempty"`
	CategoryID  string            `json:"categoryId,omitempty"`
	Name        string            `json:"name,omitempty"`
	Symbol      string            `json:"symbol,omitempty"`
	Numpad      string            `json:"numpad,omitempty"`
	ImageURL    *string           `json:"imageUrl,omitempty"`
	Display     string            `json:"display,omitempty"`
	Description string            `json:"description,omitempty"`
	Element     *RawElementFields `json:"element,omitempty"`
}

// NotationReference maps a category id to its ordered collection of raw
// element records for one game. Owned by the notation repository; treated as
// immutable once fetched.
type NotationReference map[string][]RawNotationElement

// ComboNotationItem is the compact storage shape of one step in a combo: a
// reference into a game's NotationReference, not a value. Order within a
// combo's notation list is the input sequence order and is semantically
// meaningful.
type ComboNotationItem struct {
	CategoryID string `json:"categoryId"`
	ElementID  string `json:"elementId"`
}

// ExpandedNotationItem is the per-element output unit of expansion: the
// resolved canonical element plus the human label of its category.
type ExpandedNotationItem struct {
	NotationElement
	CategoryName string `json:"categoryName"`
}
