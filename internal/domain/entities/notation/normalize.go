package notation

import (
	"unicode"
	"unicode/utf8"
)

// accessor reads one candidate value for a field from a raw element.
type accessor func(*RawNotationElement) string

// firstNonEmpty evaluates accessors in order and returns the first non-empty
// value, or fallback if the whole chain comes up empty. The chains below make
// the field precedence order an explicit, testable artifact instead of inline
// expression chains.
func firstNonEmpty(raw *RawNotationElement, chain []accessor, fallback string) string {
	for _, get := range chain {
		if v := get(raw); v != "" {
			return v
		}
	}
	return fallback
}

func nestedName(r *RawNotationElement) string        { return r.Element.Name }
func nestedSymbol(r *RawNotationElement) string      { return r.Element.Symbol }
func nestedNumpad(r *RawNotationElement) string      { return r.Element.Numpad }
func nestedDescription(r *RawNotationElement) string { return r.Element.Description }
func flatName(r *RawNotationElement) string          { return r.Name }
func flatSymbol(r *RawNotationElement) string        { return r.Symbol }
func flatNumpad(r *RawNotationElement) string        { return r.Numpad }
func flatDescription(r *RawNotationElement) string   { return r.Description }
func flatID(r *RawNotationElement) string            { return r.ID }
func flatElementID(r *RawNotationElement) string     { return r.ElementID }

// Field precedence per variant. Nested records prefer the payload under
// Element, then the top-level field; name and symbol additionally fall back
// to the element's identifier so a record is never left without a renderable
// representation.
var (
	nestedNameChain        = []accessor{nestedName, flatName, flatID, flatElementID}
	nestedSymbolChain      = []accessor{nestedSymbol, flatSymbol, flatID, flatElementID}
	nestedNumpadChain      = []accessor{nestedNumpad, flatNumpad}
	nestedDescriptionChain = []accessor{nestedDescription, flatDescription}

	flatNameChain        = []accessor{flatName, flatID, flatElementID}
	flatSymbolChain      = []accessor{flatSymbol, flatID, flatElementID}
	flatNumpadChain      = []accessor{flatNumpad}
	flatDescriptionChain = []accessor{flatDescription}
)

const (
	defaultName       = "Unknown"
	defaultCategoryID = "unknown"
)

// Normalize collapses a raw element record of either variant into the
// canonical NotationElement shape. A nil input propagates as nil: synthesis
// of placeholders belongs to the expander, not this layer. Pure and
// idempotent for already-canonical input.
func Normalize(raw *RawNotationElement) *NotationElement {
	if raw == nil {
		return nil
	}

	// id and elementId cross-populate: whichever is present fills both.
	id := raw.ID
	if id == "" {
		id = raw.ElementID
	}
	elementID := raw.ElementID
	if elementID == "" {
		elementID = raw.ID
	}

	categoryID := raw.CategoryID
	if categoryID == "" {
		categoryID = defaultCategoryID
	}

	// Tagged-variant decode: the presence of the nested Element payload
	// selects the chain set.
	nameChain, symbolChain, numpadChain, descriptionChain := flatNameChain, flatSymbolChain, flatNumpadChain, flatDescriptionChain
	imageURL := raw.ImageURL
	if raw.Element != nil {
		nameChain, symbolChain, numpadChain, descriptionChain = nestedNameChain, nestedSymbolChain, nestedNumpadChain, nestedDescriptionChain
		if raw.Element.ImageURL != nil && *raw.Element.ImageURL != "" {
			imageURL = raw.Element.ImageURL
		}
	}

	return &NotationElement{
		ID:          id,
		ElementID:   elementID,
		CategoryID:  categoryID,
		Name:        firstNonEmpty(raw, nameChain, defaultName),
		Symbol:      firstNonEmpty(raw, symbolChain, ""),
		Numpad:      firstNonEmpty(raw, numpadChain, ""),
		ImageURL:    imageURL,
		Display:     raw.Display,
		Description: firstNonEmpty(raw, descriptionChain, ""),
	}
}

// categoryNames maps the small fixed set of known category ids to their
// human-readable labels.
var categoryNames = map[string]string{
	"buttons":    "Buttons",
	"directions": "Directions",
	"modifiers":  "Modifiers",
	"motions":    "Motions",
	"connectors": "Connectors",
	"text":       "Text",
	"other":      "Other",
}

// CategoryName returns the human label for a category id. Unknown ids fall
// back to the id with its first letter capitalized.
func CategoryName(categoryID string) string {
	if name, ok := categoryNames[categoryID]; ok {
		return name
	}
	if categoryID == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(categoryID)
	return string(unicode.ToUpper(r)) + categoryID[size:]
}
