package notation

// LookupRaw finds the raw element record for a (categoryId, elementId)
// reference within already-fetched reference data. A missing category or a
// missing element within it is signaled by nil, never by panic or error.
// Matching is first-wins over the category's ordered collection.
func LookupRaw(ref NotationReference, categoryID, elementID string) *RawNotationElement {
	if ref == nil {
		return nil
	}

	category, ok := ref[categoryID]
	if !ok {
		return nil
	}

	for i := range category {
		if category[i].ID == elementID {
			return &category[i]
		}
	}
	return nil
}

// ResolveElement looks up a reference in the given reference data and returns
// the normalized element, or nil when the category or element is not present.
// The requested category id has authority over whatever the stored record
// carries. This component performs no I/O; fetching reference data is the
// caller's job.
func ResolveElement(ref NotationReference, categoryID, elementID string) *NotationElement {
	raw := LookupRaw(ref, categoryID, elementID)
	if raw == nil {
		return nil
	}

	merged := *raw
	merged.CategoryID = categoryID
	return Normalize(&merged)
}
