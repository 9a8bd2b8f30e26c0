package notation

// MissReason distinguishes why a reference failed to resolve during expansion.
type MissReason string

const (
	MissCategory MissReason = "category_not_found"
	MissElement  MissReason = "element_not_found"
)

// Miss records one failed lookup during expansion so callers can log it.
// A miss is never fatal: the corresponding output slot carries a synthesized
// placeholder.
type Miss struct {
	Index      int
	CategoryID string
	ElementID  string
	Reason     MissReason
}

// Expand resolves each compact reference against the given reference data and
// returns the ordered, fully-normalized sequence plus the lookup misses it
// recovered from. Output order and length always match the input exactly;
// neither the items nor the reference data are mutated.
func Expand(ref NotationReference, items []ComboNotationItem) ([]*ExpandedNotationItem, []Miss) {
	expanded := make([]*ExpandedNotationItem, 0, len(items))
	var misses []Miss

	for i, item := range items {
		// A bare or partial reference is normalized as a degenerate raw
		// element rather than dropped.
		if item.CategoryID == "" || item.ElementID == "" {
			expanded = append(expanded, normalizeItem(item))
			continue
		}

		category, ok := ref[item.CategoryID]
		if !ok {
			misses = append(misses, Miss{Index: i, CategoryID: item.CategoryID, ElementID: item.ElementID, Reason: MissCategory})
			expanded = append(expanded, placeholderItem(item))
			continue
		}

		var match *RawNotationElement
		for j := range category {
			if category[j].ID == item.ElementID {
				match = &category[j]
				break
			}
		}
		if match == nil {
			misses = append(misses, Miss{Index: i, CategoryID: item.CategoryID, ElementID: item.ElementID, Reason: MissElement})
			expanded = append(expanded, placeholderItem(item))
			continue
		}

		// Merge: the resolved record supplies the display fields, the
		// reference keeps authority over categoryId/elementId.
		merged := *match
		merged.CategoryID = item.CategoryID
		merged.ElementID = item.ElementID
		merged.ID = item.ElementID

		expanded = append(expanded, &ExpandedNotationItem{
			NotationElement: *Normalize(&merged),
			CategoryName:    CategoryName(item.CategoryID),
		})
	}

	return expanded, misses
}

// ExpandBare normalizes references without any reference data. This is the
// degraded path taken when no notation data is available for a game: the
// caller still receives a renderable, same-length, same-order sequence.
func ExpandBare(items []ComboNotationItem) []*ExpandedNotationItem {
	expanded := make([]*ExpandedNotationItem, 0, len(items))
	for _, item := range items {
		expanded = append(expanded, normalizeItem(item))
	}
	return expanded
}

func normalizeItem(item ComboNotationItem) *ExpandedNotationItem {
	normalized := Normalize(&RawNotationElement{
		CategoryID: item.CategoryID,
		ElementID:  item.ElementID,
	})
	return &ExpandedNotationItem{
		NotationElement: *normalized,
		CategoryName:    CategoryName(normalized.CategoryID),
	}
}

// placeholderItem synthesizes the stand-in for a lookup miss: the element id
// doubles as name and symbol so the combo still renders as text.
func placeholderItem(item ComboNotationItem) *ExpandedNotationItem {
	normalized := Normalize(&RawNotationElement{
		CategoryID: item.CategoryID,
		ElementID:  item.ElementID,
		Name:       item.ElementID,
		Symbol:     item.ElementID,
	})
	return &ExpandedNotationItem{
		NotationElement: *normalized,
		CategoryName:    CategoryName(item.CategoryID),
	}
}
