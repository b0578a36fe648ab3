package domain

// ChecklistItem is a boolean sub-criterion within a category. IDs are
// unique within their category.
type ChecklistItem struct {
	ID   string
	Text string
}

// Category is one of the fixed business areas being assessed. Catalog
// order is significant: it drives step numbering and table order.
type Category struct {
	ID             string
	Title          string
	Description    string
	ChecklistItems []ChecklistItem
}

// Item looks up a checklist item by id.
func (c *Category) Item(id string) (ChecklistItem, bool) {
	for _, it := range c.ChecklistItems {
		if it.ID == id {
			return it, true
		}
	}
	return ChecklistItem{}, false
}

// Recommendation points a weak category at an improvement resource.
// The catalog holds at most one recommendation per category id.
type Recommendation struct {
	Category     string
	Title        string
	Description  string
	ResourceType ResourceType
	ResourceURL  string
}

// UserInfo holds the optional contact details collected before results.
type UserInfo struct {
	Name  string
	Email string
	Phone string
}
