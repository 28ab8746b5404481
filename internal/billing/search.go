// internal/billing/search.go
//
// Suggestion filtering over the locally cached directory and catalog. An
// empty query yields no suggestions rather than the whole list, matching how
// the search boxes behave.

package billing

import "strings"

// FilterCustomers returns customers whose name contains the query
// case-insensitively, or whose phone contains it verbatim.
func FilterCustomers(customers []Customer, query string) []Customer {
	if query == "" {
		return nil
	}
	needle := strings.ToLower(query)
	var matches []Customer
	for _, c := range customers {
		if strings.Contains(strings.ToLower(c.Name), needle) || strings.Contains(c.Phone, query) {
			matches = append(matches, c)
		}
	}
	return matches
}

// FilterItems returns catalog items whose name contains the query
// case-insensitively. Item search matches on name only.
func FilterItems(items []Item, query string) []Item {
	if query == "" {
		return nil
	}
	needle := strings.ToLower(query)
	var matches []Item
	for _, i := range items {
		if strings.Contains(strings.ToLower(i.Name), needle) {
			matches = append(matches, i)
		}
	}
	return matches
}

// FindItem looks up an item by id in the cached catalog.
func FindItem(items []Item, id int64) (Item, bool) {
	for _, i := range items {
		if i.ID == id {
			return i, true
		}
	}
	return Item{}, false
}
