package view

// List names a collection fetched from CRM API
type List string

const (
	ListCustomers List = "customers"
	ListContacts  List = "contacts"
	ListMarkets   List = "markets"
	ListSubjects  List = "subjects"
)

// Ticket identifies a single list fetch. Response of a fetch is applied only
// while its ticket is the latest one issued for the list and scope.
type Ticket struct {
	List       List
	Scope      string
	Generation uint64
}

func remove[T any](items []T, match func(T) bool) ([]T, int) {
	kept := make([]T, 0, len(items))
	for _, item := range items {
		if !match(item) {
			kept = append(kept, item)
		}
	}
	return kept, len(items) - len(kept)
}
