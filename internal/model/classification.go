package model

import "sort"

// Market is a market classification attached to a customer.
// It is identified by the (CustomerMarket, CustomerMarketSubCategory) pair.
type Market struct {
	ID                        ID     `json:"customerMarketID,omitempty"`
	CustomerID                ID     `json:"customerId"`
	CustomerMarket            string `json:"customerMarket"`
	CustomerMarketSubCategory string `json:"customerMarketSubCategory"`
}

// Subject is a subject classification attached to a customer.
// It is identified by the (SubjectName, SubjectNameSubCategory) pair.
type Subject struct {
	ID                     ID     `json:"customerSubjectID,omitempty"`
	CustomerID             ID     `json:"customerId"`
	SubjectName            string `json:"subjectName"`
	SubjectNameSubCategory string `json:"subjectNameSubCategory"`
}

// Taxonomy maps primary classification value to its ordered subcategories
type Taxonomy map[string][]string

// Names returns primary values in sorted order
func (t Taxonomy) Names() []string {
	names := make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether primary value is known
func (t Taxonomy) Has(name string) bool {
	_, ok := t[name]
	return ok
}

// Subcategories returns subcategories of primary value in server order
func (t Taxonomy) Subcategories(name string) []string {
	return t[name]
}
