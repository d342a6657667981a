package view

import (
	"fmt"

	apperrors "github.com/umalmyha/crm-console/internal/errors"
	"github.com/umalmyha/crm-console/internal/model"
)

// Dashboard is view model of a single customer screen. Contact, market and subject
// lists cache server state of that customer only.
type Dashboard struct {
	CustomerID         model.ID
	CustomerName       string
	Contacts           []*model.Contact
	Markets            []*model.Market
	Subjects           []*model.Subject
	Error              string
	Success            string
	ContactsGeneration uint64
	MarketsGeneration  uint64
	SubjectsGeneration uint64
	Modal              Modal
}

// NewDashboard builds dashboard which is not scoped to any customer yet
func NewDashboard() *Dashboard {
	return &Dashboard{}
}

// Activate scopes dashboard to customer and drops everything displayed before.
// Generations survive activation, so fetches issued for previous activation are ignored.
func (d *Dashboard) Activate(customerID model.ID, customerName string) {
	if customerName == "" && customerID == d.CustomerID {
		customerName = d.CustomerName
	}

	d.CustomerID = customerID
	d.CustomerName = customerName
	d.Contacts = make([]*model.Contact, 0)
	d.Markets = make([]*model.Market, 0)
	d.Subjects = make([]*model.Subject, 0)
	d.Error = ""
	d.Success = ""
	d.Modal.Close()
}

// Scoped reports whether dashboard shows provided customer
func (d *Dashboard) Scoped(customerID model.ID) bool {
	return !d.CustomerID.IsZero() && d.CustomerID == customerID
}

// BeginFetch issues ticket for list fetch, previous tickets of the list become stale
func (d *Dashboard) BeginFetch(list List) Ticket {
	return Ticket{List: list, Scope: d.CustomerID.String(), Generation: d.bump(list)}
}

// ApplyContacts replaces contact list if ticket is current
func (d *Dashboard) ApplyContacts(t Ticket, contacts []*model.Contact) bool {
	if t.List != ListContacts || !d.current(t) {
		return false
	}
	d.Contacts = nonNil(contacts)
	return true
}

// ApplyMarkets replaces market list if ticket is current
func (d *Dashboard) ApplyMarkets(t Ticket, markets []*model.Market) bool {
	if t.List != ListMarkets || !d.current(t) {
		return false
	}
	d.Markets = nonNil(markets)
	return true
}

// ApplySubjects replaces subject list if ticket is current
func (d *Dashboard) ApplySubjects(t Ticket, subjects []*model.Subject) bool {
	if t.List != ListSubjects || !d.current(t) {
		return false
	}
	d.Subjects = nonNil(subjects)
	return true
}

// FailFetch degrades list of the ticket to empty and shows error
func (d *Dashboard) FailFetch(t Ticket, msg string) bool {
	if !d.current(t) {
		return false
	}

	switch t.List {
	case ListContacts:
		d.Contacts = make([]*model.Contact, 0)
	case ListMarkets:
		d.Markets = make([]*model.Market, 0)
	case ListSubjects:
		d.Subjects = make([]*model.Subject, 0)
	default:
		return false
	}
	d.Success = ""
	d.Error = msg
	return true
}

// Fail shows error on dashboard without touching lists
func (d *Dashboard) Fail(msg string) {
	d.Success = ""
	d.Error = msg
}

// Succeed shows success message of settled submission
func (d *Dashboard) Succeed(msg string) {
	d.Error = ""
	d.Success = msg
}

// Contact returns displayed contact with provided id or nil
func (d *Dashboard) Contact(id model.ID) *model.Contact {
	for _, c := range d.Contacts {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// PatchContact replaces displayed contact with the same id in place
func (d *Dashboard) PatchContact(updated *model.Contact) bool {
	for i, c := range d.Contacts {
		if c.ID == updated.ID {
			d.Contacts[i] = updated
			return true
		}
	}
	return false
}

// RemoveContact filters out contact with provided id
func (d *Dashboard) RemoveContact(id model.ID) int {
	var n int
	d.Contacts, n = remove(d.Contacts, func(c *model.Contact) bool {
		return c.ID == id
	})
	d.Error = ""
	return n
}

// RemoveMarket filters out every market with provided natural key
func (d *Dashboard) RemoveMarket(market, subCategory string) int {
	var n int
	d.Markets, n = remove(d.Markets, func(m *model.Market) bool {
		return m.CustomerMarket == market && m.CustomerMarketSubCategory == subCategory
	})
	d.Error = ""
	return n
}

// RemoveSubject filters out every subject with provided natural key
func (d *Dashboard) RemoveSubject(subjectName, subCategory string) int {
	var n int
	d.Subjects, n = remove(d.Subjects, func(s *model.Subject) bool {
		return s.SubjectName == subjectName && s.SubjectNameSubCategory == subCategory
	})
	d.Error = ""
	return n
}

// Open opens surface on top of dashboard
func (d *Dashboard) Open(s ViewState) error {
	switch s.(type) {
	case Closed, AddingContact, UpdatingContact, AddingMarket, AddingSubject:
		d.Modal.state = s
		return nil
	default:
		return apperrors.NewBusinessErr("modal", fmt.Sprintf("%s can't be opened on dashboard", s.Kind()))
	}
}

func (d *Dashboard) bump(list List) uint64 {
	switch list {
	case ListContacts:
		d.ContactsGeneration++
		return d.ContactsGeneration
	case ListMarkets:
		d.MarketsGeneration++
		return d.MarketsGeneration
	case ListSubjects:
		d.SubjectsGeneration++
		return d.SubjectsGeneration
	default:
		panic(fmt.Sprintf("dashboard has no %s list", list))
	}
}

func (d *Dashboard) generation(list List) uint64 {
	switch list {
	case ListContacts:
		return d.ContactsGeneration
	case ListMarkets:
		return d.MarketsGeneration
	case ListSubjects:
		return d.SubjectsGeneration
	default:
		return 0
	}
}

func (d *Dashboard) current(t Ticket) bool {
	return t.Scope == d.CustomerID.String() && t.Generation == d.generation(t.List)
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return make([]T, 0)
	}
	return items
}
