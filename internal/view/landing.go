package view

import (
	"fmt"

	apperrors "github.com/umalmyha/crm-console/internal/errors"
	"github.com/umalmyha/crm-console/internal/model"
)

// DefaultPageSize is number of customers requested per page
const DefaultPageSize = 10

// Landing is view model of customer list screen
type Landing struct {
	Customers  []*model.Customer
	SearchTerm string
	Page       int
	PageSize   int
	TotalPages int
	Loading    bool
	Error      string
	Success    string
	Generation uint64
	Modal      Modal
}

// NewLanding builds landing view model showing the first page
func NewLanding(pageSize int) *Landing {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	return &Landing{
		Customers: make([]*model.Customer, 0),
		PageSize:  pageSize,
	}
}

// Search changes search term and resets page index
func (l *Landing) Search(term string) {
	l.SearchTerm = term
	l.Page = 0
}

// HasPrev reports whether Previous control is enabled
func (l *Landing) HasPrev() bool {
	return l.Page > 0
}

// HasNext reports whether Next control is enabled
func (l *Landing) HasNext() bool {
	return l.Page < l.TotalPages-1
}

// PrevPage moves to previous page, no wraparound
func (l *Landing) PrevPage() bool {
	if !l.HasPrev() {
		return false
	}
	l.Page--
	return true
}

// NextPage moves to next page, no wraparound
func (l *Landing) NextPage() bool {
	if !l.HasNext() {
		return false
	}
	l.Page++
	return true
}

// PageNumber is 1-based number of current page
func (l *Landing) PageNumber() int {
	return l.Page + 1
}

// BeginFetch issues ticket for customer list fetch, every previous ticket becomes stale
func (l *Landing) BeginFetch() Ticket {
	l.Generation++
	l.Loading = true
	l.Success = ""
	return Ticket{List: ListCustomers, Scope: l.scope(), Generation: l.Generation}
}

// ApplyFetch replaces displayed page, stale tickets are ignored
func (l *Landing) ApplyFetch(t Ticket, p *model.CustomerPage) bool {
	if !l.current(t) {
		return false
	}

	l.Loading = false
	l.Error = ""
	l.TotalPages = p.TotalPages
	l.Customers = p.Customers
	if l.Customers == nil {
		l.Customers = make([]*model.Customer, 0)
	}
	return true
}

// FailFetch degrades list to empty and shows error, stale tickets are ignored
func (l *Landing) FailFetch(t Ticket, msg string) bool {
	if !l.current(t) {
		return false
	}

	l.Loading = false
	l.Success = ""
	l.Error = msg
	l.Customers = make([]*model.Customer, 0)
	return true
}

// Customer returns displayed customer with provided id or nil
func (l *Landing) Customer(id model.ID) *model.Customer {
	for _, c := range l.Customers {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// PatchCustomer replaces displayed row with the same id in place
func (l *Landing) PatchCustomer(updated *model.Customer) bool {
	for i, c := range l.Customers {
		if c.ID == updated.ID {
			l.Customers[i] = updated
			return true
		}
	}
	return false
}

// Open opens surface on top of landing screen
func (l *Landing) Open(s ViewState) error {
	switch s.(type) {
	case Closed, AddingCustomer, UpdatingCustomer:
		l.Modal.state = s
		return nil
	default:
		return apperrors.NewBusinessErr("modal", fmt.Sprintf("%s can't be opened on customer list", s.Kind()))
	}
}

// OpenUpdate opens update form of displayed customer
func (l *Landing) OpenUpdate(id model.ID) error {
	c := l.Customer(id)
	if c == nil {
		return apperrors.NewEntryNotFoundErr(fmt.Sprintf("customer %s is not displayed", id))
	}
	return l.Open(UpdatingCustomer{Form: EditCustomerForm(c)})
}

func (l *Landing) current(t Ticket) bool {
	return t.List == ListCustomers && t.Scope == l.scope() && t.Generation == l.Generation
}

func (l *Landing) scope() string {
	return fmt.Sprintf("%s|%d|%d", l.SearchTerm, l.Page, l.PageSize)
}
