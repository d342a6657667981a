package view

import (
	apperrors "github.com/umalmyha/crm-console/internal/errors"
	"github.com/umalmyha/crm-console/internal/model"
)

// Status tracks submission of a single form
type Status struct {
	Busy    bool
	Error   string
	Success string
}

// Begin marks form as busy, second submission is rejected until the first one settles
func (s *Status) Begin() error {
	if s.Busy {
		return apperrors.NewBusinessErr("form", "Submission is already in progress")
	}
	s.Busy = true
	return nil
}

// Fail settles submission with error, prior success message is dropped
func (s *Status) Fail(msg string) {
	s.Busy = false
	s.Success = ""
	s.Error = msg
}

// Succeed settles submission with success message
func (s *Status) Succeed(msg string) {
	s.Busy = false
	s.Error = ""
	s.Success = msg
}

// Draft carries raw values typed into whatever form is open
type Draft struct {
	Customer model.Customer
	Contact  model.Contact
	Primary  string `form:"primary"`
	Sub      string `form:"subCategory"`
}

// CustomerForm adds or updates customer
type CustomerForm struct {
	Status
	Customer model.Customer
}

// NewCustomerForm builds blank customer form
func NewCustomerForm() *CustomerForm {
	return &CustomerForm{}
}

// EditCustomerForm builds customer form prefilled with existing record
func EditCustomerForm(c *model.Customer) *CustomerForm {
	return &CustomerForm{Customer: *c}
}

// Fill copies typed values, identifier of edited customer is preserved
func (f *CustomerForm) Fill(d Draft) {
	id := f.Customer.ID
	f.Customer = d.Customer
	f.Customer.ID = id
}

// Submission returns customer record to be sent
func (f *CustomerForm) Submission() *model.Customer {
	c := f.Customer
	return &c
}

// ContactForm adds or updates contact of a customer
type ContactForm struct {
	Status
	Contact model.Contact
	Roles   RoleSelect
}

// NewContactForm builds blank contact form scoped to customer
func NewContactForm(customerID model.ID, customerName string) *ContactForm {
	return &ContactForm{
		Contact: model.Contact{CustomerID: customerID, CustomerName: customerName},
	}
}

// EditContactForm builds contact form prefilled with existing contact
func EditContactForm(c *model.Contact) *ContactForm {
	f := &ContactForm{Contact: *c}
	f.Roles.Select(c.Role)
	f.Roles.SetInput(c.RoleInput)
	return f
}

// SetRoles installs fetched role enumeration. Role of edited contact which isn't
// in the enumeration is shown as free text.
func (f *ContactForm) SetRoles(roles []string) {
	f.Roles.Roles = roles
	f.Roles.keepUnlisted()
}

// Fill copies typed values, scoping fields and identifier are preserved
func (f *ContactForm) Fill(d Draft) {
	id, customerID, customerName := f.Contact.ID, f.Contact.CustomerID, f.Contact.CustomerName

	f.Contact = d.Contact
	f.Contact.ID = id
	f.Contact.CustomerID = customerID
	f.Contact.CustomerName = customerName

	f.Roles.Select(d.Contact.Role)
	f.Roles.SetInput(d.Contact.RoleInput)
	f.Contact.Role = f.Roles.Selected
	f.Contact.RoleInput = f.Roles.Input
}

// Submission returns contact with resolved role
func (f *ContactForm) Submission() (*model.Contact, error) {
	role, err := f.Roles.Resolved()
	if err != nil {
		return nil, err
	}

	c := f.Contact
	c.Role = role
	c.RoleInput = ""
	if f.Roles.OthersActive() {
		c.RoleInput = role
	}
	return &c, nil
}

// Refresh resets form to blank to fill another contact
func (f *ContactForm) Refresh() {
	roles := f.Roles.Roles
	*f = *NewContactForm(f.Contact.CustomerID, f.Contact.CustomerName)
	f.SetRoles(roles)
}

// ClassificationForm adds market or subject of a customer
type ClassificationForm struct {
	Status
	Cascade
	CustomerID model.ID
}

// NewClassificationForm builds blank classification form scoped to customer
func NewClassificationForm(customerID model.ID, taxonomy model.Taxonomy) *ClassificationForm {
	return &ClassificationForm{
		Cascade:    Cascade{Taxonomy: taxonomy},
		CustomerID: customerID,
	}
}

// Fill applies typed values. Subcategory typed together with a changed primary value is discarded.
func (f *ClassificationForm) Fill(d Draft) {
	if d.Primary != f.Primary {
		f.SelectPrimary(d.Primary)
		return
	}
	f.SelectSub(d.Sub)
}

// Market returns market ready to be submitted
func (f *ClassificationForm) Market() (*model.Market, error) {
	primary, sub, err := f.Pair()
	if err != nil {
		return nil, err
	}
	return &model.Market{CustomerID: f.CustomerID, CustomerMarket: primary, CustomerMarketSubCategory: sub}, nil
}

// Subject returns subject ready to be submitted
func (f *ClassificationForm) Subject() (*model.Subject, error) {
	primary, sub, err := f.Pair()
	if err != nil {
		return nil, err
	}
	return &model.Subject{CustomerID: f.CustomerID, SubjectName: primary, SubjectNameSubCategory: sub}, nil
}

// Refresh resets form to blank to fill another classification
func (f *ClassificationForm) Refresh() {
	f.Status = Status{}
	f.Reset()
}
