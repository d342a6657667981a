package view

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// Kinds of surfaces which can be open on top of a screen
const (
	KindClosed           = "closed"
	KindAddingCustomer   = "adding-customer"
	KindUpdatingCustomer = "updating-customer"
	KindAddingContact    = "adding-contact"
	KindUpdatingContact  = "updating-contact"
	KindAddingMarket     = "adding-market"
	KindAddingSubject    = "adding-subject"
)

// ViewState is the surface currently open on top of a screen
type ViewState interface {
	Kind() string
	isViewState()
}

// Closed means that nothing is open
type Closed struct{}

// AddingCustomer holds blank customer form
type AddingCustomer struct {
	Form *CustomerForm
}

// UpdatingCustomer holds form of existing customer
type UpdatingCustomer struct {
	Form *CustomerForm
}

// AddingContact holds blank contact form
type AddingContact struct {
	Form *ContactForm
}

// UpdatingContact holds form of existing contact
type UpdatingContact struct {
	Form *ContactForm
}

// AddingMarket holds blank market form
type AddingMarket struct {
	Form *ClassificationForm
}

// AddingSubject holds blank subject form
type AddingSubject struct {
	Form *ClassificationForm
}

func (Closed) Kind() string           { return KindClosed }
func (AddingCustomer) Kind() string   { return KindAddingCustomer }
func (UpdatingCustomer) Kind() string { return KindUpdatingCustomer }
func (AddingContact) Kind() string    { return KindAddingContact }
func (UpdatingContact) Kind() string  { return KindUpdatingContact }
func (AddingMarket) Kind() string     { return KindAddingMarket }
func (AddingSubject) Kind() string    { return KindAddingSubject }

func (Closed) isViewState()           {}
func (AddingCustomer) isViewState()   {}
func (UpdatingCustomer) isViewState() {}
func (AddingContact) isViewState()    {}
func (UpdatingContact) isViewState()  {}
func (AddingMarket) isViewState()     {}
func (AddingSubject) isViewState()    {}

// Modal holds ViewState of a screen, zero value is closed
type Modal struct {
	state ViewState
}

// State returns current surface
func (m *Modal) State() ViewState {
	if m.state == nil {
		return Closed{}
	}
	return m.state
}

// Kind returns kind of current surface
func (m *Modal) Kind() string {
	return m.State().Kind()
}

// IsOpen reports whether any surface is open
func (m *Modal) IsOpen() bool {
	return m.Kind() != KindClosed
}

// Close closes current surface
func (m *Modal) Close() {
	m.state = Closed{}
}

// CustomerForm returns customer form of open surface or nil
func (m *Modal) CustomerForm() *CustomerForm {
	switch s := m.State().(type) {
	case AddingCustomer:
		return s.Form
	case UpdatingCustomer:
		return s.Form
	default:
		return nil
	}
}

// ContactForm returns contact form of open surface or nil
func (m *Modal) ContactForm() *ContactForm {
	switch s := m.State().(type) {
	case AddingContact:
		return s.Form
	case UpdatingContact:
		return s.Form
	default:
		return nil
	}
}

// ClassificationForm returns market or subject form of open surface or nil
func (m *Modal) ClassificationForm() *ClassificationForm {
	switch s := m.State().(type) {
	case AddingMarket:
		return s.Form
	case AddingSubject:
		return s.Form
	default:
		return nil
	}
}

// Status returns submission status of open surface or nil
func (m *Modal) Status() *Status {
	switch s := m.State().(type) {
	case Closed:
		return nil
	case AddingCustomer:
		return &s.Form.Status
	case UpdatingCustomer:
		return &s.Form.Status
	case AddingContact:
		return &s.Form.Status
	case UpdatingContact:
		return &s.Form.Status
	case AddingMarket:
		return &s.Form.Status
	case AddingSubject:
		return &s.Form.Status
	default:
		panic(fmt.Sprintf("unexpected view state %T", s))
	}
}

// Fill applies typed values to the form of open surface
func (m *Modal) Fill(d Draft) {
	switch s := m.State().(type) {
	case Closed:
	case AddingCustomer:
		s.Form.Fill(d)
	case UpdatingCustomer:
		s.Form.Fill(d)
	case AddingContact:
		s.Form.Fill(d)
	case UpdatingContact:
		s.Form.Fill(d)
	case AddingMarket:
		s.Form.Fill(d)
	case AddingSubject:
		s.Form.Fill(d)
	default:
		panic(fmt.Sprintf("unexpected view state %T", s))
	}
}

func (m Modal) EncodeMsgpack(enc *msgpack.Encoder) error {
	state := m.State()
	if err := enc.EncodeArrayLen(2); err != nil {
		return err
	}

	if err := enc.EncodeString(state.Kind()); err != nil {
		return err
	}

	switch s := state.(type) {
	case Closed:
		return enc.EncodeNil()
	case AddingCustomer:
		return enc.Encode(s.Form)
	case UpdatingCustomer:
		return enc.Encode(s.Form)
	case AddingContact:
		return enc.Encode(s.Form)
	case UpdatingContact:
		return enc.Encode(s.Form)
	case AddingMarket:
		return enc.Encode(s.Form)
	case AddingSubject:
		return enc.Encode(s.Form)
	default:
		return fmt.Errorf("unexpected view state %T", s)
	}
}

func (m *Modal) DecodeMsgpack(dec *msgpack.Decoder) error {
	n, err := dec.DecodeArrayLen()
	if err != nil {
		return err
	}

	if n != 2 {
		return fmt.Errorf("view state must be encoded as 2 elements array, got %d", n)
	}

	kind, err := dec.DecodeString()
	if err != nil {
		return err
	}

	switch kind {
	case KindClosed:
		m.state = Closed{}
		return dec.Skip()
	case KindAddingCustomer, KindUpdatingCustomer:
		var f CustomerForm
		if err := dec.Decode(&f); err != nil {
			return err
		}

		if kind == KindAddingCustomer {
			m.state = AddingCustomer{Form: &f}
		} else {
			m.state = UpdatingCustomer{Form: &f}
		}
	case KindAddingContact, KindUpdatingContact:
		var f ContactForm
		if err := dec.Decode(&f); err != nil {
			return err
		}

		if kind == KindAddingContact {
			m.state = AddingContact{Form: &f}
		} else {
			m.state = UpdatingContact{Form: &f}
		}
	case KindAddingMarket, KindAddingSubject:
		var f ClassificationForm
		if err := dec.Decode(&f); err != nil {
			return err
		}

		if kind == KindAddingMarket {
			m.state = AddingMarket{Form: &f}
		} else {
			m.state = AddingSubject{Form: &f}
		}
	default:
		return fmt.Errorf("unknown view state %q", kind)
	}
	return nil
}
