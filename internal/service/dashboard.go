package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/umalmyha/crm-console/internal/client"
	apperrors "github.com/umalmyha/crm-console/internal/errors"
	"github.com/umalmyha/crm-console/internal/model"
	"github.com/umalmyha/crm-console/internal/session"
	"github.com/umalmyha/crm-console/internal/validation"
	"github.com/umalmyha/crm-console/internal/view"
)

var fetchFailures = map[view.List]string{
	view.ListContacts: msgFetchContactsFailed,
	view.ListMarkets:  msgFetchMarketsFailed,
	view.ListSubjects: msgFetchSubjectsFailed,
}

// DashboardService drives single customer screen of a session
type DashboardService interface {
	Activate(ctx context.Context, sid string, customerID model.ID, customerName string) (*view.Dashboard, error)
	OpenNewContact(ctx context.Context, sid string, customerID model.ID) (*view.Dashboard, error)
	OpenEditContact(ctx context.Context, sid string, customerID, contactID model.ID) (*view.Dashboard, error)
	OpenNewMarket(ctx context.Context, sid string, customerID model.ID) (*view.Dashboard, error)
	OpenNewSubject(ctx context.Context, sid string, customerID model.ID) (*view.Dashboard, error)
	EditModal(ctx context.Context, sid string, customerID model.ID, d view.Draft) (*view.Dashboard, error)
	RefreshModal(ctx context.Context, sid string, customerID model.ID) (*view.Dashboard, error)
	CloseModal(ctx context.Context, sid string, customerID model.ID) (*view.Dashboard, error)
	CreateContact(ctx context.Context, sid string, customerID model.ID, d view.Draft) (*view.Dashboard, error)
	UpdateContact(ctx context.Context, sid string, customerID, contactID model.ID, d view.Draft) (*view.Dashboard, error)
	DeleteContact(ctx context.Context, sid string, customerID, contactID model.ID) (*view.Dashboard, error)
	CreateMarket(ctx context.Context, sid string, customerID model.ID, d view.Draft) (*view.Dashboard, error)
	DeleteMarket(ctx context.Context, sid string, customerID model.ID, market, subCategory string) (*view.Dashboard, error)
	CreateSubject(ctx context.Context, sid string, customerID model.ID, d view.Draft) (*view.Dashboard, error)
	DeleteSubject(ctx context.Context, sid string, customerID model.ID, subjectName, subCategory string) (*view.Dashboard, error)
}

type dashboardService struct {
	api       client.CustomerAPI
	validator validation.Validator
	views     *views
	inflight  *inflight
}

func NewDashboardService(api client.CustomerAPI, store session.Store, validator validation.Validator) DashboardService {
	return &dashboardService{
		api:       api,
		validator: validator,
		views:     newViews(store, view.DefaultPageSize),
		inflight:  newInflight(),
	}
}

func (s *dashboardService) Activate(ctx context.Context, sid string, customerID model.ID, customerName string) (*view.Dashboard, error) {
	return s.fetch(ctx, sid, func(d *view.Dashboard) ([]view.List, error) {
		d.Activate(customerID, customerName)
		return []view.List{view.ListContacts, view.ListMarkets, view.ListSubjects}, nil
	})
}

func (s *dashboardService) OpenNewContact(ctx context.Context, sid string, customerID model.ID) (*view.Dashboard, error) {
	if d, err := s.scoped(ctx, sid, customerID, idle); err != nil {
		return d, err
	}

	roles, rolesErr := s.api.Roles(ctx)

	settleCtx, cancel := settleContext(ctx)
	defer cancel()

	return s.scoped(settleCtx, sid, customerID, func(d *view.Dashboard) error {
		if err := idle(d); err != nil {
			return err
		}

		f := view.NewContactForm(d.CustomerID, d.CustomerName)
		s.installRoles(sid, f, roles, rolesErr)
		return d.Open(view.AddingContact{Form: f})
	})
}

func (s *dashboardService) OpenEditContact(ctx context.Context, sid string, customerID, contactID model.ID) (*view.Dashboard, error) {
	d, err := s.scoped(ctx, sid, customerID, func(d *view.Dashboard) error {
		if err := idle(d); err != nil {
			return err
		}
		return displayedContact(d, contactID)
	})
	if err != nil {
		return d, err
	}

	roles, rolesErr := s.api.Roles(ctx)

	settleCtx, cancel := settleContext(ctx)
	defer cancel()

	return s.scoped(settleCtx, sid, customerID, func(d *view.Dashboard) error {
		if err := idle(d); err != nil {
			return err
		}

		if err := displayedContact(d, contactID); err != nil {
			return err
		}

		f := view.EditContactForm(d.Contact(contactID))
		s.installRoles(sid, f, roles, rolesErr)
		return d.Open(view.UpdatingContact{Form: f})
	})
}

func (s *dashboardService) OpenNewMarket(ctx context.Context, sid string, customerID model.ID) (*view.Dashboard, error) {
	return s.openClassification(ctx, sid, customerID, s.api.MarketTaxonomy, msgFetchMarketsFailed, func(f *view.ClassificationForm) view.ViewState {
		return view.AddingMarket{Form: f}
	})
}

func (s *dashboardService) OpenNewSubject(ctx context.Context, sid string, customerID model.ID) (*view.Dashboard, error) {
	return s.openClassification(ctx, sid, customerID, s.api.SubjectTaxonomy, msgFetchSubjectsFailed, func(f *view.ClassificationForm) view.ViewState {
		return view.AddingSubject{Form: f}
	})
}

func (s *dashboardService) EditModal(ctx context.Context, sid string, customerID model.ID, draft view.Draft) (*view.Dashboard, error) {
	return s.scoped(ctx, sid, customerID, func(d *view.Dashboard) error {
		if err := idle(d); err != nil {
			return err
		}
		d.Modal.Fill(draft)
		return nil
	})
}

func (s *dashboardService) RefreshModal(ctx context.Context, sid string, customerID model.ID) (*view.Dashboard, error) {
	return s.scoped(ctx, sid, customerID, func(d *view.Dashboard) error {
		if err := idle(d); err != nil {
			return err
		}

		switch st := d.Modal.State().(type) {
		case view.AddingContact:
			st.Form.Refresh()
		case view.AddingMarket:
			st.Form.Refresh()
		case view.AddingSubject:
			st.Form.Refresh()
		}
		return nil
	})
}

func (s *dashboardService) CloseModal(ctx context.Context, sid string, customerID model.ID) (*view.Dashboard, error) {
	return s.scoped(ctx, sid, customerID, func(d *view.Dashboard) error {
		d.Modal.Close()
		return nil
	})
}

func (s *dashboardService) CreateContact(ctx context.Context, sid string, customerID model.ID, draft view.Draft) (*view.Dashboard, error) {
	var submission *model.Contact
	d, err := s.scoped(ctx, sid, customerID, func(d *view.Dashboard) error {
		st, ok := d.Modal.State().(view.AddingContact)
		if !ok {
			return apperrors.NewEntryNotFoundErr("contact form is not open")
		}

		var err error
		submission, err = s.submitContact(st.Form, draft)
		return err
	})
	if err != nil || submission == nil {
		return d, err
	}

	_, callErr := s.api.CreateContact(ctx, submission)

	if callErr != nil {
		logrus.WithFields(logrus.Fields{"session": sid, "customer": customerID}).Errorf("failed to create contact - %v", callErr)
		return s.settleForm(ctx, sid, customerID, view.KindAddingContact, msgSaveContactFailed)
	}
	return s.settleCreation(ctx, sid, customerID, view.KindAddingContact, view.ListContacts, msgContactSaved)
}

func (s *dashboardService) UpdateContact(ctx context.Context, sid string, customerID, contactID model.ID, draft view.Draft) (*view.Dashboard, error) {
	var submission *model.Contact
	d, err := s.scoped(ctx, sid, customerID, func(d *view.Dashboard) error {
		st, ok := d.Modal.State().(view.UpdatingContact)
		if !ok || st.Form.Contact.ID != contactID {
			return apperrors.NewEntryNotFoundErr(fmt.Sprintf("update form of contact %s is not open", contactID))
		}

		var err error
		submission, err = s.submitContact(st.Form, draft)
		return err
	})
	if err != nil || submission == nil {
		return d, err
	}

	updated, callErr := s.api.UpdateContact(ctx, contactID, submission)

	settleCtx, cancel := settleContext(ctx)
	defer cancel()

	if callErr != nil {
		logrus.WithFields(logrus.Fields{"session": sid, "customer": customerID, "contact": contactID}).Errorf("failed to update contact - %v", callErr)
		return s.settleForm(ctx, sid, customerID, view.KindUpdatingContact, msgUpdateContactFailed)
	}

	return s.views.dashboard(settleCtx, sid, func(d *view.Dashboard) error {
		if !d.Scoped(customerID) {
			return nil
		}

		d.PatchContact(updated)
		if d.Modal.Kind() == view.KindUpdatingContact {
			d.Modal.Close()
		}
		d.Succeed(msgContactUpdated)
		return nil
	})
}

func (s *dashboardService) DeleteContact(ctx context.Context, sid string, customerID, contactID model.ID) (*view.Dashboard, error) {
	if d, err := s.scoped(ctx, sid, customerID, noop); err != nil {
		return d, err
	}

	callErr := s.api.DeleteContact(ctx, contactID)
	return s.settleDeletion(ctx, sid, customerID, callErr, msgDeleteContactFailed, func(d *view.Dashboard) {
		d.RemoveContact(contactID)
	})
}

func (s *dashboardService) CreateMarket(ctx context.Context, sid string, customerID model.ID, draft view.Draft) (*view.Dashboard, error) {
	var submission *model.Market
	d, err := s.scoped(ctx, sid, customerID, func(d *view.Dashboard) error {
		st, ok := d.Modal.State().(view.AddingMarket)
		if !ok {
			return apperrors.NewEntryNotFoundErr("market form is not open")
		}

		var err error
		submission, err = submitClassification(st.Form, draft, st.Form.Market)
		return err
	})
	if err != nil || submission == nil {
		return d, err
	}

	_, callErr := s.api.CreateMarket(ctx, submission)

	if callErr != nil {
		logrus.WithFields(logrus.Fields{"session": sid, "customer": customerID}).Errorf("failed to create market - %v", callErr)
		return s.settleForm(ctx, sid, customerID, view.KindAddingMarket, msgAddMarketFailed)
	}
	return s.settleCreation(ctx, sid, customerID, view.KindAddingMarket, view.ListMarkets, msgMarketAdded)
}

func (s *dashboardService) DeleteMarket(ctx context.Context, sid string, customerID model.ID, market, subCategory string) (*view.Dashboard, error) {
	if d, err := s.scoped(ctx, sid, customerID, noop); err != nil {
		return d, err
	}

	callErr := s.api.DeleteMarket(ctx, customerID, market, subCategory)
	return s.settleDeletion(ctx, sid, customerID, callErr, msgDeleteMarketFailed, func(d *view.Dashboard) {
		d.RemoveMarket(market, subCategory)
	})
}

func (s *dashboardService) CreateSubject(ctx context.Context, sid string, customerID model.ID, draft view.Draft) (*view.Dashboard, error) {
	var submission *model.Subject
	d, err := s.scoped(ctx, sid, customerID, func(d *view.Dashboard) error {
		st, ok := d.Modal.State().(view.AddingSubject)
		if !ok {
			return apperrors.NewEntryNotFoundErr("subject form is not open")
		}

		var err error
		submission, err = submitClassification(st.Form, draft, st.Form.Subject)
		return err
	})
	if err != nil || submission == nil {
		return d, err
	}

	_, callErr := s.api.CreateSubject(ctx, submission)

	if callErr != nil {
		logrus.WithFields(logrus.Fields{"session": sid, "customer": customerID}).Errorf("failed to create subject - %v", callErr)
		return s.settleForm(ctx, sid, customerID, view.KindAddingSubject, msgAddSubjectFailed)
	}
	return s.settleCreation(ctx, sid, customerID, view.KindAddingSubject, view.ListSubjects, msgSubjectAdded)
}

func (s *dashboardService) DeleteSubject(ctx context.Context, sid string, customerID model.ID, subjectName, subCategory string) (*view.Dashboard, error) {
	if d, err := s.scoped(ctx, sid, customerID, noop); err != nil {
		return d, err
	}

	callErr := s.api.DeleteSubject(ctx, customerID, subjectName, subCategory)
	return s.settleDeletion(ctx, sid, customerID, callErr, msgDeleteSubjectFailed, func(d *view.Dashboard) {
		d.RemoveSubject(subjectName, subCategory)
	})
}

// scoped applies fn only if dashboard of the session shows provided customer
func (s *dashboardService) scoped(ctx context.Context, sid string, customerID model.ID, fn func(*view.Dashboard) error) (*view.Dashboard, error) {
	return s.views.dashboard(ctx, sid, func(d *view.Dashboard) error {
		if !d.Scoped(customerID) {
			return apperrors.NewEntryNotFoundErr(fmt.Sprintf("dashboard of customer %s is not active", customerID))
		}
		return fn(d)
	})
}

func (s *dashboardService) openClassification(
	ctx context.Context,
	sid string,
	customerID model.ID,
	taxonomy func(context.Context) (model.Taxonomy, error),
	failure string,
	state func(*view.ClassificationForm) view.ViewState,
) (*view.Dashboard, error) {
	if d, err := s.scoped(ctx, sid, customerID, idle); err != nil {
		return d, err
	}

	t, taxErr := taxonomy(ctx)

	settleCtx, cancel := settleContext(ctx)
	defer cancel()

	return s.scoped(settleCtx, sid, customerID, func(d *view.Dashboard) error {
		if err := idle(d); err != nil {
			return err
		}

		if taxErr != nil {
			logrus.WithFields(logrus.Fields{"session": sid, "customer": customerID}).Errorf("failed to fetch taxonomy - %v", taxErr)
			t = make(model.Taxonomy)
		}

		f := view.NewClassificationForm(d.CustomerID, t)
		if taxErr != nil {
			f.Fail(failure)
		}
		return d.Open(state(f))
	})
}

func (s *dashboardService) installRoles(sid string, f *view.ContactForm, roles []string, err error) {
	if err != nil {
		logrus.WithFields(logrus.Fields{"session": sid}).Errorf("failed to fetch roles - %v", err)
		f.Fail(msgFetchRolesFailed)
		f.SetRoles(nil)
		return
	}
	f.SetRoles(roles)
}

// submitContact applies draft to the form and marks it busy.
// Nil submission without error means that draft was rejected and the reason is put on the form.
func (s *dashboardService) submitContact(f *view.ContactForm, d view.Draft) (*model.Contact, error) {
	if f.Busy {
		return nil, f.Begin()
	}

	f.Fill(d)
	if err := s.validator.Validate(&f.Contact); err != nil {
		f.Fail(rejection(err))
		return nil, nil
	}

	c, err := f.Submission()
	if err != nil {
		f.Fail(rejection(err))
		return nil, nil
	}

	if err := f.Begin(); err != nil {
		return nil, err
	}
	return c, nil
}

func submitClassification[T any](f *view.ClassificationForm, d view.Draft, build func() (*T, error)) (*T, error) {
	if f.Busy {
		return nil, f.Begin()
	}

	f.Fill(d)
	item, err := build()
	if err != nil {
		f.Fail(rejection(err))
		return nil, nil
	}

	if err := f.Begin(); err != nil {
		return nil, err
	}
	return item, nil
}

// settleForm puts failure message on the form of given kind if it is still open
func (s *dashboardService) settleForm(ctx context.Context, sid string, customerID model.ID, kind string, msg string) (*view.Dashboard, error) {
	settleCtx, cancel := settleContext(ctx)
	defer cancel()

	return s.views.dashboard(settleCtx, sid, func(d *view.Dashboard) error {
		if !d.Scoped(customerID) || d.Modal.Kind() != kind {
			return nil
		}
		d.Modal.Status().Fail(msg)
		return nil
	})
}

// settleCreation closes creation form and re-fetches the list the entry was added to.
// The re-fetch runs under the request context.
func (s *dashboardService) settleCreation(ctx context.Context, sid string, customerID model.ID, kind string, list view.List, msg string) (*view.Dashboard, error) {
	return s.fetch(ctx, sid, func(d *view.Dashboard) ([]view.List, error) {
		if !d.Scoped(customerID) {
			return nil, nil
		}

		if d.Modal.Kind() == kind {
			d.Modal.Close()
		}
		d.Succeed(msg)
		return []view.List{list}, nil
	})
}

func (s *dashboardService) settleDeletion(ctx context.Context, sid string, customerID model.ID, callErr error, failure string, remove func(*view.Dashboard)) (*view.Dashboard, error) {
	settleCtx, cancel := settleContext(ctx)
	defer cancel()

	return s.views.dashboard(settleCtx, sid, func(d *view.Dashboard) error {
		if !d.Scoped(customerID) {
			return nil
		}

		if callErr != nil {
			logrus.WithFields(logrus.Fields{"session": sid, "customer": customerID}).Errorf("deletion failed - %v", callErr)
			d.Fail(apperrors.ServerMessage(callErr, failure))
			return nil
		}

		remove(d)
		return nil
	})
}

type listFetch struct {
	ticket view.Ticket
	ctx    context.Context
	done   func()
}

// fetch runs prepare and then loads every list it returned, one after another.
// Every list is applied on its own, so failure of one list doesn't affect others.
func (s *dashboardService) fetch(ctx context.Context, sid string, prepare func(*view.Dashboard) ([]view.List, error)) (*view.Dashboard, error) {
	var (
		customerID model.ID
		fetches    []*listFetch
	)

	prepareCtx, cancelPrepare := settleContext(ctx)

	// prepared changes are stored even if the request is gone
	d, err := s.views.dashboard(prepareCtx, sid, func(d *view.Dashboard) error {
		lists, err := prepare(d)
		if err != nil {
			return err
		}

		customerID = d.CustomerID
		for _, list := range lists {
			f := &listFetch{ticket: d.BeginFetch(list)}
			f.ctx, f.done = s.inflight.begin(ctx, sid+":"+string(list))
			fetches = append(fetches, f)
		}
		return nil
	})
	cancelPrepare()

	if err != nil || len(fetches) == 0 {
		for _, f := range fetches {
			f.done()
		}
		return d, err
	}

	applies := make([]func(*view.Dashboard), 0, len(fetches))
	for _, f := range fetches {
		apply, err := s.load(f.ctx, customerID, f.ticket)
		f.done()

		if err != nil {
			if errors.Is(err, context.Canceled) && ctx.Err() == nil {
				continue // superseded by later fetch
			}

			logrus.WithFields(logrus.Fields{"session": sid, "customer": customerID, "list": f.ticket.List}).Errorf("failed to fetch list - %v", err)
			t, msg := f.ticket, fetchFailures[f.ticket.List]
			apply = func(d *view.Dashboard) { d.FailFetch(t, msg) }
		}
		applies = append(applies, apply)
	}

	settleCtx, cancel := settleContext(ctx)
	defer cancel()

	return s.views.dashboard(settleCtx, sid, func(d *view.Dashboard) error {
		for _, apply := range applies {
			apply(d)
		}
		return nil
	})
}

func (s *dashboardService) load(ctx context.Context, customerID model.ID, t view.Ticket) (func(*view.Dashboard), error) {
	switch t.List {
	case view.ListContacts:
		contacts, err := s.api.Contacts(ctx, customerID)
		if err != nil {
			return nil, err
		}
		return func(d *view.Dashboard) { d.ApplyContacts(t, contacts) }, nil
	case view.ListMarkets:
		markets, err := s.api.Markets(ctx, customerID)
		if err != nil {
			return nil, err
		}
		return func(d *view.Dashboard) { d.ApplyMarkets(t, markets) }, nil
	case view.ListSubjects:
		subjects, err := s.api.Subjects(ctx, customerID)
		if err != nil {
			return nil, err
		}
		return func(d *view.Dashboard) { d.ApplySubjects(t, subjects) }, nil
	default:
		return nil, fmt.Errorf("dashboard has no %s list", t.List)
	}
}

func idle(d *view.Dashboard) error {
	return ensureIdle(&d.Modal)
}

func noop(*view.Dashboard) error {
	return nil
}

func displayedContact(d *view.Dashboard, contactID model.ID) error {
	if d.Contact(contactID) == nil {
		return apperrors.NewEntryNotFoundErr(fmt.Sprintf("contact %s is not displayed", contactID))
	}
	return nil
}
