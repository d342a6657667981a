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

// LandingService drives customer list screen of a session
type LandingService interface {
	Activate(ctx context.Context, sid string) (*view.Landing, error)
	Search(ctx context.Context, sid string, term string) (*view.Landing, error)
	NextPage(ctx context.Context, sid string) (*view.Landing, error)
	PrevPage(ctx context.Context, sid string) (*view.Landing, error)
	OpenNewCustomer(ctx context.Context, sid string) (*view.Landing, error)
	OpenEditCustomer(ctx context.Context, sid string, customerID model.ID) (*view.Landing, error)
	CloseModal(ctx context.Context, sid string) (*view.Landing, error)
	CreateCustomer(ctx context.Context, sid string, d view.Draft) (*view.Landing, *model.Customer, error)
	UpdateCustomer(ctx context.Context, sid string, customerID model.ID, d view.Draft) (*view.Landing, error)
}

type landingService struct {
	api       client.CustomerAPI
	validator validation.Validator
	views     *views
	inflight  *inflight
}

func NewLandingService(api client.CustomerAPI, store session.Store, validator validation.Validator, pageSize int) LandingService {
	return &landingService{
		api:       api,
		validator: validator,
		views:     newViews(store, pageSize),
		inflight:  newInflight(),
	}
}

func (s *landingService) Activate(ctx context.Context, sid string) (*view.Landing, error) {
	return s.refresh(ctx, sid, func(*view.Landing) bool { return true })
}

func (s *landingService) Search(ctx context.Context, sid string, term string) (*view.Landing, error) {
	return s.refresh(ctx, sid, func(l *view.Landing) bool {
		l.Search(term)
		return true
	})
}

func (s *landingService) NextPage(ctx context.Context, sid string) (*view.Landing, error) {
	return s.refresh(ctx, sid, func(l *view.Landing) bool {
		return l.NextPage()
	})
}

func (s *landingService) PrevPage(ctx context.Context, sid string) (*view.Landing, error) {
	return s.refresh(ctx, sid, func(l *view.Landing) bool {
		return l.PrevPage()
	})
}

func (s *landingService) OpenNewCustomer(ctx context.Context, sid string) (*view.Landing, error) {
	return s.views.landing(ctx, sid, func(l *view.Landing) error {
		if err := ensureIdle(&l.Modal); err != nil {
			return err
		}
		return l.Open(view.AddingCustomer{Form: view.NewCustomerForm()})
	})
}

func (s *landingService) OpenEditCustomer(ctx context.Context, sid string, customerID model.ID) (*view.Landing, error) {
	return s.views.landing(ctx, sid, func(l *view.Landing) error {
		if err := ensureIdle(&l.Modal); err != nil {
			return err
		}
		return l.OpenUpdate(customerID)
	})
}

func (s *landingService) CloseModal(ctx context.Context, sid string) (*view.Landing, error) {
	return s.views.landing(ctx, sid, func(l *view.Landing) error {
		l.Modal.Close()
		return nil
	})
}

func (s *landingService) CreateCustomer(ctx context.Context, sid string, d view.Draft) (*view.Landing, *model.Customer, error) {
	var submission *model.Customer
	l, err := s.views.landing(ctx, sid, func(l *view.Landing) error {
		st, ok := l.Modal.State().(view.AddingCustomer)
		if !ok {
			return apperrors.NewEntryNotFoundErr("customer form is not open")
		}

		var err error
		submission, err = s.submitCustomer(st.Form, d)
		return err
	})
	if err != nil || submission == nil {
		return l, nil, err
	}

	created, callErr := s.api.CreateCustomer(ctx, submission)

	settleCtx, cancel := settleContext(ctx)
	defer cancel()

	l, err = s.views.landing(settleCtx, sid, func(l *view.Landing) error {
		st, open := l.Modal.State().(view.AddingCustomer)
		if callErr != nil {
			logrus.WithFields(logrus.Fields{"session": sid}).Errorf("failed to create customer - %v", callErr)
			if open {
				st.Form.Fail(msgAddCustomerFailed)
			}
			return nil
		}

		l.Modal.Close()
		l.Success = msgCustomerAdded
		return nil
	})
	if err != nil || callErr != nil {
		return l, nil, err
	}
	return l, created, nil
}

func (s *landingService) UpdateCustomer(ctx context.Context, sid string, customerID model.ID, d view.Draft) (*view.Landing, error) {
	var submission *model.Customer
	l, err := s.views.landing(ctx, sid, func(l *view.Landing) error {
		st, ok := l.Modal.State().(view.UpdatingCustomer)
		if !ok || st.Form.Customer.ID != customerID {
			return apperrors.NewEntryNotFoundErr(fmt.Sprintf("update form of customer %s is not open", customerID))
		}

		var err error
		submission, err = s.submitCustomer(st.Form, d)
		return err
	})
	if err != nil || submission == nil {
		return l, err
	}

	updated, callErr := s.api.UpdateCustomer(ctx, customerID, submission)

	settleCtx, cancel := settleContext(ctx)
	defer cancel()

	return s.views.landing(settleCtx, sid, func(l *view.Landing) error {
		st, open := l.Modal.State().(view.UpdatingCustomer)
		if callErr != nil {
			logrus.WithFields(logrus.Fields{"session": sid, "customer": customerID}).Errorf("failed to update customer - %v", callErr)
			if open {
				st.Form.Fail(msgUpdateCustomerFailed)
			}
			return nil
		}

		l.PatchCustomer(updated)
		l.Modal.Close()
		l.Success = msgCustomerUpdated
		return nil
	})
}

// submitCustomer applies draft to the form and marks it busy.
// Nil submission without error means that draft was rejected and the reason is put on the form.
func (s *landingService) submitCustomer(f *view.CustomerForm, d view.Draft) (*model.Customer, error) {
	if f.Busy {
		return nil, f.Begin()
	}

	f.Fill(d)
	if err := s.validator.Validate(&f.Customer); err != nil {
		f.Fail(rejection(err))
		return nil, nil
	}

	if err := f.Begin(); err != nil {
		return nil, err
	}
	return f.Submission(), nil
}

// refresh applies mutation and fetches customer page if mutation asks for it
func (s *landingService) refresh(ctx context.Context, sid string, mutate func(*view.Landing) bool) (*view.Landing, error) {
	var (
		ticket   view.Ticket
		fetchCtx context.Context
		done     func()
		term     string
		page     int
		size     int
	)

	l, err := s.views.landing(ctx, sid, func(l *view.Landing) error {
		if !mutate(l) {
			return nil
		}

		ticket = l.BeginFetch()
		term, page, size = l.SearchTerm, l.Page, l.PageSize
		fetchCtx, done = s.inflight.begin(ctx, sid+":"+string(view.ListCustomers))
		return nil
	})
	if err != nil || done == nil {
		return l, err
	}
	defer done()

	p, fetchErr := s.api.SearchCustomers(fetchCtx, term, page, size)

	settleCtx, cancel := settleContext(ctx)
	defer cancel()

	return s.views.landing(settleCtx, sid, func(l *view.Landing) error {
		if fetchErr == nil {
			l.ApplyFetch(ticket, p)
			return nil
		}

		if errors.Is(fetchErr, context.Canceled) && ctx.Err() == nil {
			return nil // superseded by later fetch
		}

		logrus.WithFields(logrus.Fields{"session": sid, "searchTerm": term, "page": page}).Errorf("failed to fetch customers - %v", fetchErr)
		l.FailFetch(ticket, msgFetchCustomersFailed)
		return nil
	})
}
