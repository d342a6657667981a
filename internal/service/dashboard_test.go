package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/umalmyha/crm-console/internal/client/mocks"
	apperrors "github.com/umalmyha/crm-console/internal/errors"
	"github.com/umalmyha/crm-console/internal/model"
	"github.com/umalmyha/crm-console/internal/session"
	"github.com/umalmyha/crm-console/internal/validation"
	"github.com/umalmyha/crm-console/internal/view"
)

const testCustomerID = model.ID("7")

var testMarketTaxonomy = model.Taxonomy{
	"Pharma": {"Generics", "Biologics"},
	"Retail": {},
}

func testContact(id model.ID, firstName string) *model.Contact {
	return &model.Contact{
		ID:              id,
		CustomerID:      testCustomerID,
		CustomerName:    "Acme",
		Salutation:      "Ms",
		FirstName:       firstName,
		LastName:        "Doe",
		Role:            "Manager",
		EmailAddressOne: "jane.doe@acme.com",
		OfficialEmail:   "jane@acme.com",
		MobileOne:       "+1 555 0100",
	}
}

func contactDraft(c *model.Contact) view.Draft {
	return view.Draft{Contact: *c}
}

type dashboardServiceTestSuite struct {
	suite.Suite
	dashboardSvc DashboardService
	apiMock      *mocks.CustomerAPI
}

func (s *dashboardServiceTestSuite) SetupTest() {
	validator, err := validation.English()
	s.Require().NoError(err, "failed to build validator")

	s.apiMock = mocks.NewCustomerAPI(s.T())
	s.dashboardSvc = NewDashboardService(s.apiMock, session.NewMemoryStore(time.Hour), validator)
}

func (s *dashboardServiceTestSuite) activate(contacts []*model.Contact, markets []*model.Market) *view.Dashboard {
	s.apiMock.On("Contacts", mock.Anything, testCustomerID).Return(contacts, nil).Once()
	s.apiMock.On("Markets", mock.Anything, testCustomerID).Return(markets, nil).Once()
	s.apiMock.On("Subjects", mock.Anything, testCustomerID).Return([]*model.Subject{}, nil).Once()

	d, err := s.dashboardSvc.Activate(testCtx, testSessionID, testCustomerID, "Acme")
	s.Require().NoError(err, "activation must not fail")
	return d
}

func (s *dashboardServiceTestSuite) TestActivateDegradesFailedListOnly() {
	s.apiMock.On("Contacts", mock.Anything, testCustomerID).Return([]*model.Contact{testContact("31", "Jane")}, nil).Once()
	s.apiMock.On("Markets", mock.Anything, testCustomerID).Return(nil, apperrors.NewRemoteErr("list markets", 502, "")).Once()
	s.apiMock.On("Subjects", mock.Anything, testCustomerID).Return(nil, nil).Once()

	s.T().Log("failure of one list doesn't affect others")
	{
		d, err := s.dashboardSvc.Activate(testCtx, testSessionID, testCustomerID, "Acme")
		s.Require().NoError(err, "fetch failures must be shown on the page")
		s.Assert().Equal("Acme", d.CustomerName, "customer name must be displayed")
		s.Assert().Len(d.Contacts, 1, "contacts must be loaded")
		s.Assert().Empty(d.Markets, "markets must degrade to empty")
		s.Assert().NotNil(d.Subjects, "missing subjects must be an empty list")
		s.Assert().Equal(msgFetchMarketsFailed, d.Error, "market failure must be shown")
	}
}

func (s *dashboardServiceTestSuite) TestOpenContactFormWithoutRoles() {
	s.activate(nil, nil)

	s.apiMock.On("Roles", mock.Anything).Return(nil, errors.New("connection refused")).Once()

	s.T().Log("contact form is opened even if roles failed to load")
	{
		d, err := s.dashboardSvc.OpenNewContact(testCtx, testSessionID, testCustomerID)
		s.Require().NoError(err, "form must be opened")

		f := d.Modal.ContactForm()
		s.Require().NotNil(f, "contact form must be open")
		s.Assert().Equal(msgFetchRolesFailed, f.Error, "roles failure must be shown on the form")
		s.Assert().Equal([]string{model.RoleOthers}, f.Roles.Options(), "only free text role must be offered")
		s.Assert().Equal(testCustomerID, f.Contact.CustomerID, "form must be scoped to customer")
		s.Assert().Equal("Acme", f.Contact.CustomerName, "form must carry customer name")
	}
}

func (s *dashboardServiceTestSuite) TestCreateContactWithFreeTextRole() {
	s.activate(nil, nil)

	created := testContact("32", "John")
	s.apiMock.On("Roles", mock.Anything).Return([]string{"Manager", "Director"}, nil).Once()
	s.apiMock.On("CreateContact", mock.Anything, mock.MatchedBy(func(c *model.Contact) bool {
		return c.Role == "Procurement lead" && c.CustomerID == testCustomerID && c.CustomerName == "Acme"
	})).Return(created, nil).Once()
	s.apiMock.On("Contacts", mock.Anything, testCustomerID).Return([]*model.Contact{created}, nil).Once()

	s.T().Log("free text role is submitted when sentinel is selected, contacts are refetched")
	{
		_, err := s.dashboardSvc.OpenNewContact(testCtx, testSessionID, testCustomerID)
		s.Require().NoError(err, "form must be opened")

		draft := contactDraft(testContact("", "John"))
		draft.Contact.Role = model.RoleOthers
		draft.Contact.RoleInput = "Procurement lead"

		d, err := s.dashboardSvc.CreateContact(testCtx, testSessionID, testCustomerID, draft)
		s.Require().NoError(err, "contact must be created")
		s.Assert().False(d.Modal.IsOpen(), "form must be closed")
		s.Assert().Equal(msgContactSaved, d.Success, "success message must be shown")
		s.Assert().Len(d.Contacts, 1, "contacts must be refetched")
		s.apiMock.AssertNumberOfCalls(s.T(), "Markets", 1)
		s.apiMock.AssertNumberOfCalls(s.T(), "Subjects", 1)
	}
}

func (s *dashboardServiceTestSuite) TestCreateContactWithoutFreeTextRole() {
	s.activate(nil, nil)

	s.apiMock.On("Roles", mock.Anything).Return([]string{"Manager"}, nil).Once()

	s.T().Log("sentinel role without free text is rejected")
	{
		_, err := s.dashboardSvc.OpenNewContact(testCtx, testSessionID, testCustomerID)
		s.Require().NoError(err, "form must be opened")

		draft := contactDraft(testContact("", "John"))
		draft.Contact.Role = model.RoleOthers
		draft.Contact.RoleInput = "   "

		d, err := s.dashboardSvc.CreateContact(testCtx, testSessionID, testCustomerID, draft)
		s.Require().NoError(err, "rejection must be shown on the form")
		s.Assert().Equal("Type your role", d.Modal.ContactForm().Error, "free text role must be required")
		s.apiMock.AssertNotCalled(s.T(), "CreateContact", mock.Anything, mock.Anything)
	}
}

func (s *dashboardServiceTestSuite) TestUpdateContactPatchesRowInPlace() {
	s.activate([]*model.Contact{testContact("31", "Jane"), testContact("33", "Mark")}, nil)

	updated := testContact("31", "Janet")
	s.apiMock.On("Roles", mock.Anything).Return([]string{"Manager"}, nil).Once()
	s.apiMock.On("UpdateContact", mock.Anything, model.ID("31"), mock.MatchedBy(func(c *model.Contact) bool {
		return c.FirstName == "Janet" && c.Role == "Manager" && c.ID == "31"
	})).Return(updated, nil).Once()

	s.T().Log("updated contact is patched in place without refetch")
	{
		d, err := s.dashboardSvc.OpenEditContact(testCtx, testSessionID, testCustomerID, "31")
		s.Require().NoError(err, "update form must be opened")
		s.Assert().Equal("Manager", d.Modal.ContactForm().Roles.Selected, "stored role must be preselected")

		d, err = s.dashboardSvc.UpdateContact(testCtx, testSessionID, testCustomerID, "31", contactDraft(updated))
		s.Require().NoError(err, "contact must be updated")
		s.Assert().Equal("Janet", d.Contacts[0].FirstName, "row must be patched in place")
		s.Assert().Equal("Mark", d.Contacts[1].FirstName, "other rows must stay untouched")
		s.Assert().Equal(msgContactUpdated, d.Success, "success message must be shown")
		s.Assert().False(d.Modal.IsOpen(), "form must be closed")
		s.apiMock.AssertNumberOfCalls(s.T(), "Contacts", 1)
	}
}

func (s *dashboardServiceTestSuite) TestUpdateContactKeepsFreeTextRole() {
	consultant := testContact("31", "Jane")
	consultant.Role, consultant.RoleInput = "Consultant", "Consultant"
	s.activate([]*model.Contact{consultant}, nil)

	s.apiMock.On("Roles", mock.Anything).Return([]string{"Manager"}, nil).Once()
	s.apiMock.On("UpdateContact", mock.Anything, model.ID("31"), mock.MatchedBy(func(c *model.Contact) bool {
		return c.Role == "Consultant" && c.RoleInput == "Consultant"
	})).Return(consultant, nil).Once()

	s.T().Log("contact with free text role is resubmitted unchanged")
	{
		d, err := s.dashboardSvc.OpenEditContact(testCtx, testSessionID, testCustomerID, "31")
		s.Require().NoError(err, "update form must be opened")

		roles := d.Modal.ContactForm().Roles
		s.Assert().True(roles.OthersActive(), "free text must be offered for unlisted role")
		s.Assert().Equal("Consultant", roles.Input, "stored role must be prefilled as free text")

		draft := contactDraft(consultant)
		draft.Contact.Role, draft.Contact.RoleInput = roles.Selected, roles.Input

		d, err = s.dashboardSvc.UpdateContact(testCtx, testSessionID, testCustomerID, "31", draft)
		s.Require().NoError(err, "contact must be updated")
		s.Assert().Equal(msgContactUpdated, d.Success, "success message must be shown")
		s.Assert().False(d.Modal.IsOpen(), "form must be closed")
	}
}

func (s *dashboardServiceTestSuite) TestDeleteContactFailureShowsServerMessage() {
	s.activate([]*model.Contact{testContact("31", "Jane")}, nil)

	s.apiMock.On("DeleteContact", mock.Anything, model.ID("31")).
		Return(apperrors.NewRemoteErr("delete contact", 409, "Contact is referenced by orders")).Once()

	s.T().Log("failed deletion leaves list unchanged")
	{
		d, err := s.dashboardSvc.DeleteContact(testCtx, testSessionID, testCustomerID, "31")
		s.Require().NoError(err, "failure must be shown on the page")
		s.Assert().Equal("Contact is referenced by orders", d.Error, "server message must be shown")
		s.Assert().Len(d.Contacts, 1, "contact must be kept")
	}
}

func (s *dashboardServiceTestSuite) TestDeleteMarketRemovesEveryMatch() {
	markets := []*model.Market{
		{CustomerID: testCustomerID, CustomerMarket: "Pharma", CustomerMarketSubCategory: "Generics"},
		{CustomerID: testCustomerID, CustomerMarket: "Pharma", CustomerMarketSubCategory: "Generics"},
		{CustomerID: testCustomerID, CustomerMarket: "Pharma", CustomerMarketSubCategory: "Biologics"},
	}
	s.activate(nil, markets)

	s.apiMock.On("DeleteMarket", mock.Anything, testCustomerID, "Pharma", "Generics").Return(nil).Once()

	s.T().Log("market is removed by natural key")
	{
		d, err := s.dashboardSvc.DeleteMarket(testCtx, testSessionID, testCustomerID, "Pharma", "Generics")
		s.Require().NoError(err, "market must be deleted")
		s.Require().Len(d.Markets, 1, "every matching market must be removed")
		s.Assert().Equal("Biologics", d.Markets[0].CustomerMarketSubCategory, "other markets must be kept")
	}
}

func (s *dashboardServiceTestSuite) TestCreateMarketRefetchesMarketsOnly() {
	s.activate(nil, nil)

	created := &model.Market{CustomerID: testCustomerID, CustomerMarket: "Pharma", CustomerMarketSubCategory: "Generics"}
	s.apiMock.On("MarketTaxonomy", mock.Anything).Return(testMarketTaxonomy, nil).Once()
	s.apiMock.On("CreateMarket", mock.Anything, created).Return(created, nil).Once()
	s.apiMock.On("Markets", mock.Anything, testCustomerID).Return([]*model.Market{created}, nil).Once()

	s.T().Log("market creation refetches market list only")
	{
		_, err := s.dashboardSvc.OpenNewMarket(testCtx, testSessionID, testCustomerID)
		s.Require().NoError(err, "market form must be opened")

		d, err := s.dashboardSvc.EditModal(testCtx, testSessionID, testCustomerID, view.Draft{Primary: "Pharma"})
		s.Require().NoError(err, "primary value must be selected")
		s.Assert().Equal([]string{"Generics", "Biologics"}, d.Modal.ClassificationForm().Choices(), "subcategories must follow primary value")

		d, err = s.dashboardSvc.CreateMarket(testCtx, testSessionID, testCustomerID, view.Draft{Primary: "Pharma", Sub: "Generics"})
		s.Require().NoError(err, "market must be created")
		s.Assert().Len(d.Markets, 1, "markets must be refetched")
		s.Assert().Equal(msgMarketAdded, d.Success, "success message must be shown")
		s.apiMock.AssertNumberOfCalls(s.T(), "Contacts", 1)
		s.apiMock.AssertNumberOfCalls(s.T(), "Subjects", 1)
	}
}

func (s *dashboardServiceTestSuite) TestCreationRefetchRunsUnderRequestContext() {
	s.activate(nil, nil)

	reqCtx, cancel := context.WithTimeout(testCtx, time.Minute)
	defer cancel()
	reqDeadline, _ := reqCtx.Deadline()

	created := &model.Market{CustomerID: testCustomerID, CustomerMarket: "Retail", CustomerMarketSubCategory: "Grocery"}
	s.apiMock.On("MarketTaxonomy", mock.Anything).Return(testMarketTaxonomy, nil).Once()
	s.apiMock.On("CreateMarket", mock.Anything, created).Return(created, nil).Once()
	s.apiMock.On("Markets", mock.MatchedBy(func(ctx context.Context) bool {
		deadline, ok := ctx.Deadline()
		return ok && deadline.Equal(reqDeadline)
	}), testCustomerID).Return([]*model.Market{created}, nil).Once()

	s.T().Log("market list is refetched with deadline of the request")
	{
		_, err := s.dashboardSvc.OpenNewMarket(reqCtx, testSessionID, testCustomerID)
		s.Require().NoError(err, "market form must be opened")

		d, err := s.dashboardSvc.CreateMarket(reqCtx, testSessionID, testCustomerID, view.Draft{Primary: "Retail", Sub: "Grocery"})
		s.Require().NoError(err, "market must be created")
		s.Assert().Len(d.Markets, 1, "markets must be refetched")
		s.Assert().Empty(d.Error, "refetch must not fail")
	}
}

func (s *dashboardServiceTestSuite) TestCreateMarketRejectsUnknownSubcategory() {
	s.activate(nil, nil)

	s.apiMock.On("MarketTaxonomy", mock.Anything).Return(testMarketTaxonomy, nil).Once()

	s.T().Log("subcategory outside of taxonomy is rejected")
	{
		_, err := s.dashboardSvc.OpenNewMarket(testCtx, testSessionID, testCustomerID)
		s.Require().NoError(err, "market form must be opened")

		_, err = s.dashboardSvc.EditModal(testCtx, testSessionID, testCustomerID, view.Draft{Primary: "Pharma"})
		s.Require().NoError(err, "primary value must be selected")

		d, err := s.dashboardSvc.CreateMarket(testCtx, testSessionID, testCustomerID, view.Draft{Primary: "Pharma", Sub: "Vaccines"})
		s.Require().NoError(err, "rejection must be shown on the form")
		s.Assert().Equal("Select a subcategory from the list", d.Modal.ClassificationForm().Error, "subcategory must be validated")
		s.apiMock.AssertNotCalled(s.T(), "CreateMarket", mock.Anything, mock.Anything)
	}
}

func (s *dashboardServiceTestSuite) TestCreateSubjectFailureKeepsForm() {
	s.activate(nil, nil)

	s.apiMock.On("SubjectTaxonomy", mock.Anything).Return(model.Taxonomy{"Chemistry": {}}, nil).Once()
	s.apiMock.On("CreateSubject", mock.Anything, mock.AnythingOfType("*model.Subject")).
		Return(nil, apperrors.NewRemoteErr("create subject", 500, "")).Once()

	s.T().Log("failed subject creation keeps form populated")
	{
		_, err := s.dashboardSvc.OpenNewSubject(testCtx, testSessionID, testCustomerID)
		s.Require().NoError(err, "subject form must be opened")

		_, err = s.dashboardSvc.EditModal(testCtx, testSessionID, testCustomerID, view.Draft{Primary: "Chemistry"})
		s.Require().NoError(err, "primary value must be selected")

		d, err := s.dashboardSvc.CreateSubject(testCtx, testSessionID, testCustomerID, view.Draft{Primary: "Chemistry", Sub: "Polymers"})
		s.Require().NoError(err, "failure must be shown on the form")

		f := d.Modal.ClassificationForm()
		s.Require().NotNil(f, "form must stay open")
		s.Assert().Equal(msgAddSubjectFailed, f.Error, "failure message must be shown")
		s.Assert().Equal("Polymers", f.Sub, "free text subcategory must be kept")
		s.Assert().False(f.Busy, "form must be settled")
	}
}

func (s *dashboardServiceTestSuite) TestRefreshModalResetsForm() {
	s.activate(nil, nil)

	s.apiMock.On("MarketTaxonomy", mock.Anything).Return(testMarketTaxonomy, nil).Once()

	s.T().Log("refresh resets creation form but keeps taxonomy")
	{
		_, err := s.dashboardSvc.OpenNewMarket(testCtx, testSessionID, testCustomerID)
		s.Require().NoError(err, "market form must be opened")

		_, err = s.dashboardSvc.EditModal(testCtx, testSessionID, testCustomerID, view.Draft{Primary: "Retail"})
		s.Require().NoError(err, "primary value must be selected")

		d, err := s.dashboardSvc.RefreshModal(testCtx, testSessionID, testCustomerID)
		s.Require().NoError(err, "form must be refreshed")

		f := d.Modal.ClassificationForm()
		s.Require().NotNil(f, "form must stay open")
		s.Assert().Empty(f.Primary, "selection must be cleared")
		s.Assert().Equal([]string{"Pharma", "Retail"}, f.Names(), "taxonomy must be kept")
	}
}

func (s *dashboardServiceTestSuite) TestOperationOnInactiveDashboard() {
	s.activate(nil, nil)

	s.T().Log("dashboard of another customer can't be modified")
	{
		_, err := s.dashboardSvc.OpenNewContact(testCtx, testSessionID, "8")

		var notFoundErr *apperrors.EntryNotFoundErr
		s.Assert().True(errors.As(err, &notFoundErr), "entry not found error must be raised")
		s.apiMock.AssertNotCalled(s.T(), "Roles", mock.Anything)
	}
}

// start dashboard service test suite
func TestDashboardServiceTestSuite(t *testing.T) {
	suite.Run(t, new(dashboardServiceTestSuite))
}
