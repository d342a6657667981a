package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	apperrors "github.com/umalmyha/crm-console/internal/errors"
	"github.com/umalmyha/crm-console/internal/middleware"
	"github.com/umalmyha/crm-console/internal/model"
	"github.com/umalmyha/crm-console/internal/service"
	"github.com/umalmyha/crm-console/internal/view"
)

type landingPage struct {
	*view.Landing
	Notice string
}

type dashboardPage struct {
	*view.Dashboard
	Notice string
}

type marketKey struct {
	Market      string `form:"market"`
	SubCategory string `form:"subCategory"`
}

type subjectKey struct {
	SubjectName string `form:"subjectName"`
	SubCategory string `form:"subCategory"`
}

// LandingHTTPHandler is http handler of customer list screen
type LandingHTTPHandler struct {
	landingSvc service.LandingService
}

// NewLandingHTTPHandler builds new LandingHTTPHandler
func NewLandingHTTPHandler(landingSvc service.LandingService) *LandingHTTPHandler {
	return &LandingHTTPHandler{landingSvc: landingSvc}
}

// Index shows customer list, searchTerm query parameter starts a new search
func (h *LandingHTTPHandler) Index(c echo.Context) error {
	ctx, sid := c.Request().Context(), middleware.SessionID(c)

	if c.QueryParams().Has("searchTerm") {
		l, err := h.landingSvc.Search(ctx, sid, c.QueryParam("searchTerm"))
		return h.render(c, l, err)
	}

	l, err := h.landingSvc.Activate(ctx, sid)
	return h.render(c, l, err)
}

func (h *LandingHTTPHandler) Search(c echo.Context) error {
	l, err := h.landingSvc.Search(c.Request().Context(), middleware.SessionID(c), c.FormValue("searchTerm"))
	return h.render(c, l, err)
}

func (h *LandingHTTPHandler) NextPage(c echo.Context) error {
	l, err := h.landingSvc.NextPage(c.Request().Context(), middleware.SessionID(c))
	return h.render(c, l, err)
}

func (h *LandingHTTPHandler) PrevPage(c echo.Context) error {
	l, err := h.landingSvc.PrevPage(c.Request().Context(), middleware.SessionID(c))
	return h.render(c, l, err)
}

func (h *LandingHTTPHandler) OpenNew(c echo.Context) error {
	l, err := h.landingSvc.OpenNewCustomer(c.Request().Context(), middleware.SessionID(c))
	return h.render(c, l, err)
}

func (h *LandingHTTPHandler) OpenEdit(c echo.Context) error {
	l, err := h.landingSvc.OpenEditCustomer(c.Request().Context(), middleware.SessionID(c), model.ID(c.Param("customerId")))
	return h.render(c, l, err)
}

func (h *LandingHTTPHandler) CloseModal(c echo.Context) error {
	l, err := h.landingSvc.CloseModal(c.Request().Context(), middleware.SessionID(c))
	return h.render(c, l, err)
}

// Create creates customer and navigates to its dashboard
func (h *LandingHTTPHandler) Create(c echo.Context) error {
	var d view.Draft
	if err := c.Bind(&d); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	l, created, err := h.landingSvc.CreateCustomer(c.Request().Context(), middleware.SessionID(c), d)
	if err != nil || created == nil {
		return h.render(c, l, err)
	}
	return c.Redirect(http.StatusSeeOther, dashboardURL(created.ID, created.CustomerName))
}

func (h *LandingHTTPHandler) Update(c echo.Context) error {
	var d view.Draft
	if err := c.Bind(&d); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	l, err := h.landingSvc.UpdateCustomer(c.Request().Context(), middleware.SessionID(c), model.ID(c.Param("customerId")), d)
	return h.render(c, l, err)
}

func (h *LandingHTTPHandler) render(c echo.Context, l *view.Landing, err error) error {
	if err == nil {
		return c.Render(http.StatusOK, landingTemplate, &landingPage{Landing: l})
	}

	var busErr *apperrors.BusinessErr
	if errors.As(err, &busErr) && l != nil {
		return c.Render(http.StatusConflict, landingTemplate, &landingPage{Landing: l, Notice: busErr.Error()})
	}

	var notFoundErr *apperrors.EntryNotFoundErr
	if errors.As(err, &notFoundErr) {
		return c.Redirect(http.StatusSeeOther, "/")
	}
	return err
}

// DashboardHTTPHandler is http handler of single customer screen
type DashboardHTTPHandler struct {
	dashboardSvc service.DashboardService
}

// NewDashboardHTTPHandler builds new DashboardHTTPHandler
func NewDashboardHTTPHandler(dashboardSvc service.DashboardService) *DashboardHTTPHandler {
	return &DashboardHTTPHandler{dashboardSvc: dashboardSvc}
}

// Show activates dashboard of customer and fetches its contacts, markets and subjects
func (h *DashboardHTTPHandler) Show(c echo.Context) error {
	customerID := customerParam(c)
	d, err := h.dashboardSvc.Activate(c.Request().Context(), middleware.SessionID(c), customerID, c.QueryParam("customerName"))
	return h.render(c, customerID, d, err)
}

func (h *DashboardHTTPHandler) OpenNewContact(c echo.Context) error {
	customerID := customerParam(c)
	d, err := h.dashboardSvc.OpenNewContact(c.Request().Context(), middleware.SessionID(c), customerID)
	return h.render(c, customerID, d, err)
}

func (h *DashboardHTTPHandler) OpenEditContact(c echo.Context) error {
	customerID := customerParam(c)
	d, err := h.dashboardSvc.OpenEditContact(c.Request().Context(), middleware.SessionID(c), customerID, model.ID(c.Param("contactId")))
	return h.render(c, customerID, d, err)
}

func (h *DashboardHTTPHandler) CreateContact(c echo.Context) error {
	var draft view.Draft
	if err := c.Bind(&draft); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	customerID := customerParam(c)
	d, err := h.dashboardSvc.CreateContact(c.Request().Context(), middleware.SessionID(c), customerID, draft)
	return h.render(c, customerID, d, err)
}

func (h *DashboardHTTPHandler) UpdateContact(c echo.Context) error {
	var draft view.Draft
	if err := c.Bind(&draft); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	customerID := customerParam(c)
	d, err := h.dashboardSvc.UpdateContact(c.Request().Context(), middleware.SessionID(c), customerID, model.ID(c.Param("contactId")), draft)
	return h.render(c, customerID, d, err)
}

func (h *DashboardHTTPHandler) DeleteContact(c echo.Context) error {
	customerID := customerParam(c)
	d, err := h.dashboardSvc.DeleteContact(c.Request().Context(), middleware.SessionID(c), customerID, model.ID(c.Param("contactId")))
	return h.render(c, customerID, d, err)
}

func (h *DashboardHTTPHandler) OpenNewMarket(c echo.Context) error {
	customerID := customerParam(c)
	d, err := h.dashboardSvc.OpenNewMarket(c.Request().Context(), middleware.SessionID(c), customerID)
	return h.render(c, customerID, d, err)
}

func (h *DashboardHTTPHandler) CreateMarket(c echo.Context) error {
	var draft view.Draft
	if err := c.Bind(&draft); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	customerID := customerParam(c)
	d, err := h.dashboardSvc.CreateMarket(c.Request().Context(), middleware.SessionID(c), customerID, draft)
	return h.render(c, customerID, d, err)
}

func (h *DashboardHTTPHandler) DeleteMarket(c echo.Context) error {
	var key marketKey
	if err := c.Bind(&key); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	customerID := customerParam(c)
	d, err := h.dashboardSvc.DeleteMarket(c.Request().Context(), middleware.SessionID(c), customerID, key.Market, key.SubCategory)
	return h.render(c, customerID, d, err)
}

func (h *DashboardHTTPHandler) OpenNewSubject(c echo.Context) error {
	customerID := customerParam(c)
	d, err := h.dashboardSvc.OpenNewSubject(c.Request().Context(), middleware.SessionID(c), customerID)
	return h.render(c, customerID, d, err)
}

func (h *DashboardHTTPHandler) CreateSubject(c echo.Context) error {
	var draft view.Draft
	if err := c.Bind(&draft); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	customerID := customerParam(c)
	d, err := h.dashboardSvc.CreateSubject(c.Request().Context(), middleware.SessionID(c), customerID, draft)
	return h.render(c, customerID, d, err)
}

func (h *DashboardHTTPHandler) DeleteSubject(c echo.Context) error {
	var key subjectKey
	if err := c.Bind(&key); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	customerID := customerParam(c)
	d, err := h.dashboardSvc.DeleteSubject(c.Request().Context(), middleware.SessionID(c), customerID, key.SubjectName, key.SubCategory)
	return h.render(c, customerID, d, err)
}

// SelectModal applies select changes of open form without submitting it
func (h *DashboardHTTPHandler) SelectModal(c echo.Context) error {
	var draft view.Draft
	if err := c.Bind(&draft); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	customerID := customerParam(c)
	d, err := h.dashboardSvc.EditModal(c.Request().Context(), middleware.SessionID(c), customerID, draft)
	return h.render(c, customerID, d, err)
}

func (h *DashboardHTTPHandler) RefreshModal(c echo.Context) error {
	customerID := customerParam(c)
	d, err := h.dashboardSvc.RefreshModal(c.Request().Context(), middleware.SessionID(c), customerID)
	return h.render(c, customerID, d, err)
}

func (h *DashboardHTTPHandler) CloseModal(c echo.Context) error {
	customerID := customerParam(c)
	d, err := h.dashboardSvc.CloseModal(c.Request().Context(), middleware.SessionID(c), customerID)
	return h.render(c, customerID, d, err)
}

func (h *DashboardHTTPHandler) render(c echo.Context, customerID model.ID, d *view.Dashboard, err error) error {
	if err == nil {
		return c.Render(http.StatusOK, dashboardTemplate, &dashboardPage{Dashboard: d})
	}

	var busErr *apperrors.BusinessErr
	if errors.As(err, &busErr) && d != nil {
		return c.Render(http.StatusConflict, dashboardTemplate, &dashboardPage{Dashboard: d, Notice: busErr.Error()})
	}

	var notFoundErr *apperrors.EntryNotFoundErr
	if errors.As(err, &notFoundErr) {
		return c.Redirect(http.StatusSeeOther, dashboardURL(customerID, ""))
	}
	return err
}

func customerParam(c echo.Context) model.ID {
	return model.ID(c.Param("customerId"))
}
