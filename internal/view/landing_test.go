package view

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	apperrors "github.com/umalmyha/crm-console/internal/errors"
	"github.com/umalmyha/crm-console/internal/model"
)

func TestLandingPaging(t *testing.T) {
	l := NewLanding(0)

	t.Log("default page size is applied")
	{
		require.Equal(t, DefaultPageSize, l.PageSize, "default page size must be used")
	}

	t.Log("paging is disabled until total pages are known")
	{
		require.False(t, l.HasPrev(), "previous must be disabled on the first page")
		require.False(t, l.HasNext(), "next must be disabled without total pages")
		require.False(t, l.NextPage(), "next must not move page")
	}

	t.Log("paging moves within bounds only")
	{
		tk := l.BeginFetch()
		require.True(t, l.ApplyFetch(tk, &model.CustomerPage{TotalPages: 2}), "current ticket must be applied")

		require.True(t, l.NextPage(), "next must move to the second page")
		require.Equal(t, 2, l.PageNumber(), "second page must be displayed")
		require.False(t, l.HasNext(), "next must be disabled on the last page")
		require.False(t, l.NextPage(), "no wraparound past the last page")

		require.True(t, l.PrevPage(), "previous must move back")
		require.False(t, l.PrevPage(), "no wraparound before the first page")
	}

	t.Log("search resets page")
	{
		l.Page = 1
		l.Search("acme")
		require.Equal(t, 0, l.Page, "page must be reset")
		require.Equal(t, "acme", l.SearchTerm, "term must be stored")
	}
}

func TestLandingTickets(t *testing.T) {
	l := NewLanding(10)

	t.Log("superseded ticket is discarded")
	{
		first := l.BeginFetch()
		second := l.BeginFetch()

		require.False(t, l.ApplyFetch(first, &model.CustomerPage{Customers: []*model.Customer{{ID: "1"}}}), "stale ticket must be ignored")
		require.False(t, l.FailFetch(first, "Failed to fetch customers"), "stale failure must be ignored")
		require.True(t, l.Loading, "latest fetch is still loading")

		require.True(t, l.ApplyFetch(second, &model.CustomerPage{}), "latest ticket must be applied")
		require.NotNil(t, l.Customers, "missing page items must be an empty list")
		require.False(t, l.Loading, "loading must be finished")
	}

	t.Log("ticket issued for other parameters is discarded")
	{
		tk := l.BeginFetch()
		l.Search("other")
		require.False(t, l.ApplyFetch(tk, &model.CustomerPage{}), "ticket of previous search term must be ignored")
	}

	t.Log("failure empties list and clears success")
	{
		l.Success = "Customer updated successfully"
		l.Customers = []*model.Customer{{ID: "1"}}

		tk := l.BeginFetch()
		require.Empty(t, l.Success, "new fetch must clear success message")
		require.True(t, l.FailFetch(tk, "Failed to fetch customers"), "current failure must be applied")
		require.Empty(t, l.Customers, "list must degrade to empty")
		require.Equal(t, "Failed to fetch customers", l.Error, "error must be shown")
	}
}

func TestLandingModal(t *testing.T) {
	l := NewLanding(10)
	l.Customers = []*model.Customer{{ID: "1", CustomerName: "Acme"}, {ID: "2", CustomerName: "Globex"}}

	t.Log("dashboard surfaces can't be opened on landing")
	{
		err := l.Open(AddingContact{Form: NewContactForm("1", "Acme")})

		var busErr *apperrors.BusinessErr
		require.True(t, errors.As(err, &busErr), "business error must be raised")
		require.False(t, l.Modal.IsOpen(), "modal must stay closed")
	}

	t.Log("update form is prefilled with displayed customer")
	{
		require.NoError(t, l.OpenUpdate("2"), "displayed customer must be editable")
		f := l.Modal.CustomerForm()
		require.NotNil(t, f, "customer form must be open")
		require.Equal(t, "Globex", f.Customer.CustomerName, "form must be prefilled")

		f.Customer.CustomerName = "Changed"
		require.Equal(t, "Globex", l.Customers[1].CustomerName, "form must not edit displayed row")
	}

	t.Log("patch replaces row with the same id")
	{
		require.True(t, l.PatchCustomer(&model.Customer{ID: "2", CustomerName: "Globex Inc"}), "row must be found")
		require.Equal(t, "Globex Inc", l.Customers[1].CustomerName, "row must be replaced")
		require.False(t, l.PatchCustomer(&model.Customer{ID: "3"}), "unknown row must not be added")
		require.Len(t, l.Customers, 2, "list length must be kept")
	}
}
