package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	apperrors "github.com/umalmyha/crm-console/internal/errors"
	"github.com/umalmyha/crm-console/internal/model"
)

const maxErrorBodyBytes = 64 * 1024

// CustomerAPI is the contract of remote CRM API
type CustomerAPI interface {
	SearchCustomers(ctx context.Context, searchTerm string, page, size int) (*model.CustomerPage, error)
	CreateCustomer(ctx context.Context, c *model.Customer) (*model.Customer, error)
	UpdateCustomer(ctx context.Context, customerID model.ID, c *model.Customer) (*model.Customer, error)

	Contacts(ctx context.Context, customerID model.ID) ([]*model.Contact, error)
	CreateContact(ctx context.Context, c *model.Contact) (*model.Contact, error)
	UpdateContact(ctx context.Context, contactID model.ID, c *model.Contact) (*model.Contact, error)
	DeleteContact(ctx context.Context, contactID model.ID) error

	Markets(ctx context.Context, customerID model.ID) ([]*model.Market, error)
	MarketTaxonomy(ctx context.Context) (model.Taxonomy, error)
	CreateMarket(ctx context.Context, m *model.Market) (*model.Market, error)
	DeleteMarket(ctx context.Context, customerID model.ID, market, subCategory string) error

	Subjects(ctx context.Context, customerID model.ID) ([]*model.Subject, error)
	SubjectTaxonomy(ctx context.Context) (model.Taxonomy, error)
	CreateSubject(ctx context.Context, s *model.Subject) (*model.Subject, error)
	DeleteSubject(ctx context.Context, customerID model.ID, subjectName, subCategory string) error

	Roles(ctx context.Context) ([]string, error)
}

// envelope wraps every payload returned by CRM API
type envelope struct {
	Object  json.RawMessage `json:"object"`
	Message string          `json:"message"`
}

type httpCustomerAPI struct {
	baseURL string
	client  *http.Client
}

// NewHTTPCustomerAPI builds CustomerAPI talking to CRM API located at baseURL
func NewHTTPCustomerAPI(baseURL string, timeout time.Duration) CustomerAPI {
	return NewHTTPCustomerAPIWithClient(baseURL, &http.Client{Timeout: timeout})
}

// NewHTTPCustomerAPIWithClient builds CustomerAPI on top of provided http client
func NewHTTPCustomerAPIWithClient(baseURL string, client *http.Client) CustomerAPI {
	return &httpCustomerAPI{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
	}
}

func (a *httpCustomerAPI) SearchCustomers(ctx context.Context, searchTerm string, page, size int) (*model.CustomerPage, error) {
	q := url.Values{}
	q.Set("searchTerm", searchTerm)
	q.Set("page", strconv.Itoa(page))
	q.Set("size", strconv.Itoa(size))

	var p model.CustomerPage
	if err := a.do(ctx, "search customers", http.MethodGet, "/search", q, nil, &p, anySuccess); err != nil {
		return nil, err
	}

	if p.Customers == nil {
		p.Customers = make([]*model.Customer, 0)
	}
	return &p, nil
}

func (a *httpCustomerAPI) CreateCustomer(ctx context.Context, c *model.Customer) (*model.Customer, error) {
	var created model.Customer
	if err := a.do(ctx, "create customer", http.MethodPost, "", nil, c, &created, anySuccess); err != nil {
		return nil, err
	}

	if created.ID.IsZero() {
		return nil, apperrors.NewRemoteErr("create customer", http.StatusOK, "customer identifier is missing in response")
	}

	if created.CustomerName == "" {
		created.CustomerName = c.CustomerName
	}
	return &created, nil
}

func (a *httpCustomerAPI) UpdateCustomer(ctx context.Context, customerID model.ID, c *model.Customer) (*model.Customer, error) {
	path := "/update/" + segment(customerID.String())

	var updated model.Customer
	decoded, err := a.update(ctx, "update customer", path, c, &updated)
	if err != nil {
		return nil, err
	}

	if !decoded || updated == (model.Customer{}) {
		updated = *c
	}
	updated.ID = customerID
	return &updated, nil
}

func (a *httpCustomerAPI) Contacts(ctx context.Context, customerID model.ID) ([]*model.Contact, error) {
	contacts := make([]*model.Contact, 0)
	if err := a.do(ctx, "list contacts", http.MethodGet, "/contacts/"+segment(customerID.String()), nil, nil, &contacts, anySuccess); err != nil {
		return nil, err
	}
	return nonNil(contacts), nil
}

func (a *httpCustomerAPI) CreateContact(ctx context.Context, c *model.Contact) (*model.Contact, error) {
	var created model.Contact
	if err := a.do(ctx, "create contact", http.MethodPost, "/contact", nil, c, &created, anySuccess); err != nil {
		return nil, err
	}

	if created == (model.Contact{}) {
		created = *c
	}
	return &created, nil
}

func (a *httpCustomerAPI) UpdateContact(ctx context.Context, contactID model.ID, c *model.Contact) (*model.Contact, error) {
	path := "/contact/update/" + segment(contactID.String())

	var updated model.Contact
	decoded, err := a.update(ctx, "update contact", path, c, &updated)
	if err != nil {
		return nil, err
	}

	if !decoded || updated == (model.Contact{}) {
		updated = *c
	}
	updated.ID = contactID
	return &updated, nil
}

func (a *httpCustomerAPI) DeleteContact(ctx context.Context, contactID model.ID) error {
	return a.do(ctx, "delete contact", http.MethodDelete, "/contact/"+segment(contactID.String()), nil, nil, nil, onlyOK)
}

func (a *httpCustomerAPI) Markets(ctx context.Context, customerID model.ID) ([]*model.Market, error) {
	markets := make([]*model.Market, 0)
	if err := a.do(ctx, "list markets", http.MethodGet, "/markets/"+segment(customerID.String()), nil, nil, &markets, anySuccess); err != nil {
		return nil, err
	}
	return nonNil(markets), nil
}

func (a *httpCustomerAPI) MarketTaxonomy(ctx context.Context) (model.Taxonomy, error) {
	return a.taxonomy(ctx, "list market taxonomy", "/markets")
}

func (a *httpCustomerAPI) CreateMarket(ctx context.Context, m *model.Market) (*model.Market, error) {
	var created model.Market
	if err := a.do(ctx, "create market", http.MethodPost, "/market", nil, m, &created, anySuccess); err != nil {
		return nil, err
	}

	if created == (model.Market{}) {
		created = *m
	}
	return &created, nil
}

func (a *httpCustomerAPI) DeleteMarket(ctx context.Context, customerID model.ID, market, subCategory string) error {
	path := fmt.Sprintf("/market/%s/%s/%s", segment(customerID.String()), segment(market), segment(subCategory))
	return a.do(ctx, "delete market", http.MethodDelete, path, nil, nil, nil, onlyOK)
}

func (a *httpCustomerAPI) Subjects(ctx context.Context, customerID model.ID) ([]*model.Subject, error) {
	subjects := make([]*model.Subject, 0)
	if err := a.do(ctx, "list subjects", http.MethodGet, "/subjects/"+segment(customerID.String()), nil, nil, &subjects, anySuccess); err != nil {
		return nil, err
	}
	return nonNil(subjects), nil
}

func (a *httpCustomerAPI) SubjectTaxonomy(ctx context.Context) (model.Taxonomy, error) {
	return a.taxonomy(ctx, "list subject taxonomy", "/subjects")
}

func (a *httpCustomerAPI) CreateSubject(ctx context.Context, s *model.Subject) (*model.Subject, error) {
	var created model.Subject
	if err := a.do(ctx, "create subject", http.MethodPost, "/subject", nil, s, &created, anySuccess); err != nil {
		return nil, err
	}

	if created == (model.Subject{}) {
		created = *s
	}
	return &created, nil
}

func (a *httpCustomerAPI) DeleteSubject(ctx context.Context, customerID model.ID, subjectName, subCategory string) error {
	path := fmt.Sprintf("/subject/%s/%s/%s", segment(customerID.String()), segment(subjectName), segment(subCategory))
	return a.do(ctx, "delete subject", http.MethodDelete, path, nil, nil, nil, onlyOK)
}

func (a *httpCustomerAPI) Roles(ctx context.Context) ([]string, error) {
	roles := make([]string, 0)
	if err := a.do(ctx, "list roles", http.MethodGet, "/roles", nil, nil, &roles, anySuccess); err != nil {
		return nil, err
	}
	return nonNil(roles), nil
}

func (a *httpCustomerAPI) taxonomy(ctx context.Context, op string, path string) (model.Taxonomy, error) {
	t := make(model.Taxonomy)
	if err := a.do(ctx, op, http.MethodGet, path, nil, nil, &t, anySuccess); err != nil {
		return nil, err
	}

	if t == nil {
		t = make(model.Taxonomy)
	}
	return t, nil
}

func (a *httpCustomerAPI) do(ctx context.Context, op, method, path string, query url.Values, in, out any, accept func(int) bool) error {
	res, err := a.send(ctx, op, method, path, query, in, accept)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if out == nil {
		_, _ = io.Copy(io.Discard, res.Body)
		return nil
	}

	if _, err := decode(res.Body, out); err != nil {
		return apperrors.WrapRemoteErr(op, err)
	}
	return nil
}

// update accepts any 200 response. Returned record is optional, false is reported
// when body doesn't carry one.
func (a *httpCustomerAPI) update(ctx context.Context, op, path string, in, out any) (bool, error) {
	res, err := a.send(ctx, op, http.MethodPut, path, nil, in, onlyOK)
	if err != nil {
		return false, err
	}
	defer res.Body.Close()

	decoded, err := decode(res.Body, out)
	if err != nil {
		logrus.WithFields(logrus.Fields{"op": op}).Debugf("response carries no record, submitted one is kept - %v", err)
		return false, nil
	}
	return decoded, nil
}

func (a *httpCustomerAPI) send(ctx context.Context, op, method, path string, query url.Values, in any, accept func(int) bool) (*http.Response, error) {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return nil, fmt.Errorf("failed to encode %s payload - %w", op, err)
		}
		body = bytes.NewReader(payload)
	}

	u := a.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, apperrors.WrapRemoteErr(op, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := a.client.Do(req)
	if err != nil {
		return nil, apperrors.WrapRemoteErr(op, err)
	}

	if !accept(res.StatusCode) {
		defer res.Body.Close()
		return nil, apperrors.NewRemoteErr(op, res.StatusCode, errorMessage(res.Body))
	}
	return res, nil
}

// decode unwraps envelope into out, false is returned when envelope carries no object
func decode(r io.Reader, out any) (bool, error) {
	var env envelope
	if err := json.NewDecoder(r).Decode(&env); err != nil {
		if err == io.EOF {
			return false, nil
		}
		return false, fmt.Errorf("failed to decode response - %w", err)
	}

	if len(env.Object) == 0 || bytes.Equal(env.Object, []byte("null")) {
		return false, nil
	}

	if err := json.Unmarshal(env.Object, out); err != nil {
		return false, fmt.Errorf("failed to decode response object - %w", err)
	}
	return true, nil
}

func errorMessage(r io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(r, maxErrorBodyBytes))
	if err != nil || len(raw) == 0 {
		return ""
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err == nil {
		return env.Message
	}
	return ""
}

func anySuccess(status int) bool {
	return status >= http.StatusOK && status < http.StatusMultipleChoices
}

func onlyOK(status int) bool {
	return status == http.StatusOK
}

func segment(s string) string {
	return url.PathEscape(s)
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return make([]T, 0)
	}
	return items
}
