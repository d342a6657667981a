package model

// Customer is top-level account record managed through the CRM API
type Customer struct {
	ID                   ID     `json:"customerId,omitempty"`
	CustomerName         string `json:"customerName" form:"customerName" validate:"required"`
	CustomerAbbreviation string `json:"customerAbbreviation" form:"customerAbbreviation" validate:"required"`
	AddressOne           string `json:"addressOne" form:"addressOne" validate:"required"`
	AddressTwo           string `json:"addressTwo" form:"addressTwo"`
	AddressThree         string `json:"addressThree" form:"addressThree"`
	City                 string `json:"city" form:"city"`
	State                string `json:"state" form:"state"`
	Country              string `json:"country" form:"country"`
	OfficialEmail        string `json:"officialEmail" form:"officialEmail" validate:"required,email"`
	LandLineOne          string `json:"landLineOne" form:"landLineOne"`
	LandLineTwo          string `json:"landLineTwo" form:"landLineTwo"`
	Fax                  string `json:"fax" form:"fax"`
	Website              string `json:"website" form:"website" validate:"omitempty,url"`
	GstNo                string `json:"gstNo" form:"gstNo" validate:"required"`
	PanNo                string `json:"panNo" form:"panNo"`
	CustomerType         string `json:"customerType" form:"customerType"`
	TwitterLink          string `json:"twitterLink" form:"twitterLink" validate:"omitempty,url"`
	SkypeID              string `json:"skypeId" form:"skypeId"`
	FaceBookLink         string `json:"faceBookLink" form:"faceBookLink" validate:"omitempty,url"`
	LinkedInLink         string `json:"linkedInLink" form:"linkedInLink" validate:"omitempty,url"`
}

// CustomerPage is a single page of customer search results
type CustomerPage struct {
	Customers  []*Customer `json:"customers"`
	TotalPages int         `json:"totalPages"`
}
