package model

// RoleOthers is the role sentinel which switches role selection to free text
const RoleOthers = "Others"

// Salutations lists salutations offered by contact forms
var Salutations = []string{"Mr", "Ms", "Dr", "Professor"}

// Contact is a person associated with a customer
type Contact struct {
	ID                    ID     `json:"customerContactID,omitempty"`
	CustomerID            ID     `json:"customerId"`
	CustomerName          string `json:"customerName"`
	Salutation            string `json:"salutation" form:"salutation" validate:"required,oneof=Mr Ms Dr Professor"`
	FirstName             string `json:"firstName" form:"firstName" validate:"required"`
	MiddleName            string `json:"middleName" form:"middleName"`
	LastName              string `json:"lastName" form:"lastName" validate:"required"`
	Designation           string `json:"designation" form:"designation"`
	Role                  string `json:"role" form:"role"`
	RoleInput             string `json:"roleInput,omitempty" form:"roleInput"`
	EmailAddressOne       string `json:"emailAddressOne" form:"emailAddressOne" validate:"required,email"`
	EmailAddressTwo       string `json:"emailAddressTwo" form:"emailAddressTwo" validate:"omitempty,email"`
	OfficialEmail         string `json:"officialEmail" form:"officialEmail" validate:"required,email"`
	MobileOne             string `json:"mobileOne" form:"mobileOne" validate:"required"`
	MobileTwo             string `json:"mobileTwo" form:"mobileTwo"`
	SkypeID               string `json:"skypeId" form:"skypeId"`
	LinkedInLink          string `json:"linkedInLink" form:"linkedInLink" validate:"omitempty,url"`
	DateOfBirth           string `json:"dateOfBirth" form:"dateOfBirth"`
	ContactSubjectKeyword string `json:"contactSubjectKeyword" form:"contactSubjectKeyword"`
}

// DisplayName joins salutation and names the way dashboard shows them
func (c *Contact) DisplayName() string {
	name := c.Salutation
	for _, part := range []string{c.FirstName, c.LastName} {
		if part == "" {
			continue
		}
		if name != "" {
			name += " "
		}
		name += part
	}
	return name
}

// DisplayRole returns free text role if sentinel is stored, otherwise the role itself
func (c *Contact) DisplayRole() string {
	if c.Role == RoleOthers {
		return c.RoleInput
	}
	return c.Role
}
