package service

const (
	msgCustomerAdded   = "Customer added successfully"
	msgCustomerUpdated = "Customer updated successfully"
	msgContactSaved    = "Customer contact details saved successfully"
	msgContactUpdated  = "Contact updated successfully"
	msgMarketAdded     = "Customer market details added successfully"
	msgSubjectAdded    = "Customer subject details added successfully"
)

const (
	msgAddCustomerFailed    = "Failed to add customer"
	msgUpdateCustomerFailed = "Failed to update customer"
	msgSaveContactFailed    = "Failed to save customer contact details"
	msgUpdateContactFailed  = "Failed to update contact"
	msgAddMarketFailed      = "Failed to add customer market details"
	msgAddSubjectFailed     = "Failed to add customer subject details"
	msgFetchCustomersFailed = "Failed to fetch customers"
	msgFetchContactsFailed  = "Failed to fetch contacts"
	msgFetchMarketsFailed   = "Failed to fetch markets"
	msgFetchSubjectsFailed  = "Failed to fetch subjects"
	msgFetchRolesFailed     = "Failed to fetch roles"
	msgDeleteContactFailed  = "Failed to delete contact"
	msgDeleteMarketFailed   = "Failed to delete market"
	msgDeleteSubjectFailed  = "Failed to delete subject"
)
