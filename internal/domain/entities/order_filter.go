package entities

// OrderFilter is the backend query for listing orders. Only supplied keys are
// present; an absent key means "no restriction".
type OrderFilter map[string]string

const (
	FilterClientID = "clientId"
	FilterDate     = "date" // YYYY-MM-DD, matched against the entry date
	FilterCode     = "code" // substring of the order code
	FilterStatus   = "status"
	FilterPaid     = "paid" // PaidYes or PaidNo
)

const (
	PaidYes = "sim"
	PaidNo  = "nao"
)
