package models

// MpesaConfirmation is the C2B confirmation payload delivered by the
// payment provider. TransAmount arrives as a string and is coerced
// before use; TransTime is yyyyMMddHHmmss.
type MpesaConfirmation struct {
	TransactionType   string `json:"TransactionType"`
	TransID           string `json:"TransID"`
	TransTime         string `json:"TransTime"`
	TransAmount       string `json:"TransAmount"`
	BusinessShortCode string `json:"BusinessShortCode"`
	BillRefNumber     string `json:"BillRefNumber"`
	InvoiceNumber     string `json:"InvoiceNumber"`
	OrgAccountBalance string `json:"OrgAccountBalance"`
	ThirdPartyTransID string `json:"ThirdPartyTransID"`
	MSISDN            string `json:"MSISDN"`
	FirstName         string `json:"FirstName"`
	MiddleName        string `json:"MiddleName"`
	LastName          string `json:"LastName"`
}

// C2BResponse is the result envelope the provider expects from both
// the validation and confirmation endpoints.
type C2BResponse struct {
	ResultCode interface{} `json:"ResultCode"`
	ResultDesc string      `json:"ResultDesc"`
}

// C2BAccepted builds the fixed accept response
func C2BAccepted() C2BResponse {
	return C2BResponse{ResultCode: 0, ResultDesc: "Accepted"}
}

// C2BRejected builds the fixed reject response
func C2BRejected() C2BResponse {
	return C2BResponse{ResultCode: "C2B00016", ResultDesc: "Rejected"}
}
