package domain

// TaxpayerRequest holds the income details submitted by a citizen for a
// single tax calculation. It is created per inbound request and discarded
// after the response is sent; nothing is persisted.
type TaxpayerRequest struct {
	// Name is the taxpayer's full name.
	Name string `json:"name"`
	// Age is the taxpayer's age in years.
	Age int `json:"age"`
	// Email is the address a report is mailed to when the email channel is active.
	Email string `json:"email"`
	// Mobile is the destination number for the SMS channel, expected in E.164 format.
	Mobile string `json:"mobile"`
	// Income is the annual income the tax is computed from. Never negative.
	Income float64 `json:"income"`
}

// TaxResult is a TaxpayerRequest together with its computed tax liability.
// Tax is a pure function of Income and is rounded to two decimal places,
// so the result is immutable once computed.
type TaxResult struct {
	TaxpayerRequest

	// Tax is the computed liability in the same currency as Income.
	Tax float64 `json:"tax"`
}
