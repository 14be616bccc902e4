package dto

// PaymentRequest represents the API request for processing a payment.
// Amount is in cents. AdjustBalance defaults to true when omitted.
type PaymentRequest struct {
	NetID         string `json:"netid" binding:"required"`
	Amount        int64  `json:"amount" binding:"required"`
	Token         string `json:"token" binding:"required"`
	Description   string `json:"description"`
	AdjustBalance *bool  `json:"adjust_balance"`
}

// ShouldAdjustBalance returns the adjust_balance flag, defaulting to true
func (r *PaymentRequest) ShouldAdjustBalance() bool {
	if r.AdjustBalance == nil {
		return true
	}
	return *r.AdjustBalance
}

// PaymentResponse represents the API response for a payment attempt
type PaymentResponse struct {
	Successful bool `json:"successful"`
}
