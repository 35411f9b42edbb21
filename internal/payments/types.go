package payments

type ChargeRequest struct {
	OrderNumber   string
	AmountCents   int64
	CustomerName  string
	CustomerEmail string
}

// ChargeResponse carries whatever the gateway produced for the charge.
// QRCodeImage is a base64 PNG data URL and may be empty when rendering
// failed; Payload alone is enough to pay.
type ChargeResponse struct {
	TransactionID string
	Payload       string
	QRCodeImage   string
}

type VerifyRequest struct {
	TransactionID string
}

type VerifyResponse struct {
	Paid bool
}
