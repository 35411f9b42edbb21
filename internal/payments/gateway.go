package payments

import "context"

// Gateway defines a common interface for all payment providers
type Gateway interface {
	CreateCharge(ctx context.Context, req ChargeRequest) (ChargeResponse, error)
	VerifyCharge(ctx context.Context, req VerifyRequest) (VerifyResponse, error)
}
