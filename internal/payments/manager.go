package payments

import (
	"context"
	"fmt"
)

type Manager struct {
	gateways map[string]Gateway
}

func NewManager() *Manager {
	return &Manager{gateways: make(map[string]Gateway)}
}

func (m *Manager) RegisterGateway(method string, gateway Gateway) {
	m.gateways[method] = gateway
}

func (m *Manager) CreateCharge(ctx context.Context, method string, req ChargeRequest) (ChargeResponse, error) {
	gateway, ok := m.gateways[method]
	if !ok {
		return ChargeResponse{}, fmt.Errorf("gateway not registered: %s", method)
	}
	return gateway.CreateCharge(ctx, req)
}

func (m *Manager) VerifyCharge(ctx context.Context, method string, req VerifyRequest) (VerifyResponse, error) {
	gateway, ok := m.gateways[method]
	if !ok {
		return VerifyResponse{}, fmt.Errorf("gateway not registered: %s", method)
	}
	return gateway.VerifyCharge(ctx, req)
}
