package payments

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestPixCreateCharge(t *testing.T) {
	g := NewPixGateway(zap.NewNop().Sugar())

	resp, err := g.CreateCharge(context.Background(), ChargeRequest{
		OrderNumber:  "20260830-0001",
		AmountCents:  180_00,
		CustomerName: "Maria da Silva",
	})
	require.NoError(t, err)

	assert.Equal(t, "PIX_20260830-0001", resp.TransactionID)

	payload := resp.Payload
	assert.True(t, strings.HasPrefix(payload, "000201"), "payload format indicator")
	assert.Contains(t, payload, "BR.GOV.BCB.PIX")
	assert.Contains(t, payload, "5303986") // BRL currency
	assert.Contains(t, payload, "5406180.00")
	assert.Contains(t, payload, "5802BR")
	assert.Contains(t, payload, "MARIADASILVA")
	assert.Contains(t, payload, "202608300001") // txid with the dash stripped
	assert.True(t, strings.HasSuffix(payload, "6304A1B2"), "mocked CRC trailer")

	assert.True(t, strings.HasPrefix(resp.QRCodeImage, "data:image/png;base64,"))
}

func TestPixChargeNameTruncatedAt25(t *testing.T) {
	g := NewPixGateway(zap.NewNop().Sugar())

	resp, err := g.CreateCharge(context.Background(), ChargeRequest{
		OrderNumber:  "20260830-0002",
		AmountCents:  10_00,
		CustomerName: "João Pedro de Alcântara Figueiredo dos Santos",
	})
	require.NoError(t, err)

	assert.Contains(t, resp.Payload, "JOÃOPEDRODEALCÂNTARAFIGUE")
	assert.NotContains(t, resp.Payload, "JOÃOPEDRODEALCÂNTARAFIGUEI")
}

func TestPixVerifyChargeAlwaysSettles(t *testing.T) {
	g := NewPixGateway(zap.NewNop().Sugar())

	resp, err := g.VerifyCharge(context.Background(), VerifyRequest{TransactionID: "PIX_20260830-0001"})
	require.NoError(t, err)
	assert.True(t, resp.Paid)
}

func TestManagerRejectsUnknownGateway(t *testing.T) {
	m := NewManager()

	_, err := m.CreateCharge(context.Background(), "boleto", ChargeRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gateway not registered")

	m.RegisterGateway(MethodPix, NewPixGateway(zap.NewNop().Sugar()))
	_, err = m.CreateCharge(context.Background(), MethodPix, ChargeRequest{OrderNumber: "20260830-0003", AmountCents: 1})
	require.NoError(t, err)
}
