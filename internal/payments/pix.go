package payments

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/skip2/go-qrcode"
	"go.uber.org/zap"
)

const MethodPix = "pix"

// PixGateway emits BR Code (EMV-MPM) payloads for PIX charges. It is a
// mock of a real PSP: the PIX key is random per charge and the trailing
// CRC16 is a fixed placeholder, so the payload is well-formed but not
// payable.
type PixGateway struct {
	merchantCity string
	logger       *zap.SugaredLogger
}

func NewPixGateway(logger *zap.SugaredLogger) *PixGateway {
	return &PixGateway{merchantCity: "SAO PAULO", logger: logger}
}

func (g *PixGateway) CreateCharge(ctx context.Context, req ChargeRequest) (ChargeResponse, error) {
	payload := g.brCode(req)

	resp := ChargeResponse{
		TransactionID: "PIX_" + req.OrderNumber,
		Payload:       payload,
	}

	png, err := qrcode.Encode(payload, qrcode.Medium, 256)
	if err != nil {
		// the copy-and-paste payload still works without the image
		g.logger.Warnw("failed to render pix qr code", "order", req.OrderNumber, "error", err)
		return resp, nil
	}
	resp.QRCodeImage = "data:image/png;base64," + base64.StdEncoding.EncodeToString(png)

	return resp, nil
}

// VerifyCharge always confirms: the mock PSP has no pending state.
func (g *PixGateway) VerifyCharge(ctx context.Context, req VerifyRequest) (VerifyResponse, error) {
	return VerifyResponse{Paid: true}, nil
}

func (g *PixGateway) brCode(req ChargeRequest) string {
	key := randomPixKey()

	name := strings.ReplaceAll(strings.ToUpper(req.CustomerName), " ", "")
	if runes := []rune(name); len(runes) > 25 {
		name = string(runes[:25])
	}
	amount := fmt.Sprintf("%.2f", float64(req.AmountCents)/100)
	txID := strings.ReplaceAll(req.OrderNumber, "-", "")

	var b strings.Builder
	b.WriteString(emv("00", "01"))
	b.WriteString(emv("26", emv("00", "BR.GOV.BCB.PIX")+emv("01", key)))
	b.WriteString(emv("52", "0000"))
	b.WriteString(emv("53", "986"))
	b.WriteString(emv("54", amount))
	b.WriteString(emv("58", "BR"))
	b.WriteString(emv("59", name))
	b.WriteString(emv("60", g.merchantCity))
	b.WriteString(emv("62", emv("05", txID)))
	b.WriteString("6304")
	b.WriteString("A1B2") // mocked CRC16

	return b.String()
}

// emv renders one TLV field of the EMV-MPM format.
func emv(id, value string) string {
	return fmt.Sprintf("%s%02d%s", id, len(value), value)
}

func randomPixKey() string {
	buf := make([]byte, 16)
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf)
}
