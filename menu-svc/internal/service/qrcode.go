package service

import (
	"fmt"
	"strings"

	"github.com/skip2/go-qrcode"
)

type QRGenerator interface {
	Generate(widgetID string) ([]byte, error)
}

type DefaultQRGenerator struct {
	BaseURL string
}

func (g DefaultQRGenerator) Link(widgetID string) string {
	return fmt.Sprintf("%s/widgets/%s", strings.TrimRight(g.BaseURL, "/"), widgetID)
}

func (g DefaultQRGenerator) Generate(widgetID string) ([]byte, error) {
	return qrcode.Encode(g.Link(widgetID), qrcode.Medium, 256)
}
