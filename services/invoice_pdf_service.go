package services

import (
	"fmt"

	"github.com/johnfercher/maroto/pkg/color"
	"github.com/johnfercher/maroto/pkg/consts"
	"github.com/johnfercher/maroto/pkg/pdf"
	"github.com/johnfercher/maroto/pkg/props"

	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/models"
)

const (
	StoreName    = "LUMIÈRE JEWELRY"
	StoreContact = "hello@lumiere.shop"
)

var (
	inkColor   = color.Color{Red: 33, Green: 30, Blue: 28}
	mutedColor = color.Color{Red: 128, Green: 118, Blue: 104}
	goldColor  = color.Color{Red: 176, Green: 141, Blue: 87}
)

// GenerateInvoicePDF renders an A4 invoice for the order.
func GenerateInvoicePDF(order models.Order) ([]byte, error) {
	m := pdf.NewMaroto(consts.Portrait, consts.A4)
	m.SetPageMargins(20, 20, 20)

	m.Row(15, func() {
		m.Col(12, func() {
			m.Text("INVOICE", props.Text{Size: 24, Style: consts.Bold, Color: inkColor})
		})
	})
	m.Row(10, func() {
		m.Col(12, func() {
			m.Text(StoreName, props.Text{Size: 16, Style: consts.Bold, Color: goldColor})
		})
	})
	m.Row(5, func() {
		m.Col(12, func() {
			m.Text(StoreContact, props.Text{Size: 9, Color: mutedColor})
		})
	})

	m.Row(8, func() {})

	m.Row(5, func() {
		m.Col(6, func() {
			m.Text("BILL TO", props.Text{Size: 8, Style: consts.Bold, Color: inkColor})
		})
		m.Col(6, func() {
			m.Text("INVOICE DETAILS", props.Text{Size: 8, Style: consts.Bold, Color: inkColor, Align: consts.Right})
		})
	})
	m.Row(5, func() {
		m.Col(6, func() {
			m.Text(order.CustomerName, props.Text{Size: 10, Style: consts.Bold, Color: inkColor})
		})
		m.Col(6, func() {
			m.Text(fmt.Sprintf("Invoice #%s", order.OrderNumber), props.Text{Size: 10, Color: inkColor, Align: consts.Right})
		})
	})
	m.Row(5, func() {
		m.Col(6, func() {
			m.Text(order.CustomerEmail, props.Text{Size: 9, Color: mutedColor})
		})
		m.Col(6, func() {
			m.Text(fmt.Sprintf("Date: %s", order.CreatedAt.Format("Jan 02, 2006")), props.Text{Size: 9, Color: mutedColor, Align: consts.Right})
		})
	})
	if addr := order.ShippingAddress.Data().String(); addr != "" {
		m.Row(5, func() {
			m.Col(12, func() {
				m.Text(addr, props.Text{Size: 9, Color: mutedColor})
			})
		})
	}

	m.Row(8, func() {})

	header := props.Text{Size: 8, Style: consts.Bold, Color: inkColor, Align: consts.Right}
	m.Row(6, func() {
		m.Col(6, func() {
			m.Text("Description", props.Text{Size: 8, Style: consts.Bold, Color: inkColor})
		})
		m.Col(2, func() { m.Text("Qty", header) })
		m.Col(2, func() { m.Text("Price", header) })
		m.Col(2, func() { m.Text("Total", header) })
	})
	m.Line(0.5, props.Line{Color: mutedColor})

	cell := props.Text{Size: 9, Color: inkColor, Align: consts.Right}
	for _, item := range order.Items {
		item := item
		m.Row(6, func() {
			m.Col(6, func() {
				m.Text(item.Name, props.Text{Size: 9, Color: inkColor})
			})
			m.Col(2, func() { m.Text(fmt.Sprintf("%d", item.Quantity), cell) })
			m.Col(2, func() { m.Text(formatMoney(item.Price), cell) })
			m.Col(2, func() { m.Text(formatMoney(item.Subtotal()), cell) })
		})
	}

	m.Line(0.5, props.Line{Color: mutedColor})
	m.Row(8, func() {
		m.Col(8, func() {
			m.Text("TOTAL", props.Text{Size: 10, Style: consts.Bold, Color: inkColor, Align: consts.Right})
		})
		m.Col(4, func() {
			m.Text(formatMoney(order.TotalAmount), props.Text{Size: 10, Style: consts.Bold, Color: inkColor, Align: consts.Right})
		})
	})
	m.Row(6, func() {
		m.Col(12, func() {
			m.Text("Status: "+order.Status, props.Text{Size: 8, Color: mutedColor})
		})
	})

	buf, err := m.Output()
	if err != nil {
		return nil, fmt.Errorf("failed to render invoice pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func InvoiceFilename(order models.Order) string {
	return fmt.Sprintf("invoice-%s.pdf", order.OrderNumber)
}

func formatMoney(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}
