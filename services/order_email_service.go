package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"

	"github.com/rs/zerolog/log"

	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/models"
)

var ErrNoRecipient = errors.New("order has no customer email")

var orderConfirmationTmpl = template.Must(template.New("order_confirmation").Funcs(template.FuncMap{
	"money": formatMoney,
}).Parse(`<!DOCTYPE html>
<html lang="en">
<head><meta charset="UTF-8"><title>Order {{.Order.OrderNumber}}</title></head>
<body style="margin:0;padding:16px;font-family:Georgia,'Times New Roman',serif;background:#faf8f5;color:#211e1c;">
  <table width="100%" cellpadding="0" cellspacing="0" border="0" style="max-width:640px;margin:auto;background:#ffffff;padding:24px;">
    <tr><td style="border-bottom:1px solid #e8e2d9;padding-bottom:16px;">
      <h1 style="margin:0;font-size:24px;letter-spacing:2px;color:#b08d57;">{{.Store}}</h1>
    </td></tr>
    <tr><td style="padding:16px 0;">
      <p style="margin:0;font-size:16px;">Dear {{.Order.CustomerName}},</p>
      <p style="margin:8px 0;font-size:14px;color:#807668;">Thank you for your order. We are preparing it with care.</p>
      <p style="margin:8px 0;font-size:14px;">Order <strong>{{.Order.OrderNumber}}</strong> placed {{.Order.CreatedAt.Format "Jan 02, 2006"}}</p>
    </td></tr>
    <tr><td>
      <table width="100%" cellpadding="0" cellspacing="0" border="0">
        <thead><tr>
          <th style="text-align:left;font-size:12px;text-transform:uppercase;padding-bottom:8px;">Item</th>
          <th style="text-align:right;font-size:12px;text-transform:uppercase;padding-bottom:8px;">Qty</th>
          <th style="text-align:right;font-size:12px;text-transform:uppercase;padding-bottom:8px;">Price</th>
          <th style="text-align:right;font-size:12px;text-transform:uppercase;padding-bottom:8px;">Total</th>
        </tr></thead>
        <tbody>
        {{range .Order.Items}}<tr>
          <td style="padding:6px 0;font-size:14px;">{{.Name}}</td>
          <td style="padding:6px 0;font-size:14px;text-align:right;">{{.Quantity}}</td>
          <td style="padding:6px 0;font-size:14px;text-align:right;">{{money .Price}}</td>
          <td style="padding:6px 0;font-size:14px;text-align:right;font-weight:600;">{{money .Subtotal}}</td>
        </tr>{{end}}
        </tbody>
      </table>
    </td></tr>
    <tr><td style="padding:16px 0;border-top:1px solid #e8e2d9;text-align:right;font-size:16px;">
      Total <strong>{{money .Order.TotalAmount}}</strong>
    </td></tr>
    {{with .Address}}<tr><td style="padding:8px 0;font-size:13px;color:#807668;">Shipping to: {{.}}</td></tr>{{end}}
    {{with .OrderURL}}<tr><td style="padding:16px 0;">
      <a href="{{.}}" style="display:inline-block;padding:10px 20px;background:#211e1c;color:#ffffff;text-decoration:none;">View your order</a>
    </td></tr>{{end}}
    <tr><td style="padding-top:16px;font-size:12px;color:#807668;">Your invoice is attached. Questions? {{.Contact}}</td></tr>
  </table>
</body>
</html>`))

type orderConfirmationView struct {
	Store    string
	Contact  string
	Order    models.Order
	Address  string
	OrderURL string
}

// BuildOrderConfirmation renders the confirmation email and attaches the
// invoice PDF.
func BuildOrderConfirmation(order models.Order, storefrontURL string) (EmailMessage, error) {
	if order.CustomerEmail == "" {
		return EmailMessage{}, ErrNoRecipient
	}

	view := orderConfirmationView{
		Store:   StoreName,
		Contact: StoreContact,
		Order:   order,
		Address: order.ShippingAddress.Data().String(),
	}
	if storefrontURL != "" {
		view.OrderURL = fmt.Sprintf("%s/orders/%s/confirmation", storefrontURL, order.ID)
	}

	var body bytes.Buffer
	if err := orderConfirmationTmpl.Execute(&body, view); err != nil {
		return EmailMessage{}, fmt.Errorf("render confirmation email: %w", err)
	}

	pdf, err := GenerateInvoicePDF(order)
	if err != nil {
		return EmailMessage{}, err
	}

	return EmailMessage{
		To:             order.CustomerEmail,
		Subject:        fmt.Sprintf("Your Lumière order %s", order.OrderNumber),
		HTML:           body.String(),
		Attachment:     pdf,
		AttachmentName: InvoiceFilename(order),
	}, nil
}

// SendOrderConfirmation builds and sends the confirmation for an order.
// Failures are returned to the caller; nothing is retried.
func SendOrderConfirmation(ctx context.Context, order models.Order, storefrontURL string) error {
	sender, err := GetEmailSender()
	if err != nil {
		return err
	}
	msg, err := BuildOrderConfirmation(order, storefrontURL)
	if err != nil {
		return err
	}
	if err := sender.Send(ctx, msg); err != nil {
		return err
	}
	log.Info().Str("op", "email.order-confirmation").Str("order", order.OrderNumber).Str("to", order.CustomerEmail).Msg("confirmation sent")
	return nil
}
