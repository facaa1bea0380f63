package services

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/cart"
	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/models"
)

var ringID = uuid.MustParse("0190f5d2-0000-7000-8000-000000000001")

func testOrder() models.Order {
	id := uuid.MustParse("0190f5d2-1111-7000-8000-00000000abcd")
	return models.Order{
		ID:            id,
		OrderNumber:   models.NewOrderNumber(id, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)),
		CustomerName:  "Ada Byron",
		CustomerEmail: "ada@example.com",
		ShippingAddress: datatypes.NewJSONType(models.ShippingAddress{
			Line1: "1 Bond St", City: "London", PostalCode: "W1", Country: "UK",
		}),
		Items: []models.LineItem{
			{ProductID: ringID.String(), Name: "Aurora Ring", Price: 250, Quantity: 2},
		},
		TotalAmount: 500,
		Status:      models.OrderStatusPending,
		CreatedAt:   time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

// ════════════════════════════════════════════════════════════
// JWT
// ════════════════════════════════════════════════════════════

func TestAdminJWT_RoundTrip(t *testing.T) {
	svc := NewJWTService("k1")

	token, expiresAt, err := svc.GenerateAdminJWT()
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(AdminTokenTTL), expiresAt, time.Minute)

	claims, err := svc.VerifyAdminJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Subject)
	assert.Equal(t, "admin", claims.Role)

	_, err = NewJWTService("other-key").VerifyAdminJWT(token)
	assert.Error(t, err)
}

func TestAdminJWT_Expired(t *testing.T) {
	svc := NewJWTService("k1")
	svc.now = func() time.Time { return time.Now().Add(-13 * time.Hour) }

	token, _, err := svc.GenerateAdminJWT()
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.VerifyAdminJWT(token)
	assert.Error(t, err)
}

func TestCustomerJWT_RoundTripAndSeparation(t *testing.T) {
	svc := NewJWTService("k1")

	token, err := svc.GenerateCustomerJWT(models.Customer{ID: "google-42", Email: "ada@example.com", Name: "Ada"})
	require.NoError(t, err)

	customer, err := svc.VerifyCustomerJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "google-42", customer.ID)
	assert.Equal(t, "ada@example.com", customer.Email)

	_, err = svc.VerifyAdminJWT(token)
	assert.Error(t, err)

	adminToken, _, err := svc.GenerateAdminJWT()
	require.NoError(t, err)
	_, err = svc.VerifyCustomerJWT(adminToken)
	assert.Error(t, err)

	_, err = svc.GenerateCustomerJWT(models.Customer{ID: "x"})
	assert.Error(t, err)
}

// ════════════════════════════════════════════════════════════
// Admin secret
// ════════════════════════════════════════════════════════════

func TestAdminAuthService(t *testing.T) {
	hash, err := HashSecret("velvet-box-1887")
	require.NoError(t, err)

	fromHash, err := NewAdminAuthService(hash, "")
	require.NoError(t, err)
	ok, err := fromHash.VerifySecret("velvet-box-1887")
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = fromHash.VerifySecret("velvet-box")
	require.NoError(t, err)
	assert.False(t, ok)

	fromPlain, err := NewAdminAuthService("", "dev-secret")
	require.NoError(t, err)
	ok, _ = fromPlain.VerifySecret("dev-secret")
	assert.True(t, ok)

	_, err = NewAdminAuthService("not-a-hash", "")
	assert.Error(t, err)

	empty, err := NewAdminAuthService("", "")
	require.NoError(t, err)
	_, err = empty.VerifySecret("anything")
	assert.ErrorIs(t, err, ErrAdminSecretNotConfigured)
}

// ════════════════════════════════════════════════════════════
// Checkout pricing
// ════════════════════════════════════════════════════════════

func TestPriceLineItems(t *testing.T) {
	products := []models.Product{{ID: ringID, Name: "Aurora Ring", Price: 250, Image: models.ProductImage{URL: "https://img/r.jpg"}}}

	items, total, err := PriceLineItems([]models.OrderItemInput{
		{ProductID: ringID.String(), Quantity: 1},
		{ProductID: ringID.String(), Quantity: 2},
	}, products)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)
	assert.Equal(t, "https://img/r.jpg", items[0].ImageURL)
	assert.InDelta(t, 750.0, total, 1e-9)

	_, _, err = PriceLineItems(nil, products)
	assert.ErrorIs(t, err, cart.ErrEmptyCart)

	_, _, err = PriceLineItems([]models.OrderItemInput{{ProductID: uuid.NewString(), Quantity: 1}}, products)
	assert.ErrorIs(t, err, ErrUnknownProduct)

	_, _, err = PriceLineItems([]models.OrderItemInput{{ProductID: ringID.String(), Quantity: 0}}, products)
	assert.ErrorIs(t, err, cart.ErrInvalidQuantity)
}

func TestCartItemsToInputsAndProductIDs(t *testing.T) {
	c := cart.New("c")
	require.NoError(t, c.Add(cart.Item{ProductID: "a", Price: 999, Quantity: 2}))
	require.NoError(t, c.Add(cart.Item{ProductID: "b", Price: 1, Quantity: 1}))

	inputs := CartItemsToInputs(c)
	assert.Equal(t, []models.OrderItemInput{{ProductID: "a", Quantity: 2}, {ProductID: "b", Quantity: 1}}, inputs)

	inputs = append(inputs, models.OrderItemInput{ProductID: "a", Quantity: 1})
	assert.Equal(t, []string{"a", "b"}, ProductIDs(inputs))
}

// ════════════════════════════════════════════════════════════
// Email
// ════════════════════════════════════════════════════════════

type fakeSender struct {
	sent []EmailMessage
	err  error
}

func (f *fakeSender) Send(_ context.Context, msg EmailMessage) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, msg)
	return nil
}

func TestBuildOrderConfirmation(t *testing.T) {
	order := testOrder()

	msg, err := BuildOrderConfirmation(order, "https://lumiere.shop")
	require.NoError(t, err)

	assert.Equal(t, "ada@example.com", msg.To)
	assert.Contains(t, msg.Subject, order.OrderNumber)
	assert.Contains(t, msg.HTML, "Aurora Ring")
	assert.Contains(t, msg.HTML, "$500.00")
	assert.Contains(t, msg.HTML, "1 Bond St, London, W1, UK")
	assert.Contains(t, msg.HTML, "https://lumiere.shop/orders/"+order.ID.String()+"/confirmation")
	assert.Equal(t, "invoice-"+order.OrderNumber+".pdf", msg.AttachmentName)
	assert.True(t, bytes.HasPrefix(msg.Attachment, []byte("%PDF")))
}

func TestBuildOrderConfirmation_EscapesHTML(t *testing.T) {
	order := testOrder()
	order.CustomerName = "<script>alert(1)</script>"

	msg, err := BuildOrderConfirmation(order, "")
	require.NoError(t, err)
	assert.False(t, strings.Contains(msg.HTML, "<script>"))
}

func TestSendOrderConfirmation(t *testing.T) {
	t.Cleanup(func() { SetEmailSender(nil) })

	SetEmailSender(nil)
	assert.ErrorIs(t, SendOrderConfirmation(context.Background(), testOrder(), ""), ErrEmailNotConfigured)

	sender := &fakeSender{}
	SetEmailSender(sender)
	require.NoError(t, SendOrderConfirmation(context.Background(), testOrder(), ""))
	assert.Len(t, sender.sent, 1)

	noEmail := testOrder()
	noEmail.CustomerEmail = ""
	assert.ErrorIs(t, SendOrderConfirmation(context.Background(), noEmail, ""), ErrNoRecipient)

	SetEmailSender(&fakeSender{err: errors.New("quota exceeded")})
	assert.Error(t, SendOrderConfirmation(context.Background(), testOrder(), ""))
}

func TestInitEmailSender(t *testing.T) {
	t.Cleanup(func() { SetEmailSender(nil) })

	require.NoError(t, InitEmailSender("resend", "re_test", "orders@lumiere.shop", "", 0, "", ""))
	s, err := GetEmailSender()
	require.NoError(t, err)
	assert.IsType(t, &ResendSender{}, s)

	require.NoError(t, InitEmailSender("smtp", "", "orders@lumiere.shop", "smtp.example.com", 587, "u", "p"))
	s, err = GetEmailSender()
	require.NoError(t, err)
	assert.IsType(t, &SMTPSender{}, s)

	require.NoError(t, InitEmailSender("resend", "", "", "", 0, "", ""))
	_, err = GetEmailSender()
	assert.ErrorIs(t, err, ErrEmailNotConfigured)

	assert.Error(t, InitEmailSender("carrier-pigeon", "", "", "", 0, "", ""))
}

// ════════════════════════════════════════════════════════════
// Activity log
// ════════════════════════════════════════════════════════════

type fakeRecorder struct {
	entries []models.ActivityLog
	err     error
}

func (f *fakeRecorder) Record(_ context.Context, entry models.ActivityLog) error {
	f.entries = append(f.entries, entry)
	return f.err
}

func TestLogActivity(t *testing.T) {
	t.Cleanup(func() { SetActivityRecorder(nil) })

	SetActivityRecorder(nil)
	LogActivity(context.Background(), LogActivityRequest{Action: "noop"})

	rec := &fakeRecorder{}
	SetActivityRecorder(rec)
	LogActivity(context.Background(), LogActivityRequest{
		Actor:        "admin",
		Action:       "update_order",
		ResourceType: models.ResourceTypeOrder,
		ResourceID:   "o1",
		Changes:      map[string]string{"status": "Shipped"},
		StatusCode:   200,
	})
	LogActivity(context.Background(), LogActivityRequest{Action: "delete_product", StatusCode: 404})

	require.Len(t, rec.entries, 2)
	assert.Equal(t, models.StatusSuccess, rec.entries[0].Status)
	assert.JSONEq(t, `{"status":"Shipped"}`, string(rec.entries[0].Changes))
	assert.Equal(t, models.StatusFailed, rec.entries[1].Status)

	rec.err = errors.New("db down")
	assert.NotPanics(t, func() {
		LogActivity(context.Background(), LogActivityRequest{Action: "create_product"})
	})
}
