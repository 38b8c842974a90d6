package email

import (
	"bytes"
	"html/template"

	"github.com/touchpointee/avanyaa-store/internal/models"
)

// OrderEmailData carries everything the order emails render.
type OrderEmailData struct {
	OrderID       string
	CustomerName  string
	CustomerEmail string
	Items         []models.OrderItem
	TotalAmount   float64
	Address       models.Address
}

var templateFuncs = template.FuncMap{
	"lineTotal": func(item models.OrderItem) float64 {
		return item.Price * float64(item.Quantity)
	},
}

var customerTemplate = template.Must(template.New("customer").Funcs(templateFuncs).Parse(`<!DOCTYPE html>
<html>
<head>
  <style>
    body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
    .container { max-width: 600px; margin: 0 auto; padding: 20px; }
    .header { background: #1a1a1a; color: white; padding: 30px; text-align: center; }
    .content { background: #f9f9f9; padding: 30px; }
    .order-details { background: white; padding: 20px; border-radius: 5px; margin: 20px 0; }
    .item { border-bottom: 1px solid #eee; padding: 15px 0; }
    .total { font-size: 20px; font-weight: bold; margin-top: 20px; padding-top: 20px; border-top: 2px solid #333; }
    .footer { text-align: center; padding: 20px; color: #666; font-size: 12px; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>AVANYAA</h1>
      <p>Order Confirmation</p>
    </div>
    <div class="content">
      <h2>Thank you for your order!</h2>
      <p>Hi {{.CustomerName}},</p>
      <p>Your order has been received and is being processed.</p>
      <div class="order-details">
        <h3>Order #{{.OrderID}}</h3>
        <h4>Items:</h4>
        {{range .Items}}
        <div class="item">
          <strong>{{.ProductName}}</strong>{{if .Size}} (Size: {{.Size}}){{end}}<br>
          Quantity: {{.Quantity}} &times; &#8377;{{.Price}} = &#8377;{{lineTotal .}}
        </div>
        {{end}}
        <div class="total">Total: &#8377;{{.TotalAmount}}</div>
      </div>
      <div class="order-details">
        <h4>Delivery Address:</h4>
        <p>
          {{.Address.FullName}}<br>
          {{.Address.Phone}}<br>
          {{.Address.Street}}<br>
          {{.Address.City}}, {{.Address.State}} {{.Address.ZipCode}}
        </p>
      </div>
      <div class="order-details">
        <h4>Payment Method:</h4>
        <p>Cash on Delivery (COD)</p>
      </div>
      <p>We'll send you a shipping confirmation email as soon as your order ships.</p>
    </div>
    <div class="footer">
      <p>&copy; AVANYAA. All rights reserved.</p>
    </div>
  </div>
</body>
</html>
`))

var adminTemplate = template.Must(template.New("admin").Funcs(templateFuncs).Parse(`<!DOCTYPE html>
<html>
<head>
  <style>
    body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
    .container { max-width: 600px; margin: 0 auto; padding: 20px; }
    .header { background: #1a1a1a; color: white; padding: 20px; }
    .content { background: white; padding: 20px; border: 1px solid #ddd; }
    .item { border-bottom: 1px solid #eee; padding: 10px 0; }
    .total { font-size: 18px; font-weight: bold; margin-top: 15px; padding-top: 15px; border-top: 2px solid #333; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h2>New Order Received</h2>
    </div>
    <div class="content">
      <h3>Order #{{.OrderID}}</h3>
      <p><strong>Customer:</strong> {{.CustomerName}}</p>
      <p><strong>Email:</strong> {{.CustomerEmail}}</p>
      <p><strong>Phone:</strong> {{.Address.Phone}}</p>
      <h4>Items:</h4>
      {{range .Items}}
      <div class="item">
        {{.ProductName}}{{if .Size}} ({{.Size}}){{end}} - Qty: {{.Quantity}} - &#8377;{{lineTotal .}}
      </div>
      {{end}}
      <div class="total">Total: &#8377;{{.TotalAmount}}</div>
      <h4>Delivery Address:</h4>
      <p>
        {{.Address.FullName}}<br>
        {{.Address.Phone}}<br>
        {{.Address.Street}}<br>
        {{.Address.City}}, {{.Address.State}} {{.Address.ZipCode}}
      </p>
      <p><strong>Payment:</strong> Cash on Delivery</p>
    </div>
  </div>
</body>
</html>
`))

func renderCustomerEmail(data OrderEmailData) (string, error) {
	var buf bytes.Buffer
	if err := customerTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func renderAdminEmail(data OrderEmailData) (string, error) {
	var buf bytes.Buffer
	if err := adminTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
