package utils

import (
	"bytes"
	"fmt"
	"html/template"
	"log"
	"os"
	"path/filepath"

	"branded_clothing_shop/internal/models"

	"github.com/wneessen/go-mail"
)

var orderConfirmationTmpl = template.Must(template.New("order").Funcs(template.FuncMap{
	"price": FormatPrice,
	"date":  FormatDate,
}).Parse(`<!DOCTYPE html>
<html lang="uk">
<head>
	<meta charset="UTF-8">
	<title>Замовлення №{{.Order.ID}}</title>
</head>
<body style="font-family: Arial, sans-serif; background-color: #f9f9f9; padding: 20px;">
	<div style="max-width: 600px; margin: auto; background-color: white; padding: 20px; border-radius: 10px;">
		<h2 style="color: #333;">Дякуємо за замовлення!</h2>
		<p>Вітаємо, {{.Order.DeliveryName}}.</p>
		<p>Ваше замовлення №{{.Order.ID}} від {{date .Order.OrderDate}} прийнято. Статус: <strong>{{.Order.Status}}</strong>.</p>

		<table style="width: 100%; border-collapse: collapse; margin: 20px 0;">
			<thead>
				<tr style="background-color: #f0f0f0;">
					<th style="padding: 10px; text-align: left; border: 1px solid #ddd;">Товар</th>
					<th style="padding: 10px; text-align: left; border: 1px solid #ddd;">Розмір</th>
					<th style="padding: 10px; text-align: left; border: 1px solid #ddd;">Кількість</th>
					<th style="padding: 10px; text-align: left; border: 1px solid #ddd;">Сума</th>
				</tr>
			</thead>
			<tbody>
				{{range .Order.Items}}
				<tr>
					<td style="padding: 10px; border: 1px solid #ddd;">{{.Product.Brand}} {{.Product.Name}}</td>
					<td style="padding: 10px; border: 1px solid #ddd;">{{.Size}}</td>
					<td style="padding: 10px; border: 1px solid #ddd;">{{.Quantity}}</td>
					<td style="padding: 10px; border: 1px solid #ddd;">{{price .LineTotal}}</td>
				</tr>
				{{end}}
			</tbody>
			<tfoot>
				<tr><td colspan="3" style="padding: 6px; text-align: right;">Підсумок:</td><td>{{price .Order.SubTotal}}</td></tr>
				<tr><td colspan="3" style="padding: 6px; text-align: right;">Доставка ({{.Order.ShippingMethod}}):</td><td>{{price .Order.ShippingCost}}</td></tr>
				<tr><td colspan="3" style="padding: 6px; text-align: right; font-weight: bold;">Разом:</td><td style="font-weight: bold;">{{price .Order.TotalPrice}}</td></tr>
			</tfoot>
		</table>

		<p>Доставка: {{.Order.DeliveryAddress}}, {{.Order.DeliveryCity}} {{.Order.DeliveryPostalCode}}, тел. {{.Order.DeliveryPhone}}</p>
		{{if .QR}}<p><img src="{{.QR}}" alt="{{.Reference}}" width="128" height="128"></p>{{end}}
		<p style="margin-top: 30px; color: #555;">
			З повагою,<br>
			<strong>BrandedClothingShop</strong>
		</p>
	</div>
</body>
</html>`))

// GenerateOrderConfirmationHTML génère le HTML de confirmation de commande
func GenerateOrderConfirmationHTML(order models.Order) (string, error) {
	qr, err := GeneratePaymentQRDataURI(order)
	if err != nil {
		return "", fmt.Errorf("erreur génération QR: %w", err)
	}

	var buf bytes.Buffer
	err = orderConfirmationTmpl.Execute(&buf, map[string]interface{}{
		"Order":     order,
		"Reference": InvoiceReference(order),
		// data: n'est pas une URL sûre pour html/template
		"QR": template.URL(qr),
	})
	if err != nil {
		log.Printf("❌ Erreur exécution template: %v", err)
		return "", err
	}
	return buf.String(), nil
}

// WriteOrderConfirmation écrit l'e-mail de confirmation dans l'outbox (.eml),
// avec la facture PDF en pièce jointe si fournie. Retourne le chemin du fichier.
func WriteOrderConfirmation(outboxDir, from string, order models.Order, pdfAttachment []byte) (string, error) {
	htmlBody, err := GenerateOrderConfirmationHTML(order)
	if err != nil {
		return "", err
	}

	msg := mail.NewMsg()
	if err := msg.From(from); err != nil {
		return "", fmt.Errorf("expéditeur invalide %q: %w", from, err)
	}
	if err := msg.To(order.UserEmail); err != nil {
		return "", fmt.Errorf("destinataire invalide %q: %w", order.UserEmail, err)
	}
	msg.Subject(fmt.Sprintf("Замовлення №%d прийнято - BrandedClothingShop", order.ID))
	msg.SetDate()
	msg.SetBodyString(mail.TypeTextHTML, htmlBody)

	if pdfAttachment != nil {
		msg.AttachReader(fmt.Sprintf("invoice-%d.pdf", order.ID), bytes.NewReader(pdfAttachment))
	}

	if err := os.MkdirAll(outboxDir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(outboxDir, fmt.Sprintf("order-%06d.eml", order.ID))
	if err := msg.WriteToFile(path); err != nil {
		log.Printf("❌ Erreur écriture e-mail: %v", err)
		return "", err
	}

	log.Println("📤 E-mail de confirmation déposé dans l'outbox:", path)
	return path, nil
}
