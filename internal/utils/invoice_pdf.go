package utils

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"log"
	"strings"

	"branded_clothing_shop/internal/models"

	"github.com/google/uuid"
	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
)

const invoiceFontFamily = "invoice"

// InvoiceReference construit une référence stable pour la facture d'une commande
func InvoiceReference(order models.Order) string {
	seed := fmt.Sprintf("%d|%s|%s", order.ID, strings.ToLower(order.UserEmail), order.OrderDate.UTC().Format("2006-01-02T15:04:05"))
	id := uuid.NewSHA1(uuid.NameSpaceOID, []byte(seed))
	return fmt.Sprintf("INV-%06d-%s", order.ID, strings.ToUpper(id.String()[:8]))
}

// GeneratePaymentQR génère le QR de la facture (PNG)
func GeneratePaymentQR(order models.Order) ([]byte, error) {
	// format inspiré de l'EPC: une information par ligne
	payload := fmt.Sprintf(`BCD
001
1
BrandedClothingShop
%s
%s
UAH%s`, InvoiceReference(order), order.UserEmail, order.TotalPrice.StringFixed(2))

	return qrcode.Encode(payload, qrcode.Medium, 256)
}

// GeneratePaymentQRDataURI retourne le QR en base64 prêt à mettre dans <img src="...">
func GeneratePaymentQRDataURI(order models.Order) (string, error) {
	png, err := GeneratePaymentQR(order)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}

// GenerateOrderInvoicePDF génère la facture PDF d'une commande.
// fontPath pointe vers une police TTF pour le texte cyrillique; sans elle on
// retombe sur Arial (les caractères hors cp1252 ne sont pas lisibles).
func GenerateOrderInvoicePDF(order models.Order, fontPath string) ([]byte, error) {
	qrPNG, err := GeneratePaymentQR(order)
	if err != nil {
		return nil, fmt.Errorf("erreur génération QR: %w", err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	family := "Arial"
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	if fontPath != "" {
		pdf.AddUTF8Font(invoiceFontFamily, "", fontPath)
		pdf.AddUTF8Font(invoiceFontFamily, "B", fontPath)
		if err := pdf.Error(); err != nil {
			return nil, fmt.Errorf("police de facture %s: %w", fontPath, err)
		}
		family = invoiceFontFamily
		tr = func(s string) string { return s }
	}

	pdf.AddPage()
	pdf.SetFont(family, "B", 16)
	pdf.Cell(0, 10, tr(fmt.Sprintf("Рахунок / Invoice %s", InvoiceReference(order))))
	pdf.Ln(12)

	pdf.SetFont(family, "", 11)
	pdf.Cell(0, 7, tr(fmt.Sprintf("Замовлення №%d  -  %s", order.ID, FormatDate(order.OrderDate))))
	pdf.Ln(7)
	pdf.Cell(0, 7, tr(fmt.Sprintf("Статус: %s", order.Status)))
	pdf.Ln(7)
	pdf.Cell(0, 7, tr(fmt.Sprintf("Клієнт: %s <%s>", order.DeliveryName, order.UserEmail)))
	pdf.Ln(7)
	pdf.MultiCell(120, 6, tr(fmt.Sprintf("Адреса: %s, %s %s, %s\nТелефон: %s",
		order.DeliveryAddress, order.DeliveryPostalCode, order.DeliveryCity, order.DeliveryCountry, order.DeliveryPhone)), "", "L", false)

	// QR en haut à droite
	imageOpts := gofpdf.ImageOptions{
		ImageType: "PNG",
	}
	pdf.RegisterImageOptionsReader("qr", imageOpts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("qr", 160, 25, 35, 35, false, imageOpts, 0, "")

	pdf.SetY(68)
	pdf.SetFont(family, "B", 10)
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(90, 8, tr("Товар"), "1", 0, "L", true, 0, "")
	pdf.CellFormat(20, 8, tr("Розмір"), "1", 0, "C", true, 0, "")
	pdf.CellFormat(20, 8, tr("К-сть"), "1", 0, "C", true, 0, "")
	pdf.CellFormat(30, 8, tr("Ціна"), "1", 0, "R", true, 0, "")
	pdf.CellFormat(30, 8, tr("Сума"), "1", 1, "R", true, 0, "")

	pdf.SetFont(family, "", 10)
	for _, item := range order.Items {
		pdf.CellFormat(90, 7, tr(item.Product.Brand+" "+item.Product.Name), "1", 0, "L", false, 0, "")
		pdf.CellFormat(20, 7, tr(item.Size), "1", 0, "C", false, 0, "")
		pdf.CellFormat(20, 7, fmt.Sprintf("%d", item.Quantity), "1", 0, "C", false, 0, "")
		pdf.CellFormat(30, 7, invoiceAmount(item.Product.Price.StringFixed(2)), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 7, invoiceAmount(item.LineTotal().StringFixed(2)), "1", 1, "R", false, 0, "")
	}

	pdf.Ln(3)
	totals := []struct {
		label, amount string
	}{
		{"Підсумок", order.SubTotal.StringFixed(2)},
		{"Доставка (" + order.ShippingMethod + ")", order.ShippingCost.StringFixed(2)},
		{"Разом", order.TotalPrice.StringFixed(2)},
	}
	for i, t := range totals {
		if i == len(totals)-1 {
			pdf.SetFont(family, "B", 11)
		}
		pdf.CellFormat(160, 7, tr(t.label), "", 0, "R", false, 0, "")
		pdf.CellFormat(30, 7, invoiceAmount(t.amount), "", 1, "R", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		log.Printf("❌ Erreur génération facture %d: %v", order.ID, err)
		return nil, err
	}

	log.Printf("🧾 Facture générée pour la commande %d (%d octets)", order.ID, buf.Len())
	return buf.Bytes(), nil
}

func invoiceAmount(amount string) string {
	return amount + " UAH"
}
