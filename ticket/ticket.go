// Package ticket renders printable HTML documents: the cash-register
// ticket, the admin invoice and the revenue report. Pure presentation,
// no state; each document embeds a script that opens the print dialog
// shortly after load.
package ticket

import (
	"bytes"
	"fmt"
	"html/template"
	"math/rand"

	"github.com/hamzadaoud/rouge-perle-gestion/models"
)

var thankYouMessages = []string{
	"Merci pour votre visite! Nous espérons vous revoir très bientôt chez La Perle Rouge.",
	"Votre sourire est notre plus belle récompense. À très vite chez La Perle Rouge!",
	"La Perle Rouge vous remercie de votre confiance. Au plaisir de vous servir à nouveau!",
	"Un café chez La Perle Rouge, c'est un moment de bonheur à partager. Revenez vite!",
	"Merci d'avoir choisi La Perle Rouge. Nous vous attendons pour votre prochaine pause café!",
}

// ThankYouMessage picks one of the register's five farewell lines.
func ThankYouMessage() string {
	return thankYouMessages[rand.Intn(len(thankYouMessages))]
}

var funcs = template.FuncMap{
	"money": func(v float64) string { return fmt.Sprintf("%.2f", v) },
	"line": func(item models.OrderItem) string {
		return fmt.Sprintf("%.2f", item.LineTotal())
	},
	"inc": func(i int) int { return i + 1 },
}

var (
	ticketTmpl  = template.Must(template.New("ticket").Funcs(funcs).Parse(ticketHTML))
	invoiceTmpl = template.Must(template.New("invoice").Funcs(funcs).Parse(invoiceHTML))
	reportTmpl  = template.Must(template.New("report").Funcs(funcs).Parse(reportHTML))
)

type ticketData struct {
	Order   models.Order
	Message string
}

// RenderTicket produces the 300px receipt for one order.
func RenderTicket(order models.Order) (string, error) {
	var buf bytes.Buffer
	err := ticketTmpl.Execute(&buf, ticketData{Order: order, Message: ThankYouMessage()})
	if err != nil {
		return "", fmt.Errorf("render ticket: %w", err)
	}
	return buf.String(), nil
}

// RenderInvoice produces the admin-facing invoice, including the café's
// address block.
func RenderInvoice(order models.Order) (string, error) {
	var buf bytes.Buffer
	if err := invoiceTmpl.Execute(&buf, order); err != nil {
		return "", fmt.Errorf("render invoice: %w", err)
	}
	return buf.String(), nil
}

type reportData struct {
	Period   string
	Revenues []models.Revenue
	Total    float64
	Days     int
	Average  float64
}

// RenderRevenueReport produces the per-day revenue table with its
// aggregate for the given period descriptor.
func RenderRevenueReport(period string, revenues []models.Revenue) (string, error) {
	data := reportData{Period: period, Revenues: revenues, Days: len(revenues)}
	for _, r := range revenues {
		data.Total += r.Amount
	}
	if data.Days > 0 {
		data.Average = data.Total / float64(data.Days)
	}
	var buf bytes.Buffer
	if err := reportTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render revenue report: %w", err)
	}
	return buf.String(), nil
}
