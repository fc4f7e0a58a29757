package ticket

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hamzadaoud/rouge-perle-gestion/models"
)

func sampleOrder() models.Order {
	return models.Order{
		ID: "order_42",
		Items: []models.OrderItem{
			{DrinkID: "1", DrinkName: "Espresso", Quantity: 3, UnitPrice: 2.5},
			{DrinkID: "2", DrinkName: "Cappuccino", Quantity: 1, UnitPrice: 3.5},
		},
		Total:     11.0,
		Date:      time.Date(2024, 3, 15, 14, 30, 0, 0, time.UTC),
		AgentID:   "agent1",
		AgentName: "Jean Dupont",
		Completed: true,
	}
}

func TestRenderTicket(t *testing.T) {
	html, err := RenderTicket(sampleOrder())
	require.NoError(t, err)

	assert.Contains(t, html, "LA PERLE ROUGE")
	assert.Contains(t, html, "Serveur: Jean Dupont")
	assert.Contains(t, html, "1. 3x Espresso")
	assert.Contains(t, html, "7.50 MAD")
	assert.Contains(t, html, "2. 1x Cappuccino")
	assert.Contains(t, html, "Total: 11.00 MAD")
	assert.Contains(t, html, "order_42")
	assert.Contains(t, html, "window.print()")
}

func TestRenderInvoice(t *testing.T) {
	html, err := RenderInvoice(sampleOrder())
	require.NoError(t, err)

	assert.Contains(t, html, "Facture #order_42")
	assert.Contains(t, html, "Jean Dupont")
	assert.Contains(t, html, "123 Avenue des Cafés")
	assert.Contains(t, html, "75001 Paris, France")
	assert.Contains(t, html, "Espresso")
	assert.Contains(t, html, "2.50 MAD")
	assert.Contains(t, html, "Total: 11.00 MAD")
	assert.Contains(t, html, "window.print()")
}

func TestRenderRevenueReport(t *testing.T) {
	revenues := []models.Revenue{
		{Date: "2024-03-16", Amount: 4.5},
		{Date: "2024-03-15", Amount: 6.0},
	}

	html, err := RenderRevenueReport("du 2024-03-15 au 2024-03-16", revenues)
	require.NoError(t, err)

	assert.Contains(t, html, "Rapport de Revenus")
	assert.Contains(t, html, "du 2024-03-15 au 2024-03-16")
	assert.Contains(t, html, "10.50 €")
	assert.Contains(t, html, "5.25 €")
	assert.Contains(t, html, "2024-03-16")
	assert.Contains(t, html, "4.50 €")
}

func TestRenderRevenueReportEmptyPeriod(t *testing.T) {
	html, err := RenderRevenueReport("toutes périodes", nil)
	require.NoError(t, err)

	assert.Contains(t, html, "0.00 €")
}

func TestThankYouMessage(t *testing.T) {
	msg := ThankYouMessage()
	assert.Contains(t, thankYouMessages, msg)
}
