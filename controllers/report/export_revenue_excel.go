package reportcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	"github.com/hamzadaoud/rouge-perle-gestion/services/cafe"
)

// ExportRevenueToExcel writes the revenue report and the top-seller
// ranking as a two-sheet workbook download.
func ExportRevenueToExcel(svc *cafe.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		revenues, err := svc.Revenues()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute revenues"})
			return
		}
		products, err := svc.TopSellingProducts()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute top products"})
			return
		}

		file := xlsx.NewFile()

		revenueSheet, err := file.AddSheet("Revenus")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}
		headerRow := revenueSheet.AddRow()
		for _, h := range []string{"Date", "Montant"} {
			headerRow.AddCell().SetValue(h)
		}
		var total float64
		for _, r := range revenues {
			row := revenueSheet.AddRow()
			row.AddCell().SetValue(r.Date)
			row.AddCell().SetValue(r.Amount)
			total += r.Amount
		}
		totalRow := revenueSheet.AddRow()
		totalRow.AddCell().SetValue("Total")
		totalRow.AddCell().SetValue(total)

		productSheet, err := file.AddSheet("Meilleures Ventes")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}
		headerRow = productSheet.AddRow()
		for _, h := range []string{"Produit", "Quantité", "Revenu"} {
			headerRow.AddCell().SetValue(h)
		}
		for _, p := range products {
			row := productSheet.AddRow()
			row.AddCell().SetValue(p.Name)
			row.AddCell().SetValue(p.Quantity)
			row.AddCell().SetValue(p.Revenue)
		}

		c.Header("Content-Disposition", "attachment; filename=revenus.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
