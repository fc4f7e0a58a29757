package catalogcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hamzadaoud/rouge-perle-gestion/models"
	"github.com/hamzadaoud/rouge-perle-gestion/services/cafe"
)

type DrinkRequest struct {
	Name        string  `json:"name" binding:"required"`
	Price       float64 `json:"price" binding:"required"`
	Category    string  `json:"category" binding:"required"`
	Description string  `json:"description"`
}

// GetDrinks returns the catalog, seeding it on first access.
func GetDrinks(svc *cafe.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		drinks, err := svc.Drinks()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch drinks"})
			return
		}
		c.JSON(http.StatusOK, drinks)
	}
}

// CreateDrink adds a product and returns the resulting catalog.
func CreateDrink(svc *cafe.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req DrinkRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name, price and category are required"})
			return
		}

		drinks, err := svc.AddDrink(models.Drink{
			Name:        req.Name,
			Price:       req.Price,
			Category:    req.Category,
			Description: req.Description,
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create drink"})
			return
		}
		c.JSON(http.StatusCreated, drinks)
	}
}

// UpdateDrink replaces the product whose id matches. An unknown id
// returns the unchanged catalog.
func UpdateDrink(svc *cafe.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Drink ID is required"})
			return
		}

		var req DrinkRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name, price and category are required"})
			return
		}

		drinks, err := svc.UpdateDrink(models.Drink{
			ID:          id,
			Name:        req.Name,
			Price:       req.Price,
			Category:    req.Category,
			Description: req.Description,
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update drink"})
			return
		}
		c.JSON(http.StatusOK, drinks)
	}
}

// DeleteDrink removes the product whose id matches. An unknown id
// returns the unchanged catalog.
func DeleteDrink(svc *cafe.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Drink ID is required"})
			return
		}

		drinks, err := svc.DeleteDrink(id)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete drink"})
			return
		}
		c.JSON(http.StatusOK, drinks)
	}
}
