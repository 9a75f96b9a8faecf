package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"zellige/models"
)

// serviceCatalog is the fixed service list. Initialized once, never mutated.
var serviceCatalog = []models.Service{
	{ID: "cut", Name: "Classic Cut", Price: 120, Duration: 30, Desc: "Precision haircut tailored to your style."},
	{ID: "beard", Name: "Beard Trim", Price: 80, Duration: 20, Desc: "Clean lines and shape with hot towel finish."},
	{ID: "combo", Name: "Cut + Beard", Price: 180, Duration: 60, Desc: "Complete grooming session."},
	{ID: "fade", Name: "Skin Fade", Price: 140, Duration: 45, Desc: "Sharp fade with detailed finish."},
}

// shopCatalog is the fixed shop identity. Initialized once, never mutated.
var shopCatalog = models.ShopInfo{
	Name:    "Zellige Barber",
	Tagline: "Crafted Cuts • Moroccan Soul",
	Address: "Rue Bab Doukkala, Marrakech, Morocco",
	Phone:   "+212 6 12 34 56 78",
	Hours: models.ShopHours{
		MonFri: "10:00 - 20:00",
		Sat:    "10:00 - 18:00",
		Sun:    "Closed",
	},
}

// RootHandler handles GET /.
func RootHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Morocco Barber API running"})
}

// HelloHandler handles GET /api/hello.
func HelloHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Welcome to the Moroccan Barber backend!"})
}

// ListServicesHandler handles GET /api/services.
func ListServicesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, serviceCatalog)
}

// ShopInfoHandler handles GET /api/shop.
func ShopInfoHandler(c *gin.Context) {
	c.JSON(http.StatusOK, shopCatalog)
}
