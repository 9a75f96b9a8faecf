package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/jsonschema-go/jsonschema"

	"zellige/models"
)

// SchemaHandler handles GET /schema. It exports JSON Schema documents for
// the persisted entities, for the database viewer and tooling. Generation
// failures are reported in the body rather than as an HTTP error.
func SchemaHandler(c *gin.Context) {
	bookingSchema, err := jsonschema.For[models.Booking](nil)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"error": err.Error()})
		return
	}
	userSchema, err := jsonschema.For[models.User](nil)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"error": err.Error()})
		return
	}
	productSchema, err := jsonschema.For[models.Product](nil)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"booking": bookingSchema,
		"user":    userSchema,
		"product": productSchema,
	})
}
