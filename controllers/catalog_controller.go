package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fruit-order-service/catalog"
	"fruit-order-service/models"
)

type CatalogController struct{}

func NewCatalogController() *CatalogController {
	return &CatalogController{}
}

// GetProducts 支持 ?search= ?category= ?bestsellers=true 三种过滤
func (ctl *CatalogController) GetProducts(c *gin.Context) {
	if query := c.Query("search"); query != "" {
		c.JSON(http.StatusOK, catalog.SearchProducts(query))
		return
	}

	if category := c.Query("category"); category != "" {
		switch models.ProductCategory(category) {
		case models.CategorySeasonal, models.CategoryImported, models.CategoryExotic:
			c.JSON(http.StatusOK, catalog.ByCategory(models.ProductCategory(category)))
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown category"})
		}
		return
	}

	if c.Query("bestsellers") == "true" {
		c.JSON(http.StatusOK, catalog.BestSellers())
		return
	}

	c.JSON(http.StatusOK, catalog.AllProducts())
}

func (ctl *CatalogController) GetProduct(c *gin.Context) {
	product, ok := catalog.GetProductByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	c.JSON(http.StatusOK, product)
}

func (ctl *CatalogController) GetOffers(c *gin.Context) {
	c.JSON(http.StatusOK, catalog.Offers())
}
