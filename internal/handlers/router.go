package handlers

import (
	"github.com/gin-gonic/gin"

	"backend/internal/store"
)

// NewRouter wires every route against the injected stores. Tests construct it
// with the in-memory store implementations.
func NewRouter(products store.ProductStore, users store.UserStore) *gin.Engine {
	r := gin.Default()

	r.GET("/products", GetProducts(products))
	r.GET("/products/location", GetProductsByLocation(products))
	r.GET("/products/:id", GetProductByID(products))
	r.POST("/products", CreateProduct(products))
	r.DELETE("/products/:id", DeleteProduct(products))

	r.POST("/users/register", RegisterUser(users))
	r.GET("/users/find", FindUsers(users))
	r.GET("/find_by_location", FindUsersByLocation(users))

	return r
}
