package apiclient

import (
	"fmt"
	"net/http"

	"shopqa/internal/models"
)

// ProductsAPI wraps the /products endpoints.
type ProductsAPI struct {
	client *Client
}

// NewProductsAPI creates a ProductsAPI on top of the given client.
func NewProductsAPI(client *Client) *ProductsAPI {
	return &ProductsAPI{client: client}
}

// GetAllProducts fetches the whole catalog.
func (a *ProductsAPI) GetAllProducts() (*http.Response, error) {
	return a.client.Get("/products")
}

// UpdateProductStock overwrites a product's stock.
func (a *ProductsAPI) UpdateProductStock(productID uint, newStock int) (*http.Response, error) {
	return a.client.Put(
		fmt.Sprintf("/products/%d/stock", productID),
		map[string]int{"stock": newStock},
	)
}

// GetProductByID finds a product by scanning the catalog listing; there is
// no single-product endpoint on the server. Returns nil when absent.
func (a *ProductsAPI) GetProductByID(productID uint) (*models.Product, error) {
	resp, err := a.GetAllProducts()
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("unexpected status %d listing products", resp.StatusCode)
	}

	var listing struct {
		Products []models.Product `json:"products"`
	}
	if err := DecodeJSON(resp, &listing); err != nil {
		return nil, err
	}
	for i := range listing.Products {
		if listing.Products[i].ID == productID {
			return &listing.Products[i], nil
		}
	}
	return nil, nil
}
