package pages

import (
	"strconv"
	"strings"
)

// Products (inventory) page locators.
const (
	productsTitle       = ".title"
	inventoryItem       = ".inventory_item"
	addToCartAny        = "[id*='add-to-cart']"
	addToCartBackpack   = "#add-to-cart-sauce-labs-backpack"
	addToCartBikeLight  = "#add-to-cart-sauce-labs-bike-light"
	shoppingCartBadge   = ".shopping_cart_badge"
	shoppingCartLink    = ".shopping_cart_link"
	productSortDropdown = ".product_sort_container"
	burgerMenuButton    = "#react-burger-menu-btn"
	logoutSidebarLink   = "#logout_sidebar_link"
)

// ProductsPage models the inventory screen shown after login.
type ProductsPage struct {
	*Page
}

// NewProductsPage creates a ProductsPage.
func NewProductsPage(p *Page) *ProductsPage {
	return &ProductsPage{Page: p}
}

// IsLoaded reports whether the inventory screen is up.
func (pp *ProductsPage) IsLoaded() bool {
	if !pp.IsPresent(productsTitle, presenceWait) {
		return false
	}
	title, err := pp.Text(productsTitle)
	return err == nil && strings.Contains(title, "Products")
}

// ProductCount returns the number of items listed on the page.
func (pp *ProductsPage) ProductCount() (int, error) {
	return pp.Count(inventoryItem)
}

// AddToCart adds a named product to the cart. Unknown names click the
// first available add-to-cart button.
func (pp *ProductsPage) AddToCart(productName string) error {
	switch strings.ToLower(productName) {
	case "backpack":
		return pp.Click(addToCartBackpack)
	case "bike light":
		return pp.Click(addToCartBikeLight)
	default:
		return pp.Click(addToCartAny)
	}
}

// CartBadgeCount returns the number shown on the cart badge, 0 when the
// badge is absent.
func (pp *ProductsPage) CartBadgeCount() int {
	if !pp.IsPresent(shoppingCartBadge, presenceWait) {
		return 0
	}
	text, err := pp.Text(shoppingCartBadge)
	if err != nil {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0
	}
	return n
}

// GoToCart opens the cart screen.
func (pp *ProductsPage) GoToCart() error {
	return pp.Click(shoppingCartLink)
}

// Logout opens the burger menu and clicks the logout link.
func (pp *ProductsPage) Logout() error {
	if err := pp.Click(burgerMenuButton); err != nil {
		return err
	}
	return pp.Click(logoutSidebarLink)
}

// SortProducts picks a sort option by its value, e.g. "za" or "lohi".
func (pp *ProductsPage) SortProducts(value string) error {
	return pp.SelectOption(productSortDropdown, value)
}
