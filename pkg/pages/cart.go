package pages

import "strings"

// Cart page locators.
const (
	cartTitle              = ".title"
	cartItem               = ".cart_item"
	checkoutButton         = "#checkout"
	continueShoppingButton = "#continue-shopping"
	cartRemoveButton       = "[id*='remove']"
)

// CartPage models the shopping cart screen.
type CartPage struct {
	*Page
}

// NewCartPage creates a CartPage.
func NewCartPage(p *Page) *CartPage {
	return &CartPage{Page: p}
}

// IsLoaded reports whether the cart screen is up.
func (cp *CartPage) IsLoaded() bool {
	if !cp.IsPresent(cartTitle, presenceWait) {
		return false
	}
	title, err := cp.Text(cartTitle)
	return err == nil && strings.Contains(title, "Your Cart")
}

// ItemCount returns the number of items in the cart.
func (cp *CartPage) ItemCount() (int, error) {
	return cp.Count(cartItem)
}

// ProceedToCheckout clicks the checkout button.
func (cp *CartPage) ProceedToCheckout() error {
	return cp.Click(checkoutButton)
}

// ContinueShopping returns to the inventory screen.
func (cp *CartPage) ContinueShopping() error {
	return cp.Click(continueShoppingButton)
}

// RemoveItem removes the first item from the cart.
func (cp *CartPage) RemoveItem() error {
	return cp.Click(cartRemoveButton)
}
