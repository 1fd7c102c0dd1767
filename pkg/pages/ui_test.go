package pages_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopqa/internal/config"
	"shopqa/pkg/pages"
)

// newUIPage starts a headless browser against the configured demo site.
// The UI suite needs Chrome and network access, so it only runs when
// UI_TESTS=1 is set.
func newUIPage(t *testing.T) *pages.Page {
	t.Helper()
	if os.Getenv("UI_TESTS") == "" {
		t.Skip("set UI_TESTS=1 to run browser tests")
	}

	cfg := config.Load()
	ctx, cancel := pages.NewBrowser(true)
	t.Cleanup(cancel)

	page := pages.NewPage(ctx, cfg.BaseURL, cfg.ExplicitWait)
	screenshotOnFailure(t, page)
	return page
}

// screenshotOnFailure captures the browser state when a test fails. The
// screenshot is diagnostic only and never changes the test outcome.
func screenshotOnFailure(t *testing.T, page *pages.Page) {
	t.Cleanup(func() {
		if !t.Failed() {
			return
		}
		if err := os.MkdirAll("screenshots", 0o755); err != nil {
			t.Logf("Failed to create screenshots dir: %v", err)
			return
		}
		name := strings.ReplaceAll(t.Name(), "/", "_")
		path := filepath.Join("screenshots", name+"_failed.png")
		if err := page.Screenshot(path); err != nil {
			t.Logf("Failed to save screenshot: %v", err)
			return
		}
		t.Logf("Screenshot saved: %s", path)
	})
}

func loginAsStandardUser(t *testing.T, page *pages.Page) {
	t.Helper()
	cfg := config.Load()
	username, password := cfg.Credentials("standard")

	loginPage := pages.NewLoginPage(page)
	require.NoError(t, loginPage.Open())
	require.NoError(t, loginPage.Login(username, password))
}

func TestLoginPageElements(t *testing.T) {
	page := newUIPage(t)
	loginPage := pages.NewLoginPage(page)

	require.NoError(t, loginPage.Open())
	assert.True(t, loginPage.IsLoaded(), "login page should be loaded")
}

func TestSuccessfulLogin(t *testing.T) {
	page := newUIPage(t)
	loginAsStandardUser(t, page)

	productsPage := pages.NewProductsPage(page)
	assert.True(t, productsPage.IsLoaded(), "products page should load after login")

	url, err := page.CurrentURL()
	require.NoError(t, err)
	assert.Contains(t, url, "inventory.html")
}

func TestLoginWithInvalidCredentials(t *testing.T) {
	page := newUIPage(t)
	loginPage := pages.NewLoginPage(page)

	require.NoError(t, loginPage.Open())
	require.NoError(t, loginPage.Login("invalid_username", "invalid_password"))

	assert.True(t, loginPage.IsErrorDisplayed())
	assert.Contains(t, loginPage.ErrorMessage(),
		"Username and password do not match any user in this service")
}

func TestLoginWithLockedUser(t *testing.T) {
	page := newUIPage(t)
	cfg := config.Load()
	username, password := cfg.Credentials("locked")

	loginPage := pages.NewLoginPage(page)
	require.NoError(t, loginPage.Open())
	require.NoError(t, loginPage.Login(username, password))

	assert.True(t, loginPage.IsErrorDisplayed())
	assert.Contains(t, loginPage.ErrorMessage(), "Sorry, this user has been locked out.")
}

func TestProductsListing(t *testing.T) {
	page := newUIPage(t)
	loginAsStandardUser(t, page)

	productsPage := pages.NewProductsPage(page)
	require.True(t, productsPage.IsLoaded())

	count, err := productsPage.ProductCount()
	require.NoError(t, err)
	assert.Equal(t, 6, count)

	require.NoError(t, productsPage.SortProducts("za"))
	count, err = productsPage.ProductCount()
	require.NoError(t, err)
	assert.Equal(t, 6, count, "sorting must not change the item count")
}

func TestCartFlow(t *testing.T) {
	page := newUIPage(t)
	loginAsStandardUser(t, page)

	productsPage := pages.NewProductsPage(page)
	require.NoError(t, productsPage.AddToCart("backpack"))
	assert.Equal(t, 1, productsPage.CartBadgeCount())

	require.NoError(t, productsPage.GoToCart())
	cartPage := pages.NewCartPage(page)
	require.True(t, cartPage.IsLoaded())

	count, err := cartPage.ItemCount()
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	require.NoError(t, cartPage.ContinueShopping())
	assert.True(t, productsPage.IsLoaded())
}

func TestCheckoutComplete(t *testing.T) {
	page := newUIPage(t)
	loginAsStandardUser(t, page)

	productsPage := pages.NewProductsPage(page)
	require.NoError(t, productsPage.AddToCart("backpack"))
	require.NoError(t, productsPage.AddToCart("bike light"))
	require.NoError(t, productsPage.GoToCart())

	cartPage := pages.NewCartPage(page)
	require.True(t, cartPage.IsLoaded())
	require.NoError(t, cartPage.ProceedToCheckout())

	checkoutPage := pages.NewCheckoutPage(page)
	require.NoError(t, checkoutPage.FillInformation("Jordan", "Doe", "12345"))
	require.NoError(t, checkoutPage.Continue())
	require.True(t, checkoutPage.IsOverviewLoaded())

	itemTotal, err := checkoutPage.ItemTotal()
	require.NoError(t, err)
	assert.InDelta(t, 29.99+9.99, itemTotal, 0.001)

	tax, err := checkoutPage.Tax()
	require.NoError(t, err)
	total, err := checkoutPage.Total()
	require.NoError(t, err)
	assert.InDelta(t, itemTotal+tax, total, 0.001)

	require.NoError(t, checkoutPage.Finish())
	assert.True(t, checkoutPage.IsComplete())
	assert.NotEmpty(t, checkoutPage.CompletionMessage())
}

func TestCheckoutMissingInformation(t *testing.T) {
	page := newUIPage(t)
	loginAsStandardUser(t, page)

	productsPage := pages.NewProductsPage(page)
	require.NoError(t, productsPage.AddToCart("backpack"))
	require.NoError(t, productsPage.GoToCart())

	cartPage := pages.NewCartPage(page)
	require.NoError(t, cartPage.ProceedToCheckout())

	// Submitting step 1 without any information surfaces a field error.
	checkoutPage := pages.NewCheckoutPage(page)
	require.NoError(t, checkoutPage.Continue())
	assert.Contains(t, checkoutPage.ErrorMessage(), "First Name is required")
}

func TestLogout(t *testing.T) {
	page := newUIPage(t)
	loginAsStandardUser(t, page)

	productsPage := pages.NewProductsPage(page)
	require.True(t, productsPage.IsLoaded())
	require.NoError(t, productsPage.Logout())

	loginPage := pages.NewLoginPage(page)
	assert.True(t, loginPage.IsLoaded(), "logout should return to the login page")
}
