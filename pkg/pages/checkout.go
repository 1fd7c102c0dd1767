package pages

import (
	"fmt"
	"strconv"
	"strings"
)

// Checkout locators, split by step.
const (
	// Step 1 - your information
	checkoutFirstNameField  = "#first-name"
	checkoutLastNameField   = "#last-name"
	checkoutPostalCodeField = "#postal-code"
	checkoutContinueButton  = "#continue"
	checkoutCancelButton    = "#cancel"
	checkoutErrorBox        = "[data-test='error']"

	// Step 2 - overview
	checkoutSummaryContainer = "#checkout_summary_container"
	checkoutItemTotalLabel   = ".summary_subtotal_label"
	checkoutTaxLabel         = ".summary_tax_label"
	checkoutTotalLabel       = ".summary_total_label"
	checkoutFinishButton     = "#finish"

	// Step 3 - complete
	checkoutCompleteHeader = ".complete-header"
	checkoutCompleteText   = ".complete-text"
	checkoutBackHomeButton = "#back-to-products"
)

// CheckoutPage models the three-step checkout flow.
type CheckoutPage struct {
	*Page
}

// NewCheckoutPage creates a CheckoutPage.
func NewCheckoutPage(p *Page) *CheckoutPage {
	return &CheckoutPage{Page: p}
}

// FillInformation fills in the step-1 buyer information.
func (co *CheckoutPage) FillInformation(firstName, lastName, postalCode string) error {
	if err := co.Type(checkoutFirstNameField, firstName); err != nil {
		return err
	}
	if err := co.Type(checkoutLastNameField, lastName); err != nil {
		return err
	}
	return co.Type(checkoutPostalCodeField, postalCode)
}

// Continue advances from step 1 to the overview.
func (co *CheckoutPage) Continue() error {
	return co.Click(checkoutContinueButton)
}

// Cancel aborts the checkout.
func (co *CheckoutPage) Cancel() error {
	return co.Click(checkoutCancelButton)
}

// ErrorMessage returns a step-1 validation error, or "" when none shows.
func (co *CheckoutPage) ErrorMessage() string {
	if !co.IsPresent(checkoutErrorBox, presenceWait) {
		return ""
	}
	text, err := co.Text(checkoutErrorBox)
	if err != nil {
		return ""
	}
	return text
}

// IsOverviewLoaded reports whether the step-2 summary is up.
func (co *CheckoutPage) IsOverviewLoaded() bool {
	return co.IsPresent(checkoutSummaryContainer, presenceWait)
}

// ItemTotal returns the step-2 item total.
func (co *CheckoutPage) ItemTotal() (float64, error) {
	return co.amountFrom(checkoutItemTotalLabel)
}

// Tax returns the step-2 tax amount.
func (co *CheckoutPage) Tax() (float64, error) {
	return co.amountFrom(checkoutTaxLabel)
}

// Total returns the step-2 grand total.
func (co *CheckoutPage) Total() (float64, error) {
	return co.amountFrom(checkoutTotalLabel)
}

// amountFrom extracts the "$xx.xx" amount out of a summary label.
func (co *CheckoutPage) amountFrom(selector string) (float64, error) {
	text, err := co.Text(selector)
	if err != nil {
		return 0, err
	}
	_, amount, found := strings.Cut(text, "$")
	if !found {
		return 0, fmt.Errorf("no amount in label %q", text)
	}
	return strconv.ParseFloat(strings.TrimSpace(amount), 64)
}

// Finish completes the order from the overview.
func (co *CheckoutPage) Finish() error {
	return co.Click(checkoutFinishButton)
}

// IsComplete reports whether the step-3 confirmation is shown.
func (co *CheckoutPage) IsComplete() bool {
	if !co.IsPresent(checkoutCompleteHeader, presenceWait) {
		return false
	}
	header, err := co.Text(checkoutCompleteHeader)
	return err == nil && strings.Contains(header, "Thank you for your order!")
}

// CompletionMessage returns the step-3 confirmation text, or "" when the
// flow has not completed.
func (co *CheckoutPage) CompletionMessage() string {
	if !co.IsPresent(checkoutCompleteText, presenceWait) {
		return ""
	}
	text, err := co.Text(checkoutCompleteText)
	if err != nil {
		return ""
	}
	return text
}

// BackToHome returns to the inventory screen after completion.
func (co *CheckoutPage) BackToHome() error {
	return co.Click(checkoutBackHomeButton)
}
