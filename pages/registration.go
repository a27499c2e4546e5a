package pages

import (
	"fmt"

	"github.com/playwright-community/playwright-go"

	"github.com/apexqa/bankwright/builders"
)

// RegistrationPage models the demo bank's "Signing up is easy!" page.
type RegistrationPage struct {
	BasePage
}

// NewRegistrationPage creates the page object. The page is not navigated
// until Open.
func NewRegistrationPage(page playwright.Page, baseURL string) *RegistrationPage {
	return &RegistrationPage{BasePage: NewBasePage(page, baseURL)}
}

// Open navigates to the registration form.
func (p *RegistrationPage) Open() error {
	return p.Goto("/register")
}

// Register fills the whole form from the customer and submits it.
func (p *RegistrationPage) Register(c builders.Customer) error {
	for field, value := range c.FormValues() {
		if err := p.fill("#"+field, value); err != nil {
			return fmt.Errorf("registration: fill %s: %w", field, err)
		}
	}
	if err := p.click("#register-submit"); err != nil {
		return err
	}
	// Settle the resulting navigation so callers can read the outcome page.
	return p.Page().WaitForLoadState()
}

// WelcomeTitle returns the post-registration heading, e.g. "Welcome janedoe".
func (p *RegistrationPage) WelcomeTitle() (string, error) {
	return p.text("#welcome-title")
}

// WelcomeMessage returns the post-registration confirmation text.
func (p *RegistrationPage) WelcomeMessage() (string, error) {
	return p.text("#welcome-message")
}

// FieldError returns the validation message rendered for a form field, or ""
// when the field has none.
func (p *RegistrationPage) FieldError(field string) (string, error) {
	selector := fmt.Sprintf(`span.error[data-field=%q]`, field)
	shown, err := p.visible(selector)
	if err != nil || !shown {
		return "", err
	}
	return p.text(selector)
}
