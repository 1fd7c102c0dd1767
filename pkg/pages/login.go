package pages

// Login page locators.
const (
	loginUsernameField = "#user-name"
	loginPasswordField = "#password"
	loginButton        = "#login-button"
	loginErrorBox      = "[data-test='error']"
	loginErrorButton   = ".error-button"
	loginLogo          = ".login_logo"
)

// LoginPage models the demo site's login screen.
type LoginPage struct {
	*Page
}

// NewLoginPage creates a LoginPage.
func NewLoginPage(p *Page) *LoginPage {
	return &LoginPage{Page: p}
}

// Open navigates to the login screen.
func (l *LoginPage) Open() error {
	return l.Page.Open("/")
}

// EnterUsername types into the username field.
func (l *LoginPage) EnterUsername(username string) error {
	return l.Type(loginUsernameField, username)
}

// EnterPassword types into the password field.
func (l *LoginPage) EnterPassword(password string) error {
	return l.Type(loginPasswordField, password)
}

// ClickLogin clicks the login button.
func (l *LoginPage) ClickLogin() error {
	return l.Click(loginButton)
}

// Login fills in the credentials and submits the form.
func (l *LoginPage) Login(username, password string) error {
	if err := l.EnterUsername(username); err != nil {
		return err
	}
	if err := l.EnterPassword(password); err != nil {
		return err
	}
	return l.ClickLogin()
}

// ErrorMessage returns the displayed login error, or "" when none shows.
func (l *LoginPage) ErrorMessage() string {
	if !l.IsErrorDisplayed() {
		return ""
	}
	text, err := l.Text(loginErrorBox)
	if err != nil {
		return ""
	}
	return text
}

// IsErrorDisplayed reports whether the error box is shown.
func (l *LoginPage) IsErrorDisplayed() bool {
	return l.IsPresent(loginErrorBox, presenceWait)
}

// IsLoaded reports whether the login screen is up, keyed on the logo.
func (l *LoginPage) IsLoaded() bool {
	return l.IsPresent(loginLogo, presenceWait)
}

// ClearError dismisses a displayed login error.
func (l *LoginPage) ClearError() error {
	if !l.IsPresent(loginErrorButton, presenceWait) {
		return nil
	}
	return l.Click(loginErrorButton)
}
