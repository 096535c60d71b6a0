package tui

// UI Text Constants
const (
	TextTitle   = "Advanced Web Applications"
	TextSpinner = "Please wait..."
	TextFooter  = "Bloom Institute of Technology 2024"

	// Navigation
	TextNavLogin    = "Login"
	TextNavArticles = "Articles"

	// Headings
	TextLoginHeading  = "Login"
	TextCreateHeading = "Create Article"
	TextEditHeading   = "Edit Article"
	TextListHeading   = "Articles"
	TextNoArticles    = "No articles yet"

	// Help
	TextHelpGlobal   = "F1 login screen | F2 articles screen | Ctrl+O logout | Ctrl+C quit"
	TextHelpLogin    = "Tab switch field | Enter submit"
	TextHelpList     = "↑/↓ select | e edit | d delete | r refresh | Tab form"
	TextHelpForm     = "Tab next field | ←/→ topic | Enter submit | Esc back to list"
	TextHelpFormEdit = "Tab next field | ←/→ topic | Enter submit | Esc cancel edit"
)
