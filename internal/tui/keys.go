package tui

// Key bindings shared by the views.
const (
	keyEnter     = "enter"
	keyEsc       = "esc"
	keyBackspace = "backspace"
	keyQuit      = "q"
	keyCtrlC     = "ctrl+c"
	keySlash     = "/"
	keyMore      = "m"
	keyTypeNext  = "t"
	keyTypePrev  = "T"
)

// Layout.
const (
	defaultWidth  = 80
	defaultHeight = 24
	minHeight     = 3

	// chromeHeight is the rows taken by the shell header and footer.
	chromeHeight = 4
	// listChromeHeight is the rows taken by the search bar and status line.
	listChromeHeight = 4

	searchCharLimit = 64
	searchWidth     = 30
)
