package ports

// Clipboard receives text destined for the system clipboard
type Clipboard interface {
	WriteAll(text string) error
}
