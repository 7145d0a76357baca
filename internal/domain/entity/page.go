package entity

// PageID identifies an open page (a browser tab).
type PageID string

// Page is an open page as seen by the background coordinator.
type Page struct {
	ID     PageID
	URL    string
	Title  string
	Active bool
}
