package domain

// Receipt reports a successfully processed order together with the book's
// updated revenue, so a caller does not have to re-read it.
type Receipt struct {
	Order   Order
	Total   Money
	Revenue Money
	Message string
}
