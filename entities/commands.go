package entities

// SendOrderStatistics asks for a revenue summary of one day's
// payment-completed orders to be mailed to the given address.
type SendOrderStatistics struct {
	// Date in "2006-01-02" form, interpreted as a whole day.
	Date  string `json:"date"`
	Email string `json:"email"`
}
