package model

// FeeRate is the flat service fee charged on every seat price.
const FeeRate = 0.2

// SeatSummary is the event emitted when a seat is picked on the map; the
// ticket list renders it and the checkout flow consumes it.
type SeatSummary struct {
	ID      string
	Section string
	Row     int
	Number  int
	Price   float64
	Fee     float64
	Type    string
}

// Subtotal is the price plus fees.
func (s SeatSummary) Subtotal() float64 {
	return s.Price + s.Fee
}

// TicketOffer is a pre-listed resale offer shown in the ticket list next to
// the map.
type TicketOffer struct {
	ID      int
	Section string
	Row     string
	Price   float64
	Fee     float64
	Type    string
}

// Offers is the fixed demo inventory of listed tickets.
func Offers() []TicketOffer {
	return []TicketOffer{
		{ID: 1, Section: "W101", Row: "7", Price: 549.50, Fee: 109.90, Type: "Standard Ticket"},
		{ID: 2, Section: "W102", Row: "8", Price: 549.50, Fee: 109.90, Type: "Standard Ticket"},
		{ID: 3, Section: "N113", Row: "12", Price: 450.00, Fee: 75.20, Type: "Resale Ticket"},
		{ID: 4, Section: "N114", Row: "15", Price: 420.50, Fee: 70.10, Type: "Standard Ticket"},
		{ID: 5, Section: "E120", Row: "22", Price: 380.00, Fee: 65.50, Type: "Standard Ticket"},
		{ID: 6, Section: "S130", Row: "5", Price: 143.00, Fee: 25.00, Type: "Standard Ticket"},
		{ID: 7, Section: "S128", Row: "6", Price: 143.00, Fee: 25.00, Type: "Standard Ticket"},
	}
}

// OfferRank gives each offer a stable pseudo-random value in [0,1) used to
// fade listings out as section availability drops: once the section fraction
// falls below the rank the offer disappears from the list.
func OfferRank(offerID int) float64 {
	return float64((offerID*9301+49297)%233280) / 233280
}

// Price slider limits for the max-price filter.
const (
	MinTicketPrice = 143
	MaxTicketPrice = 1221
)
