package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"ticket-rush-cli/model"
	"ticket-rush-cli/sim"
)

// visibleOffers filters the listed inventory against the current demand state
// and the price ceiling. An offer disappears when it costs too much, when its
// section has sold out, or when its stable rank exceeds the section's
// remaining availability. Cheapest first.
func visibleOffers(offers []model.TicketOffer, availability sim.Availability, maxPrice float64) []model.TicketOffer {
	var visible []model.TicketOffer
	for _, offer := range offers {
		if maxPrice > 0 && offer.Price > maxPrice {
			continue
		}
		fraction := sim.Of(availability, offer.Section)
		if fraction <= 0 {
			continue
		}
		if model.OfferRank(offer.ID) > fraction {
			continue
		}
		visible = append(visible, offer)
	}
	sort.SliceStable(visible, func(i, j int) bool {
		return visible[i].Price < visible[j].Price
	})
	return visible
}

var (
	panelTitleStyle = lipgloss.NewStyle().Bold(true)
	offerStyle      = lipgloss.NewStyle()
	priceStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	soldOutMsgStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	summaryStyle    = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("4")).
			Padding(0, 1)
)

// renderTicketPanel draws the listing column: the selected-seat summary when
// one is picked, otherwise the filtered offers.
func renderTicketPanel(offers []model.TicketOffer, availability sim.Availability, maxPrice float64, summary *model.SeatSummary) string {
	var b strings.Builder

	if summary != nil {
		b.WriteString(panelTitleStyle.Render("Your Seat"))
		b.WriteString("\n")
		b.WriteString(summaryStyle.Render(fmt.Sprintf(
			"Sec %s • Row %d • Seat %d\n%s\nPrice  CA $%.2f\nFees   CA $%.2f\nTotal  CA $%.2f",
			summary.Section, summary.Row, summary.Number,
			summary.Type,
			summary.Price, summary.Fee, summary.Subtotal())))
		b.WriteString("\n\n")
	}

	visible := visibleOffers(offers, availability, maxPrice)
	b.WriteString(panelTitleStyle.Render(fmt.Sprintf("Listed Tickets (%d)", len(visible))))
	b.WriteString("\n")
	b.WriteString(hint(fmt.Sprintf("Max price CA $%.0f • [ and ] adjust", maxPrice)))
	b.WriteString("\n\n")

	if len(visible) == 0 {
		b.WriteString(soldOutMsgStyle.Render("No tickets match your filters."))
		b.WriteString("\n")
		b.WriteString(hint("Raise the max price or pick a seat on the map."))
		return b.String()
	}

	for _, offer := range visible {
		line := fmt.Sprintf("Sec %-5s Row %-3s %s  %s",
			offer.Section, offer.Row,
			priceStyle.Render(fmt.Sprintf("CA $%.2f", offer.Price)),
			hint(fmt.Sprintf("+%.2f fees", offer.Fee)))
		b.WriteString(offerStyle.Render(line))
		b.WriteString("\n")
		b.WriteString(hint("  " + offer.Type))
		b.WriteString("\n")
	}
	return b.String()
}
