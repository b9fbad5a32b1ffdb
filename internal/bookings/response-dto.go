package bookings

type TicketCounts struct {
	Standard int `json:"standard"`
	VIP      int `json:"vip"`
}

// BookingConfirmation is returned for a committed booking
type BookingConfirmation struct {
	BookingReference string       `json:"bookingReference"`
	TotalAmount      float64      `json:"totalAmount"`
	EventTitle       string       `json:"eventTitle"`
	EventDate        string       `json:"eventDate"`
	Tickets          TicketCounts `json:"tickets"`
}
