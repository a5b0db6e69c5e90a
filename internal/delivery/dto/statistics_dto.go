package dto

// RevenueDayResponse is one day of aggregated revenue for the owner dashboard.
type RevenueDayResponse struct {
	Date         string `json:"date"` // Format: YYYY-MM-DD
	DisplayDate  string `json:"display_date"`
	BookingCount int64  `json:"booking_count"`
	Total        string `json:"total"`
	DisplayTotal string `json:"display_total"`
}

type RevenueResponse struct {
	From              string               `json:"from"`
	To                string               `json:"to"`
	Days              []RevenueDayResponse `json:"days"`
	GrandTotal        string               `json:"grand_total"`
	DisplayGrandTotal string               `json:"display_grand_total"`
	TotalBookings     int64                `json:"total_bookings"`
}
