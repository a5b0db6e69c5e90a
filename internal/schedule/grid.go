package schedule

// SlotState is the availability state of a single display slot
type SlotState string

const (
	SlotAvailable SlotState = "available"
	SlotBooked    SlotState = "booked"
)

// TimeSlot is one hour-of-day entry in a court's display grid
type TimeSlot struct {
	Hour  int       `json:"hour"`
	State SlotState `json:"state"`
}

// Window is the half-open range of hours [StartHour, EndHour) rendered in a
// court's slot grid, independent of the court's actual opening hours.
type Window struct {
	StartHour int
	EndHour   int
}

// DefaultWindow is the observed display window: 20 slots starting at hour 6.
// Hours 24 and 25 render the after-midnight tail of the grid.
var DefaultWindow = Window{StartHour: 6, EndHour: 26}

// BuildGrid produces one TimeSlot per hour in the window for a single court
// on a single day. An hour is booked iff any booking's hour set contains it.
// An empty booking list yields an all-available grid.
func BuildGrid(bookings []Booking, w Window) []TimeSlot {
	if w.EndHour <= w.StartHour {
		return nil
	}

	slots := make([]TimeSlot, 0, w.EndHour-w.StartHour)
	for hour := w.StartHour; hour < w.EndHour; hour++ {
		state := SlotAvailable
		for _, b := range bookings {
			if b.Hours.Contains(hour) {
				state = SlotBooked
				break
			}
		}
		slots = append(slots, TimeSlot{Hour: hour, State: state})
	}
	return slots
}

// ActiveBooking finds the booking occupying currentHour, if any. When several
// bookings claim the same hour the first match in input order wins; the
// returned claimant count lets the caller log the inconsistency instead of
// resolving it silently.
func ActiveBooking(bookings []Booking, currentHour int) (*Booking, int) {
	var active *Booking
	claims := 0
	for i := range bookings {
		if bookings[i].Hours.Contains(currentHour) {
			if active == nil {
				active = &bookings[i]
			}
			claims++
		}
	}
	return active, claims
}
