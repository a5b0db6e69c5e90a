package schedule

import "court-booking-backend/internal/domain/entity"

// StatusBadge is the localized label and color token used to render a
// booking status badge.
type StatusBadge struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

// Color tokens understood by clients
const (
	ColorWarning = "warning"
	ColorSuccess = "success"
	ColorInfo    = "info"
	ColorDanger  = "danger"
	ColorNeutral = "neutral"
)

// PresentStatus maps a booking status to its display badge. It is total over
// the status vocabulary: unrecognized values pass through as their raw label
// with a neutral color, so a new backend status never breaks rendering.
func PresentStatus(status entity.BookingStatus) StatusBadge {
	switch status {
	case entity.BookingStatusPending:
		return StatusBadge{Label: "Chờ xác nhận", Color: ColorWarning}
	case entity.BookingStatusConfirmed:
		return StatusBadge{Label: "Đã xác nhận", Color: ColorSuccess}
	case entity.BookingStatusCompleted:
		return StatusBadge{Label: "Hoàn thành", Color: ColorInfo}
	case entity.BookingStatusCancelled:
		return StatusBadge{Label: "Đã hủy", Color: ColorDanger}
	case entity.BookingStatusRejected:
		return StatusBadge{Label: "Bị từ chối", Color: ColorDanger}
	default:
		return StatusBadge{Label: string(status), Color: ColorNeutral}
	}
}
