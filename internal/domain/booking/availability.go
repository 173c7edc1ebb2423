package booking

import "github.com/doctorsportal/portal-server/internal/models"

// Resolve returns the catalog with each option's slot list reduced to the
// slots not yet booked for the given date. Pure function: options keep their
// order and fields, only Slots is replaced.
//
// Date matching is exact string equality on appointmentDate. An empty date
// matches no booking, so every option comes back with its full slot list.
// Bookings whose treatment names no catalog entry are ignored. Removal is a
// set operation: one matching booking hides a slot label no matter how many
// times it occurs in the slot list or in the bookings.
func Resolve(
	date string,
	options []models.AppointmentOption,
	bookings []models.Booking,
) []models.AppointmentOption {

	bookedByTreatment := make(map[string]map[string]struct{})
	for _, b := range bookings {
		if b.AppointmentDate != date {
			continue
		}
		set, ok := bookedByTreatment[b.Treatment]
		if !ok {
			set = make(map[string]struct{})
			bookedByTreatment[b.Treatment] = set
		}
		set[b.Slot] = struct{}{}
	}

	out := make([]models.AppointmentOption, 0, len(options))
	for _, option := range options {
		booked := bookedByTreatment[option.Name]

		remaining := make([]string, 0, len(option.Slots))
		for _, slot := range option.Slots {
			if _, taken := booked[slot]; taken {
				continue
			}
			remaining = append(remaining, slot)
		}

		option.Slots = remaining
		out = append(out, option)
	}

	return out
}
