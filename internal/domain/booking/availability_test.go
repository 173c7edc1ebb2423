package booking

import (
	"reflect"
	"testing"

	"github.com/doctorsportal/portal-server/internal/models"
)

func catalog() []models.AppointmentOption {
	return []models.AppointmentOption{
		{Name: "Braces", Slots: []string{"9AM", "10AM", "11AM"}, Price: 200},
		{Name: "Teeth Cleaning", Slots: []string{"9AM", "10AM"}, Price: 80},
	}
}

func TestResolve_RemovesBookedSlot(t *testing.T) {
	bookings := []models.Booking{
		{AppointmentDate: "Jan 1, 2024", Treatment: "Braces", Slot: "10AM", Email: "a@x.com"},
	}

	got := Resolve("Jan 1, 2024", catalog(), bookings)

	if len(got) != 2 {
		t.Fatalf("expected 2 options, got %d", len(got))
	}
	if !reflect.DeepEqual(got[0].Slots, []string{"9AM", "11AM"}) {
		t.Errorf("Braces slots: got %v", got[0].Slots)
	}
	if !reflect.DeepEqual(got[1].Slots, []string{"9AM", "10AM"}) {
		t.Errorf("Teeth Cleaning slots: got %v", got[1].Slots)
	}
}

func TestResolve_OtherDateUnaffected(t *testing.T) {
	bookings := []models.Booking{
		{AppointmentDate: "Jan 1, 2024", Treatment: "Braces", Slot: "10AM", Email: "a@x.com"},
	}

	got := Resolve("Jan 2, 2024", catalog(), bookings)

	if !reflect.DeepEqual(got[0].Slots, []string{"9AM", "10AM", "11AM"}) {
		t.Errorf("expected full slot list, got %v", got[0].Slots)
	}
}

func TestResolve_EmptyDateMatchesNothing(t *testing.T) {
	bookings := []models.Booking{
		{AppointmentDate: "Jan 1, 2024", Treatment: "Braces", Slot: "10AM", Email: "a@x.com"},
	}

	got := Resolve("", catalog(), bookings)

	if !reflect.DeepEqual(got[0].Slots, []string{"9AM", "10AM", "11AM"}) {
		t.Errorf("expected full slot list, got %v", got[0].Slots)
	}
}

func TestResolve_EmptyCatalog(t *testing.T) {
	got := Resolve("Jan 1, 2024", nil, []models.Booking{
		{AppointmentDate: "Jan 1, 2024", Treatment: "Braces", Slot: "10AM"},
	})

	if len(got) != 0 {
		t.Fatalf("expected empty result, got %v", got)
	}
	if got == nil {
		t.Fatal("expected non-nil result for JSON array encoding")
	}
}

func TestResolve_UnknownTreatmentIgnored(t *testing.T) {
	bookings := []models.Booking{
		{AppointmentDate: "Jan 1, 2024", Treatment: "Massage", Slot: "9AM", Email: "a@x.com"},
	}

	got := Resolve("Jan 1, 2024", catalog(), bookings)

	if !reflect.DeepEqual(got[0].Slots, []string{"9AM", "10AM", "11AM"}) {
		t.Errorf("expected full slot list, got %v", got[0].Slots)
	}
}

func TestResolve_SetNotCountSemantics(t *testing.T) {
	// Two bookings of the same slot still remove it exactly once, and a
	// duplicated label in the catalog is removed at every occurrence.
	options := []models.AppointmentOption{
		{Name: "Braces", Slots: []string{"9AM", "10AM", "9AM", "11AM"}},
	}
	bookings := []models.Booking{
		{AppointmentDate: "Jan 1, 2024", Treatment: "Braces", Slot: "9AM", Email: "a@x.com"},
		{AppointmentDate: "Jan 1, 2024", Treatment: "Braces", Slot: "9AM", Email: "b@x.com"},
	}

	got := Resolve("Jan 1, 2024", options, bookings)

	if !reflect.DeepEqual(got[0].Slots, []string{"10AM", "11AM"}) {
		t.Errorf("got %v", got[0].Slots)
	}
}

func TestResolve_Idempotent(t *testing.T) {
	bookings := []models.Booking{
		{AppointmentDate: "Jan 1, 2024", Treatment: "Braces", Slot: "10AM", Email: "a@x.com"},
	}

	first := Resolve("Jan 1, 2024", catalog(), bookings)
	second := Resolve("Jan 1, 2024", catalog(), bookings)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("results differ: %v vs %v", first, second)
	}
}

func TestResolve_InputNotMutated(t *testing.T) {
	options := catalog()
	bookings := []models.Booking{
		{AppointmentDate: "Jan 1, 2024", Treatment: "Braces", Slot: "10AM", Email: "a@x.com"},
	}

	Resolve("Jan 1, 2024", options, bookings)

	if !reflect.DeepEqual(options[0].Slots, []string{"9AM", "10AM", "11AM"}) {
		t.Errorf("input catalog mutated: %v", options[0].Slots)
	}
}
