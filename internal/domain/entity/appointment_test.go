package entity

import "testing"

func TestAppointmentStatusIsValid(t *testing.T) {
	for _, tc := range []struct {
		status AppointmentStatus
		want   bool
	}{
		{AppointmentStatusPending, true},
		{AppointmentStatusConfirmed, true},
		{AppointmentStatusCancelled, true},
		{AppointmentStatusCompleted, true},
		{AppointmentStatus("rescheduled"), false},
		{AppointmentStatus("Pending"), false},
		{AppointmentStatus(""), false},
	} {
		if got := tc.status.IsValid(); got != tc.want {
			t.Errorf("IsValid(%q) = %v, want %v", tc.status, got, tc.want)
		}
	}
}
