package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCategoryValid(t *testing.T) {
	for _, category := range Categories() {
		require.True(t, category.Valid(), "category %q should be valid", category)
	}
	require.False(t, Category("billing").Valid())
	require.False(t, Category("").Valid())
}

func TestCategoryLabel(t *testing.T) {
	require.Equal(t, "Wheelchair seating", CategoryWheelchair.Label())
	require.Equal(t, "Tickets", CategoryTicket.Label())
}

func TestPhoneOrFallback(t *testing.T) {
	submission := ContactSubmission{Phone: ""}
	require.Equal(t, "not provided", submission.PhoneOrFallback())

	submission.Phone = "050-1234-5678"
	require.Equal(t, "050-1234-5678", submission.PhoneOrFallback())
}

func TestDispatchResultOverallSuccess(t *testing.T) {
	cases := []struct {
		name     string
		outcomes []NotificationOutcome
		want     bool
	}{
		{"all succeeded", []NotificationOutcome{{Success: true}, {Success: true}, {Success: true}}, true},
		{"one succeeded", []NotificationOutcome{{Success: true}, {Success: false}, {Success: false}}, true},
		{"all failed", []NotificationOutcome{{Success: false}, {Success: false}, {Success: false}}, false},
		{"empty", nil, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := DispatchResult{Outcomes: tc.outcomes}
			require.Equal(t, tc.want, result.OverallSuccess())
		})
	}
}

func TestDispatchResultFailures(t *testing.T) {
	result := DispatchResult{Outcomes: []NotificationOutcome{
		{Channel: "email_operator", Success: true},
		{Channel: "line", Success: false, Reason: "push failed"},
	}}

	failures := result.Failures()
	require.Len(t, failures, 1)
	require.Equal(t, "line", failures[0].Channel)
}
