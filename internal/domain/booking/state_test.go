//go:build unit

package booking_test

import (
	"testing"

	"shareit/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseState(t *testing.T) {
	testCases := []struct {
		in    string
		want  booking.State
		errIs error
	}{
		{in: "", want: booking.StateAll},
		{in: "ALL", want: booking.StateAll},
		{in: "current", want: booking.StateCurrent},
		{in: "Past", want: booking.StatePast},
		{in: "FUTURE", want: booking.StateFuture},
		{in: "waiting", want: booking.StateWaiting},
		{in: "REJECTED", want: booking.StateRejected},
		{in: "UNSUPPORTED_STATUS", errIs: booking.ErrUnknownState},
		{in: "APPROVED", errIs: booking.ErrUnknownState},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := booking.ParseState(tc.in)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestState_Criteria(t *testing.T) {
	testCases := []struct {
		state booking.State
		want  booking.Criteria
	}{
		{state: booking.StateAll, want: booking.Criteria{Predicate: booking.PredicateNone}},
		{state: booking.StatePast, want: booking.Criteria{Predicate: booking.PredicateEndedBefore}},
		{state: booking.StateFuture, want: booking.Criteria{Predicate: booking.PredicateStartsAfter}},
		{state: booking.StateCurrent, want: booking.Criteria{Predicate: booking.PredicateSpans, Ascending: true}},
		{state: booking.StateWaiting, want: booking.Criteria{Predicate: booking.PredicateStatus, Status: booking.StatusWaiting}},
		{state: booking.StateRejected, want: booking.Criteria{Predicate: booking.PredicateStatus, Status: booking.StatusRejected}},
	}

	for _, tc := range testCases {
		t.Run(string(tc.state), func(t *testing.T) {
			assert.Equal(t, tc.want, tc.state.Criteria())
		})
	}
}
