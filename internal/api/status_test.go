package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestActionGating(t *testing.T) {
	cases := []struct {
		status        string
		final         bool
		offerConfirm  bool
		offerComplete bool
		offerCancel   bool
	}{
		{StatusScheduled, false, true, true, true},
		{StatusConfirmed, false, false, true, true},
		{StatusInProgress, false, false, true, false},
		{StatusCompleted, true, false, false, false},
		{StatusCancelled, true, false, false, false},
		{StatusNoShow, false, false, true, false},
	}

	for _, tc := range cases {
		t.Run(tc.status, func(t *testing.T) {
			assert.Equal(t, tc.final, IsFinal(tc.status))
			assert.Equal(t, tc.offerConfirm, OfferConfirm(tc.status))
			assert.Equal(t, tc.offerComplete, OfferComplete(tc.status))
			assert.Equal(t, tc.offerCancel, OfferCancel(tc.status))
		})
	}
}
