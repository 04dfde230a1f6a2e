/*
Package scoring turns votes into story point estimates.

# Point Calculation

CalculatePoints maps a completed three-dimension vote to a point value via
a fixed 27-entry lookup keyed by the uncertainty-complexity-effort triple:

	points, ok := scoring.CalculatePoints(vote)

The second return value is false while the vote is incomplete. That is a
normal intermediate state while a participant is still clicking through the
dimensions, never an error.

# Final Estimates

When a ticket is revealed, the arithmetic mean of all completed votes is
snapped to the nearest value in the modified Fibonacci sequence

	1, 2, 3, 5, 8, 13, 21

by RoundToFinalEstimate. Candidates are scanned in ascending order with a
strict less-than comparison, so an average exactly between two candidates
resolves to the smaller one (an average of 1.5 becomes 1, not 2).

All functions are pure and cannot fail.
*/
package scoring
