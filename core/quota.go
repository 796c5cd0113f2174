package core

// Quota computes the Droop-style quota from the number of formal votes
// and the number of seats to fill: ceil(numValidVotes / (seats + 1)).
func Quota(numValidVotes Int, seats int) Int {
	denom := NewInt(int64(seats) + 1)
	return QuotientFrac(numValidVotes, denom).Ceil()
}
