package demo

// branch is one leaf of the nested if/else tree in ComplexIfElse
type branch struct {
	aboveTen   bool // value > 10
	even       bool // value % 2 == 0
	aboveInner bool // value > 20 when aboveTen, value > 5 otherwise
}

var classifications = map[branch]string{
	{aboveTen: true, even: true, aboveInner: true}:    "greater than 20 and even",
	{aboveTen: true, even: true, aboveInner: false}:   "between 10 and 20 and even",
	{aboveTen: true, even: false, aboveInner: true}:   "greater than 20 and odd",
	{aboveTen: true, even: false, aboveInner: false}:  "between 10 and 20 and odd",
	{aboveTen: false, even: true, aboveInner: true}:   "between 5 and 10 and even",
	{aboveTen: false, even: true, aboveInner: false}:  "less than 5 and even",
	{aboveTen: false, even: false, aboveInner: true}:  "between 5 and 10 and odd",
	{aboveTen: false, even: false, aboveInner: false}: "less than 5 and odd",
}

// Classify places value into one of eight buckets by magnitude and parity.
// Boundaries are exclusive: 10 falls in the lower half, 20 and 5 fall
// below their inner thresholds.
func Classify(value int) string {
	b := branch{
		aboveTen: value > 10,
		even:     value%2 == 0,
	}

	inner := 5
	if b.aboveTen {
		inner = 20
	}
	b.aboveInner = value > inner

	return classifications[b]
}
