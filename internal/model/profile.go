package model

// Profile holds per-person scheduling accommodations.
type Profile struct {
	Person string

	// AnchorSubject is pulled to the front of the queue so it lands in the
	// first open slot of the day when present.
	AnchorSubject string

	// SubjectDailyCap caps how many slots per day a subject may occupy.
	SubjectDailyCap map[string]int

	// PreferredSlots declares slot numbers a subject should land on. While
	// the set is not exhausted, placement outside it is rejected.
	PreferredSlots map[string][]int
}
