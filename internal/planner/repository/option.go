package repository

// SlotLink is one persisted task→slot assignment.
type SlotLink struct {
	TaskID     string
	Day        string // "2006-01-02"
	SlotNumber int
}
