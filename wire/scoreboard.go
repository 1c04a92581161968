// Package wire holds the outbound scoreboard payload snapshots handed to the
// session layer. Building and transmitting packets from them is the session's
// job; this package is pure data.
package wire

// DisplaySlot identifies the on-screen surface an objective is displayed in.
type DisplaySlot uint8

const (
	SlotList DisplaySlot = iota
	SlotSidebar
	SlotBelowName
)

func (s DisplaySlot) String() string {
	switch s {
	case SlotList:
		return "list"
	case SlotSidebar:
		return "sidebar"
	case SlotBelowName:
		return "belowname"
	default:
		return "unknown"
	}
}

// ScoreInfo is the wire-level record for a single displayed score. The same
// snapshot is used both to add a line and to remove it again; the client keys
// removal on ID alone.
type ScoreInfo struct {
	ID          uint64
	ObjectiveID string
	Name        string
	Score       int64
}
