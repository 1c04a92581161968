// Package scoreboard keeps the authoritative scoreboard state: objectives with
// their scores, teams with their memberships, and the identity allocator used
// by display slots. Display surfaces reconcile against snapshots taken from
// this package but never mutate it.
package scoreboard

// UpdateType describes what happened to an objective since the last render
// pass consumed it.
type UpdateType uint8

const (
	UpdateNothing UpdateType = iota
	UpdateAdd
	UpdateUpdate
	UpdateRemove
)

func (u UpdateType) String() string {
	switch u {
	case UpdateNothing:
		return "nothing"
	case UpdateAdd:
		return "add"
	case UpdateUpdate:
		return "update"
	case UpdateRemove:
		return "remove"
	default:
		return "unknown"
	}
}

// Score is one scored entry of an objective. Values of this type are
// snapshots; mutating them has no effect on the objective.
type Score struct {
	Name   string
	Value  int64
	Hidden bool
}
