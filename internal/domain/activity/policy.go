package activity

import "fmt"

// CapacityPolicy decides whether max_participants is enforced on join.
type CapacityPolicy int

const (
	CapacityEnforce CapacityPolicy = iota
	CapacityDisplayOnly
)

func (p CapacityPolicy) String() string {
	switch p {
	case CapacityEnforce:
		return "enforce"
	case CapacityDisplayOnly:
		return "display_only"
	default:
		return fmt.Sprintf("CapacityPolicy(%d)", int(p))
	}
}

func PolicyFromFlag(enforce bool) CapacityPolicy {
	if enforce {
		return CapacityEnforce
	}
	return CapacityDisplayOnly
}
