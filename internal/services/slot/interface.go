package slot

import "context"

// Service defines the interface for the slot allocator: assigning archers
// to target and letter positions within an open session
type Service interface {
	// Join assigns the archer to a target and letter at the requested
	// distance, creating a new target when none has a free letter
	Join(ctx context.Context, input *JoinInput) (*JoinOutput, error)

	// Leave deactivates the archer's slot assignment, keeping the row
	// for re-join and shot history
	Leave(ctx context.Context, input *LeaveInput) (*LeaveOutput, error)

	// Rejoin reactivates a previously vacated slot on its original
	// target and letter
	Rejoin(ctx context.Context, input *RejoinInput) (*RejoinOutput, error)

	// ActiveSlot looks up the archer's currently active slot
	ActiveSlot(ctx context.Context, input *ActiveSlotInput) (*ActiveSlotOutput, error)
}
