package slot

import "github.com/archylab/archy/internal/models"

type CreateSlotInput struct {
	SessionID  string
	TargetID   string
	ArcherID   string
	Letter     models.SlotLetter
	FaceType   string
	BowStyle   string
	DrawWeight float64
	ClubID     string
}

type GetSlotInput struct {
	SlotID string
}

type GetAssignedLettersInput struct {
	TargetID string
}

type GetAssignedLettersOutput struct {
	// Letters maps each letter in use to the slot ID holding it
	Letters map[models.SlotLetter]string
}

type DeactivateSlotInput struct {
	SlotID string
}

type ReactivateSlotInput struct {
	SlotID string
}

type GetParticipationInput struct {
	ArcherID string
}

// Participation records which session and slot an archer is actively
// shooting in
type Participation struct {
	ArcherID  string `json:"archer_id"`
	SessionID string `json:"session_id"`
	SlotID    string `json:"slot_id"`
}

type HasActiveParticipantsInput struct {
	SessionID string
}

type DeactivateAllInSessionInput struct {
	SessionID string
}
