package roll_history

import "github.com/KirkDiggler/rolld/internal/models"

type SaveRollInput struct {
	Roll *models.Roll
}

type GetRecentRollsInput struct {
	ChannelID string

	// Limit caps the number of rolls returned, zero means the configured maximum
	Limit int

	// UserID optionally restricts the result to one user's rolls
	UserID string
}

type GetRecentRollsOutput struct {
	Rolls []*models.Roll
}

type ClearHistoryInput struct {
	ChannelID string
}
