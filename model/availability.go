package model

type AvailabilityRequest struct {
	Date      string `json:"date" validate:"required"`
	StartTime string `json:"startTime" validate:"required"`
	EndTime   string `json:"endTime" validate:"required"`
	RoomName  string `json:"roomName"`
	HoldID    string `json:"holdId,omitempty" validate:"omitempty,uuid"`
}

type AvailabilityResult struct {
	Available bool   `json:"available"`
	Message   string `json:"message,omitempty"`
}
