package model

type SlotStatus string

const (
	SlotAvailable SlotStatus = "available"
	SlotBooked    SlotStatus = "booked"
	SlotPast      SlotStatus = "past"
)

type Slot struct {
	Hour      int        `json:"hour"`
	StartTime string     `json:"startTime"`
	EndTime   string     `json:"endTime"`
	Label     string     `json:"label"`
	Status    SlotStatus `json:"status"`
	Price     float64    `json:"price"`
}

type SlotsResponse struct {
	Slots []Slot `json:"slots"`
}

type SlotQuery struct {
	Location string `query:"location"`
	Date     string `query:"date" validate:"required,datetime=2006-01-02"`
}
