package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Hostel struct {
	gorm.Model
	OwnerID     int            `json:"ownerId"`
	Name        string         `json:"name" binding:"required"`
	Description string         `json:"description"`
	Address     string         `json:"address" binding:"required"`
	City        string         `json:"city" binding:"required"`
	Amenities   datatypes.JSON `json:"amenities"`
	Rooms       []Room         `json:"rooms" gorm:"foreignKey:HostelID;constraint:OnDelete:CASCADE"`
	Images      []HostelImage  `json:"images" gorm:"foreignKey:HostelID;constraint:OnDelete:CASCADE"`
}

type HostelImage struct {
	gorm.Model
	HostelID int    `json:"hostelId"`
	Url      string `json:"url"`
}

type Room struct {
	gorm.Model
	HostelID    int     `json:"hostelId"`
	Number      string  `json:"number"`
	Capacity    int     `json:"capacity"`
	MonthlyRent float64 `json:"monthlyRent"`
	Deposit     float64 `json:"deposit"`
	Available   bool    `json:"available"`
}

type BookingStatus string

const (
	BookingActive BookingStatus = "active"
	BookingEnded  BookingStatus = "ended"
)

// Booking ties a tenant to a room. An active booking is what makes a
// hostel's canteen reachable for that tenant.
type Booking struct {
	gorm.Model
	TenantID int           `json:"tenantId"`
	HostelID int           `json:"hostelId"`
	RoomID   int           `json:"roomId"`
	Status   BookingStatus `json:"status"`
	MoveIn   time.Time     `json:"moveIn"`
}
