package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hostelmate/hostelmate-api/initializers"
	"github.com/hostelmate/hostelmate-api/models"
	"gorm.io/gorm"
)

// CreateBooking books a room for the calling tenant and marks the
// room unavailable.
func CreateBooking(ctx *gin.Context) {
	var body struct {
		RoomID int       `json:"roomId" binding:"required"`
		MoveIn time.Time `json:"moveIn"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	tenantID, ok := currentUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	var booking models.Booking
	err := initializers.DB.Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := tx.First(&room, body.RoomID).Error; err != nil {
			return err
		}
		if !room.Available {
			return errors.New("room is not available")
		}

		moveIn := body.MoveIn
		if moveIn.IsZero() {
			moveIn = time.Now()
		}

		booking = models.Booking{
			TenantID: tenantID,
			HostelID: room.HostelID,
			RoomID:   body.RoomID,
			Status:   models.BookingActive,
			MoveIn:   moveIn,
		}
		if err := tx.Create(&booking).Error; err != nil {
			return err
		}
		return tx.Model(&room).Update("available", false).Error
	})
	if err != nil {
		log.Println("Booking error:", err)
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to create booking")
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{"booking": booking})
}

// EndBooking ends a tenant's stay and frees the room.
func EndBooking(ctx *gin.Context) {
	bookingId, err := strconv.Atoi(ctx.Param("bookingId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse bookingId")
		return
	}

	err = initializers.DB.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := tx.First(&booking, bookingId).Error; err != nil {
			return err
		}
		if booking.Status == models.BookingEnded {
			return nil
		}
		if err := tx.Model(&booking).Update("status", models.BookingEnded).Error; err != nil {
			return err
		}
		return tx.Model(&models.Room{}).Where("id = ?", booking.RoomID).Update("available", true).Error
	})
	if err != nil {
		log.Println("End booking error:", err)
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to end booking")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Booking ended."})
}

// GetBookingsByTenant lists a tenant's bookings.
func GetBookingsByTenant(ctx *gin.Context) {
	tenantId, err := strconv.Atoi(ctx.Param("tenantId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse tenantId")
		return
	}

	var bookings []models.Booking
	if result := initializers.DB.
		Where("tenant_id = ?", tenantId).
		Order("created_at desc").
		Find(&bookings); result.Error != nil {
		log.Println(result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch bookings")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"bookings": bookings})
}
