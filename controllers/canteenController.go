package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hostelmate/hostelmate-api/initializers"
	"github.com/hostelmate/hostelmate-api/models"
	"gorm.io/gorm"
)

func CreateCanteen(ctx *gin.Context) {
	var canteen models.Canteen
	if err := ctx.ShouldBindJSON(&canteen); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if providerID, ok := currentUserID(ctx); ok {
		canteen.ProviderID = providerID
	}

	// Validate hostel exists
	var hostel models.Hostel
	if err := initializers.DB.First(&hostel, canteen.HostelID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Hostel not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to validate hostel", err)
		}
		return
	}

	if err := initializers.DB.Create(&canteen).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to create canteen", err)
		return
	}

	ctx.JSON(http.StatusCreated, canteen)
}

func GetCanteen(ctx *gin.Context) {
	canteenId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid canteen ID", err)
		return
	}

	var canteen models.Canteen
	result := initializers.DB.Preload("MenuItems").Preload("MealPlans").First(&canteen, canteenId)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Canteen not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve canteen", result.Error)
		}
		return
	}

	ctx.JSON(http.StatusOK, canteen)
}

func AddMenuItem(ctx *gin.Context) {
	var menuItem models.MenuItem
	if err := ctx.ShouldBindJSON(&menuItem); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	// Validate canteen exists
	var canteen models.Canteen
	if err := initializers.DB.First(&canteen, menuItem.CanteenID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Canteen not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to validate canteen", err)
		}
		return
	}

	if err := initializers.DB.Create(&menuItem).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to add menu item", err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"message": menuItem.Name + " added to menu", "menuItem": menuItem})
}

// UpsertMealPlan creates or updates one row of the canteen's plan
// pricing table. Existing subscriptions are unaffected: they carry a
// copy of the price taken at purchase time.
func UpsertMealPlan(ctx *gin.Context) {
	var plan models.MealPlan
	if err := ctx.ShouldBindJSON(&plan); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if !models.ValidPlanKey(plan.PlanKey) {
		respondWithError(ctx, http.StatusBadRequest, "Unknown plan key", nil)
		return
	}

	var existing models.MealPlan
	err := initializers.DB.
		Where("canteen_id = ? AND plan_key = ?", plan.CanteenID, plan.PlanKey).
		First(&existing).Error

	if err == nil {
		existing.Enabled = plan.Enabled
		existing.PureVeg = plan.PureVeg
		existing.Veg = plan.Veg
		existing.NonVegMix = plan.NonVegMix
		existing.WeeklyMenu = plan.WeeklyMenu

		if err := initializers.DB.Save(&existing).Error; err != nil {
			log.Println("Meal plan update error:", err)
			respondWithError(ctx, http.StatusInternalServerError, "Unable to update meal plan", err)
			return
		}

		ctx.JSON(http.StatusOK, gin.H{"message": "Meal plan updated", "mealPlan": existing})
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch meal plan", err)
		return
	}

	if err := initializers.DB.Create(&plan).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to create meal plan", err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"message": "Meal plan created", "mealPlan": plan})
}
