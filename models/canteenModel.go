package models

import (
	"errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type FoodType string

const (
	PureVeg   FoodType = "pure_veg"
	Veg       FoodType = "veg"
	NonVegMix FoodType = "non_veg_mix"
)

type PlanKey string

const (
	PlanBreakfast      PlanKey = "breakfast"
	PlanLunch          PlanKey = "lunch"
	PlanDinner         PlanKey = "dinner"
	PlanBreakfastLunch PlanKey = "breakfast_lunch"
	PlanLunchDinner    PlanKey = "lunch_dinner"
	PlanAllMeals       PlanKey = "all_meals"
)

// PlanKeys is the closed set of meal plan offerings. Anything outside
// this list is rejected at the edge.
var PlanKeys = []PlanKey{
	PlanBreakfast,
	PlanLunch,
	PlanDinner,
	PlanBreakfastLunch,
	PlanLunchDinner,
	PlanAllMeals,
}

var ErrPlanUnavailable = errors.New("meal plan unavailable for requested food type")

func ValidPlanKey(key PlanKey) bool {
	for _, k := range PlanKeys {
		if k == key {
			return true
		}
	}
	return false
}

type Canteen struct {
	gorm.Model
	ProviderID     int        `json:"providerId"`
	HostelID       int        `json:"hostelId"`
	Name           string     `json:"name" binding:"required"`
	DeliveryCharge float64    `json:"deliveryCharge"`
	MenuItems      []MenuItem `json:"menuItems" gorm:"foreignKey:CanteenID;constraint:OnDelete:CASCADE"`
	MealPlans      []MealPlan `json:"mealPlans" gorm:"foreignKey:CanteenID;constraint:OnDelete:CASCADE"`
}

type MenuItem struct {
	gorm.Model
	CanteenID int      `json:"canteenId"`
	Name      string   `json:"name" binding:"required"`
	Price     float64  `json:"price" binding:"required"`
	FoodType  FoodType `json:"foodType"`
	Available bool     `json:"available"`
}

// MealPlan is one row of a canteen's plan pricing table: monthly
// prices per food type tier, plus an optional weekly menu for plans
// that publish one.
type MealPlan struct {
	gorm.Model
	CanteenID  int            `json:"canteenId" gorm:"index:idx_canteen_plan,unique"`
	PlanKey    PlanKey        `json:"planKey" gorm:"index:idx_canteen_plan,unique"`
	Enabled    bool           `json:"enabled"`
	PureVeg    float64        `json:"pureVeg"`
	Veg        float64        `json:"veg"`
	NonVegMix  float64        `json:"nonVegMix"`
	WeeklyMenu datatypes.JSON `json:"weeklyMenu"`
}

// ResolvePrice returns the monthly price for the requested food type.
// Disabled plans and zero or absent tier prices resolve to
// ErrPlanUnavailable so a subscription can never be sold for free by
// a misconfigured table.
func (p *MealPlan) ResolvePrice(foodType FoodType) (float64, error) {
	if !p.Enabled {
		return 0, ErrPlanUnavailable
	}
	var price float64
	switch foodType {
	case PureVeg:
		price = p.PureVeg
	case Veg:
		price = p.Veg
	case NonVegMix:
		price = p.NonVegMix
	default:
		return 0, ErrPlanUnavailable
	}
	if price <= 0 {
		return 0, ErrPlanUnavailable
	}
	return price, nil
}
