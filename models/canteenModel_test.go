package models

import "testing"

func TestResolvePrice(t *testing.T) {
	plan := MealPlan{
		PlanKey:   PlanAllMeals,
		Enabled:   true,
		PureVeg:   3000,
		Veg:       3200,
		NonVegMix: 3800,
	}

	cases := []struct {
		foodType FoodType
		want     float64
	}{
		{PureVeg, 3000},
		{Veg, 3200},
		{NonVegMix, 3800},
	}
	for _, c := range cases {
		got, err := plan.ResolvePrice(c.foodType)
		if err != nil {
			t.Errorf("%s: unexpected error %v", c.foodType, err)
			continue
		}
		if got != c.want {
			t.Errorf("%s: got %v, want %v", c.foodType, got, c.want)
		}
	}
}

func TestResolvePrice_DisabledPlan(t *testing.T) {
	plan := MealPlan{PlanKey: PlanBreakfast, Enabled: false, Veg: 1200}
	if _, err := plan.ResolvePrice(Veg); err != ErrPlanUnavailable {
		t.Fatalf("expected ErrPlanUnavailable, got %v", err)
	}
}

func TestResolvePrice_ZeroTier(t *testing.T) {
	plan := MealPlan{PlanKey: PlanLunch, Enabled: true, Veg: 1500, NonVegMix: 0}
	if _, err := plan.ResolvePrice(NonVegMix); err != ErrPlanUnavailable {
		t.Fatalf("expected ErrPlanUnavailable for zero tier, got %v", err)
	}
}

func TestResolvePrice_UnknownFoodType(t *testing.T) {
	plan := MealPlan{PlanKey: PlanDinner, Enabled: true, Veg: 1500}
	if _, err := plan.ResolvePrice("jain"); err != ErrPlanUnavailable {
		t.Fatalf("expected ErrPlanUnavailable, got %v", err)
	}
}

func TestSubscriptionPriceIsACopy(t *testing.T) {
	plan := MealPlan{PlanKey: PlanAllMeals, Enabled: true, Veg: 3200}
	price, err := plan.ResolvePrice(Veg)
	if err != nil {
		t.Fatalf("resolve error: %v", err)
	}

	subscription := Subscription{PlanKey: plan.PlanKey, FoodType: Veg, Price: price}

	// Editing the plan table afterwards must not touch the
	// subscription's stored price.
	plan.Veg = 4500
	if subscription.Price != 3200 {
		t.Fatalf("subscription price changed to %v after plan edit", subscription.Price)
	}
}

func TestValidPlanKey(t *testing.T) {
	for _, key := range PlanKeys {
		if !ValidPlanKey(key) {
			t.Errorf("%s should be valid", key)
		}
	}
	if ValidPlanKey("midnight_snacks") {
		t.Error("unknown key accepted")
	}
}
