package services

import "fmt"

// activityMultipliers is the single source of truth for valid activity
// levels. Request binding validates against the same set, so an unknown
// activity reaching DailyCalories is a programming error, not user input.
var activityMultipliers = map[string]float64{
	"sedentary": 1.2,
	"light":     1.4,
	"active":    1.8,
}

// rateAdjustments maps a lose/gain pace to its daily calorie offset.
var rateAdjustments = map[string]float64{
	"slow":   175,
	"normal": 300,
	"fast":   500,
}

// DailyCalories computes the daily calorie budget from a user's attributes.
// Weight and height must already be imperial (pounds, inches) — callers
// convert metric input exactly once, at the mutation boundary.
//
// BMR uses Harris-Benedict; TDEE multiplies by the activity level; the goal
// then shifts TDEE down (lose) or up (gain) by the rate's offset. The result
// is truncated toward zero.
func DailyCalories(sex string, weightLb, heightIn float64, ageYears int, activity, goal, rate string) (int, error) {
	var bmr float64
	switch sex {
	case "m":
		bmr = 66 + 6.2*weightLb + 12.7*heightIn - 6.76*float64(ageYears)
	case "f":
		bmr = 655 + 4.35*weightLb + 4.7*heightIn - 4.7*float64(ageYears)
	default:
		return 0, fmt.Errorf("unknown sex %q", sex)
	}

	mult, ok := activityMultipliers[activity]
	if !ok {
		return 0, fmt.Errorf("unknown activity %q", activity)
	}
	tdee := bmr * mult

	switch goal {
	case "maintain":
		// TDEE unchanged.
	case "lose", "gain":
		offset, ok := rateAdjustments[rate]
		if !ok {
			return 0, fmt.Errorf("unknown rate %q", rate)
		}
		if goal == "lose" {
			tdee -= offset
		} else {
			tdee += offset
		}
	default:
		return 0, fmt.Errorf("unknown goal %q", goal)
	}

	return int(tdee), nil
}
