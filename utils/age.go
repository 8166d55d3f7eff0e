package utils

import "time"

// CalculateAge returns full years elapsed since the date of birth.
func CalculateAge(dob time.Time) int {
	today := time.Now()
	age := today.Year() - dob.Year()
	if today.Before(dob.AddDate(age, 0, 0)) {
		age--
	}
	return age
}
