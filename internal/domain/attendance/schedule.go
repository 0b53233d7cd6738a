package attendance

// WorkSchedule - Company work-day policy consulted by every attendance
// derivation. All instants are whole minutes since midnight; the value is
// immutable and safe to share.
type WorkSchedule struct {
	WorkStartMinute      int // regular window opens
	WorkEndMinute        int // regular window closes
	LunchStartMinute     int
	LunchEndMinute       int
	GraceEndMinute       int // last non-penalized arrival minute
	DeductionStartMinute int // arrivals strictly after this minute are deductible
	StandardDayMinutes   int
}

// DefaultWorkSchedule returns the MotorPH schedule: 08:00-17:00 work day,
// 12:00-13:00 lunch, grace period through 08:10, deductions from 08:11.
func DefaultWorkSchedule() WorkSchedule {
	return WorkSchedule{
		WorkStartMinute:      8 * 60,
		WorkEndMinute:        17 * 60,
		LunchStartMinute:     12 * 60,
		LunchEndMinute:       13 * 60,
		GraceEndMinute:       8*60 + 10,
		DeductionStartMinute: 8*60 + 11,
		StandardDayMinutes:   8 * 60,
	}
}
