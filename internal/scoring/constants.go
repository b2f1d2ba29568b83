package scoring

const (
	// LongAwakeSplitMinutes is the gap that separates two episodes.
	LongAwakeSplitMinutes = 90

	// MinAwakeningMinutes is the shortest awake segment counted as an awakening.
	MinAwakeningMinutes = 2

	// Nap duration bounds (in-bed minutes, inclusive).
	NapMinMinutes = 10
	NapMaxMinutes = 180

	// Primary episode duration bounds (in-bed minutes, inclusive).
	PrimaryMinMinutes = 180
	PrimaryMaxMinutes = 960

	// StageSumToleranceMinutes is the allowed drift between stage totals and in-bed time.
	StageSumToleranceMinutes = 15

	// NightKeyCutoffHour: episodes starting at or after this local hour belong to that date.
	NightKeyCutoffHour = 15

	// Overnight window for the midpoint: hour >= OvernightStartHour or hour <= OvernightEndHour.
	OvernightStartHour = 20
	OvernightEndHour   = 11

	// Fallback window for the start hour: [FallbackStartHour, FallbackEndHour).
	FallbackStartHour = 12
	FallbackEndHour   = 15

	minutesPerDay = 1440
)
