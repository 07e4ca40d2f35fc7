package formula

import "math"

const (
	// MinWalkDistanceM is the floor applied to the male six-minute walk
	// prediction by the Local variant.
	MinWalkDistanceM = 200.0

	// DefaultRestingHR is used when no resting heart rate is supplied.
	DefaultRestingHR = 60.0
)

// QTc returns the Bazett-corrected QT interval in ms for the given QT interval
// (ms) and heart rate (bpm). viaMillis selects the two-step RR computation
// (60000/HR ms, then /1000 s). A non-positive heart rate yields NaN.
func QTc(qtMs, heartRate float64, viaMillis bool) float64 {
	if heartRate <= 0 {
		return math.NaN()
	}
	var rr float64
	if viaMillis {
		rrMs := 60000 / heartRate
		rr = rrMs / 1000
	} else {
		rr = 60 / heartRate
	}
	return qtMs / math.Sqrt(rr)
}

// ABI returns the ankle-brachial index. A non-positive brachial pressure
// yields NaN.
func ABI(ankleSystolic, brachialSystolic float64) float64 {
	if brachialSystolic <= 0 {
		return math.NaN()
	}
	return ankleSystolic / brachialSystolic
}

// SixMinuteWalk returns the predicted six-minute walk distance in metres.
// clamp floors the male prediction at MinWalkDistanceM.
func SixMinuteWalk(heightCm, weightKg, age float64, g Gender, clamp bool) float64 {
	if g == Male {
		d := 7.57*heightCm - 5.02*age - 1.76*weightKg - 309
		if clamp && d < MinWalkDistanceM {
			return MinWalkDistanceM
		}
		return d
	}
	return 2.11*heightCm - 2.29*weightKg - 5.78*age + 667
}

// WalkPercent returns the walked distance as a percentage of the predicted
// distance. A non-positive prediction yields NaN.
func WalkPercent(distanceM, predictedM float64) float64 {
	if predictedM <= 0 {
		return math.NaN()
	}
	return distanceM / predictedM * 100
}

// Zone is one heart-rate training zone.
type Zone struct {
	// Key names the zone (e.g. "aerobic_base"); see ZoneKey.
	Key string

	// Lower and Upper are the heart-rate reserve fractions bounding the zone.
	Lower float64
	Upper float64

	// Min and Max are the zone bounds in bpm, rounded to whole beats.
	Min int
	Max int
}

// zoneKeys names a zone by its lower reserve fraction, in tenths.
var zoneKeys = map[int]string{
	5: "active_recovery",
	6: "aerobic_base",
	7: "aerobic_power",
	8: "lactate_threshold",
	9: "neuromuscular_power",
}

// ZoneKey returns the name of the zone starting at the given reserve fraction.
func ZoneKey(lower float64) string {
	if k, ok := zoneKeys[int(math.Round(lower*10))]; ok {
		return k
	}
	return "zone"
}

// MaxHeartRate returns the age-predicted maximum heart rate (220 - age).
func MaxHeartRate(age float64) float64 {
	return 220 - age
}

// HeartRateZones splits the heart-rate reserve (max - resting) into zones at
// the given reserve fractions using the Karvonen method. The top zone always
// ends at the maximum heart rate.
func HeartRateZones(age, restingHR float64, bands []float64) (maxHR float64, zones []Zone) {
	maxHR = MaxHeartRate(age)
	reserve := maxHR - restingHR
	if len(bands) < 2 {
		return maxHR, nil
	}

	zones = make([]Zone, 0, len(bands)-1)
	for i := 0; i < len(bands)-1; i++ {
		z := Zone{
			Key:   ZoneKey(bands[i]),
			Lower: bands[i],
			Upper: bands[i+1],
			Min:   int(math.Round(restingHR + reserve*bands[i])),
			Max:   int(math.Round(restingHR + reserve*bands[i+1])),
		}
		if i == len(bands)-2 {
			z.Max = int(math.Round(maxHR))
		}
		zones = append(zones, z)
	}
	return maxHR, zones
}
