package formula

// Status constants mirror the three result colours of the calculator page.
const (
	StatusNormal  = "normal"
	StatusWarning = "warning"
	StatusDanger  = "danger"
)

// Category keys. Display text lives in the i18n tables.
const (
	CategoryUnderweight = "underweight"
	CategoryNormal      = "normal"
	CategoryOverweight  = "overweight"
	CategoryObese       = "obese"

	CategoryMildProlongation        = "mild_prolongation"
	CategorySignificantProlongation = "significant_prolongation"

	CategoryMildModerateDisease = "mild_moderate_disease"
	CategorySevereDisease       = "severe_disease"
	CategoryNonCompressible     = "non_compressible"

	CategoryLowRisk      = "low_risk"
	CategoryModerateRisk = "moderate_risk"
	CategoryHighRisk     = "high_risk"

	CategoryWithinRange = "within_range"
	CategoryOutOfRange  = "out_of_range"

	CategoryReduced         = "reduced"
	CategorySeverelyReduced = "severely_reduced"
)

// Band thresholds. A value equal to a threshold falls in the higher band
// unless noted.
const (
	BMIUnderweight = 18.5
	BMIOverweight  = 25.0
	BMIObese       = 30.0

	QTcMild        = 450.0
	QTcSignificant = 500.0

	// ABI normal band is closed at both ends: [1.0, 1.4].
	ABINormalMin = 1.0
	ABINormalMax = 1.4
	ABISevere    = 0.7

	DiabetesRiskWarning = 5.0
	DiabetesRiskDanger  = 15.0

	// BSA normal band is closed at both ends: [1.5, 2.0].
	BSANormalMin = 1.5
	BSANormalMax = 2.0

	WalkNormalPct  = 80.0
	WalkWarningPct = 60.0

	// Fasting glucose normal ranges, closed at both ends.
	GlucoseMgDLMin  = 70.0
	GlucoseMgDLMax  = 99.0
	GlucoseMmolLMin = 3.9
	GlucoseMmolLMax = 5.5
)

// Band is the category and status a value falls into.
type Band struct {
	Category string
	Status   string
}

// ClassifyBMI maps a BMI onto underweight / normal / overweight / obese.
func ClassifyBMI(bmi float64) Band {
	switch {
	case bmi < BMIUnderweight:
		return Band{CategoryUnderweight, StatusDanger}
	case bmi < BMIOverweight:
		return Band{CategoryNormal, StatusNormal}
	case bmi < BMIObese:
		return Band{CategoryOverweight, StatusWarning}
	default:
		return Band{CategoryObese, StatusDanger}
	}
}

// ClassifyQTc maps a corrected QT interval (ms) onto its prolongation band.
func ClassifyQTc(qtc float64) Band {
	switch {
	case qtc < QTcMild:
		return Band{CategoryNormal, StatusNormal}
	case qtc < QTcSignificant:
		return Band{CategoryMildProlongation, StatusWarning}
	default:
		return Band{CategorySignificantProlongation, StatusDanger}
	}
}

// ClassifyABI maps an ankle-brachial index onto its disease band. Values above
// ABINormalMax are flagged as non-compressible vessels.
func ClassifyABI(abi float64) Band {
	switch {
	case abi > ABINormalMax:
		return Band{CategoryNonCompressible, StatusWarning}
	case abi >= ABINormalMin:
		return Band{CategoryNormal, StatusNormal}
	case abi >= ABISevere:
		return Band{CategoryMildModerateDisease, StatusWarning}
	default:
		return Band{CategorySevereDisease, StatusDanger}
	}
}

// ClassifyDiabetesRisk maps a risk percentage onto low / moderate / high.
func ClassifyDiabetesRisk(pct float64) Band {
	switch {
	case pct < DiabetesRiskWarning:
		return Band{CategoryLowRisk, StatusNormal}
	case pct < DiabetesRiskDanger:
		return Band{CategoryModerateRisk, StatusWarning}
	default:
		return Band{CategoryHighRisk, StatusDanger}
	}
}

// ClassifyBSA reports whether a body surface area is inside the adult range.
func ClassifyBSA(bsa float64) Band {
	if bsa >= BSANormalMin && bsa <= BSANormalMax {
		return Band{CategoryWithinRange, StatusNormal}
	}
	return Band{CategoryOutOfRange, StatusWarning}
}

// ClassifyWalkPercent maps a six-minute walk percent-of-predicted onto a band.
func ClassifyWalkPercent(pct float64) Band {
	switch {
	case pct >= WalkNormalPct:
		return Band{CategoryNormal, StatusNormal}
	case pct >= WalkWarningPct:
		return Band{CategoryReduced, StatusWarning}
	default:
		return Band{CategorySeverelyReduced, StatusDanger}
	}
}

// ClassifyFastingGlucose checks a glucose reading, in the unit it was entered
// in, against the fasting normal range.
func ClassifyFastingGlucose(value float64, u Unit) Band {
	lo, hi := GlucoseMgDLMin, GlucoseMgDLMax
	if u == MmolPerL {
		lo, hi = GlucoseMmolLMin, GlucoseMmolLMax
	}
	if value >= lo && value <= hi {
		return Band{CategoryWithinRange, StatusNormal}
	}
	return Band{CategoryOutOfRange, StatusWarning}
}
