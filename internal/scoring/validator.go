package scoring

import (
	"math"
	"strconv"

	"cha-pyeong/internal/apperr"
	"cha-pyeong/internal/models"
)

// stepTolerance absorbs float parsing noise when checking the 0.5 step.
const stepTolerance = 1e-9

// ScoreInput carries the ten raw attribute values of one submission, keyed
// by column name. All ten must be present and valid at submission time.
type ScoreInput map[string]float64

// ValidateAttribute parses and checks a single raw attribute value: it must
// be a non-negative number, at most the class maximum, and a multiple of 0.5.
// Pure check, no side effects.
func ValidateAttribute(name, raw string) (float64, error) {
	attr, ok := AttributeByName(name)
	if !ok {
		return 0, apperr.Validation(name, "unknown attribute")
	}
	if raw == "" {
		return 0, apperr.Validation(name, "value is required")
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, apperr.Validation(name, "not a number")
	}
	if err := checkValue(attr, value); err != nil {
		return 0, err
	}
	return value, nil
}

// ValidateScores checks that all ten attributes are present and individually
// valid. The first missing or invalid field is reported.
func ValidateScores(input ScoreInput) error {
	for _, attr := range Attributes {
		value, ok := input[attr.Name]
		if !ok {
			return apperr.Validation(attr.Name, "value is required")
		}
		if err := checkValue(attr, value); err != nil {
			return err
		}
	}
	return nil
}

// ScoreFromInput maps a validated input onto a Score row.
func ScoreFromInput(input ScoreInput) models.Score {
	return models.Score{
		Thickness:       input["thickness"],
		Density:         input["density"],
		Smoothness:      input["smoothness"],
		Clarity:         input["clarity"],
		Granularity:     input["granularity"],
		AromaContinuity: input["aroma_continuity"],
		AromaLength:     input["aroma_length"],
		Refinement:      input["refinement"],
		Delicacy:        input["delicacy"],
		Aftertaste:      input["aftertaste"],
	}
}

func checkValue(attr Attribute, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return apperr.Validation(attr.Name, "not a number")
	}
	if value < 0 {
		return apperr.Validation(attr.Name, "must not be negative")
	}
	if max := attr.Class.Max(); value > max {
		return apperr.Validation(attr.Name, "must be at most %g", max)
	}
	// Multiple of 0.5: value*2 must land on an integer within tolerance.
	doubled := value * 2
	if math.Abs(doubled-math.Round(doubled)) > stepTolerance {
		return apperr.Validation(attr.Name, "must be a multiple of 0.5")
	}
	return nil
}
