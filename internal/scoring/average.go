package scoring

import (
	"github.com/google/uuid"

	"cha-pyeong/internal/models"
)

// Average derives the TeaAverage for one tea from its current assessment set.
// Every assessment counts toward AssessmentCount, but only assessments that
// carry a score row contribute to the attribute means. A score-less
// assessment is an absent-score sample, not a zero. With zero assessments
// every attribute stays nil ("no data"), which is distinct from a tea whose
// real average is 0: an untasted tea must not read as a badly rated one.
func Average(teaID uuid.UUID, assessments []models.AssessmentWithRelations) models.TeaAverage {
	avg := models.TeaAverage{
		TeaID:           teaID,
		AssessmentCount: len(assessments),
	}

	sums := make(map[string]float64, len(Attributes))
	scored := 0
	for _, a := range assessments {
		if a.Score == nil {
			continue
		}
		scored++
		for name, value := range a.Score.Attributes() {
			sums[name] += value
		}
	}
	if scored == 0 {
		return avg
	}

	mean := func(name string) *float64 {
		v := sums[name] / float64(scored)
		return &v
	}
	avg.Thickness = mean("thickness")
	avg.Density = mean("density")
	avg.Smoothness = mean("smoothness")
	avg.Clarity = mean("clarity")
	avg.Granularity = mean("granularity")
	avg.AromaContinuity = mean("aroma_continuity")
	avg.AromaLength = mean("aroma_length")
	avg.Refinement = mean("refinement")
	avg.Delicacy = mean("delicacy")
	avg.Aftertaste = mean("aftertaste")
	return avg
}
