package config

import (
	"github.com/eth-easl/altplanner/pkg/common"
	log "github.com/sirupsen/logrus"
)

func (c *PlannerConfiguration) ToParameterSet() common.ParameterSet {
	return common.ParameterSet{
		UseTemperature:    c.UseTemperature,
		StressTemperature: c.StressTemperature,
		UseHumidity:       c.UseHumidity,
		StressHumidity:    c.StressHumidity,
		ActivationEnergy:  c.ActivationEnergy,
		PeckExponent:      c.PeckExponent,
		EyringExponent:    c.EyringExponent,
		UVDerating:        c.UVDerating,
		ThermalDerating:   c.ThermalDerating,
		MechDerating:      c.MechDerating,
		Confidence:        c.Confidence,
		Reliability:       c.Reliability,
		Beta:              c.Beta,
		LifeHours:         c.LifeHours,
	}
}

func (c *PlannerConfiguration) SampleRange() common.SampleRange {
	return common.SampleRange{Start: c.SampleRangeStart, End: c.SampleRangeEnd}
}

// Validate checks the parameter domains and warns about targets outside the
// band usually accepted for zero-failure plans.
func (c *PlannerConfiguration) Validate() error {
	if err := c.ToParameterSet().Validate(); err != nil {
		return err
	}
	if err := c.SampleRange().Validate(); err != nil {
		return err
	}

	if !withinRecommendedBand(c.Confidence) {
		log.Warnf("Confidence %.3f is outside the recommended range [%.2f, %.2f]",
			c.Confidence, common.RecommendedMinProbability, common.RecommendedMaxProbability)
	}
	if !withinRecommendedBand(c.Reliability) {
		log.Warnf("Reliability %.3f is outside the recommended range [%.2f, %.2f]",
			c.Reliability, common.RecommendedMinProbability, common.RecommendedMaxProbability)
	}
	if c.StressTemperature <= c.UseTemperature {
		log.Warnf("Stress temperature %.1f°C does not exceed use temperature %.1f°C", c.StressTemperature, c.UseTemperature)
	}

	return nil
}

func withinRecommendedBand(p float64) bool {
	return p >= common.RecommendedMinProbability && p <= common.RecommendedMaxProbability
}
