package config

import (
	"encoding/json"
	"os"

	"github.com/eth-easl/altplanner/pkg/common"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type PlannerConfiguration struct {
	UseTemperature    float64 `json:"UseTemperature"`
	StressTemperature float64 `json:"StressTemperature"`
	UseHumidity       float64 `json:"UseHumidity"`
	StressHumidity    float64 `json:"StressHumidity"`

	ActivationEnergy float64 `json:"ActivationEnergy"`
	PeckExponent     float64 `json:"PeckExponent"`
	EyringExponent   float64 `json:"EyringExponent"`

	UVDerating      float64 `json:"UVDerating"`
	ThermalDerating float64 `json:"ThermalDerating"`
	MechDerating    float64 `json:"MechDerating"`

	Confidence  float64 `json:"Confidence"`
	Reliability float64 `json:"Reliability"`
	Beta        float64 `json:"Beta"`
	LifeHours   float64 `json:"LifeHours"`

	SampleRangeStart int `json:"SampleRangeStart"`
	SampleRangeEnd   int `json:"SampleRangeEnd"`

	OutputPathPrefix string `json:"OutputPathPrefix"`
	EnablePlots      bool   `json:"EnablePlots"`
}

func DefaultConfiguration() PlannerConfiguration {
	p := common.DefaultParameterSet()

	return PlannerConfiguration{
		UseTemperature:    p.UseTemperature,
		StressTemperature: p.StressTemperature,
		UseHumidity:       p.UseHumidity,
		StressHumidity:    p.StressHumidity,
		ActivationEnergy:  p.ActivationEnergy,
		PeckExponent:      p.PeckExponent,
		EyringExponent:    p.EyringExponent,
		UVDerating:        p.UVDerating,
		ThermalDerating:   p.ThermalDerating,
		MechDerating:      p.MechDerating,
		Confidence:        p.Confidence,
		Reliability:       p.Reliability,
		Beta:              p.Beta,
		LifeHours:         p.LifeHours,

		SampleRangeStart: common.DefaultSampleRangeStart,
		SampleRangeEnd:   common.DefaultSampleRangeEnd,

		OutputPathPrefix: "data/out",
	}
}

// ParseConfiguration decodes a JSON configuration; absent fields keep their defaults.
func ParseConfiguration(data []byte) (PlannerConfiguration, error) {
	config := DefaultConfiguration()
	if err := json.Unmarshal(data, &config); err != nil {
		return PlannerConfiguration{}, errors.Wrap(err, "failed to parse planner configuration")
	}

	return config, nil
}

func ReadConfigurationFile(path string) PlannerConfiguration {
	byteValue, err := os.ReadFile(path)
	if err != nil {
		log.Fatal(err)
	}

	config, err := ParseConfiguration(byteValue)
	if err != nil {
		log.Fatal(err)
	}

	return config
}
