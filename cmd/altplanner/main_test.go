package main

import (
	"flag"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestSetupLogging(t *testing.T) {
	defer log.SetLevel(log.InfoLevel)

	tests := []struct {
		testName  string
		verbosity string
		expected  log.Level
	}{
		{testName: "debug", verbosity: "debug", expected: log.DebugLevel},
		{testName: "trace", verbosity: "trace", expected: log.TraceLevel},
		{testName: "unknown_falls_back_to_info", verbosity: "loud", expected: log.InfoLevel},
	}

	for _, test := range tests {
		t.Run(test.testName, func(t *testing.T) {
			setupLogging(test.verbosity)
			assert.Equal(t, test.expected, log.GetLevel())
		})
	}
}

// The test binary's own flags must still be parsed by the testing package.
func TestFlagsRegisteredWithoutParsing(t *testing.T) {
	assert.NotNil(t, flag.Lookup("config"))
	assert.Equal(t, "info", *verbosity)
}
