package core

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogger(t *testing.T) {
	var tests = []struct {
		level    VerboseLevel // input
		expected []string     // output
	}{
		{VerboseOff, []string{"warn"}},
		{VerboseInfo, []string{"warn", "info"}},
		{VerboseDebug, []string{"warn", "info", "debug"}},
		{VerboseTrace, []string{"warn", "info", "debug", "trace"}},
	}
	for _, tt := range tests {
		var out bytes.Buffer
		logger := NewLogger(&out).SetVerboseLevel(tt.level)
		logger.out.SetFlags(0)

		logger.Warnf("%s", "warn")
		logger.Infof("info")
		logger.Debugf("%s", "debug")
		logger.Tracef("trace")

		var lines []string
		for _, line := range bytes.Split(bytes.TrimSpace(out.Bytes()), []byte("\n")) {
			lines = append(lines, string(line))
		}
		assert.Equal(t, tt.expected, lines)
		assert.Equal(t, tt.level, logger.VerboseLevel())
	}
}
