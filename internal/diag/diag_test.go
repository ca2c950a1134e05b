package diag_test

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rsyslog/go-lognorm/internal/diag"
)

func TestNewLogrusSinkDefaultsToFreshLogger(t *testing.T) {
	s := diag.NewLogrusSink(nil)
	require.NotNil(t, s.Log)
}

func TestLogrusSinkDebugfLogsAtDebugLevel(t *testing.T) {
	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)
	s := diag.NewLogrusSink(log)

	s.Debugf("matched %q at offset %d", "foo", 3)

	require.Len(t, hook.Entries, 1)
	assert.Equal(t, logrus.DebugLevel, hook.Entries[0].Level)
	assert.Contains(t, hook.LastEntry().Message, "matched")
}

func TestLogrusSinkErrorfAttachesCodeField(t *testing.T) {
	log, hook := test.NewNullLogger()
	s := diag.NewLogrusSink(log)

	s.Errorf("BadConfig", "rule %d has no body", 2)

	require.Len(t, hook.Entries, 1)
	assert.Equal(t, logrus.ErrorLevel, hook.Entries[0].Level)
	assert.Equal(t, "BadConfig", hook.LastEntry().Data["code"])
}

func TestNopAnnotatorDoesNothing(t *testing.T) {
	var calls int
	diag.NopAnnotator{}.Annotate([]string{"tag"}, func(key string, value any) {
		calls++
	})
	assert.Equal(t, 0, calls)
}
