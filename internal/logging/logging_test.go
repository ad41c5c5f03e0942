package logging

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewParsesLevel(t *testing.T) {
	logger, err := New("debug")
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())

	logger, err = New("")
	require.NoError(t, err)
	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	logger, err := New("chatty")
	assert.Error(t, err)
	assert.NotNil(t, logger)
}

func TestNewWritesTextWithFields(t *testing.T) {
	var buf bytes.Buffer
	logger, err := newWithOutput("info", &buf)
	require.NoError(t, err)

	logger.WithField("user_id", 3).Info("created")
	assert.Contains(t, buf.String(), "user_id=3")
	assert.Contains(t, buf.String(), "msg=created")
}
