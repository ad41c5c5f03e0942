package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fakeuser/internal/domain"
	"fakeuser/internal/generator"
)

func TestWriteStudentsJSONLines(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeStudents(&buf, generator.New(1), 3))

	scanner := bufio.NewScanner(&buf)
	lines := 0
	for scanner.Scan() {
		var raw map[string]string
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &raw))
		assert.NotEmpty(t, raw["stuId"])
		assert.NotEmpty(t, raw["stuName"])
		assert.Contains(t, domain.Departments, raw["stuDpt"])
		lines++
	}
	assert.Equal(t, 3, lines)
}

func TestWriteStudentsRejectsNonPositiveCount(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, writeStudents(&buf, generator.New(1), 0))
	assert.Zero(t, buf.Len())
}
