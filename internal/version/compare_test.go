package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rxtech-lab/argo-grid/pkg/errors"
)

func TestCheckCompatibility(t *testing.T) {
	tests := []struct {
		name            string
		currentVersion  string
		snapshotVersion string
		expectedCode    errors.ErrorCode
		errorContains   string
	}{
		{
			name:            "exact match",
			currentVersion:  "1.2.0",
			snapshotVersion: "1.2.0",
		},
		{
			name:            "current patch higher",
			currentVersion:  "1.2.1",
			snapshotVersion: "1.2.0",
		},
		{
			name:            "snapshot patch higher",
			currentVersion:  "1.2.0",
			snapshotVersion: "1.2.5",
		},
		{
			name:            "v prefix on one side",
			currentVersion:  "v0.4.0",
			snapshotVersion: "0.4.3",
		},
		{
			name:            "current minor higher",
			currentVersion:  "1.3.0",
			snapshotVersion: "1.2.0",
			expectedCode:    errors.ErrCodeVersionMismatch,
			errorContains:   "minor version mismatch",
		},
		{
			name:            "major differs",
			currentVersion:  "2.0.0",
			snapshotVersion: "1.2.0",
			expectedCode:    errors.ErrCodeVersionMismatch,
			errorContains:   "major version mismatch",
		},
		{
			name:            "current is main",
			currentVersion:  "main",
			snapshotVersion: "1.2.0",
		},
		{
			name:            "snapshot is main",
			currentVersion:  "1.2.0",
			snapshotVersion: "main",
		},
		{
			name:            "invalid current",
			currentVersion:  "not-a-version",
			snapshotVersion: "1.2.0",
			expectedCode:    errors.ErrCodeInvalidSnapshot,
			errorContains:   "invalid current version",
		},
		{
			name:            "empty snapshot",
			currentVersion:  "1.2.0",
			snapshotVersion: "",
			expectedCode:    errors.ErrCodeInvalidSnapshot,
			errorContains:   "invalid snapshot version",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckCompatibility(tt.currentVersion, tt.snapshotVersion)

			if tt.expectedCode == 0 {
				require.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.True(t, errors.HasCode(err, tt.expectedCode))
			assert.Contains(t, err.Error(), tt.errorContains)
		})
	}
}

func TestCheckSnapshot(t *testing.T) {
	original := Version
	t.Cleanup(func() { Version = original })

	Version = "v0.4.2"
	require.NoError(t, CheckSnapshot("v0.4.0"))
	assert.True(t, errors.HasCode(CheckSnapshot("v0.3.9"), errors.ErrCodeVersionMismatch))
}

func TestGetVersion(t *testing.T) {
	v := GetVersion()
	assert.Equal(t, Version, v)
}
