package version

import (
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/rxtech-lab/argo-grid/pkg/errors"
)

// CheckCompatibility checks whether a checkpoint written by snapshotVersion can be restored
// by currentVersion.
//
// Compatibility Rules:
//   - If either version is "main" (development build), the check is skipped
//   - Major versions must match exactly
//   - Minor versions must match exactly
//   - Patch versions can differ (e.g., 1.2.0 reads checkpoints from 1.2.5)
//
// A version that does not parse fails with ErrCodeInvalidSnapshot, a mismatch with
// ErrCodeVersionMismatch.
func CheckCompatibility(currentVersion, snapshotVersion string) error {
	currentVersion = strings.TrimPrefix(currentVersion, "v")
	snapshotVersion = strings.TrimPrefix(snapshotVersion, "v")

	if currentVersion == "main" || snapshotVersion == "main" {
		return nil
	}

	current, err := semver.NewVersion(currentVersion)
	if err != nil {
		return errors.Wrapf(errors.ErrCodeInvalidSnapshot, err, "invalid current version '%s'", currentVersion)
	}

	snapshot, err := semver.NewVersion(snapshotVersion)
	if err != nil {
		return errors.Wrapf(errors.ErrCodeInvalidSnapshot, err, "invalid snapshot version '%s'", snapshotVersion)
	}

	if current.Major() != snapshot.Major() {
		return errors.Newf(errors.ErrCodeVersionMismatch, "major version mismatch: running %d.x.x but checkpoint was written by %d.x.x",
			current.Major(), snapshot.Major())
	}

	if current.Minor() != snapshot.Minor() {
		return errors.Newf(errors.ErrCodeVersionMismatch, "minor version mismatch: running %d.%d.x but checkpoint was written by %d.%d.x",
			current.Major(), current.Minor(),
			snapshot.Major(), snapshot.Minor())
	}

	return nil
}

// CheckSnapshot checks snapshotVersion against the running version.
func CheckSnapshot(snapshotVersion string) error {
	return CheckCompatibility(GetVersion(), snapshotVersion)
}
