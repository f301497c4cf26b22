package engine

import (
	"os"
	"path/filepath"

	"github.com/rxtech-lab/argo-grid/internal/strategy"
	"github.com/rxtech-lab/argo-grid/pkg/errors"
)

// WriteCheckpoint replaces the checkpoint at path with snapshot. The file is written next
// to path and renamed so a crash never leaves a partial checkpoint behind.
func WriteCheckpoint(path string, snapshot any) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(errors.ErrCodeInvalidSnapshot, err, "failed to create checkpoint directory %s", dir)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidSnapshot, "failed to create checkpoint", err)
	}

	defer os.Remove(tmp.Name())

	if err := strategy.WriteSnapshot(tmp, snapshot); err != nil {
		tmp.Close()

		return err
	}

	if err := tmp.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidSnapshot, "failed to write checkpoint", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidSnapshot, "failed to replace checkpoint", err)
	}

	return nil
}

// ReadCheckpoint loads a snapshot from path. The boolean is false when no checkpoint exists.
func ReadCheckpoint[T strategy.GridSnapshot | strategy.PercentageSnapshot](path string) (T, bool, error) {
	var zero T

	file, err := os.Open(path)
	if os.IsNotExist(err) {
		return zero, false, nil
	}

	if err != nil {
		return zero, false, errors.Wrapf(errors.ErrCodeInvalidSnapshot, err, "failed to open checkpoint %s", path)
	}
	defer file.Close()

	snapshot, err := strategy.ReadSnapshot[T](file)
	if err != nil {
		return zero, false, err
	}

	return snapshot, true, nil
}
