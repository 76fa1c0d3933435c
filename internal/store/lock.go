package store

import (
	"fmt"
	"os"
)

type fileLock struct {
	file *os.File
}

func acquireLock(lockPath string) (*fileLock, error) {
	lockFile, err := os.OpenFile(lockPath, os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open lock file: %w", err)
	}

	if err := lockExclusive(lockFile); err != nil {
		lockFile.Close()
		if isWouldBlock(err) {
			return nil, ErrLocked
		}
		return nil, fmt.Errorf("failed to acquire lock: %w", err)
	}

	return &fileLock{file: lockFile}, nil
}

func (l *fileLock) Release() error {
	if l == nil || l.file == nil {
		return nil
	}
	unlockErr := unlock(l.file)
	closeErr := l.file.Close()
	l.file = nil
	if unlockErr != nil {
		return unlockErr
	}
	return closeErr
}
