// Copyright (C) 2019-2025 Algorand, Inc.
// This file is part of go-algorand
//
// go-algorand is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// go-algorand is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with go-algorand.  If not, see <https://www.gnu.org/licenses/>.

//go:build windows

package libtxs

import (
	"errors"
	"os"

	"golang.org/x/sys/windows"
)

type windowsLocker struct{}

func makeLocker() (*windowsLocker, error) {
	return &windowsLocker{}, nil
}

func (f *windowsLocker) lockFile(fd *os.File, flags uint32) error {
	if err := windows.LockFileEx(windows.Handle(fd.Fd()), flags, 0, 1, 0, &windows.Overlapped{}); err != nil {
		return errors.New("cannot lock file")
	}
	return nil
}

func (f *windowsLocker) tryRLock(fd *os.File) error {
	return f.lockFile(fd, windows.LOCKFILE_FAIL_IMMEDIATELY)
}

func (f *windowsLocker) tryLock(fd *os.File) error {
	return f.lockFile(fd, windows.LOCKFILE_EXCLUSIVE_LOCK|windows.LOCKFILE_FAIL_IMMEDIATELY)
}

func (f *windowsLocker) unlock(fd *os.File) error {
	if err := windows.UnlockFileEx(windows.Handle(fd.Fd()), 0, 1, 0, &windows.Overlapped{}); err != nil {
		return errors.New("cannot unlock file")
	}
	return nil
}
