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

//go:build !windows

package libtxs

import (
	"io"
	"os"

	"golang.org/x/sys/unix"
)

type unixLocker struct {
	setLockWait int
}

func makeLocker() (*unixLocker, error) {
	return &unixLocker{setLockWait: unix.F_SETLKW}, nil
}

func (f *unixLocker) lock(fd *os.File, kind int16) error {
	flock := &unix.Flock_t{
		Type:   kind,
		Whence: int16(io.SeekStart),
		Start:  0,
		Len:    0,
	}
	return unix.FcntlFlock(fd.Fd(), f.setLockWait, flock)
}

func (f *unixLocker) tryRLock(fd *os.File) error {
	return f.lock(fd, unix.F_RDLCK)
}

func (f *unixLocker) tryLock(fd *os.File) error {
	return f.lock(fd, unix.F_WRLCK)
}

func (f *unixLocker) unlock(fd *os.File) error {
	return f.lock(fd, unix.F_UNLCK)
}
