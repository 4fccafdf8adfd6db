//go:build linux

package threadid

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// maxOSNameLen is the kernel's TASK_COMM_LEN minus the terminating NUL.
const maxOSNameLen = 15

func setOSThreadName(name string) {
	if len(name) > maxOSNameLen {
		name = name[:maxOSNameLen]
	}
	p, err := unix.BytePtrFromString(name)
	if err != nil {
		// name contains a NUL byte
		return
	}
	_ = unix.Prctl(unix.PR_SET_NAME, uintptr(unsafe.Pointer(p)), 0, 0, 0)
}

// osThreadName reads back the current OS thread name.
func osThreadName() (string, bool) {
	var buf [maxOSNameLen + 1]byte
	if err := unix.Prctl(unix.PR_GET_NAME, uintptr(unsafe.Pointer(&buf[0])), 0, 0, 0); err != nil {
		return "", false
	}
	return unix.ByteSliceToString(buf[:]), true
}
