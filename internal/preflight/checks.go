package preflight

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"golang.org/x/sys/unix"
)

// CheckDirectoryAccess verifies that the directory exists and is readable/writable.
func CheckDirectoryAccess(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}

// CheckFreeSpace verifies that the filesystem holding path has at least need
// bytes available to unprivileged users.
func CheckFreeSpace(name, path string, need uint64) Result {
	avail, err := AvailableBytes(path)
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: statfs: %v)", path, err)}
	}
	if avail < need {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: %s free, %s needed)",
			path, humanize.IBytes(avail), humanize.IBytes(need))}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (%s free)", path, humanize.IBytes(avail))}
}

// AvailableBytes returns the space available to unprivileged users on the
// filesystem holding path.
func AvailableBytes(path string) (uint64, error) {
	var st unix.Statfs_t
	if err := unix.Statfs(path, &st); err != nil {
		return 0, err
	}
	return uint64(st.Bavail) * uint64(st.Bsize), nil
}

// SameDevice reports whether a and b live on the same filesystem. Errors are
// reported as false.
func SameDevice(a, b string) bool {
	var sa, sb unix.Stat_t
	if err := unix.Stat(a, &sa); err != nil {
		return false
	}
	if err := unix.Stat(b, &sb); err != nil {
		return false
	}
	return sa.Dev == sb.Dev
}
