package fileutil

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"os"
	"syscall"

	cp "github.com/otiai10/copy"
)

// CopyOptions controls how CopyFile reproduces the source.
type CopyOptions struct {
	// PreserveTimes keeps the source access and modification times on dst.
	PreserveTimes bool
	// Sync flushes dst to stable storage before returning.
	Sync bool
}

// CopyFile copies src to dst, replacing dst when it exists. The file mode is
// carried over, and times when requested.
func CopyFile(src, dst string, opts CopyOptions) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("copy %s: source is a directory", src)
	}
	return cp.Copy(src, dst, cp.Options{
		PreserveTimes: opts.PreserveTimes,
		Sync:          opts.Sync,
	})
}

// CopyFileVerified streams src to dst with SHA256 + size integrity verification.
// Removes dst on mismatch.
func CopyFileVerified(src, dst string) (int64, error) {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return 0, fmt.Errorf("stat source: %w", err)
	}
	srcSize := srcInfo.Size()

	in, err := os.Open(src)
	if err != nil {
		return 0, err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, srcInfo.Mode().Perm())
	if err != nil {
		return 0, err
	}
	defer func() {
		_ = out.Close()
	}()

	srcHasher := sha256.New()
	dstHasher := sha256.New()
	tee := io.TeeReader(in, srcHasher)
	multi := io.MultiWriter(out, dstHasher)

	written, err := io.Copy(multi, tee)
	if err != nil {
		return written, err
	}
	if err := out.Close(); err != nil {
		return written, err
	}

	if written != srcSize {
		_ = os.Remove(dst)
		return written, fmt.Errorf("copy size mismatch: source %d bytes, copied %d bytes", srcSize, written)
	}

	if !bytes.Equal(srcHasher.Sum(nil), dstHasher.Sum(nil)) {
		_ = os.Remove(dst)
		return written, fmt.Errorf("copy hash mismatch: file corrupted during copy")
	}

	return written, nil
}

// MoveFile renames src to dst, replacing dst when the platform allows it.
// When the two paths live on different filesystems the file is copied with its
// times and the source is removed afterwards.
func MoveFile(src, dst string) error {
	err := os.Rename(src, dst)
	if err == nil {
		return nil
	}
	if !IsCrossDevice(err) {
		return err
	}
	if err := CopyFile(src, dst, CopyOptions{PreserveTimes: true, Sync: true}); err != nil {
		return fmt.Errorf("copy across filesystems: %w", err)
	}
	if err := os.Remove(src); err != nil {
		return fmt.Errorf("remove source after copy: %w", err)
	}
	return nil
}

// IsCrossDevice reports whether err is a rename failure caused by src and dst
// living on different filesystems.
func IsCrossDevice(err error) bool {
	return errors.Is(err, syscall.EXDEV)
}

// SameFile reports whether a and b refer to the same existing file.
func SameFile(a, b string) bool {
	ai, err := os.Stat(a)
	if err != nil {
		return false
	}
	bi, err := os.Stat(b)
	if err != nil {
		return false
	}
	return os.SameFile(ai, bi)
}

// CopyTimes sets the modification time of dst to that of src.
func CopyTimes(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}
	return os.Chtimes(dst, info.ModTime(), info.ModTime())
}
