package filesystem

import (
	"os"
	"time"

	"github.com/saneatsu/saneatsu.me-sub001/pkg/clock"
	"github.com/saneatsu/saneatsu.me-sub001/pkg/resync"
)

var (
	// Lazy-load
	fileInfoReaderOnce      resync.Once
	fileInfoReaderSingleton FileInfoReader
)

type FileInfoReader interface {
	Lstat(name string) (os.FileInfo, error)
}

type StandardFileInfoReader struct{}

func (r StandardFileInfoReader) Lstat(name string) (os.FileInfo, error) {
	return os.Lstat(name)
}

// clockFileInfo overrides the modification time with the clock time.
type clockFileInfo struct {
	os.FileInfo
}

func (fi clockFileInfo) ModTime() time.Time {
	return clock.Now()
}

// ClockBasedFileInfoReader reports clock.Now() as the modification time of every file
// so that imported timestamps are reproducible in tests.
type ClockBasedFileInfoReader struct{}

func NewClockBasedFileInfoReader() *ClockBasedFileInfoReader {
	return &ClockBasedFileInfoReader{}
}

func (r ClockBasedFileInfoReader) Lstat(name string) (os.FileInfo, error) {
	// Execute the real Lstat function to reproduce errors
	stat, err := os.Lstat(name)
	if err != nil {
		return nil, err
	}
	return clockFileInfo{stat}, nil
}

func CurrentFileInfoReader() FileInfoReader {
	if fileInfoReaderSingleton != nil {
		return fileInfoReaderSingleton
	}
	fileInfoReaderOnce.Do(func() {
		fileInfoReaderSingleton = StandardFileInfoReader{}
	})
	return fileInfoReaderSingleton
}

// Same as os.Lstat() but makes possible to control time from unit tests.
func Lstat(name string) (os.FileInfo, error) {
	return CurrentFileInfoReader().Lstat(name)
}

func OverrideFileInfoReader(reader FileInfoReader) {
	fileInfoReaderSingleton = reader
}

func RestoreFileInfoReader() {
	fileInfoReaderSingleton = nil
	fileInfoReaderOnce.Reset()
}
