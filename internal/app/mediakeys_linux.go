//go:build linux

package app

import (
	"log"
	"os"
	"path/filepath"
	"unsafe"
)

// inputEventSize is the size of a Linux input_event struct (timeval + u16 + u16 + s32).
var inputEventSize = int(unsafe.Sizeof(struct {
	Sec, Usec int64
	Type      uint16
	Code      uint16
	Value     int32
}{}))

// watchMediaKeys reads every readable /dev/input/event* device for media key
// presses. Devices without read permission are skipped.
func watchMediaKeys() *mediaKeys {
	k := newMediaKeys()
	matches, err := filepath.Glob("/dev/input/event*")
	if err != nil || len(matches) == 0 {
		return k
	}
	for _, path := range matches {
		go k.read(path)
	}
	return k
}

func (k *mediaKeys) read(path string) {
	f, err := os.Open(path)
	if err != nil {
		return
	}
	defer f.Close()

	buf := make([]byte, inputEventSize)
	for {
		if _, err := f.Read(buf); err != nil {
			log.Printf("evdev: stopped reading %s: %v", filepath.Base(path), err)
			return
		}
		k.handle(buf)
	}
}
