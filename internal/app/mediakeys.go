package app

import "encoding/binary"

// Linux input event codes for media keys.
const (
	evKey           = 0x01
	keyNextSong     = 163
	keyPlayPause    = 164
	keyPreviousSong = 165
	keyRewind       = 168
	keyPlayCD       = 200
	keyPauseCD      = 201
	keyFastForward  = 208
)

var mediaKeyActions = map[uint16]Action{
	keyPlayPause:    ActionPlayPause,
	keyPlayCD:       ActionPlayPause,
	keyPauseCD:      ActionPlayPause,
	keyFastForward:  ActionSeekForward,
	keyNextSong:     ActionSeekForward,
	keyRewind:       ActionSeekBackward,
	keyPreviousSong: ActionSeekBackward,
}

// mediaKeys delivers presses of hardware media keys to the UI thread.
// A nil *mediaKeys never reports anything.
type mediaKeys struct {
	ch chan Action
}

func newMediaKeys() *mediaKeys {
	return &mediaKeys{ch: make(chan Action, 8)}
}

// poll returns the oldest undelivered press, or ActionNone.
func (k *mediaKeys) poll() Action {
	if k == nil {
		return ActionNone
	}
	select {
	case a := <-k.ch:
		return a
	default:
		return ActionNone
	}
}

// handle maps one raw input event to an action and queues it. Presses are
// dropped while the queue is full.
func (k *mediaKeys) handle(buf []byte) {
	typ, code, value := parseInputEvent(buf)
	if typ != evKey || value != 1 {
		return
	}
	a, ok := mediaKeyActions[code]
	if !ok {
		return
	}
	select {
	case k.ch <- a:
	default:
	}
}

// parseInputEvent decodes the type, code and value that end a struct
// input_event, whatever the size of its timestamp.
func parseInputEvent(buf []byte) (typ, code uint16, value int32) {
	n := len(buf)
	if n < 8 {
		return 0, 0, 0
	}
	typ = binary.LittleEndian.Uint16(buf[n-8 : n-6])
	code = binary.LittleEndian.Uint16(buf[n-6 : n-4])
	value = int32(binary.LittleEndian.Uint32(buf[n-4:]))
	return typ, code, value
}
