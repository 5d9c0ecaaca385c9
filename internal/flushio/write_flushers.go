package flushio

import "io"

// Tee combines any number of WriteFlusher-s into a single one that writes
// into and flushes all of them; nil entries are skipped.
func Tee(wfs ...WriteFlusher) WriteFlusher {
	var tee teeFlusher
	for _, wf := range wfs {
		if wf == nil {
			continue
		}
		if more, is := wf.(teeFlusher); is {
			tee = append(tee, more...)
		} else {
			tee = append(tee, wf)
		}
	}
	switch len(tee) {
	case 0:
		return nopFlusher{io.Discard}
	case 1:
		return tee[0]
	default:
		return tee
	}
}

type teeFlusher []WriteFlusher

func (tee teeFlusher) Write(p []byte) (n int, err error) {
	for _, wf := range tee {
		n, err = wf.Write(p)
		if err != nil {
			return n, err
		}
		if n != len(p) {
			return n, io.ErrShortWrite
		}
	}
	return len(p), nil
}

func (tee teeFlusher) Flush() (err error) {
	for _, wf := range tee {
		if ferr := wf.Flush(); err == nil {
			err = ferr
		}
	}
	return err
}
