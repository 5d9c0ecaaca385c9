package fileinput

import (
	"bufio"
	"fmt"
	"io"
)

// Location names an a line in an Input file.
type Location struct {
	Name string
	Line int
}

// Line combines a Location with the text read there.
type Line struct {
	Location
	Text string
}

func (loc Location) String() string { return fmt.Sprintf("%v:%v", loc.Name, loc.Line) }
func (il Line) String() string      { return fmt.Sprintf("%v %q", il.Location, il.Text) }

// Input implements sequential line reading through a Queue of one or more
// input streams, tracking where each line came from. Streams that implement
// io.Closer are closed once exhausted.
type Input struct {
	Queue []io.Reader
	Scan  Line

	sc  *bufio.Scanner
	cur io.Reader
	err error
}

// Next advances to the next line of input, moving on through the Queue as
// each stream runs out; it returns false at the end of all input or after a
// read error, see Err.
func (in *Input) Next() bool {
	for in.err == nil {
		if in.sc == nil && !in.nextIn() {
			return false
		}
		if in.sc.Scan() {
			in.Scan.Line++
			in.Scan.Text = in.sc.Text()
			return true
		}
		in.err = in.sc.Err()
		in.closeCur()
	}
	return false
}

// Err returns the first read error encountered by Next.
func (in *Input) Err() error { return in.err }

// Close closes the current stream and any still queued.
func (in *Input) Close() error {
	err := in.closeCur()
	for _, r := range in.Queue {
		if cl, ok := r.(io.Closer); ok {
			if cerr := cl.Close(); err == nil {
				err = cerr
			}
		}
	}
	in.Queue = nil
	return err
}

func (in *Input) closeCur() (err error) {
	if cl, ok := in.cur.(io.Closer); ok {
		err = cl.Close()
	}
	in.cur, in.sc = nil, nil
	return err
}

func (in *Input) nextIn() bool {
	if len(in.Queue) == 0 {
		return false
	}
	r := in.Queue[0]
	in.Queue = in.Queue[1:]
	in.cur = r
	in.sc = bufio.NewScanner(r)
	in.Scan = Line{Location: Location{Name: nameOf(r)}}
	return true
}

func nameOf(obj interface{}) string {
	if nom, ok := obj.(interface{ Name() string }); ok {
		return nom.Name()
	}
	return fmt.Sprintf("<unnamed %T>", obj)
}
