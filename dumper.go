package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jcorbin/wordforth/forth"
)

type sessionDumper struct {
	out io.Writer
}

func (dump sessionDumper) dumpStack(stack []int32) {
	fmt.Fprintf(dump.out, "<%v> %v\n", len(stack), formatStack(stack))
}

func (dump sessionDumper) dumpWords(words []forth.Word) {
	if len(words) == 0 {
		fmt.Fprintf(dump.out, "no words defined\n")
		return
	}
	width := 0
	for _, w := range words {
		if len(w.Name) > width {
			width = len(w.Name)
		}
	}
	for _, w := range words {
		fmt.Fprintf(dump.out, "  %-*v %v\n", width, w.Name, strings.Join(w.Body, " "))
	}
}

func formatStack(stack []int32) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, val := range stack {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.FormatInt(int64(val), 10))
	}
	sb.WriteByte(']')
	return sb.String()
}
