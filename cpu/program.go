package cpu

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"
)

// Statement is a line of source that produced bytes in the program.
type Statement struct {
	LineNo    int      // Source line number, 1 based.
	Address   int      // Address of the first byte.
	Words     []string // Source words after expansion.
	Bytes     []byte   // Generated bytes.
	LinkLabel string   // Label to resolve into the last byte, if any.
}

// Program is a memory image with its source mapping.
type Program struct {
	Statements []Statement
}

// Debug locates the statement containing an address.
type Debug struct {
	*Statement
	Index int
}

// Debug returns the statement that generated the byte at address.
func (prog *Program) Debug(address int) (dbg Debug) {
	for n, st := range prog.Statements {
		if address >= st.Address && address < st.Address+len(st.Bytes) {
			dbg = Debug{
				Statement: &prog.Statements[n],
				Index:     address - st.Address,
			}
			break
		}
	}

	return
}

// Bytes iterates over every (address, byte) pair in the program.
func (prog *Program) Bytes() iter.Seq2[int, byte] {
	return func(yield func(address int, value byte) bool) {
		for _, st := range prog.Statements {
			for n, value := range st.Bytes {
				if !yield(st.Address+n, value) {
					return
				}
			}
		}
	}
}

// Binary returns the flat memory image, starting at address 0.
func (prog *Program) Binary() (bins []byte) {
	for address, value := range prog.Bytes() {
		for len(bins) <= address {
			bins = append(bins, 0)
		}
		bins[address] = value
	}

	return
}

// Load writes the program into memory.
func (prog *Program) Load(mem Memory) (err error) {
	if len(prog.Binary()) > mem.Size() {
		err = ErrImageSize
		return
	}

	for address, value := range prog.Bytes() {
		err = mem.Write(address, value)
		if err != nil {
			return
		}
	}

	return
}

// WriteImage writes the program in the `.ls8` text format.
// The first byte of each statement is annotated with its source.
func (prog *Program) WriteImage(w io.Writer) (err error) {
	bw := bufio.NewWriter(w)

	for _, st := range prog.Statements {
		for n, value := range st.Bytes {
			line := fmt.Sprintf("%08b", value)
			if n == 0 && len(st.Words) > 0 {
				line += " # " + strings.Join(st.Words, " ")
			}
			_, err = fmt.Fprintln(bw, line)
			if err != nil {
				return
			}
		}
	}

	err = bw.Flush()
	return
}

// ParseImage reads an `.ls8` image: one byte per line as 8 binary digits.
// Text after '#' is a comment; blank lines are ignored.
func ParseImage(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	prog = &Program{}
	address := 0

	for scanner.Scan() {
		line = scanner.Text()
		lineno += 1

		text, comment, _ := strings.Cut(line, "#")
		words := strings.Fields(text)
		if len(words) == 0 {
			continue
		}
		if len(words) > 1 {
			err = ErrOpcodeExtraArgs
			return
		}

		word := words[0]
		if len(word) != 8 || strings.Trim(word, "01") != "" {
			err = ErrImageSyntax
			return
		}

		var value uint64
		value, err = strconv.ParseUint(word, 2, 8)
		if err != nil {
			return
		}

		st := Statement{
			LineNo:  lineno,
			Address: address,
			Bytes:   []byte{byte(value)},
		}
		if comment = strings.TrimSpace(comment); len(comment) > 0 {
			st.Words = []string{comment}
		}
		prog.Statements = append(prog.Statements, st)
		address++
	}

	err = scanner.Err()
	return
}
