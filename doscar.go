/*
 * doscar.go, part of godos.
 *
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */

package dos

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
	"k8s.io/klog/v2"
)

//number of lines after the first one that carry nothing we use.
const skippedHeaderLines = 4

//DOSCARRead reads a VASP DOSCAR from r and returns the LDOS in it.
//The first line gives the number of atoms N, the next 4 are ignored, and
//then N+1 blocks follow, each one with a header line (the third field of which
//is the number of rows in the block) and that many rows of values.
//Some old VASP versions don't write the first (total DOS) block. For those files
//a zero block is put in its place, unless recovery is turned off in the options.
//Only the first element of options is used.
func DOSCARRead(r io.Reader, options ...*Options) (*LDOS, error) {
	L, err := readDOSCAR(r, "", optionsOrDefault(options))
	if err != nil {
		return nil, errDecorate(err, "DOSCARRead")
	}
	return L, nil
}

//lineReader gives the lines of a text one by one, keeping count.
type lineReader struct {
	r    *bufio.Reader
	line int
}

//next returns the next line without the line break, and true.
//At the end of the input it returns "", false and a nil error. That is
//not an error for us, the caller decides what it means.
func (l *lineReader) next() (string, bool, error) {
	s, err := l.r.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", false, &Error{message: "read failure: " + err.Error(), block: -1, line: l.line + 1, kind: FormatError, critical: true}
	}
	if err == io.EOF && s == "" {
		return "", false, nil
	}
	l.line++
	return strings.TrimRight(s, "\r\n"), true, nil
}

//nextHeader is next, but blank lines followed only by more blank lines count as
//the end of the input. A blank line followed by anything else is returned as is.
func (l *lineReader) nextHeader() (string, bool, error) {
	s, ok, err := l.next()
	if err != nil || !ok || strings.TrimSpace(s) != "" {
		return s, ok, err
	}
	blank, blankline := s, l.line
	for {
		s, ok, err = l.next()
		if err != nil {
			return "", false, err
		}
		if !ok {
			l.line = blankline - 1
			return "", false, nil
		}
		if strings.TrimSpace(s) != "" {
			l.line = blankline
			return blank, true, nil
		}
	}
}

func readDOSCAR(r io.Reader, name string, O *Options) (*LDOS, error) {
	lr := &lineReader{r: bufio.NewReader(r)}
	first, ok, err := lr.next()
	if err != nil {
		return nil, err
	}
	fields := strings.Fields(first)
	if !ok || len(fields) == 0 {
		return nil, formatErr(BadAtomCount, -1, 1, first)
	}
	natoms, err := strconv.Atoi(fields[0])
	if err != nil || natoms < 0 {
		return nil, formatErr(BadAtomCount, -1, 1, first)
	}
	for i := 0; i < skippedHeaderLines; i++ {
		_, ok, err := lr.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, formatErr(HeaderEOF, -1, lr.line+1, "")
		}
	}
	//natoms comes from the file, it can't be trusted to size anything.
	blocks := make([]*mat.Dense, 0, min(natoms, 63)+1)
	recovered := false
	var ndos int
	for nb := 0; nb <= natoms; nb++ {
		header, ok, err := lr.nextHeader()
		if err != nil {
			return nil, err
		}
		if !ok {
			//Old VASP versions don't write the total DOS block, so we run out of
			//lines one block too early.
			switch {
			case !O.Recover():
				return nil, formatErr(RecoveryDisabled, nb, lr.line+1, "")
			case recovered:
				return nil, formatErr(TooManyMissing, nb, lr.line+1, "")
			case len(blocks) == 0:
				return nil, formatErr(NoBlockToShape, nb, lr.line+1, "")
			}
			_, cols := blocks[0].Dims()
			klog.Warningf("Failed reading DOS block %d of %s, probably this DOSCAR is from an old VASP version that doesn't write the total DOS block first. Inserting an empty block 0", nb, nameOrInput(name))
			blocks = append([]*mat.Dense{mat.NewDense(ndos, cols, nil)}, blocks...)
			recovered = true
			continue
		}
		b, err := readBlock(lr, header, nb)
		if err != nil {
			return nil, err
		}
		var cols int
		ndos, cols = b.Dims()
		klog.V(4).InfoS("Read DOS block", "file", nameOrInput(name), "block", nb, "rows", ndos, "cols", cols)
		blocks = append(blocks, b)
	}
	if err := normalize(blocks); err != nil {
		return nil, err
	}
	L := &LDOS{dos: blocks, natoms: natoms, recovered: recovered, filename: name}
	if e := O.Fermi(); e != 0 {
		L.SetFermi(e)
	}
	return L, nil
}

//readBlock reads one DOS block. header is the already-read header line of the block,
//nb the index of the block, used only for error messages.
func readBlock(lr *lineReader, header string, nb int) (*mat.Dense, error) {
	hf := strings.Fields(header)
	if len(hf) < 3 {
		return nil, formatErr(BadRowCount, nb, lr.line, header)
	}
	ndos, err := strconv.Atoi(hf[2])
	if err != nil || ndos < 1 {
		return nil, formatErr(BadRowCount, nb, lr.line, header)
	}
	line, ok, err := lr.next()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, formatErr(BlockEOF, nb, lr.line+1, "")
	}
	fields := strings.Fields(line)
	cols := len(fields)
	if cols == 0 {
		return nil, formatErr(EmptyRow, nb, lr.line, line)
	}
	//the first row sets the number of columns for the whole block.
	data := make([]float64, ndos*cols)
	if err := parseRow(data[:cols], fields, nb, lr.line, line); err != nil {
		return nil, err
	}
	for i := 1; i < ndos; i++ {
		line, ok, err = lr.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, formatErr(fmt.Sprintf("%s: %d of %d rows read", BlockEOF, i, ndos), nb, lr.line+1, "")
		}
		if err := parseRow(data[i*cols:(i+1)*cols], strings.Fields(line), nb, lr.line, line); err != nil {
			return nil, err
		}
	}
	return mat.NewDense(ndos, cols, data), nil
}

//parseRow puts the values in fields into dst, which must have the same length.
func parseRow(dst []float64, fields []string, nb, lineno int, line string) error {
	if len(fields) != len(dst) {
		return formatErr(fmt.Sprintf("%s: %d values, %d expected", BadColumnCount, len(fields), len(dst)), nb, lineno, line)
	}
	var err error
	for i, v := range fields {
		dst[i], err = parseFloat(v)
		if err != nil {
			return formatErr(fmt.Sprintf("%s: %q", BadNumber, v), nb, lineno, line)
		}
	}
	return nil
}

//parseFloat is strconv.ParseFloat that also takes Fortran double precision
//exponents (1.0D-03).
func parseFloat(s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && strings.ContainsAny(s, "dD") {
		return strconv.ParseFloat(strings.NewReplacer("D", "E", "d", "e").Replace(s), 64)
	}
	return f, err
}

//normalize makes block 0 the same shape as block 1, zero-filling it
//and keeping whatever values it had in its top-left corner (usually the total
//DOS block has fewer columns than the atom blocks). The other blocks
//must already have the same shape as block 1.
func normalize(blocks []*mat.Dense) error {
	if len(blocks) < 2 {
		return nil
	}
	r1, c1 := blocks[1].Dims()
	if r0, c0 := blocks[0].Dims(); r0 != r1 || c0 != c1 {
		b0 := mat.NewDense(r1, c1, nil)
		b0.Copy(blocks[0]) //Copy only copies the overlapping part.
		blocks[0] = b0
	}
	for i, b := range blocks[2:] {
		if r, c := b.Dims(); r != r1 || c != c1 {
			return formatErr(fmt.Sprintf("%s: %dx%d, block 1 is %dx%d", InconsistentBlocks, r, c, r1, c1), i+2, 0, "")
		}
	}
	return nil
}

func nameOrInput(name string) string {
	if name == "" {
		return "<input>"
	}
	return name
}
