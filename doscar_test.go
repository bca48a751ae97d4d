/*
 * doscar_test.go, part of godos.
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
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"k8s.io/klog/v2"
)

var rootdirtest string = "test"

const skipped = "skip\nskip\nskip\nskip\n"

//a DOSCAR with one atom, total block and atom block of 3x2 each.
const smallDOSCAR = "1 1 1 0\n" + skipped +
	"10.0 -5.0 3 2.5 1.0\n" +
	"-1.0 0.1\n" +
	"0.0 0.2\n" +
	"1.0 0.3\n" +
	"10.0 -5.0 3 2.5 1.0\n" +
	"-1.0 1.1\n" +
	"0.0 1.2\n" +
	"1.0 1.3\n"

//the same, without the total block.
const oldDOSCAR = "1 1 1 0\n" + skipped +
	"10.0 -5.0 3 2.5 1.0\n" +
	"-1.0 1.1\n" +
	"0.0 1.2\n" +
	"1.0 1.3\n"

var approx = cmpopts.EquateApprox(0, 1e-12)

func TestDOSCARSmall(Te *testing.T) {
	L, err := DOSCARRead(strings.NewReader(smallDOSCAR))
	if err != nil {
		Te.Fatal(err)
	}
	fmt.Println(L)
	if b, r, c := L.Dims(); b != 2 || r != 3 || c != 2 {
		Te.Errorf("Wrong shape: (%d,%d,%d), expected (2,3,2)", b, r, c)
	}
	if L.Atoms() != 1 || L.Recovered() || L.Shifted() {
		Te.Errorf("Wrong state: atoms %d recovered %v shifted %v", L.Atoms(), L.Recovered(), L.Shifted())
	}
	e, err := L.EnergyGrid()
	if err != nil {
		Te.Fatal(err)
	}
	if d := cmp.Diff([]float64{-1, 0, 1}, e, approx); d != "" {
		Te.Errorf("Wrong energy grid (-want +got):\n%s", d)
	}
	s, err := L.Series(0, 1)
	if err != nil {
		Te.Fatal(err)
	}
	if d := cmp.Diff([]float64{0.1, 0.2, 0.3}, s, approx); d != "" {
		Te.Errorf("Wrong total DOS (-want +got):\n%s", d)
	}
	L.SetFermi(1.0)
	for b := 0; b < 2; b++ {
		s, _ := L.Series(b, 0)
		if d := cmp.Diff([]float64{-2, -1, 0}, s, approx); d != "" {
			Te.Errorf("Wrong shifted energies in block %d (-want +got):\n%s", b, d)
		}
	}
}

func TestDOSCARFile(Te *testing.T) {
	L, err := DOSCARFileRead(rootdirtest + "/DOSCAR")
	if err != nil {
		Te.Fatal(err)
	}
	b, r, c := L.Dims()
	if b != 3 || r != 5 || c != 4 {
		Te.Fatalf("Wrong shape: (%d,%d,%d), expected (3,5,4)", b, r, c)
	}
	//the total block only had 3 columns, the 4th must be zero.
	tot, _ := L.Series(0, 2)
	if d := cmp.Diff([]float64{0, 0.1, 0.6, 0.9, 1.0}, tot, approx); d != "" {
		Te.Errorf("Wrong integrated DOS (-want +got):\n%s", d)
	}
	last, _ := L.Series(0, 3)
	if d := cmp.Diff(make([]float64, 5), last, approx); d != "" {
		Te.Errorf("Padding column not zero (-want +got):\n%s", d)
	}
	if L.FileName() != rootdirtest+"/DOSCAR" {
		Te.Errorf("Wrong file name %s", L.FileName())
	}
	d2, _ := L.Series(2, 1)
	if L.At(2, 3, 1) != d2[3] || d2[3] != 0.051 {
		Te.Errorf("At and Series disagree: %v %v", L.At(2, 3, 1), d2[3])
	}
}

func TestDOSCARShapeInvariant(Te *testing.T) {
	for natoms := 1; natoms < 5; natoms++ {
		var sb strings.Builder
		fmt.Fprintf(&sb, "%d\n%s", natoms, skipped)
		for b := 0; b <= natoms; b++ {
			cols := 4
			if b == 0 {
				cols = 3
			}
			fmt.Fprintf(&sb, "x x 6 y\n")
			for r := 0; r < 6; r++ {
				for c := 0; c < cols; c++ {
					fmt.Fprintf(&sb, " %d.5", b+r+c)
				}
				sb.WriteString("\n")
			}
		}
		L, err := DOSCARRead(strings.NewReader(sb.String()))
		if err != nil {
			Te.Fatal(err)
		}
		b, r, c := L.Dims()
		if b != natoms+1 || r != 6 || c != 4 {
			Te.Errorf("%d atoms: shape (%d,%d,%d)", natoms, b, r, c)
		}
		for i := 0; i < b; i++ {
			m, _ := L.Block(i)
			if mr, mc := m.Dims(); mr != r || mc != c {
				Te.Errorf("%d atoms: block %d is %dx%d", natoms, i, mr, mc)
			}
		}
	}
}

//captureLog sends klog output to a buffer until the returned function is called.
func captureLog() (*bytes.Buffer, func()) {
	var buf bytes.Buffer
	klog.LogToStderr(false)
	klog.SetOutput(&buf)
	return &buf, func() {
		klog.Flush()
		klog.SetOutput(os.Stderr)
		klog.LogToStderr(true)
	}
}

func TestDOSCARRecovery(Te *testing.T) {
	buf, restore := captureLog()
	L, err := DOSCARRead(strings.NewReader(oldDOSCAR))
	klog.Flush()
	logged := buf.String()
	restore()
	if err != nil {
		Te.Fatal(err)
	}
	fmt.Println(logged)
	if !strings.HasPrefix(logged, "W") || !strings.Contains(logged, "Inserting an empty block 0") {
		Te.Errorf("No warning logged for the missing block, got %q", logged)
	}
	if b, r, c := L.Dims(); b != 2 || r != 3 || c != 2 {
		Te.Errorf("Wrong shape: (%d,%d,%d), expected (2,3,2)", b, r, c)
	}
	if !L.Recovered() {
		Te.Error("Recovery not reported")
	}
	zero := make([]float64, 3)
	for c := 0; c < 2; c++ {
		s, _ := L.Series(0, c)
		if d := cmp.Diff(zero, s, approx); d != "" {
			Te.Errorf("Block 0 column %d not zero (-want +got):\n%s", c, d)
		}
	}
	e, _ := L.EnergyGrid()
	if d := cmp.Diff([]float64{-1, 0, 1}, e, approx); d != "" {
		Te.Errorf("Wrong energy grid (-want +got):\n%s", d)
	}
	L2, err := DOSCARFileRead(rootdirtest + "/DOSCAR.old")
	if err != nil {
		Te.Fatal(err)
	}
	if b, r, c := L2.Dims(); b != 3 || r != 5 || c != 4 || !L2.Recovered() {
		Te.Errorf("Wrong recovered file: (%d,%d,%d) %v", b, r, c, L2.Recovered())
	}
}

func TestDOSCARErrors(Te *testing.T) {
	cases := []struct {
		name    string
		text    string
		message string
		block   int
		line    int
	}{
		{"atoms", "natoms\n" + skipped, BadAtomCount, -1, 1},
		{"huge atom count", "9223372036854775807\n" + skipped, NoBlockToShape, 0, 6},
		{"large atom count", "10000000000\n" + skipped + "a b 1\n1 2\n", TooManyMissing, 2, 8},
		{"blank header", "1\n" + skipped + "a b 1\n1 2\n\na b 1\n1 2\n", BadRowCount, 1, 8},
		{"empty", "", BadAtomCount, -1, 1},
		{"short header", "1\nskip\n", HeaderEOF, -1, 3},
		{"row count", "1\n" + skipped + "10.0 -5.0 three\n", BadRowCount, 0, 6},
		{"no row count", "1\n" + skipped + "10.0 -5.0\n", BadRowCount, 0, 6},
		{"zero rows", "1\n" + skipped + "10.0 -5.0 0\n", BadRowCount, 0, 6},
		{"columns", "1\n" + skipped + "a b 2\n1 2\n1 2 3\n", BadColumnCount, 0, 8},
		{"number", "1\n" + skipped + "a b 2\n1 2\n1 x\n", BadNumber, 0, 8},
		{"empty row", "1\n" + skipped + "a b 2\n\n", EmptyRow, 0, 7},
		{"mid block", "1\n" + skipped + "a b 3\n1 2\n1 2\n", BlockEOF, 0, 9},
		{"no blocks", "1\n" + skipped, NoBlockToShape, 0, 6},
		{"two missing", "2\n" + skipped + "a b 1\n1 2\n", TooManyMissing, 2, 8},
		{"inconsistent", "2\n" + skipped + "a b 1\n1 2\na b 1\n1 2\na b 2\n1 2\n1 2\n", InconsistentBlocks, 2, 0},
	}
	for _, c := range cases {
		L, err := DOSCARRead(strings.NewReader(c.text))
		if err == nil {
			Te.Errorf("%s: no error, got %v", c.name, L)
			continue
		}
		if L != nil {
			Te.Errorf("%s: partial LDOS returned with error", c.name)
		}
		var e *Error
		if !errors.As(err, &e) {
			Te.Errorf("%s: error of wrong type %T: %v", c.name, err, err)
			continue
		}
		if !strings.HasPrefix(e.message, c.message) || e.Block() != c.block || e.Line() != c.line {
			Te.Errorf("%s: got %q block %d line %d, expected %q block %d line %d", c.name, e.message, e.Block(), e.Line(), c.message, c.block, c.line)
		}
		if !IsKind(err, FormatError) || !e.Critical() {
			Te.Errorf("%s: wrong kind %v", c.name, e.Kind())
		}
	}
}

func TestDOSCARBadLineContent(Te *testing.T) {
	_, err := DOSCARRead(strings.NewReader("1\n" + skipped + "10.0 -5.0 three 1.0\r\n"))
	if err == nil {
		Te.Fatal("no error")
	}
	fmt.Println(err)
	if !strings.Contains(err.Error(), `"10.0 -5.0 three 1.0"`) || !strings.Contains(err.Error(), "block 0") {
		Te.Errorf("error doesn't show the offending line: %v", err)
	}
}

func TestDOSCARTrailingBlankLines(Te *testing.T) {
	for _, tail := range []string{"\n", "\n   \n\t\n", "\r\n"} {
		L, err := DOSCARRead(strings.NewReader(oldDOSCAR + tail))
		if err != nil {
			Te.Fatalf("trailing %q: %v", tail, err)
		}
		if b, r, c := L.Dims(); b != 2 || r != 3 || c != 2 || !L.Recovered() {
			Te.Errorf("trailing %q: shape (%d,%d,%d), recovered %v", tail, b, r, c, L.Recovered())
		}
	}
	//a complete file with trailing blank lines reads as it is.
	L, err := DOSCARRead(strings.NewReader(smallDOSCAR + "\n\n"))
	if err != nil || L.Recovered() {
		Te.Errorf("complete file with trailing blank lines: %v %v", err, L)
	}
}

func TestDOSCARNoRecovery(Te *testing.T) {
	o := DefaultOptions()
	o.Recover(false)
	_, err := DOSCARRead(strings.NewReader(oldDOSCAR), o)
	var e *Error
	if !errors.As(err, &e) || e.message != RecoveryDisabled {
		Te.Errorf("Expected %q, got %v", RecoveryDisabled, err)
	}
}

func TestDOSCARFortranExponents(Te *testing.T) {
	text := "1\n" + skipped + "a b 2\n-1.0D+00 1.0d-01\n1.0D+00 2.0E-01\n" + "a b 2\n-1.0 1\n1.0 2\n"
	L, err := DOSCARRead(strings.NewReader(text))
	if err != nil {
		Te.Fatal(err)
	}
	s, _ := L.Series(0, 1)
	if d := cmp.Diff([]float64{0.1, 0.2}, s, approx); d != "" {
		Te.Errorf("Wrong values (-want +got):\n%s", d)
	}
}

func TestSeries(Te *testing.T) {
	L, err := DOSCARFileRead(rootdirtest + "/DOSCAR")
	if err != nil {
		Te.Fatal(err)
	}
	_, rows, cols := L.Dims()
	for atom := 0; atom <= L.Atoms(); atom++ {
		m, _ := L.Block(atom)
		for orb := 0; orb < cols; orb++ {
			s, err := L.Series(atom, orb)
			if err != nil {
				Te.Fatal(err)
			}
			if len(s) != rows {
				Te.Errorf("Series(%d,%d) has %d values, expected %d", atom, orb, len(s), rows)
			}
			for r, v := range s {
				if v != m.At(r, orb) {
					Te.Errorf("Series(%d,%d)[%d]=%v, block has %v", atom, orb, r, v, m.At(r, orb))
				}
			}
		}
	}
	dest := make([]float64, rows+3)
	s, _ := L.Series(1, 2, dest)
	if &s[0] != &dest[0] || len(s) != rows {
		Te.Error("Series didn't use the given slice")
	}
	for _, bad := range [][2]int{{-1, 0}, {3, 0}, {1, -1}, {1, 4}} {
		if _, err := L.Series(bad[0], bad[1]); !IsKind(err, OutOfRange) {
			Te.Errorf("Series(%d,%d): expected out of range error, got %v", bad[0], bad[1], err)
		}
	}
	if _, err := L.Block(7); !IsKind(err, OutOfRange) {
		Te.Errorf("Block(7): expected out of range error, got %v", err)
	}
	//Block gives a copy
	m, _ := L.Block(1)
	m.Set(0, 0, 1000)
	if L.At(1, 0, 0) == 1000 {
		Te.Error("Block returned the LDOS' own storage")
	}
}

func TestEnergyGridNoAtoms(Te *testing.T) {
	L, err := DOSCARRead(strings.NewReader("0\n" + skipped + "a b 2\n-1 0.5\n1 0.7\n"))
	if err != nil {
		Te.Fatal(err)
	}
	if _, err := L.EnergyGrid(); !IsKind(err, OutOfRange) {
		Te.Errorf("Expected an error for an LDOS with only one block, got %v", err)
	}
}
