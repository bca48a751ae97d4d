/*
 * errors.go, part of godos.
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
	"errors"
	"fmt"
	"strings"
)

// ErrorKind tells the broad class of an Error.
type ErrorKind int

const (
	//FormatError means the file could not be read. No data is returned with it.
	FormatError ErrorKind = iota
	//InvalidOperation means a method was called that the LDOS does not allow.
	InvalidOperation
	//OutOfRange is returned by the accessors when asked for a block, row or column that does not exist.
	OutOfRange
)

func (k ErrorKind) String() string {
	switch k {
	case FormatError:
		return "format error"
	case InvalidOperation:
		return "invalid operation"
	case OutOfRange:
		return "out of range"
	}
	return "unknown error"
}

// Error is the general structure for DOSCAR errors. It fulfills Decorator and FileError.
// block and line are -1 and 0 respectively when they don't apply.
type Error struct {
	message  string
	filename string //the input file that has problems, or empty string if none.
	block    int
	line     int    //1-based
	content  string //the raw offending line, if any
	kind     ErrorKind
	deco     []string
	critical bool
}

func (err Error) Error() string {
	var b strings.Builder
	name := err.filename
	if name == "" {
		name = "<input>"
	}
	fmt.Fprintf(&b, "doscar %s %s: %s", name, err.kind, err.message)
	if err.block >= 0 {
		fmt.Fprintf(&b, " (block %d", err.block)
		if err.line > 0 {
			fmt.Fprintf(&b, ", line %d", err.line)
		}
		b.WriteString(")")
	} else if err.line > 0 {
		fmt.Fprintf(&b, " (line %d)", err.line)
	}
	if err.content != "" {
		fmt.Fprintf(&b, ", line is: %q", err.content)
	}
	if len(err.deco) > 0 {
		fmt.Fprintf(&b, " [%s]", strings.Join(err.deco, " <- "))
	}
	return b.String()
}

var _ FileError = (*Error)(nil)

// Decorate adds new information to the error.
func (err *Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// FileName returns the file to which the failing read was associated.
func (err Error) FileName() string { return err.filename }

// Format returns the format of the file (always "doscar") associated to the error.
func (err Error) Format() string { return "doscar" }

// Critical returns true if the error is critical, false otherwise.
func (err Error) Critical() bool { return err.critical }

// Kind returns the class of the error.
func (err Error) Kind() ErrorKind { return err.kind }

// Block returns the index of the DOS block being read when the error happened, or -1.
func (err Error) Block() int { return err.block }

// Line returns the 1-based line number of the offending line, or 0.
func (err Error) Line() int { return err.line }

// Content returns the raw offending line, if any.
func (err Error) Content() string { return err.content }

// IsKind returns true if err, or an error it wraps, is an *Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.kind == kind
	}
	return false
}

const (
	BadAtomCount       = "can't read the number of atoms"
	HeaderEOF          = "file ends inside the header lines"
	BadRowCount        = "can't read the number of DOS points from the block header"
	BlockEOF           = "file ends in the middle of a DOS block"
	BadColumnCount     = "wrong number of values in DOS row"
	BadNumber          = "can't parse a value in DOS row"
	EmptyRow           = "DOS row with no values"
	NoBlockToShape     = "file ends before any DOS block, can't synthesize the missing one"
	TooManyMissing     = "more than one DOS block missing, only a missing total block can be recovered"
	RecoveryDisabled   = "file ends before all DOS blocks were read"
	InconsistentBlocks = "DOS blocks don't have the same shape"
	FermiNotDeletable  = "the Fermi level can't be deleted, set it to 0 instead"
	NoEnergyGrid       = "fewer than 2 DOS blocks, no atom block to take the energies from"
)

func formatErr(message string, block, line int, content string) *Error {
	return &Error{message: message, block: block, line: line, content: strings.TrimRight(content, "\r\n"), kind: FormatError, critical: true}
}

func rangeErr(caller string, format string, a ...interface{}) *Error {
	return &Error{message: fmt.Sprintf(format, a...), block: -1, kind: OutOfRange, deco: []string{caller}}
}

//errDecorate is a helper function that decorates the error with the caller's name,
//and the file name, if given and the error doesn't have one, before returning it.
//Errors that are not *Error are returned unchanged.
func errDecorate(err error, caller string, filename ...string) error {
	var e *Error
	if !errors.As(err, &e) {
		return err
	}
	e.Decorate(caller)
	if len(filename) > 0 && e.filename == "" {
		e.filename = filename[0]
	}
	return e
}
