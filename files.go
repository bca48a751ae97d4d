/*
 * files.go, part of godos.
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
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

//DOSCARFileRead reads the DOSCAR in the file name. Files ending in .zst or .gz
//are decompressed on the fly. See DOSCARRead for the format and options.
func DOSCARFileRead(name string, options ...*Options) (*LDOS, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	r, closer, err := decompressor(name, f)
	if err != nil {
		return nil, &Error{message: "can't decompress: " + err.Error(), filename: name, block: -1, kind: FormatError, critical: true, deco: []string{"DOSCARFileRead"}}
	}
	defer closer()
	L, err := readDOSCAR(r, name, optionsOrDefault(options))
	if err != nil {
		return nil, errDecorate(err, "DOSCARFileRead", name)
	}
	return L, nil
}

//decompressor picks a decompressing reader based on the extension of name.
//The returned function releases it and must always be called.
func decompressor(name string, f io.Reader) (io.Reader, func(), error) {
	switch {
	case strings.HasSuffix(strings.ToLower(name), ".zst"):
		d, err := zstd.NewReader(f)
		if err != nil {
			return nil, nil, err
		}
		return d, d.Close, nil
	case strings.HasSuffix(strings.ToLower(name), ".gz"):
		g, err := gzip.NewReader(f)
		if err != nil {
			return nil, nil, err
		}
		return g, func() { g.Close() }, nil
	}
	return f, func() {}, nil
}
