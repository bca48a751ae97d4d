/*
 * main.go, part of godos.
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

//dosplot reads a DOSCAR and plots the local DOS of some atoms.
//
//	dosplot -fermi 5.21 -atoms 1,2 -orbital d -o ldos DOSCAR.zst
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"k8s.io/klog/v2"

	dos "github.com/rmera/godos"
	"github.com/rmera/godos/dosplot"
)

func main() {
	klog.InitFlags(nil)
	fermi := flag.Float64("fermi", 0, "Fermi level, in eV. Energies are plotted relative to it")
	atoms := flag.String("atoms", "1", "Comma-separated list of atoms to plot. 0 is the total DOS")
	orbital := flag.String("orbital", "1", "Column to plot, either an index or an orbital name (s, p, d, px, dxy...) for the layout guessed from the number of columns")
	spin := flag.String("spin", "up", "Spin (up or down) for spin-polarized files, when -orbital is a name")
	out := flag.String("o", "ldos", "Output file name. An eps and a pdf file are written")
	title := flag.String("title", "", "Plot title")
	fontsize := flag.Int("fontsize", dosplot.DefaultStyle().AxisFontSize, "Font size for the axes, in points")
	nolegend := flag.Bool("nolegend", false, "Don't draw a legend")
	norecover := flag.Bool("norecover", false, "Fail on DOSCARs lacking the total DOS block instead of filling it with zeros")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] [DOSCAR]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	defer klog.Flush()
	name := "DOSCAR"
	if flag.NArg() > 0 {
		name = flag.Arg(0)
	}
	o := dos.DefaultOptions()
	o.Fermi(*fermi)
	o.Recover(!*norecover)
	L, err := dos.DOSCARFileRead(name, o)
	if err != nil {
		klog.Fatalf("Can't read %s: %v", name, err)
	}
	klog.InfoS("Read DOSCAR", "file", name, "atoms", L.Atoms(), "recovered", L.Recovered())
	col, orbname, err := column(*orbital, *spin, L)
	if err != nil {
		klog.Fatal(err)
	}
	fig := dosplot.NewFigure(*title)
	for _, a := range strings.Split(*atoms, ",") {
		atom, err := strconv.Atoi(strings.TrimSpace(a))
		if err != nil {
			klog.Fatalf("Bad atom index %q: %v", a, err)
		}
		label := fmt.Sprintf("atom %d %s", atom, orbname)
		if atom == 0 {
			label = "total"
		}
		if err := dosplot.AddLDOS(fig, L, atom, col, label); err != nil {
			klog.Fatal(err)
		}
	}
	st := dosplot.Style{AxisFontSize: *fontsize, ShowLegend: !*nolegend}
	files, err := dosplot.Save(*out, fig, st)
	if err != nil {
		klog.Fatal(err)
	}
	fmt.Println(strings.Join(files, " "))
}

//column returns the column index for orbital, which can be an index or an orbital
//name, together with a name for the orbital to use in labels.
func column(orbital, spin string, L *dos.LDOS) (int, string, error) {
	if c, err := strconv.Atoi(orbital); err == nil {
		return c, fmt.Sprintf("column %d", c), nil
	}
	_, _, cols := L.Dims()
	layout, err := dos.GuessLayout(cols)
	if err != nil {
		return -1, "", err
	}
	s := dos.Up
	switch strings.ToLower(spin) {
	case "up":
	case "down":
		s = dos.Down
	default:
		return -1, "", fmt.Errorf("spin must be up or down, not %q", spin)
	}
	c, err := layout.Column(orbital, s)
	if err != nil {
		return -1, "", err
	}
	if layout.Polarized() {
		orbital = orbital + "-" + strings.ToLower(spin)
	}
	klog.V(1).InfoS("Orbital column", "layout", layout.String(), "orbital", orbital, "column", c)
	return c, orbital, nil
}
