/*
 * qdf.go, part of goqed.
 *
 * Copyright 2024 Rodrigo Molina <rmolina{at}fisDOTuachDOTcl>
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
 * goQED is developed at the Institute of Physics,
 * Universidad Austral de Chile, Valdivia.
 *
 */

/*Package qdf implements a compressed, textual dump format for radial data:
the grid, any number of orbitals sampled on it, and free-form metadata.
Generating orbitals is the expensive part of a QED run, so a finished basis
can be archived with a writer and brought back with a reader instead of
being recomputed. Files are zstd-compressed; the content is plain text so a
dump can be inspected with standard tools.*/
package qdf

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/rmolina/goqed/grid"
	"github.com/rmolina/goqed/orbital"
)

//The layout is line-oriented:
//  key=value header lines (optional)
//  ** <npoints> <rho> <h>
//  > <label> <kappa> <n> <energy>      (one per orbital)
//  <P> <Q>                             (npoints lines)
//  *                                   (orbital terminator)

// Writer writes a qdf file. Close must be called for the compressed
// stream to be complete.
type Writer struct {
	f         *os.File
	h         io.WriteCloser
	g         *grid.Grid
	filename  string
	writeable bool
}

// NewWriter creates the named file and writes the metadata header and the
// grid to it. Only the first header map is read.
func NewWriter(name string, g *grid.Grid, header ...map[string]string) (*Writer, error) {
	if g == nil {
		return nil, Error{"nil grid given", name, []string{"NewWriter"}}
	}
	w := new(Writer)
	var err error
	w.f, err = os.Create(name)
	if err != nil {
		return nil, err
	}
	w.h, err = zstd.NewWriter(w.f, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	if err != nil {
		return nil, Error{"can't open compressed stream: " + err.Error(), name, []string{"NewWriter"}}
	}
	w.g = g
	w.filename = name
	w.writeable = true
	if len(header) > 0 {
		for k, v := range header[0] {
			fmt.Fprintf(w.h, "%s=%v\n", k, v)
		}
	}
	fmt.Fprintf(w.h, "** %d %.12e %.12e\n", g.Len(), g.Rho(), g.H())
	return w, nil
}

// WOrbital appends one orbital to the file. The orbital must live on the
// grid the writer was created with.
func (w *Writer) WOrbital(o *orbital.Orbital) error {
	if !w.writeable {
		return Error{"writing to a closed dump", w.filename, []string{"WOrbital"}}
	}
	if o == nil {
		return Error{"nil orbital given", w.filename, []string{"WOrbital"}}
	}
	if o.Grid().Len() != w.g.Len() {
		return Error{fmt.Sprintf("orbital %s doesn't live on the dump's grid", o.Shell.Label()), w.filename, []string{"WOrbital"}}
	}
	fmt.Fprintf(w.h, "> %s %d %d %.12e\n", o.Shell.Label(), o.Shell.Kappa, o.Shell.N, o.Energy)
	for i := 0; i < w.g.Len(); i++ {
		fmt.Fprintf(w.h, "%.12e %.12e\n", o.P(i), o.Q(i))
	}
	fmt.Fprint(w.h, "*\n")
	return nil
}

// Close flushes the compressed stream and closes the file. The writer
// can't be used afterwards.
func (w *Writer) Close() {
	if w == nil || !w.writeable {
		return
	}
	w.h.Close()
	w.f.Close()
	w.writeable = false
}

//zstd.Decoder has a Close without an error, so it misses io.ReadCloser
//by a signature.
type zstdql struct {
	closeql func()
	*zstd.Decoder
}

func (z zstdql) Close() error {
	z.closeql()
	return nil
}

// Reader reads a qdf file. The grid and metadata are read on open;
// orbitals are read one at a time with Next.
type Reader struct {
	f        *os.File
	z        io.ReadCloser
	h        *bufio.Reader
	g        *grid.Grid
	filename string
	readable bool
}

// New opens a qdf file and returns a reader, the metadata map (nil when
// the file carries none) and error or nil.
func New(name string) (*Reader, map[string]string, error) {
	r := new(Reader)
	r.filename = name
	var err error
	r.f, err = os.Open(name)
	if err != nil {
		return nil, nil, err
	}
	d, err := zstd.NewReader(bufio.NewReader(r.f))
	if err != nil {
		return nil, nil, Error{"can't open compressed stream: " + err.Error(), name, []string{"New"}}
	}
	r.z = zstdql{d.Close, d}
	r.h = bufio.NewReader(r.z)
	var m map[string]string
	for {
		str, err := r.h.ReadString('\n')
		if err != nil {
			return nil, nil, Error{"can't read header: " + err.Error(), name, []string{"New"}}
		}
		str = strings.TrimSuffix(str, "\n")
		if strings.HasPrefix(str, "**") {
			f := strings.Fields(str)
			if len(f) != 4 {
				return nil, nil, Error{"malformed grid line: " + str, name, []string{"New"}}
			}
			n, err1 := strconv.Atoi(f[1])
			rho, err2 := strconv.ParseFloat(f[2], 64)
			h, err3 := strconv.ParseFloat(f[3], 64)
			if err1 != nil || err2 != nil || err3 != nil {
				return nil, nil, Error{"malformed grid line: " + str, name, []string{"New"}}
			}
			r.g = grid.New(n, rho, h)
			break
		}
		kv := strings.SplitN(str, "=", 2)
		if len(kv) != 2 {
			return nil, nil, Error{"malformed header line: " + str, name, []string{"New"}}
		}
		if m == nil {
			m = make(map[string]string)
		}
		m[kv[0]] = kv[1]
	}
	r.readable = true
	return r, m, nil
}

// Grid returns the grid of the dump.
func (r *Reader) Grid() *grid.Grid {
	return r.g
}

// Readable returns true if it is possible to call Next on the reader.
func (r *Reader) Readable() bool {
	return r.readable
}

// Next reads and returns the next orbital in the dump. At the end of the
// file it returns a LastOrbitalError and marks the reader as done.
func (r *Reader) Next() (*orbital.Orbital, error) {
	if !r.readable {
		return nil, lastOrbital{r.filename}
	}
	head, err := r.h.ReadString('\n')
	if err == io.EOF {
		r.readable = false
		r.Close()
		return nil, lastOrbital{r.filename}
	}
	if err != nil {
		return nil, Error{"can't read orbital header: " + err.Error(), r.filename, []string{"Next"}}
	}
	f := strings.Fields(strings.TrimSuffix(head, "\n"))
	if len(f) != 5 || f[0] != ">" {
		return nil, Error{"malformed orbital header: " + head, r.filename, []string{"Next"}}
	}
	kappa, err1 := strconv.Atoi(f[2])
	n, err2 := strconv.Atoi(f[3])
	energy, err3 := strconv.ParseFloat(f[4], 64)
	if err1 != nil || err2 != nil || err3 != nil {
		return nil, Error{"malformed orbital header: " + head, r.filename, []string{"Next"}}
	}
	p := make([]float64, r.g.Len())
	q := make([]float64, r.g.Len())
	for i := 0; i < r.g.Len(); i++ {
		line, err := r.h.ReadString('\n')
		if err != nil {
			return nil, Error{fmt.Sprintf("orbital truncated at point %d: %s", i, err.Error()), r.filename, []string{"Next"}}
		}
		pq := strings.Fields(strings.TrimSuffix(line, "\n"))
		if len(pq) != 2 {
			return nil, Error{"malformed component line: " + line, r.filename, []string{"Next"}}
		}
		p[i], err1 = strconv.ParseFloat(pq[0], 64)
		q[i], err2 = strconv.ParseFloat(pq[1], 64)
		if err1 != nil || err2 != nil {
			return nil, Error{"malformed component line: " + line, r.filename, []string{"Next"}}
		}
	}
	term, err := r.h.ReadString('\n')
	if err != nil || strings.TrimSuffix(term, "\n") != "*" {
		return nil, Error{"missing orbital terminator", r.filename, []string{"Next"}}
	}
	o, err := orbital.New(orbital.Subshell{N: n, Kappa: kappa}, energy, p, q, r.g)
	if err != nil {
		return nil, Error{"can't rebuild orbital: " + err.Error(), r.filename, []string{"Next"}}
	}
	return o, nil
}

// Close closes the reader. It is safe to call more than once.
func (r *Reader) Close() {
	if r == nil || r.f == nil {
		return
	}
	r.z.Close()
	r.f.Close()
	r.f = nil
	r.readable = false
}

// Error is the error type of this package. It carries the file name so
// callers juggling several dumps know which one went wrong.
type Error struct {
	message  string
	filename string
	deco     []string
}

func (err Error) Error() string {
	return fmt.Sprintf("qdf file %s: %s", err.filename, err.message)
}

// Decorate adds dec to the decoration slice of the error and returns the
// resulting slice.
func (err Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// FileName returns the name of the file the error refers to.
func (err Error) FileName() string { return err.filename }

// LastOrbitalError is the harmless error marking a fully read dump, so it
// can be filtered in a type switch.
type LastOrbitalError interface {
	error
	FileName() string
	NormalLastOrbitalTermination()
}

type lastOrbital struct {
	filename string
}

func (err lastOrbital) Error() string                 { return "qdf file " + err.filename + ": no more orbitals" }
func (err lastOrbital) FileName() string              { return err.filename }
func (err lastOrbital) NormalLastOrbitalTermination() {}
