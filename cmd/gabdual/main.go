// Command gabdual computes canonical dual Gabor windows.
//
// Usage:
//
//	gabdual [flags] [window-name]
//
// It derives the lattice parameters for (L, a, M), computes the canonical
// dual of the selected window on that lattice and prints both windows side
// by side together with the worst-case reconstruction residual of the
// analysis/synthesis pair.
//
// Examples:
//
//	gabdual -L 480 -a 20 -M 40 hann
//	gabdual -L 480 -a 20 -M 40 -gl 120 itersine
//	gabdual -list
package main

import (
	"flag"
	"fmt"
	"math"
	"math/cmplx"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/cwbudde/algo-gabor/dsp/gabor"
	"github.com/cwbudde/algo-gabor/dsp/window"
)

func main() {
	length := flag.Int("L", 480, "transform length in samples")
	shift := flag.Int("a", 20, "time shift between lattice points")
	channels := flag.Int("M", 40, "number of frequency channels")
	gl := flag.Int("gl", 0, "window length (0 means full length L)")
	gdl := flag.Int("gdl", 0, "dual window length (0 means same as gl)")
	list := flag.Bool("list", false, "list available window names")
	verify := flag.Bool("verify", true, "verify perfect reconstruction on an impulse")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: gabdual [flags] [window-name]\n\n")
		fmt.Fprintf(os.Stderr, "Computes the canonical dual Gabor window on the (a, M) lattice.\n")
		fmt.Fprintf(os.Stderr, "The default window is hann.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  gabdual -L 480 -a 20 -M 40 hann\n")
		fmt.Fprintf(os.Stderr, "  gabdual -L 480 -a 20 -M 40 -gl 120 itersine\n")
		fmt.Fprintf(os.Stderr, "  gabdual -list\n")
	}
	flag.Parse()

	if *list {
		printList()
		return
	}

	name := "hann"
	if flag.NArg() > 0 {
		name = flag.Arg(0)
	}

	kind, err := window.ParseKind(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v (use -list to see available)\n", err)
		os.Exit(1)
	}

	if err := run(kind, *length, *shift, *channels, *gl, *gdl, *verify); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func printList() {
	names := make([]string, 0, len(window.Kinds()))
	for _, k := range window.Kinds() {
		names = append(names, k.String())
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Println(n)
	}
}

func run(kind window.Kind, L, a, M, gl, gdl int, verify bool) error {
	lat, err := gabor.NewLattice(L, a, M)
	if err != nil {
		return err
	}

	if gl <= 0 {
		gl = L
	}
	if gdl <= 0 {
		gdl = gl
	}

	g := window.Generate(kind, gl)
	gd := make([]float64, gdl)

	if gl == L && gdl == L {
		err = gabor.DualLong(g, L, 1, a, M, gd)
	} else {
		err = gabor.DualFIR(g, gl, L, a, M, gdl, gd)
	}
	if err != nil {
		return err
	}

	printLattice(lat)
	printWindows(kind, g, gd)

	if verify {
		gLong, err := gabor.Fir2Long(g, gl, L)
		if err != nil {
			return err
		}
		gdLong, err := gabor.Fir2Long(gd, gdl, L)
		if err != nil {
			return err
		}

		residual := reconstructionResidual(gLong, gdLong, L, a, M)
		fmt.Printf("\nImpulse reconstruction residual: %.3g\n", residual)
	}

	return nil
}

func printLattice(lat gabor.Lattice) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "L\ta\tM\tb\tc\tp\tq\td\tN\tredundancy\n")
	fmt.Fprintf(tw, "-\t-\t-\t-\t-\t-\t-\t-\t-\t----------\n")
	fmt.Fprintf(tw, "%d\t%d\t%d\t%d\t%d\t%d\t%d\t%d\t%d\t%.3f\n",
		lat.L, lat.A, lat.M, lat.B, lat.C, lat.P, lat.Q, lat.D, lat.N,
		float64(lat.M)/float64(lat.A))
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

func printWindows(kind window.Kind, g, gd []float64) {
	fmt.Printf("\nwindow: %s\n\n", kind)

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "n\tg[n]\tgd[n]\n")
	fmt.Fprintf(tw, "-\t----\t-----\n")

	n := len(g)
	if len(gd) > n {
		n = len(gd)
	}

	for i := 0; i < n; i++ {
		gv, gdv := "", ""
		if i < len(g) {
			gv = fmt.Sprintf("%.6f", g[i])
		}
		if i < len(gd) {
			gdv = fmt.Sprintf("%.6f", gd[i])
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\n", i, gv, gdv)
	}

	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

// reconstructionResidual measures the worst-case deviation from perfect
// reconstruction by analyzing a unit impulse with g and resynthesizing
// with gd.
func reconstructionResidual(g, gd []float64, L, a, M int) float64 {
	N := L / a

	f := make([]complex128, L)
	f[0] = 1

	coeff := make([]complex128, M*N)
	for n := 0; n < N; n++ {
		for m := 0; m < M; m++ {
			var sum complex128
			for l := 0; l < L; l++ {
				phase := -2 * math.Pi * float64(m) * float64(l) / float64(M)
				sum += f[l] * complex(g[mod(l-n*a, L)], 0) * cmplx.Exp(complex(0, phase))
			}
			coeff[m+M*n] = sum
		}
	}

	worst := 0.0
	for l := 0; l < L; l++ {
		var sum complex128
		for n := 0; n < N; n++ {
			for m := 0; m < M; m++ {
				phase := 2 * math.Pi * float64(m) * float64(l) / float64(M)
				sum += coeff[m+M*n] * complex(gd[mod(l-n*a, L)], 0) * cmplx.Exp(complex(0, phase))
			}
		}

		if d := cmplx.Abs(sum - f[l]); d > worst {
			worst = d
		}
	}

	return worst
}

func mod(x, n int) int {
	r := x % n
	if r < 0 {
		r += n
	}

	return r
}
