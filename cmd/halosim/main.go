// Command halosim prints the specs of the supported N-body simulations and
// the column layouts of the known halo catalog schemas.
//
// Usage:
//
//	halosim [flags] [simname ...]
//
// Without arguments it prints the specs of all supported simulations.
//
// Examples:
//
//	halosim bolshoi
//	halosim -list
//	halosim -schema rockstar-july19-2015
//	halosim -schemas
package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/cosmostat/halokit/catalog"
)

func main() {
	list := flag.Bool("list", false, "list supported simulation names")
	schemas := flag.Bool("schemas", false, "list known catalog schema names")
	schema := flag.String("schema", "", "print the column layout of the named schema")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: halosim [flags] [simname ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints simulation specs and halo catalog column layouts.\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	switch {
	case *list:
		for _, sim := range catalog.Simulations {
			fmt.Println(sim.Name)
		}
		return
	case *schemas:
		for _, s := range catalog.Schemas {
			fmt.Printf("%s\t%d columns\n", s.Name, len(s.Columns))
		}
		return
	case *schema != "":
		printSchema(*schema)
		return
	}

	names := flag.Args()
	if len(names) == 0 {
		for _, sim := range catalog.Simulations {
			names = append(names, sim.Name)
		}
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "name\tLbox [Mpc/h]\tmp [Msun/h]\tN^(1/3)\tsoftening [kpc/h]\tz_init\tcosmology")
	for _, name := range names {
		sim, err := catalog.BySimName(name)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Fprintf(w, "%s\t%.0f\t%.3g\t%d\t%.0f\t%.0f\t%s\n",
			sim.Name, sim.LBox, sim.ParticleMass, sim.NumPtclPerDim,
			sim.Softening, sim.InitialRedshift, sim.Cosmology.Name)
	}
	w.Flush()
}

func printSchema(name string) {
	for _, s := range catalog.Schemas {
		if s.Name != name {
			continue
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		for i, col := range s.Columns {
			kind := "float64"
			if col.Kind == catalog.KindInt {
				kind = "int64"
			}
			fmt.Fprintf(w, "%d\t%s\t%s\n", i, col.Name, kind)
		}
		w.Flush()
		return
	}
	fmt.Fprintf(os.Stderr, "halosim: unknown schema %q\n", name)
	os.Exit(1)
}
