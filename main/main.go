/*sddspseudoinverse computes the truncated SVD pseudo-inverse of a matrix
read from a whitespace-separated table file. Configuration comes from a gcfg
file selected with the -Config flag; -ExampleConfig prints a template.
*/
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"gopkg.in/gcfg.v1"

	"github.com/sddstools/pseudoinverse/matrix"
	"github.com/sddstools/pseudoinverse/sdds"
)

func main() {
	var config, exampleConfig string
	flag.StringVar(
		&config, "Config", "",
		"Configuration file for the pseudo-inverse computation.",
	)
	flag.StringVar(
		&exampleConfig, "ExampleConfig", "",
		"Prints an example configuration file to stdout. The only accepted "+
			"argument is 'PseudoInverse'.",
	)
	flag.Parse()

	switch {
	case exampleConfig != "":
		if exampleConfig != "PseudoInverse" {
			log.Fatalf("Unknown config type '%s'.", exampleConfig)
		}
		fmt.Println(ExamplePseudoInverseFile)
	case config != "":
		wrap := DefaultPseudoInverseWrapper()
		err := gcfg.ReadFileInto(wrap, config)
		if err != nil {
			log.Fatal(err.Error())
		}
		con := &wrap.PseudoInverse

		if !con.ValidInput() {
			log.Fatal("Invalid/non-existent 'Input' value.")
		} else if !con.ValidOutput() {
			log.Fatal("Invalid/non-existent 'Output' value.")
		} else if !con.ValidColumns() {
			log.Fatal("Invalid/non-existent 'Column' values.")
		}

		pseudoInverseMain(con)
	default:
		log.Fatal("Must set either -Config or -ExampleConfig.")
	}
}

func pseudoInverseMain(con *PseudoInverseConfig) {
	names := make([]string, len(con.Column))
	copy(names, con.Column)
	if con.WeightColumn != "" {
		names = append(names, con.WeightColumn)
	}

	ds, err := sdds.ReadTable(con.Input, names)
	if err != nil {
		log.Fatal(err.Error())
	}
	if err := ds.SelectColumns(con.Column...); err != nil {
		log.Fatal(err.Error())
	}

	a, err := ds.MatrixOfRows()
	if err != nil {
		log.Fatal(err.Error())
	}

	deletes, err := parseDeleteVectors(con.DeleteVectors)
	if err != nil {
		log.Fatal(err.Error())
	}
	opt := matrix.InvertOptions{
		LargestSingularValues:  con.LargestSingularValues,
		SmallestSingularValues: con.SmallestSingularValues,
		MinRatio:               con.MinRatio,
		DeleteVectors:          deletes,
	}

	var inv *matrix.Mat
	var report *matrix.InvertReport
	if con.WeightColumn != "" {
		weights, err := ds.ColumnValues(con.WeightColumn)
		if err != nil {
			log.Fatal(err.Error())
		}
		inv, report = matrix.InvertWeighted(a, weights, opt)
	} else {
		inv, report = matrix.Invert(a, opt)
	}

	if con.Verbose {
		fmt.Printf("%d singular values, %d used\n",
			report.NumValues, report.NumUsed)
		fmt.Printf("condition number: %g\n", report.ConditionNumber)
		if report.Deleted != "" {
			fmt.Printf("deleted vectors: %s\n", report.Deleted)
		}
		svs := []string{}
		for _, sv := range report.SingularValues.Ve {
			svs = append(svs, fmt.Sprintf("%g", sv))
		}
		fmt.Printf("singular values: %s\n", strings.Join(svs, " "))
	}

	if err := writeMatrix(con.Output, inv); err != nil {
		log.Fatal(err.Error())
	}
}

// parseDeleteVectors parses a space-separated index list like "0 3 7".
func parseDeleteVectors(s string) ([]int, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil, nil
	}
	out := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("invalid 'DeleteVectors' entry '%s'", f)
		}
		out[i] = n
	}
	return out, nil
}

// writeMatrix writes one row of the matrix per line, so the output can be
// read back with the same table reader as the input.
func writeMatrix(path string, m *matrix.Mat) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	for i := 0; i < m.M; i++ {
		for j := 0; j < m.N; j++ {
			if j > 0 {
				fmt.Fprint(f, " ")
			}
			fmt.Fprintf(f, "%14.9g", m.Col[j][i])
		}
		fmt.Fprintln(f)
	}
	return nil
}
