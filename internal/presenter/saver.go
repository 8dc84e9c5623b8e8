package presenter

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/rs/zerolog/log"

	"github.com/NileshArnaiya/statistics-interactive-course/pkg/distribution"
)

func SaveSequenceToCSV(seq distribution.Sequence, filename string) error {
	// Create the CSV file
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	if err := writer.Write([]string{"x", "y"}); err != nil {
		return err
	}
	for _, p := range seq {
		record := []string{
			strconv.FormatFloat(p.X, 'f', -1, 64),
			strconv.FormatFloat(p.Y, 'f', -1, 64),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return err
	}
	log.Debug().Str("file", filename).Int("points", len(seq)).Msg("csv written")
	return file.Close()
}

// PrintTable writes the points as two aligned columns. x is shown with one
// decimal for continuous kinds, as the explorer's axis labels do.
func PrintTable(w io.Writer, kind distribution.Kind, seq distribution.Sequence) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "x\ty\t")
	for _, p := range seq {
		if kind.Discrete() {
			fmt.Fprintf(tw, "%d\t%.4f\t\n", int(p.X), p.Y)
		} else {
			fmt.Fprintf(tw, "%.1f\t%.4f\t\n", p.X, p.Y)
		}
	}
	return tw.Flush()
}
