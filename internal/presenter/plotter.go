package presenter

import (
	"github.com/rs/zerolog/log"

	"github.com/NileshArnaiya/statistics-interactive-course/pkg/chartplotter"
	"github.com/NileshArnaiya/statistics-interactive-course/pkg/distribution"
)

func GenerateChart(outputPath, title string, kind distribution.Kind, seq distribution.Sequence) error {
	if err := chartplotter.MakeDistributionPlot(seq, kind.Discrete(), title, outputPath); err != nil {
		return err
	}
	log.Debug().Str("file", outputPath).Stringer("kind", kind).Msg("chart written")
	return nil
}
