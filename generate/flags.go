package generate

import (
	"fmt"
	"strconv"
	"strings"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"syncope/common"
	"syncope/state"
)

// RhythmFlags returns flags overriding typographic configuration, shared by
// all commands computing rhythm.
func RhythmFlags() []cli.Flag {
	return []cli.Flag{
		&cli.FloatFlag{Name: "base", Usage: "base font size in `PX`"},
		&cli.FloatFlag{Name: "line-height", Aliases: []string{"lh"}, Usage: "base line height `MULTIPLIER`"},
		&cli.FloatFlag{Name: "cap-height", Usage: "font cap height to font size `RATIO`, (0,1)"},
		&cli.FloatFlag{Name: "scale", Usage: "modular scale `RATIO` between successive levels"},
		&cli.StringSliceFlag{Name: "level", Aliases: []string{"l"},
			Usage: "level as `NAME=FACTOR`, may be repeated, replaces configured levels"},
		&cli.IntFlag{Name: "header-before", Usage: "additional rhythm `UNITS` above headings"},
		&cli.IntFlag{Name: "header-after", Usage: "additional rhythm `UNITS` below headings"},
		&cli.StringFlag{Name: "font", Usage: "font `FAMILY` name"},
		&cli.StringFlag{Name: "font-file", Usage: "take cap height and family from TrueType/OpenType `FILE`"},
		&cli.BoolFlag{Name: "bold-headers", Usage: "keep headings bold"},
	}
}

func unitFlag() cli.Flag {
	return &cli.StringFlag{Name: "unit", Aliases: []string{"u"},
		Usage: "output `UNIT` (supported units: " + strings.Join(common.OutputUnitNames(), ", ") + ")"}
}

// OutputFlags returns flags for commands producing stylesheet.
func OutputFlags() []cli.Flag {
	return []cli.Flag{
		unitFlag(),
		&cli.StringFlag{Name: "syntax", Aliases: []string{"s"},
			Usage: "output `SYNTAX` (supported: " + strings.Join(common.OutputSyntaxNames(), ", ") + ")"},
		&cli.BoolFlag{Name: "minify", Usage: "compact css output"},
		&cli.BoolFlag{Name: "overwrite", Aliases: []string{"ow"}, Usage: "replace destination file if it exists"},
	}
}

// LevelsFlags returns flags for levels report.
func LevelsFlags() []cli.Flag {
	return append(RhythmFlags(), unitFlag())
}

// PreviewFlags returns flags for preview page.
func PreviewFlags() []cli.Flag {
	return []cli.Flag{
		&cli.FloatFlag{Name: "text-width", Usage: "preview text column width in `EM`"},
		&cli.BoolFlag{Name: "grid", Usage: "draw baseline grid"},
		&cli.StringFlag{Name: "lang", Usage: "preview page `LANGUAGE` tag"},
		&cli.BoolFlag{Name: "overwrite", Aliases: []string{"ow"}, Usage: "replace destination file if it exists"},
	}
}

// parseLevels converts NAME=FACTOR pairs to factors map.
func parseLevels(pairs []string) (map[string]int, error) {
	factors := make(map[string]int, len(pairs))
	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, "=")
		name = strings.TrimSpace(name)
		if !ok || len(name) == 0 {
			return nil, fmt.Errorf("malformed level %q, expected NAME=FACTOR", pair)
		}
		factor, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return nil, fmt.Errorf("malformed factor for level %q: %w", name, err)
		}
		factors[name] = factor
	}
	return factors, nil
}

// applyOverrides superimposes command line flags on loaded configuration.
// Only flags which were explicitly set are used.
func applyOverrides(cmd *cli.Command, env *state.LocalEnv, log *zap.Logger) error {
	r := &env.Cfg.Rhythm

	if cmd.IsSet("base") {
		r.BaseFontSize = cmd.Float("base")
	}
	if cmd.IsSet("line-height") {
		r.BaseLineHeight = cmd.Float("line-height")
	}
	if cmd.IsSet("cap-height") {
		r.CapHeight = cmd.Float("cap-height")
	}
	if cmd.IsSet("scale") {
		r.Scale = cmd.Float("scale")
	}
	if cmd.IsSet("level") {
		factors, err := parseLevels(cmd.StringSlice("level"))
		if err != nil {
			return err
		}
		r.Factors = factors
	}
	if cmd.IsSet("header-before") {
		r.HeaderSpacing.Before = cmd.Int("header-before")
	}
	if cmd.IsSet("header-after") {
		r.HeaderSpacing.After = cmd.Int("header-after")
	}
	if cmd.IsSet("font") {
		env.Cfg.Font.Family = cmd.String("font")
	}
	if cmd.IsSet("bold-headers") {
		env.Cfg.Font.BoldHeaders = cmd.Bool("bold-headers")
	}

	if cmd.IsSet("unit") {
		unit, err := common.ParseOutputUnit(cmd.String("unit"))
		if err != nil {
			log.Warn("Unknown output unit requested, keeping configured", zap.Stringer("unit", env.Cfg.Output.Unit), zap.Error(err))
		} else {
			env.Cfg.Output.Unit = unit
		}
	}
	if cmd.IsSet("syntax") {
		syntax, err := common.ParseOutputSyntax(cmd.String("syntax"))
		if err != nil {
			log.Warn("Unknown output syntax requested, keeping configured", zap.Stringer("syntax", env.Cfg.Output.Syntax), zap.Error(err))
		} else {
			env.Cfg.Output.Syntax = syntax
		}
	}
	if cmd.IsSet("minify") {
		env.Cfg.Output.Minify = cmd.Bool("minify")
	}

	if cmd.IsSet("text-width") {
		env.Cfg.Preview.TextWidth = cmd.Float("text-width")
	}
	if cmd.IsSet("grid") {
		env.Cfg.Preview.ShowGrid = cmd.Bool("grid")
	}
	if cmd.IsSet("lang") {
		env.Cfg.Preview.Language = cmd.String("lang")
	}

	if cmd.IsSet("overwrite") {
		env.Overwrite = cmd.Bool("overwrite")
	}

	fontFile := env.Cfg.Font.File
	if cmd.IsSet("font-file") {
		fontFile = cmd.String("font-file")
	}
	if len(fontFile) > 0 {
		if err := env.LoadFont(fontFile); err != nil {
			return err
		}
	}
	return nil
}
