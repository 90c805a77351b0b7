// Package generate implements program commands producing rhythm stylesheets,
// reports and preview pages.
package generate

import (
	"context"
	"fmt"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"syncope/common"
	"syncope/config"
	"syncope/css"
	"syncope/preview"
	"syncope/rhythm"
	"syncope/state"
	"syncope/stylesheet"
	"syncope/utils/debug"
)

// prepare applies command line overrides and computes all configured levels
// against single configuration snapshot.
func prepare(ctx context.Context, cmd *cli.Command, log *zap.Logger) (*state.LocalEnv, rhythm.Config, rhythm.Set, error) {
	if err := ctx.Err(); err != nil {
		return nil, rhythm.Config{}, rhythm.Set{}, err
	}

	env := state.EnvFromContext(ctx)
	if err := applyOverrides(cmd, env, log); err != nil {
		return nil, rhythm.Config{}, rhythm.Set{}, err
	}
	if cmd.Args().Len() > 1 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}

	tc := env.Typography()
	set, err := rhythm.ComputeAll(tc)
	if err != nil {
		return nil, rhythm.Config{}, rhythm.Set{}, fmt.Errorf("unable to compute rhythm: %w", err)
	}
	log.Debug("Rhythm computed",
		zap.Int("unit", set.Unit),
		zap.Float64("base", tc.BaseFontSize),
		zap.Float64("line-height", tc.BaseLineHeight),
		zap.Float64("cap-height", tc.CapHeight),
		zap.Float64("scale", tc.ScaleRatio),
		zap.Int("levels", len(set.Levels)))
	return env, tc, set, nil
}

// Run is an action for generate command: produces production stylesheet.
func Run(ctx context.Context, cmd *cli.Command) error {
	log := state.EnvFromContext(ctx).Log.Named("generate")

	env, tc, set, err := prepare(ctx, cmd, log)
	if err != nil {
		return err
	}

	unit, syntax := env.Cfg.Output.Unit, env.Cfg.Output.Syntax
	values := stylesheet.NewValues(set, tc, env.FontFamily(), unit, syntax)

	var header string
	if len(env.Cfg.Output.HeaderTemplate) > 0 {
		if header, err = stylesheet.ExpandTemplate(config.HeaderTemplateFieldName, env.Cfg.Output.HeaderTemplate, values); err != nil {
			log.Warn("Unable to prepare stylesheet header, skipping", zap.Error(err))
			header = ""
		}
	}

	out, err := buildOutputPath(cmd.Args().Get(0), syntax.Ext(), values, env, log)
	if err != nil {
		return err
	}

	log.Info("Generating stylesheet", zap.Stringer("syntax", syntax), zap.Stringer("unit", unit), zap.String("destination", displayName(out)))
	defer func(start time.Time) {
		log.Debug("Generating completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	text, err := stylesheet.Generate(set, tc, stylesheet.Options{
		Syntax:      syntax,
		Unit:        unit,
		Font:        env.FontFamily(),
		BoldHeaders: env.Cfg.Font.BoldHeaders,
		Header:      header,
	})
	if err != nil {
		return fmt.Errorf("unable to generate stylesheet: %w", err)
	}
	data := []byte(text)

	if syntax == common.OutputSyntaxCss {
		if _, err := css.NewChecker(log).Check(data, "stylesheet"); err != nil {
			return fmt.Errorf("generated stylesheet is invalid: %w", err)
		}
		if env.Cfg.Output.Minify {
			if data, err = css.Minify(data); err != nil {
				return err
			}
		}
	} else if env.Cfg.Output.Minify {
		log.Warn("Minification is only supported for css syntax, ignoring", zap.Stringer("syntax", syntax))
	}

	env.Rpt.StoreData("output/stylesheet"+syntax.Ext(), data)
	return writeOutput(out, data, cmd.Root().Writer)
}

// Levels is an action for levels command: prints computed metrics.
func Levels(ctx context.Context, cmd *cli.Command) error {
	log := state.EnvFromContext(ctx).Log.Named("levels")

	env, _, set, err := prepare(ctx, cmd, log)
	if err != nil {
		return err
	}

	report := debug.DumpLevels(set, env.Cfg.Output.Unit)
	env.Rpt.StoreData("output/levels.txt", []byte(report))

	if _, err := fmt.Fprint(cmd.Root().Writer, report); err != nil {
		return fmt.Errorf("unable to write levels: %w", err)
	}
	return nil
}

// Preview is an action for preview command: produces standalone XHTML page
// with sample text formatted with computed rhythm over baseline grid.
func Preview(ctx context.Context, cmd *cli.Command) error {
	log := state.EnvFromContext(ctx).Log.Named("preview")

	env, tc, set, err := prepare(ctx, cmd, log)
	if err != nil {
		return err
	}

	lang, err := env.Cfg.PreviewLanguage()
	if err != nil {
		return err
	}

	values := stylesheet.NewValues(set, tc, env.FontFamily(), common.OutputUnitPx, common.OutputSyntaxCss)
	out, err := buildOutputPath(cmd.Args().Get(0), ".xhtml", values, env, log)
	if err != nil {
		return err
	}

	log.Info("Generating preview", zap.Stringer("language", lang), zap.String("destination", displayName(out)))

	sheet := stylesheet.Sandbox(set, tc, stylesheet.SandboxOptions{
		Font:        env.FontFamily(),
		BoldHeaders: env.Cfg.Font.BoldHeaders,
		TextWidth:   env.Cfg.Preview.TextWidth,
		ShowGrid:    env.Cfg.Preview.ShowGrid,
	})
	if _, err := css.NewChecker(log).Check([]byte(sheet.String()), "sandbox"); err != nil {
		return fmt.Errorf("preview stylesheet is invalid: %w", err)
	}

	doc, skipped := preview.Page(sheet, set, preview.Options{
		Title:  fmt.Sprintf("%s: %gpx/%g, scale %g", env.FontFamily(), tc.BaseFontSize, tc.BaseLineHeight, tc.ScaleRatio),
		Lang:   lang,
		Sample: env.Cfg.Preview.SampleText,
	})
	if len(skipped) > 0 {
		log.Warn("Levels with complex selectors are not shown", zap.Strings("levels", skipped))
	}

	data, err := preview.Render(doc)
	if err != nil {
		return fmt.Errorf("unable to render preview: %w", err)
	}

	env.Rpt.StoreData("output/preview.xhtml", data)
	return writeOutput(out, data, cmd.Root().Writer)
}
