package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	log "github.com/sirupsen/logrus"
	"gonum.org/v1/plot/vg"

	"github.com/AnkushinDaniil/doubleslit/chart"
	"github.com/AnkushinDaniil/doubleslit/entity/aperture"
	"github.com/AnkushinDaniil/doubleslit/entity/parameters"
)

type App struct {
	Output string
	Params *parameters.Parameters
}

func New(output string, params *parameters.Parameters) *App {
	return &App{
		Output: output,
		Params: params,
	}
}

// Run generates the mask and writes it to the output file. The output gets
// the extension of the configured format when it has none.
func (a *App) Run(ctx context.Context) error {
	appTime := time.Now()
	defer func() {
		log.WithField("time", time.Since(appTime)).Debug("App finished")
	}()
	log.WithFields(log.Fields{
		"output":     a.Output,
		"mode":       a.Params.Mode,
		"format":     a.Params.Format,
		"width":      a.Params.Width,
		"height":     a.Params.Height,
		"separation": a.Params.Separation,
		"resolution": a.Params.Resolution,
		"square":     a.Params.Square,
		"extent":     a.Params.Extent,
	}).Debug("App started")

	genTime := time.Now()
	mask, err := aperture.New(a.Params.Aperture())
	if err != nil {
		return fmt.Errorf("failed to generate aperture: %w", err)
	}
	log.WithFields(log.Fields{
		"time":         time.Since(genTime),
		"transmissive": mask.Transmissive(),
	}).Info("Aperture generated")

	if err := ctx.Err(); err != nil {
		return err
	}

	f, err := os.Create(a.OutputPath())
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	renderTime := time.Now()
	if err := chart.Render(f, mask, a.options()); err != nil {
		return fmt.Errorf("failed to render %v: %w", a.Params.Mode, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close file: %w", err)
	}
	log.WithFields(log.Fields{
		"time": time.Since(renderTime),
		"path": a.OutputPath(),
	}).Info("Chart rendered and saved")

	return nil
}

func (a *App) OutputPath() string {
	if filepath.Ext(a.Output) != "" {
		return a.Output
	}
	return a.Output + a.Params.Format.Ext()
}

func (a *App) options() chart.Options {
	return chart.Options{
		Mode:      a.Params.Mode,
		Format:    a.Params.Format,
		Rows:      a.Params.ProfileRows,
		MaxPoints: a.Params.MaxPoints,
		Width:     vg.Length(a.Params.PNGWidth) * vg.Inch,
		Height:    vg.Length(a.Params.PNGHeight) * vg.Inch,
	}
}
