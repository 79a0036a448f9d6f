package exporter

import (
	"encoding/csv"
	"fmt"
	"path/filepath"
	"strings"
	"time"
	"youtube_etl/internal/core/domain"
	"youtube_etl/internal/core/ports"
)

const (
	DefaultBaseFilename = "youtube_data.csv"

	timestampLayout = "20060102_150405"
)

var csvHeader = []string{"title", "description", "video_url"}

type csvExporter struct {
	dir string
	log ports.LoggerPort
	now func() time.Time
}

// NewCSVExporter writes exports into dir; an empty dir means the working directory.
func NewCSVExporter(dir string, logger ports.LoggerPort) ports.ExporterPort {
	return &csvExporter{
		dir: dir,
		log: logger,
		now: time.Now,
	}
}

func (e *csvExporter) Export(videos []domain.VideoRecord, baseFilename string) (string, error) {
	path := filepath.Join(e.dir, e.filename(baseFilename))

	out, err := createAtomicFile(path)
	if err != nil {
		return "", err
	}

	w := csv.NewWriter(out)
	if err := w.Write(csvHeader); err != nil {
		out.Abort()
		return "", fmt.Errorf("error while writing csv header: %w", err)
	}

	for _, video := range videos {
		if err := w.Write([]string{video.Title, video.Description, video.VideoURL}); err != nil {
			out.Abort()
			return "", fmt.Errorf("error while writing csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		out.Abort()
		return "", fmt.Errorf("error while flushing csv to %s: %w", path, err)
	}

	if err := out.Commit(); err != nil {
		return "", err
	}

	e.log.Info(fmt.Sprintf("Data saved to %s", path))

	return path, nil
}

// filename composes "<base>_<YYYYMMDD_HHMMSS>.csv" from the local clock.
func (e *csvExporter) filename(baseFilename string) string {
	if baseFilename == "" {
		baseFilename = DefaultBaseFilename
	}

	base := strings.TrimSuffix(baseFilename, ".csv")

	return fmt.Sprintf("%s_%s.csv", base, e.now().Format(timestampLayout))
}
