package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/kisurizzz/fleet-manager-sub001/pkg/format"
)

const (
	MIMETypeCSV  = "text/csv"
	MIMETypeJSON = "application/json"
)

// Artifact is a finished export: bytes plus the suggested filename and MIME
// type. Producing one has no side effects; delivery goes through a Sink.
type Artifact struct {
	Filename string
	MIMEType string
	Data     []byte
}

// Sink delivers an artifact to wherever the host environment puts downloads.
// A failed write leaves the artifact (and the snapshot it came from) intact
// for retry.
type Sink interface {
	Write(ctx context.Context, artifact Artifact) error
}

// FileSink writes artifacts into a directory. Used by the CLI.
type FileSink struct {
	Dir string
}

func (s FileSink) Write(_ context.Context, artifact Artifact) error {
	path := filepath.Join(s.Dir, artifact.Filename)
	if err := os.WriteFile(path, artifact.Data, 0o644); err != nil {
		return fmt.Errorf("write artifact %s: %w", artifact.Filename, err)
	}
	return nil
}

// Filename builds the export filename: {reportName}_{yyyy-MM-dd_HH-mm}.{ext}.
func Filename(reportName string, ts time.Time, ext string) string {
	return fmt.Sprintf("%s_%s.%s", reportName, format.FileStamp(ts), ext)
}

// CSVArtifact packages a table as a downloadable CSV.
func CSVArtifact(reportName string, t Table, ts time.Time) (Artifact, error) {
	data, err := t.CSVBytes()
	if err != nil {
		return Artifact{}, err
	}
	return Artifact{
		Filename: Filename(reportName, ts, "csv"),
		MIMEType: MIMETypeCSV,
		Data:     data,
	}, nil
}

// JSONArtifact packages a fleet report as a downloadable JSON document.
func JSONArtifact(reportName string, r FleetReport, ts time.Time) (Artifact, error) {
	data, err := r.JSONBytes()
	if err != nil {
		return Artifact{}, err
	}
	return Artifact{
		Filename: Filename(reportName, ts, "json"),
		MIMEType: MIMETypeJSON,
		Data:     data,
	}, nil
}
