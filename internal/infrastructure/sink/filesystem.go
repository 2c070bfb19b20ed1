package sink

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"page-explorer/internal/application/port/output"
	"page-explorer/internal/domain/entity"
)

var _ output.SnapshotSink = (*Filesystem)(nil)

// Filesystem пишет артефакты прогона в один каталог: HTML снапшотов,
// манифест элементов, найденные таблицы и (опционально) скриншоты.
type Filesystem struct {
	dir    string
	logger output.LoggerPort
}

func NewFilesystem(dir string, logger output.LoggerPort) (*Filesystem, error) {
	if dir == "" {
		return nil, fmt.Errorf("output directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	return &Filesystem{dir: dir, logger: logger}, nil
}

func (f *Filesystem) Dir() string { return f.dir }

func (f *Filesystem) WriteInitial(ctx context.Context, snap entity.Snapshot) error {
	base := InitialName(snap.Timestamp)
	if err := f.write(ctx, base+".html", []byte(snap.Markup)); err != nil {
		return err
	}
	return f.writeScreenshot(ctx, base, snap.Screenshot)
}

func (f *Filesystem) WriteManifest(ctx context.Context, timestamp string, manifest []entity.ManifestEntry) error {
	if manifest == nil {
		manifest = []entity.ManifestEntry{}
	}

	var buf strings.Builder
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(manifest); err != nil {
		return fmt.Errorf("failed to encode manifest: %w", err)
	}
	return f.write(ctx, ManifestName(timestamp), []byte(buf.String()))
}

func (f *Filesystem) WriteSnapshot(ctx context.Context, snap entity.Snapshot) error {
	suffix := ClickSuffix(snap)
	if err := f.write(ctx, "content_after_click_"+suffix+".html", []byte(snap.Markup)); err != nil {
		return err
	}
	if len(snap.TableFragments) > 0 {
		tables := strings.Join(snap.TableFragments, "\n")
		if err := f.write(ctx, "tables_after_click_"+suffix+".html", []byte(tables)); err != nil {
			return err
		}
	}
	return f.writeScreenshot(ctx, "screenshot_after_click_"+suffix, snap.Screenshot)
}

func (f *Filesystem) Close() error { return nil }

func (f *Filesystem) writeScreenshot(ctx context.Context, base string, shot *entity.Screenshot) error {
	if shot == nil || len(shot.Data) == 0 {
		return nil
	}
	return f.write(ctx, base+".jpg", shot.Data)
}

func (f *Filesystem) write(ctx context.Context, name string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	path := filepath.Join(f.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	f.logger.Debug("Artifact written", "path", path, "bytes", len(data))
	return nil
}

func InitialName(timestamp string) string {
	return "initial_page_" + timestamp
}

func ManifestName(timestamp string) string {
	return "clickable_elements_" + timestamp + ".json"
}

// ClickSuffix — общая часть имён файлов снапшота: {seq}_{label}_{ts}.
func ClickSuffix(snap entity.Snapshot) string {
	label := snap.SourceLabel
	if label == "" {
		label = entity.SanitizeLabel("")
	}
	return fmt.Sprintf("%d_%s_%s", snap.Sequence, label, snap.Timestamp)
}
