package vernomic

import (
	"time"

	"github.com/pders01/vernomic/internal/export"
	"github.com/pders01/vernomic/internal/models"
	"github.com/spf13/afero"
)

// Metadata is the exported record of an identifier
type Metadata = models.Metadata

// Metadata builds the full record describing the identifier. A new record
// is built on every call.
func (v *Vernomic) Metadata() Metadata {
	return Metadata{
		Identifier:    v.Identifier(),
		FileName:      v.FileName(),
		RootName:      v.root,
		SuffixName:    v.suffix,
		FileExtension: v.extension,

		Timestamp: v.t.Format(time.RFC3339Nano),
		Year:      v.t.Year(),
		Month:     int(v.t.Month()),
		Day:       v.t.Day(),
		Hour:      v.t.Hour(),
		Minute:    v.t.Minute(),
		Second:    v.t.Second(),

		DayOfYear:   v.part.DayOfYear,
		CycleNumber: v.part.CycleNumber,
		DayOfCycle:  v.part.DayOfCycle,
		CycleName:   v.part.CycleName,
		DayName:     v.part.DayName,

		YearShort:   v.YearShort(),
		DayLabel:    v.DayLabel(),
		VersionTime: v.VersionTime(),

		DivideChar:         v.divider,
		DisplayVersionTime: v.displayTime,

		Description: v.description,
	}
}

// Export writes the metadata document to the local filesystem and returns
// the path written. See ExportTo for how dest is resolved.
func (v *Vernomic) Export(dest string) (string, error) {
	return v.ExportTo(afero.NewOsFs(), dest)
}

// ExportTo writes the metadata document to fs.
//
// When dest ends in a path separator or names an existing directory the
// document is written to dest/<identifier>.yaml. Otherwise dest is a file
// path and receives a .yaml extension unless it already ends in .yaml or
// .yml. Missing parent directories are created and an existing file is
// overwritten.
func (v *Vernomic) ExportTo(fs afero.Fs, dest string) (string, error) {
	path, err := export.ResolvePath(fs, dest, v.Identifier())
	if err != nil {
		return "", err
	}
	if err := export.Write(fs, path, v.Metadata()); err != nil {
		return "", err
	}
	return path, nil
}

// ReadMetadata parses a document previously written by Export
func ReadMetadata(path string) (Metadata, error) {
	return export.Read(afero.NewOsFs(), path)
}
