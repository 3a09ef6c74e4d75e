// Package analysis inspects list entries for the long listing: the content
// type and title of a form, and the instance ID, attachment count and
// capture time of a saved instance.
package analysis

import (
	"encoding/xml"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/rwcarlsen/goexif/exif"

	"formkeep/internal/errors"
	"formkeep/internal/fileutil"
	"formkeep/internal/log"
)

// Kinds of entry.
const (
	KindForm     = "form"
	KindInstance = "instance"
)

// Report is what Inspect learned about one entry.
type Report struct {
	Path        string
	Kind        string
	ContentType string
	Size        int64
	ModTime     time.Time

	Title  string // form title
	FormID string // id attribute of the form's primary instance

	InstanceID  string    // meta/instanceID without the uuid: prefix
	Submission  string    // path of the instance's submission XML
	Attachments int       // files in the instance folder besides the submission
	Captured    time.Time // earliest EXIF capture time among image attachments
}

// Detail is the one-line summary shown in listings.
func (r *Report) Detail() string {
	switch {
	case r.Title != "":
		return r.Title
	case r.InstanceID != "":
		return r.InstanceID
	default:
		return r.ContentType
	}
}

// Analyzer defines the interface for entry type specific analyzers
type Analyzer interface {
	// CanHandle checks if this analyzer applies to the report so far
	CanHandle(r *Report) bool
	// Analyze fills in more of r
	Analyze(path string, r *Report) error
}

// Engine runs the registered analyzers over an entry.
type Engine struct {
	analyzers []Analyzer
}

// New returns an engine with the form and instance analyzers registered.
func New() *Engine {
	e := &Engine{}
	e.registerAnalyzer(&FormAnalyzer{})
	e.registerAnalyzer(&InstanceAnalyzer{})
	return e
}

func (e *Engine) registerAnalyzer(a Analyzer) {
	e.analyzers = append(e.analyzers, a)
}

// Inspect stats path and runs every analyzer that can handle it. Analyzer
// failures are logged and leave their fields empty.
func (e *Engine) Inspect(path string) (*Report, error) {
	info, err := fileutil.Stat(path)
	if err != nil {
		return nil, err
	}

	r := &Report{Path: path, Size: info.Size, ModTime: info.ModTime, Kind: KindForm}
	if info.IsDir {
		r.Kind = KindInstance
	} else {
		r.ContentType, err = detect(path)
		if err != nil {
			log.LogWithError(err).Debug("content type unknown")
		}
	}

	for _, a := range e.analyzers {
		if !a.CanHandle(r) {
			continue
		}
		if err := a.Analyze(path, r); err != nil {
			log.LogWithError(err).Debug("analyzer failed")
		}
	}
	return r, nil
}

func detect(path string) (string, error) {
	mime, err := mimetype.DetectFile(path)
	if err != nil {
		return "", errors.NewFileError("failed to detect MIME type", path, errors.FileAccessDenied, err)
	}
	return mime.String(), nil
}

// FormAnalyzer reads the title and form ID out of an XForm definition.
type FormAnalyzer struct{}

func (a *FormAnalyzer) CanHandle(r *Report) bool {
	return r.Kind == KindForm && (strings.HasSuffix(r.Path, ".xml") || strings.Contains(r.ContentType, "xml"))
}

func (a *FormAnalyzer) Analyze(path string, r *Report) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.NewFileError("failed to open form", path, errors.FileAccessDenied, err)
	}
	defer f.Close()

	dec := xml.NewDecoder(f)
	inInstance := false
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return errors.NewFileError("malformed form", path, errors.InvalidPath, err)
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}

		switch {
		case start.Name.Local == "title" && r.Title == "":
			var title string
			if err := dec.DecodeElement(&title, &start); err == nil {
				r.Title = strings.TrimSpace(title)
			}
		case start.Name.Local == "instance" && r.FormID == "":
			inInstance = true
		case inInstance:
			// first child of the primary instance carries the form id
			for _, attr := range start.Attr {
				if attr.Name.Local == "id" {
					r.FormID = attr.Value
				}
			}
			inInstance = false
		}
		if r.Title != "" && r.FormID != "" {
			return nil
		}
	}
}

// InstanceAnalyzer reads a saved instance folder: its submission, the
// instance ID recorded in it and the attachments next to it.
type InstanceAnalyzer struct{}

func (a *InstanceAnalyzer) CanHandle(r *Report) bool {
	return r.Kind == KindInstance
}

func (a *InstanceAnalyzer) Analyze(path string, r *Report) error {
	entries, err := os.ReadDir(path)
	if err != nil {
		return errors.NewFileError("cannot read instance", path, errors.FileAccessDenied, err)
	}

	var files []string
	for _, e := range entries {
		if e.Type().IsRegular() {
			files = append(files, filepath.Join(path, e.Name()))
		}
	}

	want := filepath.Base(path) + ".xml"
	for _, p := range files {
		if filepath.Base(p) == want {
			r.Submission = p
		}
	}
	if r.Submission == "" {
		for _, p := range files {
			if strings.HasSuffix(p, ".xml") {
				r.Submission = p
				break
			}
		}
	}

	var attachments []string
	for _, p := range files {
		if p != r.Submission {
			attachments = append(attachments, p)
		}
	}
	r.Attachments = len(attachments)

	for _, p := range attachments {
		if t, ok := captureTime(p); ok && (r.Captured.IsZero() || t.Before(r.Captured)) {
			r.Captured = t
		}
	}

	if r.Submission == "" {
		return nil
	}
	r.ContentType, _ = detect(r.Submission)
	id, err := readInstanceID(r.Submission)
	if err != nil {
		return err
	}
	r.InstanceID = id
	return nil
}

// readInstanceID returns the normalized uuid of the submission's
// meta/instanceID element. A value that is not a uuid is returned as is.
func readInstanceID(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", errors.NewFileError("failed to open submission", path, errors.FileAccessDenied, err)
	}
	defer f.Close()

	dec := xml.NewDecoder(f)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return "", nil
		}
		if err != nil {
			return "", errors.NewFileError("malformed submission", path, errors.InvalidPath, err)
		}
		start, ok := tok.(xml.StartElement)
		if !ok || start.Name.Local != "instanceID" {
			continue
		}
		var raw string
		if err := dec.DecodeElement(&raw, &start); err != nil {
			return "", errors.NewFileError("malformed instanceID", path, errors.InvalidPath, err)
		}
		raw = strings.TrimSpace(raw)
		id, err := uuid.Parse(strings.TrimPrefix(raw, "uuid:"))
		if err != nil {
			log.LogWithFields(log.F("path", path), log.F("instance_id", raw)).Debug("instanceID is not a uuid")
			return raw, nil
		}
		return id.String(), nil
	}
}

// captureTime returns the EXIF DateTimeOriginal of an image attachment.
func captureTime(path string) (time.Time, bool) {
	ct, err := detect(path)
	if err != nil || (ct != "image/jpeg" && ct != "image/tiff") {
		return time.Time{}, false
	}
	f, err := os.Open(path)
	if err != nil {
		return time.Time{}, false
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		log.Debugf("no EXIF data in %s: %v", path, err)
		return time.Time{}, false
	}
	t, err := x.DateTime()
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
