// Package alert builds the dismissible banners shown at the top of a
// generated sheet and the sheet-worker script that retires them.
//
// Each banner is keyed by an ID, either an auto-assigned integer or a
// caller-supplied string, and hidden through a checkbox-backed attribute
// once the player closes it. The registry records every ID handed out
// during one generation run so DisableOldAlerts can acknowledge all of
// them at once.
package alert

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/hermetic-games/sheetforge/internal/platform/errors"
)

// Level selects the visual treatment of a banner.
type Level string

const (
	// LevelInfo marks an informational banner.
	LevelInfo Level = "info"
	// LevelWarning marks a banner about potential data loss.
	LevelWarning Level = "warning"
)

// bodyIndent nests banner body lines inside the surrounding div.
const bodyIndent = "                "

// scriptIndent aligns attribute lines inside the setAttrs call.
const scriptIndent = "            "

var levelTitle = cases.Title(language.English)

// Registry tracks the banners emitted during one generation run.
// It is not safe for concurrent use; a run is single-threaded.
type Registry struct {
	nextNum int
	strIDs  []string
	closed  bool
}

// NewRegistry returns an empty registry for a fresh generation run.
func NewRegistry() *Registry {
	return &Registry{}
}

type options struct {
	level Level
	id    string
	hasID bool
}

// Option adjusts a single Alert call.
type Option func(*options)

// WithLevel overrides the default warning level.
func WithLevel(level Level) Option {
	return func(o *options) {
		o.level = level
	}
}

// WithID assigns an explicit string ID instead of the next integer.
// Needed when another part of the sheet checks the banner's open state.
func WithID(id string) Option {
	return func(o *options) {
		o.id = id
		o.hasID = true
	}
}

// Alert returns the banner fragment and records its ID.
//
// The fragment pairs a hidden "alert-hidder" input with the banner div so
// the platform CSS can collapse acknowledged banners, and a fake-button
// label whose checkbox flips the backing attribute when clicked.
func (r *Registry) Alert(title, text string, opts ...Option) (string, error) {
	o := options{level: LevelWarning}
	for _, opt := range opts {
		opt(&o)
	}

	if o.level != LevelInfo && o.level != LevelWarning {
		return "", errors.WithMetadata(errors.CodeAlertInvalidLevel,
			fmt.Sprintf("alert level must be %q or %q, got %q", LevelInfo, LevelWarning, o.level),
			map[string]string{"level": string(o.level)})
	}
	if r.closed {
		return "", errors.New(errors.CodeAlertRegistryClosed,
			"alert called after DisableOldAlerts generated the acknowledgement script; "+
				"DisableOldAlerts must run last")
	}

	var id string
	if o.hasID {
		id = o.id
		r.strIDs = append(r.strIDs, id)
	} else {
		id = strconv.Itoa(r.nextNum)
		r.nextNum++
	}

	body := strings.ReplaceAll(text, "\n", "\n"+bodyIndent)
	heading := levelTitle.String(string(o.level))

	var b strings.Builder
	fmt.Fprintf(&b, "<input type=\"hidden\" class=\"alert-hidder\" name=\"attr_alert-%s\" value=\"0\"/>\n", id)
	fmt.Fprintf(&b, "<div class=\"alert alert-%s\">\n", o.level)
	b.WriteString("    <div>\n")
	fmt.Fprintf(&b, "        <h3> %s - %s</h3>\n", heading, title)
	fmt.Fprintf(&b, "        %s\n", body)
	b.WriteString("    </div>\n")
	b.WriteString("    <label class=\"fakebutton\">\n")
	fmt.Fprintf(&b, "        <input type=\"checkbox\" name=\"attr_alert-%s\" value=\"1\" /> ×\n", id)
	b.WriteString("    </label>\n")
	b.WriteString("</div>")
	return b.String(), nil
}

// DisableOldAlerts returns the sheet-worker script that marks every
// registered banner, plus the given marker attribute, as acknowledged.
// It closes the registry: any later Alert call fails.
func (r *Registry) DisableOldAlerts(marker string) (string, error) {
	if r.closed {
		return "", errors.New(errors.CodeAlertRegistryClosed,
			"DisableOldAlerts called twice for the same generation run")
	}
	r.closed = true

	lines := make([]string, 0, r.nextNum+len(r.strIDs)+1)
	lines = append(lines, fmt.Sprintf("%q: 1", marker))
	for _, id := range r.IDs() {
		lines = append(lines, fmt.Sprintf("%q: 1", "alert-"+id))
	}

	var b strings.Builder
	b.WriteString("setAttrs({\n")
	b.WriteString("    " + strings.Join(lines, ",\n"+scriptIndent) + "\n")
	b.WriteString("});")
	return b.String(), nil
}

// IDs returns every registered banner ID in acknowledgement order:
// integer IDs first, then string IDs in registration order.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, r.nextNum+len(r.strIDs))
	for i := 0; i < r.nextNum; i++ {
		ids = append(ids, strconv.Itoa(i))
	}
	ids = append(ids, r.strIDs...)
	return ids
}

// Closed reports whether DisableOldAlerts has already run.
func (r *Registry) Closed() bool {
	return r.closed
}
