package certgen

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/avezina/go-certgen/internal/dateutil"
)

// filePermissions applies to written certificates.
// rw-r--r--: owner read+write, others read.
const filePermissions = 0o644

// resolveOutputPath derives the output path for one item.
// An explicit item override is returned verbatim with no sanitization;
// the caller owns that path. Otherwise the path is
// <sanitize(name)>[_<sanitize(email)>]_<YYYY-MM-DD>.pdf under outputDir,
// with the email segment only in production mode. The date is the
// resolver's invocation date, not per-item: two items with the same name
// (and email) on the same calendar day resolve to the same path and the
// later write wins. That collision is intentional, documented behavior.
func resolveOutputPath(item CertificateItem, outputDir, mode string, now time.Time) string {
	if item.OutputPath != "" {
		return item.OutputPath
	}

	stem := sanitizeFilename(item.Name)
	if mode == ModeProduction && strings.TrimSpace(item.Email) != "" {
		stem += "_" + sanitizeFilename(item.Email)
	}

	return filepath.Join(outputDir, stem+"_"+dateutil.Stamp(now)+".pdf")
}

// sanitizeFilename makes a string safe and stable for use in filenames:
// every character outside [A-Za-z0-9] becomes an underscore, the result
// is lowercased, runs of underscores collapse to one, and leading and
// trailing underscores are stripped. The rule is load-bearing for
// filename stability; change it and previously derived paths move.
func sanitizeFilename(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	pending := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
		case r >= 'A' && r <= 'Z':
			r += 'a' - 'A'
		default:
			// Collapse runs and drop leading underscores; a trailing
			// run is dropped because pending is never flushed.
			if b.Len() > 0 {
				pending = true
			}
			continue
		}
		if pending {
			b.WriteByte('_')
			pending = false
		}
		b.WriteRune(r)
	}

	return b.String()
}
