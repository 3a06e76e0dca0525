// Package certgen turns a list of recipients into personalized
// certificate PDFs by overlaying each name onto a fixed template.
//
// # Quick Start
//
// Create a service and generate a batch:
//
//	svc, err := certgen.New(certgen.GenerationOptions{
//	    TemplatePath: "template.pdf",
//	    FontPath:     "font.ttf",
//	    OutputDir:    "out",
//	    FontSize:     36,
//	    Concurrency:  4,
//	    Mode:         certgen.ModeProduction,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	items, err := certgen.LoadItems("recipients.csv")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result := svc.Generate(ctx, items)
//	summary := result.Summary()
//	fmt.Printf("%d succeeded, %d failed\n", summary.Succeeded, summary.Failed)
//
// # Pipeline
//
// Each item flows through these stages:
//
//  1. Validation (name present, font size override in range, email in
//     production mode)
//  2. Text placement against the template's first page (explicit
//     position, or approximate centering)
//  3. Rendering: fresh document from the shared template, embedded
//     font, text overlay (go-pdf/fpdf by default)
//  4. Output path derivation (sanitized name, email, UTC date) and write
//
// # Batch Semantics
//
// Items are processed in consecutive groups of at most Concurrency,
// each group drained before the next starts. One bad item never aborts
// its siblings or the batch: failures are collected into
// BatchResult.Failed as *GenerationError values carrying the item and
// cause, while successful output paths land in BatchResult.Successful.
// Asset loading and options validation errors are fatal in New, before
// any batch starts.
//
// Derived output paths embed the run's UTC calendar date. Re-running
// the same item on the same day resolves to the same path and
// overwrites the earlier file; this is documented, intentional behavior.
//
// # Customization
//
// Functional options swap collaborators:
//
//	svc, err := certgen.New(opts,
//	    certgen.WithLogger(certgen.NewZapLogger(zl.Sugar())),
//	    certgen.WithEngine(myEngine),
//	    certgen.WithClock(func() time.Time { return fixed }),
//	)
package certgen
