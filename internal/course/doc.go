// Package course turns a manifest-described course tree into one markdown
// file per lesson.
//
// A Builder walks the root entry.yml for lessons, then each lesson's
// entry.yml for sections. Section files (<name>.md) are appended to
// <out>/<lesson>.md in manifest order, each followed by a newline. The
// reserved section name "excs" is not a file: it attaches the lesson's
// exercise list, which is rendered once after all sections.
//
//	b, err := course.New(course.Options{InDir: "course", OutDir: "build", Reporter: printer})
//	if err != nil { ... }
//	if err := b.Prepare(); err != nil { ... }
//	summary, err := b.Build(ctx)
//
// Plan walks the same tree without writing anything.
package course
