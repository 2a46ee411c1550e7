// Package manifest reads entry.yml files and walks the course tree they
// describe.
//
// Every lesson and section directory carries an entry.yml naming its
// children in order:
//
//	# course/entry.yml
//	lessons:
//	  - 01-intro
//	  - 02-variables
//	ignore:
//	  - drafts
//
//	# course/01-intro/entry.yml
//	sections:
//	  - motivation
//	  - hello
//	  - excs
//
// A Walker resolves those names into paths relative to the manifest's
// directory, skipping anything in its IgnoreSet. Manifests are re-read on
// every call; nothing is cached between lessons.
package manifest
