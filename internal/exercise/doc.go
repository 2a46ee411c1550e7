// Package exercise parses exercise files and the excs.md index, and renders
// the exercise list appended to a lesson.
//
// An exercise file opens with a header block:
//
//	---
//	title: Sum of two numbers
//	demand: easy
//	---
//	Write a program that ...
//
// Each header line is split on its first ": ". The title and demand fields
// are required. Everything after the closing delimiter is the body and is
// copied to the lesson verbatim.
//
// The index groups exercise references under "##" subtitles:
//
//	## Basics
//	- [Sum](excs>sum]
//	- [excs>swap]
//
// Rendering numbers exercises from 0 across all subtitles of a lesson.
// References to missing files are reported as warnings and skipped without
// consuming a number.
package exercise
