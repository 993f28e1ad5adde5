// Package generator turns an evaluated test run into a tree of report
// files on disk, one subtree per output format.
//
// The factory (GeneratorsFor) rotates any pre-existing report root out of
// the way, resolves the active format set, and builds one Generator per
// format. Each Generator writes the run summary (when its format defines
// one) and, per feature unit, the support-spec reports first, then the
// feature report that links to them, then the feature's attachments.
package generator
