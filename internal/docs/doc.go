// Package docs renders the human-readable Markdown that accompanies a
// generated fixture set: an overview with a per-category breakdown, the
// provider highlights list, and the static validation playbook.
package docs
