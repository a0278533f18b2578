// Package catalog synthesizes the provider, event, and playlist records that
// make up a multi-angle streaming fixture catalog.
//
// Generation is a strictly ordered pipeline: providers are drawn from fixed
// vocabularies, events reference a random subset of those providers, and
// playlists chunk same-category events. Every generator takes an explicit
// *Rand so a seed reproduces the whole catalog without global state.
package catalog
