// Package main hosts the multiview-seed CLI entrypoint and command graph.
//
// The root command runs one generation pass: it resolves configuration,
// checks and locks the output directories, synthesizes the catalog, writes
// one JSON fixture per record plus the dataset documentation, and prints a
// summary to stdout. The config subcommands scaffold and check the TOML file.
//
// Keep this package lean: generation, serialization, and documentation live
// in internal packages and are only wired together here.
package main
