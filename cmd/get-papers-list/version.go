// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

// version is set at build time via ldflags and printed by --version.
var version = "dev"

// userAgent identifies this tool to NCBI and Crossref.
func userAgent() string {
	return "get-papers-list/" + version
}
