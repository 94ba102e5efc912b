// Package app wires rampctl's dependencies together.
//
// App bundles the configured paths and tool configuration and knows how
// to open ramp documents as keyslot managers. Commands reach it through
// the package-level Default; tests swap it out with SetDefault.
package app
