package hpgl2dxf

// Version is the release of the converter. Overridden at build time with
// -ldflags "-X github.com/aretw0/hpgl2dxf.Version=...".
var Version = "0.1.0"
