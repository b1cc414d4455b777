package common

// LumenVersion is the current Lumen version as a string.
const LumenVersion string = "0.1.0"

// LumenProfileFileName is the name for Lumen build profile files.
const LumenProfileFileName string = "lumen.toml"

// DefaultOutputName is the object file name used when the caller does not
// specify an output path.
const DefaultOutputName string = "out.o"

// LLCPathEnvVar is the environment variable which, if set, overrides the
// location of the `llc` code generator binary.
const LLCPathEnvVar string = "LUMEN_LLC"
