// Package config holds the run configuration: input table paths, the
// solver backend name and numeric solve settings.
//
// Configuration is read from a YAML file and every field can be
// overridden afterwards (the CLI maps flags onto the loaded struct).
// Validate checks the result before a run starts; unknown solver names
// are rejected at this point rather than mid-pipeline.
package config
