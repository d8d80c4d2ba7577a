// Package config loads the YAML configuration of the clipinfo tool and turns
// it into extractor and pipeline options.
package config
