// Package config loads the nifex YAML configuration file. Every field
// has a flag counterpart; flags win over the file.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// DocPath is the document repository: a directory of JSON files or
	// a SQLite database file.
	DocPath string `yaml:"doc_path"`

	// BaseURI overrides the default base of generated resource IRIs.
	BaseURI string `yaml:"base_uri"`

	// ClassBase is the namespace prepended to entity labels for
	// itsrdf:taClassRef. Empty disables the class triples.
	ClassBase string `yaml:"class_base"`

	// Format is the default serialization: nt, ttl or jsonld.
	Format string `yaml:"format"`

	// Layers restricts the exported annotation layers. Empty means all
	// layers found in the document.
	Layers []string `yaml:"layers"`

	// NoText suppresses the nif:isString full text triple.
	NoText bool `yaml:"no_text"`

	// Compress writes xz compressed graph files.
	Compress bool `yaml:"compress"`

	// Prefixes adds namespace bindings next to the built-in ones.
	Prefixes map[string]string `yaml:"prefixes"`
}

// Load reads the configuration from a YAML file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, err
	}

	return &c, nil
}
