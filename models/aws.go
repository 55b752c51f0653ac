package models

// RawSection is one section of the shared AWS config file, in file order.
type RawSection struct {
	Name string
	Keys map[string]string
}

// RawConfig is the parsed shared config file. Section order is preserved.
type RawConfig struct {
	Sections []RawSection
}
