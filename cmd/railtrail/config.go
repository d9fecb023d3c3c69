package main

// Config is railtrail.yaml's shape (SPEC_FULL.md §6.2): every field has a
// matching --flag that overrides it; flags take precedence because
// runSolve applies them (applyFlagOverrides) after PersistentPreRun has
// loaded the file.
type Config struct {
	Weight  string `yaml:"weight"`
	LogPath string `yaml:"log_path"`
	Threads int    `yaml:"threads"`
}

// defaultConfig is weight A (営業キロ), a literal "pulp.log" log path, and
// a single-threaded solve.
func defaultConfig() Config {
	return Config{
		Weight:  "A",
		LogPath: "pulp.log",
		Threads: 1,
	}
}
