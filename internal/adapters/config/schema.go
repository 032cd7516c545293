package config

// Ladderfile represents the structure of the ladder.yaml configuration file.
// Omitted fields keep their defaults.
type Ladderfile struct {
	Dictionary string    `yaml:"dictionary"`
	Cache      CacheDTO  `yaml:"cache"`
	Search     SearchDTO `yaml:"search"`
	Log        LogDTO    `yaml:"log"`
}

// CacheDTO represents the graph cache settings.
type CacheDTO struct {
	Dir     string `yaml:"dir"`
	Backend string `yaml:"backend"`
}

// SearchDTO represents the all-paths enumeration bounds.
type SearchDTO struct {
	MaxPaths *int `yaml:"max_paths"`
	MaxDepth *int `yaml:"max_depth"`
}

// LogDTO represents the logging settings.
type LogDTO struct {
	Format string `yaml:"format"`
}
