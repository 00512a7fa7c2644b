package config

// SampleConfig returns a fully commented configuration file
func SampleConfig() string {
	return `# aoc configuration
version: "1.0"

inputs:
  # Directory holding the puzzle inputs
  directory: "./input_data"
  # File name inside directory; %d is replaced by the day number
  file_pattern: "day%d_data.txt"
  # Explicit per-day paths, taking precedence over directory/file_pattern
  overrides: {}
  #  3: "/tmp/claims.txt"

output:
  # text, json, csv or tree
  default_format: "text"
  # auto, always or never
  color_mode: "auto"
  verbose: false
  show_timings: false

solve:
  # Number of puzzles solved concurrently
  parallelism: 4
  # Limit for a whole run (0 disables it)
  timeout: 60s
`
}

// MinimalSampleConfig returns a configuration file with only the essentials
func MinimalSampleConfig() string {
	return `version: "1.0"
inputs:
  directory: "./input_data"
output:
  default_format: "text"
`
}
